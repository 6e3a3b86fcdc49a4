// Package crawl provides documentation crawling orchestration.
// It seeds a bounded frontier from a site's home page, then walks it one
// page at a time, persisting admitted pages and queuing their links.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/doccrawl"
)

// Crawl limits.
const (
	DefaultMaxPages    = 5000
	DefaultMaxSeedURLs = 100
)

// Crawler crawls documentation sites. Each site is crawled by a single
// loop; sites are crawled one after another.
type Crawler struct {
	Fetcher  doccrawl.PageFetcher
	Store    doccrawl.PageStore
	Admitter doccrawl.Admitter

	// Policy filters URLs. Nil uses each site's own policy.
	Policy *doccrawl.URLPolicy

	// RateLimiter is waited on before every fetch and told when each
	// visit is over, so the full delay follows every iteration. Nil
	// disables throttling.
	RateLimiter doccrawl.DomainLimiter

	// Sitemaps, when set, adds sitemap URLs to the seed candidates.
	Sitemaps doccrawl.SitemapService

	// TokenCounter, when set, counts tokens of admitted content.
	TokenCounter doccrawl.TokenCounter

	// Runs, when set, records one run per crawled site.
	Runs doccrawl.RunService

	Logger *slog.Logger

	MaxPages    int
	MaxSeedURLs int
	MaxFrontier int

	Progress ProgressFunc
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressAdmitted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a site crawl.
type ProgressEvent struct {
	Type ProgressType
	Site *doccrawl.Site
	URL  string

	// Title and Chars describe an admitted or skipped page.
	Title string
	Chars int

	// Queued is the seeded frontier size on ProgressStarted.
	Queued int

	Counters doccrawl.Counters

	// Err is the fetch error on ProgressFailed and the storage error,
	// if any, on ProgressAdmitted.
	Err error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// SiteResult is the outcome of crawling one site in CrawlAll.
type SiteResult struct {
	Site     *doccrawl.Site
	Counters doccrawl.Counters
	Err      error
}

// CrawlAll crawls sites in order. A failing site is logged and recorded in
// its result; the remaining sites are still crawled. Only cancellation of
// ctx stops the sequence early, in which case the results so far are
// returned with the context error.
func (c *Crawler) CrawlAll(ctx context.Context, sites []*doccrawl.Site) ([]SiteResult, error) {
	results := make([]SiteResult, 0, len(sites))
	for _, site := range sites {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		counters, err := c.CrawlSite(ctx, site)
		if err != nil {
			c.logger().Error("site crawl failed", "site", site.Name, "error", err)
		}
		results = append(results, SiteResult{Site: site, Counters: counters, Err: err})
	}
	return results, ctx.Err()
}

// CrawlSite seeds a frontier for site and runs the crawl loop over it.
// Elapsed in the returned counters covers both seeding and crawling.
func (c *Crawler) CrawlSite(ctx context.Context, site *doccrawl.Site) (doccrawl.Counters, error) {
	if err := site.Validate(); err != nil {
		return doccrawl.Counters{}, err
	}

	start := time.Now()
	logger := c.logger().With("site", site.Name)
	logger.Info("crawl started", "url", site.URL)

	frontier := c.Seed(ctx, site)
	c.emit(ProgressEvent{Type: ProgressStarted, Site: site, URL: site.URL, Queued: frontier.Len()})

	counters, err := c.Run(ctx, site, frontier)
	counters.Elapsed = time.Since(start)

	logger.Info("crawl finished",
		"fetched", counters.Fetched,
		"admitted", counters.Admitted,
		"failed", counters.Failed,
		"bytes", counters.Bytes,
		"elapsed", counters.Elapsed,
	)
	c.emit(ProgressEvent{Type: ProgressFinished, Site: site, Counters: counters, Err: err})

	if c.Runs != nil {
		run := doccrawl.NewRun(site.Name, start, counters)
		if rerr := c.Runs.CreateRun(context.WithoutCancel(ctx), run); rerr != nil {
			logger.Warn("recording run failed", "error", rerr)
		}
	}

	return counters, err
}

// Seed fetches the site's seed page and builds the initial frontier: the
// seed URL followed by its discovery-tier links in first-seen order, at
// most MaxSeedURLs entries in total. Sitemap URLs, when a SitemapService is
// configured, are considered after the page links. A failed seed fetch
// yields a frontier holding only the seed URL.
func (c *Crawler) Seed(ctx context.Context, site *doccrawl.Site) *Frontier {
	logger := c.logger().With("site", site.Name)
	frontier := NewFrontier(c.maxFrontier())

	var candidates []string
	if c.wait(ctx, site.URL) == nil {
		page, err := c.Fetcher.FetchPage(ctx, site, site.URL)
		c.done(site.URL)
		if err != nil {
			logger.Warn("seed fetch failed", "url", site.URL, "error", err)
		} else {
			candidates = append(candidates, page.Links...)
			logger.Info("seed links found", "count", len(page.Links))
		}
	}

	if c.Sitemaps != nil {
		urls, err := c.Sitemaps.DiscoverURLs(ctx, site.URL)
		if err != nil {
			logger.Warn("sitemap discovery failed", "error", err)
		}
		candidates = append(candidates, urls...)
	}

	policy := c.policy(site)
	limit := c.maxSeedURLs()
	seen := map[string]struct{}{site.URL: {}}
	frontier.PushBack(site.URL)
	for _, u := range candidates {
		if len(seen) >= limit {
			break
		}
		if _, ok := seen[u]; ok {
			continue
		}
		if !policy.Accepts(u, doccrawl.TierDiscovery) {
			continue
		}
		seen[u] = struct{}{}
		frontier.PushBack(u)
	}

	logger.Info("frontier seeded", "urls", frontier.Len())
	return frontier
}

// Run is the crawl loop. It pops URLs from the front of frontier until the
// frontier is empty or MaxPages URLs have been fetched. Each URL is fetched
// at most once. Fetch failures are counted and never retried. Admitted
// pages are persisted and their crawl-tier links queued, keyword matches at
// the front. A storage failure is logged and does not undo admission.
//
// Run checks ctx before each URL and returns the counters so far together
// with the context error once it is done.
func (c *Crawler) Run(ctx context.Context, site *doccrawl.Site, frontier *Frontier) (doccrawl.Counters, error) {
	start := time.Now()
	maxPages := c.maxPages()
	state := siteState{
		site:     site,
		frontier: frontier,
		visited:  NewVisitedSet(maxPages),
		policy:   c.policy(site),
		admitter: c.Admitter,
		logger:   c.logger().With("site", site.Name),
	}
	if state.admitter == nil {
		state.admitter = doccrawl.AdmitAll
	}
	counters := &state.counters

	for frontier.Len() > 0 && counters.Fetched < maxPages {
		if err := ctx.Err(); err != nil {
			counters.Elapsed = time.Since(start)
			return *counters, err
		}

		url, _ := frontier.PopFront()
		if !state.visited.Add(url) {
			continue
		}
		counters.Fetched++

		if err := c.wait(ctx, url); err != nil {
			counters.Elapsed = time.Since(start)
			return *counters, err
		}

		c.visit(ctx, &state, url)
		c.done(url)
	}

	counters.Elapsed = time.Since(start)
	return *counters, nil
}

// siteState is the mutable state of one site's crawl loop.
type siteState struct {
	site     *doccrawl.Site
	frontier *Frontier
	visited  *VisitedSet
	policy   *doccrawl.URLPolicy
	admitter doccrawl.Admitter
	logger   *slog.Logger
	counters doccrawl.Counters
}

// visit fetches url and admits, persists and expands the resulting page.
func (c *Crawler) visit(ctx context.Context, s *siteState, url string) {
	site, counters := s.site, &s.counters

	result := c.fetch(ctx, site, url)
	if !result.OK() {
		counters.Failed++
		s.logger.Warn("fetch failed", "url", url, "error", result.Err)
		c.emit(ProgressEvent{Type: ProgressFailed, Site: site, URL: url, Counters: *counters, Err: result.Err})
		return
	}

	page := result.Page
	chars := utf8.RuneCountInString(page.Content)
	if !result.HasContent() || !s.admitter.Admit(ctx, site, page) {
		c.emit(ProgressEvent{Type: ProgressSkipped, Site: site, URL: url, Title: page.Title, Chars: chars, Counters: *counters})
		return
	}

	counters.Admitted++
	counters.Bytes += len(page.Content)
	if c.TokenCounter != nil {
		if tokens, err := c.TokenCounter.CountTokens(ctx, page.Content); err == nil {
			counters.Tokens += tokens
		}
	}

	storeErr := c.persist(ctx, site, PageKey(url, site.URL, counters.Admitted), page)
	if storeErr != nil {
		s.logger.Warn("persist failed", "url", url, "error", storeErr)
	}

	enqueue(s.frontier, s.visited, s.policy, site.PriorityKeywords, page.Links)

	c.emit(ProgressEvent{
		Type:     ProgressAdmitted,
		Site:     site,
		URL:      url,
		Title:    page.Title,
		Chars:    chars,
		Counters: *counters,
		Err:      storeErr,
	})
}

// enqueue queues links that are unvisited and pass the crawl tier, until the
// frontier fills up. Keyword links go to the front.
func enqueue(frontier *Frontier, visited *VisitedSet, policy *doccrawl.URLPolicy, keywords []string, links []string) {
	for _, link := range links {
		if frontier.Full() {
			return
		}
		if visited.Contains(link) || !policy.Accepts(link, doccrawl.TierCrawl) {
			continue
		}
		if doccrawl.IsPriority(link, keywords) {
			frontier.PushFront(link)
		} else {
			frontier.PushBack(link)
		}
	}
}

func (c *Crawler) fetch(ctx context.Context, site *doccrawl.Site, url string) doccrawl.FetchResult {
	page, err := c.Fetcher.FetchPage(ctx, site, url)
	if err == nil && page == nil {
		err = fmt.Errorf("fetch %s: no page returned", url)
	}
	return doccrawl.FetchResult{URL: url, Page: page, Err: err}
}

func (c *Crawler) persist(ctx context.Context, site *doccrawl.Site, key string, page *doccrawl.Page) error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Persist(ctx, site, key, page)
}

func (c *Crawler) wait(ctx context.Context, url string) error {
	if c.RateLimiter == nil {
		return ctx.Err()
	}
	return c.RateLimiter.Wait(ctx, hostOf(url))
}

func (c *Crawler) done(url string) {
	if c.RateLimiter != nil {
		c.RateLimiter.Done(hostOf(url))
	}
}

func (c *Crawler) emit(event ProgressEvent) {
	if c.Progress != nil {
		c.Progress(event)
	}
}

func (c *Crawler) policy(site *doccrawl.Site) *doccrawl.URLPolicy {
	if c.Policy != nil {
		return c.Policy
	}
	return site.Policy()
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Crawler) maxPages() int {
	if c.MaxPages > 0 {
		return c.MaxPages
	}
	return DefaultMaxPages
}

func (c *Crawler) maxSeedURLs() int {
	if c.MaxSeedURLs > 0 {
		return c.MaxSeedURLs
	}
	return DefaultMaxSeedURLs
}

func (c *Crawler) maxFrontier() int {
	if c.MaxFrontier > 0 {
		return c.MaxFrontier
	}
	return DefaultMaxFrontier
}
