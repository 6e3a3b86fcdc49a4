package doccrawl

import (
	"regexp"
	"strings"
)

// Tier is the filtering context a URL is evaluated in.
type Tier int

// Filtering tiers.
const (
	// TierDiscovery applies to links found on the seed page.
	TierDiscovery Tier = iota
	// TierCrawl applies to links found while crawling.
	TierCrawl
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierDiscovery:
		return "discovery"
	case TierCrawl:
		return "crawl"
	default:
		return "unknown"
	}
}

// Universal denylist, rejected in every tier.
var defaultDeny = []string{
	"mailto:", "tel:", "javascript:", "#",
	".pdf", ".zip", ".exe", ".dmg",
	"/feed", "/rss", "/xml",
	"twitter.com", "facebook.com", "github.com", "linkedin.com",
}

// Denylist applied only while crawling: auth, taxonomy and site noise paths.
var defaultCrawlDeny = []string{
	"/login", "/register", "/logout", "/profile", "/search?",
	"/tag/", "/tags/", "/category/", "/categories/",
	"/page/", "/archives/", "/sitemap",
	"/security/", "/releases/", "/calendar/", "/feed.xml",
}

// URLPolicy decides whether a URL may enter the frontier.
// Matching is by substring on the raw URL; URLs are never parsed,
// so false positives such as "/xml-guide" being rejected are expected.
type URLPolicy struct {
	// Deny substrings are rejected in every tier.
	Deny []string

	// CrawlDeny substrings are rejected in TierCrawl only.
	CrawlDeny []string

	// Exclude patterns are rejected in every tier.
	Exclude []*regexp.Regexp
}

// NewURLPolicy returns a policy with the default denylists.
func NewURLPolicy() *URLPolicy {
	return &URLPolicy{
		Deny:      append([]string(nil), defaultDeny...),
		CrawlDeny: append([]string(nil), defaultCrawlDeny...),
	}
}

// Accepts reports whether rawURL passes the policy in the given tier.
// A nil policy uses the default denylists.
func (p *URLPolicy) Accepts(rawURL string, tier Tier) bool {
	if p == nil {
		p = NewURLPolicy()
	}

	if containsAny(rawURL, p.Deny) {
		return false
	}
	if tier == TierCrawl && containsAny(rawURL, p.CrawlDeny) {
		return false
	}
	for _, re := range p.Exclude {
		if re.MatchString(rawURL) {
			return false
		}
	}
	return true
}

// IsPriority reports whether rawURL contains any of the keywords.
// Empty keywords never match.
func IsPriority(rawURL string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(rawURL, kw) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
