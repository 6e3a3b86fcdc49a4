package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Sites   []*doccrawl.Site
	Records doccrawl.RecordService
	Runs    doccrawl.RunService
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" help:"Site list YAML file (default: ./doccrawl.yml, else built-in sites)"`
	DB      string `name:"db" env:"DOCCRAWL_DB" help:"Page index database path"`
	Verbose bool   `short:"v" help:"Log fetches and storage to stderr"`

	Crawl CrawlCmd `cmd:"" help:"Crawl configured documentation sites"`
	Sites SitesCmd `cmd:"" help:"List configured sites"`
	Pages PagesCmd `cmd:"" help:"List indexed pages of a site"`
	Runs  RunsCmd  `cmd:"" help:"Show recent crawl runs"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Names     []string      `arg:"" optional:"" name:"site" help:"Sites to crawl (default: all configured sites)"`
	Out       string        `short:"o" default:"./docs" help:"Output directory for page files"`
	Fetcher   string        `enum:"browser,http,auto" default:"browser" help:"How pages are fetched: browser, http or auto"`
	HTTP      bool          `name:"http" help:"Shorthand for --fetcher=http"`
	Extractor string        `enum:"goquery,trafilatura,readability" default:"goquery" help:"Content extractor"`
	MaxPages  int           `default:"5000" help:"Maximum pages fetched per site"`
	Delay     time.Duration `default:"2s" help:"Pause after each page before the next request"`
	Timeout   time.Duration `default:"30s" help:"Per-page fetch timeout"`

	RenderDelay  time.Duration `default:"2s" help:"Browser wait after the network goes idle"`
	BrowserBin   string        `help:"Chrome binary to use instead of the detected one"`
	NoSandbox    bool          `help:"Disable the Chrome sandbox (needed in most containers)"`
	BrowserPages int           `default:"75" help:"Pages one Chrome serves before it is restarted"`

	Sitemap bool `help:"Add sitemap URLs to the seed frontier"`
	Tokens  bool `help:"Count tokens of saved content with the local Gemini tokenizer"`
	Fresh   bool `help:"Drop indexed pages of each site before crawling it"`
}

// FetcherMode returns the fetcher mode after applying --http.
func (c *CrawlCmd) FetcherMode() string {
	if c.HTTP {
		return "http"
	}
	return c.Fetcher
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Site  string `arg:"" help:"Site name"`
	Limit int    `short:"n" default:"0" help:"Maximum pages to list (0 for all)"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Site  string `arg:"" optional:"" help:"Site name (default: all sites)"`
	Limit int    `short:"n" default:"10" help:"Maximum runs to list"`
}
