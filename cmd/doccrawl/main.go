package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/crawl"
	"github.com/fwojciec/doccrawl/fs"
	"github.com/fwojciec/doccrawl/gemini"
	"github.com/fwojciec/doccrawl/goquery"
	"github.com/fwojciec/doccrawl/htmltomarkdown"
	crawlhttp "github.com/fwojciec/doccrawl/http"
	"github.com/fwojciec/doccrawl/readability"
	"github.com/fwojciec/doccrawl/rod"
	crawlslog "github.com/fwojciec/doccrawl/slog"
	"github.com/fwojciec/doccrawl/sqlite"
	"github.com/fwojciec/doccrawl/trafilatura"
	"github.com/fwojciec/doccrawl/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// Directory searched for the default site list.
	WorkDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	wd, _ := os.Getwd()
	return &Main{
		DBPath:  defaultDBPath(),
		WorkDir: wd,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil {
			errs = append(errs, err)
		}
		m.DB = nil
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	helped := false
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doccrawl"),
		kong.Description("Crawl documentation sites into plain-text files."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { helped = true }),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'doccrawl --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if helped {
		return nil
	}
	if err != nil {
		return err
	}

	deps.Logger = newLogger(cli.Verbose, stderr)
	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd == "crawl" || cmd == "sites" {
		sites, err := m.loadSites(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", doccrawl.ErrorMessage(err))
			return err
		}
		deps.Sites = sites
	}

	if cmd == "crawl" || cmd == "pages" || cmd == "runs" {
		path := m.DBPath
		if cli.DB != "" {
			path = cli.DB
		}
		if path != ":memory:" {
			_ = os.MkdirAll(filepath.Dir(path), 0o755)
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set DOCCRAWL_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		deps.Records = sqlite.NewRecordService(m.DB)
		deps.Runs = sqlite.NewRunService(m.DB)
	}
	defer m.Close()

	if cmd == "crawl" {
		crawler, err := m.newCrawler(&cli.Crawl, deps)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", doccrawl.ErrorMessage(err))
			return err
		}
		deps.Crawler = crawler
	}

	return kongCtx.Run(deps)
}

// loadSites reads the site list from path, from the default file in the
// working directory, or falls back to the built-in sites.
func (m *Main) loadSites(path string) ([]*doccrawl.Site, error) {
	path = yaml.FindSitesFile(path, m.WorkDir)
	if path == "" {
		return doccrawl.DefaultSites(), nil
	}
	return yaml.LoadSites(path)
}

// newCrawler wires the crawl pipeline from command flags. Resources it
// opens are released by Close.
func (m *Main) newCrawler(c *CrawlCmd, deps *Dependencies) (*crawl.Crawler, error) {
	logger := deps.Logger

	fetcher, err := m.newFetcher(c, deps)
	if err != nil {
		return nil, err
	}

	pages := &crawl.PageFetcher{
		Fetcher:   fetcher,
		Extractor: newExtractor(c.Extractor),
		Links:     goquery.NewLinkExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Timeout:   c.Timeout,
	}

	store := doccrawl.MultiStore{
		crawlslog.NewLoggingPageStore(fs.NewWriter(c.Out), logger),
		crawlslog.NewLoggingPageStore(deps.Records, logger),
	}

	crawler := &crawl.Crawler{
		Fetcher:     crawlslog.NewLoggingPageFetcher(pages, logger),
		Store:       store,
		RateLimiter: crawl.NewDomainLimiter(c.Delay),
		Runs:        deps.Runs,
		Logger:      logger,
		MaxPages:    c.MaxPages,
	}

	if c.Sitemap {
		crawler.Sitemaps = crawlslog.NewLoggingSitemapService(crawlhttp.NewSitemapService(nil), logger)
	}

	if c.Tokens {
		counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create token counter: %w", err)
		}
		crawler.TokenCounter = counter
	}

	return crawler, nil
}

func (m *Main) newFetcher(c *CrawlCmd, deps *Dependencies) (doccrawl.Fetcher, error) {
	httpFetcher := crawlhttp.NewFetcher(crawlhttp.WithTimeout(c.Timeout))
	if c.FetcherMode() == "http" {
		return httpFetcher, nil
	}

	managerOpts := []rod.ManagerOption{
		rod.WithNoSandbox(c.NoSandbox),
		rod.WithMaxPages(c.BrowserPages),
	}
	if c.BrowserBin != "" {
		managerOpts = append(managerOpts, rod.WithBrowserBin(c.BrowserBin))
	}
	manager, err := rod.NewBrowserManager(managerOpts...)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or use --http")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	browser, err := rod.NewFetcher(
		rod.WithBrowserManager(manager),
		rod.WithRenderDelay(c.RenderDelay),
	)
	if err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	browserFetcher := rod.NewLoggingFetcher(browser, deps.Logger)

	if c.FetcherMode() == "browser" {
		m.closers = append(m.closers, browserFetcher)
		return browserFetcher, nil
	}

	probing := &crawl.ProbingFetcher{
		HTTP:      httpFetcher,
		Browser:   browserFetcher,
		Extractor: newExtractor(c.Extractor),
		OnProbe: func(host string, useBrowser bool) {
			mode := "http"
			if useBrowser {
				mode = "browser"
			}
			fmt.Fprintf(deps.Stdout, "🔎 %s: using %s fetcher\n", host, mode)
		},
	}
	m.closers = append(m.closers, probing)
	return probing, nil
}

func newExtractor(name string) doccrawl.Extractor {
	switch name {
	case "trafilatura":
		return trafilatura.NewExtractor()
	case "readability":
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newLogger(verbose bool, w io.Writer) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	return filepath.Join(xdg.DataHome, "doccrawl", "doccrawl.db")
}
