package rod

import (
	"fmt"
	"sync"

	"github.com/fwojciec/doccrawl"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of tabs served by one browser
// before it is replaced.
const DefaultMaxPages = 75

// BrowserManager hands out tabs on a headless Chrome and replaces the
// browser once it has served maxPages tabs, because Chrome's memory baseline
// only grows over a long crawl. A browser is never replaced while one of its
// tabs is still open. BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   bool

	served   int // tabs released on the current browser
	open     int // tabs handed out and not yet released
	launches int

	maxPages  int
	bin       string
	noSandbox bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets how many tabs one browser serves before it is replaced.
// Values below 1 keep DefaultMaxPages.
func WithMaxPages(n int) ManagerOption {
	return func(bm *BrowserManager) {
		if n > 0 {
			bm.maxPages = n
		}
	}
}

// WithBrowserBin uses the Chrome binary at path instead of looking one up
// or downloading one.
func WithBrowserBin(path string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox, which containers usually need.
func WithNoSandbox(v bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.noSandbox = v
	}
}

// NewBrowserManager launches a headless browser. Close must be called when
// the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	if err := bm.launch(); err != nil {
		return nil, err
	}
	return bm, nil
}

// Page opens a blank tab. The returned release func closes the tab and
// counts it toward replacing the browser; it must be called exactly once.
// Page fails with EINVALID after Close.
func (bm *BrowserManager) Page() (*rod.Page, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, doccrawl.Errorf(doccrawl.EINVALID, "browser manager closed")
	}
	if bm.served >= bm.maxPages && bm.open == 0 {
		bm.recycle()
	}

	page, err := bm.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, nil, fmt.Errorf("opening tab: %w", err)
	}
	bm.open++

	browser := bm.browser
	var once sync.Once
	release := func() {
		once.Do(func() {
			_ = page.Close()
			bm.mu.Lock()
			defer bm.mu.Unlock()
			// Tabs released after Close no longer count.
			if bm.browser == browser {
				bm.open--
				bm.served++
			}
		})
	}
	return page, release, nil
}

// Launches returns how many browsers the manager has started.
func (bm *BrowserManager) Launches() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.launches
}

// Close shuts the browser down. It is safe to call more than once.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return bm.shutdown()
}

// launch starts a headless browser with background throttling disabled, so
// tabs keep rendering at full speed. Must be called with mu held or before
// the manager is shared.
func (bm *BrowserManager) launch() error {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		NoSandbox(bm.noSandbox).
		Leakless(true).
		Headless(true)
	if bm.bin != "" {
		l = l.Bin(bm.bin)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser, bm.launcher = browser, l
	bm.served, bm.open = 0, 0
	bm.launches++
	return nil
}

// recycle swaps in a fresh browser. When the new one fails to start, the
// old one keeps serving and recycling is retried on the next Page.
// Must be called with mu held.
func (bm *BrowserManager) recycle() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher
	if err := bm.launch(); err != nil {
		return
	}
	_ = oldBrowser.Close()
	oldLauncher.Kill()
}

// shutdown closes the browser and kills its process. Must be called with mu
// held.
func (bm *BrowserManager) shutdown() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}
