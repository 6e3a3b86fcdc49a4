package doccrawl

import "context"

// Response is the HTML a Fetcher retrieved.
type Response struct {
	// URL is the address the HTML was served from, after redirects.
	URL  string
	HTML string
}

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to load,
	// and returns the rendered HTML with the final URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DefaultUserAgent is sent by fetchers that let the caller choose one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
