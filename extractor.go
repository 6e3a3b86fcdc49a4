package doccrawl

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Scripts, styles, navigation, headers, footers and sidebars are removed.
	ContentHTML string

	// Text is the visible text of the main content.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
