package doccrawl

// LinkExtractor extracts outbound links from HTML.
type LinkExtractor interface {
	// ExtractLinks returns absolute URLs of anchors in html that contain
	// rootURL and carry no fragment, deduplicated in document order.
	// The baseURL is used to resolve relative hrefs.
	ExtractLinks(html, baseURL, rootURL string) ([]string, error)
}
