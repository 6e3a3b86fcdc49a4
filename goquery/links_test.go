package goquery_test

import (
	"testing"

	"github.com/fwojciec/doccrawl"
	"github.com/fwojciec/doccrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	const root = "https://docs.example.com"

	t.Run("resolves relative links and keeps those under the root", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
	<a href="/guide">Guide</a>
	<a href="api/index.html">API</a>
	<a href="https://docs.example.com/faq">FAQ</a>
	<a href="https://other.com/page">Elsewhere</a>
</main></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, "https://docs.example.com/start/", root)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://docs.example.com/guide",
			"https://docs.example.com/start/api/index.html",
			"https://docs.example.com/faq",
		}, links)
	})

	t.Run("drops links with fragments", func(t *testing.T) {
		t.Parallel()

		html := `<body><a href="#top">Top</a><a href="/page#section">Section</a><a href="/page">Page</a></body>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, root+"/", root)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.example.com/page"}, links)
	})

	t.Run("deduplicates in document order", func(t *testing.T) {
		t.Parallel()

		html := `<body><a href="/b">B</a><a href="/a">A</a><a href="/b">B again</a></body>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, root+"/", root)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.example.com/b", "https://docs.example.com/a"}, links)
	})

	t.Run("ignores boilerplate regions by default", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<nav><a href="/nav-link">Nav</a></nav>
<header><a href="/header-link">Header</a></header>
<div class="sidebar"><a href="/side-link">Side</a></div>
<main><a href="/content-link">Content</a></main>
<footer><a href="/footer-link">Footer</a></footer>
</body>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, root+"/", root)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.example.com/content-link"}, links)

		all, err := (&goquery.LinkExtractor{KeepBoilerplate: true}).ExtractLinks(html, root+"/", root)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("honors the base element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><base href="https://docs.example.com/v2/"></head><body><a href="intro">Intro</a></body></html>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, root+"/", root)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://docs.example.com/v2/intro"}, links)
	})

	t.Run("skips non-http schemes", func(t *testing.T) {
		t.Parallel()

		html := `<body><a href="mailto:team@docs.example.com">Mail</a><a href="javascript:void(0)">JS</a></body>`

		links, err := goquery.NewLinkExtractor().ExtractLinks(html, root+"/", root)

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("returns an empty slice when there are no anchors", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewLinkExtractor().ExtractLinks(`<p>plain</p>`, root+"/", root)

		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewLinkExtractor().ExtractLinks(`<a href="/x">x</a>`, "://bad", root)

		assert.Equal(t, doccrawl.EINVALID, doccrawl.ErrorCode(err))
	})
}
