package doccrawl_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/doccrawl"
	"github.com/stretchr/testify/assert"
)

func TestURLPolicy_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		url       string
		discovery bool
		crawl     bool
	}{
		{"plain page", "https://site.com/docs/intro", true, true},
		{"mailto", "mailto:team@site.com", false, false},
		{"tel", "tel:+123", false, false},
		{"javascript", "javascript:void(0)", false, false},
		{"fragment", "https://site.com/docs#install", false, false},
		{"pdf", "https://site.com/guide.pdf", false, false},
		{"zip", "https://site.com/app.zip", false, false},
		{"exe", "https://site.com/setup.exe", false, false},
		{"dmg", "https://site.com/setup.dmg", false, false},
		{"feed", "https://site.com/feed", false, false},
		{"rss", "https://site.com/rss", false, false},
		{"xml", "https://site.com/xml/data", false, false},
		{"twitter", "https://twitter.com/site", false, false},
		{"facebook", "https://facebook.com/x", false, false},
		{"github", "https://github.com/org/repo", false, false},
		{"linkedin", "https://linkedin.com/company/site", false, false},
		{"login", "https://site.com/login", true, false},
		{"register", "https://site.com/register", true, false},
		{"logout", "https://site.com/logout", true, false},
		{"profile", "https://site.com/profile/me", true, false},
		{"search query", "https://site.com/search?q=x", true, false},
		{"tag", "https://site.com/tag/go/", true, false},
		{"tags", "https://site.com/tags/go/", true, false},
		{"category", "https://site.com/category/news/", true, false},
		{"categories", "https://site.com/categories/news/", true, false},
		{"archives", "https://site.com/archives/2020", true, false},
		{"sitemap", "https://site.com/sitemap", true, false},
		{"pagination", "https://site.com/blog/page/2", true, false},
		{"security", "https://site.com/security/advisories", true, false},
		{"releases", "https://site.com/releases/v1", true, false},
		{"calendar", "https://site.com/calendar/2024", true, false},
	}

	policy := doccrawl.NewURLPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.discovery, policy.Accepts(tt.url, doccrawl.TierDiscovery), "discovery tier")
			assert.Equal(t, tt.crawl, policy.Accepts(tt.url, doccrawl.TierCrawl), "crawl tier")
		})
	}
}

func TestURLPolicy_Accepts_login_example(t *testing.T) {
	t.Parallel()

	policy := doccrawl.NewURLPolicy()

	assert.False(t, policy.Accepts("https://site.com/login", doccrawl.TierCrawl))
	assert.True(t, policy.Accepts("https://site.com/login", doccrawl.TierDiscovery))
}

func TestURLPolicy_Accepts_substring_false_positive(t *testing.T) {
	t.Parallel()

	// Substring matching rejects paths that merely contain a denied fragment.
	policy := doccrawl.NewURLPolicy()

	assert.False(t, policy.Accepts("https://site.com/docs/xml-config", doccrawl.TierDiscovery))
	assert.False(t, policy.Accepts("https://site.com/docs/login-flow", doccrawl.TierCrawl))
}

func TestURLPolicy_Accepts_exclude_patterns(t *testing.T) {
	t.Parallel()

	policy := doccrawl.NewURLPolicy()
	policy.Exclude = []*regexp.Regexp{regexp.MustCompile(`/api/v1/`)}

	assert.False(t, policy.Accepts("https://site.com/api/v1/users", doccrawl.TierDiscovery))
	assert.False(t, policy.Accepts("https://site.com/api/v1/users", doccrawl.TierCrawl))
	assert.True(t, policy.Accepts("https://site.com/api/v2/users", doccrawl.TierCrawl))
}

func TestURLPolicy_Accepts_nil_policy_uses_defaults(t *testing.T) {
	t.Parallel()

	var policy *doccrawl.URLPolicy

	assert.True(t, policy.Accepts("https://site.com/docs", doccrawl.TierCrawl))
	assert.False(t, policy.Accepts("https://site.com/login", doccrawl.TierCrawl))
}

func TestIsPriority(t *testing.T) {
	t.Parallel()

	keywords := []string{"/guide/", "tutorial"}

	assert.True(t, doccrawl.IsPriority("https://site.com/guide/intro", keywords))
	assert.True(t, doccrawl.IsPriority("https://site.com/tutorial-1", keywords))
	assert.False(t, doccrawl.IsPriority("https://site.com/blog/post", keywords))
	assert.False(t, doccrawl.IsPriority("https://site.com/blog/post", nil))
	assert.False(t, doccrawl.IsPriority("https://site.com/blog/post", []string{""}))
}

func TestTier_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "discovery", doccrawl.TierDiscovery.String())
	assert.Equal(t, "crawl", doccrawl.TierCrawl.String())
}
