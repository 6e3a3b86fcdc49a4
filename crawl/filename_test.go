package crawl_test

import (
	"testing"

	"github.com/fwojciec/doccrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		seed string
		want string
	}{
		{"seed page", "https://www.electron.build/", "https://www.electron.build/", "homepage"},
		{"path under seed", "https://www.electron.build/configuration", "https://www.electron.build/", "configuration"},
		{"nested path", "https://www.electron.build/api/electron-builder", "https://www.electron.build/", "api_electron-builder"},
		{"query string", "https://example.com/docs?x=1&y=2", "https://example.com/", "docs_x_1_y_2"},
		{"keeps dots", "https://example.com/file.html", "https://example.com/", "file.html"},
		{"unicode letters kept", "https://example.com/über", "https://example.com/", "über"},
		{"url outside seed", "https://other.com/a", "https://example.com/", "https___other.com_a"},
		{"empty seed", "https://example.com", "", "https___example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.SafeFilename(tt.url, tt.seed))
		})
	}
}

func TestPageKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "homepage_1", crawl.PageKey("https://example.com", "https://example.com", 1))
	assert.Equal(t, "a_2", crawl.PageKey("https://example.com/a", "https://example.com/", 2))
}
