package crawl_test

import (
	"testing"
	"time"

	"github.com/fwojciec/doccrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	long := "https://example.com/very/long/path/to/documentation"
	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"shorter than max", "https://x.com", 50, "https://x.com"},
		{"keeps the tail", long, 20, ".../to/documentation"},
		{"exactly max", "https://example.com", 19, "https://example.com"},
		{"zero", "https://example.com", 0, ""},
		{"negative", "https://example.com", -1, ""},
		{"too small for ellipsis", "https://example.com", 3, "htt"},
		{"short url small max", "ab", 3, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.TruncateURL(tt.url, tt.maxLen))
		})
	}
}

func TestTruncateTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Getting", crawl.TruncateTitle("Getting Started", 7))
	assert.Equal(t, "Short", crawl.TruncateTitle("Short", 50))
	assert.Equal(t, "日本", crawl.TruncateTitle("日本語", 2))
	assert.Empty(t, crawl.TruncateTitle("abc", -1))
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", crawl.FormatBytes(512))
	assert.Equal(t, "1.5 KB", crawl.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", crawl.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~500 tokens", crawl.FormatTokens(500))
	assert.Equal(t, "~10k tokens", crawl.FormatTokens(10000))
	assert.Equal(t, "~2k tokens", crawl.FormatTokens(1500))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.50 seconds", crawl.FormatDuration(2500*time.Millisecond))
	assert.Equal(t, "90.00 seconds (1.5 minutes)", crawl.FormatDuration(90*time.Second))
}
