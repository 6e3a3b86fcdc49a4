package crawl

import (
	"fmt"
	"time"
)

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// TruncateTitle returns at most n runes of title.
func TruncateTitle(title string, n int) string {
	r := []rune(title)
	if len(r) <= n {
		return title
	}
	return string(r[:max(n, 0)])
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// FormatDuration formats d as seconds with two decimals, plus minutes
// once it reaches a minute.
func FormatDuration(d time.Duration) string {
	s := fmt.Sprintf("%.2f seconds", d.Seconds())
	if d >= time.Minute {
		s += fmt.Sprintf(" (%.1f minutes)", d.Minutes())
	}
	return s
}
