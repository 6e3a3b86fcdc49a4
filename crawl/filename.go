package crawl

import (
	"regexp"
	"strconv"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_\-.]`)

// SafeFilename turns pageURL into a filesystem-safe name. Every occurrence
// of seedURL is removed first, and any character other than letters,
// digits, '_', '-' and '.' becomes '_'. The seed page itself maps to
// "homepage".
func SafeFilename(pageURL, seedURL string) string {
	name := pageURL
	if seedURL != "" {
		name = strings.ReplaceAll(name, seedURL, "")
	}
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	if name == "" {
		return "homepage"
	}
	return name
}

// PageKey returns the storage key of the n-th admitted page of a site.
func PageKey(pageURL, seedURL string, n int) string {
	return SafeFilename(pageURL, seedURL) + "_" + strconv.Itoa(n)
}
