// Package pageurl maps page URLs to the URLs used by client-side navigation
// to fetch page context.
package pageurl

import (
	"strings"
)

// Suffix is appended to a page pathname to form its page-context request URL.
const Suffix = "/index.pageContext.json"

// PageContextRequestURL returns the URL the client fetches to obtain the page
// context of url. A trailing slash on the pathname is kept after the suffix,
// and any query or fragment is kept as-is.
func PageContextRequestURL(url string) string {
	pathname, tail := splitPathname(url)

	if pathname == "" || pathname == "/" {
		return Suffix + tail
	}

	trimmed, trailingSlash := strings.CutSuffix(pathname, "/")

	out := trimmed + Suffix
	if trailingSlash {
		out += "/"
	}

	return out + tail
}

// IsPageContextRequestURL reports whether url was produced by
// [PageContextRequestURL].
func IsPageContextRequestURL(url string) bool {
	pathname, _ := splitPathname(url)
	pathname = strings.TrimSuffix(pathname, "/")

	return strings.HasSuffix(pathname, Suffix)
}

// PageURL reverses [PageContextRequestURL].
func PageURL(pageContextRequestURL string) (string, bool) {
	pathname, tail := splitPathname(pageContextRequestURL)

	trimmed, trailingSlash := strings.CutSuffix(pathname, "/")

	page, ok := strings.CutSuffix(trimmed, Suffix)
	if !ok {
		return "", false
	}

	if page == "" {
		return "/" + tail, true
	}

	if trailingSlash {
		page += "/"
	}

	return page + tail, true
}

func splitPathname(url string) (string, string) {
	i := strings.IndexAny(url, "?#")
	if i < 0 {
		return url, ""
	}

	return url[:i], url[i:]
}
