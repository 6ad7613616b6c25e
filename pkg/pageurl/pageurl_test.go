package pageurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pageid/pkg/pageurl"
)

func TestPageContextRequestURL(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		url  string
		want string
	}{
		"pathname":       {url: "/test", want: "/test/index.pageContext.json"},
		"trailing slash": {url: "/test/", want: "/test/index.pageContext.json/"},
		"root":           {url: "/", want: "/index.pageContext.json"},
		"nested":         {url: "/products/42", want: "/products/42/index.pageContext.json"},
		"query":          {url: "/search?q=shoes", want: "/search/index.pageContext.json?q=shoes"},
		"hash":           {url: "/docs#intro", want: "/docs/index.pageContext.json#intro"},
		"root query":     {url: "/?lang=en", want: "/index.pageContext.json?lang=en"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := pageurl.PageContextRequestURL(tc.url)
			assert.Equal(t, tc.want, got)
			assert.True(t, pageurl.IsPageContextRequestURL(got))

			back, ok := pageurl.PageURL(got)
			require.True(t, ok)
			assert.Equal(t, tc.url, back)
		})
	}
}

func TestPageURLRejectsOtherURLs(t *testing.T) {
	t.Parallel()

	_, ok := pageurl.PageURL("/test")
	assert.False(t, ok)
	assert.False(t, pageurl.IsPageContextRequestURL("/test/index.json"))
}
