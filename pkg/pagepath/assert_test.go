package pagepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pageid/pkg/pagepath"
)

func TestToPosixPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "C:/project/pages/index.page.tsx", pagepath.ToPosixPath(`C:\project\pages\index.page.tsx`))
	assert.Equal(t, "/project/pages", pagepath.ToPosixPath("/project/pages"))
}

func TestAssertFilesystemAbsolute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err  error
		path string
	}{
		"posix absolute": {
			path: "/project/pages/index.page.tsx",
		},
		"filesystem root": {
			path: "/",
		},
		"drive root": {
			path: "C:/project/pages/index.page.tsx",
		},
		"empty": {
			path: "",
			err:  pagepath.ErrEmptyPath,
		},
		"relative": {
			path: "pages/index.page.tsx",
			err:  pagepath.ErrNotFilesystemAbsolute,
		},
		"dot relative": {
			path: "./pages/index.page.tsx",
			err:  pagepath.ErrNotFilesystemAbsolute,
		},
		"backslashes": {
			path: `C:\project\pages`,
			err:  pagepath.ErrNotPosixPath,
		},
		"drive without slash": {
			path: "C:project",
			err:  pagepath.ErrNotFilesystemAbsolute,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := pagepath.AssertFilesystemAbsolute(tc.path)
			if tc.err == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, pagepath.ErrContractViolation)
		})
	}
}

func TestIsRootRelativePath(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want bool
	}{
		"root":             {path: "/", want: true},
		"file":             {path: "/pages/index.page.tsx", want: true},
		"hidden directory": {path: "/.config/+config.ts", want: true},
		"no leading slash": {path: "pages/index.page.tsx"},
		"double leading":   {path: "//pages/index.page.tsx"},
		"empty segment":    {path: "/pages//index.page.tsx"},
		"trailing slash":   {path: "/pages/"},
		"dot segment":      {path: "/pages/./index.page.tsx"},
		"parent segment":   {path: "/../pages/index.page.tsx"},
		"backslash":        {path: `/pages\index.page.tsx`},
		"empty":            {path: ""},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pagepath.IsRootRelativePath(tc.path))

			err := pagepath.AssertRootRelativePath(tc.path)
			if tc.want {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, pagepath.ErrContractViolation)
			}
		})
	}
}

func TestIsPackageImport(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path string
		want bool
	}{
		"bare package":          {path: "some-pkg", want: true},
		"package sub-path":      {path: "some-pkg/pages/index.page.js", want: true},
		"scoped package":        {path: "@scope/pkg", want: true},
		"scoped sub-path":       {path: "@scope/pkg/renderer/+onRenderHtml.js", want: true},
		"dotted package name":   {path: "lodash.merge", want: true},
		"uppercase legacy name": {path: "JSONStream", want: true},
		"absolute":              {path: "/project/pages/index.page.tsx"},
		"relative":              {path: "./pages/index.page.tsx"},
		"parent relative":       {path: "../pages/index.page.tsx"},
		"hidden file":           {path: ".env"},
		"bare filename":         {path: "index.page.tsx"},
		"bare js filename":      {path: "index.page.js"},
		"bare tsx filename":     {path: "Page.tsx"},
		"js suffixed package":   {path: "chart.js", want: true},
		"js suffixed sub-path":  {path: "highlight.js/lib/core", want: true},
		"drive absolute":        {path: "C:/project/index.page.tsx"},
		"scope without name":    {path: "@scope"},
		"empty scope":           {path: "@/pkg"},
		"empty sub-path":        {path: "some-pkg//index.js"},
		"parent sub-path":       {path: "some-pkg/../index.js"},
		"scheme":                {path: "virtual:page-configs"},
		"backslash":             {path: `some-pkg\index.js`},
		"empty":                 {path: ""},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, pagepath.IsPackageImport(tc.path))

			err := pagepath.AssertPackageImport(tc.path)
			if tc.want {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, pagepath.ErrContractViolation)
			}
		})
	}
}

func TestClassificationExclusive(t *testing.T) {
	t.Parallel()

	values := []string{
		"/",
		"/project",
		"/pages/index.page.tsx",
		"C:/project/pages/index.page.tsx",
		"some-pkg",
		"some-pkg/pages/index.page.js",
		"@scope/pkg/hook.js",
		"./pages/index.page.tsx",
		"../index.page.tsx",
		"index.page.tsx",
		"pages/index.page.tsx",
		"//double",
		"",
	}

	for _, v := range values {
		if pagepath.IsPackageImport(v) {
			assert.False(t, pagepath.IsFilesystemAbsolute(v), "%q is both a package import and filesystem-absolute", v)
			assert.False(t, pagepath.IsRootRelativePath(v), "%q is both a package import and root-relative", v)
		}
	}
}

func TestMust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/pages/a.tsx", pagepath.Must(pagepath.NormalizeModuleID("/project/pages/a.tsx", "/project")))
	assert.Panics(t, func() {
		pagepath.Must(pagepath.BuildUnresolved("./relative.js"))
	})
}
