package pagepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pageid/pkg/pagepath"
)

func TestToRootRelative(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err    error
		fsPath string
		root   string
		want   string
		wantOK bool
	}{
		"file under root": {
			fsPath: "/project/pages/index.page.tsx",
			root:   "/project",
			want:   "/pages/index.page.tsx",
			wantOK: true,
		},
		"root itself": {
			fsPath: "/project",
			root:   "/project",
			want:   "/",
			wantOK: true,
		},
		"root with trailing slash": {
			fsPath: "/project/pages/index.page.tsx",
			root:   "/project/",
			want:   "/pages/index.page.tsx",
			wantOK: true,
		},
		"filesystem root": {
			fsPath: "/opt/lib/index.js",
			root:   "/",
			want:   "/opt/lib/index.js",
			wantOK: true,
		},
		"drive root": {
			fsPath: "C:/project/pages/index.page.tsx",
			root:   "C:/project",
			want:   "/pages/index.page.tsx",
			wantOK: true,
		},
		"unclean path under root": {
			fsPath: "/project/pages/../renderer/+config.ts",
			root:   "/project",
			want:   "/renderer/+config.ts",
			wantOK: true,
		},
		"outside root": {
			fsPath: "/opt/lib/pages/about.page.tsx",
			root:   "/project",
		},
		"sibling sharing a name prefix": {
			fsPath: "/project-other/pages/index.page.tsx",
			root:   "/project",
		},
		"escapes root after cleaning": {
			fsPath: "/project/../etc/passwd",
			root:   "/project",
		},
		"relative filesystem path": {
			fsPath: "pages/index.page.tsx",
			root:   "/project",
			err:    pagepath.ErrNotFilesystemAbsolute,
		},
		"relative root": {
			fsPath: "/project/pages/index.page.tsx",
			root:   "project",
			err:    pagepath.ErrNotFilesystemAbsolute,
		},
		"windows separators": {
			fsPath: `C:\project\pages\index.page.tsx`,
			root:   "C:/project",
			err:    pagepath.ErrNotPosixPath,
		},
		"empty root": {
			fsPath: "/project/pages/index.page.tsx",
			root:   "",
			err:    pagepath.ErrEmptyPath,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := pagepath.ToRootRelative(tc.fsPath, tc.root)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.False(t, ok)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToFilesystemAbsolute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err     error
		relPath string
		root    string
		want    string
	}{
		"file": {
			relPath: "/pages/about.page.tsx",
			root:    "/project",
			want:    "/project/pages/about.page.tsx",
		},
		"root": {
			relPath: "/",
			root:    "/project",
			want:    "/project",
		},
		"root with trailing slash": {
			relPath: "/pages/about.page.tsx",
			root:    "/project/",
			want:    "/project/pages/about.page.tsx",
		},
		"filesystem root": {
			relPath: "/pages/about.page.tsx",
			root:    "/",
			want:    "/pages/about.page.tsx",
		},
		"drive root": {
			relPath: "/pages/about.page.tsx",
			root:    "C:/project",
			want:    "C:/project/pages/about.page.tsx",
		},
		"repeated slashes collapsed": {
			relPath: "/pages//x.tsx",
			root:    "/project",
			want:    "/project/pages/x.tsx",
		},
		"repeated leading slashes collapsed": {
			relPath: "//pages///about.page.tsx",
			root:    "/project",
			want:    "/project/pages/about.page.tsx",
		},
		"trailing slash": {
			relPath: "/pages/",
			root:    "/project",
			err:     pagepath.ErrNotRootRelative,
		},
		"missing leading slash": {
			relPath: "pages/about.page.tsx",
			root:    "/project",
			err:     pagepath.ErrNotRootRelative,
		},
		"parent segment": {
			relPath: "/../about.page.tsx",
			root:    "/project",
			err:     pagepath.ErrNotRootRelative,
		},
		"relative root": {
			relPath: "/pages/about.page.tsx",
			root:    "./project",
			err:     pagepath.ErrNotFilesystemAbsolute,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := pagepath.ToFilesystemAbsolute(tc.relPath, tc.root)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	roots := []string{"/project", "/", "/home/user/my-app", "C:/work/site", "C:/"}
	relPaths := []string{
		"/",
		"/pages/index.page.tsx",
		"/pages/about/+Page.tsx",
		"/.config/+config.ts",
		"/renderer/_default.page.server.ts",
	}

	for _, root := range roots {
		for _, rel := range relPaths {
			fsPath, err := pagepath.ToFilesystemAbsolute(rel, root)
			require.NoError(t, err)

			gotRel, ok, err := pagepath.ToRootRelative(fsPath, root)
			require.NoError(t, err)
			require.True(t, ok, "%q should be under %q", fsPath, root)
			assert.Equal(t, rel, gotRel, "root-relative round trip under %q", root)

			gotFS, err := pagepath.ToFilesystemAbsolute(gotRel, root)
			require.NoError(t, err)
			assert.Equal(t, fsPath, gotFS, "filesystem round trip under %q", root)
		}
	}
}

func TestOutsideRootIsAbsent(t *testing.T) {
	t.Parallel()

	for _, fsPath := range []string{
		"/opt/lib/pages/about.page.tsx",
		"/projec",
		"/project-other",
		"/project2/pages/index.page.tsx",
		"/",
	} {
		got, ok, err := pagepath.ToRootRelative(fsPath, "/project")
		require.NoError(t, err)
		assert.False(t, ok, "%q should be outside /project", fsPath)
		assert.Empty(t, got)
	}
}
