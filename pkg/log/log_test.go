package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pageid/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err    error
		level  string
		format string
		want   string
	}{
		"json": {
			level:  "info",
			format: "json",
			want:   `"msg":"resolved"`,
		},
		"logfmt": {
			level:  "debug",
			format: "logfmt",
			want:   "msg=resolved",
		},
		"text alias level": {
			level:  "trace",
			format: "text",
			want:   "resolved",
		},
		"invalid level": {
			level:  "loud",
			format: "text",
			err:    log.ErrInvalidLevel,
		},
		"invalid format": {
			level:  "info",
			format: "xml",
			err:    log.ErrInvalidFormat,
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			h, err := log.CreateHandlerWithStrings(buf, tc.level, tc.format)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)

			slog.New(h).Info("resolved", slog.String("path", "/pages/index.page.tsx"))
			assert.Contains(t, buf.String(), tc.want)
			assert.Contains(t, buf.String(), "/pages/index.page.tsx")
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	h, err := log.CreateHandlerWithStrings(buf, "warning", "text")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
