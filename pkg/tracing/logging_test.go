package tracing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pageid/pkg/log"
	"github.com/macropower/pageid/pkg/tracing"
)

func TestLoggingTracer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h, err := log.CreateHandlerWithStrings(&buf, "debug", log.JSONFormat)
	require.NoError(t, err)

	span := tracing.NewLoggingTracer(slog.New(h)).StartSpan(context.Background(), "normalize")
	span.SetBaggageItem("ids", 3)
	span.Finish()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace", entry["msg"])
	assert.Equal(t, "normalize", entry["operation_name"])
	assert.InDelta(t, 3, entry["ids"], 0)
	assert.Contains(t, entry, "time_ms")
}

func TestLoggingTracerBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	h, err := log.CreateHandlerWithStrings(&buf, "info", log.TextFormat)
	require.NoError(t, err)

	tracing.NewLoggingTracer(slog.New(h)).StartSpan(context.Background(), "normalize").Finish()
	assert.Empty(t, buf.String())
}
