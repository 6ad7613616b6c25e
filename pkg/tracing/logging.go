// Package tracing times operations and reports them through [slog].
package tracing

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = (*loggingSpan)(nil)
)

type Tracer interface {
	StartSpan(ctx context.Context, operationName string) Span
}

type Span interface {
	SetBaggageItem(key string, value any)
	Finish()
}

// LoggingTracer logs each finished span at debug level.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) *LoggingTracer {
	return &LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(ctx context.Context, operationName string) Span {
	return &loggingSpan{
		ctx:           ctx,
		logger:        l.logger,
		operationName: operationName,
		baggage:       make(map[string]any),
		start:         time.Now(),
	}
}

type loggingSpan struct {
	ctx           context.Context //nolint:containedctx
	logger        *slog.Logger
	baggage       map[string]any
	start         time.Time
	operationName string
}

func (s *loggingSpan) Finish() {
	attrs := make([]slog.Attr, 0, len(s.baggage)+2)
	for _, k := range slices.Sorted(maps.Keys(s.baggage)) {
		attrs = append(attrs, slog.Any(k, s.baggage[k]))
	}

	attrs = append(attrs,
		slog.String("operation_name", s.operationName),
		slog.Float64("time_ms", time.Since(s.start).Seconds()*1e3),
	)

	s.logger.LogAttrs(s.ctx, slog.LevelDebug, "trace", attrs...)
}

// SetBaggageItem attaches a key/value pair that is logged when the span
// finishes. It is not safe for concurrent use.
func (s *loggingSpan) SetBaggageItem(key string, value any) {
	s.baggage[key] = value
}
