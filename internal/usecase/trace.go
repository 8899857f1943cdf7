package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("nhl-sheet-sync/internal/usecase")

// startUsecaseSpan only traces calls that arrive inside a request span.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name)
}

// spanFailure records err on span and returns it unchanged. Caller mistakes
// (invalid input, not found) are recorded without failing the span.
func spanFailure(span trace.Span, err error) error {
	if err == nil || !span.IsRecording() {
		return err
	}
	span.RecordError(err)
	if !errors.Is(err, ErrInvalidInput) && !errors.Is(err, ErrNotFound) {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
