package console

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var consoleTracer = otel.Tracer("jam-league/internal/interfaces/console")

// startSpan opens one span per menu action. Prompts and rendering stay
// inside it.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return consoleTracer.Start(ctx, name)
}
