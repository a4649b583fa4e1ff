package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestSpansAreNoopsWithoutProvider(t *testing.T) {
	ctx, span := Start(context.Background(), Tracer("test"), "op", attribute.String("k", "v"))
	End(span, errors.New("boom"))

	assert.Empty(t, TraceID(ctx))
	assert.Empty(t, TraceID(context.Background()))
}
