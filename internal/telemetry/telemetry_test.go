package telemetry

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNewProvider_Disabled(t *testing.T) {
	shutdown, err := NewProvider(context.Background(), Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewProvider_Stdout(t *testing.T) {
	var buf bytes.Buffer
	shutdown, err := NewProvider(context.Background(), Options{
		ServiceName:  "portal-api-test",
		Version:      "test",
		Stdout:       true,
		StdoutWriter: &buf,
	}, zerolog.Nop())
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "list-events")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "list-events")
	assert.Contains(t, buf.String(), "portal-api-test")
}
