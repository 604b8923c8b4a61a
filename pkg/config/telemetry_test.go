package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupTelemetry(t *testing.T) {
	oldTP, oldMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(oldTP)
		otel.SetMeterProvider(oldMP)
	})

	buf := &bytes.Buffer{}
	telemetry, err := SetupTelemetry(context.Background(), buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "telemetry-check")
	span.End()

	require.NoError(t, telemetry.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "telemetry-check")
	assert.Contains(t, buf.String(), "laplog")
}
