package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroTelemetryShutdown(t *testing.T) {
	require.NoError(t, Telemetry{}.Shutdown(context.Background()))
}

func TestConnTransport(t *testing.T) {
	require.Equal(t, "grpc", otlpConnConfig{GrpcEndpoint: "http://localhost:4317"}.transport())
	require.Equal(t, "http", otlpConnConfig{HttpEndpoint: "http://localhost:4318"}.transport())
	require.Equal(t, "http", otlpConnConfig{}.transport())
}

func TestSetupForTestingIsIdempotent(t *testing.T) {
	first := SetupForTesting("test:telemetry")
	second := SetupForTesting("test:telemetry")
	second()
	first()
}
