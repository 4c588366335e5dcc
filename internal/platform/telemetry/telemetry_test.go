package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/boxoffice-orchestrator/internal/platform/config"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		endpoint   string
		wantHost   string
		wantSecure bool
		wantErr    error
	}{
		{endpoint: "http://otel-collector:4318", wantHost: "otel-collector:4318"},
		{endpoint: "https://otel.example.com", wantHost: "otel.example.com", wantSecure: true},
		{endpoint: "otel-collector:4318", wantHost: "otel-collector:4318"},
		{endpoint: "", wantErr: errEmptyEndpoint},
	}

	for _, tt := range tests {
		host, secure, err := collector(tt.endpoint)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("collector(%q) error = %v, want %v", tt.endpoint, err, tt.wantErr)
			continue
		}
		if host != tt.wantHost || secure != tt.wantSecure {
			t.Errorf("collector(%q) = %q, %v, want %q, %v", tt.endpoint, host, secure, tt.wantHost, tt.wantSecure)
		}
	}
}

func TestExporters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  bool
	}{
		{name: "stdout", exporter: ExporterStdout},
		{name: "otlp", exporter: ExporterOTLP, endpoint: "http://localhost:4318"},
		{name: "otlp without endpoint", exporter: ExporterOTLP, wantErr: true},
		{name: "unknown", exporter: "zipkin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			spans, err := spanExporter(ctx, tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("spanExporter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if spans != nil {
				_ = spans.Shutdown(ctx)
			}

			points, err := metricExporter(ctx, tt.exporter, tt.endpoint)
			if (err != nil) != tt.wantErr {
				t.Fatalf("metricExporter() error = %v, wantErr %v", err, tt.wantErr)
			}
			if points != nil {
				_ = points.Shutdown(ctx)
			}
		})
	}
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	p, err := Setup(context.Background(), config.TelemetryConfig{}, "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Metrics != nil {
		t.Error("Metrics should be nil when telemetry is disabled")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

// Not parallel: Setup replaces the global providers.
func TestSetup_Stdout(t *testing.T) {
	cfg := config.TelemetryConfig{Enabled: true, Exporter: ExporterStdout, ServiceName: "boxoffice-orchestrator"}

	p, err := Setup(context.Background(), cfg, "boxoffice-worker")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if p.Metrics == nil {
		t.Fatal("Metrics = nil, want instruments")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestSetup_BadExporter(t *testing.T) {
	t.Parallel()

	cfg := config.TelemetryConfig{Enabled: true, Exporter: ExporterOTLP}
	if _, err := Setup(context.Background(), cfg, ""); err == nil {
		t.Error("Setup() with otlp and no endpoint returned nil")
	}
}

func TestMetrics_Record(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reader := sdkmetric.NewManualReader()
	metrics, err := NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), "boxoffice-orchestrator")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	metrics.RecordTask(ctx, "SendEmailMessage", "success", 20*time.Millisecond)
	metrics.RecordCompensation(ctx, "release seats", "failure")
	metrics.RecordLockConflict(ctx, "ratelimit")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			seen[m.Name] = true
		}
	}
	for _, name := range []string{
		"orchestrator.task.executions",
		"orchestrator.task.duration",
		"orchestrator.compensation.outcomes",
		"orchestrator.lock.conflicts",
	} {
		if !seen[name] {
			t.Errorf("metric %s not recorded", name)
		}
	}
}

func TestMetrics_NilRecordsNothing(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordTask(context.Background(), "TriggerWebhook", "failure", time.Second)
	m.RecordCompensation(context.Background(), "cancel points", "success")
	m.RecordLockConflict(context.Background(), "registration")
}
