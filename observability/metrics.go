// Package observability provides an OpenTelemetry-based metrics extension
// for stride. Register it with an ext.Registry to record system-wide
// counters for status changes, step advances, and terminal completions.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/xraph/stride"
	"github.com/xraph/stride/ext"
	"github.com/xraph/stride/id"
)

// meterName is the instrumentation scope name for stride metrics.
const meterName = "github.com/xraph/stride"

// Compile-time interface checks.
var (
	_ ext.Extension     = (*MetricsExtension)(nil)
	_ ext.StatusChanged = (*MetricsExtension)(nil)
	_ ext.StepAdvanced  = (*MetricsExtension)(nil)
	_ ext.JobDone       = (*MetricsExtension)(nil)
)

// MetricsExtension records lifecycle metrics through OTel instruments.
//
// Instruments:
//   - stride.job.done (Int64Counter): terminal completions, with
//     attributes: cluster, status
//   - stride.step.advanced (Int64Counter): persisted step writes, with
//     attribute: cluster
//   - stride.status.changed (Int64Counter): persisted status writes, with
//     attributes: cluster, from, to
type MetricsExtension struct {
	done          metric.Int64Counter
	stepAdvanced  metric.Int64Counter
	statusChanged metric.Int64Counter
}

// NewMetricsExtension creates a MetricsExtension using the global OTel
// MeterProvider. If no MeterProvider is configured, noop instruments are
// used and the extension becomes a pass-through.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithMeter(otel.Meter(meterName))
}

// NewMetricsExtensionWithMeter creates a MetricsExtension with the
// provided meter. This variant allows injecting a specific MeterProvider
// for testing.
func NewMetricsExtensionWithMeter(meter metric.Meter) *MetricsExtension {
	// Create instruments once at construction time. On error the OTel API
	// returns noop instruments, so the extension degrades gracefully.
	done, dErr := meter.Int64Counter(
		"stride.job.done",
		metric.WithDescription("Terminal job completions"),
		metric.WithUnit("{job}"),
	)
	_ = dErr // noop fallback guaranteed by OTel API contract

	steps, sErr := meter.Int64Counter(
		"stride.step.advanced",
		metric.WithDescription("Persisted job step writes"),
		metric.WithUnit("{step}"),
	)
	_ = sErr // noop fallback guaranteed by OTel API contract

	statuses, stErr := meter.Int64Counter(
		"stride.status.changed",
		metric.WithDescription("Persisted job status writes"),
		metric.WithUnit("{change}"),
	)
	_ = stErr // noop fallback guaranteed by OTel API contract

	return &MetricsExtension{
		done:          done,
		stepAdvanced:  steps,
		statusChanged: statuses,
	}
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// OnStatusChanged implements ext.StatusChanged.
func (m *MetricsExtension) OnStatusChanged(ctx context.Context, jobID id.JobID, from, to stride.Status) error {
	m.statusChanged.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cluster", jobID.Cluster),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	))
	return nil
}

// OnStepAdvanced implements ext.StepAdvanced.
func (m *MetricsExtension) OnStepAdvanced(ctx context.Context, jobID id.JobID, _ int) error {
	m.stepAdvanced.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cluster", jobID.Cluster),
	))
	return nil
}

// OnJobDone implements ext.JobDone.
func (m *MetricsExtension) OnJobDone(ctx context.Context, jobID id.JobID, status stride.Status) error {
	m.done.Add(ctx, 1, metric.WithAttributes(
		attribute.String("cluster", jobID.Cluster),
		attribute.String("status", status.String()),
	))
	return nil
}
