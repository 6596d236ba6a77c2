package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics holds the comparison pipeline metrics
type BusinessMetrics struct {
	ComparisonsTotal   metric.Int64Counter
	ComparisonDuration metric.Float64Histogram
	StageDuration      metric.Float64Histogram
	SnapshotsLoaded    metric.Int64Counter
	StudentsCompared   metric.Int64Histogram
	StudentsDropped    metric.Int64Counter
}

// CreateBusinessMetrics creates application-specific metrics
func CreateBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	comparisonsTotal, err := meter.Int64Counter(
		"comparisons_total",
		metric.WithDescription("Total number of grade comparisons by outcome"),
	)
	if err != nil {
		return nil, err
	}

	comparisonDuration, err := meter.Float64Histogram(
		"comparison_duration_seconds",
		metric.WithDescription("End to end comparison duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	stageDuration, err := meter.Float64Histogram(
		"comparison_stage_duration_seconds",
		metric.WithDescription("Duration of each pipeline stage in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	snapshotsLoaded, err := meter.Int64Counter(
		"snapshots_loaded_total",
		metric.WithDescription("Total number of gradebook snapshots loaded"),
	)
	if err != nil {
		return nil, err
	}

	studentsCompared, err := meter.Int64Histogram(
		"students_compared",
		metric.WithDescription("Students present in both snapshots per comparison"),
	)
	if err != nil {
		return nil, err
	}

	studentsDropped, err := meter.Int64Counter(
		"students_dropped_total",
		metric.WithDescription("Students excluded by the join because they were missing from a snapshot or had no grade"),
	)
	if err != nil {
		return nil, err
	}

	return &BusinessMetrics{
		ComparisonsTotal:   comparisonsTotal,
		ComparisonDuration: comparisonDuration,
		StageDuration:      stageDuration,
		SnapshotsLoaded:    snapshotsLoaded,
		StudentsCompared:   studentsCompared,
		StudentsDropped:    studentsDropped,
	}, nil
}

// RecordComparison records the outcome of one comparison run
func (m *BusinessMetrics) RecordComparison(ctx context.Context, duration time.Duration, errorType string) {
	if m == nil {
		return
	}

	result := "success"
	if errorType != "" {
		result = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("result", result),
		attribute.String("error_type", errorType),
	)
	m.ComparisonsTotal.Add(ctx, 1, attrs)
	m.ComparisonDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordStage records the duration of a single pipeline stage
func (m *BusinessMetrics) RecordStage(ctx context.Context, stage string, duration time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("stage", stage)))
}

// RecordSnapshotLoaded counts one loaded gradebook snapshot
func (m *BusinessMetrics) RecordSnapshotLoaded(ctx context.Context) {
	if m == nil {
		return
	}
	m.SnapshotsLoaded.Add(ctx, 1)
}

// RecordJoin records how many students made it into a comparison and how
// many older-snapshot students the join left out
func (m *BusinessMetrics) RecordJoin(ctx context.Context, compared, dropped int) {
	if m == nil {
		return
	}
	m.StudentsCompared.Record(ctx, int64(compared))
	if dropped > 0 {
		m.StudentsDropped.Add(ctx, int64(dropped))
	}
}
