package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("document-metrics")

// DocumentMetrics provides metrics collection for the document pipeline
type DocumentMetrics struct {
	documentsAssembledCounter metric.Int64Counter
	documentsExportedCounter  metric.Int64Counter
	persistenceFailedCounter  metric.Int64Counter
	exportDurationHistogram   metric.Float64Histogram
}

// NewDocumentMetrics creates a new document metrics collector
func NewDocumentMetrics() (*DocumentMetrics, error) {
	documentsAssembledCounter, err := meter.Int64Counter(
		"specgen.documents.assembled",
		metric.WithDescription("Total number of specifications assembled from the wizard"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, err
	}

	documentsExportedCounter, err := meter.Int64Counter(
		"specgen.documents.exported",
		metric.WithDescription("Total number of documents exported to HTML"),
		metric.WithUnit("{document}"),
	)
	if err != nil {
		return nil, err
	}

	persistenceFailedCounter, err := meter.Int64Counter(
		"specgen.persistence.failed",
		metric.WithDescription("Total number of failed persistence operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	exportDurationHistogram, err := meter.Float64Histogram(
		"specgen.export.duration",
		metric.WithDescription("Duration of document export in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &DocumentMetrics{
		documentsAssembledCounter: documentsAssembledCounter,
		documentsExportedCounter:  documentsExportedCounter,
		persistenceFailedCounter:  persistenceFailedCounter,
		exportDurationHistogram:   exportDurationHistogram,
	}, nil
}

// RecordDocumentAssembled records an assembly of a specification document
func (dm *DocumentMetrics) RecordDocumentAssembled(ctx context.Context, projectType string, sectionCount int) {
	dm.documentsAssembledCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("project.type", projectType),
			attribute.Int("section.count", sectionCount),
		),
	)
}

// RecordDocumentExported records a completed export with its duration
func (dm *DocumentMetrics) RecordDocumentExported(ctx context.Context, projectType string, duration time.Duration) {
	dm.documentsExportedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("project.type", projectType),
			attribute.String("status", "completed"),
		),
	)
	dm.exportDurationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("project.type", projectType),
			attribute.String("status", "completed"),
		),
	)
}

// RecordExportFailed records a failed export with its duration
func (dm *DocumentMetrics) RecordExportFailed(ctx context.Context, projectType string, duration time.Duration) {
	dm.persistenceFailedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", "export"),
			attribute.String("project.type", projectType),
		),
	)
	dm.exportDurationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("project.type", projectType),
			attribute.String("status", "failed"),
		),
	)
}

// RecordPersistenceFailed records a failed save or load against the API
func (dm *DocumentMetrics) RecordPersistenceFailed(ctx context.Context, operation, errorType string) {
	dm.persistenceFailedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("error.type", errorType),
		),
	)
}
