package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMetrics_Creation(t *testing.T) {
	t.Run("successfully create document metrics", func(t *testing.T) {
		metrics, err := NewDocumentMetrics()
		require.NoError(t, err)
		assert.NotNil(t, metrics)
		assert.NotNil(t, metrics.documentsAssembledCounter)
		assert.NotNil(t, metrics.documentsExportedCounter)
		assert.NotNil(t, metrics.persistenceFailedCounter)
		assert.NotNil(t, metrics.exportDurationHistogram)
	})
}

func TestDocumentMetrics_RecordDocumentAssembled(t *testing.T) {
	metrics, err := NewDocumentMetrics()
	require.NoError(t, err)

	t.Run("record document assembly", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		assert.NotPanics(t, func() {
			metrics.RecordDocumentAssembled(ctx, "Site web", 5)
		})
	})

	t.Run("record assembly with no sections", func(t *testing.T) {
		ctx := context.Background()
		assert.NotPanics(t, func() {
			metrics.RecordDocumentAssembled(ctx, "", 0)
		})
	})
}

func TestDocumentMetrics_RecordDocumentExported(t *testing.T) {
	metrics, err := NewDocumentMetrics()
	require.NoError(t, err)

	t.Run("record export with duration", func(t *testing.T) {
		ctx := context.Background()

		assert.NotPanics(t, func() {
			metrics.RecordDocumentExported(ctx, "Application mobile", 120*time.Millisecond)
		})
	})

	t.Run("record failed export", func(t *testing.T) {
		ctx := context.Background()

		assert.NotPanics(t, func() {
			metrics.RecordExportFailed(ctx, "Application mobile", 30*time.Millisecond)
		})
	})
}

func TestDocumentMetrics_RecordPersistenceFailed(t *testing.T) {
	metrics, err := NewDocumentMetrics()
	require.NoError(t, err)

	t.Run("record persistence failures", func(t *testing.T) {
		ctx := context.Background()

		assert.NotPanics(t, func() {
			metrics.RecordPersistenceFailed(ctx, "create", "session_expired")
			metrics.RecordPersistenceFailed(ctx, "list", "server_error")
		})
	})
}
