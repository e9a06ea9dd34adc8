package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-segmentation/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestDeleteEmptyResults(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveResult("job_full", model.SegmentationResult{NumClusters: 4}))
	_, err := db.Exec(`INSERT INTO results (job_id, payload, created_at) VALUES (?, ?, ?)`,
		"job_empty", "", time.Now().UTC())
	require.NoError(t, err)

	pruned, err := DeleteEmptyResults()
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	_, err = GetResult("job_full")
	assert.NoError(t, err)
	_, err = GetResult("job_empty")
	assert.Error(t, err)
}

func TestDeleteStaleStatuses(t *testing.T) {
	initTestDB(t)

	old := model.JobStatus{
		JobID: "job_x", Stage: "loading", Progress: 10,
		Message: "m", Timestamp: time.Now().Add(-2 * time.Hour),
	}
	fresh := old
	fresh.Progress = 50
	fresh.Timestamp = time.Now()
	require.NoError(t, SaveJobStatus(old))
	require.NoError(t, SaveJobStatus(fresh))

	pruned, err := DeleteStaleStatuses(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	s, err := GetLatestStatus("job_x")
	require.NoError(t, err)
	assert.Equal(t, 50, s.Progress)
}

func TestListResults(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveResult("job_a", model.SegmentationResult{NumClusters: 4}))
	require.NoError(t, SaveResult("job_b", model.SegmentationResult{NumClusters: 4}))

	results, err := ListResults()
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, info := range results {
		assert.NotEmpty(t, info.JobID)
		assert.False(t, info.CreatedAt.IsZero())
	}
}
