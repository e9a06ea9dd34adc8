package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-segmentation/pkg/utils"
)

func TestFileSizeAndEmptyFiles(t *testing.T) {
	dir := t.TempDir()
	um := utils.NewUploadManager(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "full.csv"), []byte("a,b\n1,2\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.csv"), nil, 0644))

	size, err := um.FileSize("full.csv")
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)

	empty, err := um.EmptyFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"empty.csv"}, empty)
}

func TestStaleFiles(t *testing.T) {
	dir := t.TempDir()
	um := utils.NewUploadManager(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "old.csv"), []byte("x"), 0644))
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.csv"), old, old))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fresh.csv"), []byte("x"), 0644))

	stale, err := um.StaleFiles(time.Hour, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"old.csv"}, stale)
}
