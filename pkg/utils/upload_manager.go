package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UploadManager handles upload file organization and path management
type UploadManager struct {
	BaseUploadDir string
}

// NewUploadManager creates a new upload manager
func NewUploadManager(baseUploadDir string) *UploadManager {
	return &UploadManager{
		BaseUploadDir: baseUploadDir,
	}
}

// EnsureDir creates the upload directory if it doesn't exist
func (um *UploadManager) EnsureDir() error {
	if err := os.MkdirAll(um.BaseUploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// StoredName builds a unique stored filename: timestamp prefix plus the
// sanitized client name, e.g. "20260102_150405_customers.csv"
func (um *UploadManager) StoredName(clientName string, now time.Time) string {
	return now.Format("20060102_150405_") + SanitizeFilename(clientName)
}

// Path returns the full path for a stored upload name
func (um *UploadManager) Path(storedName string) string {
	// Clean the filename to remove any path separators
	return filepath.Join(um.BaseUploadDir, filepath.Base(storedName))
}

// FileSize returns the size of a stored upload in bytes
func (um *UploadManager) FileSize(storedName string) (int64, error) {
	fileInfo, err := os.Stat(um.Path(storedName))
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}

// StaleFiles lists stored uploads older than maxAge
func (um *UploadManager) StaleFiles(maxAge time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(um.BaseUploadDir)
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			stale = append(stale, entry.Name())
		}
	}
	return stale, nil
}

// EmptyFiles lists zero-byte stored uploads regardless of age. These
// are failed or aborted uploads with nothing worth keeping.
func (um *UploadManager) EmptyFiles() ([]string, error) {
	entries, err := os.ReadDir(um.BaseUploadDir)
	if err != nil {
		return nil, err
	}

	var empty []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		size, err := um.FileSize(entry.Name())
		if err != nil {
			continue
		}
		if size == 0 {
			empty = append(empty, entry.Name())
		}
	}
	return empty, nil
}

// Remove deletes a stored upload
func (um *UploadManager) Remove(storedName string) error {
	return os.Remove(um.Path(storedName))
}

// SanitizeFilename strips path components and replaces characters that
// are unsafe in a stored filename
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "upload.csv"
	}
	return b.String()
}

// HasCSVExtension is the actually-enforced upload rule: accept iff the
// filename ends in ".csv" (case-insensitive)
func HasCSVExtension(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".csv")
}
