package model

import "time"

// UploadedFile holds metadata for a stored CSV upload
type UploadedFile struct {
	Filename     string    `json:"filename"`     // unique stored name (timestamp prefix)
	OriginalName string    `json:"originalName"` // name as uploaded by the client
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// Table is a parsed preview of an uploaded CSV: an ordered header list
// and row mappings keyed by header position
type Table struct {
	Headers []string            `json:"headers"`
	Rows    []map[string]string `json:"rows"`
}

// TablePreview is the preview payload returned after an upload
type TablePreview struct {
	Table          Table    `json:"table"`
	ColumnCount    int      `json:"columnCount"`
	RowCount       int      `json:"rowCount"` // preview rows only, capped
	NumericColumns []string `json:"numericColumns,omitempty"`
}
