package model

import "time"

// Segment is one customer cluster profile
type Segment struct {
	ID          int     `json:"id"`
	Size        int     `json:"size"`
	AvgAge      float64 `json:"avgAge"`
	AvgSpend    float64 `json:"avgSpend"`
	TopCategory string  `json:"topCategory"`
	Description string  `json:"description"`
}

// SegmentationResult is the full result object, shaped like the
// segment_profiles payload the dashboard consumes
type SegmentationResult struct {
	NumClusters     int       `json:"numClusters"`
	TotalCustomers  int       `json:"totalCustomers"`
	Clusters        []Segment `json:"clusters"`
	SilhouetteScore float64   `json:"silhouetteScore"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// ResultInfo identifies a stored result without carrying its payload
type ResultInfo struct {
	JobID     string    `json:"job_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// ResultSummary carries the derived metrics shown on the summary cards
type ResultSummary struct {
	NumClusters     int    `json:"numClusters"`
	TotalCustomers  int    `json:"totalCustomers"`
	AvgClusterSize  int    `json:"avgClusterSize"`
	SilhouetteScore string `json:"silhouetteScore"` // formatted to two decimals
}
