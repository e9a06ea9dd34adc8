package model

import "time"

// JobState is the runner's finite-state-machine state
type JobState string

const (
	StateIdle               JobState = "idle"
	StateLoading            JobState = "loading"
	StatePreprocessing      JobState = "preprocessing"
	StateFeatureEngineering JobState = "feature_engineering"
	StateClustering         JobState = "clustering"
	StateResultsGeneration  JobState = "results_generation"
	StateCompleted          JobState = "completed"
	StateFailed             JobState = "failed"
)

// Terminal reports whether no further transitions can happen
func (s JobState) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// StageStatus is the display status of a single pipeline stage
type StageStatus string

const (
	StagePending   StageStatus = "pending"
	StageRunning   StageStatus = "running"
	StageCompleted StageStatus = "completed"
)

// Stage is one named step of the segmentation pipeline
type Stage struct {
	Name   string      `json:"name"`
	Status StageStatus `json:"status"`
}

// StageNames are the five display stages in execution order
var StageNames = []string{
	"Data Loading",
	"Data Preprocessing",
	"Feature Engineering",
	"Clustering",
	"Results Generation",
}

// JobStatus is a persisted progress snapshot, one per transition or tick.
// Shape matches the status JSON the frontend polls for.
type JobStatus struct {
	JobID     string    `json:"job_id"`
	Stage     string    `json:"stage"`
	Progress  int       `json:"progress"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Job is a segmentation job record
type Job struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	State     JobState  `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
