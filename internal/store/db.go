package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-segmentation/internal/model"
)

var db *sql.DB

// InitDB opens the database and creates tables if missing
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS uploads (
			filename TEXT PRIMARY KEY,
			original_name TEXT,
			size INTEGER,
			uploaded_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			filename TEXT,
			state TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS job_status (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			stage TEXT,
			progress INTEGER,
			message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS job_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id TEXT,
			message TEXT,
			created_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			job_id TEXT PRIMARY KEY,
			payload TEXT,
			created_at DATETIME
		);`,
	}

	for _, t := range tables {
		if _, err := db.Exec(t); err != nil {
			return err
		}
	}

	return nil
}

// ------------------- Uploads -------------------

// SaveUpload records a stored upload
func SaveUpload(f model.UploadedFile) error {
	_, err := db.Exec(`INSERT INTO uploads (filename, original_name, size, uploaded_at) VALUES (?, ?, ?, ?)`,
		f.Filename, f.OriginalName, f.Size, f.UploadedAt.UTC())
	return err
}

// GetUpload fetches a stored upload by its unique name
func GetUpload(filename string) (model.UploadedFile, error) {
	var f model.UploadedFile
	err := db.QueryRow(`SELECT filename, original_name, size, uploaded_at FROM uploads WHERE filename = ?`, filename).
		Scan(&f.Filename, &f.OriginalName, &f.Size, &f.UploadedAt)
	if err != nil {
		return model.UploadedFile{}, fmt.Errorf("upload %s: %w", filename, err)
	}
	return f, nil
}

// ListUploads returns all uploads, newest first
func ListUploads() ([]model.UploadedFile, error) {
	rows, err := db.Query(`SELECT filename, original_name, size, uploaded_at FROM uploads ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []model.UploadedFile
	for rows.Next() {
		var f model.UploadedFile
		if err := rows.Scan(&f.Filename, &f.OriginalName, &f.Size, &f.UploadedAt); err != nil {
			return nil, err
		}
		uploads = append(uploads, f)
	}
	return uploads, rows.Err()
}

// DeleteUpload removes an upload record
func DeleteUpload(filename string) error {
	_, err := db.Exec(`DELETE FROM uploads WHERE filename = ?`, filename)
	return err
}

// ------------------- Jobs -------------------

// SaveJob stores a new segmentation job
func SaveJob(jobID, filename string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO jobs (id, filename, state, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		jobID, filename, string(model.StateIdle), now, now)
	return err
}

// UpdateJobState updates the job's FSM state
func UpdateJobState(jobID string, state model.JobState) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE jobs SET state = ?, updated_at = ? WHERE id = ?`, string(state), now, jobID)
	return err
}

// GetJob fetches a job record
func GetJob(jobID string) (model.Job, error) {
	var j model.Job
	var state string
	err := db.QueryRow(`SELECT id, filename, state, created_at, updated_at FROM jobs WHERE id = ?`, jobID).
		Scan(&j.ID, &j.Filename, &state, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return model.Job{}, fmt.Errorf("job %s: %w", jobID, err)
	}
	j.State = model.JobState(state)
	return j, nil
}

// ListJobs returns all jobs, newest first
func ListJobs() ([]model.Job, error) {
	rows, err := db.Query(`SELECT id, filename, state, created_at, updated_at FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		var state string
		if err := rows.Scan(&j.ID, &j.Filename, &state, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		j.State = model.JobState(state)
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// ------------------- Status snapshots -------------------

// SaveJobStatus appends a progress snapshot
func SaveJobStatus(s model.JobStatus) error {
	_, err := db.Exec(`INSERT INTO job_status (job_id, stage, progress, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.JobID, s.Stage, s.Progress, s.Message, s.Timestamp.UTC())
	return err
}

// GetLatestStatus fetches the newest snapshot for a job
func GetLatestStatus(jobID string) (model.JobStatus, error) {
	var s model.JobStatus
	err := db.QueryRow(`SELECT job_id, stage, progress, message, created_at FROM job_status
		WHERE job_id = ? ORDER BY id DESC LIMIT 1`, jobID).
		Scan(&s.JobID, &s.Stage, &s.Progress, &s.Message, &s.Timestamp)
	if err != nil {
		return model.JobStatus{}, fmt.Errorf("status for job %s: %w", jobID, err)
	}
	return s, nil
}

// ------------------- Logs -------------------

// SaveJobLog appends a log line for a job
func SaveJobLog(jobID, message string) error {
	_, err := db.Exec(`INSERT INTO job_logs (job_id, message, created_at) VALUES (?, ?, ?)`,
		jobID, message, time.Now().UTC())
	return err
}

// GetJobLogs returns up to limit log lines for a job, oldest first
func GetJobLogs(jobID string, limit int) ([]string, error) {
	rows, err := db.Query(`SELECT message FROM job_logs WHERE job_id = ? ORDER BY id ASC LIMIT ?`, jobID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		logs = append(logs, msg)
	}
	return logs, rows.Err()
}

// ------------------- Results -------------------

// SaveResult stores the segmentation result for a job as JSON
func SaveResult(jobID string, res model.SegmentationResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = db.Exec(`INSERT OR REPLACE INTO results (job_id, payload, created_at) VALUES (?, ?, ?)`,
		jobID, string(payload), time.Now().UTC())
	return err
}

// GetResult fetches the result for a specific job
func GetResult(jobID string) (model.SegmentationResult, error) {
	var payload string
	err := db.QueryRow(`SELECT payload FROM results WHERE job_id = ?`, jobID).Scan(&payload)
	if err != nil {
		return model.SegmentationResult{}, fmt.Errorf("result for job %s: %w", jobID, err)
	}
	var res model.SegmentationResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return model.SegmentationResult{}, err
	}
	return res, nil
}

// ListResults returns metadata for all stored results, newest first
func ListResults() ([]model.ResultInfo, error) {
	rows, err := db.Query(`SELECT job_id, created_at FROM results ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.ResultInfo
	for rows.Next() {
		var info model.ResultInfo
		if err := rows.Scan(&info.JobID, &info.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, info)
	}
	return results, rows.Err()
}

// DeleteEmptyResults removes result rows whose payload carries no data
func DeleteEmptyResults() (int64, error) {
	res, err := db.Exec(`DELETE FROM results WHERE payload IS NULL OR payload = '' OR payload = '{}'`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteStaleStatuses removes progress snapshots created before cutoff
func DeleteStaleStatuses(cutoff time.Time) (int64, error) {
	res, err := db.Exec(`DELETE FROM job_status WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetLatestResult fetches the newest completed result, if any
func GetLatestResult() (model.SegmentationResult, error) {
	var payload string
	err := db.QueryRow(`SELECT payload FROM results ORDER BY created_at DESC, job_id DESC LIMIT 1`).Scan(&payload)
	if err != nil {
		return model.SegmentationResult{}, fmt.Errorf("latest result: %w", err)
	}
	var res model.SegmentationResult
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return model.SegmentationResult{}, err
	}
	return res, nil
}
