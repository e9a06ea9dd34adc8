package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-segmentation/internal/charts"
	"go-segmentation/internal/config"
	"go-segmentation/internal/export"
	"go-segmentation/internal/model"
	"go-segmentation/internal/preview"
	"go-segmentation/internal/segmentation"
	"go-segmentation/internal/store"
	"go-segmentation/pkg/utils"
)

// previewMaxLine bounds a single CSV line when reading the preview head
const previewMaxLine = 1 << 20

// Handler wires the API endpoints to the runner, store and upload dir.
// State is explicit here instead of package globals so tests can build
// independent instances.
type Handler struct {
	cfg     *config.Config
	runner  *segmentation.Runner
	uploads *utils.UploadManager
}

// New creates a handler backed by the given config and runner
func New(cfg *config.Config, runner *segmentation.Runner) *Handler {
	return &Handler{
		cfg:     cfg,
		runner:  runner,
		uploads: utils.NewUploadManager(cfg.UploadDir),
	}
}

// Health reports service health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service healthy"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "customer-segmentation",
		"timestamp": time.Now().UTC(),
	})
}

// UploadFile accepts a CSV upload and returns a row-capped preview
// @Summary Upload a CSV file
// @Description Store a customer CSV and return a preview of up to 10 rows
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} map[string]interface{} "Upload stored"
// @Failure 400 {object} map[string]interface{} "No file or not a CSV"
// @Failure 500 {object} map[string]interface{} "Storage failure"
// @Router /uploads [post]
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes())

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}
	if !utils.HasCSVExtension(header.Filename) {
		writeError(w, http.StatusBadRequest, "Only CSV files are allowed")
		return
	}

	if err := h.uploads.EnsureDir(); err != nil {
		writeError(w, http.StatusInternalServerError, "Upload failed: "+err.Error())
		return
	}

	storedName := h.uploads.StoredName(header.Filename, time.Now())
	dst, err := os.Create(h.uploads.Path(storedName))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Upload failed: "+err.Error())
		return
	}
	size, err := io.Copy(dst, file)
	dst.Close()
	if err != nil {
		os.Remove(h.uploads.Path(storedName))
		writeError(w, http.StatusInternalServerError, "Upload failed: "+err.Error())
		return
	}

	uploaded := model.UploadedFile{
		Filename:     storedName,
		OriginalName: header.Filename,
		Size:         size,
		UploadedAt:   time.Now().UTC(),
	}
	if err := store.SaveUpload(uploaded); err != nil {
		os.Remove(h.uploads.Path(storedName))
		writeError(w, http.StatusInternalServerError, "Failed to save upload")
		return
	}

	tablePreview, err := h.readPreview(storedName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to parse preview: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "uploaded",
		"filename": storedName,
		"message":  "File uploaded successfully: " + storedName,
		"preview":  tablePreview,
	})
}

// ListUploads lists stored uploads
// @Summary List uploads
// @Tags uploads
// @Produce json
// @Success 200 {object} map[string]interface{} "Uploads"
// @Router /uploads [get]
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	uploads, err := store.ListUploads()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch uploads")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"uploads": uploads,
		"total":   len(uploads),
	})
}

// GetUploadPreview returns the 10-row preview for a stored upload
// @Summary Preview an upload
// @Tags uploads
// @Produce json
// @Param filename path string true "Stored filename"
// @Success 200 {object} model.TablePreview "Preview table"
// @Failure 404 {object} map[string]interface{} "Upload not found"
// @Router /uploads/{filename}/preview [get]
func (h *Handler) GetUploadPreview(w http.ResponseWriter, r *http.Request) {
	filename, ok := pathSegment(r.URL.Path, "/api/v1/uploads/", "/preview")
	if !ok {
		writeError(w, http.StatusBadRequest, "Filename is required")
		return
	}

	if _, err := store.GetUpload(filename); err != nil {
		writeError(w, http.StatusNotFound, "Upload not found: "+filename)
		return
	}

	tablePreview, err := h.readPreview(filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to parse preview: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tablePreview)
}

// StartJob launches a simulated segmentation job
// @Summary Start a segmentation job
// @Description Launch the staged mock pipeline for an uploaded file
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body object true "{\"filename\": \"...\"}"
// @Success 200 {object} map[string]interface{} "Job started"
// @Failure 400 {object} map[string]interface{} "Missing filename"
// @Failure 404 {object} map[string]interface{} "Upload not found"
// @Router /jobs [post]
func (h *Handler) StartJob(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Filename == "" {
		writeError(w, http.StatusBadRequest, "filename is required")
		return
	}

	if _, err := store.GetUpload(req.Filename); err != nil {
		writeError(w, http.StatusNotFound, "File not found: "+req.Filename)
		return
	}

	jobID := "job_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	if err := store.SaveJob(jobID, req.Filename); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save job")
		return
	}

	if err := h.runner.Start(jobID, req.Filename); err != nil {
		h.writeStartError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "started",
		"job_id":  jobID,
		"message": "Segmentation job started",
	})
}

// RetryJob reruns an existing job id with the same upload
// @Summary Retry a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Retry started"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Failure 409 {object} map[string]interface{} "Job still running"
// @Router /jobs/{id}/retry [post]
func (h *Handler) RetryJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathSegment(r.URL.Path, "/api/v1/jobs/", "/retry")
	if !ok {
		writeError(w, http.StatusBadRequest, "Job ID is required")
		return
	}

	job, err := store.GetJob(jobID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Job not found: "+jobID)
		return
	}

	if err := h.runner.Start(jobID, job.Filename); err != nil {
		h.writeStartError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "started",
		"job_id":  jobID,
		"message": "Segmentation job restarted",
	})
}

func (h *Handler) writeStartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, segmentation.ErrJobRunning):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, segmentation.ErrNoUpload):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Failed to start job: "+err.Error())
	}
}

// ListJobs lists all segmentation jobs
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} map[string]interface{} "Jobs"
// @Router /jobs [get]
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListJobs()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetJobStatus returns the latest progress snapshot plus stage statuses
// @Summary Get job status
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} map[string]interface{} "Status snapshot"
// @Failure 404 {object} map[string]interface{} "Job not found"
// @Router /jobs/{id}/status [get]
func (h *Handler) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathSegment(r.URL.Path, "/api/v1/jobs/", "/status")
	if !ok {
		writeError(w, http.StatusBadRequest, "Job ID is required")
		return
	}

	resp := map[string]interface{}{}
	if status, ok := h.runner.Status(jobID); ok {
		resp["status"] = status
		if stages, ok := h.runner.Stages(jobID); ok {
			resp["stages"] = stages
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	// Not in memory (e.g. after a restart): fall back to the store
	status, err := store.GetLatestStatus(jobID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Job not found: "+jobID)
		return
	}
	resp["status"] = status
	writeJSON(w, http.StatusOK, resp)
}

// GetJobLogs returns job log lines
// @Summary Get job logs
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Param limit query int false "Max lines (default 100)"
// @Success 200 {object} map[string]interface{} "Log lines"
// @Router /jobs/{id}/logs [get]
func (h *Handler) GetJobLogs(w http.ResponseWriter, r *http.Request) {
	jobID, ok := pathSegment(r.URL.Path, "/api/v1/jobs/", "/logs")
	if !ok {
		writeError(w, http.StatusBadRequest, "Job ID is required")
		return
	}

	limit := 100
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := store.GetJobLogs(jobID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve logs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"job_id": jobID,
		"logs":   logs,
		"count":  len(logs),
	})
}

// ListResults lists stored segmentation results
// @Summary List results
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{} "Results"
// @Router /results [get]
func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	results, err := store.ListResults()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"total":   len(results),
	})
}

// GetSegments returns the latest completed segmentation result
// @Summary Get segments
// @Description Latest cluster profiles with summary metrics
// @Tags results
// @Produce json
// @Success 200 {object} map[string]interface{} "Segmentation result"
// @Failure 404 {object} map[string]interface{} "No results yet"
// @Router /segments [get]
func (h *Handler) GetSegments(w http.ResponseWriter, r *http.Request) {
	res, err := store.GetLatestResult()
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":   "No segmentation results available",
			"message": "Run a segmentation job first",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":  res,
		"summary": segmentation.Summarize(res),
	})
}

// GetClusterPlotData returns the four chart datasets
// @Summary Get chart data
// @Tags results
// @Produce json
// @Success 200 {object} model.ChartData "Chart datasets"
// @Failure 404 {object} map[string]interface{} "No results yet"
// @Router /cluster-plot-data [get]
func (h *Handler) GetClusterPlotData(w http.ResponseWriter, r *http.Request) {
	res, err := store.GetLatestResult()
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":   "No chart data available",
			"message": "Run a segmentation job first",
		})
		return
	}

	writeJSON(w, http.StatusOK, charts.Build(res, time.Now().UTC()))
}

// ExportResults serves the latest result as a download
// @Summary Export results
// @Description Download the latest result as csv or json; pdf is not implemented
// @Tags results
// @Produce application/octet-stream
// @Param format path string true "csv | json | pdf"
// @Success 200 {file} file "Download"
// @Failure 400 {object} map[string]interface{} "Unsupported format"
// @Failure 404 {object} map[string]interface{} "No results yet"
// @Router /export/{format} [get]
func (h *Handler) ExportResults(w http.ResponseWriter, r *http.Request) {
	format, ok := pathSegment(r.URL.Path, "/api/v1/export/", "")
	if !ok {
		writeError(w, http.StatusBadRequest, "Export format is required")
		return
	}

	res, err := store.GetLatestResult()
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":   "No segmentation results available",
			"message": "Run a segmentation job first",
		})
		return
	}

	exp, err := export.Serialize(format, res)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+exp.Filename+`"`)
	w.Header().Set("Content-Type", exp.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(exp.Data)
}

// Cleanup sweeps the upload directory and the result-side tables: stale
// upload files, zero-byte upload files, stale progress snapshots and
// empty result rows all go.
// @Summary Clean up stale uploads and results
// @Description Remove stale and empty upload files, stale status snapshots and empty results
// @Tags maintenance
// @Produce json
// @Success 200 {object} map[string]interface{} "Cleaned files"
// @Router /cleanup [post]
func (h *Handler) Cleanup(w http.ResponseWriter, r *http.Request) {
	maxAge := utils.ParseDuration(h.cfg.CleanupAge, time.Hour)
	now := time.Now()

	stale, err := h.uploads.StaleFiles(maxAge, now)
	if err != nil && !os.IsNotExist(err) {
		writeError(w, http.StatusInternalServerError, "Cleanup failed: "+err.Error())
		return
	}
	empty, err := h.uploads.EmptyFiles()
	if err != nil && !os.IsNotExist(err) {
		writeError(w, http.StatusInternalServerError, "Cleanup failed: "+err.Error())
		return
	}

	cleaned := []string{}
	seen := map[string]bool{}
	for _, name := range append(stale, empty...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := h.uploads.Remove(name); err != nil {
			continue
		}
		store.DeleteUpload(name)
		cleaned = append(cleaned, name)
	}

	statuses, err := store.DeleteStaleStatuses(now.Add(-maxAge))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Cleanup failed: "+err.Error())
		return
	}
	results, err := store.DeleteEmptyResults()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Cleanup failed: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "success",
		"cleaned_files":   cleaned,
		"pruned_statuses": statuses,
		"pruned_results":  results,
		"message":         "Cleaned up " + strconv.Itoa(len(cleaned)) + " files",
	})
}

// readPreview reads just enough lines of a stored upload to build its
// preview: the header plus up to MaxRows non-blank data rows. Line-wise
// reading keeps wide rows intact instead of cutting the head at a byte
// boundary.
func (h *Handler) readPreview(storedName string) (model.TablePreview, error) {
	f, err := os.Open(h.uploads.Path(storedName))
	if err != nil {
		return model.TablePreview{}, err
	}
	defer f.Close()

	var lines []string
	dataRows := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), previewMaxLine)
	for sc.Scan() {
		line := sc.Text()
		lines = append(lines, line)
		if len(lines) > 1 && strings.TrimSpace(line) != "" {
			dataRows++
		}
		if dataRows == preview.MaxRows {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return model.TablePreview{}, err
	}
	return preview.Build(strings.Join(lines, "\n")), nil
}

// pathSegment extracts the variable segment between a route prefix and
// suffix, e.g. the job id in /api/v1/jobs/{id}/status
func pathSegment(path, prefix, suffix string) (string, bool) {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return "", false
	}
	seg := path[len(prefix) : len(path)-len(suffix)]
	if seg == "" || strings.Contains(seg, "/") {
		return "", false
	}
	return seg, true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"error": message})
}
