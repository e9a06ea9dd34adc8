package segmentation

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"go-segmentation/internal/model"
	"go-segmentation/internal/store"
)

var (
	// ErrNoUpload means Start was called for a file that was never uploaded
	ErrNoUpload = errors.New("no uploaded file to segment")
	// ErrJobRunning means Start was called for a job id already in flight
	ErrJobRunning = errors.New("segmentation job already running")
)

// Stage completion offsets from start: 1s, then +1s, +2s, +2s, +2s
var stageOffsets = []time.Duration{
	1 * time.Second,
	2 * time.Second,
	4 * time.Second,
	6 * time.Second,
	8 * time.Second,
}

// stageStates maps each stage index to the FSM state entered while the
// stage runs
var stageStates = []model.JobState{
	model.StateLoading,
	model.StatePreprocessing,
	model.StateFeatureEngineering,
	model.StateClustering,
	model.StateResultsGeneration,
}

var stageMessages = []string{
	"Loading CSV file",
	"Handling missing values and outliers",
	"Extracting features",
	"Running KMeans with k=4",
	"Generating segment profiles",
}

const (
	progressInterval = 500 * time.Millisecond
	progressCap      = 95
)

type job struct {
	id       string
	filename string
	state    model.JobState
	stages   []model.Stage
	progress int
	timers   []Timer
	tick     Timer
}

// Runner drives the simulated segmentation pipeline. The five stage
// completions fire at fixed offsets via the injected Scheduler; a
// repeating tick advances the displayed progress by a random increment
// capped at 95 until the final stage forces it to 100. The timings
// never consult the uploaded data's size or content.
type Runner struct {
	mu    sync.Mutex
	sched Scheduler
	rng   *rand.Rand
	jobs  map[string]*job
}

// NewRunner creates a runner with the given scheduler and RNG seed
func NewRunner(sched Scheduler, seed int64) *Runner {
	return &Runner{
		sched: sched,
		rng:   rand.New(rand.NewSource(seed)),
		jobs:  make(map[string]*job),
	}
}

// Start begins a simulated run for an uploaded file. It fails without
// scheduling anything when the upload does not exist, and rejects a
// second start for a job id still in flight. Distinct jobs may run
// concurrently.
func (r *Runner) Start(jobID, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.jobs[jobID]; ok && !existing.state.Terminal() {
		return fmt.Errorf("job %s: %w", jobID, ErrJobRunning)
	}
	if _, err := store.GetUpload(filename); err != nil {
		return fmt.Errorf("%w: %s", ErrNoUpload, filename)
	}

	j := &job{
		id:       jobID,
		filename: filename,
		state:    stageStates[0],
		stages:   make([]model.Stage, len(model.StageNames)),
	}
	for i, name := range model.StageNames {
		j.stages[i] = model.Stage{Name: name, Status: model.StagePending}
	}
	j.stages[0].Status = model.StageRunning
	r.jobs[jobID] = j

	r.persistState(j, "Starting job...")
	r.logf(jobID, "Segmentation started for %s", filename)

	for i := range stageOffsets {
		idx := i
		j.timers = append(j.timers, r.sched.AfterFunc(stageOffsets[i], func() {
			r.completeStage(jobID, idx)
		}))
	}
	j.tick = r.sched.AfterFunc(progressInterval, func() {
		r.tickProgress(jobID)
	})

	return nil
}

// completeStage marks stage idx completed and starts the next one. On
// the final stage it forces progress to 100, generates the fabricated
// result and persists it.
func (r *Runner) completeStage(jobID string, idx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
	if !ok || j.state.Terminal() {
		return
	}

	j.stages[idx].Status = model.StageCompleted
	r.logf(jobID, "%s completed", j.stages[idx].Name)

	if idx+1 < len(j.stages) {
		j.stages[idx+1].Status = model.StageRunning
		j.state = stageStates[idx+1]
		r.persistState(j, stageMessages[idx+1])
		return
	}

	// Final stage: stop the ticker, force 100%, fabricate the result
	if j.tick != nil {
		j.tick.Stop()
	}
	j.progress = 100
	j.state = model.StateCompleted
	r.persistState(j, "Segmentation completed successfully")

	res := MockResult(r.sched.Now())
	if err := store.SaveResult(jobID, res); err != nil {
		log.Printf("failed to save result for job %s: %v", jobID, err)
	}
	r.logf(jobID, "Generated %d segments covering %d customers", res.NumClusters, res.TotalCustomers)
}

// tickProgress advances the displayed percentage by a random increment,
// capped at progressCap, and reschedules itself while the job runs
func (r *Runner) tickProgress(jobID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
	if !ok || j.state.Terminal() {
		return
	}

	j.progress += 5 + r.rng.Intn(11)
	if j.progress > progressCap {
		j.progress = progressCap
	}
	if err := store.SaveJobStatus(r.snapshot(j, stageMessage(j))); err != nil {
		log.Printf("failed to save progress for job %s: %v", jobID, err)
	}

	j.tick = r.sched.AfterFunc(progressInterval, func() {
		r.tickProgress(jobID)
	})
}

// Status returns the in-memory snapshot for a job
func (r *Runner) Status(jobID string) (model.JobStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
	if !ok {
		return model.JobStatus{}, false
	}
	return r.snapshot(j, stageMessage(j)), true
}

// Stages returns a copy of the per-stage display statuses for a job
func (r *Runner) Stages(jobID string) ([]model.Stage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[jobID]
	if !ok {
		return nil, false
	}
	stages := make([]model.Stage, len(j.stages))
	copy(stages, j.stages)
	return stages, true
}

func (r *Runner) snapshot(j *job, message string) model.JobStatus {
	return model.JobStatus{
		JobID:     j.id,
		Stage:     string(j.state),
		Progress:  j.progress,
		Message:   message,
		Timestamp: r.sched.Now(),
	}
}

// persistState writes both the job state and a status snapshot.
// Persistence failures are logged, not propagated: the simulation keeps
// going and the in-memory state stays authoritative.
func (r *Runner) persistState(j *job, message string) {
	if err := store.UpdateJobState(j.id, j.state); err != nil {
		log.Printf("failed to update state for job %s: %v", j.id, err)
	}
	if err := store.SaveJobStatus(r.snapshot(j, message)); err != nil {
		log.Printf("failed to save status for job %s: %v", j.id, err)
	}
}

func (r *Runner) logf(jobID, format string, args ...interface{}) {
	if err := store.SaveJobLog(jobID, fmt.Sprintf(format, args...)); err != nil {
		log.Printf("failed to save log for job %s: %v", jobID, err)
	}
}

func stageMessage(j *job) string {
	if j.state == model.StateCompleted {
		return "Segmentation completed successfully"
	}
	for i, s := range stageStates {
		if s == j.state {
			return stageMessages[i]
		}
	}
	return ""
}
