package segmentation

import "time"

// Timer is a cancellable scheduled callback
type Timer interface {
	Stop() bool
}

// Scheduler abstracts timer scheduling so tests can drive stage
// transitions deterministically instead of waiting on wall-clock time
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

// NewScheduler returns the wall-clock scheduler backed by time.AfterFunc
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) Now() time.Time {
	return time.Now()
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
