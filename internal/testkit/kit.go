package testkit

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-segmentation/internal/model"
	"go-segmentation/internal/segmentation"
	"go-segmentation/internal/store"
)

// MustInitStore points the store at a fresh temp database
func MustInitStore(t *testing.T) {
	t.Helper()
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "test.db")))
}

// SeedUpload registers an upload record so jobs can start against it
func SeedUpload(t *testing.T, filename string) {
	t.Helper()
	require.NoError(t, store.SaveUpload(model.UploadedFile{
		Filename:     filename,
		OriginalName: filename,
		Size:         42,
		UploadedAt:   time.Now().UTC(),
	}))
}

// FakeScheduler drives scheduled callbacks manually so runner tests
// never wait on wall-clock time
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Time
	f       func()
	seq     int
	stopped bool
	fired   bool
}

func (ft *fakeTimer) Stop() bool {
	ft.stopped = true
	return !ft.fired
}

// NewFakeScheduler creates a scheduler frozen at start
func NewFakeScheduler(start time.Time) *FakeScheduler {
	return &FakeScheduler{now: start}
}

func (s *FakeScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) segmentation.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	ft := &fakeTimer{at: s.now.Add(d), f: f, seq: len(s.timers)}
	s.timers = append(s.timers, ft)
	return ft
}

// Pending counts scheduled callbacks that have not fired or been stopped
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ft := range s.timers {
		if !ft.fired && !ft.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, firing due callbacks in time
// order (registration order breaks ties). Callbacks may schedule new
// timers; those fire too when they fall within the window.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		s.mu.Lock()
		var next *fakeTimer
		for _, ft := range s.timers {
			if ft.fired || ft.stopped || ft.at.After(target) {
				continue
			}
			if next == nil || ft.at.Before(next.at) || (ft.at.Equal(next.at) && ft.seq < next.seq) {
				next = ft
			}
		}
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.fired = true
		s.now = next.at
		f := next.f
		s.mu.Unlock()

		f()
	}
}
