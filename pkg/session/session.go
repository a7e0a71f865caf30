// Package session records diagnostic frames and replays them.
//
// A [Session] collects every frame emitted by a debugger it is attached to
// (it implements the debugger's Recorder interface). Sessions can be kept in
// an in-memory [Store], written to and read from JSON files, and folded into
// loop steps with [Group] for step-by-step replay.
//
// # Usage
//
//	s := session.New()
//	d := dbg.New(os.Stderr, dbg.Options{Recorder: s})
//	// ... run the program under inspection
//	if err := session.ExportJSON("run.json", s); err != nil {
//	    return err
//	}
//
// Sessions hold rendered frames only; the inspected values themselves are
// never retained.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/dbgview/pkg/errors"
	"github.com/matzehuels/dbgview/pkg/observability"
	"github.com/matzehuels/dbgview/pkg/render"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist in a store.
	ErrNotFound = errors.New(errors.ErrCodeSessionNotFound, "session not found")
)

// Session is an ordered list of recorded frames.
type Session struct {
	ID        string
	StartedAt time.Time

	mu     sync.RWMutex
	frames []render.Frame
}

// New creates an empty session with a random id.
func New() *Session {
	s := &Session{ID: uuid.NewString(), StartedAt: time.Now()}
	observability.Session().OnSessionStarted(context.Background(), s.ID)
	return s
}

// Record appends f. It is safe for concurrent use.
func (s *Session) Record(f render.Frame) {
	s.mu.Lock()
	s.frames = append(s.frames, f)
	n := len(s.frames)
	s.mu.Unlock()
	observability.Session().OnFrameRecorded(context.Background(), s.ID, n)
}

// Frames returns a copy of the recorded frames in emission order.
func (s *Session) Frames() []render.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]render.Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// Len returns the number of recorded frames.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// BlockCounts returns the number of blocks of each frame.
func (s *Session) BlockCounts() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make([]int, len(s.frames))
	for i, f := range s.frames {
		counts[i] = len(f.Blocks)
	}
	return counts
}
