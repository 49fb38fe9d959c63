package jobs

import (
	"sync"
	"time"
)

// Type represents job type.
type Type string

const (
	TypeList    Type = "list"
	TypePreview Type = "preview"
)

// Status represents job status.
type Status string

const (
	StatusPending    Status = "pending"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusSuperseded Status = "superseded"
)

// Done reports whether the status is final.
func (s Status) Done() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSuperseded
}

// Job holds a single background load.
type Job struct {
	// immutable fields
	ID     int64
	Type   Type
	View   string // the view the result is delivered to
	Target string // path being listed or previewed

	// state
	mu          sync.RWMutex
	Status      Status
	Error       string
	EnqueuedAt  time.Time
	StartedAt   time.Time
	CompletedAt time.Time
}

func (j *Job) setStatus(s Status) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = s
	switch {
	case s == StatusRunning:
		j.StartedAt = time.Now()
	case s.Done():
		j.CompletedAt = time.Now()
	}
}

// Snapshot returns a copy of important fields for UI.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return JobSnapshot{
		ID:          j.ID,
		Type:        j.Type,
		View:        j.View,
		Target:      j.Target,
		Status:      j.Status,
		Error:       j.Error,
		EnqueuedAt:  j.EnqueuedAt,
		StartedAt:   j.StartedAt,
		CompletedAt: j.CompletedAt,
	}
}

// JobSnapshot is a read-only view for UI.
type JobSnapshot struct {
	ID          int64
	Type        Type
	View        string
	Target      string
	Status      Status
	Error       string
	EnqueuedAt  time.Time
	StartedAt   time.Time
	CompletedAt time.Time
}

// Elapsed returns how long the job ran, or has been running so far.
func (s JobSnapshot) Elapsed() time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	if s.CompletedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.CompletedAt.Sub(s.StartedAt)
}
