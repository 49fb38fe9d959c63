package jobs

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"explorer/internal/constants"
)

type slot struct {
	view string
	typ  Type
}

// Manager runs background loads, one goroutine per job. Only the newest job
// per (view, type) delivers its result; older ones end superseded.
type Manager struct {
	mu          sync.Mutex
	nextID      int64
	latest      map[slot]int64
	active      map[int64]*Job
	subscribers []func()
	history     []*Job
	historyMax  int

	// serializes the supersede check with delivery so results reach a
	// view in submission order
	deliverMu sync.Mutex
	wg        sync.WaitGroup

	debugPrint func(format string, args ...interface{})
}

// NewManager constructs a Manager. debugPrint may be nil.
func NewManager(debugPrint func(format string, args ...interface{})) *Manager {
	m := &Manager{
		latest:     make(map[slot]int64),
		active:     make(map[int64]*Job),
		historyMax: constants.JobHistoryMax,
		debugPrint: debugPrint,
	}
	m.dbg("manager created")
	return m
}

func (m *Manager) dbg(format string, args ...interface{}) {
	if m.debugPrint != nil {
		m.debugPrint("jobs: "+format, args...)
	}
}

// Subscribe registers a callback called on state changes.
func (m *Manager) Subscribe(cb func()) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, cb)
	n := len(m.subscribers)
	m.mu.Unlock()
	m.dbg("subscriber added (total=%d)", n)
}

func (m *Manager) notify() {
	// call without holding the lock to avoid re-entrancy
	m.mu.Lock()
	subs := append([]func(){}, m.subscribers...)
	m.mu.Unlock()
	for _, cb := range subs {
		// UI should marshal to main thread as needed
		cb()
	}
}

// Run starts work on its own goroutine and hands the outcome to deliver,
// unless a newer job with the same view and type was submitted while work
// was running. deliver runs on the job's goroutine and must not block.
func Run[T any](m *Manager, view string, t Type, target string, work func() (T, error), deliver func(T, error)) *Job {
	j := m.submit(view, t, target)
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.start(j)
		v, err := work()
		m.deliverMu.Lock()
		defer m.deliverMu.Unlock()
		if m.finish(j, err) {
			deliver(v, err)
		}
	}()
	return j
}

func (m *Manager) submit(view string, t Type, target string) *Job {
	j := &Job{
		ID:         atomic.AddInt64(&m.nextID, 1),
		Type:       t,
		View:       view,
		Target:     target,
		Status:     StatusPending,
		EnqueuedAt: time.Now(),
	}
	m.mu.Lock()
	key := slot{view, t}
	if prev, ok := m.latest[key]; ok {
		m.dbg("id=%d supersedes id=%d (%s/%s)", j.ID, prev, view, t)
	}
	m.latest[key] = j.ID
	m.active[j.ID] = j
	m.mu.Unlock()
	m.dbg("submit id=%d type=%s view=%s target=%s", j.ID, t, view, target)
	m.notify()
	return j
}

func (m *Manager) start(j *Job) {
	j.setStatus(StatusRunning)
	m.dbg("start id=%d", j.ID)
	m.notify()
}

// finish records the outcome and reports whether j is still the newest job
// for its slot.
func (m *Manager) finish(j *Job, err error) bool {
	m.mu.Lock()
	key := slot{j.View, j.Type}
	current := m.latest[key] == j.ID
	if current {
		delete(m.latest, key)
	}
	delete(m.active, j.ID)
	m.addHistoryLocked(j)
	m.mu.Unlock()

	switch {
	case !current:
		j.setStatus(StatusSuperseded)
		m.dbg("job superseded id=%d", j.ID)
	case err != nil:
		j.mu.Lock()
		j.Error = err.Error()
		j.mu.Unlock()
		j.setStatus(StatusFailed)
		m.dbg("job failed id=%d err=%v", j.ID, err)
	default:
		j.setStatus(StatusCompleted)
		m.dbg("job completed id=%d", j.ID)
	}
	m.notify()
	return current
}

// List returns snapshots of active jobs (oldest first) followed by history (newest first).
func (m *Manager) List() []JobSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]JobSnapshot, 0, len(m.active)+len(m.history))
	for _, j := range m.active {
		out = append(out, j.Snapshot())
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	for i := len(m.history) - 1; i >= 0; i-- {
		out = append(out, m.history[i].Snapshot())
	}
	return out
}

// Wait blocks until every started job has finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// addHistoryLocked appends a finished job to history and trims oldest; caller must hold m.mu
func (m *Manager) addHistoryLocked(j *Job) {
	m.history = append(m.history, j)
	if m.historyMax > 0 && len(m.history) > m.historyMax {
		drop := len(m.history) - m.historyMax
		m.history = append([]*Job{}, m.history[drop:]...)
	}
}
