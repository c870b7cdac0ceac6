package repeat

import (
	"sync"

	"github.com/jzx17/gorepeat/pkg/types"
)

// Task is the manager-facing surface of a repeat task.
type Task interface {
	// ID returns the task identity
	ID() string

	// Abort forcibly settles the task. A nil error settles it with
	// types.ErrExited.
	Abort(err error)

	settled() bool
}

// Manager is a registry of live repeat tasks keyed by identity. A task is a
// member exactly while it is unsettled.
type Manager struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// DefaultManager is the process-wide registry used unless WithManager
// overrides it. It is created once at process start. A host test runner
// should call DefaultManager.AbortAll between independent sessions so that
// no stale poll survives into the next one.
var DefaultManager = NewManager()

// NewManager creates an empty task registry
func NewManager() *Manager {
	return &Manager{
		tasks: make(map[string]Task),
	}
}

// Add registers a task. Tasks that have already settled are not registered.
func (m *Manager) Add(t Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.settled() {
		return
	}
	m.tasks[t.ID()] = t
}

// Remove deregisters the task with the given identity
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tasks, id)
}

// Has reports whether a task with the given identity is registered
func (m *Manager) Has(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.tasks[id]
	return ok
}

// Size returns the number of registered tasks
func (m *Manager) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.tasks)
}

// AbortAll aborts every registered task with types.ErrExited. Every task has
// settled and deregistered itself when it returns.
func (m *Manager) AbortAll() {
	m.mu.RLock()
	tasks := make([]Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	m.mu.RUnlock()

	// Abort outside the lock: settlement re-enters Remove.
	for _, t := range tasks {
		t.Abort(types.ErrExited)
	}
}
