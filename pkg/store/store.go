// Package store owns the authoritative task collection and its
// snapshot persistence.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Sma11zen/taskcalendar/pkg/task"
)

// snapshotKey is the single durable key holding the whole collection.
const snapshotKey = "tasks"

// Persistence is the snapshot contract for the task collection.
type Persistence interface {
	Load() []*task.Task
	Save(tasks []*task.Task) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load() []*task.Task {
	data, err := p.d.Read(snapshotKey)
	if err != nil {
		// A missing snapshot is a first run, not a failure.
		return nil
	}
	var tasks []*task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		fmt.Fprintf(os.Stderr, "store: unreadable snapshot, starting empty: %v\n", err)
		return nil
	}
	return tasks
}

func (p *persistence) Save(tasks []*task.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return p.d.Write(snapshotKey, data)
}

// Store is the single-writer task collection. Every successful
// mutation writes the full snapshot; a write failure leaves the
// in-memory state authoritative for the session.
type Store struct {
	p      Persistence
	tasks  []*task.Task
	lastID int64

	// now feeds id allocation, injectable for tests.
	now func() time.Time
}

// New loads the snapshot and returns a ready store.
func New(p Persistence) *Store {
	s := &Store{p: p, now: time.Now}
	if p != nil {
		s.tasks = p.Load()
	}
	for _, t := range s.tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return s
}

// Tasks returns the collection in natural (creation) order. The slice
// is a copy; the tasks are shared.
func (s *Store) Tasks() []*task.Task {
	out := make([]*task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get finds a task by id.
func (s *Store) Get(id int64) (*task.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Create appends a new task with a fresh id, status todo and no time.
// A title that trims to empty is rejected and nil is returned.
func (s *Store) Create(title, date string, priority task.Priority) *task.Task {
	t := task.New(title, date, priority)
	if t == nil {
		return nil
	}
	t.ID = s.nextID()
	s.tasks = append(s.tasks, t)
	s.persist()
	return t
}

// Update merges the partial fields into the matching task. An unknown
// id is a silent no-op: the UI can race a delete against a pending
// edit.
func (s *Store) Update(id int64, u task.Update) {
	t, ok := s.Get(id)
	if !ok {
		return
	}
	t.Apply(u)
	s.persist()
}

// Delete removes the task; unknown ids are ignored.
func (s *Store) Delete(id int64) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist()
			return
		}
	}
}

// CycleStatus advances todo → inprogress → done → todo.
func (s *Store) CycleStatus(id int64) {
	t, ok := s.Get(id)
	if !ok {
		return
	}
	next := t.Status.Next()
	s.Update(id, task.Update{Status: &next})
}

// nextID derives a monotonic id from the creation timestamp, bumping
// past the last issued id when the clock has not advanced.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) persist() {
	if s.p == nil {
		return
	}
	if err := s.p.Save(s.tasks); err != nil {
		fmt.Fprintf(os.Stderr, "store: snapshot write failed: %v\n", err)
	}
}

// ErrNoPersistence is returned by callers that require a configured
// snapshot backend.
var ErrNoPersistence = errors.New("store: no persistence configured")
