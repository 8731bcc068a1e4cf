package wizard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// StateTTL bounds how long an idle signup survives.
const StateTTL = 30 * time.Minute

var ErrNotFound = errors.New("wizard: state not found")

// Store keeps wizard states by id. Update must run fn atomically with
// respect to other writers of the same id; fn may be called more than once.
// When fn reports false the stored state and its expiry are left untouched.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Put(ctx context.Context, s State) error
	Update(ctx context.Context, id string, fn func(State) (State, bool)) (State, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore is a process-local Store for development and tests.
type MemoryStore struct {
	mu     sync.Mutex
	states *expirable.LRU[string, State]
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = 10000
	}
	return &MemoryStore{states: expirable.NewLRU[string, State](size, nil, ttl)}
}

func (m *MemoryStore) Get(ctx context.Context, id string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.states.Get(id)
	if !ok {
		return State{}, ErrNotFound
	}
	return s.clone(), nil
}

func (m *MemoryStore) Put(ctx context.Context, s State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states.Add(s.ID, s.clone())
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, id string, fn func(State) (State, bool)) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.states.Get(id)
	if !ok {
		return State{}, ErrNotFound
	}
	next, write := fn(cur.clone())
	if write {
		m.states.Add(id, next.clone())
	}
	return next, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states.Remove(id)
	return nil
}
