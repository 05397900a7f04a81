package repositories

import (
	"encoding/json"
	"fmt"
	"sync"
)

// memoryStateRepository is a map-backed StateRepository. It round-trips
// values through JSON so stored data behaves exactly like the Postgres
// implementation. Used by tests and by DB-less development runs.
type memoryStateRepository struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

// NewMemoryStateRepository creates an empty in-memory StateRepository.
func NewMemoryStateRepository() StateRepository {
	return &memoryStateRepository{data: make(map[string]json.RawMessage)}
}

func (r *memoryStateRepository) Get(key string, dest interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok := r.data[key]
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decoding state key %q: %v", ErrPersistence, key, err)
	}
	return nil
}

func (r *memoryStateRepository) Set(key string, value interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encoding state key %q: %v", ErrPersistence, key, err)
	}
	r.data[key] = raw
	return nil
}

func (r *memoryStateRepository) Remove(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}
