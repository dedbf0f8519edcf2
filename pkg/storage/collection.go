package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Collection persists one named, ordered list of records through a Backend.
// Every operation loads the full list and every mutation rewrites it. The
// mutex is held across the whole read-modify-write cycle so two concurrent
// mutations cannot lose each other's updates.
type Collection[T any] struct {
	name    string
	backend Backend
	mu      sync.Mutex
}

func NewCollection[T any](backend Backend, name string) *Collection[T] {
	return &Collection[T]{
		name:    name,
		backend: backend,
	}
}

func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update applies fn to the current records and persists the result, all
// under the collection lock. Returning an error from fn aborts the write.
func (c *Collection[T]) Update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}

	updated, err := fn(records)
	if err != nil {
		return err
	}

	return c.save(updated)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := c.backend.Read(c.name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.name, err)
	}

	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}

	if err := c.backend.Write(c.name, data); err != nil {
		return fmt.Errorf("save %s: %w", c.name, err)
	}

	return nil
}
