package layer

import (
	"errors"

	"github.com/wippyai/vk-validation/vk"
)

var (
	ErrNotFound = errors.New("no context registered for key")
	ErrKeyInUse = errors.New("key already denotes a live context")
)

// Store maps dispatch keys to contexts. It does not lock; State owns the
// lock every access goes through.
type Store struct {
	entries map[vk.Key]*Context
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[vk.Key]*Context)}
}

// Register binds key to c. A key that already denotes a live context is
// rejected rather than overwritten.
func (s *Store) Register(key vk.Key, c *Context) error {
	if _, ok := s.entries[key]; ok {
		return ErrKeyInUse
	}
	s.entries[key] = c
	return nil
}

// Lookup returns the context registered under key.
func (s *Store) Lookup(key vk.Key) (*Context, error) {
	c, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Unregister removes key. Removing an absent key fails, so each context is
// removed exactly once.
func (s *Store) Unregister(key vk.Key) error {
	if _, ok := s.entries[key]; !ok {
		return ErrNotFound
	}
	delete(s.entries, key)
	return nil
}

// Len returns the number of live contexts.
func (s *Store) Len() int {
	return len(s.entries)
}

func (s *Store) clear() {
	clear(s.entries)
}
