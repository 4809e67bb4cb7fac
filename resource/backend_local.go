package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("resource backend closed")

// LocalBackend is an in-memory backend. Freed handles are handed out again
// unless reuse is disabled, the way drivers recycle object addresses.
type LocalBackend struct {
	entries  []entry
	freeList []Handle
	reuse    bool
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value  any
	parent Handle
	typ    Type
	valid  bool
}

// NewLocalBackend creates a backend that reuses freed handles.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
		reuse:    true,
	}
}

// SetReuse controls whether freed handles are minted again.
func (b *LocalBackend) SetReuse(reuse bool) {
	b.mu.Lock()
	b.reuse = reuse
	b.mu.Unlock()
}

// Create stores a value and returns a handle.
func (b *LocalBackend) Create(typ Type, parent Handle, value any) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	e := entry{
		typ:    typ,
		parent: parent,
		value:  value,
		valid:  true,
	}

	if b.reuse && len(b.freeList) > 0 {
		handle := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
		return handle, nil
	}

	b.entries = append(b.entries, e)
	return Handle(len(b.entries)), nil
}

func (b *LocalBackend) lookup(handle Handle) (*entry, bool) {
	if handle == 0 || uint64(handle) > uint64(len(b.entries)) {
		return nil, false
	}
	e := &b.entries[handle-1]
	return e, e.valid
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Drop removes an object and returns its value.
func (b *LocalBackend) Drop(handle Handle) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}

	value := e.value
	*e = entry{}
	if b.reuse {
		b.freeList = append(b.freeList, handle)
	}
	return value, true
}

// Close releases all objects.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for i := range b.entries {
		if b.entries[i].valid {
			if d, ok := b.entries[i].value.(Dropper); ok {
				d.Drop()
			}
		}
	}

	b.entries = nil
	b.freeList = nil
	return nil
}

// TypeOf returns the object type of a handle.
func (b *LocalBackend) TypeOf(handle Handle) (Type, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	if !ok {
		return 0, false
	}
	return e.typ, true
}

// Parent returns the owner of a handle, 0 for a root object.
func (b *LocalBackend) Parent(handle Handle) (Handle, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	e, ok := b.lookup(handle)
	if !ok {
		return 0, false
	}
	return e.parent, true
}

// Children returns the live objects directly owned by handle.
func (b *LocalBackend) Children(handle Handle) []Handle {
	var out []Handle
	b.Each(func(h Handle, _ Type, parent Handle, _ any) bool {
		if parent == handle {
			out = append(out, h)
		}
		return true
	})
	return out
}

// Len returns the number of live objects.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, e := range b.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live objects.
func (b *LocalBackend) Each(fn func(Handle, Type, Handle, any) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(Handle(i+1), e.typ, e.parent, e.value) {
				break
			}
		}
	}
}
