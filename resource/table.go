package resource

import (
	"sync"
)

// UnifiedTable implements Table on a LocalBackend.
type UnifiedTable struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

var _ Table = (*UnifiedTable)(nil)

// NewTable creates a new table with a LocalBackend.
func NewTable() *UnifiedTable {
	return &UnifiedTable{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle, or 0 once the table is closed.
func (t *UnifiedTable) Insert(typ Type, parent Handle, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(typ, parent, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Parent: parent,
		Object: typ,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *UnifiedTable) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetTyped retrieves a value only if it was minted for typ.
func (t *UnifiedTable) GetTyped(handle Handle, typ Type) (any, bool) {
	actual, ok := t.backend.TypeOf(handle)
	if !ok || actual != typ {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Remove destroys an object after destroying everything it owns, deepest
// first.
func (t *UnifiedTable) Remove(handle Handle) (any, bool) {
	typ, ok := t.backend.TypeOf(handle)
	if !ok {
		return nil, false
	}
	parent, _ := t.backend.Parent(handle)

	for _, child := range t.backend.Children(handle) {
		t.Remove(child)
	}

	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDestroyed,
		Handle: handle,
		Parent: parent,
		Object: typ,
		Value:  value,
	})

	return value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *UnifiedTable) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Len returns the number of live objects.
func (t *UnifiedTable) Len() int {
	return t.backend.Len()
}

// Count returns the number of live objects of typ.
func (t *UnifiedTable) Count(typ Type) int {
	n := 0
	t.backend.Each(func(_ Handle, ot Type, _ Handle, _ any) bool {
		if ot == typ {
			n++
		}
		return true
	})
	return n
}

// Close destroys every object and stops minting handles.
func (t *UnifiedTable) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	return t.backend.Close()
}

// Backend returns the underlying backend.
func (t *UnifiedTable) Backend() *LocalBackend {
	return t.backend
}

func (t *UnifiedTable) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
