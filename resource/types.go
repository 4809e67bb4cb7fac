package resource

import "github.com/wippyai/vk-validation/vk"

// Handle is an object handle minted by a table.
// Handle 0 is VK_NULL_HANDLE and always invalid.
type Handle uint64

// Type is the object type a handle was minted for.
type Type = vk.DebugReportObjectTypeEXT

// Event types for object lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDestroyed
)

func (t EventType) String() string {
	if t == EventDestroyed {
		return "destroyed"
	}
	return "created"
}

// Event is an object lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Parent Handle
	Object Type
	Type   EventType
}

// Observer receives notifications about object lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) { f(e) }

// Backend provides the storage behind a table.
type Backend interface {
	// Create stores a value owned by parent and returns its handle.
	Create(typ Type, parent Handle, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Drop removes an object and returns its value.
	// Returns (nil, false) if the handle is not live.
	Drop(handle Handle) (any, bool)

	// Close releases every object held by the backend.
	Close() error
}

// Table mints handles for driver objects and tracks their ownership.
type Table interface {
	// Insert adds a value owned by parent and returns its handle.
	Insert(typ Type, parent Handle, value any) Handle

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// GetTyped retrieves a value only if it was minted for typ.
	GetTyped(handle Handle, typ Type) (any, bool)

	// Remove destroys an object and everything it owns.
	Remove(handle Handle) (any, bool)

	// Subscribe adds an observer for lifecycle events.
	Subscribe(Observer)

	// Len returns the number of live objects.
	Len() int

	// Count returns the number of live objects of typ.
	Count(typ Type) int

	// Close destroys every object and stops minting handles.
	Close() error
}

// Dropper is optionally implemented by values that need cleanup when their
// object is destroyed.
type Dropper interface {
	Drop()
}
