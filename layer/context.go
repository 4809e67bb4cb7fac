package layer

import (
	"sync/atomic"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/tracker"
	"github.com/wippyai/vk-validation/vk"
)

// Kind tells session contexts from connection contexts.
type Kind uint8

const (
	KindSession Kind = iota
	KindConnection
)

func (k Kind) String() string {
	if k == KindConnection {
		return "connection"
	}
	return "session"
}

// Context is the validation state registered under one dispatch key.
// Session is always set; for a connection it is the owning session. Conn is
// nil for session contexts.
type Context struct {
	Key     vk.Key
	Session *Session
	Conn    *Connection
}

// Kind reports whether c belongs to a session or a connection.
func (c *Context) Kind() Kind {
	if c.Conn != nil {
		return KindConnection
	}
	return KindSession
}

// Session is the state of one instance.
type Session struct {
	Instance        vk.Instance
	APIVersion      uint32
	ApplicationName string
	EngineName      string
	Extensions      map[string]bool

	Callbacks *diag.Callbacks
	History   *diag.History

	// callbacks chained into the create info; active while the instance
	// is being created or destroyed
	transient       []diag.Callback
	transientActive atomic.Bool

	// guarded by the State lock
	physical map[vk.PhysicalDevice]*PhysicalDeviceInfo
	conns    map[vk.Key]struct{}
}

// PhysicalDeviceInfo caches what the application learned about a physical
// device through queries. Guarded by the State lock.
type PhysicalDeviceInfo struct {
	QueueFamilyCount uint32
	QueueFamilies    bool
	Features         *vk.PhysicalDeviceFeatures
}

// Enabled reports whether an instance extension was enabled.
func (s *Session) Enabled(name string) bool {
	return s.Extensions[name]
}

func (s *Session) physicalInfo(pd vk.PhysicalDevice) *PhysicalDeviceInfo {
	if s.physical == nil {
		s.physical = make(map[vk.PhysicalDevice]*PhysicalDeviceInfo)
	}
	info, ok := s.physical[pd]
	if !ok {
		info = &PhysicalDeviceInfo{}
		s.physical[pd] = info
	}
	return info
}

// Connection is the state of one device. Everything except RenderPasses is
// written once before the context is registered and read lock-free after.
type Connection struct {
	Device     vk.Device
	Physical   vk.PhysicalDevice
	Session    *Session
	Extensions map[string]bool

	Features        vk.PhysicalDeviceFeatures
	Limits          vk.PhysicalDeviceLimits
	MemoryTypeCount uint32
	MemoryHeapCount uint32

	Queues *tracker.QueueFamilyTable

	// guarded by the State lock
	RenderPasses *tracker.RenderPassUsage
}

// Enabled reports whether a device extension was enabled.
func (c *Connection) Enabled(name string) bool {
	return c.Extensions[name]
}

func extensionSet(count uint32, names []string) map[string]bool {
	set := make(map[string]bool)
	for _, name := range elems(count, names) {
		set[name] = true
	}
	return set
}

func (s *Session) activeTransient() []diag.Callback {
	if !s.transientActive.Load() {
		return nil
	}
	return s.transient
}
