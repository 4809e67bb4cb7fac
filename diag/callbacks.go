package diag

import (
	"sync"

	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

// Callback is one registered debug-report callback.
type Callback struct {
	Flags    vk.DebugReportFlagsEXT
	Fn       vk.DebugReportCallback
	UserData any
}

// Callbacks is the per-session registry of debug-report callbacks. A report
// reaches a callback when its severity bit is in the callback's flags.
type Callbacks struct {
	mu    sync.RWMutex
	byID  map[vk.DebugReportCallbackEXT]Callback
	order []vk.DebugReportCallbackEXT
}

// NewCallbacks creates an empty registry.
func NewCallbacks() *Callbacks {
	return &Callbacks{byID: make(map[vk.DebugReportCallbackEXT]Callback)}
}

// Register installs cb under h, replacing any callback already there.
func (c *Callbacks) Register(h vk.DebugReportCallbackEXT, cb Callback) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[h]; !ok {
		c.order = append(c.order, h)
	}
	c.byID[h] = cb
}

// Unregister removes the callback under h and reports whether it existed.
func (c *Callbacks) Unregister(h vk.DebugReportCallbackEXT) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[h]; !ok {
		return false
	}
	delete(c.byID, h)
	for i, id := range c.order {
		if id == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of registered callbacks.
func (c *Callbacks) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// Report implements Sink. Callbacks run in registration order outside the
// registry lock so they may register or remove callbacks themselves.
func (c *Callbacks) Report(r Report) bool {
	c.mu.RLock()
	matched := make([]Callback, 0, len(c.order))
	for _, h := range c.order {
		cb := c.byID[h]
		if errors.Severity(cb.Flags)&r.Severity != 0 && cb.Fn != nil {
			matched = append(matched, cb)
		}
	}
	c.mu.RUnlock()

	abort := false
	for _, cb := range matched {
		if cb.Fn(vk.DebugReportFlagsEXT(r.Severity), r.ObjectType, r.Object, 0,
			r.Code.Number(), LayerPrefix, r.Message, cb.UserData) {
			abort = true
		}
	}
	return abort
}
