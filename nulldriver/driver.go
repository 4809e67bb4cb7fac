package nulldriver

import (
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/layer"
	"github.com/wippyai/vk-validation/resource"
	"github.com/wippyai/vk-validation/vk"
)

// Driver is an in-process implementation of layer.Dispatch. It accepts
// every call, mints handles for the objects it is asked to create and
// answers queries from its configured physical devices.
type Driver struct {
	physical []PhysicalDevice
	objects  *resource.UnifiedTable
	log      *zap.Logger
	keys     atomic.Uint64

	mu      sync.Mutex
	calls   []string
	results map[string]vk.Result
	corrupt map[string]bool
}

var _ layer.Dispatch = (*Driver)(nil)

// Option configures a Driver.
type Option func(*Driver)

// WithPhysicalDevices replaces the default physical device.
func WithPhysicalDevices(pds ...PhysicalDevice) Option {
	return func(d *Driver) { d.physical = pds }
}

// WithLogger sets the logger object lifecycle events go to.
func WithLogger(log *zap.Logger) Option {
	return func(d *Driver) { d.log = log }
}

// WithHandleReuse controls whether destroyed handles are minted again.
func WithHandleReuse(reuse bool) Option {
	return func(d *Driver) { d.objects.Backend().SetReuse(reuse) }
}

// New creates a driver exposing one default physical device.
func New(opts ...Option) *Driver {
	d := &Driver{
		physical: []PhysicalDevice{DefaultPhysicalDevice()},
		objects:  resource.NewTable(),
		results:  make(map[string]vk.Result),
		corrupt:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = Logger()
	}
	d.objects.Subscribe(resource.ObserverFunc(func(e resource.Event) {
		d.log.Debug("object "+e.Type.String(),
			zap.Stringer("type", e.Object),
			zap.Uint64("handle", uint64(e.Handle)),
			zap.Uint64("parent", uint64(e.Parent)))
	}))
	return d
}

// FailWith makes op return r. An error result skips the operation; any other
// result is returned after the operation completes.
func (d *Driver) FailWith(op string, r vk.Result) {
	d.mu.Lock()
	d.results[op] = r
	d.mu.Unlock()
}

// Corrupt makes the outputs of op carry values outside their declared
// ranges.
func (d *Driver) Corrupt(op string) {
	d.mu.Lock()
	d.corrupt[op] = true
	d.mu.Unlock()
}

// ClearFaults removes every injected fault.
func (d *Driver) ClearFaults() {
	d.mu.Lock()
	clear(d.results)
	clear(d.corrupt)
	d.mu.Unlock()
}

// Calls returns the names of the operations the driver received, in order.
func (d *Driver) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.calls)
}

// Called reports whether op reached the driver.
func (d *Driver) Called(op string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Contains(d.calls, op)
}

// ResetCalls forgets the recorded calls.
func (d *Driver) ResetCalls() {
	d.mu.Lock()
	d.calls = d.calls[:0]
	d.mu.Unlock()
}

// Subscribe observes object creation and destruction.
func (d *Driver) Subscribe(o resource.Observer) {
	d.objects.Subscribe(o)
}

// Live returns the number of live objects of typ.
func (d *Driver) Live(typ resource.Type) int {
	return d.objects.Count(typ)
}

// call records op and returns the injected result, if any.
func (d *Driver) call(op string) (vk.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, op)
	r, ok := d.results[op]
	return r, ok
}

// begin records op. It reports false with the result to return when an
// injected error must skip the operation.
func (d *Driver) begin(op string) (vk.Result, bool) {
	r, ok := d.call(op)
	if !ok {
		return vk.Success, true
	}
	return r, !r.IsError()
}

// done returns the injected non-error result of op, or Success.
func (d *Driver) done(op string) vk.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := d.results[op]; ok {
		return r
	}
	return vk.Success
}

func (d *Driver) corrupted(op string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.corrupt[op]
}

// simple runs an operation with no outputs.
func (d *Driver) simple(op string) vk.Result {
	if r, ok := d.begin(op); !ok {
		return r
	}
	return d.done(op)
}

func (d *Driver) newKey() vk.Key {
	return vk.Key(d.keys.Add(1) << 8)
}

func (d *Driver) mint(typ resource.Type, parent uint64, value any) uint64 {
	return uint64(d.objects.Insert(typ, resource.Handle(parent), value))
}

func (d *Driver) destroy(h uint64) {
	if h != 0 {
		d.objects.Remove(resource.Handle(h))
	}
}

func (d *Driver) lookup(h uint64, typ resource.Type) (any, bool) {
	return d.objects.GetTyped(resource.Handle(h), typ)
}
