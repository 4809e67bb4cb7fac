package layer

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

// Layer validates every call and forwards the ones that pass to the next
// handler. It implements Dispatch so layers and drivers stack.
type Layer struct {
	next  Dispatch
	state *State
	caps  CapabilityQuery
	extra diag.Sink
	log   *zap.Logger

	settings atomic.Pointer[Settings]
	logSink  atomic.Pointer[diag.Filter]
}

var _ Dispatch = (*Layer)(nil)

// Option configures a Layer.
type Option func(*Layer)

// WithState makes the layer use s instead of a fresh State.
func WithState(s *State) Option {
	return func(l *Layer) { l.state = s }
}

// WithSettings sets the initial settings.
func WithSettings(s Settings) Option {
	return func(l *Layer) { l.settings.Store(&s) }
}

// WithSink adds a sink that sees every report of every session.
func WithSink(s diag.Sink) Option {
	return func(l *Layer) { l.extra = s }
}

// WithCapabilityQuery replaces the capability query used by CreateDevice.
func WithCapabilityQuery(q CapabilityQuery) Option {
	return func(l *Layer) { l.caps = q }
}

// WithLogger sets the logger used for lifecycle events and the log sink.
func WithLogger(log *zap.Logger) Option {
	return func(l *Layer) { l.log = log }
}

// New creates a layer forwarding to next.
func New(next Dispatch, opts ...Option) *Layer {
	l := &Layer{next: next}
	for _, opt := range opts {
		opt(l)
	}
	if l.state == nil {
		l.state = NewState()
	}
	if l.caps == nil {
		l.caps = DispatchQuery{Next: next}
	}
	if l.log == nil {
		l.log = Logger()
	}
	if l.settings.Load() == nil {
		s := DefaultSettings()
		l.settings.Store(&s)
	}
	l.rebuildLogSink(l.settings.Load())
	l.state.OnTeardown(func() { _ = l.log.Sync() })
	return l
}

// State returns the state the layer registers contexts in.
func (l *Layer) State() *State { return l.state }

// Settings returns the settings in effect.
func (l *Layer) Settings() Settings { return *l.settings.Load() }

// ApplySettings swaps the settings. Calls in flight finish with whichever
// settings they loaded.
func (l *Layer) ApplySettings(s Settings) {
	l.rebuildLogSink(&s)
	l.settings.Store(&s)
	l.log.Debug("settings applied",
		zap.Stringer("report_flags", s.ReportFlags),
		zap.Stringer("block_on", s.BlockOn),
		zap.Stringer("debug_action", s.DebugAction))
}

func (l *Layer) rebuildLogSink(s *Settings) {
	l.logSink.Store(diag.NewFilter(diag.NewLogSink(l.log), s.ReportFlags, s.DisabledCodes))
}

// History returns the recent reports of the session owning instance.
func (l *Layer) History(instance vk.Instance) []diag.Report {
	c, err := l.state.Lookup(instance.Key)
	if err != nil {
		return nil
	}
	return c.Session.History.Recent()
}

// sessionContext resolves a session key or panics.
func (l *Layer) sessionContext(op string, key vk.Key) *Context {
	c, err := l.state.Lookup(key)
	if err != nil {
		panic(errors.Internal(op, "no session for dispatch key %#x", uint64(key)))
	}
	return c
}

// connContext resolves a connection key or panics.
func (l *Layer) connContext(op string, key vk.Key) *Context {
	c, err := l.state.Lookup(key)
	if err != nil || c.Conn == nil {
		panic(errors.Internal(op, "no connection for dispatch key %#x", uint64(key)))
	}
	return c
}

// sink builds the fan-out for one session under the current settings.
func (l *Layer) sink(s *Session, settings *Settings) diag.Sink {
	sinks := make([]diag.Sink, 0, 4)
	if settings.DebugAction&ActionLog != 0 {
		sinks = append(sinks, l.logSink.Load())
	}
	if settings.DebugAction&ActionCallback != 0 && s != nil {
		sinks = append(sinks, s.Callbacks)
		for _, cb := range s.activeTransient() {
			sinks = append(sinks, transientSink(cb))
		}
	}
	if s != nil {
		sinks = append(sinks, s.History)
	}
	sinks = append(sinks, l.extra)
	return diag.Multi(sinks...)
}

func transientSink(cb diag.Callback) diag.Sink {
	cbs := diag.NewCallbacks()
	cbs.Register(0, cb)
	return cbs
}
