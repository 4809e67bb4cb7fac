package layer

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/vk"
)

// State is the process-scoped validation state: the context store and the
// trackers hanging off its contexts, all guarded by one exclusive lock.
//
// A State is initialised when its first session registers and torn down when
// its last session unregisters. Teardown clears the store and runs the
// registered teardown hooks. Tests build independent States.
type State struct {
	mu       sync.Mutex
	store    *Store
	sessions int
	onInit   []func()
	onDown   []func()
	log      *zap.Logger
}

// NewState creates an empty state.
func NewState() *State {
	return &State{store: NewStore(), log: Logger()}
}

// OnInit registers fn to run when the first session registers.
func (s *State) OnInit(fn func()) {
	s.mu.Lock()
	s.onInit = append(s.onInit, fn)
	s.mu.Unlock()
}

// OnTeardown registers fn to run when the last session unregisters.
func (s *State) OnTeardown(fn func()) {
	s.mu.Lock()
	s.onDown = append(s.onDown, fn)
	s.mu.Unlock()
}

// Sessions returns the number of live sessions.
func (s *State) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions
}

// Len returns the number of live contexts.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// Register binds key to c under the lock.
func (s *State) Register(key vk.Key, c *Context) error {
	var hooks []func()
	s.mu.Lock()
	err := s.registerLocked(key, c, &hooks)
	s.mu.Unlock()
	run(hooks)
	return err
}

// Lookup returns the context registered under key.
func (s *State) Lookup(key vk.Key) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Lookup(key)
}

// Unregister removes key under the lock.
func (s *State) Unregister(key vk.Key) error {
	var hooks []func()
	s.mu.Lock()
	err := s.unregisterLocked(key, &hooks)
	s.mu.Unlock()
	run(hooks)
	return err
}

// Do runs fn with the lock held. Construction of a context and its
// registration happen inside one Do so no lookup sees a partial context.
func (s *State) Do(fn func(tx *Tx) error) error {
	tx := &Tx{s: s}
	s.mu.Lock()
	err := fn(tx)
	s.mu.Unlock()
	run(tx.hooks)
	return err
}

// Tx is the view of a State inside Do.
type Tx struct {
	s     *State
	hooks []func()
}

// Register binds key to c.
func (tx *Tx) Register(key vk.Key, c *Context) error {
	return tx.s.registerLocked(key, c, &tx.hooks)
}

// Lookup returns the context registered under key.
func (tx *Tx) Lookup(key vk.Key) (*Context, error) {
	return tx.s.store.Lookup(key)
}

// Unregister removes key.
func (tx *Tx) Unregister(key vk.Key) error {
	return tx.s.unregisterLocked(key, &tx.hooks)
}

func (s *State) registerLocked(key vk.Key, c *Context, hooks *[]func()) error {
	if err := s.store.Register(key, c); err != nil {
		return err
	}
	s.log.Debug("context registered", zap.Uint64("key", uint64(key)), zap.Stringer("kind", c.Kind()))
	if c.Conn != nil {
		return nil
	}
	s.sessions++
	if s.sessions == 1 {
		s.log.Debug("validation state initialised")
		*hooks = append(*hooks, s.onInit...)
	}
	return nil
}

func (s *State) unregisterLocked(key vk.Key, hooks *[]func()) error {
	c, err := s.store.Lookup(key)
	if err != nil {
		return err
	}
	if err := s.store.Unregister(key); err != nil {
		return err
	}
	s.log.Debug("context unregistered", zap.Uint64("key", uint64(key)), zap.Stringer("kind", c.Kind()))
	if c.Conn != nil {
		return nil
	}
	s.sessions--
	if s.sessions == 0 {
		s.store.clear()
		s.log.Debug("validation state torn down")
		*hooks = append(*hooks, s.onDown...)
	}
	return nil
}

func run(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}
