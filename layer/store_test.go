package layer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/vk-validation/vk"
)

func session() *Context {
	return &Context{Session: &Session{}}
}

func connection(sess *Context) *Context {
	return &Context{Session: sess.Session, Conn: &Connection{Session: sess.Session}}
}

func TestStoreRegisterLookup(t *testing.T) {
	s := NewStore()
	a, b := session(), session()

	require.NoError(t, s.Register(1, a))
	require.NoError(t, s.Register(2, b))
	assert.Equal(t, 2, s.Len())

	got, err := s.Lookup(1)
	require.NoError(t, err)
	assert.Same(t, a, got)

	got, err = s.Lookup(2)
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = s.Lookup(3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreRejectsLiveKey(t *testing.T) {
	s := NewStore()
	a := session()
	require.NoError(t, s.Register(7, a))

	assert.ErrorIs(t, s.Register(7, session()), ErrKeyInUse)

	got, err := s.Lookup(7)
	require.NoError(t, err)
	assert.Same(t, a, got, "live context must not be overwritten")
}

func TestStoreUnregisterOnce(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Register(7, session()))

	require.NoError(t, s.Unregister(7))
	assert.ErrorIs(t, s.Unregister(7), ErrNotFound)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Register(7, session()), "key is free again after unregister")
}

func TestStateLifecycleHooks(t *testing.T) {
	st := NewState()
	var inits, downs int
	st.OnInit(func() { inits++ })
	st.OnTeardown(func() { downs++ })

	s1, s2 := session(), session()
	require.NoError(t, st.Register(1, s1))
	assert.Equal(t, 1, inits)
	require.NoError(t, st.Register(2, s2))
	assert.Equal(t, 1, inits, "init runs for the first session only")

	c := connection(s1)
	require.NoError(t, st.Register(10, c))
	assert.Equal(t, 2, st.Sessions(), "connections are not sessions")
	assert.Equal(t, 3, st.Len())

	require.NoError(t, st.Unregister(1))
	assert.Equal(t, 0, downs)

	require.NoError(t, st.Unregister(2))
	assert.Equal(t, 1, downs)
	assert.Equal(t, 0, st.Sessions())
	assert.Equal(t, 0, st.Len(), "teardown clears leftover connections")
}

func TestStateDoRegistersAtomically(t *testing.T) {
	st := NewState()
	sess := session()
	require.NoError(t, st.Register(1, sess))

	err := st.Do(func(tx *Tx) error {
		c := connection(sess)
		if err := tx.Register(2, c); err != nil {
			return err
		}
		got, err := tx.Lookup(2)
		if err != nil {
			return err
		}
		assert.Same(t, c, got)
		return nil
	})
	require.NoError(t, err)

	err = st.Do(func(tx *Tx) error {
		return tx.Register(2, connection(sess))
	})
	assert.ErrorIs(t, err, ErrKeyInUse)
}

func TestStateConcurrentDisjointKeys(t *testing.T) {
	st := NewState()
	root := session()
	require.NoError(t, st.Register(1, root))

	const workers = 8
	const perWorker = 200
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				key := vk.Key(1000 + w*perWorker + i)
				c := connection(root)
				if err := st.Register(key, c); err != nil {
					t.Errorf("register %d: %v", key, err)
					return
				}
				got, err := st.Lookup(key)
				if err != nil || got != c {
					t.Errorf("lookup %d returned %p, %v", key, got, err)
					return
				}
				if err := st.Unregister(key); err != nil {
					t.Errorf("unregister %d: %v", key, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, st.Len())
	assert.Equal(t, 1, st.Sessions())
}

func TestSettingsParseDebugAction(t *testing.T) {
	a, err := ParseDebugAction("log, callback")
	require.NoError(t, err)
	assert.Equal(t, ActionLog|ActionCallback, a)
	assert.Equal(t, "log,callback", a.String())

	a, err = ParseDebugAction("ignore")
	require.NoError(t, err)
	assert.Equal(t, ActionIgnore, a)
	assert.Equal(t, "ignore", a.String())

	_, err = ParseDebugAction("print")
	assert.Error(t, err)
}

func TestPathString(t *testing.T) {
	p := root("pCreateInfo").dot("pQueueCreateInfos").at(2).dot("queueCount")
	assert.Equal(t, "pCreateInfo.pQueueCreateInfos[2].queueCount", p.String())
}
