package resource

import (
	"errors"
	"sync"
	"testing"

	"github.com/wippyai/vk-validation/vk"
)

const (
	typeDevice = vk.DebugReportObjectTypeDeviceEXT
	typeBuffer = vk.DebugReportObjectTypeBufferEXT
	typeImage  = vk.DebugReportObjectTypeImageEXT
)

func TestLocalBackend_Basic(t *testing.T) {
	b := NewLocalBackend()

	handle, err := b.Create(typeBuffer, 0, "test value")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if handle == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := b.Get(handle)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	val, ok = b.Drop(handle)
	if !ok {
		t.Fatal("Drop failed")
	}
	if val != "test value" {
		t.Fatalf("Expected 'test value', got %v", val)
	}

	if _, ok = b.Get(handle); ok {
		t.Fatal("Expected Get to fail after Drop")
	}
	if _, ok = b.Drop(handle); ok {
		t.Fatal("Expected second Drop to fail")
	}
}

func TestLocalBackend_TypeAndParent(t *testing.T) {
	b := NewLocalBackend()

	dev, _ := b.Create(typeDevice, 0, nil)
	buf, _ := b.Create(typeBuffer, dev, nil)

	typ, ok := b.TypeOf(buf)
	if !ok || typ != typeBuffer {
		t.Fatalf("Expected buffer type, got %v", typ)
	}
	parent, ok := b.Parent(buf)
	if !ok || parent != dev {
		t.Fatalf("Expected parent %d, got %d", dev, parent)
	}
	parent, ok = b.Parent(dev)
	if !ok || parent != 0 {
		t.Fatalf("Expected root object, got parent %d", parent)
	}

	children := b.Children(dev)
	if len(children) != 1 || children[0] != buf {
		t.Fatalf("Expected [%d], got %v", buf, children)
	}
}

func TestLocalBackend_HandleReuse(t *testing.T) {
	b := NewLocalBackend()

	h1, _ := b.Create(typeBuffer, 0, 1)
	h2, _ := b.Create(typeBuffer, 0, 2)

	b.Drop(h2)

	h3, _ := b.Create(typeBuffer, 0, 3)
	if h3 != h2 {
		t.Fatalf("Expected freed handle %d to be reused, got %d", h2, h3)
	}
	if _, ok := b.Get(h1); !ok {
		t.Fatal("h1 should still be valid")
	}
}

func TestLocalBackend_NoReuse(t *testing.T) {
	b := NewLocalBackend()
	b.SetReuse(false)

	h1, _ := b.Create(typeBuffer, 0, 1)
	b.Drop(h1)

	h2, _ := b.Create(typeBuffer, 0, 2)
	if h2 == h1 {
		t.Fatal("Expected a fresh handle with reuse disabled")
	}
}

type dropCounter struct {
	count int
}

func (d *dropCounter) Drop() {
	d.count++
}

func TestLocalBackend_Close(t *testing.T) {
	b := NewLocalBackend()
	d := &dropCounter{}

	b.Create(typeBuffer, 0, d)
	b.Create(typeBuffer, 0, "b")

	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if d.count != 1 {
		t.Fatalf("Expected Drop() on close, called %d times", d.count)
	}

	_, err := b.Create(typeBuffer, 0, "test")
	if !errors.Is(err, ErrClosed) {
		t.Fatal("Expected ErrClosed after Close")
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}

func TestLocalBackend_Concurrent(t *testing.T) {
	b := NewLocalBackend()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			h, _ := b.Create(typeBuffer, 0, id)
			b.Get(h)
			b.Drop(h)
		}(i)
	}

	wg.Wait()

	if b.Len() != 0 {
		t.Fatalf("Expected Len() == 0, got %d", b.Len())
	}
}

func TestLocalBackend_Len(t *testing.T) {
	b := NewLocalBackend()

	if b.Len() != 0 {
		t.Fatal("Expected Len() == 0 initially")
	}

	h1, _ := b.Create(typeBuffer, 0, "a")
	h2, _ := b.Create(typeBuffer, 0, "b")
	b.Create(typeImage, 0, "c")

	if b.Len() != 3 {
		t.Fatalf("Expected Len() == 3, got %d", b.Len())
	}

	b.Drop(h1)
	if b.Len() != 2 {
		t.Fatalf("Expected Len() == 2, got %d", b.Len())
	}

	b.Drop(h2)
	if b.Len() != 1 {
		t.Fatalf("Expected Len() == 1, got %d", b.Len())
	}
}

func TestLocalBackend_Each(t *testing.T) {
	b := NewLocalBackend()

	b.Create(typeBuffer, 0, "a")
	b.Create(typeImage, 0, "b")
	b.Create(typeBuffer, 0, "c")

	count := 0
	b.Each(func(Handle, Type, Handle, any) bool {
		count++
		return true
	})
	if count != 3 {
		t.Fatalf("Expected to iterate over 3 items, got %d", count)
	}

	count = 0
	b.Each(func(Handle, Type, Handle, any) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("Expected to iterate over 1 item (early term), got %d", count)
	}
}

func TestLocalBackend_InvalidHandle(t *testing.T) {
	b := NewLocalBackend()

	if _, ok := b.Get(0); ok {
		t.Fatal("Handle 0 should be invalid")
	}
	if _, ok := b.TypeOf(0); ok {
		t.Fatal("Handle 0 should be invalid for TypeOf")
	}
	if _, ok := b.Drop(0); ok {
		t.Fatal("Handle 0 should fail Drop")
	}
	if _, ok := b.Get(999); ok {
		t.Fatal("Non-existent handle should be invalid")
	}
}
