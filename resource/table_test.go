package resource

import (
	"testing"
)

type testObserver struct {
	events []Event
}

func (o *testObserver) OnResourceEvent(e Event) {
	o.events = append(o.events, e)
}

func TestUnifiedTable_Basic(t *testing.T) {
	table := NewTable()

	h := table.Insert(typeBuffer, 0, "test")
	if h == 0 {
		t.Fatal("Expected non-zero handle")
	}

	val, ok := table.Get(h)
	if !ok {
		t.Fatal("Get failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	if _, ok = table.GetTyped(h, typeBuffer); !ok {
		t.Fatal("GetTyped with correct type failed")
	}
	if _, ok = table.GetTyped(h, typeImage); ok {
		t.Fatal("GetTyped with wrong type should fail")
	}

	val, ok = table.Remove(h)
	if !ok {
		t.Fatal("Remove failed")
	}
	if val != "test" {
		t.Fatalf("Expected 'test', got %v", val)
	}

	if table.Len() != 0 {
		t.Fatal("Expected Len() == 0 after Remove")
	}
}

func TestUnifiedTable_Observer(t *testing.T) {
	table := NewTable()
	obs := &testObserver{}
	table.Subscribe(obs)

	dev := table.Insert(typeDevice, 0, nil)
	if len(obs.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(obs.events))
	}
	if obs.events[0].Type != EventCreated || obs.events[0].Object != typeDevice {
		t.Fatal("Expected device EventCreated")
	}
	if obs.events[0].Handle != dev {
		t.Fatal("Wrong handle in event")
	}

	table.Remove(dev)
	if len(obs.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(obs.events))
	}
	if obs.events[1].Type != EventDestroyed {
		t.Fatal("Expected EventDestroyed")
	}
}

func TestUnifiedTable_RemoveCascades(t *testing.T) {
	table := NewTable()
	var destroyed []Handle
	table.Subscribe(ObserverFunc(func(e Event) {
		if e.Type == EventDestroyed {
			destroyed = append(destroyed, e.Handle)
		}
	}))

	dev := table.Insert(typeDevice, 0, nil)
	buf := table.Insert(typeBuffer, dev, nil)
	img := table.Insert(typeImage, dev, nil)
	other := table.Insert(typeDevice, 0, nil)

	if got := table.Count(typeBuffer) + table.Count(typeImage); got != 2 {
		t.Fatalf("Expected 2 device children, got %d", got)
	}

	table.Remove(dev)

	if len(destroyed) != 3 {
		t.Fatalf("Expected 3 destroy events, got %d", len(destroyed))
	}
	if destroyed[2] != dev {
		t.Fatal("Expected the owner to be destroyed last")
	}
	for _, h := range []Handle{buf, img} {
		if _, ok := table.Get(h); ok {
			t.Fatalf("Child %d should be destroyed with its owner", h)
		}
	}
	if _, ok := table.Get(other); !ok {
		t.Fatal("Unrelated object should survive")
	}
	if table.Count(typeDevice) != 1 {
		t.Fatalf("Expected 1 device, got %d", table.Count(typeDevice))
	}
}

func TestUnifiedTable_Close(t *testing.T) {
	table := NewTable()

	table.Insert(typeBuffer, 0, "a")
	table.Insert(typeBuffer, 0, "b")

	if err := table.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if h := table.Insert(typeBuffer, 0, "c"); h != 0 {
		t.Fatal("Expected Insert to fail after Close")
	}
}

func TestUnifiedTable_DropperInterface(t *testing.T) {
	table := NewTable()
	d := &dropCounter{}

	h := table.Insert(typeBuffer, 0, d)
	table.Remove(h)

	if d.count != 1 {
		t.Fatalf("Expected Drop() to be called once, called %d times", d.count)
	}
}
