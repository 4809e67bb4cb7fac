// Package resource mints and tracks the object handles of the null driver.
//
// A table maps non-zero handles to Go values. Handle 0 is VK_NULL_HANDLE and
// never minted. Each object records its type and the object that owns it:
//
//	table := resource.NewTable()
//
//	dev := table.Insert(vk.DebugReportObjectTypeDeviceEXT, 0, device)
//	buf := table.Insert(vk.DebugReportObjectTypeBufferEXT, dev, buffer)
//
//	// Type-checked retrieval
//	value, ok := table.GetTyped(buf, vk.DebugReportObjectTypeBufferEXT) // ok
//	value, ok := table.GetTyped(buf, vk.DebugReportObjectTypeImageEXT)  // !ok
//
// # Ownership
//
// Removing an object removes everything it owns first, so destroying a
// device destroys the objects created from it.
//
// # Observers
//
// Observers see every creation and destruction:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    log.Printf("%s %d %s", e.Object, e.Handle, e.Type)
//	}))
//
// # Handle reuse
//
// Freed handles are minted again, like object addresses in a real driver.
// LocalBackend.SetReuse(false) keeps every handle unique.
package resource
