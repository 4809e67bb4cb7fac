// Package nulldriver is an in-process implementation of layer.Dispatch that
// stands in for a real driver in tests and in vkcheck.
//
// The driver accepts every call. Creation calls mint handles through a
// resource table; dispatchable handles carry their own dispatch key, shared
// by the objects that dispatch through them. Queries answer from the
// configured PhysicalDevice values.
//
// Faults make the driver misbehave: FailWith forces the result of an
// operation and Corrupt makes its outputs carry out-of-range values. Calls
// records the operations that reached the driver.
package nulldriver
