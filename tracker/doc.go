// Package tracker holds the per-connection state consulted across calls.
//
// QueueFamilyTable records the queue families and counts requested when a
// device is created; it never changes afterwards. RenderPassUsage records,
// per render pass and subpass, whether color and depth/stencil attachments
// are referenced, so pipeline creation knows which state blocks the
// implementation will read.
//
// Neither type synchronizes: callers hold the layer's state lock.
package tracker
