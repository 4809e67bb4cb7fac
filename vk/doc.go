// Package vk models the graphics API surface guarded by the validation layer.
//
// The model follows Vulkan 1.0 plus the surface, swapchain and debug-report
// extensions closely enough that validators can reason about the same struct
// graphs a C client would pass: count fields travel next to the slices they
// describe, required inputs and outputs are pointers, and extensible structs
// carry an explicit SType tag and a Next chain.
//
// # Handles
//
// Dispatchable handles (Instance, PhysicalDevice, Device, Queue,
// CommandBuffer) carry the dispatch Key of the table that serves them.
// A physical device shares its instance's key, and queues and command
// buffers share their device's key, so any call can be routed to the
// per-session or per-connection validation state from its first argument:
//
//	queue.Key == device.Key
//	physical.Key == instance.Key
//
// Non-dispatchable handles (Buffer, Image, RenderPass, ...) are plain 64-bit
// identifiers; zero is the null handle.
//
// # Enumerations
//
// Every enumerated and flag type is declared through package enum and
// implements enum.Value:
//
//	vk.ImageType(7).IsValid()            // false
//	vk.BufferUsageFlags(0x3).String()    // "VK_BUFFER_USAGE_TRANSFER_SRC_BIT|VK_BUFFER_USAGE_TRANSFER_DST_BIT"
//	vk.BufferUsageFlags(1 << 20).String() // "unrecognized enumerator"
//
// Types also implement encoding.TextUnmarshaler, so YAML and TOML documents
// can spell values by name.
package vk
