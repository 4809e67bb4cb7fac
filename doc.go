// Package vkvalidation is a parameter validation layer for a Vulkan-style
// graphics API, written in Go.
//
// The layer sits between an application and a driver. Every entry point
// checks its arguments before forwarding: structure type tags, required
// pointers and handles, enumeration and flag ranges, array lengths, device
// features and limits, and cross-parameter rules such as queue family
// indices or render pass usage. Problems are delivered to debug-report
// callbacks; when the configured severity is reached the call is blocked
// and returns VK_ERROR_VALIDATION_FAILED_EXT without reaching the driver.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	vkvalidation/
//	├── enum/          Enumeration and flag descriptors: range checks, names, parsing
//	├── vk/            API types: handles, enums, flags, create-info structures
//	├── errors/        Structured validation errors, message codes and severities
//	├── diag/          Reports, debug-report callback registry, sinks and history
//	├── tracker/       Queue family and render pass usage tracking
//	├── resource/      Dispatch-key tables mapping handles to per-instance state
//	├── layer/         The validating entry points and the Dispatch interface
//	├── nulldriver/    An in-memory driver the layer can forward to
//	├── config/        TOML settings, environment overrides, hot reload
//	├── scenario/      YAML scripts of API calls with expected outcomes
//	└── cmd/vkcheck/   CLI running scenarios and inspecting enumerations
//
// # Quick Start
//
// Put the layer in front of a driver and call through it:
//
//	drv := nulldriver.New()
//	l := layer.New(drv, layer.WithSettings(layer.DefaultSettings()))
//
//	var inst vk.Instance
//	if res := l.CreateInstance(&vk.InstanceCreateInfo{
//	    SType: vk.StructureTypeInstanceCreateInfo,
//	}, &inst); res != vk.Success {
//	    log.Fatal(res)
//	}
//	defer l.DestroyInstance(inst)
//
// # Reporting
//
// Settings decide which severities are reported (report_flags) and which
// block the call (block_on). Reports go to every registered debug-report
// callback, to the optional sink, and to the per-instance history. A
// callback returning true aborts the call.
//
// # Thread Safety
//
// Layer is safe for concurrent use. Per-instance and per-device state is
// looked up by dispatch key and guarded by the tables in resource.
// Settings can be swapped at runtime with ApplySettings.
package vkvalidation
