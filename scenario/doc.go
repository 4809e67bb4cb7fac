// Package scenario runs YAML scripts of API calls through the validation
// layer against the null driver and checks each call's outcome.
//
// A script names the physical device it wants, the instance extensions to
// enable and a list of steps. Handles created by a step are bound with "as"
// and passed to later steps as $name; "instance" and "physical" are always
// bound.
//
//	name: sharing
//	steps:
//	  - op: createDevice
//	    as: device
//	    args:
//	      queues: [{family: 0, count: 1}]
//	  - op: createBuffer
//	    args: {device: $device, sharing: concurrent, families: [0]}
//	    expect: blocked
//	    reports: [INVALID_USAGE]
//
// Enumerated and flag arguments take API names with or without their common
// prefix, or numbers, so out-of-range values can be written directly.
package scenario
