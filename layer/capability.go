package layer

import "github.com/wippyai/vk-validation/vk"

// Capabilities is what a connection caches at creation.
type Capabilities struct {
	Features vk.PhysicalDeviceFeatures
	Limits   vk.PhysicalDeviceLimits
	Memory   vk.PhysicalDeviceMemoryProperties
}

// CapabilityQuery returns the capabilities of a connection being created. It
// is called once per successful CreateDevice.
type CapabilityQuery interface {
	Query(physical vk.PhysicalDevice, info *vk.DeviceCreateInfo) Capabilities
}

// CapabilityQueryFunc adapts a function to CapabilityQuery.
type CapabilityQueryFunc func(vk.PhysicalDevice, *vk.DeviceCreateInfo) Capabilities

func (f CapabilityQueryFunc) Query(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) Capabilities {
	return f(pd, info)
}

// DispatchQuery asks the next handler for limits and memory properties and
// takes the enabled features from the create info.
type DispatchQuery struct {
	Next Dispatch
}

// Query implements CapabilityQuery.
func (q DispatchQuery) Query(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) Capabilities {
	var caps Capabilities
	var props vk.PhysicalDeviceProperties
	q.Next.GetPhysicalDeviceProperties(pd, &props)
	caps.Limits = props.Limits
	q.Next.GetPhysicalDeviceMemoryProperties(pd, &caps.Memory)
	caps.Features = EnabledFeatures(info)
	return caps
}

// EnabledFeatures returns the features a device create info enables. A
// PhysicalDeviceFeatures2KHR in the chain takes precedence over
// EnabledFeatures.
func EnabledFeatures(info *vk.DeviceCreateInfo) vk.PhysicalDeviceFeatures {
	if info == nil {
		return vk.PhysicalDeviceFeatures{}
	}
	if f2, ok := vk.Find[*vk.PhysicalDeviceFeatures2KHR](info.Next); ok {
		return f2.Features
	}
	if info.EnabledFeatures != nil {
		return *info.EnabledFeatures
	}
	return vk.PhysicalDeviceFeatures{}
}
