package layer

import (
	"github.com/wippyai/vk-validation/vk"
)

// GetPhysicalDeviceFeatures validates the returned features and caches
// them for CreateDevice.
func (l *Layer) GetPhysicalDeviceFeatures(pd vk.PhysicalDevice, features *vk.PhysicalDeviceFeatures) vk.Result {
	const op = "vkGetPhysicalDeviceFeatures"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Required(root("pFeatures"), features != nil)
		},
		Post: func(c *Checker, _ vk.Result) {
			p := root("pFeatures")
			features.EachFeature(func(name string, v vk.Bool32) {
				c.postBool(p.dot(name), v)
			})
		},
		Track: func(vk.Result) {
			cp := *features
			_ = l.state.Do(func(*Tx) error {
				ctx.Session.physicalInfo(pd).Features = &cp
				return nil
			})
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceFeatures(pd, features)
	})
}

// GetPhysicalDeviceProperties validates the returned properties.
func (l *Layer) GetPhysicalDeviceProperties(pd vk.PhysicalDevice, props *vk.PhysicalDeviceProperties) vk.Result {
	const op = "vkGetPhysicalDeviceProperties"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Required(root("pProperties"), props != nil)
		},
		Post: func(c *Checker, _ vk.Result) {
			postProperties(c, root("pProperties"), props)
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceProperties(pd, props)
	})
}

func postProperties(c *Checker, p path, props *vk.PhysicalDeviceProperties) {
	c.postEnum(p.dot("deviceType"), props.DeviceType)

	lp := p.dot("limits")
	lim := &props.Limits
	for _, sc := range []struct {
		name string
		v    vk.SampleCountFlags
	}{
		{"framebufferColorSampleCounts", lim.FramebufferColorSampleCounts},
		{"framebufferDepthSampleCounts", lim.FramebufferDepthSampleCounts},
		{"framebufferStencilSampleCounts", lim.FramebufferStencilSampleCounts},
		{"framebufferNoAttachmentsSampleCounts", lim.FramebufferNoAttachmentsSampleCounts},
		{"sampledImageColorSampleCounts", lim.SampledImageColorSampleCounts},
		{"sampledImageIntegerSampleCounts", lim.SampledImageIntegerSampleCounts},
		{"sampledImageDepthSampleCounts", lim.SampledImageDepthSampleCounts},
		{"sampledImageStencilSampleCounts", lim.SampledImageStencilSampleCounts},
		{"storageImageSampleCounts", lim.StorageImageSampleCounts},
	} {
		postFlags(c, lp.dot(sc.name), sc.v)
	}
	c.postBool(lp.dot("timestampComputeAndGraphics"), lim.TimestampComputeAndGraphics)
	c.postBool(lp.dot("strictLines"), lim.StrictLines)
	c.postBool(lp.dot("standardSampleLocations"), lim.StandardSampleLocations)

	sp := p.dot("sparseProperties")
	sparse := &props.SparseProperties
	c.postBool(sp.dot("residencyStandard2DBlockShape"), sparse.ResidencyStandard2DBlockShape)
	c.postBool(sp.dot("residencyStandard2DMultisampleBlockShape"), sparse.ResidencyStandard2DMultisampleBlockShape)
	c.postBool(sp.dot("residencyStandard3DBlockShape"), sparse.ResidencyStandard3DBlockShape)
	c.postBool(sp.dot("residencyAlignedMipSize"), sparse.ResidencyAlignedMipSize)
	c.postBool(sp.dot("residencyNonResidentStrict"), sparse.ResidencyNonResidentStrict)
}

// GetPhysicalDeviceFormatProperties validates the format and the returned
// feature masks.
func (l *Layer) GetPhysicalDeviceFormatProperties(pd vk.PhysicalDevice, format vk.Format, props *vk.FormatProperties) vk.Result {
	const op = "vkGetPhysicalDeviceFormatProperties"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Enum(root("format"), format)
			c.Required(root("pFormatProperties"), props != nil)
		},
		Post: func(c *Checker, _ vk.Result) {
			p := root("pFormatProperties")
			postFlags(c, p.dot("linearTilingFeatures"), props.LinearTilingFeatures)
			postFlags(c, p.dot("optimalTilingFeatures"), props.OptimalTilingFeatures)
			postFlags(c, p.dot("bufferFeatures"), props.BufferFeatures)
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceFormatProperties(pd, format, props)
	})
}

// GetPhysicalDeviceImageFormatProperties validates the query parameters and
// the returned sample counts.
func (l *Layer) GetPhysicalDeviceImageFormatProperties(pd vk.PhysicalDevice, format vk.Format, typ vk.ImageType,
	tiling vk.ImageTiling, usage vk.ImageUsageFlags, flags vk.ImageCreateFlags, props *vk.ImageFormatProperties) vk.Result {
	const op = "vkGetPhysicalDeviceImageFormatProperties"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Enum(root("format"), format)
			c.Enum(root("type"), typ)
			c.Enum(root("tiling"), tiling)
			checkFlags(c, root("usage"), usage, true)
			checkFlags(c, root("flags"), flags, false)
			c.Required(root("pImageFormatProperties"), props != nil)
		},
		Post: func(c *Checker, r vk.Result) {
			if r != vk.Success {
				return
			}
			postFlags(c, root("pImageFormatProperties").dot("sampleCounts"), props.SampleCounts)
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceImageFormatProperties(pd, format, typ, tiling, usage, flags, props)
	})
}

// GetPhysicalDeviceQueueFamilyProperties validates the returned families
// and caches their number for CreateDevice.
func (l *Layer) GetPhysicalDeviceQueueFamilyProperties(pd vk.PhysicalDevice, count *uint32, props []vk.QueueFamilyProperties) vk.Result {
	const op = "vkGetPhysicalDeviceQueueFamilyProperties"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			outArray(c, root("pQueueFamilyPropertyCount"), root("pQueueFamilyProperties"), count, props)
		},
		Post: func(c *Checker, _ vk.Result) {
			for i, fam := range elems(*count, props) {
				postFlags(c, root("pQueueFamilyProperties").at(i).dot("queueFlags"), fam.QueueFlags)
			}
		},
		Track: func(vk.Result) {
			n := *count
			// A count filling the whole array may be truncated.
			if props != nil && n >= uint32(len(props)) {
				return
			}
			_ = l.state.Do(func(*Tx) error {
				info := ctx.Session.physicalInfo(pd)
				info.QueueFamilyCount = n
				info.QueueFamilies = true
				return nil
			})
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceQueueFamilyProperties(pd, count, props)
	})
}

// GetPhysicalDeviceMemoryProperties validates the returned memory types and
// heaps.
func (l *Layer) GetPhysicalDeviceMemoryProperties(pd vk.PhysicalDevice, props *vk.PhysicalDeviceMemoryProperties) vk.Result {
	const op = "vkGetPhysicalDeviceMemoryProperties"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Required(root("pMemoryProperties"), props != nil)
		},
		Post: func(c *Checker, _ vk.Result) {
			postMemoryProperties(c, root("pMemoryProperties"), props)
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceMemoryProperties(pd, props)
	})
}

func postMemoryProperties(c *Checker, p path, props *vk.PhysicalDeviceMemoryProperties) {
	if props.MemoryTypeCount > vk.MaxMemoryTypes {
		c.Fail(rulePostLimit, p.dot("memoryTypeCount"), props.MemoryTypeCount, props.MemoryTypeCount, vk.MaxMemoryTypes)
	}
	if props.MemoryHeapCount > vk.MaxMemoryHeaps {
		c.Fail(rulePostLimit, p.dot("memoryHeapCount"), props.MemoryHeapCount, props.MemoryHeapCount, vk.MaxMemoryHeaps)
	}
	types := min(props.MemoryTypeCount, vk.MaxMemoryTypes)
	for i, mt := range props.MemoryTypes[:types] {
		tp := p.dot("memoryTypes").at(i)
		postFlags(c, tp.dot("propertyFlags"), mt.PropertyFlags)
		if mt.HeapIndex >= props.MemoryHeapCount {
			c.Fail(rulePostLimit, tp.dot("heapIndex"), mt.HeapIndex, mt.HeapIndex, props.MemoryHeapCount)
		}
	}
	heaps := min(props.MemoryHeapCount, vk.MaxMemoryHeaps)
	for i, h := range props.MemoryHeaps[:heaps] {
		postFlags(c, p.dot("memoryHeaps").at(i).dot("flags"), h.Flags)
	}
}

// GetPhysicalDeviceSparseImageFormatProperties validates the query and the
// returned aspect and format flags.
func (l *Layer) GetPhysicalDeviceSparseImageFormatProperties(pd vk.PhysicalDevice, format vk.Format, typ vk.ImageType,
	samples vk.SampleCountFlags, usage vk.ImageUsageFlags, tiling vk.ImageTiling, count *uint32,
	props []vk.SparseImageFormatProperties) vk.Result {
	const op = "vkGetPhysicalDeviceSparseImageFormatProperties"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Enum(root("format"), format)
			c.Enum(root("type"), typ)
			checkSingleBit(c, root("samples"), samples)
			checkFlags(c, root("usage"), usage, true)
			c.Enum(root("tiling"), tiling)
			outArray(c, root("pPropertyCount"), root("pProperties"), count, props)
		},
		Post: func(c *Checker, _ vk.Result) {
			for i, sp := range elems(*count, props) {
				pp := root("pProperties").at(i)
				postFlags(c, pp.dot("aspectMask"), sp.AspectMask)
				postFlags(c, pp.dot("flags"), sp.Flags)
			}
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceSparseImageFormatProperties(pd, format, typ, samples, usage, tiling, count, props)
	})
}

// GetPhysicalDeviceSurfaceSupportKHR checks the surface extension and the
// queue family index.
func (l *Layer) GetPhysicalDeviceSurfaceSupportKHR(pd vk.PhysicalDevice, family uint32, surface vk.SurfaceKHR, supported *vk.Bool32) vk.Result {
	const op = "vkGetPhysicalDeviceSurfaceSupportKHR"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Extension(nil, vk.KHRSurfaceExtensionName)
			c.Handle(root("surface"), uint64(surface))
			c.Required(root("pSupported"), supported != nil)
		},
		Pre: func(c *Checker) {
			var known bool
			var n uint32
			_ = l.state.Do(func(*Tx) error {
				info := ctx.Session.physicalInfo(pd)
				known, n = info.QueueFamilies, info.QueueFamilyCount
				return nil
			})
			if known && family >= n {
				c.Fail(ruleFamilyRange, root("queueFamilyIndex"), family, family, n)
			}
		},
		Post: func(c *Checker, r vk.Result) {
			if r == vk.Success {
				c.postBool(root("pSupported"), *supported)
			}
		},
	}, func() vk.Result {
		return l.next.GetPhysicalDeviceSurfaceSupportKHR(pd, family, surface, supported)
	})
}
