package layer

import "github.com/wippyai/vk-validation/vk"

// AllocateMemory validates the allocation against the memory types cached
// for the connection.
func (l *Layer) AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo, memory *vk.DeviceMemory) vk.Result {
	const op = "vkAllocateMemory"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pMemory"), memory != nil)
			p := root("pAllocateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeMemoryAllocateInfo)
			c.Chain(p, info.Next,
				vk.StructureTypeDedicatedAllocationMemoryAllocateInfoNV,
				vk.StructureTypeMemoryDedicatedAllocateInfoKHR)
			c.Positive(p.dot("allocationSize"), uint64(info.AllocationSize))
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			p := root("pAllocateInfo")
			c.Less(p.dot("memoryTypeIndex"), uint64(info.MemoryTypeIndex),
				uint64(ctx.Conn.MemoryTypeCount), "memoryTypeCount")
			if nv, ok := vk.Find[*vk.DedicatedAllocationMemoryAllocateInfoNV](info.Next); ok {
				dedicated(c, p.dot("pNext"), nv.Image, nv.Buffer)
			}
			if khr, ok := vk.Find[*vk.MemoryDedicatedAllocateInfoKHR](info.Next); ok {
				dedicated(c, p.dot("pNext"), khr.Image, khr.Buffer)
			}
		},
	}, func() vk.Result {
		return l.next.AllocateMemory(device, info, memory)
	})
}

// dedicated checks that a dedicated allocation names an image or a buffer,
// not both.
func dedicated(c *Checker, p path, image vk.Image, buffer vk.Buffer) {
	if image != 0 && buffer != 0 {
		c.Usage(p.dot("buffer"), buffer, "image and buffer must not both be set for a dedicated allocation")
	}
}

// FreeMemory forwards; freeing VK_NULL_HANDLE is legal.
func (l *Layer) FreeMemory(device vk.Device, memory vk.DeviceMemory) vk.Result {
	const op = "vkFreeMemory"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{Name: op, Object: device}, func() vk.Result {
		return l.next.FreeMemory(device, memory)
	})
}

// MapMemory validates the mapped range.
func (l *Layer) MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize, flags vk.Flags, data *[]byte) vk.Result {
	const op = "vkMapMemory"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Handle(root("memory"), uint64(memory))
			if size != vk.WholeSize {
				c.Positive(root("size"), uint64(size))
			}
			c.Reserved(root("flags"), flags)
			c.Required(root("ppData"), data != nil)
		},
	}, func() vk.Result {
		return l.next.MapMemory(device, memory, offset, size, flags, data)
	})
}

// UnmapMemory validates the memory handle.
func (l *Layer) UnmapMemory(device vk.Device, memory vk.DeviceMemory) vk.Result {
	const op = "vkUnmapMemory"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Handle(root("memory"), uint64(memory))
		},
	}, func() vk.Result {
		return l.next.UnmapMemory(device, memory)
	})
}

// FlushMappedMemoryRanges validates the ranges.
func (l *Layer) FlushMappedMemoryRanges(device vk.Device, count uint32, ranges []vk.MappedMemoryRange) vk.Result {
	const op = "vkFlushMappedMemoryRanges"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) { mappedRanges(c, count, ranges) },
	}, func() vk.Result {
		return l.next.FlushMappedMemoryRanges(device, count, ranges)
	})
}

// InvalidateMappedMemoryRanges validates the ranges.
func (l *Layer) InvalidateMappedMemoryRanges(device vk.Device, count uint32, ranges []vk.MappedMemoryRange) vk.Result {
	const op = "vkInvalidateMappedMemoryRanges"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) { mappedRanges(c, count, ranges) },
	}, func() vk.Result {
		return l.next.InvalidateMappedMemoryRanges(device, count, ranges)
	})
}

func mappedRanges(c *Checker, count uint32, ranges []vk.MappedMemoryRange) {
	rp := root("pMemoryRanges")
	atom := uint64(c.conn.Limits.NonCoherentAtomSize)
	for i := range array(c, root("memoryRangeCount"), rp, count, ranges, true, true) {
		r := &ranges[i]
		ip := rp.at(i)
		c.SType(ip, r.SType, vk.StructureTypeMappedMemoryRange)
		c.Chain(ip, r.Next)
		c.Handle(ip.dot("memory"), uint64(r.Memory))
		c.Aligned(ip.dot("offset"), uint64(r.Offset), atom)
		if r.Size != vk.WholeSize {
			c.Aligned(ip.dot("size"), uint64(r.Size), atom)
		}
	}
}

// BindBufferMemory validates the handles.
func (l *Layer) BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	const op = "vkBindBufferMemory"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: buffer,
		Params: func(c *Checker) {
			c.Handle(root("buffer"), uint64(buffer))
			c.Handle(root("memory"), uint64(memory))
		},
	}, func() vk.Result {
		return l.next.BindBufferMemory(device, buffer, memory, offset)
	})
}

// BindImageMemory validates the handles.
func (l *Layer) BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	const op = "vkBindImageMemory"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: image,
		Params: func(c *Checker) {
			c.Handle(root("image"), uint64(image))
			c.Handle(root("memory"), uint64(memory))
		},
	}, func() vk.Result {
		return l.next.BindImageMemory(device, image, memory, offset)
	})
}
