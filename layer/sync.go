package layer

import "github.com/wippyai/vk-validation/vk"

// CreateFence validates the create info.
func (l *Layer) CreateFence(device vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result {
	const op = "vkCreateFence"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pFence"), fence != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeFenceCreateInfo)
			c.Chain(p, info.Next)
			checkFlags(c, p.dot("flags"), info.Flags, false)
		},
	}, func() vk.Result {
		return l.next.CreateFence(device, info, fence)
	})
}

// DestroyFence forwards; destroying VK_NULL_HANDLE is legal.
func (l *Layer) DestroyFence(device vk.Device, fence vk.Fence) vk.Result {
	const op = "vkDestroyFence"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{Name: op, Object: fence}, func() vk.Result {
		return l.next.DestroyFence(device, fence)
	})
}

func fenceArray(c *Checker, count uint32, fences []vk.Fence) {
	fp := root("pFences")
	for i, f := range array(c, root("fenceCount"), fp, count, fences, true, true) {
		c.Handle(fp.at(i), uint64(f))
	}
}

// ResetFences validates the fence array.
func (l *Layer) ResetFences(device vk.Device, count uint32, fences []vk.Fence) vk.Result {
	const op = "vkResetFences"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) { fenceArray(c, count, fences) },
	}, func() vk.Result {
		return l.next.ResetFences(device, count, fences)
	})
}

// WaitForFences validates the fence array and waitAll.
func (l *Layer) WaitForFences(device vk.Device, count uint32, fences []vk.Fence, waitAll vk.Bool32, timeout uint64) vk.Result {
	const op = "vkWaitForFences"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			fenceArray(c, count, fences)
			c.Bool(root("waitAll"), waitAll)
		},
	}, func() vk.Result {
		return l.next.WaitForFences(device, count, fences, waitAll, timeout)
	})
}

// CreateSemaphore validates the create info.
func (l *Layer) CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo, semaphore *vk.Semaphore) vk.Result {
	const op = "vkCreateSemaphore"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pSemaphore"), semaphore != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeSemaphoreCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
		},
	}, func() vk.Result {
		return l.next.CreateSemaphore(device, info, semaphore)
	})
}

// CreateEvent validates the create info.
func (l *Layer) CreateEvent(device vk.Device, info *vk.EventCreateInfo, event *vk.Event) vk.Result {
	const op = "vkCreateEvent"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pEvent"), event != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeEventCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
		},
	}, func() vk.Result {
		return l.next.CreateEvent(device, info, event)
	})
}

// CreateQueryPool validates the create info. Pipeline statistics are only
// checked for pipeline statistics pools, and need their feature.
func (l *Layer) CreateQueryPool(device vk.Device, info *vk.QueryPoolCreateInfo, pool *vk.QueryPool) vk.Result {
	const op = "vkCreateQueryPool"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pQueryPool"), pool != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeQueryPoolCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			c.Enum(p.dot("queryType"), info.QueryType)
			c.Positive(p.dot("queryCount"), uint64(info.QueryCount))
			if info.QueryType == vk.QueryTypePipelineStatistics {
				checkFlags(c, p.dot("pipelineStatistics"), info.PipelineStatistics, true)
			}
		},
		Pre: func(c *Checker) {
			if info != nil && info.QueryType == vk.QueryTypePipelineStatistics {
				c.Capability(root("pCreateInfo").dot("queryType"),
					ctx.Conn.Features.PipelineStatisticsQuery, "pipelineStatisticsQuery")
			}
		},
	}, func() vk.Result {
		return l.next.CreateQueryPool(device, info, pool)
	})
}

// GetQueryPoolResults validates the destination buffer layout.
func (l *Layer) GetQueryPoolResults(device vk.Device, pool vk.QueryPool, first, count uint32, data []byte,
	stride vk.DeviceSize, flags vk.QueryResultFlags) vk.Result {
	const op = "vkGetQueryPoolResults"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pool,
		Params: func(c *Checker) {
			c.Handle(root("queryPool"), uint64(pool))
			checkFlags(c, root("flags"), flags, false)
			if count > 0 {
				c.Required(root("pData"), data != nil)
			}
		},
		Pre: func(c *Checker) {
			align := uint64(4)
			if flags&vk.QueryResult64Bit != 0 {
				align = 8
			}
			c.Aligned(root("stride"), uint64(stride), align)
			if count > 0 && data != nil {
				need := uint64(count-1)*uint64(stride) + align
				if uint64(len(data)) < need {
					c.Usage(root("dataSize"), len(data),
						"%d bytes cannot hold %d results with stride %d", len(data), count, uint64(stride))
				}
			}
		},
	}, func() vk.Result {
		return l.next.GetQueryPoolResults(device, pool, first, count, data, stride, flags)
	})
}
