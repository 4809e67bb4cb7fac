package layer

import "github.com/wippyai/vk-validation/vk"

// CreateCommandPool requires the pool's queue family to be one requested
// at device creation.
func (l *Layer) CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result {
	const op = "vkCreateCommandPool"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pCommandPool"), pool != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeCommandPoolCreateInfo)
			c.Chain(p, info.Next)
			checkFlags(c, p.dot("flags"), info.Flags, false)
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			fp := root("pCreateInfo").dot("queueFamilyIndex")
			fam := info.QueueFamilyIndex
			switch {
			case fam == vk.QueueFamilyIgnored:
				c.Fail(ruleQueueIgnored, fp, fam)
			case !ctx.Conn.Queues.Has(fam):
				c.Fail(ruleQueueFamily, fp, fam, fam)
			}
		},
	}, func() vk.Result {
		return l.next.CreateCommandPool(device, info, pool)
	})
}

// ResetCommandPool validates the reset flags.
func (l *Layer) ResetCommandPool(device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	const op = "vkResetCommandPool"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pool,
		Params: func(c *Checker) {
			c.Handle(root("commandPool"), uint64(pool))
			checkFlags(c, root("flags"), flags, false)
		},
	}, func() vk.Result {
		return l.next.ResetCommandPool(device, pool, flags)
	})
}

// AllocateCommandBuffers validates the allocate info and output array.
func (l *Layer) AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, cbs []vk.CommandBuffer) vk.Result {
	const op = "vkAllocateCommandBuffers"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			p := root("pAllocateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeCommandBufferAllocateInfo)
			c.Chain(p, info.Next)
			c.Handle(p.dot("commandPool"), uint64(info.CommandPool))
			c.Enum(p.dot("level"), info.Level)
			if c.Positive(p.dot("commandBufferCount"), uint64(info.CommandBufferCount)) {
				array(c, p.dot("commandBufferCount"), root("pCommandBuffers"), info.CommandBufferCount, cbs, false, true)
			}
		},
	}, func() vk.Result {
		return l.next.AllocateCommandBuffers(device, info, cbs)
	})
}

// FreeCommandBuffers validates the pool and array.
func (l *Layer) FreeCommandBuffers(device vk.Device, pool vk.CommandPool, count uint32, cbs []vk.CommandBuffer) vk.Result {
	const op = "vkFreeCommandBuffers"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pool,
		Params: func(c *Checker) {
			c.Handle(root("commandPool"), uint64(pool))
			array(c, root("commandBufferCount"), root("pCommandBuffers"), count, cbs, true, true)
		},
	}, func() vk.Result {
		return l.next.FreeCommandBuffers(device, pool, count, cbs)
	})
}

// BeginCommandBuffer validates the usage flags and the inheritance info,
// whose query settings need their features.
func (l *Layer) BeginCommandBuffer(cb vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	const op = "vkBeginCommandBuffer"
	ctx := l.connContext(op, cb.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: cb,
		Params: func(c *Checker) {
			p := root("pBeginInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeCommandBufferBeginInfo)
			c.Chain(p, info.Next)
			checkFlags(c, p.dot("flags"), info.Flags, false)
			hp := p.dot("pInheritanceInfo")
			if h := info.InheritanceInfo; h != nil {
				c.SType(hp, h.SType, vk.StructureTypeCommandBufferInheritanceInfo)
				c.Chain(hp, h.Next)
				c.Bool(hp.dot("occlusionQueryEnable"), h.OcclusionQueryEnable)
				checkFlags(c, hp.dot("queryFlags"), h.QueryFlags, false)
				checkFlags(c, hp.dot("pipelineStatistics"), h.PipelineStatistics, false)
			}
			if info.Flags&vk.CommandBufferUsageRenderPassContinueBit != 0 {
				if c.Required(hp, info.InheritanceInfo != nil) {
					c.Handle(hp.dot("renderPass"), uint64(info.InheritanceInfo.RenderPass))
				}
			}
		},
		Pre: func(c *Checker) {
			if info == nil || info.InheritanceInfo == nil {
				return
			}
			h := info.InheritanceInfo
			hp := root("pBeginInfo").dot("pInheritanceInfo")
			f := &ctx.Conn.Features
			if h.OcclusionQueryEnable == vk.True {
				c.Capability(hp.dot("occlusionQueryEnable"), f.InheritedQueries, "inheritedQueries")
			}
			if h.QueryFlags&vk.QueryControlPreciseBit != 0 {
				c.Capability(hp.dot("queryFlags"), f.OcclusionQueryPrecise, "occlusionQueryPrecise")
			}
			if h.PipelineStatistics != 0 {
				c.Capability(hp.dot("pipelineStatistics"), f.PipelineStatisticsQuery, "pipelineStatisticsQuery")
			}
		},
	}, func() vk.Result {
		return l.next.BeginCommandBuffer(cb, info)
	})
}

// EndCommandBuffer forwards after resolving the command buffer.
func (l *Layer) EndCommandBuffer(cb vk.CommandBuffer) vk.Result {
	const op = "vkEndCommandBuffer"
	ctx := l.connContext(op, cb.Key)
	return l.invoke(ctx, Operation{Name: op, Object: cb}, func() vk.Result {
		return l.next.EndCommandBuffer(cb)
	})
}

// ResetCommandBuffer validates the reset flags.
func (l *Layer) ResetCommandBuffer(cb vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result {
	const op = "vkResetCommandBuffer"
	ctx := l.connContext(op, cb.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: cb,
		Params: func(c *Checker) {
			checkFlags(c, root("flags"), flags, false)
		},
	}, func() vk.Result {
		return l.next.ResetCommandBuffer(cb, flags)
	})
}
