package layer

import "github.com/wippyai/vk-validation/vk"

const (
	drawIndirectCommandSize        = 16
	drawIndexedIndirectCommandSize = 20
	maxUpdateBufferSize            = 65536
)

// record runs the checks of a command recorded into cb and forwards it.
// Command checks read the connection's features and limits through c.conn.
func (l *Layer) record(op string, cb vk.CommandBuffer, check func(c *Checker), forward func() vk.Result) vk.Result {
	ctx := l.connContext(op, cb.Key)
	return l.invoke(ctx, Operation{Name: op, Object: cb, Params: check}, forward)
}

// CmdBindPipeline validates the bind point and pipeline.
func (l *Layer) CmdBindPipeline(cb vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) vk.Result {
	return l.record("vkCmdBindPipeline", cb, func(c *Checker) {
		c.Enum(root("pipelineBindPoint"), bindPoint)
		c.Handle(root("pipeline"), uint64(pipeline))
	}, func() vk.Result {
		return l.next.CmdBindPipeline(cb, bindPoint, pipeline)
	})
}

// viewportRange checks first/count of a viewport or scissor update.
func viewportRange(c *Checker, first, count uint32) {
	if first > 0 {
		c.Capability(root("firstViewport"), c.conn.Features.MultiViewport, "multiViewport")
	}
	if count > 1 {
		c.Capability(root("viewportCount"), c.conn.Features.MultiViewport, "multiViewport")
	}
	c.LessEq(root("viewportCount"), uint64(first)+uint64(count), uint64(c.conn.Limits.MaxViewports), "maxViewports")
}

// CmdSetViewport validates the viewports against the connection's limits.
func (l *Layer) CmdSetViewport(cb vk.CommandBuffer, first, count uint32, viewports []vk.Viewport) vk.Result {
	return l.record("vkCmdSetViewport", cb, func(c *Checker) {
		vp := root("pViewports")
		list := array(c, root("viewportCount"), vp, count, viewports, true, true)
		viewportRange(c, first, count)
		lim := &c.conn.Limits
		for i, v := range list {
			ip := vp.at(i)
			if v.Width <= 0 {
				c.Usage(ip.dot("width"), v.Width, "width %g must be greater than 0", v.Width)
			} else {
				c.LessEqF(ip.dot("width"), v.Width, float32(lim.MaxViewportDimensions[0]), "maxViewportDimensions[0]")
			}
			if v.Height <= 0 {
				c.Usage(ip.dot("height"), v.Height, "height %g must be greater than 0", v.Height)
			} else {
				c.LessEqF(ip.dot("height"), v.Height, float32(lim.MaxViewportDimensions[1]), "maxViewportDimensions[1]")
			}
			c.Range01(ip.dot("minDepth"), v.MinDepth)
			c.Range01(ip.dot("maxDepth"), v.MaxDepth)
		}
	}, func() vk.Result {
		return l.next.CmdSetViewport(cb, first, count, viewports)
	})
}

// CmdSetScissor validates the scissor rectangles.
func (l *Layer) CmdSetScissor(cb vk.CommandBuffer, first, count uint32, scissors []vk.Rect2D) vk.Result {
	return l.record("vkCmdSetScissor", cb, func(c *Checker) {
		sp := root("pScissors")
		list := array(c, root("scissorCount"), sp, count, scissors, true, true)
		viewportRange(c, first, count)
		for i, s := range list {
			op := sp.at(i).dot("offset")
			if s.Offset.X < 0 || s.Offset.Y < 0 {
				c.Usage(op, s.Offset, "scissor offset (%d, %d) must not be negative", s.Offset.X, s.Offset.Y)
			}
		}
	}, func() vk.Result {
		return l.next.CmdSetScissor(cb, first, count, scissors)
	})
}

// CmdSetLineWidth requires wideLines for any width other than 1.
func (l *Layer) CmdSetLineWidth(cb vk.CommandBuffer, width float32) vk.Result {
	return l.record("vkCmdSetLineWidth", cb, func(c *Checker) {
		if width == 1.0 {
			return
		}
		if c.Capability(root("lineWidth"), c.conn.Features.WideLines, "wideLines") {
			r := c.conn.Limits.LineWidthRange
			c.RangeF(root("lineWidth"), width, r[0], r[1])
		}
	}, func() vk.Result {
		return l.next.CmdSetLineWidth(cb, width)
	})
}

// CmdSetDepthBias requires depthBiasClamp for a non-zero clamp.
func (l *Layer) CmdSetDepthBias(cb vk.CommandBuffer, constant, clamp, slope float32) vk.Result {
	return l.record("vkCmdSetDepthBias", cb, func(c *Checker) {
		if clamp != 0 {
			c.Capability(root("depthBiasClamp"), c.conn.Features.DepthBiasClamp, "depthBiasClamp")
		}
	}, func() vk.Result {
		return l.next.CmdSetDepthBias(cb, constant, clamp, slope)
	})
}

// CmdBindDescriptorSets validates the sets and dynamic offsets.
func (l *Layer) CmdBindDescriptorSets(cb vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout,
	firstSet, count uint32, sets []vk.DescriptorSet, dynamicCount uint32, dynamicOffsets []uint32) vk.Result {
	return l.record("vkCmdBindDescriptorSets", cb, func(c *Checker) {
		c.Enum(root("pipelineBindPoint"), bindPoint)
		c.Handle(root("layout"), uint64(layout))
		sp := root("pDescriptorSets")
		for i, s := range array(c, root("descriptorSetCount"), sp, count, sets, true, true) {
			c.Handle(sp.at(i), uint64(s))
		}
		array(c, root("dynamicOffsetCount"), root("pDynamicOffsets"), dynamicCount, dynamicOffsets, false, true)
		c.LessEq(root("descriptorSetCount"), uint64(firstSet)+uint64(count),
			uint64(c.conn.Limits.MaxBoundDescriptorSets), "maxBoundDescriptorSets")
	}, func() vk.Result {
		return l.next.CmdBindDescriptorSets(cb, bindPoint, layout, firstSet, count, sets, dynamicCount, dynamicOffsets)
	})
}

// CmdBindIndexBuffer validates the index type and offset alignment.
func (l *Layer) CmdBindIndexBuffer(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) vk.Result {
	return l.record("vkCmdBindIndexBuffer", cb, func(c *Checker) {
		c.Handle(root("buffer"), uint64(buffer))
		if !c.Enum(root("indexType"), indexType) {
			return
		}
		size := uint64(2)
		if indexType == vk.IndexTypeUint32 {
			size = 4
		}
		c.Aligned(root("offset"), uint64(offset), size)
	}, func() vk.Result {
		return l.next.CmdBindIndexBuffer(cb, buffer, offset, indexType)
	})
}

// CmdBindVertexBuffers validates the binding range and buffers.
func (l *Layer) CmdBindVertexBuffers(cb vk.CommandBuffer, first, count uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) vk.Result {
	return l.record("vkCmdBindVertexBuffers", cb, func(c *Checker) {
		bp := root("pBuffers")
		for i, b := range array(c, root("bindingCount"), bp, count, buffers, true, true) {
			c.Handle(bp.at(i), uint64(b))
		}
		array(c, root("bindingCount"), root("pOffsets"), count, offsets, false, true)
		c.LessEq(root("bindingCount"), uint64(first)+uint64(count),
			uint64(c.conn.Limits.MaxVertexInputBindings), "maxVertexInputBindings")
	}, func() vk.Result {
		return l.next.CmdBindVertexBuffers(cb, first, count, buffers, offsets)
	})
}

// CmdDraw reports a draw of nothing.
func (l *Layer) CmdDraw(cb vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) vk.Result {
	return l.record("vkCmdDraw", cb, func(c *Checker) {
		c.ZeroWork(root("vertexCount"), uint64(vertexCount))
		c.ZeroWork(root("instanceCount"), uint64(instanceCount))
	}, func() vk.Result {
		return l.next.CmdDraw(cb, vertexCount, instanceCount, firstVertex, firstInstance)
	})
}

// CmdDrawIndexed reports a draw of nothing.
func (l *Layer) CmdDrawIndexed(cb vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) vk.Result {
	return l.record("vkCmdDrawIndexed", cb, func(c *Checker) {
		c.ZeroWork(root("indexCount"), uint64(indexCount))
		c.ZeroWork(root("instanceCount"), uint64(instanceCount))
	}, func() vk.Result {
		return l.next.CmdDrawIndexed(cb, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
	})
}

func drawIndirect(c *Checker, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride, commandSize uint32) {
	c.Handle(root("buffer"), uint64(buffer))
	c.Aligned(root("offset"), uint64(offset), 4)
	c.ZeroWork(root("drawCount"), uint64(drawCount))
	if drawCount > 1 {
		c.Capability(root("drawCount"), c.conn.Features.MultiDrawIndirect, "multiDrawIndirect")
		c.Aligned(root("stride"), uint64(stride), 4)
		if stride < commandSize {
			c.Usage(root("stride"), stride, "stride %d is smaller than the %d byte command", stride, commandSize)
		}
	}
	c.LessEq(root("drawCount"), uint64(drawCount), uint64(c.conn.Limits.MaxDrawIndirectCount), "maxDrawIndirectCount")
}

// CmdDrawIndirect validates the indirect buffer layout.
func (l *Layer) CmdDrawIndirect(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) vk.Result {
	return l.record("vkCmdDrawIndirect", cb, func(c *Checker) {
		drawIndirect(c, buffer, offset, drawCount, stride, drawIndirectCommandSize)
	}, func() vk.Result {
		return l.next.CmdDrawIndirect(cb, buffer, offset, drawCount, stride)
	})
}

// CmdDrawIndexedIndirect validates the indirect buffer layout.
func (l *Layer) CmdDrawIndexedIndirect(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) vk.Result {
	return l.record("vkCmdDrawIndexedIndirect", cb, func(c *Checker) {
		drawIndirect(c, buffer, offset, drawCount, stride, drawIndexedIndirectCommandSize)
	}, func() vk.Result {
		return l.next.CmdDrawIndexedIndirect(cb, buffer, offset, drawCount, stride)
	})
}

// CmdDispatch validates group counts against maxComputeWorkGroupCount.
func (l *Layer) CmdDispatch(cb vk.CommandBuffer, x, y, z uint32) vk.Result {
	return l.record("vkCmdDispatch", cb, func(c *Checker) {
		limit := c.conn.Limits.MaxComputeWorkGroupCount
		for i, g := range []struct {
			name string
			v    uint32
		}{{"groupCountX", x}, {"groupCountY", y}, {"groupCountZ", z}} {
			c.ZeroWork(root(g.name), uint64(g.v))
			c.LessEq(root(g.name), uint64(g.v), uint64(limit[i]), "maxComputeWorkGroupCount")
		}
	}, func() vk.Result {
		return l.next.CmdDispatch(cb, x, y, z)
	})
}

// CmdCopyBuffer validates the regions.
func (l *Layer) CmdCopyBuffer(cb vk.CommandBuffer, src, dst vk.Buffer, count uint32, regions []vk.BufferCopy) vk.Result {
	return l.record("vkCmdCopyBuffer", cb, func(c *Checker) {
		c.Handle(root("srcBuffer"), uint64(src))
		c.Handle(root("dstBuffer"), uint64(dst))
		rp := root("pRegions")
		for i, r := range array(c, root("regionCount"), rp, count, regions, true, true) {
			c.Positive(rp.at(i).dot("size"), uint64(r.Size))
		}
	}, func() vk.Result {
		return l.next.CmdCopyBuffer(cb, src, dst, count, regions)
	})
}

// transferLayout checks the layout of a transfer source or destination.
func transferLayout(c *Checker, p path, layout, transfer vk.ImageLayout) {
	if !c.Enum(p, layout) {
		return
	}
	if layout != transfer && layout != vk.ImageLayoutGeneral && layout != vk.ImageLayoutSharedPresentKHR {
		c.Usage(p, layout, "layout is %s, must be %s or VK_IMAGE_LAYOUT_GENERAL", layout, transfer)
	}
}

func extent3D(c *Checker, p path, e vk.Extent3D) {
	c.Positive(p.dot("width"), uint64(e.Width))
	c.Positive(p.dot("height"), uint64(e.Height))
	c.Positive(p.dot("depth"), uint64(e.Depth))
}

// CmdCopyImage validates layouts and regions.
func (l *Layer) CmdCopyImage(cb vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout,
	count uint32, regions []vk.ImageCopy) vk.Result {
	return l.record("vkCmdCopyImage", cb, func(c *Checker) {
		c.Handle(root("srcImage"), uint64(src))
		c.Handle(root("dstImage"), uint64(dst))
		transferLayout(c, root("srcImageLayout"), srcLayout, vk.ImageLayoutTransferSrcOptimal)
		transferLayout(c, root("dstImageLayout"), dstLayout, vk.ImageLayoutTransferDstOptimal)
		rp := root("pRegions")
		for i := range array(c, root("regionCount"), rp, count, regions, true, true) {
			r := &regions[i]
			ip := rp.at(i)
			subresourceLayers(c, ip.dot("srcSubresource"), &r.SrcSubresource)
			subresourceLayers(c, ip.dot("dstSubresource"), &r.DstSubresource)
			extent3D(c, ip.dot("extent"), r.Extent)
		}
	}, func() vk.Result {
		return l.next.CmdCopyImage(cb, src, srcLayout, dst, dstLayout, count, regions)
	})
}

// CmdBlitImage validates layouts, regions and the filter.
func (l *Layer) CmdBlitImage(cb vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout,
	count uint32, regions []vk.ImageBlit, filter vk.Filter) vk.Result {
	return l.record("vkCmdBlitImage", cb, func(c *Checker) {
		c.Handle(root("srcImage"), uint64(src))
		c.Handle(root("dstImage"), uint64(dst))
		transferLayout(c, root("srcImageLayout"), srcLayout, vk.ImageLayoutTransferSrcOptimal)
		transferLayout(c, root("dstImageLayout"), dstLayout, vk.ImageLayoutTransferDstOptimal)
		rp := root("pRegions")
		for i := range array(c, root("regionCount"), rp, count, regions, true, true) {
			r := &regions[i]
			subresourceLayers(c, rp.at(i).dot("srcSubresource"), &r.SrcSubresource)
			subresourceLayers(c, rp.at(i).dot("dstSubresource"), &r.DstSubresource)
		}
		if c.Enum(root("filter"), filter) && filter == vk.FilterCubicIMG {
			c.Extension(root("filter"), vk.IMGFilterCubicExtensionName)
		}
	}, func() vk.Result {
		return l.next.CmdBlitImage(cb, src, srcLayout, dst, dstLayout, count, regions, filter)
	})
}

// CmdCopyBufferToImage validates the destination layout and regions.
func (l *Layer) CmdCopyBufferToImage(cb vk.CommandBuffer, src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout,
	count uint32, regions []vk.BufferImageCopy) vk.Result {
	return l.record("vkCmdCopyBufferToImage", cb, func(c *Checker) {
		c.Handle(root("srcBuffer"), uint64(src))
		c.Handle(root("dstImage"), uint64(dst))
		transferLayout(c, root("dstImageLayout"), dstLayout, vk.ImageLayoutTransferDstOptimal)
		rp := root("pRegions")
		for i := range array(c, root("regionCount"), rp, count, regions, true, true) {
			r := &regions[i]
			ip := rp.at(i)
			c.Aligned(ip.dot("bufferOffset"), uint64(r.BufferOffset), 4)
			checkSingleBit(c, ip.dot("imageSubresource").dot("aspectMask"), r.ImageSubresource.AspectMask)
			c.Positive(ip.dot("imageSubresource").dot("layerCount"), uint64(r.ImageSubresource.LayerCount))
			extent3D(c, ip.dot("imageExtent"), r.ImageExtent)
			if r.BufferRowLength != 0 && r.BufferRowLength < r.ImageExtent.Width {
				c.Usage(ip.dot("bufferRowLength"), r.BufferRowLength, "bufferRowLength %d is less than imageExtent.width %d",
					r.BufferRowLength, r.ImageExtent.Width)
			}
			if r.BufferImageHeight != 0 && r.BufferImageHeight < r.ImageExtent.Height {
				c.Usage(ip.dot("bufferImageHeight"), r.BufferImageHeight, "bufferImageHeight %d is less than imageExtent.height %d",
					r.BufferImageHeight, r.ImageExtent.Height)
			}
		}
	}, func() vk.Result {
		return l.next.CmdCopyBufferToImage(cb, src, dst, dstLayout, count, regions)
	})
}

// CmdUpdateBuffer validates alignment and the inline data size.
func (l *Layer) CmdUpdateBuffer(cb vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data []byte) vk.Result {
	return l.record("vkCmdUpdateBuffer", cb, func(c *Checker) {
		c.Handle(root("dstBuffer"), uint64(dst))
		c.Aligned(root("dstOffset"), uint64(offset), 4)
		if c.Positive(root("dataSize"), uint64(size)) {
			c.Aligned(root("dataSize"), uint64(size), 4)
			c.LessEq(root("dataSize"), uint64(size), maxUpdateBufferSize, "the inline update limit")
		}
		if c.Required(root("pData"), data != nil) && uint64(len(data)) < uint64(size) {
			c.Fail(ruleArrayLength, root("pData"), len(data), "pData", len(data), size)
		}
	}, func() vk.Result {
		return l.next.CmdUpdateBuffer(cb, dst, offset, size, data)
	})
}

// CmdFillBuffer validates alignment.
func (l *Layer) CmdFillBuffer(cb vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32) vk.Result {
	return l.record("vkCmdFillBuffer", cb, func(c *Checker) {
		c.Handle(root("dstBuffer"), uint64(dst))
		c.Aligned(root("dstOffset"), uint64(offset), 4)
		if size != vk.WholeSize && c.Positive(root("size"), uint64(size)) {
			c.Aligned(root("size"), uint64(size), 4)
		}
	}, func() vk.Result {
		return l.next.CmdFillBuffer(cb, dst, offset, size, data)
	})
}

// CmdClearColorImage validates the layout and color ranges.
func (l *Layer) CmdClearColorImage(cb vk.CommandBuffer, image vk.Image, layout vk.ImageLayout, color *vk.ClearColorValue,
	count uint32, ranges []vk.ImageSubresourceRange) vk.Result {
	return l.record("vkCmdClearColorImage", cb, func(c *Checker) {
		c.Handle(root("image"), uint64(image))
		transferLayout(c, root("imageLayout"), layout, vk.ImageLayoutTransferDstOptimal)
		c.Required(root("pColor"), color != nil)
		rp := root("pRanges")
		for i := range array(c, root("rangeCount"), rp, count, ranges, true, true) {
			r := &ranges[i]
			subresourceRange(c, rp.at(i), r)
			if r.AspectMask != vk.ImageAspectColorBit {
				c.Usage(rp.at(i).dot("aspectMask"), r.AspectMask, "aspectMask must be VK_IMAGE_ASPECT_COLOR_BIT")
			}
		}
	}, func() vk.Result {
		return l.next.CmdClearColorImage(cb, image, layout, color, count, ranges)
	})
}

// CmdPipelineBarrier validates stage masks and each barrier.
func (l *Layer) CmdPipelineBarrier(cb vk.CommandBuffer, srcStages, dstStages vk.PipelineStageFlags, deps vk.DependencyFlags,
	memoryCount uint32, memory []vk.MemoryBarrier, bufferCount uint32, buffers []vk.BufferMemoryBarrier,
	imageCount uint32, images []vk.ImageMemoryBarrier) vk.Result {
	return l.record("vkCmdPipelineBarrier", cb, func(c *Checker) {
		if checkFlags(c, root("srcStageMask"), srcStages, true) {
			checkStageFeatures(c, root("srcStageMask"), srcStages)
		}
		if checkFlags(c, root("dstStageMask"), dstStages, true) {
			checkStageFeatures(c, root("dstStageMask"), dstStages)
		}
		checkFlags(c, root("dependencyFlags"), deps, false)

		mp := root("pMemoryBarriers")
		for i := range array(c, root("memoryBarrierCount"), mp, memoryCount, memory, false, true) {
			b := &memory[i]
			ip := mp.at(i)
			c.SType(ip, b.SType, vk.StructureTypeMemoryBarrier)
			c.Chain(ip, b.Next)
			checkFlags(c, ip.dot("srcAccessMask"), b.SrcAccessMask, false)
			checkFlags(c, ip.dot("dstAccessMask"), b.DstAccessMask, false)
		}
		bp := root("pBufferMemoryBarriers")
		for i := range array(c, root("bufferMemoryBarrierCount"), bp, bufferCount, buffers, false, true) {
			b := &buffers[i]
			ip := bp.at(i)
			c.SType(ip, b.SType, vk.StructureTypeBufferMemoryBarrier)
			c.Chain(ip, b.Next)
			checkFlags(c, ip.dot("srcAccessMask"), b.SrcAccessMask, false)
			checkFlags(c, ip.dot("dstAccessMask"), b.DstAccessMask, false)
			c.Handle(ip.dot("buffer"), uint64(b.Buffer))
			if b.Size != vk.WholeSize {
				c.Positive(ip.dot("size"), uint64(b.Size))
			}
		}
		ibp := root("pImageMemoryBarriers")
		for i := range array(c, root("imageMemoryBarrierCount"), ibp, imageCount, images, false, true) {
			b := &images[i]
			ip := ibp.at(i)
			c.SType(ip, b.SType, vk.StructureTypeImageMemoryBarrier)
			c.Chain(ip, b.Next)
			checkFlags(c, ip.dot("srcAccessMask"), b.SrcAccessMask, false)
			checkFlags(c, ip.dot("dstAccessMask"), b.DstAccessMask, false)
			c.Enum(ip.dot("oldLayout"), b.OldLayout)
			if c.Enum(ip.dot("newLayout"), b.NewLayout) &&
				(b.NewLayout == vk.ImageLayoutUndefined || b.NewLayout == vk.ImageLayoutPreinitialized) {
				c.Usage(ip.dot("newLayout"), b.NewLayout, "newLayout must not be %s", b.NewLayout)
			}
			c.Handle(ip.dot("image"), uint64(b.Image))
			subresourceRange(c, ip.dot("subresourceRange"), &b.SubresourceRange)
		}
	}, func() vk.Result {
		return l.next.CmdPipelineBarrier(cb, srcStages, dstStages, deps, memoryCount, memory, bufferCount, buffers, imageCount, images)
	})
}

// CmdBeginQuery requires occlusionQueryPrecise for precise queries.
func (l *Layer) CmdBeginQuery(cb vk.CommandBuffer, pool vk.QueryPool, query uint32, flags vk.QueryControlFlags) vk.Result {
	return l.record("vkCmdBeginQuery", cb, func(c *Checker) {
		c.Handle(root("queryPool"), uint64(pool))
		if checkFlags(c, root("flags"), flags, false) && flags&vk.QueryControlPreciseBit != 0 {
			c.Capability(root("flags"), c.conn.Features.OcclusionQueryPrecise, "occlusionQueryPrecise")
		}
	}, func() vk.Result {
		return l.next.CmdBeginQuery(cb, pool, query, flags)
	})
}

// CmdPushConstants validates the range against maxPushConstantsSize.
func (l *Layer) CmdPushConstants(cb vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset, size uint32, values []byte) vk.Result {
	return l.record("vkCmdPushConstants", cb, func(c *Checker) {
		c.Handle(root("layout"), uint64(layout))
		checkStages(c, root("stageFlags"), stages)
		c.Aligned(root("offset"), uint64(offset), 4)
		if c.Positive(root("size"), uint64(size)) {
			c.Aligned(root("size"), uint64(size), 4)
		}
		c.LessEq(root("size"), uint64(offset)+uint64(size), uint64(c.conn.Limits.MaxPushConstantsSize), "maxPushConstantsSize")
		if c.Required(root("pValues"), values != nil) && uint32(len(values)) < size {
			c.Fail(ruleArrayLength, root("pValues"), len(values), "pValues", len(values), size)
		}
	}, func() vk.Result {
		return l.next.CmdPushConstants(cb, layout, stages, offset, size, values)
	})
}

// CmdBeginRenderPass validates the begin info and contents.
func (l *Layer) CmdBeginRenderPass(cb vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) vk.Result {
	return l.record("vkCmdBeginRenderPass", cb, func(c *Checker) {
		c.Enum(root("contents"), contents)
		p := root("pRenderPassBegin")
		if !c.Required(p, info != nil) {
			return
		}
		c.SType(p, info.SType, vk.StructureTypeRenderPassBeginInfo)
		c.Chain(p, info.Next)
		c.Handle(p.dot("renderPass"), uint64(info.RenderPass))
		c.Handle(p.dot("framebuffer"), uint64(info.Framebuffer))
		array(c, p.dot("clearValueCount"), p.dot("pClearValues"), info.ClearValueCount, info.ClearValues, false, true)
	}, func() vk.Result {
		return l.next.CmdBeginRenderPass(cb, info, contents)
	})
}

// CmdNextSubpass validates the contents.
func (l *Layer) CmdNextSubpass(cb vk.CommandBuffer, contents vk.SubpassContents) vk.Result {
	return l.record("vkCmdNextSubpass", cb, func(c *Checker) {
		c.Enum(root("contents"), contents)
	}, func() vk.Result {
		return l.next.CmdNextSubpass(cb, contents)
	})
}

// CmdEndRenderPass forwards after resolving the command buffer.
func (l *Layer) CmdEndRenderPass(cb vk.CommandBuffer) vk.Result {
	return l.record("vkCmdEndRenderPass", cb, nil, func() vk.Result {
		return l.next.CmdEndRenderPass(cb)
	})
}

// CmdExecuteCommands validates the secondary command buffers.
func (l *Layer) CmdExecuteCommands(cb vk.CommandBuffer, count uint32, cbs []vk.CommandBuffer) vk.Result {
	return l.record("vkCmdExecuteCommands", cb, func(c *Checker) {
		bp := root("pCommandBuffers")
		for i, s := range array(c, root("commandBufferCount"), bp, count, cbs, true, true) {
			c.Handle(bp.at(i), s.ID)
		}
	}, func() vk.Result {
		return l.next.CmdExecuteCommands(cb, count, cbs)
	})
}
