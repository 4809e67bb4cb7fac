package nulldriver

import "github.com/wippyai/vk-validation/vk"

// Commands are recorded by name only.

func (d *Driver) CmdBindPipeline(cb vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) vk.Result {
	return d.simple("vkCmdBindPipeline")
}

func (d *Driver) CmdSetViewport(cb vk.CommandBuffer, first, count uint32, viewports []vk.Viewport) vk.Result {
	return d.simple("vkCmdSetViewport")
}

func (d *Driver) CmdSetScissor(cb vk.CommandBuffer, first, count uint32, scissors []vk.Rect2D) vk.Result {
	return d.simple("vkCmdSetScissor")
}

func (d *Driver) CmdSetLineWidth(cb vk.CommandBuffer, width float32) vk.Result {
	return d.simple("vkCmdSetLineWidth")
}

func (d *Driver) CmdSetDepthBias(cb vk.CommandBuffer, constant, clamp, slope float32) vk.Result {
	return d.simple("vkCmdSetDepthBias")
}

func (d *Driver) CmdBindDescriptorSets(cb vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout,
	firstSet, count uint32, sets []vk.DescriptorSet, dynamicCount uint32, dynamicOffsets []uint32) vk.Result {
	return d.simple("vkCmdBindDescriptorSets")
}

func (d *Driver) CmdBindIndexBuffer(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) vk.Result {
	return d.simple("vkCmdBindIndexBuffer")
}

func (d *Driver) CmdBindVertexBuffers(cb vk.CommandBuffer, first, count uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) vk.Result {
	return d.simple("vkCmdBindVertexBuffers")
}

func (d *Driver) CmdDraw(cb vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) vk.Result {
	return d.simple("vkCmdDraw")
}

func (d *Driver) CmdDrawIndexed(cb vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) vk.Result {
	return d.simple("vkCmdDrawIndexed")
}

func (d *Driver) CmdDrawIndirect(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) vk.Result {
	return d.simple("vkCmdDrawIndirect")
}

func (d *Driver) CmdDrawIndexedIndirect(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) vk.Result {
	return d.simple("vkCmdDrawIndexedIndirect")
}

func (d *Driver) CmdDispatch(cb vk.CommandBuffer, x, y, z uint32) vk.Result {
	return d.simple("vkCmdDispatch")
}

func (d *Driver) CmdCopyBuffer(cb vk.CommandBuffer, src, dst vk.Buffer, count uint32, regions []vk.BufferCopy) vk.Result {
	return d.simple("vkCmdCopyBuffer")
}

func (d *Driver) CmdCopyImage(cb vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout,
	count uint32, regions []vk.ImageCopy) vk.Result {
	return d.simple("vkCmdCopyImage")
}

func (d *Driver) CmdBlitImage(cb vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout,
	count uint32, regions []vk.ImageBlit, filter vk.Filter) vk.Result {
	return d.simple("vkCmdBlitImage")
}

func (d *Driver) CmdCopyBufferToImage(cb vk.CommandBuffer, src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout,
	count uint32, regions []vk.BufferImageCopy) vk.Result {
	return d.simple("vkCmdCopyBufferToImage")
}

func (d *Driver) CmdUpdateBuffer(cb vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data []byte) vk.Result {
	return d.simple("vkCmdUpdateBuffer")
}

func (d *Driver) CmdFillBuffer(cb vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32) vk.Result {
	return d.simple("vkCmdFillBuffer")
}

func (d *Driver) CmdClearColorImage(cb vk.CommandBuffer, image vk.Image, layout vk.ImageLayout, color *vk.ClearColorValue,
	count uint32, ranges []vk.ImageSubresourceRange) vk.Result {
	return d.simple("vkCmdClearColorImage")
}

func (d *Driver) CmdPipelineBarrier(cb vk.CommandBuffer, srcStages, dstStages vk.PipelineStageFlags, deps vk.DependencyFlags,
	memoryCount uint32, memory []vk.MemoryBarrier, bufferCount uint32, buffers []vk.BufferMemoryBarrier,
	imageCount uint32, images []vk.ImageMemoryBarrier) vk.Result {
	return d.simple("vkCmdPipelineBarrier")
}

func (d *Driver) CmdBeginQuery(cb vk.CommandBuffer, pool vk.QueryPool, query uint32, flags vk.QueryControlFlags) vk.Result {
	return d.simple("vkCmdBeginQuery")
}

func (d *Driver) CmdPushConstants(cb vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset, size uint32, values []byte) vk.Result {
	return d.simple("vkCmdPushConstants")
}

func (d *Driver) CmdBeginRenderPass(cb vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) vk.Result {
	return d.simple("vkCmdBeginRenderPass")
}

func (d *Driver) CmdNextSubpass(cb vk.CommandBuffer, contents vk.SubpassContents) vk.Result {
	return d.simple("vkCmdNextSubpass")
}

func (d *Driver) CmdEndRenderPass(cb vk.CommandBuffer) vk.Result {
	return d.simple("vkCmdEndRenderPass")
}

func (d *Driver) CmdExecuteCommands(cb vk.CommandBuffer, count uint32, cbs []vk.CommandBuffer) vk.Result {
	return d.simple("vkCmdExecuteCommands")
}
