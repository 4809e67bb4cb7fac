package layer

import "github.com/wippyai/vk-validation/vk"

// Dispatch is the next handler in the call chain. The layer forwards each
// call it lets through to the matching method and never builds the chain
// itself. Every method returns a status; functions the API declares void
// return vk.Success.
//
// Array parameters follow the API: a count plus a slice. A nil slice with a
// non-zero count stands for a NULL pointer. Output parameters are pointers
// or caller-allocated slices.
type Dispatch interface {
	// Instance and physical device
	CreateInstance(info *vk.InstanceCreateInfo, instance *vk.Instance) vk.Result
	DestroyInstance(instance vk.Instance) vk.Result
	EnumeratePhysicalDevices(instance vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result
	GetPhysicalDeviceFeatures(pd vk.PhysicalDevice, features *vk.PhysicalDeviceFeatures) vk.Result
	GetPhysicalDeviceProperties(pd vk.PhysicalDevice, props *vk.PhysicalDeviceProperties) vk.Result
	GetPhysicalDeviceFormatProperties(pd vk.PhysicalDevice, format vk.Format, props *vk.FormatProperties) vk.Result
	GetPhysicalDeviceImageFormatProperties(pd vk.PhysicalDevice, format vk.Format, typ vk.ImageType, tiling vk.ImageTiling,
		usage vk.ImageUsageFlags, flags vk.ImageCreateFlags, props *vk.ImageFormatProperties) vk.Result
	GetPhysicalDeviceQueueFamilyProperties(pd vk.PhysicalDevice, count *uint32, props []vk.QueueFamilyProperties) vk.Result
	GetPhysicalDeviceMemoryProperties(pd vk.PhysicalDevice, props *vk.PhysicalDeviceMemoryProperties) vk.Result
	GetPhysicalDeviceSparseImageFormatProperties(pd vk.PhysicalDevice, format vk.Format, typ vk.ImageType,
		samples vk.SampleCountFlags, usage vk.ImageUsageFlags, tiling vk.ImageTiling, count *uint32,
		props []vk.SparseImageFormatProperties) vk.Result
	GetPhysicalDeviceSurfaceSupportKHR(pd vk.PhysicalDevice, family uint32, surface vk.SurfaceKHR, supported *vk.Bool32) vk.Result

	// Debug report
	CreateDebugReportCallbackEXT(instance vk.Instance, info *vk.DebugReportCallbackCreateInfoEXT, callback *vk.DebugReportCallbackEXT) vk.Result
	DestroyDebugReportCallbackEXT(instance vk.Instance, callback vk.DebugReportCallbackEXT) vk.Result
	DebugReportMessageEXT(instance vk.Instance, flags vk.DebugReportFlagsEXT, objectType vk.DebugReportObjectTypeEXT,
		object uint64, location uint64, messageCode int32, layerPrefix, message string) vk.Result

	// Device and queues
	CreateDevice(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo, device *vk.Device) vk.Result
	DestroyDevice(device vk.Device) vk.Result
	GetDeviceQueue(device vk.Device, family, index uint32, queue *vk.Queue) vk.Result
	QueueSubmit(queue vk.Queue, count uint32, submits []vk.SubmitInfo, fence vk.Fence) vk.Result
	QueueWaitIdle(queue vk.Queue) vk.Result
	DeviceWaitIdle(device vk.Device) vk.Result

	// Memory
	AllocateMemory(device vk.Device, info *vk.MemoryAllocateInfo, memory *vk.DeviceMemory) vk.Result
	FreeMemory(device vk.Device, memory vk.DeviceMemory) vk.Result
	MapMemory(device vk.Device, memory vk.DeviceMemory, offset, size vk.DeviceSize, flags vk.Flags, data *[]byte) vk.Result
	UnmapMemory(device vk.Device, memory vk.DeviceMemory) vk.Result
	FlushMappedMemoryRanges(device vk.Device, count uint32, ranges []vk.MappedMemoryRange) vk.Result
	InvalidateMappedMemoryRanges(device vk.Device, count uint32, ranges []vk.MappedMemoryRange) vk.Result
	BindBufferMemory(device vk.Device, buffer vk.Buffer, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result
	BindImageMemory(device vk.Device, image vk.Image, memory vk.DeviceMemory, offset vk.DeviceSize) vk.Result

	// Synchronization and queries
	CreateFence(device vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result
	DestroyFence(device vk.Device, fence vk.Fence) vk.Result
	ResetFences(device vk.Device, count uint32, fences []vk.Fence) vk.Result
	WaitForFences(device vk.Device, count uint32, fences []vk.Fence, waitAll vk.Bool32, timeout uint64) vk.Result
	CreateSemaphore(device vk.Device, info *vk.SemaphoreCreateInfo, semaphore *vk.Semaphore) vk.Result
	CreateEvent(device vk.Device, info *vk.EventCreateInfo, event *vk.Event) vk.Result
	CreateQueryPool(device vk.Device, info *vk.QueryPoolCreateInfo, pool *vk.QueryPool) vk.Result
	GetQueryPoolResults(device vk.Device, pool vk.QueryPool, first, count uint32, data []byte,
		stride vk.DeviceSize, flags vk.QueryResultFlags) vk.Result

	// Resources
	CreateBuffer(device vk.Device, info *vk.BufferCreateInfo, buffer *vk.Buffer) vk.Result
	DestroyBuffer(device vk.Device, buffer vk.Buffer) vk.Result
	CreateBufferView(device vk.Device, info *vk.BufferViewCreateInfo, view *vk.BufferView) vk.Result
	CreateImage(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result
	DestroyImage(device vk.Device, image vk.Image) vk.Result
	GetImageSubresourceLayout(device vk.Device, image vk.Image, sub *vk.ImageSubresource, layout *vk.SubresourceLayout) vk.Result
	CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, view *vk.ImageView) vk.Result
	CreateSampler(device vk.Device, info *vk.SamplerCreateInfo, sampler *vk.Sampler) vk.Result

	// Pipelines
	CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result
	CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo, cache *vk.PipelineCache) vk.Result
	CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, count uint32,
		infos []vk.GraphicsPipelineCreateInfo, pipelines []vk.Pipeline) vk.Result
	CreateComputePipelines(device vk.Device, cache vk.PipelineCache, count uint32,
		infos []vk.ComputePipelineCreateInfo, pipelines []vk.Pipeline) vk.Result
	DestroyPipeline(device vk.Device, pipeline vk.Pipeline) vk.Result
	CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, layout *vk.PipelineLayout) vk.Result

	// Descriptors
	CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo, layout *vk.DescriptorSetLayout) vk.Result
	CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo, pool *vk.DescriptorPool) vk.Result
	AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo, sets []vk.DescriptorSet) vk.Result
	FreeDescriptorSets(device vk.Device, pool vk.DescriptorPool, count uint32, sets []vk.DescriptorSet) vk.Result
	UpdateDescriptorSets(device vk.Device, writeCount uint32, writes []vk.WriteDescriptorSet,
		copyCount uint32, copies []vk.CopyDescriptorSet) vk.Result

	// Render passes
	CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, fb *vk.Framebuffer) vk.Result
	CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, rp *vk.RenderPass) vk.Result
	DestroyRenderPass(device vk.Device, rp vk.RenderPass) vk.Result

	// Command pools and buffers
	CreateCommandPool(device vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result
	ResetCommandPool(device vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result
	AllocateCommandBuffers(device vk.Device, info *vk.CommandBufferAllocateInfo, cbs []vk.CommandBuffer) vk.Result
	FreeCommandBuffers(device vk.Device, pool vk.CommandPool, count uint32, cbs []vk.CommandBuffer) vk.Result
	BeginCommandBuffer(cb vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result
	EndCommandBuffer(cb vk.CommandBuffer) vk.Result
	ResetCommandBuffer(cb vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result

	// Window system
	CreateSwapchainKHR(device vk.Device, info *vk.SwapchainCreateInfoKHR, swapchain *vk.SwapchainKHR) vk.Result
	QueuePresentKHR(queue vk.Queue, info *vk.PresentInfoKHR) vk.Result

	// Commands
	CmdBindPipeline(cb vk.CommandBuffer, bindPoint vk.PipelineBindPoint, pipeline vk.Pipeline) vk.Result
	CmdSetViewport(cb vk.CommandBuffer, first, count uint32, viewports []vk.Viewport) vk.Result
	CmdSetScissor(cb vk.CommandBuffer, first, count uint32, scissors []vk.Rect2D) vk.Result
	CmdSetLineWidth(cb vk.CommandBuffer, width float32) vk.Result
	CmdSetDepthBias(cb vk.CommandBuffer, constant, clamp, slope float32) vk.Result
	CmdBindDescriptorSets(cb vk.CommandBuffer, bindPoint vk.PipelineBindPoint, layout vk.PipelineLayout,
		firstSet, count uint32, sets []vk.DescriptorSet, dynamicCount uint32, dynamicOffsets []uint32) vk.Result
	CmdBindIndexBuffer(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, indexType vk.IndexType) vk.Result
	CmdBindVertexBuffers(cb vk.CommandBuffer, first, count uint32, buffers []vk.Buffer, offsets []vk.DeviceSize) vk.Result
	CmdDraw(cb vk.CommandBuffer, vertexCount, instanceCount, firstVertex, firstInstance uint32) vk.Result
	CmdDrawIndexed(cb vk.CommandBuffer, indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) vk.Result
	CmdDrawIndirect(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) vk.Result
	CmdDrawIndexedIndirect(cb vk.CommandBuffer, buffer vk.Buffer, offset vk.DeviceSize, drawCount, stride uint32) vk.Result
	CmdDispatch(cb vk.CommandBuffer, x, y, z uint32) vk.Result
	CmdCopyBuffer(cb vk.CommandBuffer, src, dst vk.Buffer, count uint32, regions []vk.BufferCopy) vk.Result
	CmdCopyImage(cb vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout,
		count uint32, regions []vk.ImageCopy) vk.Result
	CmdBlitImage(cb vk.CommandBuffer, src vk.Image, srcLayout vk.ImageLayout, dst vk.Image, dstLayout vk.ImageLayout,
		count uint32, regions []vk.ImageBlit, filter vk.Filter) vk.Result
	CmdCopyBufferToImage(cb vk.CommandBuffer, src vk.Buffer, dst vk.Image, dstLayout vk.ImageLayout,
		count uint32, regions []vk.BufferImageCopy) vk.Result
	CmdUpdateBuffer(cb vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data []byte) vk.Result
	CmdFillBuffer(cb vk.CommandBuffer, dst vk.Buffer, offset, size vk.DeviceSize, data uint32) vk.Result
	CmdClearColorImage(cb vk.CommandBuffer, image vk.Image, layout vk.ImageLayout, color *vk.ClearColorValue,
		count uint32, ranges []vk.ImageSubresourceRange) vk.Result
	CmdPipelineBarrier(cb vk.CommandBuffer, srcStages, dstStages vk.PipelineStageFlags, deps vk.DependencyFlags,
		memoryCount uint32, memory []vk.MemoryBarrier, bufferCount uint32, buffers []vk.BufferMemoryBarrier,
		imageCount uint32, images []vk.ImageMemoryBarrier) vk.Result
	CmdBeginQuery(cb vk.CommandBuffer, pool vk.QueryPool, query uint32, flags vk.QueryControlFlags) vk.Result
	CmdPushConstants(cb vk.CommandBuffer, layout vk.PipelineLayout, stages vk.ShaderStageFlags, offset, size uint32, values []byte) vk.Result
	CmdBeginRenderPass(cb vk.CommandBuffer, info *vk.RenderPassBeginInfo, contents vk.SubpassContents) vk.Result
	CmdNextSubpass(cb vk.CommandBuffer, contents vk.SubpassContents) vk.Result
	CmdEndRenderPass(cb vk.CommandBuffer) vk.Result
	CmdExecuteCommands(cb vk.CommandBuffer, count uint32, cbs []vk.CommandBuffer) vk.Result
}
