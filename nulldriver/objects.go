package nulldriver

import "github.com/wippyai/vk-validation/vk"

func (d *Driver) CreateFence(dev vk.Device, info *vk.FenceCreateInfo, fence *vk.Fence) vk.Result {
	return d.create("vkCreateFence", vk.DebugReportObjectTypeFenceEXT, dev.ID, nil, (*uint64)(fence))
}

func (d *Driver) DestroyFence(dev vk.Device, fence vk.Fence) vk.Result {
	return d.remove("vkDestroyFence", uint64(fence))
}

func (d *Driver) ResetFences(dev vk.Device, count uint32, fences []vk.Fence) vk.Result {
	return d.simple("vkResetFences")
}

func (d *Driver) WaitForFences(dev vk.Device, count uint32, fences []vk.Fence, waitAll vk.Bool32, timeout uint64) vk.Result {
	return d.simple("vkWaitForFences")
}

func (d *Driver) CreateSemaphore(dev vk.Device, info *vk.SemaphoreCreateInfo, semaphore *vk.Semaphore) vk.Result {
	return d.create("vkCreateSemaphore", vk.DebugReportObjectTypeSemaphoreEXT, dev.ID, nil, (*uint64)(semaphore))
}

func (d *Driver) CreateEvent(dev vk.Device, info *vk.EventCreateInfo, event *vk.Event) vk.Result {
	return d.create("vkCreateEvent", vk.DebugReportObjectTypeEventEXT, dev.ID, nil, (*uint64)(event))
}

func (d *Driver) CreateQueryPool(dev vk.Device, info *vk.QueryPoolCreateInfo, pool *vk.QueryPool) vk.Result {
	return d.create("vkCreateQueryPool", vk.DebugReportObjectTypeQueryPoolEXT, dev.ID, nil, (*uint64)(pool))
}

// GetQueryPoolResults reports every query as zero.
func (d *Driver) GetQueryPoolResults(dev vk.Device, pool vk.QueryPool, first, count uint32, data []byte,
	stride vk.DeviceSize, flags vk.QueryResultFlags) vk.Result {
	const op = "vkGetQueryPoolResults"
	if r, ok := d.begin(op); !ok {
		return r
	}
	clear(data)
	return d.done(op)
}

func (d *Driver) CreateBuffer(dev vk.Device, info *vk.BufferCreateInfo, buffer *vk.Buffer) vk.Result {
	return d.create("vkCreateBuffer", vk.DebugReportObjectTypeBufferEXT, dev.ID, nil, (*uint64)(buffer))
}

func (d *Driver) DestroyBuffer(dev vk.Device, buffer vk.Buffer) vk.Result {
	return d.remove("vkDestroyBuffer", uint64(buffer))
}

func (d *Driver) CreateBufferView(dev vk.Device, info *vk.BufferViewCreateInfo, view *vk.BufferView) vk.Result {
	return d.create("vkCreateBufferView", vk.DebugReportObjectTypeBufferViewEXT, dev.ID, nil, (*uint64)(view))
}

func (d *Driver) CreateImage(dev vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result {
	return d.create("vkCreateImage", vk.DebugReportObjectTypeImageEXT, dev.ID, nil, (*uint64)(image))
}

func (d *Driver) DestroyImage(dev vk.Device, image vk.Image) vk.Result {
	return d.remove("vkDestroyImage", uint64(image))
}

func (d *Driver) GetImageSubresourceLayout(dev vk.Device, image vk.Image, sub *vk.ImageSubresource, layout *vk.SubresourceLayout) vk.Result {
	const op = "vkGetImageSubresourceLayout"
	if r, ok := d.begin(op); !ok {
		return r
	}
	*layout = vk.SubresourceLayout{}
	return d.done(op)
}

func (d *Driver) CreateImageView(dev vk.Device, info *vk.ImageViewCreateInfo, view *vk.ImageView) vk.Result {
	return d.create("vkCreateImageView", vk.DebugReportObjectTypeImageViewEXT, dev.ID, nil, (*uint64)(view))
}

func (d *Driver) CreateSampler(dev vk.Device, info *vk.SamplerCreateInfo, sampler *vk.Sampler) vk.Result {
	return d.create("vkCreateSampler", vk.DebugReportObjectTypeSamplerEXT, dev.ID, nil, (*uint64)(sampler))
}

func (d *Driver) CreateShaderModule(dev vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	return d.create("vkCreateShaderModule", vk.DebugReportObjectTypeShaderModuleEXT, dev.ID, nil, (*uint64)(module))
}

func (d *Driver) CreatePipelineCache(dev vk.Device, info *vk.PipelineCacheCreateInfo, cache *vk.PipelineCache) vk.Result {
	return d.create("vkCreatePipelineCache", vk.DebugReportObjectTypePipelineCacheEXT, dev.ID, nil, (*uint64)(cache))
}

// pipelines mints one pipeline per create info.
func (d *Driver) pipelines(op string, dev vk.Device, count uint32, out []vk.Pipeline) vk.Result {
	if r, ok := d.begin(op); !ok {
		return r
	}
	for i := range out[:min(int(count), len(out))] {
		out[i] = vk.Pipeline(d.mint(vk.DebugReportObjectTypePipelineEXT, dev.ID, nil))
	}
	return d.done(op)
}

func (d *Driver) CreateGraphicsPipelines(dev vk.Device, cache vk.PipelineCache, count uint32,
	infos []vk.GraphicsPipelineCreateInfo, out []vk.Pipeline) vk.Result {
	return d.pipelines("vkCreateGraphicsPipelines", dev, count, out)
}

func (d *Driver) CreateComputePipelines(dev vk.Device, cache vk.PipelineCache, count uint32,
	infos []vk.ComputePipelineCreateInfo, out []vk.Pipeline) vk.Result {
	return d.pipelines("vkCreateComputePipelines", dev, count, out)
}

func (d *Driver) DestroyPipeline(dev vk.Device, pipeline vk.Pipeline) vk.Result {
	return d.remove("vkDestroyPipeline", uint64(pipeline))
}

func (d *Driver) CreatePipelineLayout(dev vk.Device, info *vk.PipelineLayoutCreateInfo, layout *vk.PipelineLayout) vk.Result {
	return d.create("vkCreatePipelineLayout", vk.DebugReportObjectTypePipelineLayoutEXT, dev.ID, nil, (*uint64)(layout))
}

func (d *Driver) CreateDescriptorSetLayout(dev vk.Device, info *vk.DescriptorSetLayoutCreateInfo, layout *vk.DescriptorSetLayout) vk.Result {
	return d.create("vkCreateDescriptorSetLayout", vk.DebugReportObjectTypeDescriptorSetLayoutEXT, dev.ID, nil, (*uint64)(layout))
}

func (d *Driver) CreateDescriptorPool(dev vk.Device, info *vk.DescriptorPoolCreateInfo, pool *vk.DescriptorPool) vk.Result {
	return d.create("vkCreateDescriptorPool", vk.DebugReportObjectTypeDescriptorPoolEXT, dev.ID, nil, (*uint64)(pool))
}

// AllocateDescriptorSets mints sets owned by the pool.
func (d *Driver) AllocateDescriptorSets(dev vk.Device, info *vk.DescriptorSetAllocateInfo, sets []vk.DescriptorSet) vk.Result {
	const op = "vkAllocateDescriptorSets"
	if r, ok := d.begin(op); !ok {
		return r
	}
	for i := range sets[:min(int(info.DescriptorSetCount), len(sets))] {
		sets[i] = vk.DescriptorSet(d.mint(vk.DebugReportObjectTypeDescriptorSetEXT, uint64(info.DescriptorPool), nil))
	}
	return d.done(op)
}

func (d *Driver) FreeDescriptorSets(dev vk.Device, pool vk.DescriptorPool, count uint32, sets []vk.DescriptorSet) vk.Result {
	const op = "vkFreeDescriptorSets"
	if r, ok := d.begin(op); !ok {
		return r
	}
	for _, s := range sets[:min(int(count), len(sets))] {
		d.destroy(uint64(s))
	}
	return d.done(op)
}

func (d *Driver) UpdateDescriptorSets(dev vk.Device, writeCount uint32, writes []vk.WriteDescriptorSet,
	copyCount uint32, copies []vk.CopyDescriptorSet) vk.Result {
	return d.simple("vkUpdateDescriptorSets")
}

func (d *Driver) CreateFramebuffer(dev vk.Device, info *vk.FramebufferCreateInfo, fb *vk.Framebuffer) vk.Result {
	return d.create("vkCreateFramebuffer", vk.DebugReportObjectTypeFramebufferEXT, dev.ID, nil, (*uint64)(fb))
}

func (d *Driver) CreateRenderPass(dev vk.Device, info *vk.RenderPassCreateInfo, rp *vk.RenderPass) vk.Result {
	return d.create("vkCreateRenderPass", vk.DebugReportObjectTypeRenderPassEXT, dev.ID, nil, (*uint64)(rp))
}

func (d *Driver) DestroyRenderPass(dev vk.Device, rp vk.RenderPass) vk.Result {
	return d.remove("vkDestroyRenderPass", uint64(rp))
}

func (d *Driver) CreateCommandPool(dev vk.Device, info *vk.CommandPoolCreateInfo, pool *vk.CommandPool) vk.Result {
	return d.create("vkCreateCommandPool", vk.DebugReportObjectTypeCommandPoolEXT, dev.ID, nil, (*uint64)(pool))
}

func (d *Driver) ResetCommandPool(dev vk.Device, pool vk.CommandPool, flags vk.CommandPoolResetFlags) vk.Result {
	return d.simple("vkResetCommandPool")
}

// AllocateCommandBuffers mints command buffers owned by the pool. They
// dispatch through the device's key.
func (d *Driver) AllocateCommandBuffers(dev vk.Device, info *vk.CommandBufferAllocateInfo, cbs []vk.CommandBuffer) vk.Result {
	const op = "vkAllocateCommandBuffers"
	if r, ok := d.begin(op); !ok {
		return r
	}
	for i := range cbs[:min(int(info.CommandBufferCount), len(cbs))] {
		cbs[i] = vk.CommandBuffer{Key: dev.Key, ID: d.mint(typeCommandBuffer, uint64(info.CommandPool), nil)}
	}
	return d.done(op)
}

func (d *Driver) FreeCommandBuffers(dev vk.Device, pool vk.CommandPool, count uint32, cbs []vk.CommandBuffer) vk.Result {
	const op = "vkFreeCommandBuffers"
	if r, ok := d.begin(op); !ok {
		return r
	}
	for _, cb := range cbs[:min(int(count), len(cbs))] {
		d.destroy(cb.ID)
	}
	return d.done(op)
}

func (d *Driver) BeginCommandBuffer(cb vk.CommandBuffer, info *vk.CommandBufferBeginInfo) vk.Result {
	return d.simple("vkBeginCommandBuffer")
}

func (d *Driver) EndCommandBuffer(cb vk.CommandBuffer) vk.Result {
	return d.simple("vkEndCommandBuffer")
}

func (d *Driver) ResetCommandBuffer(cb vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result {
	return d.simple("vkResetCommandBuffer")
}

func (d *Driver) CreateSwapchainKHR(dev vk.Device, info *vk.SwapchainCreateInfoKHR, swapchain *vk.SwapchainKHR) vk.Result {
	return d.create("vkCreateSwapchainKHR", vk.DebugReportObjectTypeSwapchainKHREXT, dev.ID, nil, (*uint64)(swapchain))
}

// QueuePresentKHR fills the per-swapchain results.
func (d *Driver) QueuePresentKHR(queue vk.Queue, info *vk.PresentInfoKHR) vk.Result {
	const op = "vkQueuePresentKHR"
	if r, ok := d.begin(op); !ok {
		return r
	}
	res := vk.Success
	if d.corrupted(op) {
		res = vk.Result(12345)
	}
	for i := range info.Results[:min(int(info.SwapchainCount), len(info.Results))] {
		info.Results[i] = res
	}
	return d.done(op)
}
