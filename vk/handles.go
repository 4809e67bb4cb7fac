package vk

// Handle is implemented by every handle type so reports can name the object
// a violation concerns.
type Handle interface {
	ObjectType() DebugReportObjectTypeEXT
	Handle() uint64
}

// Instance is a dispatchable VkInstance handle.
type Instance struct {
	Key Key
	ID  uint64
}

func (h Instance) IsNull() bool { return h.ID == 0 }
func (h Instance) Handle() uint64 { return h.ID }
func (Instance) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeInstanceEXT }

// PhysicalDevice is a dispatchable VkPhysicalDevice handle.
type PhysicalDevice struct {
	Key Key
	ID  uint64
}

func (h PhysicalDevice) IsNull() bool { return h.ID == 0 }
func (h PhysicalDevice) Handle() uint64 { return h.ID }
func (PhysicalDevice) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypePhysicalDeviceEXT }

// Device is a dispatchable VkDevice handle.
type Device struct {
	Key Key
	ID  uint64
}

func (h Device) IsNull() bool { return h.ID == 0 }
func (h Device) Handle() uint64 { return h.ID }
func (Device) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeDeviceEXT }

// Queue is a dispatchable VkQueue handle.
type Queue struct {
	Key Key
	ID  uint64
}

func (h Queue) IsNull() bool { return h.ID == 0 }
func (h Queue) Handle() uint64 { return h.ID }
func (Queue) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeQueueEXT }

// CommandBuffer is a dispatchable VkCommandBuffer handle.
type CommandBuffer struct {
	Key Key
	ID  uint64
}

func (h CommandBuffer) IsNull() bool { return h.ID == 0 }
func (h CommandBuffer) Handle() uint64 { return h.ID }
func (CommandBuffer) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeCommandBufferEXT }

// Semaphore is a non-dispatchable VkSemaphore handle.
type Semaphore uint64

func (h Semaphore) Handle() uint64 { return uint64(h) }
func (Semaphore) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeSemaphoreEXT }

// Fence is a non-dispatchable VkFence handle.
type Fence uint64

func (h Fence) Handle() uint64 { return uint64(h) }
func (Fence) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeFenceEXT }

// DeviceMemory is a non-dispatchable VkDeviceMemory handle.
type DeviceMemory uint64

func (h DeviceMemory) Handle() uint64 { return uint64(h) }
func (DeviceMemory) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeDeviceMemoryEXT }

// Buffer is a non-dispatchable VkBuffer handle.
type Buffer uint64

func (h Buffer) Handle() uint64 { return uint64(h) }
func (Buffer) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeBufferEXT }

// Image is a non-dispatchable VkImage handle.
type Image uint64

func (h Image) Handle() uint64 { return uint64(h) }
func (Image) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeImageEXT }

// Event is a non-dispatchable VkEvent handle.
type Event uint64

func (h Event) Handle() uint64 { return uint64(h) }
func (Event) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeEventEXT }

// QueryPool is a non-dispatchable VkQueryPool handle.
type QueryPool uint64

func (h QueryPool) Handle() uint64 { return uint64(h) }
func (QueryPool) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeQueryPoolEXT }

// BufferView is a non-dispatchable VkBufferView handle.
type BufferView uint64

func (h BufferView) Handle() uint64 { return uint64(h) }
func (BufferView) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeBufferViewEXT }

// ImageView is a non-dispatchable VkImageView handle.
type ImageView uint64

func (h ImageView) Handle() uint64 { return uint64(h) }
func (ImageView) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeImageViewEXT }

// ShaderModule is a non-dispatchable VkShaderModule handle.
type ShaderModule uint64

func (h ShaderModule) Handle() uint64 { return uint64(h) }
func (ShaderModule) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeShaderModuleEXT }

// PipelineCache is a non-dispatchable VkPipelineCache handle.
type PipelineCache uint64

func (h PipelineCache) Handle() uint64 { return uint64(h) }
func (PipelineCache) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypePipelineCacheEXT }

// PipelineLayout is a non-dispatchable VkPipelineLayout handle.
type PipelineLayout uint64

func (h PipelineLayout) Handle() uint64 { return uint64(h) }
func (PipelineLayout) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypePipelineLayoutEXT }

// RenderPass is a non-dispatchable VkRenderPass handle.
type RenderPass uint64

func (h RenderPass) Handle() uint64 { return uint64(h) }
func (RenderPass) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeRenderPassEXT }

// Pipeline is a non-dispatchable VkPipeline handle.
type Pipeline uint64

func (h Pipeline) Handle() uint64 { return uint64(h) }
func (Pipeline) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypePipelineEXT }

// DescriptorSetLayout is a non-dispatchable VkDescriptorSetLayout handle.
type DescriptorSetLayout uint64

func (h DescriptorSetLayout) Handle() uint64 { return uint64(h) }
func (DescriptorSetLayout) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeDescriptorSetLayoutEXT }

// Sampler is a non-dispatchable VkSampler handle.
type Sampler uint64

func (h Sampler) Handle() uint64 { return uint64(h) }
func (Sampler) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeSamplerEXT }

// DescriptorPool is a non-dispatchable VkDescriptorPool handle.
type DescriptorPool uint64

func (h DescriptorPool) Handle() uint64 { return uint64(h) }
func (DescriptorPool) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeDescriptorPoolEXT }

// DescriptorSet is a non-dispatchable VkDescriptorSet handle.
type DescriptorSet uint64

func (h DescriptorSet) Handle() uint64 { return uint64(h) }
func (DescriptorSet) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeDescriptorSetEXT }

// Framebuffer is a non-dispatchable VkFramebuffer handle.
type Framebuffer uint64

func (h Framebuffer) Handle() uint64 { return uint64(h) }
func (Framebuffer) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeFramebufferEXT }

// CommandPool is a non-dispatchable VkCommandPool handle.
type CommandPool uint64

func (h CommandPool) Handle() uint64 { return uint64(h) }
func (CommandPool) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeCommandPoolEXT }

// SurfaceKHR is a non-dispatchable VkSurfaceKHR handle.
type SurfaceKHR uint64

func (h SurfaceKHR) Handle() uint64 { return uint64(h) }
func (SurfaceKHR) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeSurfaceKHREXT }

// SwapchainKHR is a non-dispatchable VkSwapchainKHR handle.
type SwapchainKHR uint64

func (h SwapchainKHR) Handle() uint64 { return uint64(h) }
func (SwapchainKHR) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeSwapchainKHREXT }

// DebugReportCallbackEXT is a non-dispatchable VkDebugReportCallbackEXT handle.
type DebugReportCallbackEXT uint64

func (h DebugReportCallbackEXT) Handle() uint64 { return uint64(h) }
func (DebugReportCallbackEXT) ObjectType() DebugReportObjectTypeEXT { return DebugReportObjectTypeDebugReportCallbackEXT }
