package vk

// ApplicationInfo is VkApplicationInfo.
type ApplicationInfo struct {
	SType              StructureType
	Next               Extension
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32
}

// InstanceCreateInfo is VkInstanceCreateInfo.
type InstanceCreateInfo struct {
	SType                 StructureType
	Next                  Extension
	Flags                 Flags
	ApplicationInfo       *ApplicationInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     []string
	EnabledExtensionCount uint32
	EnabledExtensionNames []string
}

// DeviceQueueCreateInfo is VkDeviceQueueCreateInfo.
type DeviceQueueCreateInfo struct {
	SType            StructureType
	Next             Extension
	Flags            Flags
	QueueFamilyIndex uint32
	QueueCount       uint32
	QueuePriorities  []float32
}

// DeviceCreateInfo is VkDeviceCreateInfo.
type DeviceCreateInfo struct {
	SType                 StructureType
	Next                  Extension
	Flags                 Flags
	QueueCreateInfoCount  uint32
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     []string
	EnabledExtensionCount uint32
	EnabledExtensionNames []string
	EnabledFeatures       *PhysicalDeviceFeatures
}

// SubmitInfo is VkSubmitInfo.
type SubmitInfo struct {
	SType                StructureType
	Next                 Extension
	WaitSemaphoreCount   uint32
	WaitSemaphores       []Semaphore
	WaitDstStageMask     []PipelineStageFlags
	CommandBufferCount   uint32
	CommandBuffers       []CommandBuffer
	SignalSemaphoreCount uint32
	SignalSemaphores     []Semaphore
}

// MemoryAllocateInfo is VkMemoryAllocateInfo.
type MemoryAllocateInfo struct {
	SType           StructureType
	Next            Extension
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

// MappedMemoryRange is VkMappedMemoryRange.
type MappedMemoryRange struct {
	SType  StructureType
	Next   Extension
	Memory DeviceMemory
	Offset DeviceSize
	Size   DeviceSize
}

// FenceCreateInfo is VkFenceCreateInfo.
type FenceCreateInfo struct {
	SType StructureType
	Next  Extension
	Flags FenceCreateFlags
}

// SemaphoreCreateInfo is VkSemaphoreCreateInfo.
type SemaphoreCreateInfo struct {
	SType StructureType
	Next  Extension
	Flags Flags
}

// EventCreateInfo is VkEventCreateInfo.
type EventCreateInfo struct {
	SType StructureType
	Next  Extension
	Flags Flags
}

// QueryPoolCreateInfo is VkQueryPoolCreateInfo.
type QueryPoolCreateInfo struct {
	SType              StructureType
	Next               Extension
	Flags              Flags
	QueryType          QueryType
	QueryCount         uint32
	PipelineStatistics QueryPipelineStatisticFlags
}

// BufferCreateInfo is VkBufferCreateInfo.
type BufferCreateInfo struct {
	SType                 StructureType
	Next                  Extension
	Flags                 BufferCreateFlags
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    []uint32
}

// BufferViewCreateInfo is VkBufferViewCreateInfo.
type BufferViewCreateInfo struct {
	SType  StructureType
	Next   Extension
	Flags  Flags
	Buffer Buffer
	Format Format
	Offset DeviceSize
	Range  DeviceSize
}

// ImageCreateInfo is VkImageCreateInfo.
type ImageCreateInfo struct {
	SType                 StructureType
	Next                  Extension
	Flags                 ImageCreateFlags
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlags
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    []uint32
	InitialLayout         ImageLayout
}

// ImageViewCreateInfo is VkImageViewCreateInfo.
type ImageViewCreateInfo struct {
	SType            StructureType
	Next             Extension
	Flags            Flags
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

// ShaderModuleCreateInfo is VkShaderModuleCreateInfo. CodeSize is in bytes.
type ShaderModuleCreateInfo struct {
	SType    StructureType
	Next     Extension
	Flags    Flags
	CodeSize uint64
	Code     []uint32
}

// PipelineCacheCreateInfo is VkPipelineCacheCreateInfo.
type PipelineCacheCreateInfo struct {
	SType           StructureType
	Next            Extension
	Flags           Flags
	InitialDataSize uint64
	InitialData     []byte
}

// SamplerCreateInfo is VkSamplerCreateInfo.
type SamplerCreateInfo struct {
	SType                   StructureType
	Next                    Extension
	Flags                   Flags
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

// DescriptorSetLayoutBinding is VkDescriptorSetLayoutBinding.
type DescriptorSetLayoutBinding struct {
	Binding           uint32
	DescriptorType    DescriptorType
	DescriptorCount   uint32
	StageFlags        ShaderStageFlags
	ImmutableSamplers []Sampler
}

// DescriptorSetLayoutCreateInfo is VkDescriptorSetLayoutCreateInfo.
type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	Next         Extension
	Flags        DescriptorSetLayoutCreateFlags
	BindingCount uint32
	Bindings     []DescriptorSetLayoutBinding
}

// DescriptorPoolSize is VkDescriptorPoolSize.
type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

// DescriptorPoolCreateInfo is VkDescriptorPoolCreateInfo.
type DescriptorPoolCreateInfo struct {
	SType         StructureType
	Next          Extension
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PoolSizes     []DescriptorPoolSize
}

// DescriptorSetAllocateInfo is VkDescriptorSetAllocateInfo.
type DescriptorSetAllocateInfo struct {
	SType              StructureType
	Next               Extension
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	SetLayouts         []DescriptorSetLayout
}

// DescriptorImageInfo is VkDescriptorImageInfo.
type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

// DescriptorBufferInfo is VkDescriptorBufferInfo.
type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

// WriteDescriptorSet is VkWriteDescriptorSet.
type WriteDescriptorSet struct {
	SType            StructureType
	Next             Extension
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	ImageInfo        []DescriptorImageInfo
	BufferInfo       []DescriptorBufferInfo
	TexelBufferViews []BufferView
}

// CopyDescriptorSet is VkCopyDescriptorSet.
type CopyDescriptorSet struct {
	SType           StructureType
	Next            Extension
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

// FramebufferCreateInfo is VkFramebufferCreateInfo.
type FramebufferCreateInfo struct {
	SType           StructureType
	Next            Extension
	Flags           Flags
	RenderPass      RenderPass
	AttachmentCount uint32
	Attachments     []ImageView
	Width           uint32
	Height          uint32
	Layers          uint32
}

// CommandPoolCreateInfo is VkCommandPoolCreateInfo.
type CommandPoolCreateInfo struct {
	SType            StructureType
	Next             Extension
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

// CommandBufferAllocateInfo is VkCommandBufferAllocateInfo.
type CommandBufferAllocateInfo struct {
	SType              StructureType
	Next               Extension
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

// CommandBufferInheritanceInfo is VkCommandBufferInheritanceInfo.
type CommandBufferInheritanceInfo struct {
	SType                StructureType
	Next                 Extension
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           QueryControlFlags
	PipelineStatistics   QueryPipelineStatisticFlags
}

// CommandBufferBeginInfo is VkCommandBufferBeginInfo.
type CommandBufferBeginInfo struct {
	SType           StructureType
	Next            Extension
	Flags           CommandBufferUsageFlags
	InheritanceInfo *CommandBufferInheritanceInfo
}
