package vk

import "github.com/wippyai/vk-validation/enum"

// QueueFlags is VkQueueFlags.
type QueueFlags uint32

const (
	QueueGraphicsBit QueueFlags = 1 << iota
	QueueComputeBit
	QueueTransferBit
	QueueSparseBindingBit
)

var queueFlagsDecl = enum.Bits[QueueFlags]("VkQueueFlags",
	"VK_QUEUE_GRAPHICS_BIT",
	"VK_QUEUE_COMPUTE_BIT",
	"VK_QUEUE_TRANSFER_BIT",
	"VK_QUEUE_SPARSE_BINDING_BIT")

func (v QueueFlags) IsValid() bool { return queueFlagsDecl.IsValid(v) }
func (v QueueFlags) String() string { return queueFlagsDecl.Format(v) }
func (QueueFlags) EnumType() string { return queueFlagsDecl.TypeName() }
func (v *QueueFlags) UnmarshalText(b []byte) error { return queueFlagsDecl.Unmarshal(v, b) }

// MemoryPropertyFlags is VkMemoryPropertyFlags.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit MemoryPropertyFlags = 1 << iota
	MemoryPropertyHostVisibleBit
	MemoryPropertyHostCoherentBit
	MemoryPropertyHostCachedBit
	MemoryPropertyLazilyAllocatedBit
)

var memoryPropertyFlagsDecl = enum.Bits[MemoryPropertyFlags]("VkMemoryPropertyFlags",
	"VK_MEMORY_PROPERTY_DEVICE_LOCAL_BIT",
	"VK_MEMORY_PROPERTY_HOST_VISIBLE_BIT",
	"VK_MEMORY_PROPERTY_HOST_COHERENT_BIT",
	"VK_MEMORY_PROPERTY_HOST_CACHED_BIT",
	"VK_MEMORY_PROPERTY_LAZILY_ALLOCATED_BIT")

func (v MemoryPropertyFlags) IsValid() bool { return memoryPropertyFlagsDecl.IsValid(v) }
func (v MemoryPropertyFlags) String() string { return memoryPropertyFlagsDecl.Format(v) }
func (MemoryPropertyFlags) EnumType() string { return memoryPropertyFlagsDecl.TypeName() }
func (v *MemoryPropertyFlags) UnmarshalText(b []byte) error { return memoryPropertyFlagsDecl.Unmarshal(v, b) }

// MemoryHeapFlags is VkMemoryHeapFlags.
type MemoryHeapFlags uint32

const (
	MemoryHeapDeviceLocalBit MemoryHeapFlags = 1 << iota
)

const (
	MemoryHeapMultiInstanceBitKHX MemoryHeapFlags = 0x2
)

var memoryHeapFlagsDecl = enum.Bits[MemoryHeapFlags]("VkMemoryHeapFlags",
	"VK_MEMORY_HEAP_DEVICE_LOCAL_BIT").
	Extend(MemoryHeapMultiInstanceBitKHX, "VK_MEMORY_HEAP_MULTI_INSTANCE_BIT_KHX")

func (v MemoryHeapFlags) IsValid() bool { return memoryHeapFlagsDecl.IsValid(v) }
func (v MemoryHeapFlags) String() string { return memoryHeapFlagsDecl.Format(v) }
func (MemoryHeapFlags) EnumType() string { return memoryHeapFlagsDecl.TypeName() }
func (v *MemoryHeapFlags) UnmarshalText(b []byte) error { return memoryHeapFlagsDecl.Unmarshal(v, b) }

// BufferCreateFlags is VkBufferCreateFlags.
type BufferCreateFlags uint32

const (
	BufferCreateSparseBindingBit BufferCreateFlags = 1 << iota
	BufferCreateSparseResidencyBit
	BufferCreateSparseAliasedBit
)

var bufferCreateFlagsDecl = enum.Bits[BufferCreateFlags]("VkBufferCreateFlags",
	"VK_BUFFER_CREATE_SPARSE_BINDING_BIT",
	"VK_BUFFER_CREATE_SPARSE_RESIDENCY_BIT",
	"VK_BUFFER_CREATE_SPARSE_ALIASED_BIT")

func (v BufferCreateFlags) IsValid() bool { return bufferCreateFlagsDecl.IsValid(v) }
func (v BufferCreateFlags) String() string { return bufferCreateFlagsDecl.Format(v) }
func (BufferCreateFlags) EnumType() string { return bufferCreateFlagsDecl.TypeName() }
func (v *BufferCreateFlags) UnmarshalText(b []byte) error { return bufferCreateFlagsDecl.Unmarshal(v, b) }

// BufferUsageFlags is VkBufferUsageFlags.
type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit BufferUsageFlags = 1 << iota
	BufferUsageTransferDstBit
	BufferUsageUniformTexelBufferBit
	BufferUsageStorageTexelBufferBit
	BufferUsageUniformBufferBit
	BufferUsageStorageBufferBit
	BufferUsageIndexBufferBit
	BufferUsageVertexBufferBit
	BufferUsageIndirectBufferBit
)

var bufferUsageFlagsDecl = enum.Bits[BufferUsageFlags]("VkBufferUsageFlags",
	"VK_BUFFER_USAGE_TRANSFER_SRC_BIT",
	"VK_BUFFER_USAGE_TRANSFER_DST_BIT",
	"VK_BUFFER_USAGE_UNIFORM_TEXEL_BUFFER_BIT",
	"VK_BUFFER_USAGE_STORAGE_TEXEL_BUFFER_BIT",
	"VK_BUFFER_USAGE_UNIFORM_BUFFER_BIT",
	"VK_BUFFER_USAGE_STORAGE_BUFFER_BIT",
	"VK_BUFFER_USAGE_INDEX_BUFFER_BIT",
	"VK_BUFFER_USAGE_VERTEX_BUFFER_BIT",
	"VK_BUFFER_USAGE_INDIRECT_BUFFER_BIT")

func (v BufferUsageFlags) IsValid() bool { return bufferUsageFlagsDecl.IsValid(v) }
func (v BufferUsageFlags) String() string { return bufferUsageFlagsDecl.Format(v) }
func (BufferUsageFlags) EnumType() string { return bufferUsageFlagsDecl.TypeName() }
func (v *BufferUsageFlags) UnmarshalText(b []byte) error { return bufferUsageFlagsDecl.Unmarshal(v, b) }

// ImageCreateFlags is VkImageCreateFlags.
type ImageCreateFlags uint32

const (
	ImageCreateSparseBindingBit ImageCreateFlags = 1 << iota
	ImageCreateSparseResidencyBit
	ImageCreateSparseAliasedBit
	ImageCreateMutableFormatBit
	ImageCreateCubeCompatibleBit
)

const (
	ImageCreate2dArrayCompatibleBitKHR ImageCreateFlags = 0x20
)

var imageCreateFlagsDecl = enum.Bits[ImageCreateFlags]("VkImageCreateFlags",
	"VK_IMAGE_CREATE_SPARSE_BINDING_BIT",
	"VK_IMAGE_CREATE_SPARSE_RESIDENCY_BIT",
	"VK_IMAGE_CREATE_SPARSE_ALIASED_BIT",
	"VK_IMAGE_CREATE_MUTABLE_FORMAT_BIT",
	"VK_IMAGE_CREATE_CUBE_COMPATIBLE_BIT").
	Extend(ImageCreate2dArrayCompatibleBitKHR, "VK_IMAGE_CREATE_2D_ARRAY_COMPATIBLE_BIT_KHR")

func (v ImageCreateFlags) IsValid() bool { return imageCreateFlagsDecl.IsValid(v) }
func (v ImageCreateFlags) String() string { return imageCreateFlagsDecl.Format(v) }
func (ImageCreateFlags) EnumType() string { return imageCreateFlagsDecl.TypeName() }
func (v *ImageCreateFlags) UnmarshalText(b []byte) error { return imageCreateFlagsDecl.Unmarshal(v, b) }

// ImageUsageFlags is VkImageUsageFlags.
type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit ImageUsageFlags = 1 << iota
	ImageUsageTransferDstBit
	ImageUsageSampledBit
	ImageUsageStorageBit
	ImageUsageColorAttachmentBit
	ImageUsageDepthStencilAttachmentBit
	ImageUsageTransientAttachmentBit
	ImageUsageInputAttachmentBit
)

var imageUsageFlagsDecl = enum.Bits[ImageUsageFlags]("VkImageUsageFlags",
	"VK_IMAGE_USAGE_TRANSFER_SRC_BIT",
	"VK_IMAGE_USAGE_TRANSFER_DST_BIT",
	"VK_IMAGE_USAGE_SAMPLED_BIT",
	"VK_IMAGE_USAGE_STORAGE_BIT",
	"VK_IMAGE_USAGE_COLOR_ATTACHMENT_BIT",
	"VK_IMAGE_USAGE_DEPTH_STENCIL_ATTACHMENT_BIT",
	"VK_IMAGE_USAGE_TRANSIENT_ATTACHMENT_BIT",
	"VK_IMAGE_USAGE_INPUT_ATTACHMENT_BIT")

func (v ImageUsageFlags) IsValid() bool { return imageUsageFlagsDecl.IsValid(v) }
func (v ImageUsageFlags) String() string { return imageUsageFlagsDecl.Format(v) }
func (ImageUsageFlags) EnumType() string { return imageUsageFlagsDecl.TypeName() }
func (v *ImageUsageFlags) UnmarshalText(b []byte) error { return imageUsageFlagsDecl.Unmarshal(v, b) }

// ImageAspectFlags is VkImageAspectFlags.
type ImageAspectFlags uint32

const (
	ImageAspectColorBit ImageAspectFlags = 1 << iota
	ImageAspectDepthBit
	ImageAspectStencilBit
	ImageAspectMetadataBit
)

var imageAspectFlagsDecl = enum.Bits[ImageAspectFlags]("VkImageAspectFlags",
	"VK_IMAGE_ASPECT_COLOR_BIT",
	"VK_IMAGE_ASPECT_DEPTH_BIT",
	"VK_IMAGE_ASPECT_STENCIL_BIT",
	"VK_IMAGE_ASPECT_METADATA_BIT")

func (v ImageAspectFlags) IsValid() bool { return imageAspectFlagsDecl.IsValid(v) }
func (v ImageAspectFlags) String() string { return imageAspectFlagsDecl.Format(v) }
func (ImageAspectFlags) EnumType() string { return imageAspectFlagsDecl.TypeName() }
func (v *ImageAspectFlags) UnmarshalText(b []byte) error { return imageAspectFlagsDecl.Unmarshal(v, b) }

// SampleCountFlags is VkSampleCountFlags.
type SampleCountFlags uint32

const (
	SampleCount1Bit SampleCountFlags = 1 << iota
	SampleCount2Bit
	SampleCount4Bit
	SampleCount8Bit
	SampleCount16Bit
	SampleCount32Bit
	SampleCount64Bit
)

var sampleCountFlagsDecl = enum.Bits[SampleCountFlags]("VkSampleCountFlags",
	"VK_SAMPLE_COUNT_1_BIT",
	"VK_SAMPLE_COUNT_2_BIT",
	"VK_SAMPLE_COUNT_4_BIT",
	"VK_SAMPLE_COUNT_8_BIT",
	"VK_SAMPLE_COUNT_16_BIT",
	"VK_SAMPLE_COUNT_32_BIT",
	"VK_SAMPLE_COUNT_64_BIT")

func (v SampleCountFlags) IsValid() bool { return sampleCountFlagsDecl.IsValid(v) }
func (v SampleCountFlags) String() string { return sampleCountFlagsDecl.Format(v) }
func (SampleCountFlags) EnumType() string { return sampleCountFlagsDecl.TypeName() }
func (v *SampleCountFlags) UnmarshalText(b []byte) error { return sampleCountFlagsDecl.Unmarshal(v, b) }

// FormatFeatureFlags is VkFormatFeatureFlags.
type FormatFeatureFlags uint32

const (
	FormatFeatureSampledImageBit FormatFeatureFlags = 1 << iota
	FormatFeatureStorageImageBit
	FormatFeatureStorageImageAtomicBit
	FormatFeatureUniformTexelBufferBit
	FormatFeatureStorageTexelBufferBit
	FormatFeatureStorageTexelBufferAtomicBit
	FormatFeatureVertexBufferBit
	FormatFeatureColorAttachmentBit
	FormatFeatureColorAttachmentBlendBit
	FormatFeatureDepthStencilAttachmentBit
	FormatFeatureBlitSrcBit
	FormatFeatureBlitDstBit
	FormatFeatureSampledImageFilterLinearBit
)

const (
	FormatFeatureSampledImageFilterCubicBitIMG FormatFeatureFlags = 0x2000
	FormatFeatureTransferSrcBitKHR             FormatFeatureFlags = 0x4000
	FormatFeatureTransferDstBitKHR             FormatFeatureFlags = 0x8000
)

var formatFeatureFlagsDecl = enum.Bits[FormatFeatureFlags]("VkFormatFeatureFlags",
	"VK_FORMAT_FEATURE_SAMPLED_IMAGE_BIT",
	"VK_FORMAT_FEATURE_STORAGE_IMAGE_BIT",
	"VK_FORMAT_FEATURE_STORAGE_IMAGE_ATOMIC_BIT",
	"VK_FORMAT_FEATURE_UNIFORM_TEXEL_BUFFER_BIT",
	"VK_FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_BIT",
	"VK_FORMAT_FEATURE_STORAGE_TEXEL_BUFFER_ATOMIC_BIT",
	"VK_FORMAT_FEATURE_VERTEX_BUFFER_BIT",
	"VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BIT",
	"VK_FORMAT_FEATURE_COLOR_ATTACHMENT_BLEND_BIT",
	"VK_FORMAT_FEATURE_DEPTH_STENCIL_ATTACHMENT_BIT",
	"VK_FORMAT_FEATURE_BLIT_SRC_BIT",
	"VK_FORMAT_FEATURE_BLIT_DST_BIT",
	"VK_FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_LINEAR_BIT").
	Extend(FormatFeatureSampledImageFilterCubicBitIMG, "VK_FORMAT_FEATURE_SAMPLED_IMAGE_FILTER_CUBIC_BIT_IMG").
	Extend(FormatFeatureTransferSrcBitKHR, "VK_FORMAT_FEATURE_TRANSFER_SRC_BIT_KHR").
	Extend(FormatFeatureTransferDstBitKHR, "VK_FORMAT_FEATURE_TRANSFER_DST_BIT_KHR")

func (v FormatFeatureFlags) IsValid() bool { return formatFeatureFlagsDecl.IsValid(v) }
func (v FormatFeatureFlags) String() string { return formatFeatureFlagsDecl.Format(v) }
func (FormatFeatureFlags) EnumType() string { return formatFeatureFlagsDecl.TypeName() }
func (v *FormatFeatureFlags) UnmarshalText(b []byte) error { return formatFeatureFlagsDecl.Unmarshal(v, b) }

// PipelineCreateFlags is VkPipelineCreateFlags.
type PipelineCreateFlags uint32

const (
	PipelineCreateDisableOptimizationBit PipelineCreateFlags = 1 << iota
	PipelineCreateAllowDerivativesBit
	PipelineCreateDerivativeBit
)

var pipelineCreateFlagsDecl = enum.Bits[PipelineCreateFlags]("VkPipelineCreateFlags",
	"VK_PIPELINE_CREATE_DISABLE_OPTIMIZATION_BIT",
	"VK_PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT",
	"VK_PIPELINE_CREATE_DERIVATIVE_BIT")

func (v PipelineCreateFlags) IsValid() bool { return pipelineCreateFlagsDecl.IsValid(v) }
func (v PipelineCreateFlags) String() string { return pipelineCreateFlagsDecl.Format(v) }
func (PipelineCreateFlags) EnumType() string { return pipelineCreateFlagsDecl.TypeName() }
func (v *PipelineCreateFlags) UnmarshalText(b []byte) error { return pipelineCreateFlagsDecl.Unmarshal(v, b) }

// ShaderStageFlags is VkShaderStageFlags.
type ShaderStageFlags uint32

const (
	ShaderStageVertexBit ShaderStageFlags = 1 << iota
	ShaderStageTessellationControlBit
	ShaderStageTessellationEvaluationBit
	ShaderStageGeometryBit
	ShaderStageFragmentBit
	ShaderStageComputeBit
)

var shaderStageFlagsDecl = enum.Bits[ShaderStageFlags]("VkShaderStageFlags",
	"VK_SHADER_STAGE_VERTEX_BIT",
	"VK_SHADER_STAGE_TESSELLATION_CONTROL_BIT",
	"VK_SHADER_STAGE_TESSELLATION_EVALUATION_BIT",
	"VK_SHADER_STAGE_GEOMETRY_BIT",
	"VK_SHADER_STAGE_FRAGMENT_BIT",
	"VK_SHADER_STAGE_COMPUTE_BIT")

func (v ShaderStageFlags) IsValid() bool { return shaderStageFlagsDecl.IsValid(v) }
func (v ShaderStageFlags) String() string { return shaderStageFlagsDecl.Format(v) }
func (ShaderStageFlags) EnumType() string { return shaderStageFlagsDecl.TypeName() }
func (v *ShaderStageFlags) UnmarshalText(b []byte) error { return shaderStageFlagsDecl.Unmarshal(v, b) }

// CullModeFlags is VkCullModeFlags.
type CullModeFlags uint32

const (
	CullModeFrontBit CullModeFlags = 1 << iota
	CullModeBackBit
)

var cullModeFlagsDecl = enum.Bits[CullModeFlags]("VkCullModeFlags",
	"VK_CULL_MODE_FRONT_BIT",
	"VK_CULL_MODE_BACK_BIT")

func (v CullModeFlags) IsValid() bool { return cullModeFlagsDecl.IsValid(v) }
func (v CullModeFlags) String() string { return cullModeFlagsDecl.Format(v) }
func (CullModeFlags) EnumType() string { return cullModeFlagsDecl.TypeName() }
func (v *CullModeFlags) UnmarshalText(b []byte) error { return cullModeFlagsDecl.Unmarshal(v, b) }

// ColorComponentFlags is VkColorComponentFlags.
type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 1 << iota
	ColorComponentGBit
	ColorComponentBBit
	ColorComponentABit
)

var colorComponentFlagsDecl = enum.Bits[ColorComponentFlags]("VkColorComponentFlags",
	"VK_COLOR_COMPONENT_R_BIT",
	"VK_COLOR_COMPONENT_G_BIT",
	"VK_COLOR_COMPONENT_B_BIT",
	"VK_COLOR_COMPONENT_A_BIT")

func (v ColorComponentFlags) IsValid() bool { return colorComponentFlagsDecl.IsValid(v) }
func (v ColorComponentFlags) String() string { return colorComponentFlagsDecl.Format(v) }
func (ColorComponentFlags) EnumType() string { return colorComponentFlagsDecl.TypeName() }
func (v *ColorComponentFlags) UnmarshalText(b []byte) error { return colorComponentFlagsDecl.Unmarshal(v, b) }

// PipelineStageFlags is VkPipelineStageFlags.
type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit PipelineStageFlags = 1 << iota
	PipelineStageDrawIndirectBit
	PipelineStageVertexInputBit
	PipelineStageVertexShaderBit
	PipelineStageTessellationControlShaderBit
	PipelineStageTessellationEvaluationShaderBit
	PipelineStageGeometryShaderBit
	PipelineStageFragmentShaderBit
	PipelineStageEarlyFragmentTestsBit
	PipelineStageLateFragmentTestsBit
	PipelineStageColorAttachmentOutputBit
	PipelineStageComputeShaderBit
	PipelineStageTransferBit
	PipelineStageBottomOfPipeBit
	PipelineStageHostBit
	PipelineStageAllGraphicsBit
	PipelineStageAllCommandsBit
)

var pipelineStageFlagsDecl = enum.Bits[PipelineStageFlags]("VkPipelineStageFlags",
	"VK_PIPELINE_STAGE_TOP_OF_PIPE_BIT",
	"VK_PIPELINE_STAGE_DRAW_INDIRECT_BIT",
	"VK_PIPELINE_STAGE_VERTEX_INPUT_BIT",
	"VK_PIPELINE_STAGE_VERTEX_SHADER_BIT",
	"VK_PIPELINE_STAGE_TESSELLATION_CONTROL_SHADER_BIT",
	"VK_PIPELINE_STAGE_TESSELLATION_EVALUATION_SHADER_BIT",
	"VK_PIPELINE_STAGE_GEOMETRY_SHADER_BIT",
	"VK_PIPELINE_STAGE_FRAGMENT_SHADER_BIT",
	"VK_PIPELINE_STAGE_EARLY_FRAGMENT_TESTS_BIT",
	"VK_PIPELINE_STAGE_LATE_FRAGMENT_TESTS_BIT",
	"VK_PIPELINE_STAGE_COLOR_ATTACHMENT_OUTPUT_BIT",
	"VK_PIPELINE_STAGE_COMPUTE_SHADER_BIT",
	"VK_PIPELINE_STAGE_TRANSFER_BIT",
	"VK_PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT",
	"VK_PIPELINE_STAGE_HOST_BIT",
	"VK_PIPELINE_STAGE_ALL_GRAPHICS_BIT",
	"VK_PIPELINE_STAGE_ALL_COMMANDS_BIT")

func (v PipelineStageFlags) IsValid() bool { return pipelineStageFlagsDecl.IsValid(v) }
func (v PipelineStageFlags) String() string { return pipelineStageFlagsDecl.Format(v) }
func (PipelineStageFlags) EnumType() string { return pipelineStageFlagsDecl.TypeName() }
func (v *PipelineStageFlags) UnmarshalText(b []byte) error { return pipelineStageFlagsDecl.Unmarshal(v, b) }

// AccessFlags is VkAccessFlags.
type AccessFlags uint32

const (
	AccessIndirectCommandReadBit AccessFlags = 1 << iota
	AccessIndexReadBit
	AccessVertexAttributeReadBit
	AccessUniformReadBit
	AccessInputAttachmentReadBit
	AccessShaderReadBit
	AccessShaderWriteBit
	AccessColorAttachmentReadBit
	AccessColorAttachmentWriteBit
	AccessDepthStencilAttachmentReadBit
	AccessDepthStencilAttachmentWriteBit
	AccessTransferReadBit
	AccessTransferWriteBit
	AccessHostReadBit
	AccessHostWriteBit
	AccessMemoryReadBit
	AccessMemoryWriteBit
)

var accessFlagsDecl = enum.Bits[AccessFlags]("VkAccessFlags",
	"VK_ACCESS_INDIRECT_COMMAND_READ_BIT",
	"VK_ACCESS_INDEX_READ_BIT",
	"VK_ACCESS_VERTEX_ATTRIBUTE_READ_BIT",
	"VK_ACCESS_UNIFORM_READ_BIT",
	"VK_ACCESS_INPUT_ATTACHMENT_READ_BIT",
	"VK_ACCESS_SHADER_READ_BIT",
	"VK_ACCESS_SHADER_WRITE_BIT",
	"VK_ACCESS_COLOR_ATTACHMENT_READ_BIT",
	"VK_ACCESS_COLOR_ATTACHMENT_WRITE_BIT",
	"VK_ACCESS_DEPTH_STENCIL_ATTACHMENT_READ_BIT",
	"VK_ACCESS_DEPTH_STENCIL_ATTACHMENT_WRITE_BIT",
	"VK_ACCESS_TRANSFER_READ_BIT",
	"VK_ACCESS_TRANSFER_WRITE_BIT",
	"VK_ACCESS_HOST_READ_BIT",
	"VK_ACCESS_HOST_WRITE_BIT",
	"VK_ACCESS_MEMORY_READ_BIT",
	"VK_ACCESS_MEMORY_WRITE_BIT")

func (v AccessFlags) IsValid() bool { return accessFlagsDecl.IsValid(v) }
func (v AccessFlags) String() string { return accessFlagsDecl.Format(v) }
func (AccessFlags) EnumType() string { return accessFlagsDecl.TypeName() }
func (v *AccessFlags) UnmarshalText(b []byte) error { return accessFlagsDecl.Unmarshal(v, b) }

// DependencyFlags is VkDependencyFlags.
type DependencyFlags uint32

const (
	DependencyByRegionBit DependencyFlags = 1 << iota
)

const (
	DependencyViewLocalBitKHX   DependencyFlags = 0x2
	DependencyDeviceGroupBitKHX DependencyFlags = 0x4
)

var dependencyFlagsDecl = enum.Bits[DependencyFlags]("VkDependencyFlags",
	"VK_DEPENDENCY_BY_REGION_BIT").
	Extend(DependencyViewLocalBitKHX, "VK_DEPENDENCY_VIEW_LOCAL_BIT_KHX").
	Extend(DependencyDeviceGroupBitKHX, "VK_DEPENDENCY_DEVICE_GROUP_BIT_KHX")

func (v DependencyFlags) IsValid() bool { return dependencyFlagsDecl.IsValid(v) }
func (v DependencyFlags) String() string { return dependencyFlagsDecl.Format(v) }
func (DependencyFlags) EnumType() string { return dependencyFlagsDecl.TypeName() }
func (v *DependencyFlags) UnmarshalText(b []byte) error { return dependencyFlagsDecl.Unmarshal(v, b) }

// CommandPoolCreateFlags is VkCommandPoolCreateFlags.
type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit CommandPoolCreateFlags = 1 << iota
	CommandPoolCreateResetCommandBufferBit
)

var commandPoolCreateFlagsDecl = enum.Bits[CommandPoolCreateFlags]("VkCommandPoolCreateFlags",
	"VK_COMMAND_POOL_CREATE_TRANSIENT_BIT",
	"VK_COMMAND_POOL_CREATE_RESET_COMMAND_BUFFER_BIT")

func (v CommandPoolCreateFlags) IsValid() bool { return commandPoolCreateFlagsDecl.IsValid(v) }
func (v CommandPoolCreateFlags) String() string { return commandPoolCreateFlagsDecl.Format(v) }
func (CommandPoolCreateFlags) EnumType() string { return commandPoolCreateFlagsDecl.TypeName() }
func (v *CommandPoolCreateFlags) UnmarshalText(b []byte) error { return commandPoolCreateFlagsDecl.Unmarshal(v, b) }

// CommandPoolResetFlags is VkCommandPoolResetFlags.
type CommandPoolResetFlags uint32

const (
	CommandPoolResetReleaseResourcesBit CommandPoolResetFlags = 1 << iota
)

var commandPoolResetFlagsDecl = enum.Bits[CommandPoolResetFlags]("VkCommandPoolResetFlags",
	"VK_COMMAND_POOL_RESET_RELEASE_RESOURCES_BIT")

func (v CommandPoolResetFlags) IsValid() bool { return commandPoolResetFlagsDecl.IsValid(v) }
func (v CommandPoolResetFlags) String() string { return commandPoolResetFlagsDecl.Format(v) }
func (CommandPoolResetFlags) EnumType() string { return commandPoolResetFlagsDecl.TypeName() }
func (v *CommandPoolResetFlags) UnmarshalText(b []byte) error { return commandPoolResetFlagsDecl.Unmarshal(v, b) }

// CommandBufferUsageFlags is VkCommandBufferUsageFlags.
type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit CommandBufferUsageFlags = 1 << iota
	CommandBufferUsageRenderPassContinueBit
	CommandBufferUsageSimultaneousUseBit
)

var commandBufferUsageFlagsDecl = enum.Bits[CommandBufferUsageFlags]("VkCommandBufferUsageFlags",
	"VK_COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT",
	"VK_COMMAND_BUFFER_USAGE_RENDER_PASS_CONTINUE_BIT",
	"VK_COMMAND_BUFFER_USAGE_SIMULTANEOUS_USE_BIT")

func (v CommandBufferUsageFlags) IsValid() bool { return commandBufferUsageFlagsDecl.IsValid(v) }
func (v CommandBufferUsageFlags) String() string { return commandBufferUsageFlagsDecl.Format(v) }
func (CommandBufferUsageFlags) EnumType() string { return commandBufferUsageFlagsDecl.TypeName() }
func (v *CommandBufferUsageFlags) UnmarshalText(b []byte) error { return commandBufferUsageFlagsDecl.Unmarshal(v, b) }

// CommandBufferResetFlags is VkCommandBufferResetFlags.
type CommandBufferResetFlags uint32

const (
	CommandBufferResetReleaseResourcesBit CommandBufferResetFlags = 1 << iota
)

var commandBufferResetFlagsDecl = enum.Bits[CommandBufferResetFlags]("VkCommandBufferResetFlags",
	"VK_COMMAND_BUFFER_RESET_RELEASE_RESOURCES_BIT")

func (v CommandBufferResetFlags) IsValid() bool { return commandBufferResetFlagsDecl.IsValid(v) }
func (v CommandBufferResetFlags) String() string { return commandBufferResetFlagsDecl.Format(v) }
func (CommandBufferResetFlags) EnumType() string { return commandBufferResetFlagsDecl.TypeName() }
func (v *CommandBufferResetFlags) UnmarshalText(b []byte) error { return commandBufferResetFlagsDecl.Unmarshal(v, b) }

// QueryControlFlags is VkQueryControlFlags.
type QueryControlFlags uint32

const (
	QueryControlPreciseBit QueryControlFlags = 1 << iota
)

var queryControlFlagsDecl = enum.Bits[QueryControlFlags]("VkQueryControlFlags",
	"VK_QUERY_CONTROL_PRECISE_BIT")

func (v QueryControlFlags) IsValid() bool { return queryControlFlagsDecl.IsValid(v) }
func (v QueryControlFlags) String() string { return queryControlFlagsDecl.Format(v) }
func (QueryControlFlags) EnumType() string { return queryControlFlagsDecl.TypeName() }
func (v *QueryControlFlags) UnmarshalText(b []byte) error { return queryControlFlagsDecl.Unmarshal(v, b) }

// QueryResultFlags is VkQueryResultFlags.
type QueryResultFlags uint32

const (
	QueryResult64Bit QueryResultFlags = 1 << iota
	QueryResultWaitBit
	QueryResultWithAvailabilityBit
	QueryResultPartialBit
)

var queryResultFlagsDecl = enum.Bits[QueryResultFlags]("VkQueryResultFlags",
	"VK_QUERY_RESULT_64_BIT",
	"VK_QUERY_RESULT_WAIT_BIT",
	"VK_QUERY_RESULT_WITH_AVAILABILITY_BIT",
	"VK_QUERY_RESULT_PARTIAL_BIT")

func (v QueryResultFlags) IsValid() bool { return queryResultFlagsDecl.IsValid(v) }
func (v QueryResultFlags) String() string { return queryResultFlagsDecl.Format(v) }
func (QueryResultFlags) EnumType() string { return queryResultFlagsDecl.TypeName() }
func (v *QueryResultFlags) UnmarshalText(b []byte) error { return queryResultFlagsDecl.Unmarshal(v, b) }

// QueryPipelineStatisticFlags is VkQueryPipelineStatisticFlags.
type QueryPipelineStatisticFlags uint32

const (
	QueryPipelineStatisticInputAssemblyVerticesBit QueryPipelineStatisticFlags = 1 << iota
	QueryPipelineStatisticInputAssemblyPrimitivesBit
	QueryPipelineStatisticVertexShaderInvocationsBit
	QueryPipelineStatisticGeometryShaderInvocationsBit
	QueryPipelineStatisticGeometryShaderPrimitivesBit
	QueryPipelineStatisticClippingInvocationsBit
	QueryPipelineStatisticClippingPrimitivesBit
	QueryPipelineStatisticFragmentShaderInvocationsBit
	QueryPipelineStatisticTessellationControlShaderPatchesBit
	QueryPipelineStatisticTessellationEvaluationShaderInvocationsBit
	QueryPipelineStatisticComputeShaderInvocationsBit
)

var queryPipelineStatisticFlagsDecl = enum.Bits[QueryPipelineStatisticFlags]("VkQueryPipelineStatisticFlags",
	"VK_QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_VERTICES_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_INPUT_ASSEMBLY_PRIMITIVES_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_VERTEX_SHADER_INVOCATIONS_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_INVOCATIONS_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_GEOMETRY_SHADER_PRIMITIVES_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_CLIPPING_INVOCATIONS_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_CLIPPING_PRIMITIVES_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_FRAGMENT_SHADER_INVOCATIONS_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_TESSELLATION_CONTROL_SHADER_PATCHES_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_TESSELLATION_EVALUATION_SHADER_INVOCATIONS_BIT",
	"VK_QUERY_PIPELINE_STATISTIC_COMPUTE_SHADER_INVOCATIONS_BIT")

func (v QueryPipelineStatisticFlags) IsValid() bool { return queryPipelineStatisticFlagsDecl.IsValid(v) }
func (v QueryPipelineStatisticFlags) String() string { return queryPipelineStatisticFlagsDecl.Format(v) }
func (QueryPipelineStatisticFlags) EnumType() string { return queryPipelineStatisticFlagsDecl.TypeName() }
func (v *QueryPipelineStatisticFlags) UnmarshalText(b []byte) error { return queryPipelineStatisticFlagsDecl.Unmarshal(v, b) }

// DescriptorPoolCreateFlags is VkDescriptorPoolCreateFlags.
type DescriptorPoolCreateFlags uint32

const (
	DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 1 << iota
)

var descriptorPoolCreateFlagsDecl = enum.Bits[DescriptorPoolCreateFlags]("VkDescriptorPoolCreateFlags",
	"VK_DESCRIPTOR_POOL_CREATE_FREE_DESCRIPTOR_SET_BIT")

func (v DescriptorPoolCreateFlags) IsValid() bool { return descriptorPoolCreateFlagsDecl.IsValid(v) }
func (v DescriptorPoolCreateFlags) String() string { return descriptorPoolCreateFlagsDecl.Format(v) }
func (DescriptorPoolCreateFlags) EnumType() string { return descriptorPoolCreateFlagsDecl.TypeName() }
func (v *DescriptorPoolCreateFlags) UnmarshalText(b []byte) error { return descriptorPoolCreateFlagsDecl.Unmarshal(v, b) }

// DescriptorSetLayoutCreateFlags is VkDescriptorSetLayoutCreateFlags.
type DescriptorSetLayoutCreateFlags uint32

const (
	DescriptorSetLayoutCreatePushDescriptorBitKHR DescriptorSetLayoutCreateFlags = 1 << iota
)

var descriptorSetLayoutCreateFlagsDecl = enum.Bits[DescriptorSetLayoutCreateFlags]("VkDescriptorSetLayoutCreateFlags",
	"VK_DESCRIPTOR_SET_LAYOUT_CREATE_PUSH_DESCRIPTOR_BIT_KHR")

func (v DescriptorSetLayoutCreateFlags) IsValid() bool { return descriptorSetLayoutCreateFlagsDecl.IsValid(v) }
func (v DescriptorSetLayoutCreateFlags) String() string { return descriptorSetLayoutCreateFlagsDecl.Format(v) }
func (DescriptorSetLayoutCreateFlags) EnumType() string { return descriptorSetLayoutCreateFlagsDecl.TypeName() }
func (v *DescriptorSetLayoutCreateFlags) UnmarshalText(b []byte) error { return descriptorSetLayoutCreateFlagsDecl.Unmarshal(v, b) }

// FenceCreateFlags is VkFenceCreateFlags.
type FenceCreateFlags uint32

const (
	FenceCreateSignaledBit FenceCreateFlags = 1 << iota
)

var fenceCreateFlagsDecl = enum.Bits[FenceCreateFlags]("VkFenceCreateFlags",
	"VK_FENCE_CREATE_SIGNALED_BIT")

func (v FenceCreateFlags) IsValid() bool { return fenceCreateFlagsDecl.IsValid(v) }
func (v FenceCreateFlags) String() string { return fenceCreateFlagsDecl.Format(v) }
func (FenceCreateFlags) EnumType() string { return fenceCreateFlagsDecl.TypeName() }
func (v *FenceCreateFlags) UnmarshalText(b []byte) error { return fenceCreateFlagsDecl.Unmarshal(v, b) }

// AttachmentDescriptionFlags is VkAttachmentDescriptionFlags.
type AttachmentDescriptionFlags uint32

const (
	AttachmentDescriptionMayAliasBit AttachmentDescriptionFlags = 1 << iota
)

var attachmentDescriptionFlagsDecl = enum.Bits[AttachmentDescriptionFlags]("VkAttachmentDescriptionFlags",
	"VK_ATTACHMENT_DESCRIPTION_MAY_ALIAS_BIT")

func (v AttachmentDescriptionFlags) IsValid() bool { return attachmentDescriptionFlagsDecl.IsValid(v) }
func (v AttachmentDescriptionFlags) String() string { return attachmentDescriptionFlagsDecl.Format(v) }
func (AttachmentDescriptionFlags) EnumType() string { return attachmentDescriptionFlagsDecl.TypeName() }
func (v *AttachmentDescriptionFlags) UnmarshalText(b []byte) error { return attachmentDescriptionFlagsDecl.Unmarshal(v, b) }

// SubpassDescriptionFlags is VkSubpassDescriptionFlags.
type SubpassDescriptionFlags uint32

const (
	SubpassDescriptionPerViewAttributesBitNVX SubpassDescriptionFlags = 1 << iota
	SubpassDescriptionPerViewPositionXOnlyBitNVX
)

var subpassDescriptionFlagsDecl = enum.Bits[SubpassDescriptionFlags]("VkSubpassDescriptionFlags",
	"VK_SUBPASS_DESCRIPTION_PER_VIEW_ATTRIBUTES_BIT_NVX",
	"VK_SUBPASS_DESCRIPTION_PER_VIEW_POSITION_X_ONLY_BIT_NVX")

func (v SubpassDescriptionFlags) IsValid() bool { return subpassDescriptionFlagsDecl.IsValid(v) }
func (v SubpassDescriptionFlags) String() string { return subpassDescriptionFlagsDecl.Format(v) }
func (SubpassDescriptionFlags) EnumType() string { return subpassDescriptionFlagsDecl.TypeName() }
func (v *SubpassDescriptionFlags) UnmarshalText(b []byte) error { return subpassDescriptionFlagsDecl.Unmarshal(v, b) }

// StencilFaceFlags is VkStencilFaceFlags.
type StencilFaceFlags uint32

const (
	StencilFaceFrontBit StencilFaceFlags = 1 << iota
	StencilFaceBackBit
)

var stencilFaceFlagsDecl = enum.Bits[StencilFaceFlags]("VkStencilFaceFlags",
	"VK_STENCIL_FACE_FRONT_BIT",
	"VK_STENCIL_FACE_BACK_BIT")

func (v StencilFaceFlags) IsValid() bool { return stencilFaceFlagsDecl.IsValid(v) }
func (v StencilFaceFlags) String() string { return stencilFaceFlagsDecl.Format(v) }
func (StencilFaceFlags) EnumType() string { return stencilFaceFlagsDecl.TypeName() }
func (v *StencilFaceFlags) UnmarshalText(b []byte) error { return stencilFaceFlagsDecl.Unmarshal(v, b) }

// SparseImageFormatFlags is VkSparseImageFormatFlags.
type SparseImageFormatFlags uint32

const (
	SparseImageFormatSingleMiptailBit SparseImageFormatFlags = 1 << iota
	SparseImageFormatAlignedMipSizeBit
	SparseImageFormatNonstandardBlockSizeBit
)

var sparseImageFormatFlagsDecl = enum.Bits[SparseImageFormatFlags]("VkSparseImageFormatFlags",
	"VK_SPARSE_IMAGE_FORMAT_SINGLE_MIPTAIL_BIT",
	"VK_SPARSE_IMAGE_FORMAT_ALIGNED_MIP_SIZE_BIT",
	"VK_SPARSE_IMAGE_FORMAT_NONSTANDARD_BLOCK_SIZE_BIT")

func (v SparseImageFormatFlags) IsValid() bool { return sparseImageFormatFlagsDecl.IsValid(v) }
func (v SparseImageFormatFlags) String() string { return sparseImageFormatFlagsDecl.Format(v) }
func (SparseImageFormatFlags) EnumType() string { return sparseImageFormatFlagsDecl.TypeName() }
func (v *SparseImageFormatFlags) UnmarshalText(b []byte) error { return sparseImageFormatFlagsDecl.Unmarshal(v, b) }

// SurfaceTransformFlagsKHR is VkSurfaceTransformFlagsKHR.
type SurfaceTransformFlagsKHR uint32

const (
	SurfaceTransformIdentityBitKHR SurfaceTransformFlagsKHR = 1 << iota
	SurfaceTransformRotate90BitKHR
	SurfaceTransformRotate180BitKHR
	SurfaceTransformRotate270BitKHR
	SurfaceTransformHorizontalMirrorBitKHR
	SurfaceTransformHorizontalMirrorRotate90BitKHR
	SurfaceTransformHorizontalMirrorRotate180BitKHR
	SurfaceTransformHorizontalMirrorRotate270BitKHR
	SurfaceTransformInheritBitKHR
)

var surfaceTransformFlagsKHRDecl = enum.Bits[SurfaceTransformFlagsKHR]("VkSurfaceTransformFlagsKHR",
	"VK_SURFACE_TRANSFORM_IDENTITY_BIT_KHR",
	"VK_SURFACE_TRANSFORM_ROTATE_90_BIT_KHR",
	"VK_SURFACE_TRANSFORM_ROTATE_180_BIT_KHR",
	"VK_SURFACE_TRANSFORM_ROTATE_270_BIT_KHR",
	"VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_BIT_KHR",
	"VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_90_BIT_KHR",
	"VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_180_BIT_KHR",
	"VK_SURFACE_TRANSFORM_HORIZONTAL_MIRROR_ROTATE_270_BIT_KHR",
	"VK_SURFACE_TRANSFORM_INHERIT_BIT_KHR")

func (v SurfaceTransformFlagsKHR) IsValid() bool { return surfaceTransformFlagsKHRDecl.IsValid(v) }
func (v SurfaceTransformFlagsKHR) String() string { return surfaceTransformFlagsKHRDecl.Format(v) }
func (SurfaceTransformFlagsKHR) EnumType() string { return surfaceTransformFlagsKHRDecl.TypeName() }
func (v *SurfaceTransformFlagsKHR) UnmarshalText(b []byte) error { return surfaceTransformFlagsKHRDecl.Unmarshal(v, b) }

// CompositeAlphaFlagsKHR is VkCompositeAlphaFlagsKHR.
type CompositeAlphaFlagsKHR uint32

const (
	CompositeAlphaOpaqueBitKHR CompositeAlphaFlagsKHR = 1 << iota
	CompositeAlphaPreMultipliedBitKHR
	CompositeAlphaPostMultipliedBitKHR
	CompositeAlphaInheritBitKHR
)

var compositeAlphaFlagsKHRDecl = enum.Bits[CompositeAlphaFlagsKHR]("VkCompositeAlphaFlagsKHR",
	"VK_COMPOSITE_ALPHA_OPAQUE_BIT_KHR",
	"VK_COMPOSITE_ALPHA_PRE_MULTIPLIED_BIT_KHR",
	"VK_COMPOSITE_ALPHA_POST_MULTIPLIED_BIT_KHR",
	"VK_COMPOSITE_ALPHA_INHERIT_BIT_KHR")

func (v CompositeAlphaFlagsKHR) IsValid() bool { return compositeAlphaFlagsKHRDecl.IsValid(v) }
func (v CompositeAlphaFlagsKHR) String() string { return compositeAlphaFlagsKHRDecl.Format(v) }
func (CompositeAlphaFlagsKHR) EnumType() string { return compositeAlphaFlagsKHRDecl.TypeName() }
func (v *CompositeAlphaFlagsKHR) UnmarshalText(b []byte) error { return compositeAlphaFlagsKHRDecl.Unmarshal(v, b) }

// DebugReportFlagsEXT is VkDebugReportFlagsEXT.
type DebugReportFlagsEXT uint32

const (
	DebugReportInformationBitEXT DebugReportFlagsEXT = 1 << iota
	DebugReportWarningBitEXT
	DebugReportPerformanceWarningBitEXT
	DebugReportErrorBitEXT
	DebugReportDebugBitEXT
)

var debugReportFlagsEXTDecl = enum.Bits[DebugReportFlagsEXT]("VkDebugReportFlagsEXT",
	"VK_DEBUG_REPORT_INFORMATION_BIT_EXT",
	"VK_DEBUG_REPORT_WARNING_BIT_EXT",
	"VK_DEBUG_REPORT_PERFORMANCE_WARNING_BIT_EXT",
	"VK_DEBUG_REPORT_ERROR_BIT_EXT",
	"VK_DEBUG_REPORT_DEBUG_BIT_EXT")

func (v DebugReportFlagsEXT) IsValid() bool { return debugReportFlagsEXTDecl.IsValid(v) }
func (v DebugReportFlagsEXT) String() string { return debugReportFlagsEXTDecl.Format(v) }
func (DebugReportFlagsEXT) EnumType() string { return debugReportFlagsEXTDecl.TypeName() }
func (v *DebugReportFlagsEXT) UnmarshalText(b []byte) error { return debugReportFlagsEXTDecl.Unmarshal(v, b) }
