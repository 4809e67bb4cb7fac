package vk

// SpecializationMapEntry is VkSpecializationMapEntry.
type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uint64
}

// SpecializationInfo is VkSpecializationInfo.
type SpecializationInfo struct {
	MapEntryCount uint32
	MapEntries    []SpecializationMapEntry
	DataSize      uint64
	Data          []byte
}

// PipelineShaderStageCreateInfo is VkPipelineShaderStageCreateInfo.
type PipelineShaderStageCreateInfo struct {
	SType              StructureType
	Next               Extension
	Flags              Flags
	Stage              ShaderStageFlags
	Module             ShaderModule
	Name               string
	SpecializationInfo *SpecializationInfo
}

// VertexInputBindingDescription is VkVertexInputBindingDescription.
type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

// VertexInputAttributeDescription is VkVertexInputAttributeDescription.
type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

// PipelineVertexInputStateCreateInfo is VkPipelineVertexInputStateCreateInfo.
type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	Next                            Extension
	Flags                           Flags
	VertexBindingDescriptionCount   uint32
	VertexBindingDescriptions       []VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	VertexAttributeDescriptions     []VertexInputAttributeDescription
}

// PipelineInputAssemblyStateCreateInfo is VkPipelineInputAssemblyStateCreateInfo.
type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	Next                   Extension
	Flags                  Flags
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

// PipelineTessellationStateCreateInfo is VkPipelineTessellationStateCreateInfo.
type PipelineTessellationStateCreateInfo struct {
	SType              StructureType
	Next               Extension
	Flags              Flags
	PatchControlPoints uint32
}

// PipelineViewportStateCreateInfo is VkPipelineViewportStateCreateInfo.
type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	Next          Extension
	Flags         Flags
	ViewportCount uint32
	Viewports     []Viewport
	ScissorCount  uint32
	Scissors      []Rect2D
}

// PipelineRasterizationStateCreateInfo is VkPipelineRasterizationStateCreateInfo.
type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	Next                    Extension
	Flags                   Flags
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

// PipelineMultisampleStateCreateInfo is VkPipelineMultisampleStateCreateInfo.
// SampleMask, when non-nil, holds ceil(samples/32) words.
type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	Next                  Extension
	Flags                 Flags
	RasterizationSamples  SampleCountFlags
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	SampleMask            []uint32
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

// StencilOpState is VkStencilOpState.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// PipelineDepthStencilStateCreateInfo is VkPipelineDepthStencilStateCreateInfo.
type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	Next                  Extension
	Flags                 Flags
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

// PipelineColorBlendAttachmentState is VkPipelineColorBlendAttachmentState.
type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

// PipelineColorBlendStateCreateInfo is VkPipelineColorBlendStateCreateInfo.
type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	Next            Extension
	Flags           Flags
	LogicOpEnable   Bool32
	LogicOp         LogicOp
	AttachmentCount uint32
	Attachments     []PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

// PipelineDynamicStateCreateInfo is VkPipelineDynamicStateCreateInfo.
type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	Next              Extension
	Flags             Flags
	DynamicStateCount uint32
	DynamicStates     []DynamicState
}

// GraphicsPipelineCreateInfo is VkGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	SType              StructureType
	Next               Extension
	Flags              PipelineCreateFlags
	StageCount         uint32
	Stages             []PipelineShaderStageCreateInfo
	VertexInputState   *PipelineVertexInputStateCreateInfo
	InputAssemblyState *PipelineInputAssemblyStateCreateInfo
	TessellationState  *PipelineTessellationStateCreateInfo
	ViewportState      *PipelineViewportStateCreateInfo
	RasterizationState *PipelineRasterizationStateCreateInfo
	MultisampleState   *PipelineMultisampleStateCreateInfo
	DepthStencilState  *PipelineDepthStencilStateCreateInfo
	ColorBlendState    *PipelineColorBlendStateCreateInfo
	DynamicState       *PipelineDynamicStateCreateInfo
	Layout             PipelineLayout
	RenderPass         RenderPass
	Subpass            uint32
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

// ComputePipelineCreateInfo is VkComputePipelineCreateInfo.
type ComputePipelineCreateInfo struct {
	SType              StructureType
	Next               Extension
	Flags              PipelineCreateFlags
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

// PushConstantRange is VkPushConstantRange.
type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

// PipelineLayoutCreateInfo is VkPipelineLayoutCreateInfo.
type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	Next                   Extension
	Flags                  Flags
	SetLayoutCount         uint32
	SetLayouts             []DescriptorSetLayout
	PushConstantRangeCount uint32
	PushConstantRanges     []PushConstantRange
}

const (
	// ShaderStageAllGraphics is VK_SHADER_STAGE_ALL_GRAPHICS.
	ShaderStageAllGraphics ShaderStageFlags = 0x1f
	// ShaderStageAll is VK_SHADER_STAGE_ALL.
	ShaderStageAll ShaderStageFlags = 0x7fffffff
)
