package vk

import "github.com/wippyai/vk-validation/enum"

// ImageType is VkImageType.
type ImageType int32

const (
	ImageType1d ImageType = iota
	ImageType2d
	ImageType3d
)

var imageTypeDecl = enum.Range[ImageType]("VkImageType", 0,
	"VK_IMAGE_TYPE_1D",
	"VK_IMAGE_TYPE_2D",
	"VK_IMAGE_TYPE_3D")

func (v ImageType) IsValid() bool { return imageTypeDecl.IsValid(v) }
func (v ImageType) String() string { return imageTypeDecl.Format(v) }
func (ImageType) EnumType() string { return imageTypeDecl.TypeName() }
func (v *ImageType) UnmarshalText(b []byte) error { return imageTypeDecl.Unmarshal(v, b) }

// ImageTiling is VkImageTiling.
type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = iota
	ImageTilingLinear
)

var imageTilingDecl = enum.Range[ImageTiling]("VkImageTiling", 0,
	"VK_IMAGE_TILING_OPTIMAL",
	"VK_IMAGE_TILING_LINEAR")

func (v ImageTiling) IsValid() bool { return imageTilingDecl.IsValid(v) }
func (v ImageTiling) String() string { return imageTilingDecl.Format(v) }
func (ImageTiling) EnumType() string { return imageTilingDecl.TypeName() }
func (v *ImageTiling) UnmarshalText(b []byte) error { return imageTilingDecl.Unmarshal(v, b) }

// ImageViewType is VkImageViewType.
type ImageViewType int32

const (
	ImageViewType1d ImageViewType = iota
	ImageViewType2d
	ImageViewType3d
	ImageViewTypeCube
	ImageViewType1dArray
	ImageViewType2dArray
	ImageViewTypeCubeArray
)

var imageViewTypeDecl = enum.Range[ImageViewType]("VkImageViewType", 0,
	"VK_IMAGE_VIEW_TYPE_1D",
	"VK_IMAGE_VIEW_TYPE_2D",
	"VK_IMAGE_VIEW_TYPE_3D",
	"VK_IMAGE_VIEW_TYPE_CUBE",
	"VK_IMAGE_VIEW_TYPE_1D_ARRAY",
	"VK_IMAGE_VIEW_TYPE_2D_ARRAY",
	"VK_IMAGE_VIEW_TYPE_CUBE_ARRAY")

func (v ImageViewType) IsValid() bool { return imageViewTypeDecl.IsValid(v) }
func (v ImageViewType) String() string { return imageViewTypeDecl.Format(v) }
func (ImageViewType) EnumType() string { return imageViewTypeDecl.TypeName() }
func (v *ImageViewType) UnmarshalText(b []byte) error { return imageViewTypeDecl.Unmarshal(v, b) }

// ImageLayout is VkImageLayout.
type ImageLayout int32

const (
	ImageLayoutUndefined ImageLayout = iota
	ImageLayoutGeneral
	ImageLayoutColorAttachmentOptimal
	ImageLayoutDepthStencilAttachmentOptimal
	ImageLayoutDepthStencilReadOnlyOptimal
	ImageLayoutShaderReadOnlyOptimal
	ImageLayoutTransferSrcOptimal
	ImageLayoutTransferDstOptimal
	ImageLayoutPreinitialized
	ImageLayoutPresentSrcKHR    ImageLayout = 1000001002
	ImageLayoutSharedPresentKHR ImageLayout = 1000111000
)

var imageLayoutDecl = enum.Range[ImageLayout]("VkImageLayout", 0,
	"VK_IMAGE_LAYOUT_UNDEFINED",
	"VK_IMAGE_LAYOUT_GENERAL",
	"VK_IMAGE_LAYOUT_COLOR_ATTACHMENT_OPTIMAL",
	"VK_IMAGE_LAYOUT_DEPTH_STENCIL_ATTACHMENT_OPTIMAL",
	"VK_IMAGE_LAYOUT_DEPTH_STENCIL_READ_ONLY_OPTIMAL",
	"VK_IMAGE_LAYOUT_SHADER_READ_ONLY_OPTIMAL",
	"VK_IMAGE_LAYOUT_TRANSFER_SRC_OPTIMAL",
	"VK_IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL",
	"VK_IMAGE_LAYOUT_PREINITIALIZED").
	Extend(ImageLayoutPresentSrcKHR, "VK_IMAGE_LAYOUT_PRESENT_SRC_KHR").
	Extend(ImageLayoutSharedPresentKHR, "VK_IMAGE_LAYOUT_SHARED_PRESENT_KHR")

func (v ImageLayout) IsValid() bool { return imageLayoutDecl.IsValid(v) }
func (v ImageLayout) String() string { return imageLayoutDecl.Format(v) }
func (ImageLayout) EnumType() string { return imageLayoutDecl.TypeName() }
func (v *ImageLayout) UnmarshalText(b []byte) error { return imageLayoutDecl.Unmarshal(v, b) }

// SharingMode is VkSharingMode.
type SharingMode int32

const (
	SharingModeExclusive SharingMode = iota
	SharingModeConcurrent
)

var sharingModeDecl = enum.Range[SharingMode]("VkSharingMode", 0,
	"VK_SHARING_MODE_EXCLUSIVE",
	"VK_SHARING_MODE_CONCURRENT")

func (v SharingMode) IsValid() bool { return sharingModeDecl.IsValid(v) }
func (v SharingMode) String() string { return sharingModeDecl.Format(v) }
func (SharingMode) EnumType() string { return sharingModeDecl.TypeName() }
func (v *SharingMode) UnmarshalText(b []byte) error { return sharingModeDecl.Unmarshal(v, b) }

// ComponentSwizzle is VkComponentSwizzle.
type ComponentSwizzle int32

const (
	ComponentSwizzleIdentity ComponentSwizzle = iota
	ComponentSwizzleZero
	ComponentSwizzleOne
	ComponentSwizzleR
	ComponentSwizzleG
	ComponentSwizzleB
	ComponentSwizzleA
)

var componentSwizzleDecl = enum.Range[ComponentSwizzle]("VkComponentSwizzle", 0,
	"VK_COMPONENT_SWIZZLE_IDENTITY",
	"VK_COMPONENT_SWIZZLE_ZERO",
	"VK_COMPONENT_SWIZZLE_ONE",
	"VK_COMPONENT_SWIZZLE_R",
	"VK_COMPONENT_SWIZZLE_G",
	"VK_COMPONENT_SWIZZLE_B",
	"VK_COMPONENT_SWIZZLE_A")

func (v ComponentSwizzle) IsValid() bool { return componentSwizzleDecl.IsValid(v) }
func (v ComponentSwizzle) String() string { return componentSwizzleDecl.Format(v) }
func (ComponentSwizzle) EnumType() string { return componentSwizzleDecl.TypeName() }
func (v *ComponentSwizzle) UnmarshalText(b []byte) error { return componentSwizzleDecl.Unmarshal(v, b) }

// Filter is VkFilter.
type Filter int32

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterCubicIMG Filter = 1000015000
)

var filterDecl = enum.Range[Filter]("VkFilter", 0,
	"VK_FILTER_NEAREST",
	"VK_FILTER_LINEAR").
	Extend(FilterCubicIMG, "VK_FILTER_CUBIC_IMG")

func (v Filter) IsValid() bool { return filterDecl.IsValid(v) }
func (v Filter) String() string { return filterDecl.Format(v) }
func (Filter) EnumType() string { return filterDecl.TypeName() }
func (v *Filter) UnmarshalText(b []byte) error { return filterDecl.Unmarshal(v, b) }

// SamplerMipmapMode is VkSamplerMipmapMode.
type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = iota
	SamplerMipmapModeLinear
)

var samplerMipmapModeDecl = enum.Range[SamplerMipmapMode]("VkSamplerMipmapMode", 0,
	"VK_SAMPLER_MIPMAP_MODE_NEAREST",
	"VK_SAMPLER_MIPMAP_MODE_LINEAR")

func (v SamplerMipmapMode) IsValid() bool { return samplerMipmapModeDecl.IsValid(v) }
func (v SamplerMipmapMode) String() string { return samplerMipmapModeDecl.Format(v) }
func (SamplerMipmapMode) EnumType() string { return samplerMipmapModeDecl.TypeName() }
func (v *SamplerMipmapMode) UnmarshalText(b []byte) error { return samplerMipmapModeDecl.Unmarshal(v, b) }

// SamplerAddressMode is VkSamplerAddressMode.
type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat SamplerAddressMode = iota
	SamplerAddressModeMirroredRepeat
	SamplerAddressModeClampToEdge
	SamplerAddressModeClampToBorder
	SamplerAddressModeMirrorClampToEdge SamplerAddressMode = 4
)

var samplerAddressModeDecl = enum.Range[SamplerAddressMode]("VkSamplerAddressMode", 0,
	"VK_SAMPLER_ADDRESS_MODE_REPEAT",
	"VK_SAMPLER_ADDRESS_MODE_MIRRORED_REPEAT",
	"VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_EDGE",
	"VK_SAMPLER_ADDRESS_MODE_CLAMP_TO_BORDER").
	Extend(SamplerAddressModeMirrorClampToEdge, "VK_SAMPLER_ADDRESS_MODE_MIRROR_CLAMP_TO_EDGE")

func (v SamplerAddressMode) IsValid() bool { return samplerAddressModeDecl.IsValid(v) }
func (v SamplerAddressMode) String() string { return samplerAddressModeDecl.Format(v) }
func (SamplerAddressMode) EnumType() string { return samplerAddressModeDecl.TypeName() }
func (v *SamplerAddressMode) UnmarshalText(b []byte) error { return samplerAddressModeDecl.Unmarshal(v, b) }

// BorderColor is VkBorderColor.
type BorderColor int32

const (
	BorderColorFloatTransparentBlack BorderColor = iota
	BorderColorIntTransparentBlack
	BorderColorFloatOpaqueBlack
	BorderColorIntOpaqueBlack
	BorderColorFloatOpaqueWhite
	BorderColorIntOpaqueWhite
)

var borderColorDecl = enum.Range[BorderColor]("VkBorderColor", 0,
	"VK_BORDER_COLOR_FLOAT_TRANSPARENT_BLACK",
	"VK_BORDER_COLOR_INT_TRANSPARENT_BLACK",
	"VK_BORDER_COLOR_FLOAT_OPAQUE_BLACK",
	"VK_BORDER_COLOR_INT_OPAQUE_BLACK",
	"VK_BORDER_COLOR_FLOAT_OPAQUE_WHITE",
	"VK_BORDER_COLOR_INT_OPAQUE_WHITE")

func (v BorderColor) IsValid() bool { return borderColorDecl.IsValid(v) }
func (v BorderColor) String() string { return borderColorDecl.Format(v) }
func (BorderColor) EnumType() string { return borderColorDecl.TypeName() }
func (v *BorderColor) UnmarshalText(b []byte) error { return borderColorDecl.Unmarshal(v, b) }

// CompareOp is VkCompareOp.
type CompareOp int32

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

var compareOpDecl = enum.Range[CompareOp]("VkCompareOp", 0,
	"VK_COMPARE_OP_NEVER",
	"VK_COMPARE_OP_LESS",
	"VK_COMPARE_OP_EQUAL",
	"VK_COMPARE_OP_LESS_OR_EQUAL",
	"VK_COMPARE_OP_GREATER",
	"VK_COMPARE_OP_NOT_EQUAL",
	"VK_COMPARE_OP_GREATER_OR_EQUAL",
	"VK_COMPARE_OP_ALWAYS")

func (v CompareOp) IsValid() bool { return compareOpDecl.IsValid(v) }
func (v CompareOp) String() string { return compareOpDecl.Format(v) }
func (CompareOp) EnumType() string { return compareOpDecl.TypeName() }
func (v *CompareOp) UnmarshalText(b []byte) error { return compareOpDecl.Unmarshal(v, b) }

// PrimitiveTopology is VkPrimitiveTopology.
type PrimitiveTopology int32

const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyTriangleFan
	PrimitiveTopologyLineListWithAdjacency
	PrimitiveTopologyLineStripWithAdjacency
	PrimitiveTopologyTriangleListWithAdjacency
	PrimitiveTopologyTriangleStripWithAdjacency
	PrimitiveTopologyPatchList
)

var primitiveTopologyDecl = enum.Range[PrimitiveTopology]("VkPrimitiveTopology", 0,
	"VK_PRIMITIVE_TOPOLOGY_POINT_LIST",
	"VK_PRIMITIVE_TOPOLOGY_LINE_LIST",
	"VK_PRIMITIVE_TOPOLOGY_LINE_STRIP",
	"VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST",
	"VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP",
	"VK_PRIMITIVE_TOPOLOGY_TRIANGLE_FAN",
	"VK_PRIMITIVE_TOPOLOGY_LINE_LIST_WITH_ADJACENCY",
	"VK_PRIMITIVE_TOPOLOGY_LINE_STRIP_WITH_ADJACENCY",
	"VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST_WITH_ADJACENCY",
	"VK_PRIMITIVE_TOPOLOGY_TRIANGLE_STRIP_WITH_ADJACENCY",
	"VK_PRIMITIVE_TOPOLOGY_PATCH_LIST")

func (v PrimitiveTopology) IsValid() bool { return primitiveTopologyDecl.IsValid(v) }
func (v PrimitiveTopology) String() string { return primitiveTopologyDecl.Format(v) }
func (PrimitiveTopology) EnumType() string { return primitiveTopologyDecl.TypeName() }
func (v *PrimitiveTopology) UnmarshalText(b []byte) error { return primitiveTopologyDecl.Unmarshal(v, b) }

// PolygonMode is VkPolygonMode.
type PolygonMode int32

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
	PolygonModeFillRectangleNV PolygonMode = 1000153000
)

var polygonModeDecl = enum.Range[PolygonMode]("VkPolygonMode", 0,
	"VK_POLYGON_MODE_FILL",
	"VK_POLYGON_MODE_LINE",
	"VK_POLYGON_MODE_POINT").
	Extend(PolygonModeFillRectangleNV, "VK_POLYGON_MODE_FILL_RECTANGLE_NV")

func (v PolygonMode) IsValid() bool { return polygonModeDecl.IsValid(v) }
func (v PolygonMode) String() string { return polygonModeDecl.Format(v) }
func (PolygonMode) EnumType() string { return polygonModeDecl.TypeName() }
func (v *PolygonMode) UnmarshalText(b []byte) error { return polygonModeDecl.Unmarshal(v, b) }

// FrontFace is VkFrontFace.
type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

var frontFaceDecl = enum.Range[FrontFace]("VkFrontFace", 0,
	"VK_FRONT_FACE_COUNTER_CLOCKWISE",
	"VK_FRONT_FACE_CLOCKWISE")

func (v FrontFace) IsValid() bool { return frontFaceDecl.IsValid(v) }
func (v FrontFace) String() string { return frontFaceDecl.Format(v) }
func (FrontFace) EnumType() string { return frontFaceDecl.TypeName() }
func (v *FrontFace) UnmarshalText(b []byte) error { return frontFaceDecl.Unmarshal(v, b) }

// BlendFactor is VkBlendFactor.
type BlendFactor int32

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorConstantAlpha
	BlendFactorOneMinusConstantAlpha
	BlendFactorSrcAlphaSaturate
	BlendFactorSrc1Color
	BlendFactorOneMinusSrc1Color
	BlendFactorSrc1Alpha
	BlendFactorOneMinusSrc1Alpha
)

var blendFactorDecl = enum.Range[BlendFactor]("VkBlendFactor", 0,
	"VK_BLEND_FACTOR_ZERO",
	"VK_BLEND_FACTOR_ONE",
	"VK_BLEND_FACTOR_SRC_COLOR",
	"VK_BLEND_FACTOR_ONE_MINUS_SRC_COLOR",
	"VK_BLEND_FACTOR_DST_COLOR",
	"VK_BLEND_FACTOR_ONE_MINUS_DST_COLOR",
	"VK_BLEND_FACTOR_SRC_ALPHA",
	"VK_BLEND_FACTOR_ONE_MINUS_SRC_ALPHA",
	"VK_BLEND_FACTOR_DST_ALPHA",
	"VK_BLEND_FACTOR_ONE_MINUS_DST_ALPHA",
	"VK_BLEND_FACTOR_CONSTANT_COLOR",
	"VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_COLOR",
	"VK_BLEND_FACTOR_CONSTANT_ALPHA",
	"VK_BLEND_FACTOR_ONE_MINUS_CONSTANT_ALPHA",
	"VK_BLEND_FACTOR_SRC_ALPHA_SATURATE",
	"VK_BLEND_FACTOR_SRC1_COLOR",
	"VK_BLEND_FACTOR_ONE_MINUS_SRC1_COLOR",
	"VK_BLEND_FACTOR_SRC1_ALPHA",
	"VK_BLEND_FACTOR_ONE_MINUS_SRC1_ALPHA")

func (v BlendFactor) IsValid() bool { return blendFactorDecl.IsValid(v) }
func (v BlendFactor) String() string { return blendFactorDecl.Format(v) }
func (BlendFactor) EnumType() string { return blendFactorDecl.TypeName() }
func (v *BlendFactor) UnmarshalText(b []byte) error { return blendFactorDecl.Unmarshal(v, b) }

// BlendOp is VkBlendOp.
type BlendOp int32

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

var blendOpDecl = enum.Range[BlendOp]("VkBlendOp", 0,
	"VK_BLEND_OP_ADD",
	"VK_BLEND_OP_SUBTRACT",
	"VK_BLEND_OP_REVERSE_SUBTRACT",
	"VK_BLEND_OP_MIN",
	"VK_BLEND_OP_MAX")

func (v BlendOp) IsValid() bool { return blendOpDecl.IsValid(v) }
func (v BlendOp) String() string { return blendOpDecl.Format(v) }
func (BlendOp) EnumType() string { return blendOpDecl.TypeName() }
func (v *BlendOp) UnmarshalText(b []byte) error { return blendOpDecl.Unmarshal(v, b) }

// StencilOp is VkStencilOp.
type StencilOp int32

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementAndClamp
	StencilOpDecrementAndClamp
	StencilOpInvert
	StencilOpIncrementAndWrap
	StencilOpDecrementAndWrap
)

var stencilOpDecl = enum.Range[StencilOp]("VkStencilOp", 0,
	"VK_STENCIL_OP_KEEP",
	"VK_STENCIL_OP_ZERO",
	"VK_STENCIL_OP_REPLACE",
	"VK_STENCIL_OP_INCREMENT_AND_CLAMP",
	"VK_STENCIL_OP_DECREMENT_AND_CLAMP",
	"VK_STENCIL_OP_INVERT",
	"VK_STENCIL_OP_INCREMENT_AND_WRAP",
	"VK_STENCIL_OP_DECREMENT_AND_WRAP")

func (v StencilOp) IsValid() bool { return stencilOpDecl.IsValid(v) }
func (v StencilOp) String() string { return stencilOpDecl.Format(v) }
func (StencilOp) EnumType() string { return stencilOpDecl.TypeName() }
func (v *StencilOp) UnmarshalText(b []byte) error { return stencilOpDecl.Unmarshal(v, b) }

// LogicOp is VkLogicOp.
type LogicOp int32

const (
	LogicOpClear LogicOp = iota
	LogicOpAnd
	LogicOpAndReverse
	LogicOpCopy
	LogicOpAndInverted
	LogicOpNoOp
	LogicOpXor
	LogicOpOr
	LogicOpNor
	LogicOpEquivalent
	LogicOpInvert
	LogicOpOrReverse
	LogicOpCopyInverted
	LogicOpOrInverted
	LogicOpNand
	LogicOpSet
)

var logicOpDecl = enum.Range[LogicOp]("VkLogicOp", 0,
	"VK_LOGIC_OP_CLEAR",
	"VK_LOGIC_OP_AND",
	"VK_LOGIC_OP_AND_REVERSE",
	"VK_LOGIC_OP_COPY",
	"VK_LOGIC_OP_AND_INVERTED",
	"VK_LOGIC_OP_NO_OP",
	"VK_LOGIC_OP_XOR",
	"VK_LOGIC_OP_OR",
	"VK_LOGIC_OP_NOR",
	"VK_LOGIC_OP_EQUIVALENT",
	"VK_LOGIC_OP_INVERT",
	"VK_LOGIC_OP_OR_REVERSE",
	"VK_LOGIC_OP_COPY_INVERTED",
	"VK_LOGIC_OP_OR_INVERTED",
	"VK_LOGIC_OP_NAND",
	"VK_LOGIC_OP_SET")

func (v LogicOp) IsValid() bool { return logicOpDecl.IsValid(v) }
func (v LogicOp) String() string { return logicOpDecl.Format(v) }
func (LogicOp) EnumType() string { return logicOpDecl.TypeName() }
func (v *LogicOp) UnmarshalText(b []byte) error { return logicOpDecl.Unmarshal(v, b) }

// VertexInputRate is VkVertexInputRate.
type VertexInputRate int32

const (
	VertexInputRateVertex VertexInputRate = iota
	VertexInputRateInstance
)

var vertexInputRateDecl = enum.Range[VertexInputRate]("VkVertexInputRate", 0,
	"VK_VERTEX_INPUT_RATE_VERTEX",
	"VK_VERTEX_INPUT_RATE_INSTANCE")

func (v VertexInputRate) IsValid() bool { return vertexInputRateDecl.IsValid(v) }
func (v VertexInputRate) String() string { return vertexInputRateDecl.Format(v) }
func (VertexInputRate) EnumType() string { return vertexInputRateDecl.TypeName() }
func (v *VertexInputRate) UnmarshalText(b []byte) error { return vertexInputRateDecl.Unmarshal(v, b) }

// DynamicState is VkDynamicState.
type DynamicState int32

const (
	DynamicStateViewport DynamicState = iota
	DynamicStateScissor
	DynamicStateLineWidth
	DynamicStateDepthBias
	DynamicStateBlendConstants
	DynamicStateDepthBounds
	DynamicStateStencilCompareMask
	DynamicStateStencilWriteMask
	DynamicStateStencilReference
	DynamicStateViewportWScalingNV  DynamicState = 1000087000
	DynamicStateDiscardRectangleEXT DynamicState = 1000099000
)

var dynamicStateDecl = enum.Range[DynamicState]("VkDynamicState", 0,
	"VK_DYNAMIC_STATE_VIEWPORT",
	"VK_DYNAMIC_STATE_SCISSOR",
	"VK_DYNAMIC_STATE_LINE_WIDTH",
	"VK_DYNAMIC_STATE_DEPTH_BIAS",
	"VK_DYNAMIC_STATE_BLEND_CONSTANTS",
	"VK_DYNAMIC_STATE_DEPTH_BOUNDS",
	"VK_DYNAMIC_STATE_STENCIL_COMPARE_MASK",
	"VK_DYNAMIC_STATE_STENCIL_WRITE_MASK",
	"VK_DYNAMIC_STATE_STENCIL_REFERENCE").
	Extend(DynamicStateViewportWScalingNV, "VK_DYNAMIC_STATE_VIEWPORT_W_SCALING_NV").
	Extend(DynamicStateDiscardRectangleEXT, "VK_DYNAMIC_STATE_DISCARD_RECTANGLE_EXT")

func (v DynamicState) IsValid() bool { return dynamicStateDecl.IsValid(v) }
func (v DynamicState) String() string { return dynamicStateDecl.Format(v) }
func (DynamicState) EnumType() string { return dynamicStateDecl.TypeName() }
func (v *DynamicState) UnmarshalText(b []byte) error { return dynamicStateDecl.Unmarshal(v, b) }

// AttachmentLoadOp is VkAttachmentLoadOp.
type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad AttachmentLoadOp = iota
	AttachmentLoadOpClear
	AttachmentLoadOpDontCare
)

var attachmentLoadOpDecl = enum.Range[AttachmentLoadOp]("VkAttachmentLoadOp", 0,
	"VK_ATTACHMENT_LOAD_OP_LOAD",
	"VK_ATTACHMENT_LOAD_OP_CLEAR",
	"VK_ATTACHMENT_LOAD_OP_DONT_CARE")

func (v AttachmentLoadOp) IsValid() bool { return attachmentLoadOpDecl.IsValid(v) }
func (v AttachmentLoadOp) String() string { return attachmentLoadOpDecl.Format(v) }
func (AttachmentLoadOp) EnumType() string { return attachmentLoadOpDecl.TypeName() }
func (v *AttachmentLoadOp) UnmarshalText(b []byte) error { return attachmentLoadOpDecl.Unmarshal(v, b) }

// AttachmentStoreOp is VkAttachmentStoreOp.
type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore AttachmentStoreOp = iota
	AttachmentStoreOpDontCare
)

var attachmentStoreOpDecl = enum.Range[AttachmentStoreOp]("VkAttachmentStoreOp", 0,
	"VK_ATTACHMENT_STORE_OP_STORE",
	"VK_ATTACHMENT_STORE_OP_DONT_CARE")

func (v AttachmentStoreOp) IsValid() bool { return attachmentStoreOpDecl.IsValid(v) }
func (v AttachmentStoreOp) String() string { return attachmentStoreOpDecl.Format(v) }
func (AttachmentStoreOp) EnumType() string { return attachmentStoreOpDecl.TypeName() }
func (v *AttachmentStoreOp) UnmarshalText(b []byte) error { return attachmentStoreOpDecl.Unmarshal(v, b) }

// PipelineBindPoint is VkPipelineBindPoint.
type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = iota
	PipelineBindPointCompute
)

var pipelineBindPointDecl = enum.Range[PipelineBindPoint]("VkPipelineBindPoint", 0,
	"VK_PIPELINE_BIND_POINT_GRAPHICS",
	"VK_PIPELINE_BIND_POINT_COMPUTE")

func (v PipelineBindPoint) IsValid() bool { return pipelineBindPointDecl.IsValid(v) }
func (v PipelineBindPoint) String() string { return pipelineBindPointDecl.Format(v) }
func (PipelineBindPoint) EnumType() string { return pipelineBindPointDecl.TypeName() }
func (v *PipelineBindPoint) UnmarshalText(b []byte) error { return pipelineBindPointDecl.Unmarshal(v, b) }

// CommandBufferLevel is VkCommandBufferLevel.
type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary CommandBufferLevel = iota
	CommandBufferLevelSecondary
)

var commandBufferLevelDecl = enum.Range[CommandBufferLevel]("VkCommandBufferLevel", 0,
	"VK_COMMAND_BUFFER_LEVEL_PRIMARY",
	"VK_COMMAND_BUFFER_LEVEL_SECONDARY")

func (v CommandBufferLevel) IsValid() bool { return commandBufferLevelDecl.IsValid(v) }
func (v CommandBufferLevel) String() string { return commandBufferLevelDecl.Format(v) }
func (CommandBufferLevel) EnumType() string { return commandBufferLevelDecl.TypeName() }
func (v *CommandBufferLevel) UnmarshalText(b []byte) error { return commandBufferLevelDecl.Unmarshal(v, b) }

// IndexType is VkIndexType.
type IndexType int32

const (
	IndexTypeUint16 IndexType = iota
	IndexTypeUint32
)

var indexTypeDecl = enum.Range[IndexType]("VkIndexType", 0,
	"VK_INDEX_TYPE_UINT16",
	"VK_INDEX_TYPE_UINT32")

func (v IndexType) IsValid() bool { return indexTypeDecl.IsValid(v) }
func (v IndexType) String() string { return indexTypeDecl.Format(v) }
func (IndexType) EnumType() string { return indexTypeDecl.TypeName() }
func (v *IndexType) UnmarshalText(b []byte) error { return indexTypeDecl.Unmarshal(v, b) }

// SubpassContents is VkSubpassContents.
type SubpassContents int32

const (
	SubpassContentsInline SubpassContents = iota
	SubpassContentsSecondaryCommandBuffers
)

var subpassContentsDecl = enum.Range[SubpassContents]("VkSubpassContents", 0,
	"VK_SUBPASS_CONTENTS_INLINE",
	"VK_SUBPASS_CONTENTS_SECONDARY_COMMAND_BUFFERS")

func (v SubpassContents) IsValid() bool { return subpassContentsDecl.IsValid(v) }
func (v SubpassContents) String() string { return subpassContentsDecl.Format(v) }
func (SubpassContents) EnumType() string { return subpassContentsDecl.TypeName() }
func (v *SubpassContents) UnmarshalText(b []byte) error { return subpassContentsDecl.Unmarshal(v, b) }

// DescriptorType is VkDescriptorType.
type DescriptorType int32

const (
	DescriptorTypeSampler DescriptorType = iota
	DescriptorTypeCombinedImageSampler
	DescriptorTypeSampledImage
	DescriptorTypeStorageImage
	DescriptorTypeUniformTexelBuffer
	DescriptorTypeStorageTexelBuffer
	DescriptorTypeUniformBuffer
	DescriptorTypeStorageBuffer
	DescriptorTypeUniformBufferDynamic
	DescriptorTypeStorageBufferDynamic
	DescriptorTypeInputAttachment
)

var descriptorTypeDecl = enum.Range[DescriptorType]("VkDescriptorType", 0,
	"VK_DESCRIPTOR_TYPE_SAMPLER",
	"VK_DESCRIPTOR_TYPE_COMBINED_IMAGE_SAMPLER",
	"VK_DESCRIPTOR_TYPE_SAMPLED_IMAGE",
	"VK_DESCRIPTOR_TYPE_STORAGE_IMAGE",
	"VK_DESCRIPTOR_TYPE_UNIFORM_TEXEL_BUFFER",
	"VK_DESCRIPTOR_TYPE_STORAGE_TEXEL_BUFFER",
	"VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER",
	"VK_DESCRIPTOR_TYPE_STORAGE_BUFFER",
	"VK_DESCRIPTOR_TYPE_UNIFORM_BUFFER_DYNAMIC",
	"VK_DESCRIPTOR_TYPE_STORAGE_BUFFER_DYNAMIC",
	"VK_DESCRIPTOR_TYPE_INPUT_ATTACHMENT")

func (v DescriptorType) IsValid() bool { return descriptorTypeDecl.IsValid(v) }
func (v DescriptorType) String() string { return descriptorTypeDecl.Format(v) }
func (DescriptorType) EnumType() string { return descriptorTypeDecl.TypeName() }
func (v *DescriptorType) UnmarshalText(b []byte) error { return descriptorTypeDecl.Unmarshal(v, b) }

// QueryType is VkQueryType.
type QueryType int32

const (
	QueryTypeOcclusion QueryType = iota
	QueryTypePipelineStatistics
	QueryTypeTimestamp
)

var queryTypeDecl = enum.Range[QueryType]("VkQueryType", 0,
	"VK_QUERY_TYPE_OCCLUSION",
	"VK_QUERY_TYPE_PIPELINE_STATISTICS",
	"VK_QUERY_TYPE_TIMESTAMP")

func (v QueryType) IsValid() bool { return queryTypeDecl.IsValid(v) }
func (v QueryType) String() string { return queryTypeDecl.Format(v) }
func (QueryType) EnumType() string { return queryTypeDecl.TypeName() }
func (v *QueryType) UnmarshalText(b []byte) error { return queryTypeDecl.Unmarshal(v, b) }

// PhysicalDeviceType is VkPhysicalDeviceType.
type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeOther PhysicalDeviceType = iota
	PhysicalDeviceTypeIntegratedGpu
	PhysicalDeviceTypeDiscreteGpu
	PhysicalDeviceTypeVirtualGpu
	PhysicalDeviceTypeCpu
)

var physicalDeviceTypeDecl = enum.Range[PhysicalDeviceType]("VkPhysicalDeviceType", 0,
	"VK_PHYSICAL_DEVICE_TYPE_OTHER",
	"VK_PHYSICAL_DEVICE_TYPE_INTEGRATED_GPU",
	"VK_PHYSICAL_DEVICE_TYPE_DISCRETE_GPU",
	"VK_PHYSICAL_DEVICE_TYPE_VIRTUAL_GPU",
	"VK_PHYSICAL_DEVICE_TYPE_CPU")

func (v PhysicalDeviceType) IsValid() bool { return physicalDeviceTypeDecl.IsValid(v) }
func (v PhysicalDeviceType) String() string { return physicalDeviceTypeDecl.Format(v) }
func (PhysicalDeviceType) EnumType() string { return physicalDeviceTypeDecl.TypeName() }
func (v *PhysicalDeviceType) UnmarshalText(b []byte) error { return physicalDeviceTypeDecl.Unmarshal(v, b) }

// PipelineCacheHeaderVersion is VkPipelineCacheHeaderVersion.
type PipelineCacheHeaderVersion int32

const (
	PipelineCacheHeaderVersionOne PipelineCacheHeaderVersion = 1
)

var pipelineCacheHeaderVersionDecl = enum.Range[PipelineCacheHeaderVersion]("VkPipelineCacheHeaderVersion", 1,
	"VK_PIPELINE_CACHE_HEADER_VERSION_ONE")

func (v PipelineCacheHeaderVersion) IsValid() bool { return pipelineCacheHeaderVersionDecl.IsValid(v) }
func (v PipelineCacheHeaderVersion) String() string { return pipelineCacheHeaderVersionDecl.Format(v) }
func (PipelineCacheHeaderVersion) EnumType() string { return pipelineCacheHeaderVersionDecl.TypeName() }
func (v *PipelineCacheHeaderVersion) UnmarshalText(b []byte) error { return pipelineCacheHeaderVersionDecl.Unmarshal(v, b) }

// ColorSpaceKHR is VkColorSpaceKHR.
type ColorSpaceKHR int32

const (
	ColorSpaceSrgbNonlinearKHR      ColorSpaceKHR = iota
	ColorSpaceDisplayP3NonlinearEXT ColorSpaceKHR = 1000104001
	ColorSpaceExtendedSrgbLinearEXT ColorSpaceKHR = 1000104002
	ColorSpaceDciP3LinearEXT        ColorSpaceKHR = 1000104003
	ColorSpaceBt709LinearEXT        ColorSpaceKHR = 1000104005
	ColorSpaceBt2020LinearEXT       ColorSpaceKHR = 1000104007
	ColorSpaceHdr10St2084EXT        ColorSpaceKHR = 1000104008
	ColorSpacePassThroughEXT        ColorSpaceKHR = 1000104013
)

var colorSpaceKHRDecl = enum.Range[ColorSpaceKHR]("VkColorSpaceKHR", 0,
	"VK_COLOR_SPACE_SRGB_NONLINEAR_KHR").
	Extend(ColorSpaceDisplayP3NonlinearEXT, "VK_COLOR_SPACE_DISPLAY_P3_NONLINEAR_EXT").
	Extend(ColorSpaceExtendedSrgbLinearEXT, "VK_COLOR_SPACE_EXTENDED_SRGB_LINEAR_EXT").
	Extend(ColorSpaceDciP3LinearEXT, "VK_COLOR_SPACE_DCI_P3_LINEAR_EXT").
	Extend(ColorSpaceBt709LinearEXT, "VK_COLOR_SPACE_BT709_LINEAR_EXT").
	Extend(ColorSpaceBt2020LinearEXT, "VK_COLOR_SPACE_BT2020_LINEAR_EXT").
	Extend(ColorSpaceHdr10St2084EXT, "VK_COLOR_SPACE_HDR10_ST2084_EXT").
	Extend(ColorSpacePassThroughEXT, "VK_COLOR_SPACE_PASS_THROUGH_EXT")

func (v ColorSpaceKHR) IsValid() bool { return colorSpaceKHRDecl.IsValid(v) }
func (v ColorSpaceKHR) String() string { return colorSpaceKHRDecl.Format(v) }
func (ColorSpaceKHR) EnumType() string { return colorSpaceKHRDecl.TypeName() }
func (v *ColorSpaceKHR) UnmarshalText(b []byte) error { return colorSpaceKHRDecl.Unmarshal(v, b) }

// PresentModeKHR is VkPresentModeKHR.
type PresentModeKHR int32

const (
	PresentModeImmediateKHR PresentModeKHR = iota
	PresentModeMailboxKHR
	PresentModeFifoKHR
	PresentModeFifoRelaxedKHR
	PresentModeSharedDemandRefreshKHR     PresentModeKHR = 1000111000
	PresentModeSharedContinuousRefreshKHR PresentModeKHR = 1000111001
)

var presentModeKHRDecl = enum.Range[PresentModeKHR]("VkPresentModeKHR", 0,
	"VK_PRESENT_MODE_IMMEDIATE_KHR",
	"VK_PRESENT_MODE_MAILBOX_KHR",
	"VK_PRESENT_MODE_FIFO_KHR",
	"VK_PRESENT_MODE_FIFO_RELAXED_KHR").
	Extend(PresentModeSharedDemandRefreshKHR, "VK_PRESENT_MODE_SHARED_DEMAND_REFRESH_KHR").
	Extend(PresentModeSharedContinuousRefreshKHR, "VK_PRESENT_MODE_SHARED_CONTINUOUS_REFRESH_KHR")

func (v PresentModeKHR) IsValid() bool { return presentModeKHRDecl.IsValid(v) }
func (v PresentModeKHR) String() string { return presentModeKHRDecl.Format(v) }
func (PresentModeKHR) EnumType() string { return presentModeKHRDecl.TypeName() }
func (v *PresentModeKHR) UnmarshalText(b []byte) error { return presentModeKHRDecl.Unmarshal(v, b) }

// DebugReportObjectTypeEXT is VkDebugReportObjectTypeEXT.
type DebugReportObjectTypeEXT int32

const (
	DebugReportObjectTypeUnknownEXT DebugReportObjectTypeEXT = iota
	DebugReportObjectTypeInstanceEXT
	DebugReportObjectTypePhysicalDeviceEXT
	DebugReportObjectTypeDeviceEXT
	DebugReportObjectTypeQueueEXT
	DebugReportObjectTypeSemaphoreEXT
	DebugReportObjectTypeCommandBufferEXT
	DebugReportObjectTypeFenceEXT
	DebugReportObjectTypeDeviceMemoryEXT
	DebugReportObjectTypeBufferEXT
	DebugReportObjectTypeImageEXT
	DebugReportObjectTypeEventEXT
	DebugReportObjectTypeQueryPoolEXT
	DebugReportObjectTypeBufferViewEXT
	DebugReportObjectTypeImageViewEXT
	DebugReportObjectTypeShaderModuleEXT
	DebugReportObjectTypePipelineCacheEXT
	DebugReportObjectTypePipelineLayoutEXT
	DebugReportObjectTypeRenderPassEXT
	DebugReportObjectTypePipelineEXT
	DebugReportObjectTypeDescriptorSetLayoutEXT
	DebugReportObjectTypeSamplerEXT
	DebugReportObjectTypeDescriptorPoolEXT
	DebugReportObjectTypeDescriptorSetEXT
	DebugReportObjectTypeFramebufferEXT
	DebugReportObjectTypeCommandPoolEXT
	DebugReportObjectTypeSurfaceKHREXT
	DebugReportObjectTypeSwapchainKHREXT
	DebugReportObjectTypeDebugReportCallbackEXT
)

var debugReportObjectTypeEXTDecl = enum.Range[DebugReportObjectTypeEXT]("VkDebugReportObjectTypeEXT", 0,
	"VK_DEBUG_REPORT_OBJECT_TYPE_UNKNOWN_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_INSTANCE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_PHYSICAL_DEVICE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_DEVICE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_QUEUE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_SEMAPHORE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_COMMAND_BUFFER_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_FENCE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_DEVICE_MEMORY_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_BUFFER_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_IMAGE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_EVENT_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_QUERY_POOL_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_BUFFER_VIEW_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_IMAGE_VIEW_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_SHADER_MODULE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_PIPELINE_CACHE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_PIPELINE_LAYOUT_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_RENDER_PASS_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_PIPELINE_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_DESCRIPTOR_SET_LAYOUT_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_SAMPLER_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_DESCRIPTOR_POOL_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_DESCRIPTOR_SET_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_FRAMEBUFFER_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_COMMAND_POOL_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_SURFACE_KHR_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_SWAPCHAIN_KHR_EXT",
	"VK_DEBUG_REPORT_OBJECT_TYPE_DEBUG_REPORT_CALLBACK_EXT")

func (v DebugReportObjectTypeEXT) IsValid() bool { return debugReportObjectTypeEXTDecl.IsValid(v) }
func (v DebugReportObjectTypeEXT) String() string { return debugReportObjectTypeEXTDecl.Format(v) }
func (DebugReportObjectTypeEXT) EnumType() string { return debugReportObjectTypeEXTDecl.TypeName() }
func (v *DebugReportObjectTypeEXT) UnmarshalText(b []byte) error { return debugReportObjectTypeEXTDecl.Unmarshal(v, b) }
