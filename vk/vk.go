package vk

import "fmt"

// Key identifies the dispatch table that serves a dispatchable handle.
// Validation state is registered per key.
type Key uint64

// DeviceSize is VkDeviceSize.
type DeviceSize uint64

// Flags is a reserved VkFlags field. Every bit must be zero.
type Flags uint32

// Bool32 is VkBool32. Only True and False are legal.
type Bool32 uint32

const (
	False Bool32 = 0
	True  Bool32 = 1
)

// IsValid reports whether b is True or False.
func (b Bool32) IsValid() bool { return b <= True }

// Bool converts b to a Go bool; any non-zero value is true.
func (b Bool32) Bool() bool { return b != False }

func (b Bool32) String() string {
	switch b {
	case False:
		return "VK_FALSE"
	case True:
		return "VK_TRUE"
	}
	return fmt.Sprintf("%d", uint32(b))
}

// B converts a Go bool to Bool32.
func B(v bool) Bool32 {
	if v {
		return True
	}
	return False
}

// UnmarshalText accepts true/false and the VK_TRUE/VK_FALSE spellings.
func (b *Bool32) UnmarshalText(text []byte) error {
	switch string(text) {
	case "true", "VK_TRUE", "1":
		*b = True
	case "false", "VK_FALSE", "0":
		*b = False
	default:
		return fmt.Errorf("invalid VkBool32 %q", text)
	}
	return nil
}

const (
	// QueueFamilyIgnored is VK_QUEUE_FAMILY_IGNORED.
	QueueFamilyIgnored uint32 = ^uint32(0)
	// AttachmentUnused is VK_ATTACHMENT_UNUSED.
	AttachmentUnused uint32 = ^uint32(0)
	// SubpassExternal is VK_SUBPASS_EXTERNAL.
	SubpassExternal uint32 = ^uint32(0)
	// RemainingMipLevels is VK_REMAINING_MIP_LEVELS.
	RemainingMipLevels uint32 = ^uint32(0)
	// RemainingArrayLayers is VK_REMAINING_ARRAY_LAYERS.
	RemainingArrayLayers uint32 = ^uint32(0)
	// WholeSize is VK_WHOLE_SIZE.
	WholeSize DeviceSize = ^DeviceSize(0)

	LodClampNone float32 = 1000.0

	MaxPhysicalDeviceNameSize = 256
	MaxExtensionNameSize      = 256
	MaxDescriptionSize        = 256
	MaxMemoryTypes            = 32
	MaxMemoryHeaps            = 16
	UUIDSize                  = 16
)

// MakeVersion packs a version the way VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return major<<22 | minor<<12 | patch
}

// VersionString renders a packed version as major.minor.patch.
func VersionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22, (v>>12)&0x3ff, v&0xfff)
}

// APIVersion10 is VK_API_VERSION_1_0.
var APIVersion10 = MakeVersion(1, 0, 0)

// Extension names recognised by the validators.
const (
	KHRSurfaceExtensionName                  = "VK_KHR_surface"
	KHRSwapchainExtensionName                = "VK_KHR_swapchain"
	EXTDebugReportExtensionName              = "VK_EXT_debug_report"
	EXTValidationFlagsExtensionName          = "VK_EXT_validation_flags"
	NVDedicatedAllocationExtensionName       = "VK_NV_dedicated_allocation"
	KHRDedicatedAllocationExtensionName      = "VK_KHR_dedicated_allocation"
	KHRGetPhysicalDeviceProperties2Name      = "VK_KHR_get_physical_device_properties2"
	KHRSamplerMirrorClampToEdgeExtensionName = "VK_KHR_sampler_mirror_clamp_to_edge"
	KHRImageFormatListExtensionName          = "VK_KHR_image_format_list"
	IMGFilterCubicExtensionName              = "VK_IMG_filter_cubic"
)

// Extent2D is VkExtent2D.
type Extent2D struct {
	Width, Height uint32
}

// Extent3D is VkExtent3D.
type Extent3D struct {
	Width, Height, Depth uint32
}

// Offset2D is VkOffset2D.
type Offset2D struct {
	X, Y int32
}

// Offset3D is VkOffset3D.
type Offset3D struct {
	X, Y, Z int32
}

// Rect2D is VkRect2D.
type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

// Viewport is VkViewport.
type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

// ComponentMapping is VkComponentMapping.
type ComponentMapping struct {
	R, G, B, A ComponentSwizzle
}

// ImageSubresource is VkImageSubresource.
type ImageSubresource struct {
	AspectMask ImageAspectFlags
	MipLevel   uint32
	ArrayLayer uint32
}

// ImageSubresourceLayers is VkImageSubresourceLayers.
type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ImageSubresourceRange is VkImageSubresourceRange.
type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// SubresourceLayout is VkSubresourceLayout.
type SubresourceLayout struct {
	Offset     DeviceSize
	Size       DeviceSize
	RowPitch   DeviceSize
	ArrayPitch DeviceSize
	DepthPitch DeviceSize
}

// ClearColorValue is VkClearColorValue. The union is flattened; the
// interpretation follows the image format.
type ClearColorValue struct {
	Float32 [4]float32
	Int32   [4]int32
	Uint32  [4]uint32
}

// ClearDepthStencilValue is VkClearDepthStencilValue.
type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is VkClearValue.
type ClearValue struct {
	Color        ClearColorValue
	DepthStencil ClearDepthStencilValue
}
