package vk

import "github.com/wippyai/vk-validation/enum"

// ValidationCheckEXT is VkValidationCheckEXT.
type ValidationCheckEXT int32

const (
	ValidationCheckAllEXT ValidationCheckEXT = iota
	ValidationCheckShadersEXT
)

var validationCheckEXTDecl = enum.Range[ValidationCheckEXT]("VkValidationCheckEXT", 0,
	"VK_VALIDATION_CHECK_ALL_EXT",
	"VK_VALIDATION_CHECK_SHADERS_EXT")

func (v ValidationCheckEXT) IsValid() bool { return validationCheckEXTDecl.IsValid(v) }
func (v ValidationCheckEXT) String() string { return validationCheckEXTDecl.Format(v) }
func (ValidationCheckEXT) EnumType() string { return validationCheckEXTDecl.TypeName() }
func (v *ValidationCheckEXT) UnmarshalText(b []byte) error {
	return validationCheckEXTDecl.Unmarshal(v, b)
}

// ValidationFlagsEXT is VkValidationFlagsEXT.
type ValidationFlagsEXT struct {
	SType                        StructureType
	Next                         Extension
	DisabledValidationCheckCount uint32
	DisabledValidationChecks     []ValidationCheckEXT
}

// DedicatedAllocationImageCreateInfoNV is VkDedicatedAllocationImageCreateInfoNV.
type DedicatedAllocationImageCreateInfoNV struct {
	SType               StructureType
	Next                Extension
	DedicatedAllocation Bool32
}

// DedicatedAllocationBufferCreateInfoNV is VkDedicatedAllocationBufferCreateInfoNV.
type DedicatedAllocationBufferCreateInfoNV struct {
	SType               StructureType
	Next                Extension
	DedicatedAllocation Bool32
}

// DedicatedAllocationMemoryAllocateInfoNV is VkDedicatedAllocationMemoryAllocateInfoNV.
type DedicatedAllocationMemoryAllocateInfoNV struct {
	SType  StructureType
	Next   Extension
	Image  Image
	Buffer Buffer
}

// MemoryDedicatedAllocateInfoKHR is VkMemoryDedicatedAllocateInfoKHR.
type MemoryDedicatedAllocateInfoKHR struct {
	SType  StructureType
	Next   Extension
	Image  Image
	Buffer Buffer
}

// PhysicalDeviceFeatures2KHR is VkPhysicalDeviceFeatures2KHR. Chained into
// DeviceCreateInfo it replaces EnabledFeatures.
type PhysicalDeviceFeatures2KHR struct {
	SType    StructureType
	Next     Extension
	Features PhysicalDeviceFeatures
}

// ImageFormatListCreateInfoKHR is VkImageFormatListCreateInfoKHR.
type ImageFormatListCreateInfoKHR struct {
	SType           StructureType
	Next            Extension
	ViewFormatCount uint32
	ViewFormats     []Format
}


func (s *DebugReportCallbackCreateInfoEXT) StructType() StructureType { return s.SType }
func (*DebugReportCallbackCreateInfoEXT) ExpectedType() StructureType { return StructureTypeDebugReportCallbackCreateInfoEXT }
func (s *DebugReportCallbackCreateInfoEXT) NextExtension() Extension { return s.Next }

func (s *ValidationFlagsEXT) StructType() StructureType { return s.SType }
func (*ValidationFlagsEXT) ExpectedType() StructureType { return StructureTypeValidationFlagsEXT }
func (s *ValidationFlagsEXT) NextExtension() Extension { return s.Next }

func (s *DedicatedAllocationImageCreateInfoNV) StructType() StructureType { return s.SType }
func (*DedicatedAllocationImageCreateInfoNV) ExpectedType() StructureType { return StructureTypeDedicatedAllocationImageCreateInfoNV }
func (s *DedicatedAllocationImageCreateInfoNV) NextExtension() Extension { return s.Next }

func (s *DedicatedAllocationBufferCreateInfoNV) StructType() StructureType { return s.SType }
func (*DedicatedAllocationBufferCreateInfoNV) ExpectedType() StructureType { return StructureTypeDedicatedAllocationBufferCreateInfoNV }
func (s *DedicatedAllocationBufferCreateInfoNV) NextExtension() Extension { return s.Next }

func (s *DedicatedAllocationMemoryAllocateInfoNV) StructType() StructureType { return s.SType }
func (*DedicatedAllocationMemoryAllocateInfoNV) ExpectedType() StructureType { return StructureTypeDedicatedAllocationMemoryAllocateInfoNV }
func (s *DedicatedAllocationMemoryAllocateInfoNV) NextExtension() Extension { return s.Next }

func (s *MemoryDedicatedAllocateInfoKHR) StructType() StructureType { return s.SType }
func (*MemoryDedicatedAllocateInfoKHR) ExpectedType() StructureType { return StructureTypeMemoryDedicatedAllocateInfoKHR }
func (s *MemoryDedicatedAllocateInfoKHR) NextExtension() Extension { return s.Next }

func (s *PhysicalDeviceFeatures2KHR) StructType() StructureType { return s.SType }
func (*PhysicalDeviceFeatures2KHR) ExpectedType() StructureType { return StructureTypePhysicalDeviceFeatures2KHR }
func (s *PhysicalDeviceFeatures2KHR) NextExtension() Extension { return s.Next }

func (s *ImageFormatListCreateInfoKHR) StructType() StructureType { return s.SType }
func (*ImageFormatListCreateInfoKHR) ExpectedType() StructureType { return StructureTypeImageFormatListCreateInfoKHR }
func (s *ImageFormatListCreateInfoKHR) NextExtension() Extension { return s.Next }
