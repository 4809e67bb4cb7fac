package vk

import "github.com/wippyai/vk-validation/enum"

// StructureType is VkStructureType, the tag carried by every extensible struct.
type StructureType int32

const (
	StructureTypeApplicationInfo                         StructureType = 0
	StructureTypeInstanceCreateInfo                      StructureType = 1
	StructureTypeDeviceQueueCreateInfo                   StructureType = 2
	StructureTypeDeviceCreateInfo                        StructureType = 3
	StructureTypeSubmitInfo                              StructureType = 4
	StructureTypeMemoryAllocateInfo                      StructureType = 5
	StructureTypeMappedMemoryRange                       StructureType = 6
	StructureTypeBindSparseInfo                          StructureType = 7
	StructureTypeFenceCreateInfo                         StructureType = 8
	StructureTypeSemaphoreCreateInfo                     StructureType = 9
	StructureTypeEventCreateInfo                         StructureType = 10
	StructureTypeQueryPoolCreateInfo                     StructureType = 11
	StructureTypeBufferCreateInfo                        StructureType = 12
	StructureTypeBufferViewCreateInfo                    StructureType = 13
	StructureTypeImageCreateInfo                         StructureType = 14
	StructureTypeImageViewCreateInfo                     StructureType = 15
	StructureTypeShaderModuleCreateInfo                  StructureType = 16
	StructureTypePipelineCacheCreateInfo                 StructureType = 17
	StructureTypePipelineShaderStageCreateInfo           StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo      StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo    StructureType = 20
	StructureTypePipelineTessellationStateCreateInfo     StructureType = 21
	StructureTypePipelineViewportStateCreateInfo         StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo    StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo      StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo     StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo       StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo          StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo              StructureType = 28
	StructureTypeComputePipelineCreateInfo               StructureType = 29
	StructureTypePipelineLayoutCreateInfo                StructureType = 30
	StructureTypeSamplerCreateInfo                       StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo           StructureType = 32
	StructureTypeDescriptorPoolCreateInfo                StructureType = 33
	StructureTypeDescriptorSetAllocateInfo               StructureType = 34
	StructureTypeWriteDescriptorSet                      StructureType = 35
	StructureTypeCopyDescriptorSet                       StructureType = 36
	StructureTypeFramebufferCreateInfo                   StructureType = 37
	StructureTypeRenderPassCreateInfo                    StructureType = 38
	StructureTypeCommandPoolCreateInfo                   StructureType = 39
	StructureTypeCommandBufferAllocateInfo               StructureType = 40
	StructureTypeCommandBufferInheritanceInfo            StructureType = 41
	StructureTypeCommandBufferBeginInfo                  StructureType = 42
	StructureTypeRenderPassBeginInfo                     StructureType = 43
	StructureTypeBufferMemoryBarrier                     StructureType = 44
	StructureTypeImageMemoryBarrier                      StructureType = 45
	StructureTypeMemoryBarrier                           StructureType = 46
	StructureTypeLoaderInstanceCreateInfo                StructureType = 47
	StructureTypeLoaderDeviceCreateInfo                  StructureType = 48
	StructureTypeSwapchainCreateInfoKHR                  StructureType = 1000001000
	StructureTypePresentInfoKHR                          StructureType = 1000001001
	StructureTypeDebugReportCallbackCreateInfoEXT        StructureType = 1000011000
	StructureTypeDedicatedAllocationImageCreateInfoNV    StructureType = 1000026000
	StructureTypeDedicatedAllocationBufferCreateInfoNV   StructureType = 1000026001
	StructureTypeDedicatedAllocationMemoryAllocateInfoNV StructureType = 1000026002
	StructureTypePhysicalDeviceFeatures2KHR              StructureType = 1000059000
	StructureTypeValidationFlagsEXT                      StructureType = 1000061000
	StructureTypeExternalMemoryBufferCreateInfoKHR       StructureType = 1000072000
	StructureTypeExternalMemoryImageCreateInfoKHR        StructureType = 1000072001
	StructureTypeExportMemoryAllocateInfoKHR             StructureType = 1000072002
	StructureTypeMemoryDedicatedAllocateInfoKHR          StructureType = 1000127001
	StructureTypeImageFormatListCreateInfoKHR            StructureType = 1000147000
)

var structureTypeDecl = enum.Range[StructureType]("VkStructureType", 0,
	"VK_STRUCTURE_TYPE_APPLICATION_INFO",
	"VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_DEVICE_QUEUE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_DEVICE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_SUBMIT_INFO",
	"VK_STRUCTURE_TYPE_MEMORY_ALLOCATE_INFO",
	"VK_STRUCTURE_TYPE_MAPPED_MEMORY_RANGE",
	"VK_STRUCTURE_TYPE_BIND_SPARSE_INFO",
	"VK_STRUCTURE_TYPE_FENCE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_SEMAPHORE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_EVENT_CREATE_INFO",
	"VK_STRUCTURE_TYPE_QUERY_POOL_CREATE_INFO",
	"VK_STRUCTURE_TYPE_BUFFER_CREATE_INFO",
	"VK_STRUCTURE_TYPE_BUFFER_VIEW_CREATE_INFO",
	"VK_STRUCTURE_TYPE_IMAGE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_IMAGE_VIEW_CREATE_INFO",
	"VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_TESSELLATION_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_DEPTH_STENCIL_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_DYNAMIC_STATE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO",
	"VK_STRUCTURE_TYPE_SAMPLER_CREATE_INFO",
	"VK_STRUCTURE_TYPE_DESCRIPTOR_SET_LAYOUT_CREATE_INFO",
	"VK_STRUCTURE_TYPE_DESCRIPTOR_POOL_CREATE_INFO",
	"VK_STRUCTURE_TYPE_DESCRIPTOR_SET_ALLOCATE_INFO",
	"VK_STRUCTURE_TYPE_WRITE_DESCRIPTOR_SET",
	"VK_STRUCTURE_TYPE_COPY_DESCRIPTOR_SET",
	"VK_STRUCTURE_TYPE_FRAMEBUFFER_CREATE_INFO",
	"VK_STRUCTURE_TYPE_RENDER_PASS_CREATE_INFO",
	"VK_STRUCTURE_TYPE_COMMAND_POOL_CREATE_INFO",
	"VK_STRUCTURE_TYPE_COMMAND_BUFFER_ALLOCATE_INFO",
	"VK_STRUCTURE_TYPE_COMMAND_BUFFER_INHERITANCE_INFO",
	"VK_STRUCTURE_TYPE_COMMAND_BUFFER_BEGIN_INFO",
	"VK_STRUCTURE_TYPE_RENDER_PASS_BEGIN_INFO",
	"VK_STRUCTURE_TYPE_BUFFER_MEMORY_BARRIER",
	"VK_STRUCTURE_TYPE_IMAGE_MEMORY_BARRIER",
	"VK_STRUCTURE_TYPE_MEMORY_BARRIER",
	"VK_STRUCTURE_TYPE_LOADER_INSTANCE_CREATE_INFO",
	"VK_STRUCTURE_TYPE_LOADER_DEVICE_CREATE_INFO").
	Extend(StructureTypeSwapchainCreateInfoKHR, "VK_STRUCTURE_TYPE_SWAPCHAIN_CREATE_INFO_KHR").
	Extend(StructureTypePresentInfoKHR, "VK_STRUCTURE_TYPE_PRESENT_INFO_KHR").
	Extend(StructureTypeDebugReportCallbackCreateInfoEXT, "VK_STRUCTURE_TYPE_DEBUG_REPORT_CALLBACK_CREATE_INFO_EXT").
	Extend(StructureTypeDedicatedAllocationImageCreateInfoNV, "VK_STRUCTURE_TYPE_DEDICATED_ALLOCATION_IMAGE_CREATE_INFO_NV").
	Extend(StructureTypeDedicatedAllocationBufferCreateInfoNV, "VK_STRUCTURE_TYPE_DEDICATED_ALLOCATION_BUFFER_CREATE_INFO_NV").
	Extend(StructureTypeDedicatedAllocationMemoryAllocateInfoNV, "VK_STRUCTURE_TYPE_DEDICATED_ALLOCATION_MEMORY_ALLOCATE_INFO_NV").
	Extend(StructureTypePhysicalDeviceFeatures2KHR, "VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_FEATURES_2_KHR").
	Extend(StructureTypeValidationFlagsEXT, "VK_STRUCTURE_TYPE_VALIDATION_FLAGS_EXT").
	Extend(StructureTypeExternalMemoryBufferCreateInfoKHR, "VK_STRUCTURE_TYPE_EXTERNAL_MEMORY_BUFFER_CREATE_INFO_KHR").
	Extend(StructureTypeExternalMemoryImageCreateInfoKHR, "VK_STRUCTURE_TYPE_EXTERNAL_MEMORY_IMAGE_CREATE_INFO_KHR").
	Extend(StructureTypeExportMemoryAllocateInfoKHR, "VK_STRUCTURE_TYPE_EXPORT_MEMORY_ALLOCATE_INFO_KHR").
	Extend(StructureTypeMemoryDedicatedAllocateInfoKHR, "VK_STRUCTURE_TYPE_MEMORY_DEDICATED_ALLOCATE_INFO_KHR").
	Extend(StructureTypeImageFormatListCreateInfoKHR, "VK_STRUCTURE_TYPE_IMAGE_FORMAT_LIST_CREATE_INFO_KHR")

func (v StructureType) IsValid() bool { return structureTypeDecl.IsValid(v) }
func (v StructureType) String() string { return structureTypeDecl.Format(v) }
func (StructureType) EnumType() string { return structureTypeDecl.TypeName() }
func (v *StructureType) UnmarshalText(b []byte) error { return structureTypeDecl.Unmarshal(v, b) }
