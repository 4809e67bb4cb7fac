package nulldriver

import "github.com/wippyai/vk-validation/vk"

// PhysicalDevice is what the driver reports for one physical device.
type PhysicalDevice struct {
	Properties    vk.PhysicalDeviceProperties
	Features      vk.PhysicalDeviceFeatures
	QueueFamilies []vk.QueueFamilyProperties
	Memory        vk.PhysicalDeviceMemoryProperties
	Formats       map[vk.Format]vk.FormatProperties
	// surfaces can be presented to from these queue families
	PresentFamilies []uint32
}

const on = vk.True

// DefaultPhysicalDevice describes a discrete GPU with the minimum limits the
// API guarantees, a graphics and a transfer queue family and two memory types.
// The sparse residency features and the ETC2 and ASTC compression features
// are not supported.
func DefaultPhysicalDevice() PhysicalDevice {
	pd := PhysicalDevice{
		Properties: vk.PhysicalDeviceProperties{
			APIVersion:    vk.APIVersion10,
			DriverVersion: vk.MakeVersion(1, 0, 0),
			VendorID:      0x10de,
			DeviceID:      0x1,
			DeviceType:    vk.PhysicalDeviceTypeDiscreteGpu,
			DeviceName:    "null device",
			Limits:        DefaultLimits(),
		},
		Features: vk.PhysicalDeviceFeatures{
			RobustBufferAccess:            on,
			FullDrawIndexUint32:           on,
			ImageCubeArray:                on,
			IndependentBlend:              on,
			GeometryShader:                on,
			TessellationShader:            on,
			SampleRateShading:             on,
			DualSrcBlend:                  on,
			LogicOp:                       on,
			MultiDrawIndirect:             on,
			DrawIndirectFirstInstance:     on,
			DepthClamp:                    on,
			DepthBiasClamp:                on,
			FillModeNonSolid:              on,
			DepthBounds:                   on,
			WideLines:                     on,
			LargePoints:                   on,
			MultiViewport:                 on,
			SamplerAnisotropy:             on,
			TextureCompressionBC:          on,
			OcclusionQueryPrecise:         on,
			PipelineStatisticsQuery:       on,
			FragmentStoresAndAtomics:      on,
			ShaderClipDistance:            on,
			ShaderCullDistance:            on,
			ShaderFloat64:                 on,
			ShaderInt64:                   on,
			SparseBinding:                 on,
			InheritedQueries:              on,
			VariableMultisampleRate:       on,
			ShaderImageGatherExtended:     on,
			ShaderResourceMinLod:          on,
			ShaderStorageImageMultisample: on,
		},
		QueueFamilies: []vk.QueueFamilyProperties{
			{
				QueueFlags:                  vk.QueueGraphicsBit | vk.QueueComputeBit | vk.QueueTransferBit | vk.QueueSparseBindingBit,
				QueueCount:                  4,
				TimestampValidBits:          64,
				MinImageTransferGranularity: vk.Extent3D{Width: 1, Height: 1, Depth: 1},
			},
			{
				QueueFlags:                  vk.QueueTransferBit,
				QueueCount:                  2,
				TimestampValidBits:          64,
				MinImageTransferGranularity: vk.Extent3D{Width: 1, Height: 1, Depth: 1},
			},
		},
		PresentFamilies: []uint32{0},
	}

	pd.Memory.MemoryTypeCount = 2
	pd.Memory.MemoryTypes[0] = vk.MemoryType{PropertyFlags: vk.MemoryPropertyDeviceLocalBit, HeapIndex: 0}
	pd.Memory.MemoryTypes[1] = vk.MemoryType{
		PropertyFlags: vk.MemoryPropertyHostVisibleBit | vk.MemoryPropertyHostCoherentBit,
		HeapIndex:     1,
	}
	pd.Memory.MemoryHeapCount = 2
	pd.Memory.MemoryHeaps[0] = vk.MemoryHeap{Size: 8 << 30, Flags: vk.MemoryHeapDeviceLocalBit}
	pd.Memory.MemoryHeaps[1] = vk.MemoryHeap{Size: 16 << 30}

	color := vk.FormatFeatureSampledImageBit | vk.FormatFeatureColorAttachmentBit |
		vk.FormatFeatureColorAttachmentBlendBit | vk.FormatFeatureBlitSrcBit | vk.FormatFeatureBlitDstBit |
		vk.FormatFeatureSampledImageFilterLinearBit
	depth := vk.FormatFeatureSampledImageBit | vk.FormatFeatureDepthStencilAttachmentBit | vk.FormatFeatureBlitSrcBit
	pd.Formats = map[vk.Format]vk.FormatProperties{
		vk.FormatR8g8b8a8Unorm: {
			LinearTilingFeatures:  vk.FormatFeatureSampledImageBit,
			OptimalTilingFeatures: color,
			BufferFeatures:        vk.FormatFeatureVertexBufferBit,
		},
		vk.FormatB8g8r8a8Unorm:      {OptimalTilingFeatures: color},
		vk.FormatR32g32b32a32Sfloat: {OptimalTilingFeatures: color, BufferFeatures: vk.FormatFeatureVertexBufferBit},
		vk.FormatD32Sfloat:          {OptimalTilingFeatures: depth},
		vk.FormatD24UnormS8Uint:     {OptimalTilingFeatures: depth},
	}
	return pd
}

// DefaultLimits returns the minimum limits every implementation must
// support.
func DefaultLimits() vk.PhysicalDeviceLimits {
	counts := vk.SampleCount1Bit | vk.SampleCount4Bit
	return vk.PhysicalDeviceLimits{
		MaxImageDimension1D:                   4096,
		MaxImageDimension2D:                   4096,
		MaxImageDimension3D:                   256,
		MaxImageDimensionCube:                 4096,
		MaxImageArrayLayers:                   256,
		MaxTexelBufferElements:                65536,
		MaxUniformBufferRange:                 16384,
		MaxStorageBufferRange:                 1 << 27,
		MaxPushConstantsSize:                  128,
		MaxMemoryAllocationCount:              4096,
		MaxSamplerAllocationCount:             4000,
		BufferImageGranularity:                131072,
		SparseAddressSpaceSize:                1 << 31,
		MaxBoundDescriptorSets:                4,
		MaxPerStageDescriptorSamplers:         16,
		MaxPerStageDescriptorUniformBuffers:   12,
		MaxPerStageDescriptorStorageBuffers:   4,
		MaxPerStageDescriptorSampledImages:    16,
		MaxPerStageDescriptorStorageImages:    4,
		MaxPerStageDescriptorInputAttachments: 4,
		MaxPerStageResources:                  128,
		MaxDescriptorSetSamplers:              96,
		MaxDescriptorSetUniformBuffers:        72,
		MaxDescriptorSetUniformBuffersDynamic: 8,
		MaxDescriptorSetStorageBuffers:        24,
		MaxDescriptorSetStorageBuffersDynamic: 4,
		MaxDescriptorSetSampledImages:         96,
		MaxDescriptorSetStorageImages:         24,
		MaxDescriptorSetInputAttachments:      4,
		MaxVertexInputAttributes:              16,
		MaxVertexInputBindings:                16,
		MaxVertexInputAttributeOffset:         2047,
		MaxVertexInputBindingStride:           2048,
		MaxVertexOutputComponents:             64,
		MaxTessellationGenerationLevel:        64,
		MaxTessellationPatchSize:              32,
		MaxGeometryShaderInvocations:          32,
		MaxGeometryInputComponents:            64,
		MaxGeometryOutputComponents:           64,
		MaxGeometryOutputVertices:             256,
		MaxGeometryTotalOutputComponents:      1024,
		MaxFragmentInputComponents:            64,
		MaxFragmentOutputAttachments:          4,
		MaxFragmentDualSrcAttachments:         1,
		MaxFragmentCombinedOutputResources:    4,
		MaxComputeSharedMemorySize:            16384,
		MaxComputeWorkGroupCount:              [3]uint32{65535, 65535, 65535},
		MaxComputeWorkGroupInvocations:        128,
		MaxComputeWorkGroupSize:               [3]uint32{128, 128, 64},
		SubPixelPrecisionBits:                 4,
		SubTexelPrecisionBits:                 4,
		MipmapPrecisionBits:                   4,
		MaxDrawIndexedIndexValue:              1<<32 - 1,
		MaxDrawIndirectCount:                  1<<16 - 1,
		MaxSamplerLodBias:                     2,
		MaxSamplerAnisotropy:                  16,
		MaxViewports:                          16,
		MaxViewportDimensions:                 [2]uint32{4096, 4096},
		ViewportBoundsRange:                   [2]float32{-8192, 8191},
		MinMemoryMapAlignment:                 64,
		MinTexelBufferOffsetAlignment:         256,
		MinUniformBufferOffsetAlignment:       256,
		MinStorageBufferOffsetAlignment:       256,
		MinTexelOffset:                        -8,
		MaxTexelOffset:                        7,
		MinTexelGatherOffset:                  -8,
		MaxTexelGatherOffset:                  7,
		MinInterpolationOffset:                -0.5,
		MaxInterpolationOffset:                0.4375,
		MaxFramebufferWidth:                   4096,
		MaxFramebufferHeight:                  4096,
		MaxFramebufferLayers:                  256,
		FramebufferColorSampleCounts:          counts,
		FramebufferDepthSampleCounts:          counts,
		FramebufferStencilSampleCounts:        counts,
		FramebufferNoAttachmentsSampleCounts:  counts,
		MaxColorAttachments:                   4,
		SampledImageColorSampleCounts:         counts,
		SampledImageIntegerSampleCounts:       vk.SampleCount1Bit,
		SampledImageDepthSampleCounts:         counts,
		SampledImageStencilSampleCounts:       counts,
		StorageImageSampleCounts:              vk.SampleCount1Bit,
		MaxSampleMaskWords:                    1,
		TimestampComputeAndGraphics:           vk.True,
		TimestampPeriod:                       1,
		MaxClipDistances:                      8,
		MaxCullDistances:                      8,
		MaxCombinedClipAndCullDistances:       8,
		DiscreteQueuePriorities:               2,
		PointSizeRange:                        [2]float32{1, 64},
		LineWidthRange:                        [2]float32{1, 8},
		PointSizeGranularity:                  1,
		LineWidthGranularity:                  1,
		StandardSampleLocations:               vk.True,
		OptimalBufferCopyOffsetAlignment:      1,
		OptimalBufferCopyRowPitchAlignment:    1,
		NonCoherentAtomSize:                   256,
	}
}

func (pd *PhysicalDevice) family(index uint32) (vk.QueueFamilyProperties, bool) {
	if int(index) >= len(pd.QueueFamilies) {
		return vk.QueueFamilyProperties{}, false
	}
	return pd.QueueFamilies[index], true
}
