package layer

import (
	"math"
	"math/bits"

	"github.com/wippyai/vk-validation/vk"
)

// CreateBuffer validates the create info, including the sharing mode
// against the connection's queue families and sparse flags against the
// enabled features.
func (l *Layer) CreateBuffer(device vk.Device, info *vk.BufferCreateInfo, buffer *vk.Buffer) vk.Result {
	const op = "vkCreateBuffer"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pBuffer"), buffer != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeBufferCreateInfo)
			c.Chain(p, info.Next, vk.StructureTypeDedicatedAllocationBufferCreateInfoNV)
			checkFlags(c, p.dot("flags"), info.Flags, false)
			c.Positive(p.dot("size"), uint64(info.Size))
			checkFlags(c, p.dot("usage"), info.Usage, true)
			if nv, ok := vk.Find[*vk.DedicatedAllocationBufferCreateInfoNV](info.Next); ok {
				c.Bool(p.dot("pNext").dot("dedicatedAllocation"), nv.DedicatedAllocation)
			}
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			p := root("pCreateInfo")
			c.sharing(p, info.SharingMode, "sharingMode", "queueFamilyIndexCount", "pQueueFamilyIndices",
				info.QueueFamilyIndexCount, info.QueueFamilyIndices)

			f := &ctx.Conn.Features
			fp := p.dot("flags")
			if info.Flags&vk.BufferCreateSparseBindingBit != 0 {
				c.Capability(fp, f.SparseBinding, "sparseBinding")
			}
			if info.Flags&vk.BufferCreateSparseResidencyBit != 0 {
				c.Capability(fp, f.SparseResidencyBuffer, "sparseResidencyBuffer")
			}
			if info.Flags&vk.BufferCreateSparseAliasedBit != 0 {
				c.Capability(fp, f.SparseResidencyAliased, "sparseResidencyAliased")
			}
			sparseExtra := vk.BufferCreateSparseResidencyBit | vk.BufferCreateSparseAliasedBit
			if info.Flags&sparseExtra != 0 && info.Flags&vk.BufferCreateSparseBindingBit == 0 {
				c.Usage(fp, info.Flags, "%s requires VK_BUFFER_CREATE_SPARSE_BINDING_BIT", info.Flags)
			}
		},
	}, func() vk.Result {
		return l.next.CreateBuffer(device, info, buffer)
	})
}

// DestroyBuffer forwards; destroying VK_NULL_HANDLE is legal.
func (l *Layer) DestroyBuffer(device vk.Device, buffer vk.Buffer) vk.Result {
	const op = "vkDestroyBuffer"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{Name: op, Object: buffer}, func() vk.Result {
		return l.next.DestroyBuffer(device, buffer)
	})
}

// CreateBufferView validates the view's format and range.
func (l *Layer) CreateBufferView(device vk.Device, info *vk.BufferViewCreateInfo, view *vk.BufferView) vk.Result {
	const op = "vkCreateBufferView"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pView"), view != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeBufferViewCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			c.Handle(p.dot("buffer"), uint64(info.Buffer))
			c.Enum(p.dot("format"), info.Format)
			if info.Range != vk.WholeSize {
				c.Positive(p.dot("range"), uint64(info.Range))
			}
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			c.Aligned(root("pCreateInfo").dot("offset"), uint64(info.Offset),
				uint64(ctx.Conn.Limits.MinTexelBufferOffsetAlignment))
		},
	}, func() vk.Result {
		return l.next.CreateBufferView(device, info, view)
	})
}

// CreateImage validates the create info: every enumerant and mask, the
// extent, mip and layer counts against the image type and the connection's
// limits, sample counts, the sharing mode and the sparse flags.
func (l *Layer) CreateImage(device vk.Device, info *vk.ImageCreateInfo, image *vk.Image) vk.Result {
	const op = "vkCreateImage"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pImage"), image != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeImageCreateInfo)
			c.Chain(p, info.Next,
				vk.StructureTypeDedicatedAllocationImageCreateInfoNV,
				vk.StructureTypeImageFormatListCreateInfoKHR)
			checkFlags(c, p.dot("flags"), info.Flags, false)
			c.Enum(p.dot("imageType"), info.ImageType)
			if c.Enum(p.dot("format"), info.Format) && info.Format == vk.FormatUndefined {
				c.Usage(p.dot("format"), info.Format, "format must not be VK_FORMAT_UNDEFINED")
			}
			ep := p.dot("extent")
			c.Positive(ep.dot("width"), uint64(info.Extent.Width))
			c.Positive(ep.dot("height"), uint64(info.Extent.Height))
			c.Positive(ep.dot("depth"), uint64(info.Extent.Depth))
			c.Positive(p.dot("mipLevels"), uint64(info.MipLevels))
			c.Positive(p.dot("arrayLayers"), uint64(info.ArrayLayers))
			checkSingleBit(c, p.dot("samples"), info.Samples)
			c.Enum(p.dot("tiling"), info.Tiling)
			checkFlags(c, p.dot("usage"), info.Usage, true)
			if c.Enum(p.dot("initialLayout"), info.InitialLayout) &&
				info.InitialLayout != vk.ImageLayoutUndefined && info.InitialLayout != vk.ImageLayoutPreinitialized {
				c.Usage(p.dot("initialLayout"), info.InitialLayout,
					"initialLayout is %s, must be VK_IMAGE_LAYOUT_UNDEFINED or VK_IMAGE_LAYOUT_PREINITIALIZED", info.InitialLayout)
			}
			if nv, ok := vk.Find[*vk.DedicatedAllocationImageCreateInfoNV](info.Next); ok {
				c.Bool(p.dot("pNext").dot("dedicatedAllocation"), nv.DedicatedAllocation)
			}
			if fl, ok := vk.Find[*vk.ImageFormatListCreateInfoKHR](info.Next); ok {
				lp := p.dot("pNext")
				for i, f := range array(c, lp.dot("viewFormatCount"), lp.dot("pViewFormats"), fl.ViewFormatCount, fl.ViewFormats, false, true) {
					c.Enum(lp.dot("pViewFormats").at(i), f)
				}
			}
		},
		Pre: func(c *Checker) {
			if info != nil {
				preCreateImage(c, ctx.Conn, info)
			}
		},
	}, func() vk.Result {
		return l.next.CreateImage(device, info, image)
	})
}

func preCreateImage(c *Checker, conn *Connection, info *vk.ImageCreateInfo) {
	p := root("pCreateInfo")
	ep := p.dot("extent")
	lim := &conn.Limits
	e := info.Extent

	c.sharing(p, info.SharingMode, "sharingMode", "queueFamilyIndexCount", "pQueueFamilyIndices",
		info.QueueFamilyIndexCount, info.QueueFamilyIndices)

	cube := info.Flags&vk.ImageCreateCubeCompatibleBit != 0
	switch info.ImageType {
	case vk.ImageType1d:
		c.LessEq(ep.dot("width"), uint64(e.Width), uint64(lim.MaxImageDimension1D), "maxImageDimension1D")
		if e.Height != 1 || e.Depth != 1 {
			c.Usage(ep, e, "a 1D image must have height and depth 1")
		}
	case vk.ImageType2d:
		if cube {
			c.LessEq(ep.dot("width"), uint64(e.Width), uint64(lim.MaxImageDimensionCube), "maxImageDimensionCube")
			c.LessEq(ep.dot("height"), uint64(e.Height), uint64(lim.MaxImageDimensionCube), "maxImageDimensionCube")
		} else {
			c.LessEq(ep.dot("width"), uint64(e.Width), uint64(lim.MaxImageDimension2D), "maxImageDimension2D")
			c.LessEq(ep.dot("height"), uint64(e.Height), uint64(lim.MaxImageDimension2D), "maxImageDimension2D")
		}
		if e.Depth != 1 {
			c.Usage(ep.dot("depth"), e.Depth, "a 2D image must have depth 1")
		}
	case vk.ImageType3d:
		c.LessEq(ep.dot("width"), uint64(e.Width), uint64(lim.MaxImageDimension3D), "maxImageDimension3D")
		c.LessEq(ep.dot("height"), uint64(e.Height), uint64(lim.MaxImageDimension3D), "maxImageDimension3D")
		c.LessEq(ep.dot("depth"), uint64(e.Depth), uint64(lim.MaxImageDimension3D), "maxImageDimension3D")
		if info.ArrayLayers != 1 {
			c.Usage(p.dot("arrayLayers"), info.ArrayLayers, "a 3D image must have arrayLayers 1")
		}
	}

	if cube {
		if info.ImageType != vk.ImageType2d {
			c.Usage(p.dot("flags"), info.Flags, "VK_IMAGE_CREATE_CUBE_COMPATIBLE_BIT requires VK_IMAGE_TYPE_2D")
		}
		if e.Width != e.Height {
			c.Usage(ep, e, "a cube compatible image must be square, got %dx%d", e.Width, e.Height)
		}
		if info.ArrayLayers < 6 {
			c.Usage(p.dot("arrayLayers"), info.ArrayLayers, "a cube compatible image needs at least 6 array layers, got %d", info.ArrayLayers)
		}
	}

	if maxMips := mipLevels(e); info.MipLevels > maxMips {
		c.Fail(ruleLimit, p.dot("mipLevels"), info.MipLevels, info.MipLevels, "the mip chain of the extent", maxMips)
	}
	c.LessEq(p.dot("arrayLayers"), uint64(info.ArrayLayers), uint64(lim.MaxImageArrayLayers), "maxImageArrayLayers")

	if info.Samples != vk.SampleCount1Bit {
		if info.ImageType != vk.ImageType2d || cube || info.MipLevels != 1 || info.Tiling != vk.ImageTilingOptimal {
			c.Usage(p.dot("samples"), info.Samples,
				"a multisampled image must be a 2D, optimally tiled, non-cube image with one mip level")
		}
	}

	f := &conn.Features
	fp := p.dot("flags")
	if info.Flags&vk.ImageCreateSparseBindingBit != 0 {
		c.Capability(fp, f.SparseBinding, "sparseBinding")
	}
	if info.Flags&vk.ImageCreateSparseResidencyBit != 0 {
		switch info.ImageType {
		case vk.ImageType2d:
			c.Capability(fp, f.SparseResidencyImage2D, "sparseResidencyImage2D")
		case vk.ImageType3d:
			c.Capability(fp, f.SparseResidencyImage3D, "sparseResidencyImage3D")
		default:
			c.Usage(fp, info.Flags, "sparse residency is not supported for %s", info.ImageType)
		}
		switch info.Samples {
		case vk.SampleCount2Bit:
			c.Capability(fp, f.SparseResidency2Samples, "sparseResidency2Samples")
		case vk.SampleCount4Bit:
			c.Capability(fp, f.SparseResidency4Samples, "sparseResidency4Samples")
		case vk.SampleCount8Bit:
			c.Capability(fp, f.SparseResidency8Samples, "sparseResidency8Samples")
		case vk.SampleCount16Bit:
			c.Capability(fp, f.SparseResidency16Samples, "sparseResidency16Samples")
		}
	}
	if info.Flags&vk.ImageCreateSparseAliasedBit != 0 {
		c.Capability(fp, f.SparseResidencyAliased, "sparseResidencyAliased")
	}
	sparseExtra := vk.ImageCreateSparseResidencyBit | vk.ImageCreateSparseAliasedBit
	if info.Flags&sparseExtra != 0 && info.Flags&vk.ImageCreateSparseBindingBit == 0 {
		c.Usage(fp, info.Flags, "%s requires VK_IMAGE_CREATE_SPARSE_BINDING_BIT", info.Flags)
	}
}

// mipLevels is the length of the full mip chain of an extent.
func mipLevels(e vk.Extent3D) uint32 {
	m := max(e.Width, e.Height, e.Depth)
	if m == 0 {
		return 1
	}
	return uint32(bits.Len32(m))
}

// DestroyImage forwards; destroying VK_NULL_HANDLE is legal.
func (l *Layer) DestroyImage(device vk.Device, image vk.Image) vk.Result {
	const op = "vkDestroyImage"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{Name: op, Object: image}, func() vk.Result {
		return l.next.DestroyImage(device, image)
	})
}

// GetImageSubresourceLayout validates the subresource, which must name a
// single aspect.
func (l *Layer) GetImageSubresourceLayout(device vk.Device, image vk.Image, sub *vk.ImageSubresource, layout *vk.SubresourceLayout) vk.Result {
	const op = "vkGetImageSubresourceLayout"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: image,
		Params: func(c *Checker) {
			c.Handle(root("image"), uint64(image))
			c.Required(root("pLayout"), layout != nil)
			if c.Required(root("pSubresource"), sub != nil) {
				checkSingleBit(c, root("pSubresource").dot("aspectMask"), sub.AspectMask)
			}
		},
	}, func() vk.Result {
		return l.next.GetImageSubresourceLayout(device, image, sub, layout)
	})
}

// CreateImageView validates the view.
func (l *Layer) CreateImageView(device vk.Device, info *vk.ImageViewCreateInfo, view *vk.ImageView) vk.Result {
	const op = "vkCreateImageView"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pView"), view != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeImageViewCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			c.Handle(p.dot("image"), uint64(info.Image))
			c.Enum(p.dot("viewType"), info.ViewType)
			c.Enum(p.dot("format"), info.Format)
			cp := p.dot("components")
			c.Enum(cp.dot("r"), info.Components.R)
			c.Enum(cp.dot("g"), info.Components.G)
			c.Enum(cp.dot("b"), info.Components.B)
			c.Enum(cp.dot("a"), info.Components.A)
			subresourceRange(c, p.dot("subresourceRange"), &info.SubresourceRange)
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			p := root("pCreateInfo")
			layers := info.SubresourceRange.LayerCount
			lp := p.dot("subresourceRange").dot("layerCount")
			switch info.ViewType {
			case vk.ImageViewTypeCube:
				if layers != vk.RemainingArrayLayers && layers != 6 {
					c.Usage(lp, layers, "a cube view must have 6 layers, got %d", layers)
				}
			case vk.ImageViewTypeCubeArray:
				c.Capability(p.dot("viewType"), ctx.Conn.Features.ImageCubeArray, "imageCubeArray")
				if layers != vk.RemainingArrayLayers && layers%6 != 0 {
					c.Usage(lp, layers, "a cube array view must have a multiple of 6 layers, got %d", layers)
				}
			case vk.ImageViewType1d, vk.ImageViewType2d, vk.ImageViewType3d:
				if layers != vk.RemainingArrayLayers && layers != 1 {
					c.Usage(lp, layers, "a %s view must have 1 layer, got %d", info.ViewType, layers)
				}
			}
		},
	}, func() vk.Result {
		return l.next.CreateImageView(device, info, view)
	})
}

func subresourceRange(c *Checker, p path, r *vk.ImageSubresourceRange) {
	checkFlags(c, p.dot("aspectMask"), r.AspectMask, true)
	if r.LevelCount != vk.RemainingMipLevels {
		c.Positive(p.dot("levelCount"), uint64(r.LevelCount))
	}
	if r.LayerCount != vk.RemainingArrayLayers {
		c.Positive(p.dot("layerCount"), uint64(r.LayerCount))
	}
}

func subresourceLayers(c *Checker, p path, r *vk.ImageSubresourceLayers) {
	checkFlags(c, p.dot("aspectMask"), r.AspectMask, true)
	c.Positive(p.dot("layerCount"), uint64(r.LayerCount))
}

// CreateSampler validates the sampler state, including anisotropy, compare
// and border colour rules and the restrictions on unnormalized
// coordinates.
func (l *Layer) CreateSampler(device vk.Device, info *vk.SamplerCreateInfo, sampler *vk.Sampler) vk.Result {
	const op = "vkCreateSampler"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pSampler"), sampler != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeSamplerCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			c.Enum(p.dot("magFilter"), info.MagFilter)
			c.Enum(p.dot("minFilter"), info.MinFilter)
			c.Enum(p.dot("mipmapMode"), info.MipmapMode)
			c.Enum(p.dot("addressModeU"), info.AddressModeU)
			c.Enum(p.dot("addressModeV"), info.AddressModeV)
			c.Enum(p.dot("addressModeW"), info.AddressModeW)
			c.Bool(p.dot("anisotropyEnable"), info.AnisotropyEnable)
			c.Bool(p.dot("compareEnable"), info.CompareEnable)
			c.Bool(p.dot("unnormalizedCoordinates"), info.UnnormalizedCoordinates)
			if info.CompareEnable == vk.True {
				c.Enum(p.dot("compareOp"), info.CompareOp)
			}
			if usesBorder(info) {
				c.Enum(p.dot("borderColor"), info.BorderColor)
			}
		},
		Pre: func(c *Checker) {
			if info != nil {
				preCreateSampler(c, ctx.Conn, info)
			}
		},
	}, func() vk.Result {
		return l.next.CreateSampler(device, info, sampler)
	})
}

func usesBorder(info *vk.SamplerCreateInfo) bool {
	return info.AddressModeU == vk.SamplerAddressModeClampToBorder ||
		info.AddressModeV == vk.SamplerAddressModeClampToBorder ||
		info.AddressModeW == vk.SamplerAddressModeClampToBorder
}

func preCreateSampler(c *Checker, conn *Connection, info *vk.SamplerCreateInfo) {
	p := root("pCreateInfo")
	lim := &conn.Limits

	if info.MagFilter == vk.FilterCubicIMG {
		c.Extension(p.dot("magFilter"), vk.IMGFilterCubicExtensionName)
	}
	if info.MinFilter == vk.FilterCubicIMG {
		c.Extension(p.dot("minFilter"), vk.IMGFilterCubicExtensionName)
	}
	for _, am := range []struct {
		name string
		mode vk.SamplerAddressMode
	}{
		{"addressModeU", info.AddressModeU},
		{"addressModeV", info.AddressModeV},
		{"addressModeW", info.AddressModeW},
	} {
		if am.mode == vk.SamplerAddressModeMirrorClampToEdge {
			c.Extension(p.dot(am.name), vk.KHRSamplerMirrorClampToEdgeExtensionName)
		}
	}

	if info.AnisotropyEnable == vk.True {
		if c.Capability(p.dot("anisotropyEnable"), conn.Features.SamplerAnisotropy, "samplerAnisotropy") {
			c.RangeF(p.dot("maxAnisotropy"), info.MaxAnisotropy, 1, lim.MaxSamplerAnisotropy)
		}
	}
	c.LessEqF(p.dot("mipLodBias"), float32(math.Abs(float64(info.MipLodBias))), lim.MaxSamplerLodBias, "maxSamplerLodBias")
	if info.MaxLod < info.MinLod {
		c.Usage(p.dot("maxLod"), info.MaxLod, "maxLod %g is less than minLod %g", info.MaxLod, info.MinLod)
	}

	if info.UnnormalizedCoordinates == vk.True {
		up := p.dot("unnormalizedCoordinates")
		if info.MinFilter != info.MagFilter {
			c.Usage(up, info.UnnormalizedCoordinates, "with unnormalized coordinates minFilter and magFilter must be equal")
		}
		if info.MipmapMode != vk.SamplerMipmapModeNearest {
			c.Usage(up, info.UnnormalizedCoordinates, "with unnormalized coordinates mipmapMode must be VK_SAMPLER_MIPMAP_MODE_NEAREST")
		}
		if info.MinLod != 0 || info.MaxLod != 0 {
			c.Usage(up, info.UnnormalizedCoordinates, "with unnormalized coordinates minLod and maxLod must be 0")
		}
		if !clampMode(info.AddressModeU) || !clampMode(info.AddressModeV) {
			c.Usage(up, info.UnnormalizedCoordinates, "with unnormalized coordinates addressModeU and addressModeV must clamp")
		}
		if info.AnisotropyEnable == vk.True {
			c.Usage(up, info.UnnormalizedCoordinates, "with unnormalized coordinates anisotropyEnable must be VK_FALSE")
		}
		if info.CompareEnable == vk.True {
			c.Usage(up, info.UnnormalizedCoordinates, "with unnormalized coordinates compareEnable must be VK_FALSE")
		}
	}
}

func clampMode(m vk.SamplerAddressMode) bool {
	return m == vk.SamplerAddressModeClampToEdge || m == vk.SamplerAddressModeClampToBorder
}
