package layer

import "github.com/wippyai/vk-validation/vk"

// CreateDescriptorSetLayout validates the bindings.
func (l *Layer) CreateDescriptorSetLayout(device vk.Device, info *vk.DescriptorSetLayoutCreateInfo, layout *vk.DescriptorSetLayout) vk.Result {
	const op = "vkCreateDescriptorSetLayout"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pSetLayout"), layout != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeDescriptorSetLayoutCreateInfo)
			c.Chain(p, info.Next)
			checkFlags(c, p.dot("flags"), info.Flags, false)
			bp := p.dot("pBindings")
			seen := make(map[uint32]bool)
			for i := range array(c, p.dot("bindingCount"), bp, info.BindingCount, info.Bindings, false, true) {
				b := &info.Bindings[i]
				ip := bp.at(i)
				if seen[b.Binding] {
					c.Usage(ip.dot("binding"), b.Binding, "binding %d appears more than once", b.Binding)
				}
				seen[b.Binding] = true
				c.Enum(ip.dot("descriptorType"), b.DescriptorType)
				if b.DescriptorCount == 0 {
					continue
				}
				checkStages(c, ip.dot("stageFlags"), b.StageFlags)
				if b.DescriptorType == vk.DescriptorTypeSampler || b.DescriptorType == vk.DescriptorTypeCombinedImageSampler {
					for j, s := range elems(b.DescriptorCount, b.ImmutableSamplers) {
						c.Handle(ip.dot("pImmutableSamplers").at(j), uint64(s))
					}
					if b.ImmutableSamplers != nil && uint32(len(b.ImmutableSamplers)) < b.DescriptorCount {
						c.Fail(ruleArrayLength, ip.dot("pImmutableSamplers"), len(b.ImmutableSamplers),
							"pImmutableSamplers", len(b.ImmutableSamplers), b.DescriptorCount)
					}
				}
			}
		},
	}, func() vk.Result {
		return l.next.CreateDescriptorSetLayout(device, info, layout)
	})
}

// CreateDescriptorPool validates pool sizes.
func (l *Layer) CreateDescriptorPool(device vk.Device, info *vk.DescriptorPoolCreateInfo, pool *vk.DescriptorPool) vk.Result {
	const op = "vkCreateDescriptorPool"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pDescriptorPool"), pool != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeDescriptorPoolCreateInfo)
			c.Chain(p, info.Next)
			checkFlags(c, p.dot("flags"), info.Flags, false)
			c.Positive(p.dot("maxSets"), uint64(info.MaxSets))
			sp := p.dot("pPoolSizes")
			for i, s := range array(c, p.dot("poolSizeCount"), sp, info.PoolSizeCount, info.PoolSizes, true, true) {
				c.Enum(sp.at(i).dot("type"), s.Type)
				c.Positive(sp.at(i).dot("descriptorCount"), uint64(s.DescriptorCount))
			}
		},
	}, func() vk.Result {
		return l.next.CreateDescriptorPool(device, info, pool)
	})
}

// AllocateDescriptorSets validates the allocate info and output array.
func (l *Layer) AllocateDescriptorSets(device vk.Device, info *vk.DescriptorSetAllocateInfo, sets []vk.DescriptorSet) vk.Result {
	const op = "vkAllocateDescriptorSets"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			p := root("pAllocateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeDescriptorSetAllocateInfo)
			c.Chain(p, info.Next)
			c.Handle(p.dot("descriptorPool"), uint64(info.DescriptorPool))
			lp := p.dot("pSetLayouts")
			for i, sl := range array(c, p.dot("descriptorSetCount"), lp, info.DescriptorSetCount, info.SetLayouts, true, true) {
				c.Handle(lp.at(i), uint64(sl))
			}
			array(c, p.dot("descriptorSetCount"), root("pDescriptorSets"), info.DescriptorSetCount, sets, false, true)
		},
	}, func() vk.Result {
		return l.next.AllocateDescriptorSets(device, info, sets)
	})
}

// FreeDescriptorSets validates the set array.
func (l *Layer) FreeDescriptorSets(device vk.Device, pool vk.DescriptorPool, count uint32, sets []vk.DescriptorSet) vk.Result {
	const op = "vkFreeDescriptorSets"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pool,
		Params: func(c *Checker) {
			c.Handle(root("descriptorPool"), uint64(pool))
			array(c, root("descriptorSetCount"), root("pDescriptorSets"), count, sets, true, true)
		},
	}, func() vk.Result {
		return l.next.FreeDescriptorSets(device, pool, count, sets)
	})
}

// UpdateDescriptorSets validates writes against their descriptor types and
// the connection's buffer offset alignments, and copies structurally.
func (l *Layer) UpdateDescriptorSets(device vk.Device, writeCount uint32, writes []vk.WriteDescriptorSet,
	copyCount uint32, copies []vk.CopyDescriptorSet) vk.Result {
	const op = "vkUpdateDescriptorSets"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			wp := root("pDescriptorWrites")
			for i := range array(c, root("descriptorWriteCount"), wp, writeCount, writes, false, true) {
				writeDescriptor(c, ctx.Conn, wp.at(i), &writes[i])
			}
			cp := root("pDescriptorCopies")
			for i := range array(c, root("descriptorCopyCount"), cp, copyCount, copies, false, true) {
				cd := &copies[i]
				ip := cp.at(i)
				c.SType(ip, cd.SType, vk.StructureTypeCopyDescriptorSet)
				c.Chain(ip, cd.Next)
				c.Handle(ip.dot("srcSet"), uint64(cd.SrcSet))
				c.Handle(ip.dot("dstSet"), uint64(cd.DstSet))
			}
		},
	}, func() vk.Result {
		return l.next.UpdateDescriptorSets(device, writeCount, writes, copyCount, copies)
	})
}

func writeDescriptor(c *Checker, conn *Connection, p path, w *vk.WriteDescriptorSet) {
	c.SType(p, w.SType, vk.StructureTypeWriteDescriptorSet)
	c.Chain(p, w.Next)
	c.Handle(p.dot("dstSet"), uint64(w.DstSet))
	c.Positive(p.dot("descriptorCount"), uint64(w.DescriptorCount))
	if !c.Enum(p.dot("descriptorType"), w.DescriptorType) {
		return
	}
	lim := &conn.Limits
	switch w.DescriptorType {
	case vk.DescriptorTypeSampler, vk.DescriptorTypeCombinedImageSampler, vk.DescriptorTypeSampledImage,
		vk.DescriptorTypeStorageImage, vk.DescriptorTypeInputAttachment:
		ip := p.dot("pImageInfo")
		for i, ii := range array(c, p.dot("descriptorCount"), ip, w.DescriptorCount, w.ImageInfo, false, true) {
			if w.DescriptorType != vk.DescriptorTypeSampler {
				c.Handle(ip.at(i).dot("imageView"), uint64(ii.ImageView))
				c.Enum(ip.at(i).dot("imageLayout"), ii.ImageLayout)
			}
			if w.DescriptorType == vk.DescriptorTypeSampler || w.DescriptorType == vk.DescriptorTypeCombinedImageSampler {
				c.Handle(ip.at(i).dot("sampler"), uint64(ii.Sampler))
			}
		}
	case vk.DescriptorTypeUniformTexelBuffer, vk.DescriptorTypeStorageTexelBuffer:
		tp := p.dot("pTexelBufferView")
		for i, v := range array(c, p.dot("descriptorCount"), tp, w.DescriptorCount, w.TexelBufferViews, false, true) {
			c.Handle(tp.at(i), uint64(v))
		}
	default:
		align := lim.MinStorageBufferOffsetAlignment
		maxRange := lim.MaxStorageBufferRange
		limitName := "maxStorageBufferRange"
		if w.DescriptorType == vk.DescriptorTypeUniformBuffer || w.DescriptorType == vk.DescriptorTypeUniformBufferDynamic {
			align, maxRange, limitName = lim.MinUniformBufferOffsetAlignment, lim.MaxUniformBufferRange, "maxUniformBufferRange"
		}
		bp := p.dot("pBufferInfo")
		for i, bi := range array(c, p.dot("descriptorCount"), bp, w.DescriptorCount, w.BufferInfo, false, true) {
			ip := bp.at(i)
			c.Handle(ip.dot("buffer"), uint64(bi.Buffer))
			c.Aligned(ip.dot("offset"), uint64(bi.Offset), uint64(align))
			if bi.Range != vk.WholeSize {
				if c.Positive(ip.dot("range"), uint64(bi.Range)) {
					c.LessEq(ip.dot("range"), uint64(bi.Range), uint64(maxRange), limitName)
				}
			}
		}
	}
}
