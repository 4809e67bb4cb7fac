package layer

import (
	"github.com/wippyai/vk-validation/tracker"
	"github.com/wippyai/vk-validation/vk"
)

const spirvMagic = 0x07230203

// CreateShaderModule validates the code size and the SPIR-V header word.
func (l *Layer) CreateShaderModule(device vk.Device, info *vk.ShaderModuleCreateInfo, module *vk.ShaderModule) vk.Result {
	const op = "vkCreateShaderModule"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pShaderModule"), module != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeShaderModuleCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			if c.Positive(p.dot("codeSize"), info.CodeSize) {
				c.Aligned(p.dot("codeSize"), info.CodeSize, 4)
			}
			if c.Required(p.dot("pCode"), info.Code != nil) && uint64(len(info.Code))*4 < info.CodeSize {
				c.Fail(ruleArrayLength, p.dot("pCode"), len(info.Code), "pCode", len(info.Code), info.CodeSize/4)
			}
		},
		Pre: func(c *Checker) {
			if info != nil && len(info.Code) > 0 && info.Code[0] != spirvMagic {
				c.Usage(root("pCreateInfo").dot("pCode"), info.Code[0], "pCode does not start with the SPIR-V magic number")
			}
		},
	}, func() vk.Result {
		return l.next.CreateShaderModule(device, info, module)
	})
}

// CreatePipelineCache validates the initial data.
func (l *Layer) CreatePipelineCache(device vk.Device, info *vk.PipelineCacheCreateInfo, cache *vk.PipelineCache) vk.Result {
	const op = "vkCreatePipelineCache"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pPipelineCache"), cache != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypePipelineCacheCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			if info.InitialDataSize > 0 && c.Required(p.dot("pInitialData"), info.InitialData != nil) &&
				uint64(len(info.InitialData)) < info.InitialDataSize {
				c.Fail(ruleArrayLength, p.dot("pInitialData"), len(info.InitialData),
					"pInitialData", len(info.InitialData), info.InitialDataSize)
			}
		},
	}, func() vk.Result {
		return l.next.CreatePipelineCache(device, info, cache)
	})
}

// CreatePipelineLayout validates set layouts and push constant ranges
// against the connection's limits.
func (l *Layer) CreatePipelineLayout(device vk.Device, info *vk.PipelineLayoutCreateInfo, layout *vk.PipelineLayout) vk.Result {
	const op = "vkCreatePipelineLayout"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pPipelineLayout"), layout != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypePipelineLayoutCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			for i, sl := range array(c, p.dot("setLayoutCount"), p.dot("pSetLayouts"), info.SetLayoutCount, info.SetLayouts, false, true) {
				c.Handle(p.dot("pSetLayouts").at(i), uint64(sl))
			}
			rp := p.dot("pPushConstantRanges")
			for i := range array(c, p.dot("pushConstantRangeCount"), rp, info.PushConstantRangeCount, info.PushConstantRanges, false, true) {
				r := &info.PushConstantRanges[i]
				checkStages(c, rp.at(i).dot("stageFlags"), r.StageFlags)
				c.Aligned(rp.at(i).dot("offset"), uint64(r.Offset), 4)
				if c.Positive(rp.at(i).dot("size"), uint64(r.Size)) {
					c.Aligned(rp.at(i).dot("size"), uint64(r.Size), 4)
				}
			}
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			p := root("pCreateInfo")
			lim := &ctx.Conn.Limits
			c.LessEq(p.dot("setLayoutCount"), uint64(info.SetLayoutCount), uint64(lim.MaxBoundDescriptorSets), "maxBoundDescriptorSets")
			for i, r := range elems(info.PushConstantRangeCount, info.PushConstantRanges) {
				ip := p.dot("pPushConstantRanges").at(i)
				c.Less(ip.dot("offset"), uint64(r.Offset), uint64(lim.MaxPushConstantsSize), "maxPushConstantsSize")
				c.LessEq(ip.dot("size"), uint64(r.Offset)+uint64(r.Size), uint64(lim.MaxPushConstantsSize), "maxPushConstantsSize")
			}
		},
	}, func() vk.Result {
		return l.next.CreatePipelineLayout(device, info, layout)
	})
}

// DestroyPipeline forwards; destroying VK_NULL_HANDLE is legal.
func (l *Layer) DestroyPipeline(device vk.Device, pipeline vk.Pipeline) vk.Result {
	const op = "vkDestroyPipeline"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{Name: op, Object: pipeline}, func() vk.Result {
		return l.next.DestroyPipeline(device, pipeline)
	})
}

// shaderStage checks the structure of one stage: a single stage bit, a
// module and a well-formed entry point name.
func shaderStage(c *Checker, p path, s *vk.PipelineShaderStageCreateInfo) {
	c.SType(p, s.SType, vk.StructureTypePipelineShaderStageCreateInfo)
	c.Chain(p, s.Next)
	c.Reserved(p.dot("flags"), s.Flags)
	checkSingleBit(c, p.dot("stage"), s.Stage)
	c.Handle(p.dot("module"), uint64(s.Module))
	if s.Name == "" {
		c.Fail(ruleRequired, p.dot("pName"), nil, p.dot("pName").String())
	} else {
		c.String(p.dot("pName"), s.Name)
	}
	if si := s.SpecializationInfo; si != nil {
		sp := p.dot("pSpecializationInfo")
		entries := array(c, sp.dot("mapEntryCount"), sp.dot("pMapEntries"), si.MapEntryCount, si.MapEntries, false, true)
		if si.DataSize > 0 && c.Required(sp.dot("pData"), si.Data != nil) && uint64(len(si.Data)) < si.DataSize {
			c.Fail(ruleArrayLength, sp.dot("pData"), len(si.Data), "pData", len(si.Data), si.DataSize)
		}
		for i, e := range entries {
			if uint64(e.Offset)+e.Size > si.DataSize {
				c.Usage(sp.dot("pMapEntries").at(i), e, "entry [%d, %d) lies outside dataSize %d",
					e.Offset, uint64(e.Offset)+e.Size, si.DataSize)
			}
		}
	}
}

// derivatives checks the base pipeline of element i of a batch.
func derivatives(c *Checker, p path, i int, flags vk.PipelineCreateFlags, handle vk.Pipeline, index int32,
	baseFlags func(int) vk.PipelineCreateFlags) {
	if flags&vk.PipelineCreateDerivativeBit == 0 {
		return
	}
	switch {
	case handle != 0 && index != -1:
		c.Fail(ruleDerivativeBoth, p.dot("basePipelineIndex"), index)
	case handle == 0 && index == -1:
		c.Fail(ruleDerivativeNeither, p.dot("basePipelineIndex"), index)
	case handle == 0 && (index < 0 || int(index) >= i):
		c.Fail(ruleDerivativeIndex, p.dot("basePipelineIndex"), index, index)
	case handle == 0 && baseFlags(int(index))&vk.PipelineCreateAllowDerivativesBit == 0:
		c.Fail(ruleDerivativeAllow, p.dot("basePipelineIndex"), index, index)
	}
}

// CreateGraphicsPipelines validates each create info. The color blend and
// depth/stencil states are field-validated only when the subpass they are
// bound to uses the corresponding attachment kind; an untracked render pass
// gets full validation.
func (l *Layer) CreateGraphicsPipelines(device vk.Device, cache vk.PipelineCache, count uint32,
	infos []vk.GraphicsPipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	const op = "vkCreateGraphicsPipelines"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			array(c, root("createInfoCount"), root("pPipelines"), count, pipelines, false, true)
			ip := root("pCreateInfos")
			for i := range array(c, root("createInfoCount"), ip, count, infos, true, true) {
				graphicsParams(c, ip.at(i), &infos[i])
			}
		},
		Pre: func(c *Checker) {
			list := elems(count, infos)
			for i := range list {
				info := &list[i]
				p := root("pCreateInfos").at(i)
				derivatives(c, p, i, info.Flags, info.BasePipelineHandle, info.BasePipelineIndex,
					func(j int) vk.PipelineCreateFlags { return list[j].Flags })
				l.preGraphics(c, ctx.Conn, p, info)
			}
		},
	}, func() vk.Result {
		return l.next.CreateGraphicsPipelines(device, cache, count, infos, pipelines)
	})
}

// graphicsParams runs the structural checks that do not depend on other
// fields of the create info.
func graphicsParams(c *Checker, p path, info *vk.GraphicsPipelineCreateInfo) {
	c.SType(p, info.SType, vk.StructureTypeGraphicsPipelineCreateInfo)
	c.Chain(p, info.Next)
	checkFlags(c, p.dot("flags"), info.Flags, false)
	sp := p.dot("pStages")
	for i := range array(c, p.dot("stageCount"), sp, info.StageCount, info.Stages, true, true) {
		shaderStage(c, sp.at(i), &info.Stages[i])
	}
	c.Handle(p.dot("layout"), uint64(info.Layout))
	c.Handle(p.dot("renderPass"), uint64(info.RenderPass))

	if vi := info.VertexInputState; c.Required(p.dot("pVertexInputState"), vi != nil) {
		vp := p.dot("pVertexInputState")
		c.SType(vp, vi.SType, vk.StructureTypePipelineVertexInputStateCreateInfo)
		c.Chain(vp, vi.Next)
		c.Reserved(vp.dot("flags"), vi.Flags)
		bp := vp.dot("pVertexBindingDescriptions")
		for i, b := range array(c, vp.dot("vertexBindingDescriptionCount"), bp, vi.VertexBindingDescriptionCount, vi.VertexBindingDescriptions, false, true) {
			c.Enum(bp.at(i).dot("inputRate"), b.InputRate)
		}
		ap := vp.dot("pVertexAttributeDescriptions")
		for i, a := range array(c, vp.dot("vertexAttributeDescriptionCount"), ap, vi.VertexAttributeDescriptionCount, vi.VertexAttributeDescriptions, false, true) {
			c.Enum(ap.at(i).dot("format"), a.Format)
		}
	}
	if ia := info.InputAssemblyState; c.Required(p.dot("pInputAssemblyState"), ia != nil) {
		ap := p.dot("pInputAssemblyState")
		c.SType(ap, ia.SType, vk.StructureTypePipelineInputAssemblyStateCreateInfo)
		c.Chain(ap, ia.Next)
		c.Reserved(ap.dot("flags"), ia.Flags)
		c.Enum(ap.dot("topology"), ia.Topology)
		c.Bool(ap.dot("primitiveRestartEnable"), ia.PrimitiveRestartEnable)
	}
	if rs := info.RasterizationState; c.Required(p.dot("pRasterizationState"), rs != nil) {
		rp := p.dot("pRasterizationState")
		c.SType(rp, rs.SType, vk.StructureTypePipelineRasterizationStateCreateInfo)
		c.Chain(rp, rs.Next)
		c.Reserved(rp.dot("flags"), rs.Flags)
		c.Bool(rp.dot("depthClampEnable"), rs.DepthClampEnable)
		c.Bool(rp.dot("rasterizerDiscardEnable"), rs.RasterizerDiscardEnable)
		c.Enum(rp.dot("polygonMode"), rs.PolygonMode)
		checkFlags(c, rp.dot("cullMode"), rs.CullMode, false)
		c.Enum(rp.dot("frontFace"), rs.FrontFace)
		c.Bool(rp.dot("depthBiasEnable"), rs.DepthBiasEnable)
	}
	if ds := info.DynamicState; ds != nil {
		dp := p.dot("pDynamicState")
		c.SType(dp, ds.SType, vk.StructureTypePipelineDynamicStateCreateInfo)
		c.Chain(dp, ds.Next)
		c.Reserved(dp.dot("flags"), ds.Flags)
		seen := make(map[vk.DynamicState]bool)
		for i, s := range array(c, dp.dot("dynamicStateCount"), dp.dot("pDynamicStates"), ds.DynamicStateCount, ds.DynamicStates, false, true) {
			sp := dp.dot("pDynamicStates").at(i)
			if c.Enum(sp, s) && seen[s] {
				c.Usage(sp, s, "%s appears more than once", s)
			}
			seen[s] = true
		}
	}
}

type stageSet struct {
	mask       vk.ShaderStageFlags
	tessellate bool
}

func (s stageSet) has(bit vk.ShaderStageFlags) bool { return s.mask&bit != 0 }

func (l *Layer) preGraphics(c *Checker, conn *Connection, p path, info *vk.GraphicsPipelineCreateInfo) {
	f := &conn.Features
	lim := &conn.Limits

	var stages stageSet
	for i, s := range elems(info.StageCount, info.Stages) {
		sp := p.dot("pStages").at(i).dot("stage")
		if stages.has(s.Stage) {
			c.Usage(sp, s.Stage, "%s appears in more than one stage", s.Stage)
		}
		stages.mask |= s.Stage
		switch s.Stage {
		case vk.ShaderStageGeometryBit:
			c.Capability(sp, f.GeometryShader, "geometryShader")
		case vk.ShaderStageTessellationControlBit, vk.ShaderStageTessellationEvaluationBit:
			c.Capability(sp, f.TessellationShader, "tessellationShader")
		case vk.ShaderStageComputeBit:
			c.Usage(sp, s.Stage, "a graphics pipeline must not have a compute stage")
		}
	}
	if info.StageCount > 0 && !stages.has(vk.ShaderStageVertexBit) {
		c.Usage(p.dot("pStages"), stages.mask, "a graphics pipeline must have a vertex stage")
	}
	tc, te := stages.has(vk.ShaderStageTessellationControlBit), stages.has(vk.ShaderStageTessellationEvaluationBit)
	if tc != te {
		c.Usage(p.dot("pStages"), stages.mask, "tessellation control and evaluation stages must be given together")
	}
	stages.tessellate = tc && te

	dynamic := make(map[vk.DynamicState]bool)
	if ds := info.DynamicState; ds != nil {
		for _, s := range elems(ds.DynamicStateCount, ds.DynamicStates) {
			dynamic[s] = true
		}
	}

	if vi := info.VertexInputState; vi != nil {
		vp := p.dot("pVertexInputState")
		c.LessEq(vp.dot("vertexBindingDescriptionCount"), uint64(vi.VertexBindingDescriptionCount),
			uint64(lim.MaxVertexInputBindings), "maxVertexInputBindings")
		for i, b := range elems(vi.VertexBindingDescriptionCount, vi.VertexBindingDescriptions) {
			bp := vp.dot("pVertexBindingDescriptions").at(i)
			c.Less(bp.dot("binding"), uint64(b.Binding), uint64(lim.MaxVertexInputBindings), "maxVertexInputBindings")
			c.LessEq(bp.dot("stride"), uint64(b.Stride), uint64(lim.MaxVertexInputBindingStride), "maxVertexInputBindingStride")
		}
		c.LessEq(vp.dot("vertexAttributeDescriptionCount"), uint64(vi.VertexAttributeDescriptionCount),
			uint64(lim.MaxVertexInputAttributes), "maxVertexInputAttributes")
		for i, a := range elems(vi.VertexAttributeDescriptionCount, vi.VertexAttributeDescriptions) {
			ap := vp.dot("pVertexAttributeDescriptions").at(i)
			c.Less(ap.dot("location"), uint64(a.Location), uint64(lim.MaxVertexInputAttributes), "maxVertexInputAttributes")
			c.Less(ap.dot("binding"), uint64(a.Binding), uint64(lim.MaxVertexInputBindings), "maxVertexInputBindings")
			c.LessEq(ap.dot("offset"), uint64(a.Offset), uint64(lim.MaxVertexInputAttributeOffset), "maxVertexInputAttributeOffset")
		}
	}

	if ia := info.InputAssemblyState; ia != nil {
		tp := p.dot("pInputAssemblyState").dot("topology")
		if ia.PrimitiveRestartEnable == vk.True && listTopology(ia.Topology) {
			c.Usage(p.dot("pInputAssemblyState").dot("primitiveRestartEnable"), ia.PrimitiveRestartEnable,
				"primitive restart is not allowed with %s", ia.Topology)
		}
		if adjacencyTopology(ia.Topology) {
			c.Capability(tp, f.GeometryShader, "geometryShader")
		}
		if (ia.Topology == vk.PrimitiveTopologyPatchList) != stages.tessellate {
			c.Usage(tp, ia.Topology, "VK_PRIMITIVE_TOPOLOGY_PATCH_LIST must be used exactly when tessellation stages are present")
		}
	}

	if stages.tessellate {
		tsp := p.dot("pTessellationState")
		if ts := info.TessellationState; c.Required(tsp, ts != nil) {
			c.SType(tsp, ts.SType, vk.StructureTypePipelineTessellationStateCreateInfo)
			c.Chain(tsp, ts.Next)
			c.Reserved(tsp.dot("flags"), ts.Flags)
			if c.Positive(tsp.dot("patchControlPoints"), uint64(ts.PatchControlPoints)) {
				c.LessEq(tsp.dot("patchControlPoints"), uint64(ts.PatchControlPoints),
					uint64(lim.MaxTessellationPatchSize), "maxTessellationPatchSize")
			}
		}
	}

	discard := info.RasterizationState != nil && info.RasterizationState.RasterizerDiscardEnable == vk.True
	if rs := info.RasterizationState; rs != nil {
		rp := p.dot("pRasterizationState")
		if rs.DepthClampEnable == vk.True {
			c.Capability(rp.dot("depthClampEnable"), f.DepthClamp, "depthClamp")
		}
		if rs.PolygonMode != vk.PolygonModeFill && rs.PolygonMode.IsValid() {
			c.Capability(rp.dot("polygonMode"), f.FillModeNonSolid, "fillModeNonSolid")
		}
		if !dynamic[vk.DynamicStateLineWidth] && rs.LineWidth != 1.0 {
			c.Capability(rp.dot("lineWidth"), f.WideLines, "wideLines")
		}
		if rs.DepthBiasEnable == vk.True && !dynamic[vk.DynamicStateDepthBias] && rs.DepthBiasClamp != 0 {
			c.Capability(rp.dot("depthBiasClamp"), f.DepthBiasClamp, "depthBiasClamp")
		}
	}

	if !discard {
		viewportState(c, conn, p, info.ViewportState, dynamic)
		multisampleState(c, conn, p, info.MultisampleState)
	}

	var usage tracker.SubpassUsage
	var tracked bool
	var subpasses uint32
	_ = l.state.Do(func(*Tx) error {
		subpasses, tracked = conn.RenderPasses.SubpassCount(info.RenderPass)
		usage, _ = conn.RenderPasses.Lookup(info.RenderPass, info.Subpass)
		return nil
	})
	if tracked && info.Subpass >= subpasses {
		c.Usage(p.dot("subpass"), info.Subpass, "subpass %d is not less than the %d subpasses of the render pass",
			info.Subpass, subpasses)
		tracked = false
	}

	dsp := p.dot("pDepthStencilState")
	if ds := info.DepthStencilState; ds != nil {
		c.SType(dsp, ds.SType, vk.StructureTypePipelineDepthStencilStateCreateInfo)
		c.Chain(dsp, ds.Next)
		if !tracked || usage.DepthStencil {
			depthStencilState(c, conn, dsp, ds)
		}
	} else if tracked && usage.DepthStencil && !discard {
		c.Required(dsp, false)
	}

	cbp := p.dot("pColorBlendState")
	if cb := info.ColorBlendState; cb != nil {
		c.SType(cbp, cb.SType, vk.StructureTypePipelineColorBlendStateCreateInfo)
		c.Chain(cbp, cb.Next)
		if !tracked || usage.Color {
			colorBlendState(c, conn, cbp, cb)
		}
	} else if tracked && usage.Color && !discard {
		c.Required(cbp, false)
	}
}

func listTopology(t vk.PrimitiveTopology) bool {
	switch t {
	case vk.PrimitiveTopologyPointList, vk.PrimitiveTopologyLineList, vk.PrimitiveTopologyTriangleList,
		vk.PrimitiveTopologyLineListWithAdjacency, vk.PrimitiveTopologyTriangleListWithAdjacency,
		vk.PrimitiveTopologyPatchList:
		return true
	}
	return false
}

func adjacencyTopology(t vk.PrimitiveTopology) bool {
	switch t {
	case vk.PrimitiveTopologyLineListWithAdjacency, vk.PrimitiveTopologyLineStripWithAdjacency,
		vk.PrimitiveTopologyTriangleListWithAdjacency, vk.PrimitiveTopologyTriangleStripWithAdjacency:
		return true
	}
	return false
}

func viewportState(c *Checker, conn *Connection, p path, vs *vk.PipelineViewportStateCreateInfo, dynamic map[vk.DynamicState]bool) {
	vp := p.dot("pViewportState")
	if !c.Required(vp, vs != nil) {
		return
	}
	c.SType(vp, vs.SType, vk.StructureTypePipelineViewportStateCreateInfo)
	c.Chain(vp, vs.Next)
	c.Reserved(vp.dot("flags"), vs.Flags)

	array(c, vp.dot("viewportCount"), vp.dot("pViewports"), vs.ViewportCount, vs.Viewports, true, !dynamic[vk.DynamicStateViewport])
	array(c, vp.dot("scissorCount"), vp.dot("pScissors"), vs.ScissorCount, vs.Scissors, true, !dynamic[vk.DynamicStateScissor])
	viewportCount(c, conn, vp.dot("viewportCount"), vs.ViewportCount)
	viewportCount(c, conn, vp.dot("scissorCount"), vs.ScissorCount)
	if vs.ScissorCount != vs.ViewportCount {
		c.Usage(vp.dot("scissorCount"), vs.ScissorCount, "scissorCount %d must equal viewportCount %d",
			vs.ScissorCount, vs.ViewportCount)
	}
}

// viewportCount checks a viewport or scissor count against multiViewport
// and maxViewports.
func viewportCount(c *Checker, conn *Connection, p path, n uint32) {
	if n > 1 {
		c.Capability(p, conn.Features.MultiViewport, "multiViewport")
	}
	c.LessEq(p, uint64(n), uint64(conn.Limits.MaxViewports), "maxViewports")
}

func multisampleState(c *Checker, conn *Connection, p path, ms *vk.PipelineMultisampleStateCreateInfo) {
	mp := p.dot("pMultisampleState")
	if !c.Required(mp, ms != nil) {
		return
	}
	f := &conn.Features
	c.SType(mp, ms.SType, vk.StructureTypePipelineMultisampleStateCreateInfo)
	c.Chain(mp, ms.Next)
	c.Reserved(mp.dot("flags"), ms.Flags)
	c.Bool(mp.dot("sampleShadingEnable"), ms.SampleShadingEnable)
	c.Bool(mp.dot("alphaToCoverageEnable"), ms.AlphaToCoverageEnable)
	c.Bool(mp.dot("alphaToOneEnable"), ms.AlphaToOneEnable)
	if checkSingleBit(c, mp.dot("rasterizationSamples"), ms.RasterizationSamples) && ms.SampleMask != nil {
		words := (uint32(ms.RasterizationSamples) + 31) / 32
		if uint32(len(ms.SampleMask)) < words {
			c.Fail(ruleArrayLength, mp.dot("pSampleMask"), len(ms.SampleMask), "pSampleMask", len(ms.SampleMask), words)
		}
	}
	if ms.SampleShadingEnable == vk.True {
		c.Capability(mp.dot("sampleShadingEnable"), f.SampleRateShading, "sampleRateShading")
		c.Range01(mp.dot("minSampleShading"), ms.MinSampleShading)
	}
	if ms.AlphaToOneEnable == vk.True {
		c.Capability(mp.dot("alphaToOneEnable"), f.AlphaToOne, "alphaToOne")
	}
}

func depthStencilState(c *Checker, conn *Connection, p path, ds *vk.PipelineDepthStencilStateCreateInfo) {
	c.Reserved(p.dot("flags"), ds.Flags)
	c.Bool(p.dot("depthTestEnable"), ds.DepthTestEnable)
	c.Bool(p.dot("depthWriteEnable"), ds.DepthWriteEnable)
	c.Enum(p.dot("depthCompareOp"), ds.DepthCompareOp)
	c.Bool(p.dot("depthBoundsTestEnable"), ds.DepthBoundsTestEnable)
	c.Bool(p.dot("stencilTestEnable"), ds.StencilTestEnable)
	stencilOpState(c, p.dot("front"), &ds.Front)
	stencilOpState(c, p.dot("back"), &ds.Back)
	if ds.DepthBoundsTestEnable == vk.True {
		c.Capability(p.dot("depthBoundsTestEnable"), conn.Features.DepthBounds, "depthBounds")
	}
}

func stencilOpState(c *Checker, p path, s *vk.StencilOpState) {
	c.Enum(p.dot("failOp"), s.FailOp)
	c.Enum(p.dot("passOp"), s.PassOp)
	c.Enum(p.dot("depthFailOp"), s.DepthFailOp)
	c.Enum(p.dot("compareOp"), s.CompareOp)
}

func colorBlendState(c *Checker, conn *Connection, p path, cb *vk.PipelineColorBlendStateCreateInfo) {
	f := &conn.Features
	c.Reserved(p.dot("flags"), cb.Flags)
	if c.Bool(p.dot("logicOpEnable"), cb.LogicOpEnable) && cb.LogicOpEnable == vk.True {
		c.Capability(p.dot("logicOpEnable"), f.LogicOp, "logicOp")
		c.Enum(p.dot("logicOp"), cb.LogicOp)
	}
	ap := p.dot("pAttachments")
	atts := array(c, p.dot("attachmentCount"), ap, cb.AttachmentCount, cb.Attachments, false, true)
	for i := range atts {
		a := &atts[i]
		bp := ap.at(i)
		c.Bool(bp.dot("blendEnable"), a.BlendEnable)
		for _, bf := range []struct {
			name string
			v    vk.BlendFactor
		}{
			{"srcColorBlendFactor", a.SrcColorBlendFactor},
			{"dstColorBlendFactor", a.DstColorBlendFactor},
			{"srcAlphaBlendFactor", a.SrcAlphaBlendFactor},
			{"dstAlphaBlendFactor", a.DstAlphaBlendFactor},
		} {
			if c.Enum(bp.dot(bf.name), bf.v) && a.BlendEnable == vk.True && dualSource(bf.v) {
				c.Capability(bp.dot(bf.name), f.DualSrcBlend, "dualSrcBlend")
			}
		}
		c.Enum(bp.dot("colorBlendOp"), a.ColorBlendOp)
		c.Enum(bp.dot("alphaBlendOp"), a.AlphaBlendOp)
		checkFlags(c, bp.dot("colorWriteMask"), a.ColorWriteMask, false)
		if i > 0 && !f.IndependentBlend.Bool() && *a != atts[0] {
			c.Fail(ruleFeature, bp, nil, "independentBlend")
		}
	}
}

func dualSource(f vk.BlendFactor) bool {
	switch f {
	case vk.BlendFactorSrc1Color, vk.BlendFactorOneMinusSrc1Color,
		vk.BlendFactorSrc1Alpha, vk.BlendFactorOneMinusSrc1Alpha:
		return true
	}
	return false
}

// CreateComputePipelines validates each create info; the stage must be
// the compute stage.
func (l *Layer) CreateComputePipelines(device vk.Device, cache vk.PipelineCache, count uint32,
	infos []vk.ComputePipelineCreateInfo, pipelines []vk.Pipeline) vk.Result {
	const op = "vkCreateComputePipelines"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			array(c, root("createInfoCount"), root("pPipelines"), count, pipelines, false, true)
			ip := root("pCreateInfos")
			for i := range array(c, root("createInfoCount"), ip, count, infos, true, true) {
				info := &infos[i]
				p := ip.at(i)
				c.SType(p, info.SType, vk.StructureTypeComputePipelineCreateInfo)
				c.Chain(p, info.Next)
				checkFlags(c, p.dot("flags"), info.Flags, false)
				shaderStage(c, p.dot("stage"), &info.Stage)
				c.Handle(p.dot("layout"), uint64(info.Layout))
			}
		},
		Pre: func(c *Checker) {
			list := elems(count, infos)
			for i := range list {
				info := &list[i]
				p := root("pCreateInfos").at(i)
				if info.Stage.Stage != vk.ShaderStageComputeBit {
					c.Usage(p.dot("stage").dot("stage"), info.Stage.Stage,
						"stage is %s, must be VK_SHADER_STAGE_COMPUTE_BIT", info.Stage.Stage)
				}
				derivatives(c, p, i, info.Flags, info.BasePipelineHandle, info.BasePipelineIndex,
					func(j int) vk.PipelineCreateFlags { return list[j].Flags })
			}
		},
	}, func() vk.Result {
		return l.next.CreateComputePipelines(device, cache, count, infos, pipelines)
	})
}
