package layer

import (
	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/tracker"
	"github.com/wippyai/vk-validation/vk"
)

// CreateFramebuffer validates the attachments and dimensions.
func (l *Layer) CreateFramebuffer(device vk.Device, info *vk.FramebufferCreateInfo, fb *vk.Framebuffer) vk.Result {
	const op = "vkCreateFramebuffer"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pFramebuffer"), fb != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeFramebufferCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			c.Handle(p.dot("renderPass"), uint64(info.RenderPass))
			ap := p.dot("pAttachments")
			for i, v := range array(c, p.dot("attachmentCount"), ap, info.AttachmentCount, info.Attachments, false, true) {
				c.Handle(ap.at(i), uint64(v))
			}
			c.Positive(p.dot("width"), uint64(info.Width))
			c.Positive(p.dot("height"), uint64(info.Height))
			c.Positive(p.dot("layers"), uint64(info.Layers))
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			p := root("pCreateInfo")
			lim := &ctx.Conn.Limits
			c.LessEq(p.dot("width"), uint64(info.Width), uint64(lim.MaxFramebufferWidth), "maxFramebufferWidth")
			c.LessEq(p.dot("height"), uint64(info.Height), uint64(lim.MaxFramebufferHeight), "maxFramebufferHeight")
			c.LessEq(p.dot("layers"), uint64(info.Layers), uint64(lim.MaxFramebufferLayers), "maxFramebufferLayers")
		},
	}, func() vk.Result {
		return l.next.CreateFramebuffer(device, info, fb)
	})
}

// CreateRenderPass validates attachments, subpasses and dependencies and,
// once the render pass exists, records which attachment kinds each subpass
// uses.
func (l *Layer) CreateRenderPass(device vk.Device, info *vk.RenderPassCreateInfo, rp *vk.RenderPass) vk.Result {
	const op = "vkCreateRenderPass"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pRenderPass"), rp != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeRenderPassCreateInfo)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)

			ap := p.dot("pAttachments")
			for i := range array(c, p.dot("attachmentCount"), ap, info.AttachmentCount, info.Attachments, false, true) {
				attachmentDescription(c, ap.at(i), &info.Attachments[i])
			}
			sp := p.dot("pSubpasses")
			for i := range array(c, p.dot("subpassCount"), sp, info.SubpassCount, info.Subpasses, true, true) {
				subpassDescription(c, sp.at(i), &info.Subpasses[i])
			}
			dp := p.dot("pDependencies")
			for i := range array(c, p.dot("dependencyCount"), dp, info.DependencyCount, info.Dependencies, false, true) {
				d := &info.Dependencies[i]
				ip := dp.at(i)
				checkFlags(c, ip.dot("srcStageMask"), d.SrcStageMask, true)
				checkFlags(c, ip.dot("dstStageMask"), d.DstStageMask, true)
				checkFlags(c, ip.dot("srcAccessMask"), d.SrcAccessMask, false)
				checkFlags(c, ip.dot("dstAccessMask"), d.DstAccessMask, false)
				checkFlags(c, ip.dot("dependencyFlags"), d.DependencyFlags, false)
			}
		},
		Pre: func(c *Checker) {
			if info != nil {
				preCreateRenderPass(c, ctx.Conn, info)
			}
		},
		Track: func(r vk.Result) {
			if r != vk.Success {
				return
			}
			usage := tracker.ScanSubpasses(elems(info.SubpassCount, info.Subpasses))
			_ = l.state.Do(func(*Tx) error {
				ctx.Conn.RenderPasses.Record(*rp, usage)
				return nil
			})
			l.log.Debug("render pass usage recorded",
				zap.String("op", op),
				zap.Uint64("key", uint64(ctx.Key)),
				zap.Uint64("renderPass", uint64(*rp)),
				zap.Int("subpasses", len(usage)))
		},
	}, func() vk.Result {
		return l.next.CreateRenderPass(device, info, rp)
	})
}

func attachmentDescription(c *Checker, p path, a *vk.AttachmentDescription) {
	checkFlags(c, p.dot("flags"), a.Flags, false)
	c.Enum(p.dot("format"), a.Format)
	checkSingleBit(c, p.dot("samples"), a.Samples)
	c.Enum(p.dot("loadOp"), a.LoadOp)
	c.Enum(p.dot("storeOp"), a.StoreOp)
	c.Enum(p.dot("stencilLoadOp"), a.StencilLoadOp)
	c.Enum(p.dot("stencilStoreOp"), a.StencilStoreOp)
	c.Enum(p.dot("initialLayout"), a.InitialLayout)
	if c.Enum(p.dot("finalLayout"), a.FinalLayout) &&
		(a.FinalLayout == vk.ImageLayoutUndefined || a.FinalLayout == vk.ImageLayoutPreinitialized) {
		c.Usage(p.dot("finalLayout"), a.FinalLayout, "finalLayout must not be %s", a.FinalLayout)
	}
}

func subpassDescription(c *Checker, p path, s *vk.SubpassDescription) {
	checkFlags(c, p.dot("flags"), s.Flags, false)
	if c.Enum(p.dot("pipelineBindPoint"), s.PipelineBindPoint) && s.PipelineBindPoint != vk.PipelineBindPointGraphics {
		c.Usage(p.dot("pipelineBindPoint"), s.PipelineBindPoint,
			"pipelineBindPoint is %s, must be VK_PIPELINE_BIND_POINT_GRAPHICS", s.PipelineBindPoint)
	}
	refs := func(countField, arrField string, count uint32, list []vk.AttachmentReference) {
		for i, r := range array(c, p.dot(countField), p.dot(arrField), count, list, false, true) {
			c.Enum(p.dot(arrField).at(i).dot("layout"), r.Layout)
		}
	}
	refs("inputAttachmentCount", "pInputAttachments", s.InputAttachmentCount, s.InputAttachments)
	refs("colorAttachmentCount", "pColorAttachments", s.ColorAttachmentCount, s.ColorAttachments)
	if s.ResolveAttachments != nil {
		refs("colorAttachmentCount", "pResolveAttachments", s.ColorAttachmentCount, s.ResolveAttachments)
	}
	if d := s.DepthStencilAttachment; d != nil {
		c.Enum(p.dot("pDepthStencilAttachment").dot("layout"), d.Layout)
	}
	array(c, p.dot("preserveAttachmentCount"), p.dot("pPreserveAttachments"), s.PreserveAttachmentCount, s.PreserveAttachments, false, true)
}

func preCreateRenderPass(c *Checker, conn *Connection, info *vk.RenderPassCreateInfo) {
	p := root("pCreateInfo")
	n := info.AttachmentCount
	index := func(ip path, a uint32) {
		if a != vk.AttachmentUnused && a >= n {
			c.Usage(ip.dot("attachment"), a, "attachment %d is not less than attachmentCount %d", a, n)
		}
	}
	for i, s := range elems(info.SubpassCount, info.Subpasses) {
		sp := p.dot("pSubpasses").at(i)
		c.LessEq(sp.dot("colorAttachmentCount"), uint64(s.ColorAttachmentCount),
			uint64(conn.Limits.MaxColorAttachments), "maxColorAttachments")
		for j, r := range elems(s.InputAttachmentCount, s.InputAttachments) {
			index(sp.dot("pInputAttachments").at(j), r.Attachment)
		}
		for j, r := range elems(s.ColorAttachmentCount, s.ColorAttachments) {
			index(sp.dot("pColorAttachments").at(j), r.Attachment)
		}
		for j, r := range elems(s.ColorAttachmentCount, s.ResolveAttachments) {
			index(sp.dot("pResolveAttachments").at(j), r.Attachment)
		}
		if d := s.DepthStencilAttachment; d != nil {
			index(sp.dot("pDepthStencilAttachment"), d.Attachment)
		}
		for j, a := range elems(s.PreserveAttachmentCount, s.PreserveAttachments) {
			pp := sp.dot("pPreserveAttachments").at(j)
			if a == vk.AttachmentUnused || a >= n {
				c.Usage(pp, a, "preserve attachment %d must be less than attachmentCount %d", a, n)
			}
		}
	}
	for i, d := range elems(info.DependencyCount, info.Dependencies) {
		dp := p.dot("pDependencies").at(i)
		for _, sub := range []struct {
			name string
			v    uint32
		}{{"srcSubpass", d.SrcSubpass}, {"dstSubpass", d.DstSubpass}} {
			if sub.v != vk.SubpassExternal && sub.v >= info.SubpassCount {
				c.Usage(dp.dot(sub.name), sub.v, "%s %d is not less than subpassCount %d", sub.name, sub.v, info.SubpassCount)
			}
		}
		if d.SrcSubpass == vk.SubpassExternal && d.DstSubpass == vk.SubpassExternal {
			c.Usage(dp, d, "srcSubpass and dstSubpass must not both be VK_SUBPASS_EXTERNAL")
		}
		if d.SrcSubpass != vk.SubpassExternal && d.DstSubpass != vk.SubpassExternal && d.SrcSubpass > d.DstSubpass {
			c.Usage(dp.dot("srcSubpass"), d.SrcSubpass, "srcSubpass %d must not be greater than dstSubpass %d",
				d.SrcSubpass, d.DstSubpass)
		}
	}
}

// DestroyRenderPass forwards and forgets the render pass's usage record.
func (l *Layer) DestroyRenderPass(device vk.Device, rp vk.RenderPass) vk.Result {
	const op = "vkDestroyRenderPass"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: rp,
		Track: func(vk.Result) {
			if rp == 0 {
				return
			}
			_ = l.state.Do(func(*Tx) error {
				ctx.Conn.RenderPasses.Remove(rp)
				return nil
			})
		},
	}, func() vk.Result {
		return l.next.DestroyRenderPass(device, rp)
	})
}
