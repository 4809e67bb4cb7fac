package layer

import "github.com/wippyai/vk-validation/vk"

// CreateSwapchainKHR validates the create info, including its sharing mode.
func (l *Layer) CreateSwapchainKHR(device vk.Device, info *vk.SwapchainCreateInfoKHR, swapchain *vk.SwapchainKHR) vk.Result {
	const op = "vkCreateSwapchainKHR"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Extension(nil, vk.KHRSwapchainExtensionName)
			c.Required(root("pSwapchain"), swapchain != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeSwapchainCreateInfoKHR)
			c.Chain(p, info.Next)
			c.Reserved(p.dot("flags"), info.Flags)
			c.Handle(p.dot("surface"), uint64(info.Surface))
			c.Positive(p.dot("minImageCount"), uint64(info.MinImageCount))
			c.Enum(p.dot("imageFormat"), info.ImageFormat)
			c.Enum(p.dot("imageColorSpace"), info.ImageColorSpace)
			c.Positive(p.dot("imageExtent").dot("width"), uint64(info.ImageExtent.Width))
			c.Positive(p.dot("imageExtent").dot("height"), uint64(info.ImageExtent.Height))
			c.Positive(p.dot("imageArrayLayers"), uint64(info.ImageArrayLayers))
			checkFlags(c, p.dot("imageUsage"), info.ImageUsage, true)
			checkSingleBit(c, p.dot("preTransform"), info.PreTransform)
			checkSingleBit(c, p.dot("compositeAlpha"), info.CompositeAlpha)
			c.Enum(p.dot("presentMode"), info.PresentMode)
			c.Bool(p.dot("clipped"), info.Clipped)
		},
		Pre: func(c *Checker) {
			if info == nil {
				return
			}
			c.sharing(root("pCreateInfo"), info.ImageSharingMode, "imageSharingMode", "queueFamilyIndexCount",
				"pQueueFamilyIndices", info.QueueFamilyIndexCount, info.QueueFamilyIndices)
		},
	}, func() vk.Result {
		return l.next.CreateSwapchainKHR(device, info, swapchain)
	})
}

// QueuePresentKHR validates the present info and, after the call, each
// per-swapchain result.
func (l *Layer) QueuePresentKHR(queue vk.Queue, info *vk.PresentInfoKHR) vk.Result {
	const op = "vkQueuePresentKHR"
	ctx := l.connContext(op, queue.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: queue,
		Params: func(c *Checker) {
			c.Extension(nil, vk.KHRSwapchainExtensionName)
			p := root("pPresentInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypePresentInfoKHR)
			c.Chain(p, info.Next)
			wp := p.dot("pWaitSemaphores")
			for i, s := range array(c, p.dot("waitSemaphoreCount"), wp, info.WaitSemaphoreCount, info.WaitSemaphores, false, true) {
				c.Handle(wp.at(i), uint64(s))
			}
			sp := p.dot("pSwapchains")
			for i, s := range array(c, p.dot("swapchainCount"), sp, info.SwapchainCount, info.Swapchains, true, true) {
				c.Handle(sp.at(i), uint64(s))
			}
			array(c, p.dot("swapchainCount"), p.dot("pImageIndices"), info.SwapchainCount, info.ImageIndices, false, true)
			if info.Results != nil {
				array(c, p.dot("swapchainCount"), p.dot("pResults"), info.SwapchainCount, info.Results, false, true)
			}
		},
		Post: func(c *Checker, _ vk.Result) {
			rp := root("pPresentInfo").dot("pResults")
			for i, r := range elems(info.SwapchainCount, info.Results) {
				c.postEnum(rp.at(i), r)
			}
		},
	}, func() vk.Result {
		return l.next.QueuePresentKHR(queue, info)
	})
}
