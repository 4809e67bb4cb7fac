package layer

import (
	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/tracker"
	"github.com/wippyai/vk-validation/vk"
)

// CreateDevice validates the create info against what is known about the
// physical device, forwards, and registers a connection whose queue family
// table and capabilities are filled before any lookup can see it.
func (l *Layer) CreateDevice(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo, device *vk.Device) vk.Result {
	const op = "vkCreateDevice"
	ctx := l.sessionContext(op, pd.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: pd,
		Params: func(c *Checker) {
			c.Required(root("pDevice"), device != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.pending = extensionSet(info.EnabledExtensionCount, info.EnabledExtensionNames)
			c.SType(p, info.SType, vk.StructureTypeDeviceCreateInfo)
			c.Chain(p, info.Next, vk.StructureTypePhysicalDeviceFeatures2KHR)
			c.Reserved(p.dot("flags"), info.Flags)

			qp := p.dot("pQueueCreateInfos")
			queues := array(c, p.dot("queueCreateInfoCount"), qp, info.QueueCreateInfoCount, info.QueueCreateInfos, true, true)
			for i := range queues {
				q := &queues[i]
				ip := qp.at(i)
				c.SType(ip, q.SType, vk.StructureTypeDeviceQueueCreateInfo)
				c.Chain(ip, q.Next)
				c.Reserved(ip.dot("flags"), q.Flags)
				array(c, ip.dot("queueCount"), ip.dot("pQueuePriorities"), q.QueueCount, q.QueuePriorities, true, true)
			}
			array(c, p.dot("enabledLayerCount"), p.dot("ppEnabledLayerNames"),
				info.EnabledLayerCount, info.EnabledLayerNames, false, true)
			array(c, p.dot("enabledExtensionCount"), p.dot("ppEnabledExtensionNames"),
				info.EnabledExtensionCount, info.EnabledExtensionNames, false, true)
			if info.EnabledFeatures != nil {
				c.Features(p.dot("pEnabledFeatures"), info.EnabledFeatures)
			}
		},
		Pre: func(c *Checker) {
			if info != nil {
				l.preCreateDevice(c, ctx.Session, pd, info)
			}
		},
		Track: func(r vk.Result) {
			if r != vk.Success {
				return
			}
			l.registerConnection(op, ctx, pd, info, *device)
		},
	}, func() vk.Result {
		return l.next.CreateDevice(pd, info, device)
	})
}

func (l *Layer) preCreateDevice(c *Checker, sess *Session, pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) {
	p := root("pCreateInfo")
	for i, name := range elems(info.EnabledLayerCount, info.EnabledLayerNames) {
		c.String(p.dot("ppEnabledLayerNames").at(i), name)
	}
	for i, name := range elems(info.EnabledExtensionCount, info.EnabledExtensionNames) {
		c.String(p.dot("ppEnabledExtensionNames").at(i), name)
	}

	var familiesKnown bool
	var familyCount uint32
	var supported *vk.PhysicalDeviceFeatures
	_ = l.state.Do(func(*Tx) error {
		pi := sess.physicalInfo(pd)
		familiesKnown, familyCount, supported = pi.QueueFamilies, pi.QueueFamilyCount, pi.Features
		return nil
	})

	seen := make(map[uint32]bool)
	for i, q := range elems(info.QueueCreateInfoCount, info.QueueCreateInfos) {
		ip := p.dot("pQueueCreateInfos").at(i)
		fam := q.QueueFamilyIndex
		switch {
		case fam == vk.QueueFamilyIgnored:
			c.Fail(ruleQueueIgnored, ip.dot("queueFamilyIndex"), fam)
		case seen[fam]:
			c.Fail(ruleFamilyDuplicate, ip.dot("queueFamilyIndex"), fam, fam)
		case familiesKnown && fam >= familyCount:
			c.Fail(ruleFamilyRange, ip.dot("queueFamilyIndex"), fam, fam, familyCount)
		}
		seen[fam] = true
		for j, prio := range elems(q.QueueCount, q.QueuePriorities) {
			c.Range01(ip.dot("pQueuePriorities").at(j), prio)
		}
	}

	if f2, ok := vk.Find[*vk.PhysicalDeviceFeatures2KHR](info.Next); ok {
		if info.EnabledFeatures != nil {
			c.Usage(p.dot("pEnabledFeatures"), nil,
				"must be NULL when VkPhysicalDeviceFeatures2KHR is in the pNext chain")
		}
		c.Features(p.dot("pNext").dot("features"), &f2.Features)
	}

	if supported == nil {
		var queried vk.PhysicalDeviceFeatures
		if r := l.next.GetPhysicalDeviceFeatures(pd, &queried); r == vk.Success {
			supported = &queried
			_ = l.state.Do(func(*Tx) error {
				sess.physicalInfo(pd).Features = &queried
				return nil
			})
		}
	}
	if supported != nil {
		enabled := EnabledFeatures(info)
		for _, name := range enabled.Unsupported(supported) {
			c.Fail(ruleUnsupported, p.dot("pEnabledFeatures").dot(name), nil, name)
		}
	}
}

func (l *Layer) registerConnection(op string, sess *Context, pd vk.PhysicalDevice, info *vk.DeviceCreateInfo, device vk.Device) {
	caps := l.caps.Query(pd, info)
	err := l.state.Do(func(tx *Tx) error {
		conn := &Connection{
			Device:          device,
			Physical:        pd,
			Session:         sess.Session,
			Extensions:      extensionSet(info.EnabledExtensionCount, info.EnabledExtensionNames),
			Features:        caps.Features,
			Limits:          caps.Limits,
			MemoryTypeCount: caps.Memory.MemoryTypeCount,
			MemoryHeapCount: caps.Memory.MemoryHeapCount,
			Queues:          tracker.NewQueueFamilyTable(tracker.FromDeviceCreateInfo(info)),
			RenderPasses:    tracker.NewRenderPassUsage(),
		}
		if err := tx.Register(device.Key, &Context{Key: device.Key, Session: sess.Session, Conn: conn}); err != nil {
			return err
		}
		if sess.Session.conns == nil {
			sess.Session.conns = make(map[vk.Key]struct{})
		}
		sess.Session.conns[device.Key] = struct{}{}
		return nil
	})
	if err != nil {
		panic(errors.Internal(op, "register connection for key %#x: %v", uint64(device.Key), err))
	}
	l.log.Debug("connection created",
		zap.String("op", op),
		zap.Uint64("key", uint64(device.Key)),
		zap.Uint64("session", uint64(sess.Key)))
}

// DestroyDevice forwards and removes the connection.
func (l *Layer) DestroyDevice(device vk.Device) vk.Result {
	const op = "vkDestroyDevice"
	if device.IsNull() {
		return vk.Success
	}
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Track: func(vk.Result) {
			err := l.state.Do(func(tx *Tx) error {
				delete(ctx.Session.conns, ctx.Key)
				return tx.Unregister(ctx.Key)
			})
			if err != nil {
				panic(errors.Internal(op, "unregister connection for key %#x: %v", uint64(ctx.Key), err))
			}
			l.log.Debug("connection destroyed", zap.String("op", op), zap.Uint64("key", uint64(ctx.Key)))
		},
	}, func() vk.Result {
		return l.next.DestroyDevice(device)
	})
}

// GetDeviceQueue accepts (family, index) only for a family requested at
// device creation and an index below the count requested for it.
func (l *Layer) GetDeviceQueue(device vk.Device, family, index uint32, queue *vk.Queue) vk.Result {
	const op = "vkGetDeviceQueue"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: device,
		Params: func(c *Checker) {
			c.Required(root("pQueue"), queue != nil)
		},
		Pre: func(c *Checker) {
			if family == vk.QueueFamilyIgnored {
				c.Fail(ruleQueueIgnored, root("queueFamilyIndex"), family)
				return
			}
			n, ok := ctx.Conn.Queues.Count(family)
			if !ok {
				c.Fail(ruleQueueFamily, root("queueFamilyIndex"), family, family)
				return
			}
			if index >= n {
				c.Fail(ruleQueueIndex, root("queueIndex"), index, index, n, family)
			}
		},
	}, func() vk.Result {
		return l.next.GetDeviceQueue(device, family, index, queue)
	})
}

// QueueSubmit validates each submission.
func (l *Layer) QueueSubmit(queue vk.Queue, count uint32, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	const op = "vkQueueSubmit"
	ctx := l.connContext(op, queue.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: queue,
		Params: func(c *Checker) {
			sp := root("pSubmits")
			for i := range array(c, root("submitCount"), sp, count, submits, false, true) {
				s := &submits[i]
				ip := sp.at(i)
				c.SType(ip, s.SType, vk.StructureTypeSubmitInfo)
				c.Chain(ip, s.Next)
				waits := array(c, ip.dot("waitSemaphoreCount"), ip.dot("pWaitSemaphores"), s.WaitSemaphoreCount, s.WaitSemaphores, false, true)
				for j, sem := range waits {
					c.Handle(ip.dot("pWaitSemaphores").at(j), uint64(sem))
				}
				stages := array(c, ip.dot("waitSemaphoreCount"), ip.dot("pWaitDstStageMask"), s.WaitSemaphoreCount, s.WaitDstStageMask, false, true)
				for j, mask := range stages {
					mp := ip.dot("pWaitDstStageMask").at(j)
					if checkFlags(c, mp, mask, true) {
						checkStageFeatures(c, mp, mask)
					}
				}
				cbs := array(c, ip.dot("commandBufferCount"), ip.dot("pCommandBuffers"), s.CommandBufferCount, s.CommandBuffers, false, true)
				for j, cb := range cbs {
					c.Handle(ip.dot("pCommandBuffers").at(j), cb.ID)
				}
				signals := array(c, ip.dot("signalSemaphoreCount"), ip.dot("pSignalSemaphores"), s.SignalSemaphoreCount, s.SignalSemaphores, false, true)
				for j, sem := range signals {
					c.Handle(ip.dot("pSignalSemaphores").at(j), uint64(sem))
				}
			}
		},
	}, func() vk.Result {
		return l.next.QueueSubmit(queue, count, submits, fence)
	})
}

// checkStageFeatures rejects pipeline stages whose shader feature is not
// enabled.
func checkStageFeatures(c *Checker, p path, mask vk.PipelineStageFlags) {
	if c.conn == nil {
		return
	}
	if mask&vk.PipelineStageGeometryShaderBit != 0 {
		c.Capability(p, c.conn.Features.GeometryShader, "geometryShader")
	}
	if mask&(vk.PipelineStageTessellationControlShaderBit|vk.PipelineStageTessellationEvaluationShaderBit) != 0 {
		c.Capability(p, c.conn.Features.TessellationShader, "tessellationShader")
	}
}

// QueueWaitIdle forwards after resolving the queue's connection.
func (l *Layer) QueueWaitIdle(queue vk.Queue) vk.Result {
	const op = "vkQueueWaitIdle"
	ctx := l.connContext(op, queue.Key)
	return l.invoke(ctx, Operation{Name: op, Object: queue}, func() vk.Result {
		return l.next.QueueWaitIdle(queue)
	})
}

// DeviceWaitIdle forwards after resolving the connection.
func (l *Layer) DeviceWaitIdle(device vk.Device) vk.Result {
	const op = "vkDeviceWaitIdle"
	ctx := l.connContext(op, device.Key)
	return l.invoke(ctx, Operation{Name: op, Object: device}, func() vk.Result {
		return l.next.DeviceWaitIdle(device)
	})
}
