package nulldriver

import (
	"github.com/wippyai/vk-validation/resource"
	"github.com/wippyai/vk-validation/vk"
)

const (
	typeDevice        = vk.DebugReportObjectTypeDeviceEXT
	typeQueue         = vk.DebugReportObjectTypeQueueEXT
	typeCommandBuffer = vk.DebugReportObjectTypeCommandBufferEXT
	typeMemory        = vk.DebugReportObjectTypeDeviceMemoryEXT
)

type device struct {
	key      vk.Key
	physical *PhysicalDevice
	queues   map[[2]uint32]uint64
}

type memory struct {
	size   vk.DeviceSize
	mapped []byte
}

// CreateDevice mints a device with its own dispatch key. Queues are minted
// on first retrieval.
func (d *Driver) CreateDevice(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo, out *vk.Device) vk.Result {
	const op = "vkCreateDevice"
	if r, ok := d.begin(op); !ok {
		return r
	}
	p := d.physicalDevice(pd)
	if p == nil {
		return vk.ErrorInitializationFailed
	}
	if info.EnabledFeatures != nil && len(info.EnabledFeatures.Unsupported(&p.Features)) > 0 {
		return vk.ErrorFeatureNotPresent
	}
	dev := &device{key: d.newKey(), physical: p, queues: make(map[[2]uint32]uint64)}
	*out = vk.Device{Key: dev.key, ID: d.mint(typeDevice, pd.ID, dev)}
	return d.done(op)
}

func (d *Driver) DestroyDevice(dev vk.Device) vk.Result {
	const op = "vkDestroyDevice"
	if r, ok := d.begin(op); !ok {
		return r
	}
	d.destroy(dev.ID)
	return d.done(op)
}

func (d *Driver) device(dev vk.Device) *device {
	v, ok := d.lookup(dev.ID, typeDevice)
	if !ok {
		return nil
	}
	return v.(*device)
}

func (d *Driver) GetDeviceQueue(dev vk.Device, family, index uint32, queue *vk.Queue) vk.Result {
	const op = "vkGetDeviceQueue"
	if r, ok := d.begin(op); !ok {
		return r
	}
	dv := d.device(dev)
	if dv == nil {
		return d.done(op)
	}
	key := [2]uint32{family, index}
	id, ok := dv.queues[key]
	if !ok {
		id = d.mint(typeQueue, dev.ID, nil)
		dv.queues[key] = id
	}
	*queue = vk.Queue{Key: dv.key, ID: id}
	return d.done(op)
}

func (d *Driver) QueueSubmit(queue vk.Queue, count uint32, submits []vk.SubmitInfo, fence vk.Fence) vk.Result {
	return d.simple("vkQueueSubmit")
}

func (d *Driver) QueueWaitIdle(queue vk.Queue) vk.Result {
	return d.simple("vkQueueWaitIdle")
}

func (d *Driver) DeviceWaitIdle(dev vk.Device) vk.Result {
	return d.simple("vkDeviceWaitIdle")
}

// create mints one non-dispatchable object owned by parent.
func (d *Driver) create(op string, typ resource.Type, parent uint64, value any, out *uint64) vk.Result {
	if r, ok := d.begin(op); !ok {
		return r
	}
	*out = d.mint(typ, parent, value)
	return d.done(op)
}

// remove destroys a non-dispatchable object; VK_NULL_HANDLE is ignored.
func (d *Driver) remove(op string, h uint64) vk.Result {
	if r, ok := d.begin(op); !ok {
		return r
	}
	d.destroy(h)
	return d.done(op)
}

func (d *Driver) AllocateMemory(dev vk.Device, info *vk.MemoryAllocateInfo, out *vk.DeviceMemory) vk.Result {
	const op = "vkAllocateMemory"
	if dv := d.device(dev); dv != nil && info.MemoryTypeIndex >= dv.physical.Memory.MemoryTypeCount {
		d.call(op)
		return vk.ErrorOutOfDeviceMemory
	}
	return d.create(op, typeMemory, dev.ID, &memory{size: info.AllocationSize}, (*uint64)(out))
}

func (d *Driver) FreeMemory(dev vk.Device, mem vk.DeviceMemory) vk.Result {
	return d.remove("vkFreeMemory", uint64(mem))
}

// MapMemory hands out a buffer backing the mapped range.
func (d *Driver) MapMemory(dev vk.Device, mem vk.DeviceMemory, offset, size vk.DeviceSize, flags vk.Flags, data *[]byte) vk.Result {
	const op = "vkMapMemory"
	if r, ok := d.begin(op); !ok {
		return r
	}
	v, ok := d.lookup(uint64(mem), typeMemory)
	if !ok {
		return vk.ErrorMemoryMapFailed
	}
	m := v.(*memory)
	if size == vk.WholeSize {
		size = m.size - min(offset, m.size)
	}
	if offset+size > m.size {
		return vk.ErrorMemoryMapFailed
	}
	m.mapped = make([]byte, size)
	*data = m.mapped
	return d.done(op)
}

func (d *Driver) UnmapMemory(dev vk.Device, mem vk.DeviceMemory) vk.Result {
	const op = "vkUnmapMemory"
	if r, ok := d.begin(op); !ok {
		return r
	}
	if v, ok := d.lookup(uint64(mem), typeMemory); ok {
		v.(*memory).mapped = nil
	}
	return d.done(op)
}

func (d *Driver) FlushMappedMemoryRanges(dev vk.Device, count uint32, ranges []vk.MappedMemoryRange) vk.Result {
	return d.simple("vkFlushMappedMemoryRanges")
}

func (d *Driver) InvalidateMappedMemoryRanges(dev vk.Device, count uint32, ranges []vk.MappedMemoryRange) vk.Result {
	return d.simple("vkInvalidateMappedMemoryRanges")
}

func (d *Driver) BindBufferMemory(dev vk.Device, buffer vk.Buffer, mem vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return d.simple("vkBindBufferMemory")
}

func (d *Driver) BindImageMemory(dev vk.Device, image vk.Image, mem vk.DeviceMemory, offset vk.DeviceSize) vk.Result {
	return d.simple("vkBindImageMemory")
}
