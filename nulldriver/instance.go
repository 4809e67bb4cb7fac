package nulldriver

import (
	"github.com/wippyai/vk-validation/vk"
)

const (
	typeInstance       = vk.DebugReportObjectTypeInstanceEXT
	typePhysicalDevice = vk.DebugReportObjectTypePhysicalDeviceEXT
)

type instance struct {
	key      vk.Key
	physical []vk.PhysicalDevice
}

// CreateInstance mints an instance and one handle per configured physical
// device.
func (d *Driver) CreateInstance(info *vk.InstanceCreateInfo, out *vk.Instance) vk.Result {
	const op = "vkCreateInstance"
	if r, ok := d.begin(op); !ok {
		return r
	}
	inst := &instance{key: d.newKey()}
	id := d.mint(typeInstance, 0, inst)
	for i := range d.physical {
		h := d.mint(typePhysicalDevice, id, &d.physical[i])
		inst.physical = append(inst.physical, vk.PhysicalDevice{Key: inst.key, ID: h})
	}
	*out = vk.Instance{Key: inst.key, ID: id}
	return d.done(op)
}

func (d *Driver) DestroyInstance(inst vk.Instance) vk.Result {
	const op = "vkDestroyInstance"
	if r, ok := d.begin(op); !ok {
		return r
	}
	d.destroy(inst.ID)
	return d.done(op)
}

func (d *Driver) EnumeratePhysicalDevices(inst vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result {
	const op = "vkEnumeratePhysicalDevices"
	if r, ok := d.begin(op); !ok {
		return r
	}
	v, ok := d.lookup(inst.ID, typeInstance)
	if !ok {
		return vk.ErrorInitializationFailed
	}
	return enumerate(v.(*instance).physical, count, devices, d.done(op))
}

// enumerate implements the two-call idiom: a nil output reports the count;
// a short output is filled and reported as incomplete.
func enumerate[T any](items []T, count *uint32, out []T, r vk.Result) vk.Result {
	if out == nil {
		*count = uint32(len(items))
		return r
	}
	n := copy(out[:min(int(*count), len(out))], items)
	*count = uint32(n)
	if n < len(items) {
		return vk.Incomplete
	}
	return r
}

func (d *Driver) physicalDevice(pd vk.PhysicalDevice) *PhysicalDevice {
	v, ok := d.lookup(pd.ID, typePhysicalDevice)
	if !ok {
		return nil
	}
	return v.(*PhysicalDevice)
}

func (d *Driver) GetPhysicalDeviceFeatures(pd vk.PhysicalDevice, features *vk.PhysicalDeviceFeatures) vk.Result {
	const op = "vkGetPhysicalDeviceFeatures"
	if r, ok := d.begin(op); !ok {
		return r
	}
	if p := d.physicalDevice(pd); p != nil {
		*features = p.Features
	}
	if d.corrupted(op) {
		features.GeometryShader = 2
	}
	return d.done(op)
}

func (d *Driver) GetPhysicalDeviceProperties(pd vk.PhysicalDevice, props *vk.PhysicalDeviceProperties) vk.Result {
	const op = "vkGetPhysicalDeviceProperties"
	if r, ok := d.begin(op); !ok {
		return r
	}
	if p := d.physicalDevice(pd); p != nil {
		*props = p.Properties
	}
	if d.corrupted(op) {
		props.DeviceType = vk.PhysicalDeviceType(99)
		props.Limits.StrictLines = 3
	}
	return d.done(op)
}

func (d *Driver) GetPhysicalDeviceFormatProperties(pd vk.PhysicalDevice, format vk.Format, props *vk.FormatProperties) vk.Result {
	const op = "vkGetPhysicalDeviceFormatProperties"
	if r, ok := d.begin(op); !ok {
		return r
	}
	*props = vk.FormatProperties{}
	if p := d.physicalDevice(pd); p != nil {
		*props = p.Formats[format]
	}
	if d.corrupted(op) {
		props.OptimalTilingFeatures |= 1 << 30
	}
	return d.done(op)
}

func (d *Driver) GetPhysicalDeviceImageFormatProperties(pd vk.PhysicalDevice, format vk.Format, typ vk.ImageType,
	tiling vk.ImageTiling, usage vk.ImageUsageFlags, flags vk.ImageCreateFlags, props *vk.ImageFormatProperties) vk.Result {
	const op = "vkGetPhysicalDeviceImageFormatProperties"
	if r, ok := d.begin(op); !ok {
		return r
	}
	p := d.physicalDevice(pd)
	if p == nil {
		return vk.ErrorFormatNotSupported
	}
	if _, ok := p.Formats[format]; !ok {
		return vk.ErrorFormatNotSupported
	}
	lim := &p.Properties.Limits
	*props = vk.ImageFormatProperties{
		MaxExtent:       vk.Extent3D{Width: lim.MaxImageDimension2D, Height: lim.MaxImageDimension2D, Depth: 1},
		MaxMipLevels:    13,
		MaxArrayLayers:  lim.MaxImageArrayLayers,
		SampleCounts:    lim.SampledImageColorSampleCounts,
		MaxResourceSize: 1 << 31,
	}
	if typ == vk.ImageType3d {
		props.MaxExtent = vk.Extent3D{Width: lim.MaxImageDimension3D, Height: lim.MaxImageDimension3D, Depth: lim.MaxImageDimension3D}
		props.MaxArrayLayers = 1
	}
	if d.corrupted(op) {
		props.SampleCounts |= 1 << 20
	}
	return d.done(op)
}

func (d *Driver) GetPhysicalDeviceQueueFamilyProperties(pd vk.PhysicalDevice, count *uint32, props []vk.QueueFamilyProperties) vk.Result {
	const op = "vkGetPhysicalDeviceQueueFamilyProperties"
	if r, ok := d.begin(op); !ok {
		return r
	}
	p := d.physicalDevice(pd)
	if p == nil {
		*count = 0
		return d.done(op)
	}
	enumerate(p.QueueFamilies, count, props, vk.Success)
	if d.corrupted(op) && props != nil && *count > 0 {
		props[0].QueueFlags |= 1 << 30
	}
	return d.done(op)
}

func (d *Driver) GetPhysicalDeviceMemoryProperties(pd vk.PhysicalDevice, props *vk.PhysicalDeviceMemoryProperties) vk.Result {
	const op = "vkGetPhysicalDeviceMemoryProperties"
	if r, ok := d.begin(op); !ok {
		return r
	}
	if p := d.physicalDevice(pd); p != nil {
		*props = p.Memory
	}
	if d.corrupted(op) {
		props.MemoryTypes[0].PropertyFlags |= 1 << 30
	}
	return d.done(op)
}

// GetPhysicalDeviceSparseImageFormatProperties reports no sparse image
// formats unless corrupted.
func (d *Driver) GetPhysicalDeviceSparseImageFormatProperties(pd vk.PhysicalDevice, format vk.Format, typ vk.ImageType,
	samples vk.SampleCountFlags, usage vk.ImageUsageFlags, tiling vk.ImageTiling, count *uint32,
	props []vk.SparseImageFormatProperties) vk.Result {
	const op = "vkGetPhysicalDeviceSparseImageFormatProperties"
	if r, ok := d.begin(op); !ok {
		return r
	}
	var items []vk.SparseImageFormatProperties
	if d.corrupted(op) {
		items = append(items, vk.SparseImageFormatProperties{
			AspectMask:       vk.ImageAspectColorBit | 1<<30,
			ImageGranularity: vk.Extent3D{Width: 64, Height: 64, Depth: 1},
		})
	}
	enumerate(items, count, props, vk.Success)
	return d.done(op)
}

func (d *Driver) GetPhysicalDeviceSurfaceSupportKHR(pd vk.PhysicalDevice, family uint32, surface vk.SurfaceKHR, supported *vk.Bool32) vk.Result {
	const op = "vkGetPhysicalDeviceSurfaceSupportKHR"
	if r, ok := d.begin(op); !ok {
		return r
	}
	*supported = vk.False
	if p := d.physicalDevice(pd); p != nil {
		for _, f := range p.PresentFamilies {
			if f == family {
				*supported = vk.True
			}
		}
	}
	if d.corrupted(op) {
		*supported = 7
	}
	return d.done(op)
}

func (d *Driver) CreateDebugReportCallbackEXT(inst vk.Instance, info *vk.DebugReportCallbackCreateInfoEXT, callback *vk.DebugReportCallbackEXT) vk.Result {
	const op = "vkCreateDebugReportCallbackEXT"
	if r, ok := d.begin(op); !ok {
		return r
	}
	*callback = vk.DebugReportCallbackEXT(d.mint(vk.DebugReportObjectTypeDebugReportCallbackEXT, inst.ID, nil))
	return d.done(op)
}

func (d *Driver) DestroyDebugReportCallbackEXT(inst vk.Instance, callback vk.DebugReportCallbackEXT) vk.Result {
	const op = "vkDestroyDebugReportCallbackEXT"
	if r, ok := d.begin(op); !ok {
		return r
	}
	d.destroy(uint64(callback))
	return d.done(op)
}

func (d *Driver) DebugReportMessageEXT(inst vk.Instance, flags vk.DebugReportFlagsEXT, objectType vk.DebugReportObjectTypeEXT,
	object uint64, location uint64, messageCode int32, layerPrefix, message string) vk.Result {
	return d.simple("vkDebugReportMessageEXT")
}
