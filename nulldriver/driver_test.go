package nulldriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/vk-validation/resource"
	"github.com/wippyai/vk-validation/vk"
)

func setup(t *testing.T, opts ...Option) (*Driver, vk.Instance, vk.PhysicalDevice) {
	t.Helper()
	d := New(opts...)
	var inst vk.Instance
	require.Equal(t, vk.Success, d.CreateInstance(&vk.InstanceCreateInfo{SType: vk.StructureTypeInstanceCreateInfo}, &inst))
	require.False(t, inst.IsNull())

	var count uint32
	require.Equal(t, vk.Success, d.EnumeratePhysicalDevices(inst, &count, nil))
	require.GreaterOrEqual(t, count, uint32(1))
	pds := make([]vk.PhysicalDevice, count)
	require.Equal(t, vk.Success, d.EnumeratePhysicalDevices(inst, &count, pds))
	return d, inst, pds[0]
}

func TestEnumerateIncomplete(t *testing.T) {
	d, inst, _ := setup(t, WithPhysicalDevices(DefaultPhysicalDevice(), DefaultPhysicalDevice()))

	var total uint32
	require.Equal(t, vk.Success, d.EnumeratePhysicalDevices(inst, &total, nil))
	require.Equal(t, uint32(2), total)

	count := uint32(1)
	pds := make([]vk.PhysicalDevice, 1)
	assert.Equal(t, vk.Incomplete, d.EnumeratePhysicalDevices(inst, &count, pds))
	assert.Equal(t, uint32(1), count)
	assert.Equal(t, inst.Key, pds[0].Key)
}

func TestQueries(t *testing.T) {
	d, _, pd := setup(t)

	var props vk.PhysicalDeviceProperties
	d.GetPhysicalDeviceProperties(pd, &props)
	assert.Equal(t, vk.PhysicalDeviceTypeDiscreteGpu, props.DeviceType)
	assert.Equal(t, uint32(4096), props.Limits.MaxImageDimension2D)

	var count uint32
	d.GetPhysicalDeviceQueueFamilyProperties(pd, &count, nil)
	require.Equal(t, uint32(2), count)
	fams := make([]vk.QueueFamilyProperties, count)
	d.GetPhysicalDeviceQueueFamilyProperties(pd, &count, fams)
	assert.NotZero(t, fams[0].QueueFlags&vk.QueueGraphicsBit)

	var fp vk.FormatProperties
	d.GetPhysicalDeviceFormatProperties(pd, vk.FormatR8g8b8a8Unorm, &fp)
	assert.NotZero(t, fp.OptimalTilingFeatures&vk.FormatFeatureColorAttachmentBit)

	var ifp vk.ImageFormatProperties
	r := d.GetPhysicalDeviceImageFormatProperties(pd, vk.FormatR8g8b8a8Unorm, vk.ImageType2d, vk.ImageTilingOptimal,
		vk.ImageUsageSampledBit, 0, &ifp)
	assert.Equal(t, vk.Success, r)
	r = d.GetPhysicalDeviceImageFormatProperties(pd, vk.FormatUndefined, vk.ImageType2d, vk.ImageTilingOptimal,
		vk.ImageUsageSampledBit, 0, &ifp)
	assert.Equal(t, vk.ErrorFormatNotSupported, r)

	var supported vk.Bool32
	d.GetPhysicalDeviceSurfaceSupportKHR(pd, 0, 1, &supported)
	assert.Equal(t, vk.True, supported)
	d.GetPhysicalDeviceSurfaceSupportKHR(pd, 1, 1, &supported)
	assert.Equal(t, vk.False, supported)
}

func TestDeviceObjects(t *testing.T) {
	d, inst, pd := setup(t)

	var dev vk.Device
	require.Equal(t, vk.Success, d.CreateDevice(pd, &vk.DeviceCreateInfo{}, &dev))
	assert.NotEqual(t, inst.Key, dev.Key)

	var q1, q2 vk.Queue
	d.GetDeviceQueue(dev, 0, 0, &q1)
	d.GetDeviceQueue(dev, 0, 0, &q2)
	assert.Equal(t, q1, q2)
	assert.Equal(t, dev.Key, q1.Key)

	var pool vk.CommandPool
	require.Equal(t, vk.Success, d.CreateCommandPool(dev, &vk.CommandPoolCreateInfo{}, &pool))
	cbs := make([]vk.CommandBuffer, 2)
	require.Equal(t, vk.Success, d.AllocateCommandBuffers(dev, &vk.CommandBufferAllocateInfo{CommandPool: pool, CommandBufferCount: 2}, cbs))
	assert.Equal(t, dev.Key, cbs[0].Key)
	assert.NotEqual(t, cbs[0].ID, cbs[1].ID)

	var buf vk.Buffer
	require.Equal(t, vk.Success, d.CreateBuffer(dev, &vk.BufferCreateInfo{}, &buf))
	assert.NotZero(t, buf)
	assert.Equal(t, 1, d.Live(vk.DebugReportObjectTypeBufferEXT))

	require.Equal(t, vk.Success, d.DestroyDevice(dev))
	assert.Zero(t, d.Live(vk.DebugReportObjectTypeBufferEXT))
	assert.Zero(t, d.Live(vk.DebugReportObjectTypeCommandBufferEXT))
	assert.Zero(t, d.Live(vk.DebugReportObjectTypeQueueEXT))
}

func TestCreateDeviceUnsupportedFeature(t *testing.T) {
	d, _, pd := setup(t)

	var dev vk.Device
	info := &vk.DeviceCreateInfo{EnabledFeatures: &vk.PhysicalDeviceFeatures{SparseResidencyAliased: vk.True}}
	assert.Equal(t, vk.ErrorFeatureNotPresent, d.CreateDevice(pd, info, &dev))
	assert.True(t, dev.IsNull())
}

func TestMapMemory(t *testing.T) {
	d, _, pd := setup(t)
	var dev vk.Device
	d.CreateDevice(pd, &vk.DeviceCreateInfo{}, &dev)

	var mem vk.DeviceMemory
	require.Equal(t, vk.Success, d.AllocateMemory(dev, &vk.MemoryAllocateInfo{AllocationSize: 1024, MemoryTypeIndex: 1}, &mem))

	var data []byte
	require.Equal(t, vk.Success, d.MapMemory(dev, mem, 256, vk.WholeSize, 0, &data))
	assert.Len(t, data, 768)
	assert.Equal(t, vk.ErrorMemoryMapFailed, d.MapMemory(dev, mem, 512, 1024, 0, &data))

	assert.Equal(t, vk.ErrorOutOfDeviceMemory, d.AllocateMemory(dev, &vk.MemoryAllocateInfo{AllocationSize: 1, MemoryTypeIndex: 9}, &mem))
}

func TestFaults(t *testing.T) {
	d, _, pd := setup(t)
	var dev vk.Device
	d.CreateDevice(pd, &vk.DeviceCreateInfo{}, &dev)

	d.FailWith("vkCreateBuffer", vk.ErrorOutOfHostMemory)
	var buf vk.Buffer
	assert.Equal(t, vk.ErrorOutOfHostMemory, d.CreateBuffer(dev, &vk.BufferCreateInfo{}, &buf))
	assert.Zero(t, buf)

	d.FailWith("vkCreateFence", vk.Timeout)
	var fence vk.Fence
	assert.Equal(t, vk.Timeout, d.CreateFence(dev, &vk.FenceCreateInfo{}, &fence))
	assert.NotZero(t, fence)

	d.Corrupt("vkGetPhysicalDeviceProperties")
	var props vk.PhysicalDeviceProperties
	d.GetPhysicalDeviceProperties(pd, &props)
	assert.False(t, props.DeviceType.IsValid())

	d.ClearFaults()
	d.GetPhysicalDeviceProperties(pd, &props)
	assert.True(t, props.DeviceType.IsValid())
	assert.Equal(t, vk.Success, d.CreateBuffer(dev, &vk.BufferCreateInfo{}, &buf))
}

func TestCalls(t *testing.T) {
	d, _, pd := setup(t)
	d.ResetCalls()

	var dev vk.Device
	d.CreateDevice(pd, &vk.DeviceCreateInfo{}, &dev)
	d.DeviceWaitIdle(dev)

	assert.Equal(t, []string{"vkCreateDevice", "vkDeviceWaitIdle"}, d.Calls())
	assert.True(t, d.Called("vkDeviceWaitIdle"))
	assert.False(t, d.Called("vkQueueWaitIdle"))
}

func TestHandleReuse(t *testing.T) {
	for _, reuse := range []bool{true, false} {
		d, _, pd := setup(t, WithHandleReuse(reuse))
		var dev vk.Device
		d.CreateDevice(pd, &vk.DeviceCreateInfo{}, &dev)

		var a, b vk.Buffer
		d.CreateBuffer(dev, &vk.BufferCreateInfo{}, &a)
		d.DestroyBuffer(dev, a)
		d.CreateBuffer(dev, &vk.BufferCreateInfo{}, &b)
		assert.Equal(t, reuse, a == b, "reuse=%v", reuse)
	}
}

func TestObserver(t *testing.T) {
	d, _, pd := setup(t)
	var created []resource.Type
	d.Subscribe(resource.ObserverFunc(func(e resource.Event) {
		if e.Type == resource.EventCreated {
			created = append(created, e.Object)
		}
	}))

	var dev vk.Device
	d.CreateDevice(pd, &vk.DeviceCreateInfo{}, &dev)
	assert.Equal(t, []resource.Type{vk.DebugReportObjectTypeDeviceEXT}, created)
}
