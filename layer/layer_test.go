package layer_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/layer"
	"github.com/wippyai/vk-validation/nulldriver"
	"github.com/wippyai/vk-validation/vk"
)

type fixture struct {
	drv  *nulldriver.Driver
	l    *layer.Layer
	rec  *diag.Recorder
	inst vk.Instance
	pd   vk.PhysicalDevice
	dev  vk.Device
}

// threeFamilies adds a compute family with two queues as family 2.
func threeFamilies() nulldriver.PhysicalDevice {
	pd := nulldriver.DefaultPhysicalDevice()
	pd.QueueFamilies = append(pd.QueueFamilies, vk.QueueFamilyProperties{
		QueueFlags: vk.QueueComputeBit | vk.QueueTransferBit,
		QueueCount: 2,
	})
	return pd
}

func newFixture(t *testing.T, opts ...layer.Option) *fixture {
	t.Helper()
	f := &fixture{
		drv: nulldriver.New(nulldriver.WithPhysicalDevices(threeFamilies())),
		rec: &diag.Recorder{},
	}
	base := []layer.Option{layer.WithSink(f.rec), layer.WithLogger(zaptest.NewLogger(t))}
	f.l = layer.New(f.drv, append(base, opts...)...)

	r := f.l.CreateInstance(&vk.InstanceCreateInfo{
		SType:                 vk.StructureTypeInstanceCreateInfo,
		EnabledExtensionCount: 1,
		EnabledExtensionNames: []string{vk.EXTDebugReportExtensionName},
	}, &f.inst)
	require.Equal(t, vk.Success, r)

	count := uint32(1)
	pds := make([]vk.PhysicalDevice, 1)
	require.Equal(t, vk.Success, f.l.EnumeratePhysicalDevices(f.inst, &count, pds))
	f.pd = pds[0]

	f.dev = f.createDevice(t, defaultQueues())
	f.rec.Reset()
	f.drv.ResetCalls()
	return f
}

// defaultQueues requests one queue of family 0 and two of family 2.
func defaultQueues() []vk.DeviceQueueCreateInfo {
	return []vk.DeviceQueueCreateInfo{
		{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 0, QueueCount: 1, QueuePriorities: []float32{1}},
		{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 2, QueueCount: 2, QueuePriorities: []float32{1, 0.5}},
	}
}

func (f *fixture) createDevice(t *testing.T, queues []vk.DeviceQueueCreateInfo) vk.Device {
	t.Helper()
	var dev vk.Device
	r := f.l.CreateDevice(f.pd, &vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queues)),
		QueueCreateInfos:     queues,
	}, &dev)
	require.Equal(t, vk.Success, r, "reports: %v", f.rec.Reports())
	return dev
}

func (f *fixture) commandBuffer(t *testing.T) vk.CommandBuffer {
	t.Helper()
	var pool vk.CommandPool
	require.Equal(t, vk.Success, f.l.CreateCommandPool(f.dev, &vk.CommandPoolCreateInfo{
		SType: vk.StructureTypeCommandPoolCreateInfo,
	}, &pool))
	cbs := make([]vk.CommandBuffer, 1)
	require.Equal(t, vk.Success, f.l.AllocateCommandBuffers(f.dev, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}, cbs))
	f.rec.Reset()
	f.drv.ResetCalls()
	return cbs[0]
}

// reportAt returns the first report whose violation is at path.
func (f *fixture) reportAt(path string) (diag.Report, bool) {
	for _, r := range f.rec.Reports() {
		if r.Violation != nil && r.Violation.PathString() == path {
			return r, true
		}
	}
	return diag.Report{}, false
}

func (f *fixture) requireBlockedAt(t *testing.T, r vk.Result, op, path string) {
	t.Helper()
	require.Equal(t, vk.ErrorValidationFailedEXT, r)
	rep, ok := f.reportAt(path)
	require.True(t, ok, "no report at %s in %v", path, f.rec.Reports())
	assert.Equal(t, errors.SeverityError, rep.Severity)
	assert.Equal(t, op, rep.Op)
	assert.False(t, f.drv.Called(op), "%s must not be forwarded", op)
}

func TestGetDeviceQueueIndexBounds(t *testing.T) {
	f := newFixture(t)
	var q vk.Queue

	require.Equal(t, vk.Success, f.l.GetDeviceQueue(f.dev, 2, 1, &q))
	assert.False(t, q.IsNull())
	assert.True(t, f.drv.Called("vkGetDeviceQueue"))
	assert.Empty(t, f.rec.Blocking())

	f.drv.ResetCalls()
	r := f.l.GetDeviceQueue(f.dev, 2, 2, &q)
	f.requireBlockedAt(t, r, "vkGetDeviceQueue", "queueIndex")
	assert.Equal(t, errors.CodeInvalidUsage, f.rec.Blocking()[0].Code)
}

func TestGetDeviceQueueFamilies(t *testing.T) {
	tests := []struct {
		name   string
		family uint32
		ok     bool
	}{
		{"requested", 0, true},
		{"exists but not requested", 1, false},
		{"beyond physical device", 9, false},
		{"ignored", vk.QueueFamilyIgnored, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var q vk.Queue
			r := f.l.GetDeviceQueue(f.dev, tt.family, 0, &q)
			if tt.ok {
				assert.Equal(t, vk.Success, r)
				return
			}
			f.requireBlockedAt(t, r, "vkGetDeviceQueue", "queueFamilyIndex")
		})
	}
}

func TestCreateDeviceQueueFamilies(t *testing.T) {
	f := newFixture(t)

	var dev vk.Device
	r := f.l.CreateDevice(f.pd, &vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 2,
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{
			{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 0, QueueCount: 1, QueuePriorities: []float32{1}},
			{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 0, QueueCount: 1, QueuePriorities: []float32{2}},
		},
	}, &dev)
	f.requireBlockedAt(t, r, "vkCreateDevice", "pCreateInfo.pQueueCreateInfos[1].queueFamilyIndex")
	_, ok := f.reportAt("pCreateInfo.pQueueCreateInfos[1].pQueuePriorities[0]")
	assert.True(t, ok, "priority outside [0, 1] is reported")
	assert.True(t, dev.IsNull())
}

func TestCreateDeviceAfterTruncatedFamilyQuery(t *testing.T) {
	f := newFixture(t)

	count := uint32(1)
	props := make([]vk.QueueFamilyProperties, 1)
	require.Equal(t, vk.Success, f.l.GetPhysicalDeviceQueueFamilyProperties(f.pd, &count, props))
	require.Equal(t, uint32(1), count)

	f.createDevice(t, defaultQueues())
	assert.Empty(t, f.rec.Reports())
}

func TestCreateDeviceFamilyBeyondQueriedCount(t *testing.T) {
	f := newFixture(t)

	var count uint32
	require.Equal(t, vk.Success, f.l.GetPhysicalDeviceQueueFamilyProperties(f.pd, &count, nil))
	require.Equal(t, uint32(3), count)

	var dev vk.Device
	r := f.l.CreateDevice(f.pd, &vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{
			{SType: vk.StructureTypeDeviceQueueCreateInfo, QueueFamilyIndex: 3, QueueCount: 1, QueuePriorities: []float32{1}},
		},
	}, &dev)
	f.requireBlockedAt(t, r, "vkCreateDevice", "pCreateInfo.pQueueCreateInfos[0].queueFamilyIndex")
}

func TestCreateDeviceUnsupportedFeature(t *testing.T) {
	f := newFixture(t)

	var dev vk.Device
	r := f.l.CreateDevice(f.pd, &vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		QueueCreateInfos:     defaultQueues()[:1],
		EnabledFeatures:      &vk.PhysicalDeviceFeatures{SparseResidencyBuffer: vk.True},
	}, &dev)
	f.requireBlockedAt(t, r, "vkCreateDevice", "pCreateInfo.pEnabledFeatures.sparseResidencyBuffer")
	assert.Equal(t, errors.CodeDeviceFeature, f.rec.Blocking()[0].Code)
}

func bufferInfo(mode vk.SharingMode, count uint32, families []uint32) *vk.BufferCreateInfo {
	return &vk.BufferCreateInfo{
		SType:                 vk.StructureTypeBufferCreateInfo,
		Size:                  256,
		Usage:                 vk.BufferUsageTransferSrcBit,
		SharingMode:           mode,
		QueueFamilyIndexCount: count,
		QueueFamilyIndices:    families,
	}
}

func TestCreateBufferSharing(t *testing.T) {
	tests := []struct {
		name string
		info *vk.BufferCreateInfo
		path string
	}{
		{"exclusive", bufferInfo(vk.SharingModeExclusive, 0, nil), ""},
		{"concurrent", bufferInfo(vk.SharingModeConcurrent, 2, []uint32{0, 2}), ""},
		{"single family", bufferInfo(vk.SharingModeConcurrent, 1, []uint32{0}), "pCreateInfo.queueFamilyIndexCount"},
		{"null indices", bufferInfo(vk.SharingModeConcurrent, 2, nil), "pCreateInfo.pQueueFamilyIndices"},
		{"duplicate", bufferInfo(vk.SharingModeConcurrent, 2, []uint32{2, 2}), "pCreateInfo.pQueueFamilyIndices[1]"},
		{"not requested", bufferInfo(vk.SharingModeConcurrent, 2, []uint32{0, 1}), "pCreateInfo.pQueueFamilyIndices[1]"},
		{"bad mode", bufferInfo(vk.SharingMode(7), 0, nil), "pCreateInfo.sharingMode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			var buf vk.Buffer
			r := f.l.CreateBuffer(f.dev, tt.info, &buf)
			if tt.path == "" {
				assert.Equal(t, vk.Success, r)
				assert.NotZero(t, buf)
				assert.Empty(t, f.rec.Reports())
				return
			}
			f.requireBlockedAt(t, r, "vkCreateBuffer", tt.path)
			assert.Zero(t, buf)
		})
	}
}

func TestCreateBufferStructural(t *testing.T) {
	f := newFixture(t)
	var buf vk.Buffer

	info := bufferInfo(vk.SharingModeExclusive, 0, nil)
	info.SType = vk.StructureTypeImageCreateInfo
	f.requireBlockedAt(t, f.l.CreateBuffer(f.dev, info, &buf), "vkCreateBuffer", "pCreateInfo.sType")
	assert.Equal(t, errors.CodeInvalidStructSType, f.rec.Blocking()[0].Code)

	f.rec.Reset()
	f.requireBlockedAt(t, f.l.CreateBuffer(f.dev, nil, &buf), "vkCreateBuffer", "pCreateInfo")
	assert.Equal(t, errors.CodeRequiredParameter, f.rec.Blocking()[0].Code)

	f.rec.Reset()
	info = bufferInfo(vk.SharingModeExclusive, 0, nil)
	info.Usage = 0
	f.requireBlockedAt(t, f.l.CreateBuffer(f.dev, info, &buf), "vkCreateBuffer", "pCreateInfo.usage")
}

func TestFailureReturnCodeReported(t *testing.T) {
	f := newFixture(t)
	f.drv.FailWith("vkCreateBuffer", vk.ErrorOutOfDeviceMemory)

	var buf vk.Buffer
	r := f.l.CreateBuffer(f.dev, bufferInfo(vk.SharingModeExclusive, 0, nil), &buf)
	assert.Equal(t, vk.ErrorOutOfDeviceMemory, r)
	assert.True(t, f.drv.Called("vkCreateBuffer"))
	assert.Equal(t, 1, f.rec.Count(errors.CodeFailureReturnCode))
	assert.Empty(t, f.rec.Blocking())
}

func TestCorruptOutputsReported(t *testing.T) {
	f := newFixture(t)
	f.drv.Corrupt("vkGetPhysicalDeviceProperties")

	var props vk.PhysicalDeviceProperties
	assert.Equal(t, vk.Success, f.l.GetPhysicalDeviceProperties(f.pd, &props))
	rep, ok := f.reportAt("pProperties.deviceType")
	require.True(t, ok, "reports: %v", f.rec.Reports())
	assert.Equal(t, errors.CodeUnrecognizedValue, rep.Code)
	assert.Equal(t, errors.SeverityWarning, rep.Severity)
	_, ok = f.reportAt("pProperties.limits.strictLines")
	assert.True(t, ok)
}

func renderPass(t *testing.T, f *fixture, subpass vk.SubpassDescription, attachments []vk.AttachmentDescription) vk.RenderPass {
	t.Helper()
	subpass.PipelineBindPoint = vk.PipelineBindPointGraphics
	var rp vk.RenderPass
	r := f.l.CreateRenderPass(f.dev, &vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		Attachments:     attachments,
		SubpassCount:    1,
		Subpasses:       []vk.SubpassDescription{subpass},
	}, &rp)
	require.Equal(t, vk.Success, r, "reports: %v", f.rec.Reports())
	f.rec.Reset()
	f.drv.ResetCalls()
	return rp
}

func colorAttachment() []vk.AttachmentDescription {
	return []vk.AttachmentDescription{{
		Format:         vk.FormatB8g8r8a8Unorm,
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpStore,
		FinalLayout:    vk.ImageLayoutColorAttachmentOptimal,
	}}
}

func pipelineInfo(rp vk.RenderPass, subpass uint32) vk.GraphicsPipelineCreateInfo {
	return vk.GraphicsPipelineCreateInfo{
		SType:      vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount: 1,
		Stages: []vk.PipelineShaderStageCreateInfo{{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: 1,
			Name:   "main",
		}},
		VertexInputState: &vk.PipelineVertexInputStateCreateInfo{SType: vk.StructureTypePipelineVertexInputStateCreateInfo},
		InputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{
			SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
			Topology: vk.PrimitiveTopologyTriangleList,
		},
		ViewportState: &vk.PipelineViewportStateCreateInfo{
			SType:         vk.StructureTypePipelineViewportStateCreateInfo,
			ViewportCount: 1,
			Viewports:     []vk.Viewport{{Width: 64, Height: 64, MaxDepth: 1}},
			ScissorCount:  1,
			Scissors:      []vk.Rect2D{{Extent: vk.Extent2D{Width: 64, Height: 64}}},
		},
		RasterizationState: &vk.PipelineRasterizationStateCreateInfo{
			SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
			PolygonMode: vk.PolygonModeFill,
			FrontFace:   vk.FrontFaceCounterClockwise,
			LineWidth:   1,
		},
		MultisampleState: &vk.PipelineMultisampleStateCreateInfo{
			SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
			RasterizationSamples: vk.SampleCount1Bit,
		},
		Layout:            1,
		RenderPass:        rp,
		Subpass:           subpass,
		BasePipelineIndex: -1,
	}
}

// badBlend enables a logic op with a value outside the enumeration.
func badBlend() *vk.PipelineColorBlendStateCreateInfo {
	return &vk.PipelineColorBlendStateCreateInfo{
		SType:         vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable: vk.True,
		LogicOp:       vk.LogicOp(99),
	}
}

func createPipeline(f *fixture, info vk.GraphicsPipelineCreateInfo) (vk.Result, vk.Pipeline) {
	out := make([]vk.Pipeline, 1)
	r := f.l.CreateGraphicsPipelines(f.dev, 0, 1, []vk.GraphicsPipelineCreateInfo{info}, out)
	return r, out[0]
}

func TestPipelineColorBlendIgnoredWithoutColorAttachments(t *testing.T) {
	f := newFixture(t)
	rp := renderPass(t, f, vk.SubpassDescription{}, nil)

	info := pipelineInfo(rp, 0)
	info.ColorBlendState = badBlend()
	r, p := createPipeline(f, info)
	assert.Equal(t, vk.Success, r, "reports: %v", f.rec.Reports())
	assert.NotZero(t, p)
	assert.True(t, f.drv.Called("vkCreateGraphicsPipelines"))
}

func TestPipelineColorBlendValidatedWithColorAttachments(t *testing.T) {
	f := newFixture(t)
	rp := renderPass(t, f, vk.SubpassDescription{
		ColorAttachmentCount: 1,
		ColorAttachments:     []vk.AttachmentReference{{Attachment: 0, Layout: vk.ImageLayoutColorAttachmentOptimal}},
	}, colorAttachment())

	info := pipelineInfo(rp, 0)
	info.ColorBlendState = badBlend()
	r, _ := createPipeline(f, info)
	f.requireBlockedAt(t, r, "vkCreateGraphicsPipelines", "pCreateInfos[0].pColorBlendState.logicOp")

	f.rec.Reset()
	info.ColorBlendState = nil
	r, _ = createPipeline(f, info)
	f.requireBlockedAt(t, r, "vkCreateGraphicsPipelines", "pCreateInfos[0].pColorBlendState")
	assert.Equal(t, errors.CodeRequiredParameter, f.rec.Blocking()[0].Code)
}

func TestPipelineColorBlendValidatedForUntrackedRenderPass(t *testing.T) {
	f := newFixture(t)

	info := pipelineInfo(vk.RenderPass(0xbeef), 0)
	info.ColorBlendState = badBlend()
	r, _ := createPipeline(f, info)
	f.requireBlockedAt(t, r, "vkCreateGraphicsPipelines", "pCreateInfos[0].pColorBlendState.logicOp")
}

func TestPipelineSubpassOutOfRange(t *testing.T) {
	f := newFixture(t)
	rp := renderPass(t, f, vk.SubpassDescription{}, nil)

	r, _ := createPipeline(f, pipelineInfo(rp, 3))
	f.requireBlockedAt(t, r, "vkCreateGraphicsPipelines", "pCreateInfos[0].subpass")
}

func TestAdvisoryViolationForwards(t *testing.T) {
	f := newFixture(t)
	cb := f.commandBuffer(t)

	assert.Equal(t, vk.Success, f.l.CmdDraw(cb, 0, 1, 0, 0))
	assert.True(t, f.drv.Called("vkCmdDraw"))
	rep, ok := f.reportAt("vertexCount")
	require.True(t, ok)
	assert.Equal(t, errors.SeverityWarning, rep.Severity)
	assert.Empty(t, f.rec.Blocking())
}

func TestApplySettingsBlockOn(t *testing.T) {
	f := newFixture(t)
	cb := f.commandBuffer(t)

	s := f.l.Settings()
	s.BlockOn = errors.SeverityWarning
	f.l.ApplySettings(s)
	assert.Equal(t, errors.SeverityWarning, f.l.Settings().BlockOn)

	assert.Equal(t, vk.ErrorValidationFailedEXT, f.l.CmdDraw(cb, 0, 1, 0, 0))
	assert.False(t, f.drv.Called("vkCmdDraw"))

	s.BlockOn = 0
	f.l.ApplySettings(s)
	assert.Equal(t, vk.Success, f.l.CmdDraw(cb, 0, 1, 0, 0))
}

func TestCallbackAbortBlocks(t *testing.T) {
	f := newFixture(t)
	cb := f.commandBuffer(t)

	var got []string
	var handle vk.DebugReportCallbackEXT
	r := f.l.CreateDebugReportCallbackEXT(f.inst, &vk.DebugReportCallbackCreateInfoEXT{
		SType: vk.StructureTypeDebugReportCallbackCreateInfoEXT,
		Flags: vk.DebugReportWarningBitEXT,
		Callback: func(flags vk.DebugReportFlagsEXT, _ vk.DebugReportObjectTypeEXT, _, _ uint64, _ int32,
			prefix, message string, userData any) bool {
			got = append(got, prefix+": "+message)
			assert.Equal(t, "ud", userData)
			return true
		},
		UserData: "ud",
	}, &handle)
	require.Equal(t, vk.Success, r)

	assert.Equal(t, vk.ErrorValidationFailedEXT, f.l.CmdDraw(cb, 0, 1, 0, 0))
	require.Len(t, got, 1)
	assert.Contains(t, got[0], diag.LayerPrefix)
	assert.False(t, f.drv.Called("vkCmdDraw"))

	require.Equal(t, vk.Success, f.l.DestroyDebugReportCallbackEXT(f.inst, handle))
	assert.Equal(t, vk.Success, f.l.CmdDraw(cb, 0, 1, 0, 0))
	assert.Len(t, got, 1)
}

func TestCallbackNeedsExtension(t *testing.T) {
	f := newFixture(t)

	var inst vk.Instance
	require.Equal(t, vk.Success, f.l.CreateInstance(&vk.InstanceCreateInfo{SType: vk.StructureTypeInstanceCreateInfo}, &inst))
	assert.Equal(t, 2, f.l.State().Sessions())

	var handle vk.DebugReportCallbackEXT
	r := f.l.CreateDebugReportCallbackEXT(inst, &vk.DebugReportCallbackCreateInfoEXT{
		SType: vk.StructureTypeDebugReportCallbackCreateInfoEXT,
		Flags: vk.DebugReportErrorBitEXT,
		Callback: func(vk.DebugReportFlagsEXT, vk.DebugReportObjectTypeEXT, uint64, uint64, int32, string, string, any) bool {
			return false
		},
	}, &handle)
	assert.Equal(t, vk.ErrorValidationFailedEXT, r)
	assert.Equal(t, 1, f.rec.Count(errors.CodeExtensionNotEnabled))
	require.Equal(t, vk.Success, f.l.DestroyInstance(inst))
}

func TestCreateInfoCallbackInactiveAfterCreate(t *testing.T) {
	f := newFixture(t)

	var transient atomic.Int32
	var inst vk.Instance
	require.Equal(t, vk.Success, f.l.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		Next: &vk.DebugReportCallbackCreateInfoEXT{
			SType: vk.StructureTypeDebugReportCallbackCreateInfoEXT,
			Flags: vk.DebugReportErrorBitEXT | vk.DebugReportWarningBitEXT,
			Callback: func(vk.DebugReportFlagsEXT, vk.DebugReportObjectTypeEXT, uint64, uint64, int32, string, string, any) bool {
				transient.Add(1)
				return false
			},
		},
		EnabledExtensionCount: 1,
		EnabledExtensionNames: []string{vk.EXTDebugReportExtensionName},
	}, &inst))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := f.l.DebugReportMessageEXT(inst, vk.DebugReportErrorBitEXT, vk.DebugReportObjectTypeEXT(0x7fff),
				0, 0, 0, "app", "bad object type")
			assert.Equal(t, vk.ErrorValidationFailedEXT, r)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, f.rec.Count(errors.CodeUnrecognizedValue))
	assert.Zero(t, transient.Load(), "create-info callbacks only see CreateInstance and DestroyInstance")
	require.Equal(t, vk.Success, f.l.DestroyInstance(inst))
}

func TestCapabilityQueryOncePerDevice(t *testing.T) {
	calls := 0
	query := layer.CapabilityQueryFunc(func(pd vk.PhysicalDevice, info *vk.DeviceCreateInfo) layer.Capabilities {
		calls++
		return layer.Capabilities{
			Features: layer.EnabledFeatures(info),
			Limits:   nulldriver.DefaultLimits(),
		}
	})
	f := newFixture(t, layer.WithCapabilityQuery(query))
	assert.Equal(t, 1, calls)

	var dev vk.Device
	r := f.l.CreateDevice(f.pd, &vk.DeviceCreateInfo{SType: vk.StructureTypeDeviceCreateInfo}, &dev)
	assert.Equal(t, vk.ErrorValidationFailedEXT, r)
	assert.Equal(t, 1, calls, "blocked creation does not query")

	f.createDevice(t, defaultQueues())
	assert.Equal(t, 2, calls)
}

func TestFeatureGatedCommand(t *testing.T) {
	f := newFixture(t)
	cb := f.commandBuffer(t)

	r := f.l.CmdSetLineWidth(cb, 2)
	f.requireBlockedAt(t, r, "vkCmdSetLineWidth", "lineWidth")
	assert.Equal(t, errors.CodeDeviceFeature, f.rec.Blocking()[0].Code)
}

func TestUnknownKeyPanics(t *testing.T) {
	f := newFixture(t)
	stale := vk.Device{Key: 0xdead0000, ID: 1}

	want := errors.Internal("vkCreateBuffer", "no connection for dispatch key %#x", uint64(0xdead0000))
	assert.PanicsWithError(t, want.Error(), func() {
		var buf vk.Buffer
		f.l.CreateBuffer(stale, bufferInfo(vk.SharingModeExclusive, 0, nil), &buf)
	})

	got := func() (v any) {
		defer func() { v = recover() }()
		var buf vk.Buffer
		f.l.CreateBuffer(stale, bufferInfo(vk.SharingModeExclusive, 0, nil), &buf)
		return nil
	}()
	e, ok := got.(*errors.Error)
	require.True(t, ok, "panic value %T", got)
	assert.Equal(t, want, e)
	assert.Equal(t, errors.CategoryInternal, e.Category)
	assert.Empty(t, f.rec.Reports(), "internal errors never reach a sink")
	assert.False(t, f.drv.Called("vkCreateBuffer"))
}

func TestDestroyLifecycle(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 2, f.l.State().Len())
	assert.Equal(t, 1, f.l.State().Sessions())

	var teardowns int
	f.l.State().OnTeardown(func() { teardowns++ })

	require.Equal(t, vk.Success, f.l.DestroyInstance(f.inst))
	assert.Equal(t, 0, f.l.State().Len(), "leaked device is dropped with its instance")
	assert.Equal(t, 0, f.l.State().Sessions())
	assert.Equal(t, 1, teardowns)

	assert.Equal(t, vk.Success, f.l.DestroyInstance(vk.Instance{}), "null instance is a no-op")
}

func TestHistoryKeepsRecentReports(t *testing.T) {
	f := newFixture(t)
	cb := f.commandBuffer(t)

	for range 3 {
		f.l.CmdDraw(cb, 0, 1, 0, 0)
	}
	hist := f.l.History(f.inst)
	require.Len(t, hist, 3)
	assert.Equal(t, "vkCmdDraw", hist[2].Op)
	assert.Nil(t, f.l.History(vk.Instance{Key: 0x1234, ID: 1}))
}
