package scenario

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/layer"
	"github.com/wippyai/vk-validation/vk"
)

// opFunc performs one step. The returned handle is bound to the step's As
// name when the step passes.
type opFunc func(r *Runner, args *yaml.Node) (vk.Result, any, error)

var ops = map[string]opFunc{
	"createDevice":                   createDevice,
	"destroyDevice":                  destroyDevice,
	"getDeviceQueue":                 getDeviceQueue,
	"createBuffer":                   createBuffer,
	"destroyBuffer":                  destroyBuffer,
	"allocateMemory":                 allocateMemory,
	"freeMemory":                     freeMemory,
	"createRenderPass":               createRenderPass,
	"destroyRenderPass":              destroyRenderPass,
	"createGraphicsPipeline":         createGraphicsPipeline,
	"createCommandPool":              createCommandPool,
	"allocateCommandBuffer":          allocateCommandBuffer,
	"beginCommandBuffer":             beginCommandBuffer,
	"cmdDraw":                        cmdDraw,
	"cmdDispatch":                    cmdDispatch,
	"cmdSetLineWidth":                cmdSetLineWidth,
	"cmdSetViewport":                 cmdSetViewport,
	"getPhysicalDeviceProperties":    getPhysicalDeviceProperties,
	"getPhysicalDeviceFeatures":      getPhysicalDeviceFeatures,
	"getPhysicalDeviceQueueFamilies": getPhysicalDeviceQueueFamilies,
	"createDebugCallback":            createDebugCallback,
	"destroyDebugCallback":           destroyDebugCallback,
	"destroyInstance":                destroyInstance,
	"settings":                       applySettings,
	"fault":                          fault,
	"corrupt":                        corrupt,
	"clearFaults":                    clearFaults,
}

// Ops lists the operation names a step can use.
func Ops() []string {
	out := make([]string, 0, len(ops))
	for name := range ops {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// decode fills v from the step's args. Missing args leave v untouched, so
// callers preset defaults.
func decode(args *yaml.Node, v any) error {
	if args.Kind == 0 {
		return nil
	}
	if err := args.Decode(v); err != nil {
		return fmt.Errorf("args: %w", err)
	}
	return nil
}

type deviceArgs struct {
	Physical string `yaml:"physical"`
	Queues   []struct {
		Family     uint32    `yaml:"family"`
		Count      uint32    `yaml:"count"`
		Priorities []float32 `yaml:"priorities"`
	} `yaml:"queues"`
	Features []string `yaml:"features"`
}

func createDevice(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := deviceArgs{Physical: "$physical"}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	pd, err := lookup[vk.PhysicalDevice](r, a.Physical)
	if err != nil {
		return 0, nil, err
	}
	queues := make([]vk.DeviceQueueCreateInfo, len(a.Queues))
	for i, q := range a.Queues {
		prio := q.Priorities
		if prio == nil {
			prio = make([]float32, q.Count)
			for j := range prio {
				prio[j] = 1
			}
		}
		queues[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: q.Family,
			QueueCount:       q.Count,
			QueuePriorities:  prio,
		}
	}
	info := &vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queues)),
		QueueCreateInfos:     queues,
	}
	if len(a.Features) > 0 {
		info.EnabledFeatures = &vk.PhysicalDeviceFeatures{}
		for _, name := range a.Features {
			if err := setFeature(info.EnabledFeatures, name, true); err != nil {
				return 0, nil, err
			}
		}
	}
	var dev vk.Device
	return r.l.CreateDevice(pd, info, &dev), dev, nil
}

type deviceRef struct {
	Device string `yaml:"device"`
}

func destroyDevice(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a deviceRef
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	return r.l.DestroyDevice(dev), nil, nil
}

func getDeviceQueue(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Device string `yaml:"device"`
		Family uint32 `yaml:"family"`
		Index  uint32 `yaml:"index"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	var q vk.Queue
	return r.l.GetDeviceQueue(dev, a.Family, a.Index, &q), q, nil
}

func createBuffer(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		Device   string              `yaml:"device"`
		Size     vk.DeviceSize       `yaml:"size"`
		Usage    vk.BufferUsageFlags `yaml:"usage"`
		Sharing  vk.SharingMode      `yaml:"sharing"`
		Families []uint32            `yaml:"families"`
		// FamilyCount overrides the count derived from Families.
		FamilyCount *uint32 `yaml:"family_count"`
	}{Size: 256, Usage: vk.BufferUsageTransferSrcBit}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	count := uint32(len(a.Families))
	if a.FamilyCount != nil {
		count = *a.FamilyCount
	}
	var buf vk.Buffer
	res := r.l.CreateBuffer(dev, &vk.BufferCreateInfo{
		SType:                 vk.StructureTypeBufferCreateInfo,
		Size:                  a.Size,
		Usage:                 a.Usage,
		SharingMode:           a.Sharing,
		QueueFamilyIndexCount: count,
		QueueFamilyIndices:    a.Families,
	}, &buf)
	return res, buf, nil
}

func destroyBuffer(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Device string `yaml:"device"`
		Buffer string `yaml:"buffer"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	buf, err := lookup[vk.Buffer](r, a.Buffer)
	if err != nil {
		return 0, nil, err
	}
	return r.l.DestroyBuffer(dev, buf), nil, nil
}

func allocateMemory(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		Device    string        `yaml:"device"`
		Size      vk.DeviceSize `yaml:"size"`
		TypeIndex uint32        `yaml:"type_index"`
	}{Size: 4096}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	var mem vk.DeviceMemory
	res := r.l.AllocateMemory(dev, &vk.MemoryAllocateInfo{
		SType:           vk.StructureTypeMemoryAllocateInfo,
		AllocationSize:  a.Size,
		MemoryTypeIndex: a.TypeIndex,
	}, &mem)
	return res, mem, nil
}

func freeMemory(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Device string `yaml:"device"`
		Memory string `yaml:"memory"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	mem, err := lookup[vk.DeviceMemory](r, a.Memory)
	if err != nil {
		return 0, nil, err
	}
	return r.l.FreeMemory(dev, mem), nil, nil
}

// createRenderPass builds a render pass from per-subpass attachment usage.
// Color attachment i of every subpass refers to attachment i; a depth
// attachment, if any subpass uses one, follows the color attachments.
func createRenderPass(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Device    string `yaml:"device"`
		Subpasses []struct {
			Color int  `yaml:"color"`
			Depth bool `yaml:"depth"`
		} `yaml:"subpasses"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}

	colors, depth := 0, false
	for _, s := range a.Subpasses {
		colors = max(colors, s.Color)
		depth = depth || s.Depth
	}
	attachments := make([]vk.AttachmentDescription, 0, colors+1)
	for range colors {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         vk.FormatB8g8r8a8Unorm,
			Samples:        vk.SampleCount1Bit,
			LoadOp:         vk.AttachmentLoadOpClear,
			StoreOp:        vk.AttachmentStoreOpStore,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			FinalLayout:    vk.ImageLayoutColorAttachmentOptimal,
		})
	}
	depthRef := vk.AttachmentReference{Attachment: uint32(colors), Layout: vk.ImageLayoutDepthStencilAttachmentOptimal}
	if depth {
		attachments = append(attachments, vk.AttachmentDescription{
			Format:         vk.FormatD32Sfloat,
			Samples:        vk.SampleCount1Bit,
			LoadOp:         vk.AttachmentLoadOpClear,
			StoreOp:        vk.AttachmentStoreOpDontCare,
			StencilLoadOp:  vk.AttachmentLoadOpDontCare,
			StencilStoreOp: vk.AttachmentStoreOpDontCare,
			FinalLayout:    vk.ImageLayoutDepthStencilAttachmentOptimal,
		})
	}

	subpasses := make([]vk.SubpassDescription, len(a.Subpasses))
	for i, s := range a.Subpasses {
		refs := make([]vk.AttachmentReference, s.Color)
		for j := range refs {
			refs[j] = vk.AttachmentReference{Attachment: uint32(j), Layout: vk.ImageLayoutColorAttachmentOptimal}
		}
		subpasses[i] = vk.SubpassDescription{
			PipelineBindPoint:    vk.PipelineBindPointGraphics,
			ColorAttachmentCount: uint32(s.Color),
			ColorAttachments:     refs,
		}
		if s.Depth {
			ref := depthRef
			subpasses[i].DepthStencilAttachment = &ref
		}
	}

	var rp vk.RenderPass
	res := r.l.CreateRenderPass(dev, &vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: uint32(len(attachments)),
		Attachments:     attachments,
		SubpassCount:    uint32(len(subpasses)),
		Subpasses:       subpasses,
	}, &rp)
	return res, rp, nil
}

func destroyRenderPass(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Device     string `yaml:"device"`
		RenderPass string `yaml:"render_pass"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	rp, err := lookup[vk.RenderPass](r, a.RenderPass)
	if err != nil {
		return 0, nil, err
	}
	return r.l.DestroyRenderPass(dev, rp), nil, nil
}

type pipelineArgs struct {
	Device     string `yaml:"device"`
	RenderPass string `yaml:"render_pass"`
	// Untracked names a render pass handle the layer never saw created.
	Untracked         uint64  `yaml:"untracked_render_pass"`
	Subpass           uint32  `yaml:"subpass"`
	LineWidth         float32 `yaml:"line_width"`
	RasterizerDiscard bool    `yaml:"rasterizer_discard"`
	ColorBlend        *struct {
		LogicOpEnable bool       `yaml:"logic_op_enable"`
		LogicOp       vk.LogicOp `yaml:"logic_op"`
		Attachments   int        `yaml:"attachments"`
	} `yaml:"color_blend"`
	DepthStencil *struct {
		DepthTest bool         `yaml:"depth_test"`
		CompareOp vk.CompareOp `yaml:"compare_op"`
	} `yaml:"depth_stencil"`
}

func createGraphicsPipeline(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := pipelineArgs{LineWidth: 1}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	rp, err := lookup[vk.RenderPass](r, a.RenderPass)
	if err != nil {
		return 0, nil, err
	}
	if a.Untracked != 0 {
		rp = vk.RenderPass(a.Untracked)
	}

	info := vk.GraphicsPipelineCreateInfo{
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
			SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
			RasterizerDiscardEnable: vk.B(a.RasterizerDiscard),
			PolygonMode:             vk.PolygonModeFill,
			FrontFace:               vk.FrontFaceCounterClockwise,
			LineWidth:               a.LineWidth,
		},
		MultisampleState: &vk.PipelineMultisampleStateCreateInfo{
			SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
			RasterizationSamples: vk.SampleCount1Bit,
		},
		Layout:            1,
		RenderPass:        rp,
		Subpass:           a.Subpass,
		BasePipelineIndex: -1,
	}
	if cb := a.ColorBlend; cb != nil {
		atts := make([]vk.PipelineColorBlendAttachmentState, cb.Attachments)
		for i := range atts {
			atts[i].ColorWriteMask = vk.ColorComponentRBit | vk.ColorComponentGBit | vk.ColorComponentBBit | vk.ColorComponentABit
		}
		info.ColorBlendState = &vk.PipelineColorBlendStateCreateInfo{
			SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
			LogicOpEnable:   vk.B(cb.LogicOpEnable),
			LogicOp:         cb.LogicOp,
			AttachmentCount: uint32(len(atts)),
			Attachments:     atts,
		}
	}
	if ds := a.DepthStencil; ds != nil {
		info.DepthStencilState = &vk.PipelineDepthStencilStateCreateInfo{
			SType:           vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthTestEnable: vk.B(ds.DepthTest),
			DepthCompareOp:  ds.CompareOp,
		}
	}

	out := make([]vk.Pipeline, 1)
	res := r.l.CreateGraphicsPipelines(dev, 0, 1, []vk.GraphicsPipelineCreateInfo{info}, out)
	return res, out[0], nil
}

func createCommandPool(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Device string `yaml:"device"`
		Family uint32 `yaml:"family"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	var pool vk.CommandPool
	res := r.l.CreateCommandPool(dev, &vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		QueueFamilyIndex: a.Family,
	}, &pool)
	return res, pool, nil
}

func allocateCommandBuffer(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		Device string                `yaml:"device"`
		Pool   string                `yaml:"pool"`
		Level  vk.CommandBufferLevel `yaml:"level"`
	}{Level: vk.CommandBufferLevelPrimary}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	dev, err := lookup[vk.Device](r, a.Device)
	if err != nil {
		return 0, nil, err
	}
	pool, err := lookup[vk.CommandPool](r, a.Pool)
	if err != nil {
		return 0, nil, err
	}
	cbs := make([]vk.CommandBuffer, 1)
	res := r.l.AllocateCommandBuffers(dev, &vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool,
		Level:              a.Level,
		CommandBufferCount: 1,
	}, cbs)
	return res, cbs[0], nil
}

type commandArgs struct {
	CommandBuffer string `yaml:"command_buffer"`
}

func (a commandArgs) resolve(r *Runner) (vk.CommandBuffer, error) {
	return lookup[vk.CommandBuffer](r, a.CommandBuffer)
}

func beginCommandBuffer(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a commandArgs
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	cb, err := a.resolve(r)
	if err != nil {
		return 0, nil, err
	}
	return r.l.BeginCommandBuffer(cb, &vk.CommandBufferBeginInfo{SType: vk.StructureTypeCommandBufferBeginInfo}), nil, nil
}

func cmdDraw(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		commandArgs   `yaml:",inline"`
		VertexCount   uint32 `yaml:"vertex_count"`
		InstanceCount uint32 `yaml:"instance_count"`
		FirstVertex   uint32 `yaml:"first_vertex"`
		FirstInstance uint32 `yaml:"first_instance"`
	}{VertexCount: 3, InstanceCount: 1}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	cb, err := a.resolve(r)
	if err != nil {
		return 0, nil, err
	}
	return r.l.CmdDraw(cb, a.VertexCount, a.InstanceCount, a.FirstVertex, a.FirstInstance), nil, nil
}

func cmdDispatch(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		commandArgs `yaml:",inline"`
		X           uint32 `yaml:"x"`
		Y           uint32 `yaml:"y"`
		Z           uint32 `yaml:"z"`
	}{X: 1, Y: 1, Z: 1}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	cb, err := a.resolve(r)
	if err != nil {
		return 0, nil, err
	}
	return r.l.CmdDispatch(cb, a.X, a.Y, a.Z), nil, nil
}

func cmdSetLineWidth(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		commandArgs `yaml:",inline"`
		Width       float32 `yaml:"width"`
	}{Width: 1}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	cb, err := a.resolve(r)
	if err != nil {
		return 0, nil, err
	}
	return r.l.CmdSetLineWidth(cb, a.Width), nil, nil
}

func cmdSetViewport(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		commandArgs `yaml:",inline"`
		First       uint32  `yaml:"first"`
		Count       *uint32 `yaml:"count"`
		Viewports   []struct {
			X        float32 `yaml:"x"`
			Y        float32 `yaml:"y"`
			Width    float32 `yaml:"width"`
			Height   float32 `yaml:"height"`
			MinDepth float32 `yaml:"min_depth"`
			MaxDepth float32 `yaml:"max_depth"`
		} `yaml:"viewports"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	cb, err := a.resolve(r)
	if err != nil {
		return 0, nil, err
	}
	vps := make([]vk.Viewport, len(a.Viewports))
	for i, v := range a.Viewports {
		vps[i] = vk.Viewport{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height, MinDepth: v.MinDepth, MaxDepth: v.MaxDepth}
	}
	count := uint32(len(vps))
	if a.Count != nil {
		count = *a.Count
	}
	return r.l.CmdSetViewport(cb, a.First, count, vps), nil, nil
}

type physicalArgs struct {
	Physical string `yaml:"physical"`
}

func (r *Runner) physical(args *yaml.Node) (vk.PhysicalDevice, error) {
	a := physicalArgs{Physical: "$physical"}
	if err := decode(args, &a); err != nil {
		return vk.PhysicalDevice{}, err
	}
	return lookup[vk.PhysicalDevice](r, a.Physical)
}

func getPhysicalDeviceProperties(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	pd, err := r.physical(args)
	if err != nil {
		return 0, nil, err
	}
	var props vk.PhysicalDeviceProperties
	return r.l.GetPhysicalDeviceProperties(pd, &props), props, nil
}

func getPhysicalDeviceFeatures(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	pd, err := r.physical(args)
	if err != nil {
		return 0, nil, err
	}
	var features vk.PhysicalDeviceFeatures
	return r.l.GetPhysicalDeviceFeatures(pd, &features), features, nil
}

// getPhysicalDeviceQueueFamilies makes the count query and then the fill
// query. The result of the fill query is the step's result.
func getPhysicalDeviceQueueFamilies(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	pd, err := r.physical(args)
	if err != nil {
		return 0, nil, err
	}
	var count uint32
	if res := r.l.GetPhysicalDeviceQueueFamilyProperties(pd, &count, nil); res != vk.Success {
		return res, nil, nil
	}
	props := make([]vk.QueueFamilyProperties, count)
	res := r.l.GetPhysicalDeviceQueueFamilyProperties(pd, &count, props)
	return res, props[:count], nil
}

func createDebugCallback(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		Instance string                 `yaml:"instance"`
		Flags    vk.DebugReportFlagsEXT `yaml:"flags"`
		Abort    bool                   `yaml:"abort"`
	}{Instance: "$instance", Flags: vk.DebugReportErrorBitEXT | vk.DebugReportWarningBitEXT}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	inst, err := lookup[vk.Instance](r, a.Instance)
	if err != nil {
		return 0, nil, err
	}
	abort := a.Abort
	var cb vk.DebugReportCallbackEXT
	res := r.l.CreateDebugReportCallbackEXT(inst, &vk.DebugReportCallbackCreateInfoEXT{
		SType: vk.StructureTypeDebugReportCallbackCreateInfoEXT,
		Flags: a.Flags,
		Callback: func(_ vk.DebugReportFlagsEXT, _ vk.DebugReportObjectTypeEXT, _, _ uint64, _ int32,
			prefix, message string, _ any) bool {
			r.messages = append(r.messages, prefix+": "+message)
			return abort
		},
	}, &cb)
	return res, cb, nil
}

func destroyDebugCallback(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		Instance string `yaml:"instance"`
		Callback string `yaml:"callback"`
	}{Instance: "$instance"}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	inst, err := lookup[vk.Instance](r, a.Instance)
	if err != nil {
		return 0, nil, err
	}
	cb, err := lookup[vk.DebugReportCallbackEXT](r, a.Callback)
	if err != nil {
		return 0, nil, err
	}
	return r.l.DestroyDebugReportCallbackEXT(inst, cb), nil, nil
}

func destroyInstance(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	a := struct {
		Instance string `yaml:"instance"`
	}{Instance: "$instance"}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	inst, err := lookup[vk.Instance](r, a.Instance)
	if err != nil {
		return 0, nil, err
	}
	res := r.l.DestroyInstance(inst)
	if res == vk.Success && a.Instance == "$instance" {
		r.names["instance"] = vk.Instance{}
	}
	return res, nil, nil
}

// applySettings swaps the layer settings. Fields left out keep their values.
func applySettings(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		ReportFlags   *errors.Severity   `yaml:"report_flags"`
		BlockOn       *errors.Severity   `yaml:"block_on"`
		DebugAction   *layer.DebugAction `yaml:"debug_action"`
		DisabledCodes []errors.Code      `yaml:"disabled_codes"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	s := r.l.Settings()
	if a.ReportFlags != nil {
		s.ReportFlags = *a.ReportFlags
	}
	if a.BlockOn != nil {
		s.BlockOn = *a.BlockOn
	}
	if a.DebugAction != nil {
		s.DebugAction = *a.DebugAction
	}
	if a.DisabledCodes != nil {
		s.DisabledCodes = a.DisabledCodes
	}
	r.l.ApplySettings(s)
	return vk.Success, nil, nil
}

// fault makes the driver fail the named call with a result.
func fault(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Op     string    `yaml:"op"`
		Result vk.Result `yaml:"result"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	if a.Op == "" {
		return 0, nil, fmt.Errorf("args: op is required")
	}
	r.drv.FailWith(a.Op, a.Result)
	return vk.Success, nil, nil
}

// corrupt makes the driver return out-of-range outputs from the named call.
func corrupt(r *Runner, args *yaml.Node) (vk.Result, any, error) {
	var a struct {
		Op string `yaml:"op"`
	}
	if err := decode(args, &a); err != nil {
		return 0, nil, err
	}
	if a.Op == "" {
		return 0, nil, fmt.Errorf("args: op is required")
	}
	r.drv.Corrupt(a.Op)
	return vk.Success, nil, nil
}

func clearFaults(r *Runner, _ *yaml.Node) (vk.Result, any, error) {
	r.drv.ClearFaults()
	return vk.Success, nil, nil
}
