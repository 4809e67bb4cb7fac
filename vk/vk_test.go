package vk_test

import (
	"testing"

	"github.com/wippyai/vk-validation/enum"
	"github.com/wippyai/vk-validation/vk"
)

func TestScalarMembership(t *testing.T) {
	tests := []struct {
		name string
		v    enum.Value
		want bool
	}{
		{"image type 3d", vk.ImageType3d, true},
		{"image type past end", vk.ImageType(3), false},
		{"layout extension", vk.ImageLayoutPresentSrcKHR, true},
		{"layout between core and extension", vk.ImageLayout(9), false},
		{"mirror clamp", vk.SamplerAddressModeMirrorClampToEdge, true},
		{"negative topology", vk.PrimitiveTopology(-1), false},
		{"format last core", vk.FormatAstc12x12SrgbBlock, true},
		{"format gap", vk.Format(185), false},
		{"pvrtc", vk.FormatPvrtc24bppSrgbBlockIMG, true},
		{"cache header one", vk.PipelineCacheHeaderVersionOne, true},
		{"cache header zero", vk.PipelineCacheHeaderVersion(0), false},
		{"result validation failed", vk.ErrorValidationFailedEXT, true},
		{"result fragmented", vk.ErrorFragmentedPool, true},
		{"result unknown", vk.Result(-13), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsValid(); got != tt.want {
			t.Errorf("%s: IsValid() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFlagFormatting(t *testing.T) {
	usage := vk.BufferUsageTransferDstBit | vk.BufferUsageTransferSrcBit | vk.BufferUsageVertexBufferBit
	want := "VK_BUFFER_USAGE_TRANSFER_SRC_BIT|VK_BUFFER_USAGE_TRANSFER_DST_BIT|VK_BUFFER_USAGE_VERTEX_BUFFER_BIT"
	if got := usage.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := vk.BufferUsageFlags(0).String(); got != "0" {
		t.Errorf("zero flags = %q", got)
	}
}

func TestFlagOneBitOutsideMask(t *testing.T) {
	// eight declared bits plus one undeclared
	v := vk.ImageUsageFlags(0xff | 1<<8)
	if v.IsValid() {
		t.Fatal("expected invalid")
	}
	if got := v.String(); got != enum.Unrecognized {
		t.Errorf("String() = %q, want %q", got, enum.Unrecognized)
	}
	if got := vk.ImageUsageFlags(1 << 30).String(); got != enum.Unrecognized {
		t.Errorf("String() = %q", got)
	}
}

func TestShaderStageAllIsNotABit(t *testing.T) {
	if vk.ShaderStageAll.IsValid() {
		t.Error("VK_SHADER_STAGE_ALL has bits beyond the declared stages")
	}
	if !vk.ShaderStageAllGraphics.IsValid() {
		t.Error("ALL_GRAPHICS is a combination of declared bits")
	}
}

func TestUnmarshalText(t *testing.T) {
	var f vk.Format
	if err := f.UnmarshalText([]byte("R8G8B8A8_UNORM")); err != nil {
		t.Fatal(err)
	}
	if f != vk.FormatR8g8b8a8Unorm {
		t.Errorf("got %v", f)
	}

	var usage vk.BufferUsageFlags
	if err := usage.UnmarshalText([]byte("VK_BUFFER_USAGE_INDEX_BUFFER_BIT|VERTEX_BUFFER_BIT")); err != nil {
		t.Fatal(err)
	}
	if usage != vk.BufferUsageIndexBufferBit|vk.BufferUsageVertexBufferBit {
		t.Errorf("got %v", usage)
	}

	var mode vk.SharingMode
	if err := mode.UnmarshalText([]byte("SIDEWAYS")); err == nil {
		t.Error("expected parse error")
	}

	var b vk.Bool32
	if err := b.UnmarshalText([]byte("true")); err != nil || b != vk.True {
		t.Errorf("Bool32 = %v, err = %v", b, err)
	}
}

func TestRegistryCoversModel(t *testing.T) {
	for _, name := range []string{"VkResult", "VkFormat", "VkStructureType", "VkImageLayout",
		"VkSampleCountFlags", "VkDebugReportFlagsEXT", "VkPresentModeKHR", "VkValidationCheckEXT"} {
		if _, ok := enum.Lookup(name); !ok {
			t.Errorf("%s not registered", name)
		}
	}
	for _, d := range enum.All() {
		for _, m := range d.Members() {
			if !d.ValidRaw(m.Value) {
				t.Errorf("%s: member %s not valid", d.TypeName(), m.Name)
			}
			v, err := d.ParseRaw(m.Name)
			if err != nil || v != m.Value {
				t.Errorf("%s: ParseRaw(%s) = %d, %v", d.TypeName(), m.Name, v, err)
			}
		}
	}
}

func TestResult(t *testing.T) {
	if !vk.ErrorDeviceLost.IsError() || vk.Incomplete.IsError() || !vk.Success.IsSuccess() {
		t.Error("error classification")
	}
	if got := vk.ErrorValidationFailedEXT.String(); got != "VK_ERROR_VALIDATION_FAILED_EXT" {
		t.Errorf("String() = %q", got)
	}
}

func TestFormatClassification(t *testing.T) {
	if !vk.FormatD24UnormS8Uint.HasDepth() || !vk.FormatD24UnormS8Uint.HasStencil() {
		t.Error("D24S8")
	}
	if vk.FormatS8Uint.HasDepth() || !vk.FormatS8Uint.IsDepthOrStencil() {
		t.Error("S8")
	}
	if vk.FormatR8g8b8a8Unorm.IsDepthOrStencil() || vk.FormatR8g8b8a8Unorm.IsCompressed() {
		t.Error("RGBA8")
	}
	if !vk.FormatBc7SrgbBlock.IsCompressed() || !vk.FormatPvrtc12bppUnormBlockIMG.IsCompressed() {
		t.Error("compressed")
	}
}

func TestChainWalk(t *testing.T) {
	var typedNil *vk.ImageFormatListCreateInfoKHR
	list := &vk.ImageFormatListCreateInfoKHR{
		SType: vk.StructureTypeImageFormatListCreateInfoKHR,
		Next:  typedNil,
	}
	head := &vk.DedicatedAllocationImageCreateInfoNV{
		SType: vk.StructureTypeDedicatedAllocationImageCreateInfoNV,
		Next:  list,
	}

	var seen []vk.StructureType
	vk.Walk(head, func(_ int, e vk.Extension) bool {
		seen = append(seen, e.StructType())
		return true
	})
	if len(seen) != 2 {
		t.Fatalf("walked %d links, want 2", len(seen))
	}

	got, ok := vk.Find[*vk.ImageFormatListCreateInfoKHR](head)
	if !ok || got != list {
		t.Error("Find did not return the format list")
	}
	if _, ok := vk.Find[*vk.PhysicalDeviceFeatures2KHR](head); ok {
		t.Error("Find returned a struct not in the chain")
	}
}

func TestChainWalkStopsOnCycle(t *testing.T) {
	a := &vk.BaseInStructure{SType: 7}
	a.Next = a
	n := 0
	vk.Walk(a, func(int, vk.Extension) bool { n++; return true })
	if n != 64 {
		t.Errorf("walked %d links", n)
	}
}

func TestFeaturesUnsupported(t *testing.T) {
	supported := vk.PhysicalDeviceFeatures{SamplerAnisotropy: vk.True, WideLines: vk.True}
	enabled := vk.PhysicalDeviceFeatures{
		SamplerAnisotropy:         vk.True,
		MultiViewport:             vk.True,
		TextureCompressionASTCLDR: vk.True,
	}
	got := enabled.Unsupported(&supported)
	want := []string{"multiViewport", "textureCompressionASTC_LDR"}
	if len(got) != len(want) {
		t.Fatalf("Unsupported() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Unsupported()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDispatchableKeys(t *testing.T) {
	dev := vk.Device{Key: 9, ID: 1}
	q := vk.Queue{Key: dev.Key, ID: 2}
	if q.Key != dev.Key || q.ObjectType() != vk.DebugReportObjectTypeQueueEXT {
		t.Error("queue shares the device key")
	}
	if !(vk.Instance{}).IsNull() {
		t.Error("zero instance is null")
	}
	var h vk.Handle = vk.Buffer(5)
	if h.Handle() != 5 || h.ObjectType() != vk.DebugReportObjectTypeBufferEXT {
		t.Error("buffer handle")
	}
}

func TestVersion(t *testing.T) {
	v := vk.MakeVersion(1, 0, 61)
	if got := vk.VersionString(v); got != "1.0.61" {
		t.Errorf("VersionString = %q", got)
	}
}
