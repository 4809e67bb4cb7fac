package tracker_test

import (
	"testing"

	"github.com/wippyai/vk-validation/tracker"
	"github.com/wippyai/vk-validation/vk"
)

func TestQueueFamilyTable(t *testing.T) {
	table := tracker.NewQueueFamilyTable([]tracker.FamilyCount{{Family: 2, Count: 2}, {Family: 0, Count: 1}})

	tests := []struct {
		family uint32
		count  uint32
		ok     bool
	}{
		{2, 2, true},
		{0, 1, true},
		{1, 0, false},
		{vk.QueueFamilyIgnored, 0, false},
	}
	for _, tt := range tests {
		c, ok := table.Count(tt.family)
		if c != tt.count || ok != tt.ok {
			t.Errorf("Count(%d) = %d, %v; want %d, %v", tt.family, c, ok, tt.count, tt.ok)
		}
	}
	if fams := table.Families(); len(fams) != 2 || fams[0] != 0 || fams[1] != 2 {
		t.Errorf("Families() = %v", fams)
	}
	if table.Len() != 2 || !table.Has(2) || table.Has(3) {
		t.Error("Len/Has")
	}
}

func TestQueueFamilyTable_CopiesInput(t *testing.T) {
	pairs := []tracker.FamilyCount{{Family: 1, Count: 4}}
	table := tracker.NewQueueFamilyTable(pairs)
	pairs[0].Count = 9
	if c, _ := table.Count(1); c != 4 {
		t.Errorf("table changed with its input: count = %d", c)
	}
}

func TestQueueFamilyTable_Nil(t *testing.T) {
	var table *tracker.QueueFamilyTable
	if table.Has(0) || table.Len() != 0 || table.Families() != nil {
		t.Error("nil table must be empty")
	}
}

func TestFromDeviceCreateInfo(t *testing.T) {
	info := &vk.DeviceCreateInfo{
		QueueCreateInfoCount: 2,
		QueueCreateInfos: []vk.DeviceQueueCreateInfo{
			{QueueFamilyIndex: 0, QueueCount: 1},
			{QueueFamilyIndex: 2, QueueCount: 2},
			{QueueFamilyIndex: 5, QueueCount: 3},
		},
	}
	pairs := tracker.FromDeviceCreateInfo(info)
	if len(pairs) != 2 || pairs[1] != (tracker.FamilyCount{Family: 2, Count: 2}) {
		t.Errorf("pairs = %v", pairs)
	}
	if tracker.FromDeviceCreateInfo(nil) != nil {
		t.Error("nil info")
	}
}

func TestScanSubpasses(t *testing.T) {
	unused := vk.AttachmentReference{Attachment: vk.AttachmentUnused}
	used := vk.AttachmentReference{Attachment: 0, Layout: vk.ImageLayoutColorAttachmentOptimal}
	depth := vk.AttachmentReference{Attachment: 1, Layout: vk.ImageLayoutDepthStencilAttachmentOptimal}

	subpasses := []vk.SubpassDescription{
		{},
		{ColorAttachmentCount: 2, ColorAttachments: []vk.AttachmentReference{unused, used}},
		{ColorAttachmentCount: 1, ColorAttachments: []vk.AttachmentReference{unused}, DepthStencilAttachment: &unused},
		{DepthStencilAttachment: &depth},
		{ColorAttachmentCount: 1, ColorAttachments: []vk.AttachmentReference{unused, used}},
	}
	want := []tracker.SubpassUsage{
		{},
		{Color: true},
		{},
		{DepthStencil: true},
		{},
	}
	got := tracker.ScanSubpasses(subpasses)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("subpass %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRenderPassUsage(t *testing.T) {
	u := tracker.NewRenderPassUsage()
	u.Record(10, []tracker.SubpassUsage{{Color: true}, {DepthStencil: true}})

	if sp, ok := u.Lookup(10, 1); !ok || !sp.DepthStencil || sp.Color {
		t.Errorf("Lookup(10, 1) = %+v, %v", sp, ok)
	}
	if _, ok := u.Lookup(10, 2); ok {
		t.Error("subpass past the end")
	}
	if _, ok := u.Lookup(11, 0); ok {
		t.Error("unknown render pass")
	}
	if n, ok := u.SubpassCount(10); !ok || n != 2 {
		t.Errorf("SubpassCount = %d, %v", n, ok)
	}
	if !u.Remove(10) || u.Remove(10) {
		t.Error("Remove must succeed once")
	}
	if u.Len() != 0 {
		t.Errorf("Len() = %d", u.Len())
	}
}
