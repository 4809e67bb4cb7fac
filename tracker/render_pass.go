package tracker

import "github.com/wippyai/vk-validation/vk"

// SubpassUsage records which attachment kinds a subpass references.
type SubpassUsage struct {
	Color        bool
	DepthStencil bool
}

// RenderPassUsage maps render pass handles to per-subpass usage.
type RenderPassUsage struct {
	passes map[vk.RenderPass][]SubpassUsage
}

// NewRenderPassUsage creates an empty tracker.
func NewRenderPassUsage() *RenderPassUsage {
	return &RenderPassUsage{passes: make(map[vk.RenderPass][]SubpassUsage)}
}

// ScanSubpasses derives usage from subpass descriptions. A reference whose
// attachment is vk.AttachmentUnused does not count.
func ScanSubpasses(subpasses []vk.SubpassDescription) []SubpassUsage {
	out := make([]SubpassUsage, len(subpasses))
	for i, sp := range subpasses {
		n := min(int(sp.ColorAttachmentCount), len(sp.ColorAttachments))
		for _, ref := range sp.ColorAttachments[:n] {
			if ref.Attachment != vk.AttachmentUnused {
				out[i].Color = true
				break
			}
		}
		if ds := sp.DepthStencilAttachment; ds != nil && ds.Attachment != vk.AttachmentUnused {
			out[i].DepthStencil = true
		}
	}
	return out
}

// Record stores the usage of rp, replacing an earlier record.
func (u *RenderPassUsage) Record(rp vk.RenderPass, usage []SubpassUsage) {
	cp := make([]SubpassUsage, len(usage))
	copy(cp, usage)
	u.passes[rp] = cp
}

// Lookup returns the usage of subpass of rp.
func (u *RenderPassUsage) Lookup(rp vk.RenderPass, subpass uint32) (SubpassUsage, bool) {
	sp, ok := u.passes[rp]
	if !ok || int64(subpass) >= int64(len(sp)) {
		return SubpassUsage{}, false
	}
	return sp[subpass], true
}

// SubpassCount returns the number of subpasses recorded for rp.
func (u *RenderPassUsage) SubpassCount(rp vk.RenderPass) (uint32, bool) {
	sp, ok := u.passes[rp]
	return uint32(len(sp)), ok
}

// Remove drops rp and reports whether it was recorded.
func (u *RenderPassUsage) Remove(rp vk.RenderPass) bool {
	if _, ok := u.passes[rp]; !ok {
		return false
	}
	delete(u.passes, rp)
	return true
}

// Len returns the number of recorded render passes.
func (u *RenderPassUsage) Len() int {
	return len(u.passes)
}
