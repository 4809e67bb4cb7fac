package tracker

import (
	"sort"

	"github.com/wippyai/vk-validation/vk"
)

// FamilyCount pairs a queue family index with the number of queues requested.
type FamilyCount struct {
	Family uint32
	Count  uint32
}

// QueueFamilyTable maps queue family index to queue count. It is populated
// once at device creation and only read afterwards.
type QueueFamilyTable struct {
	counts map[uint32]uint32
}

// NewQueueFamilyTable copies pairs verbatim. A family listed twice keeps the
// first count; device creation rejects duplicates before this runs.
func NewQueueFamilyTable(pairs []FamilyCount) *QueueFamilyTable {
	t := &QueueFamilyTable{counts: make(map[uint32]uint32, len(pairs))}
	for _, p := range pairs {
		if _, dup := t.counts[p.Family]; dup {
			continue
		}
		t.counts[p.Family] = p.Count
	}
	return t
}

// FromDeviceCreateInfo extracts the family/count pairs of a device create info.
func FromDeviceCreateInfo(info *vk.DeviceCreateInfo) []FamilyCount {
	if info == nil {
		return nil
	}
	n := min(int(info.QueueCreateInfoCount), len(info.QueueCreateInfos))
	pairs := make([]FamilyCount, 0, n)
	for _, q := range info.QueueCreateInfos[:n] {
		pairs = append(pairs, FamilyCount{Family: q.QueueFamilyIndex, Count: q.QueueCount})
	}
	return pairs
}

// Count returns the queue count registered for family.
func (t *QueueFamilyTable) Count(family uint32) (uint32, bool) {
	if t == nil {
		return 0, false
	}
	c, ok := t.counts[family]
	return c, ok
}

// Has reports whether family is a key of the table.
func (t *QueueFamilyTable) Has(family uint32) bool {
	_, ok := t.Count(family)
	return ok
}

// Families returns the registered family indices in ascending order.
func (t *QueueFamilyTable) Families() []uint32 {
	if t == nil {
		return nil
	}
	out := make([]uint32, 0, len(t.counts))
	for f := range t.counts {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the number of families.
func (t *QueueFamilyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.counts)
}
