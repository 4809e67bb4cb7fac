package layer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/vk-validation/enum"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

// path is a field path such as pCreateInfo.pQueueCreateInfos[1].queueCount.
type path []string

func root(name string) path { return path{name} }

func (p path) dot(name string) path {
	out := make(path, len(p)+1)
	copy(out, p)
	out[len(p)] = name
	return out
}

func (p path) at(i int) path { return p.dot("[" + strconv.Itoa(i) + "]") }

func (p path) String() string {
	var b strings.Builder
	for i, s := range p {
		if i > 0 && !strings.HasPrefix(s, "[") {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}

// Checker collects the violations of one call.
type Checker struct {
	op       string
	object   vk.Handle
	sess     *Session
	conn     *Connection
	settings *Settings

	// extensions being enabled by the call itself
	pending map[string]bool

	found []*errors.Error
}

func newChecker(op string, object vk.Handle, ctx *Context, settings *Settings) *Checker {
	c := &Checker{op: op, object: object, settings: settings}
	if ctx != nil {
		c.sess, c.conn = ctx.Session, ctx.Conn
	}
	return c
}

// Violations returns what the checker found, in order.
func (c *Checker) Violations() []*errors.Error { return c.found }

// Fail records a violation of r at p.
func (c *Checker) Fail(r errors.Rule, p path, value any, args ...any) *errors.Error {
	v := r.Violation(c.op, p, value, args...)
	if c.object != nil {
		v.Object = c.object.Handle()
	}
	c.found = append(c.found, v)
	return v
}

// Usage records a cross-field violation described by format.
func (c *Checker) Usage(p path, value any, format string, args ...any) {
	c.Fail(ruleUsage, p, value, sprintf(format, args...))
}

// Required checks that a pointer parameter is present.
func (c *Checker) Required(p path, present bool) bool {
	if !present {
		c.Fail(ruleRequired, p, nil, p.String())
	}
	return present
}

// Handle checks that a handle is not VK_NULL_HANDLE.
func (c *Checker) Handle(p path, h uint64) bool {
	if h == 0 {
		c.Fail(ruleRequiredHandle, p, h, p.String())
		return false
	}
	return true
}

// SType checks a structure's type tag.
func (c *Checker) SType(p path, got, want vk.StructureType) bool {
	if got != want {
		c.Fail(ruleSType, p.dot("sType"), got, got.String(), want.String())
		return false
	}
	return true
}

// Chain checks the pNext chain of the structure at p. Only the listed
// structure types may appear, each at most once. A structure whose type is
// unknown is reported and otherwise ignored.
func (c *Checker) Chain(p path, next vk.Extension, allowed ...vk.StructureType) {
	seen := make(map[vk.StructureType]bool)
	cur := p
	vk.Walk(next, func(_ int, e vk.Extension) bool {
		cur = cur.dot("pNext")
		st := e.StructType()
		if want := e.ExpectedType(); st != want {
			c.Fail(ruleChainSType, cur.dot("sType"), st, st.String(), want.String())
			return true
		}
		if !st.IsValid() {
			c.Fail(ruleChainUnknown, cur.dot("sType"), st, int32(st))
			return true
		}
		if seen[st] {
			c.Fail(ruleChainDuplicate, cur, st, st.String())
			return true
		}
		seen[st] = true
		if !containsType(allowed, st) {
			c.Fail(ruleChainDisallow, cur, st, st.String())
			return true
		}
		if ext, ok := chainExtensions[st]; ok && !c.extensionEnabled(ext) {
			c.Fail(ruleChainExtension, cur, st, st.String(), ext)
		}
		return true
	})
}

func containsType(list []vk.StructureType, st vk.StructureType) bool {
	for _, t := range list {
		if t == st {
			return true
		}
	}
	return false
}

var chainExtensions = map[vk.StructureType]string{
	vk.StructureTypeDebugReportCallbackCreateInfoEXT:        vk.EXTDebugReportExtensionName,
	vk.StructureTypeValidationFlagsEXT:                      vk.EXTValidationFlagsExtensionName,
	vk.StructureTypeDedicatedAllocationImageCreateInfoNV:    vk.NVDedicatedAllocationExtensionName,
	vk.StructureTypeDedicatedAllocationBufferCreateInfoNV:   vk.NVDedicatedAllocationExtensionName,
	vk.StructureTypeDedicatedAllocationMemoryAllocateInfoNV: vk.NVDedicatedAllocationExtensionName,
	vk.StructureTypePhysicalDeviceFeatures2KHR:              vk.KHRGetPhysicalDeviceProperties2Name,
	vk.StructureTypeMemoryDedicatedAllocateInfoKHR:          vk.KHRDedicatedAllocationExtensionName,
	vk.StructureTypeImageFormatListCreateInfoKHR:            vk.KHRImageFormatListExtensionName,
}

func (c *Checker) extensionEnabled(name string) bool {
	if c.pending[name] {
		return true
	}
	if c.conn != nil && c.conn.Enabled(name) {
		return true
	}
	return c.sess != nil && c.sess.Enabled(name)
}

// Extension checks that the call's extension was enabled.
func (c *Checker) Extension(p path, name string) bool {
	if !c.extensionEnabled(name) {
		c.Fail(ruleExtension, p, nil, name)
		return false
	}
	return true
}

// Enum checks a scalar enumerant.
func (c *Checker) Enum(p path, v enum.Value) bool {
	if !v.IsValid() {
		c.Fail(ruleEnum, p, v, v, v.EnumType())
		return false
	}
	return true
}

type flagValue interface {
	~uint32
	enum.Value
}

// checkFlags checks that v has no undefined bits and, if required, is not 0.
func checkFlags[T flagValue](c *Checker, p path, v T, required bool) bool {
	if !v.IsValid() {
		c.Fail(ruleFlags, p, v, uint32(v), v.EnumType())
		return false
	}
	if required && v == 0 {
		c.Fail(ruleFlagsZero, p, v, p.String())
		return false
	}
	return true
}

// checkStages is checkFlags for shader stage masks, which may also be
// VK_SHADER_STAGE_ALL.
func checkStages(c *Checker, p path, v vk.ShaderStageFlags) bool {
	if v == vk.ShaderStageAll {
		return true
	}
	return checkFlags(c, p, v, true)
}

// checkSingleBit checks that v is exactly one defined bit.
func checkSingleBit[T flagValue](c *Checker, p path, v T) bool {
	if !v.IsValid() || !enum.SingleBit(v) {
		c.Fail(ruleSingleBit, p, v, uint32(v), v.EnumType())
		return false
	}
	return true
}

// Reserved checks a reserved flags field.
func (c *Checker) Reserved(p path, v vk.Flags) bool {
	if v != 0 {
		c.Fail(ruleReserved, p, v, uint32(v))
		return false
	}
	return true
}

// Bool checks a VkBool32.
func (c *Checker) Bool(p path, v vk.Bool32) bool {
	if !v.IsValid() {
		c.Fail(ruleBool, p, v, uint32(v))
		return false
	}
	return true
}

// Features checks every member of a feature set.
func (c *Checker) Features(p path, f *vk.PhysicalDeviceFeatures) {
	f.EachFeature(func(name string, v vk.Bool32) {
		c.Bool(p.dot(name), v)
	})
}

// Positive checks that a size, extent or count is not 0.
func (c *Checker) Positive(p path, v uint64) bool {
	if v == 0 {
		c.Fail(rulePositive, p, v, p.String())
		return false
	}
	return true
}

// RangeF checks lo <= v <= hi.
func (c *Checker) RangeF(p path, v, lo, hi float32) bool {
	if !(v >= lo && v <= hi) {
		c.Fail(ruleRange, p, v, v, lo, hi)
		return false
	}
	return true
}

// Range01 checks a normalized value.
func (c *Checker) Range01(p path, v float32) bool {
	return c.RangeF(p, v, 0, 1)
}

// Less checks v < limit.
func (c *Checker) Less(p path, v, limit uint64, limitName string) bool {
	if v >= limit {
		c.Fail(ruleLimit, p, v, v, limitName, limit)
		return false
	}
	return true
}

// LessEq checks v <= limit.
func (c *Checker) LessEq(p path, v, limit uint64, limitName string) bool {
	if v > limit {
		c.Fail(ruleLimit, p, v, v, limitName, limit)
		return false
	}
	return true
}

// LessEqF checks v <= limit for a floating point limit.
func (c *Checker) LessEqF(p path, v, limit float32, limitName string) bool {
	if v > limit {
		c.Fail(ruleLimitF, p, v, v, limitName, limit)
		return false
	}
	return true
}

// Aligned checks that v is a multiple of align.
func (c *Checker) Aligned(p path, v, align uint64) bool {
	if align != 0 && v%align != 0 {
		c.Fail(ruleAlign, p, v, v, align)
		return false
	}
	return true
}

// String checks a name passed to the API: valid UTF-8, no NUL and no longer
// than the configured maximum.
func (c *Checker) String(p path, s string) bool {
	limit := 0
	if c.settings != nil {
		limit = c.settings.MaxStringLength
	}
	switch {
	case !utf8.ValidString(s):
		c.Fail(ruleString, p, s, "string is not valid UTF-8")
	case strings.IndexByte(s, 0) >= 0:
		c.Fail(ruleString, p, s, "string contains a NUL character")
	case limit > 0 && len(s) > limit:
		c.Fail(ruleString, p, s, sprintf("string is %d bytes long, the limit is %d", len(s), limit))
	default:
		return true
	}
	return false
}

// Capability checks that a feature the field exercises is enabled on the
// connection.
func (c *Checker) Capability(p path, enabled vk.Bool32, feature string) bool {
	if !enabled.Bool() {
		c.Fail(ruleFeature, p, nil, feature)
		return false
	}
	return true
}

// ZeroWork reports an advisory for a command that does nothing.
func (c *Checker) ZeroWork(p path, v uint64) {
	if v == 0 {
		c.Fail(ruleZeroWork, p, v, p.String())
	}
}

// array checks a count/array pair and returns the elements to validate.
// A nil slice with a non-zero count is a NULL pointer.
func array[T any](c *Checker, countPath, arrPath path, count uint32, s []T, countRequired, arrayRequired bool) []T {
	if count == 0 {
		if countRequired {
			c.Fail(ruleRequiredCount, countPath, count, countPath.String())
		}
		return nil
	}
	if s == nil {
		if arrayRequired {
			c.Fail(ruleRequired, arrPath, nil, arrPath.String())
		}
		return nil
	}
	if uint64(len(s)) < uint64(count) {
		c.Fail(ruleArrayLength, arrPath, len(s), arrPath.String(), len(s), count)
		return s
	}
	return s[:count]
}

// outArray checks the count pointer and output array of an enumeration
// query.
func outArray[T any](c *Checker, countPath, arrPath path, count *uint32, s []T) {
	if !c.Required(countPath, count != nil) {
		return
	}
	if s != nil && uint64(len(s)) < uint64(*count) {
		c.Fail(ruleArrayLength, arrPath, len(s), arrPath.String(), len(s), *count)
	}
}

// sharing validates a sharing mode and its queue family indices against the
// connection's queue family table.
func (c *Checker) sharing(p path, mode vk.SharingMode, modeField, countField, arrField string, count uint32, indices []uint32) {
	if !c.Enum(p.dot(modeField), mode) || mode != vk.SharingModeConcurrent {
		return
	}
	if indices == nil {
		c.Fail(ruleSharingNull, p.dot(arrField), nil)
	}
	if count <= 1 {
		c.Fail(ruleSharingCount, p.dot(countField), count, count)
	}
	if indices == nil {
		return
	}
	n := min(int(count), len(indices))
	if len(indices) < int(count) {
		c.Fail(ruleArrayLength, p.dot(arrField), len(indices), p.dot(arrField).String(), len(indices), count)
	}
	seen := make(map[uint32]bool, n)
	for i, fam := range indices[:n] {
		ip := p.dot(arrField).at(i)
		if seen[fam] {
			c.Fail(ruleSharingDuplicate, ip, fam, fam)
			continue
		}
		seen[fam] = true
		if c.conn != nil && !c.conn.Queues.Has(fam) {
			c.Fail(ruleSharingUnknown, ip, fam, fam)
		}
	}
}

// elems returns the first count elements of s, or fewer if s is short.
func elems[T any](count uint32, s []T) []T {
	return s[:min(int(count), len(s))]
}
