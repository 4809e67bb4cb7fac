package diag

import (
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

// LayerPrefix is passed to debug-report callbacks as the layer name.
const LayerPrefix = "ParameterValidation"

// Report is one diagnostic delivered to a Sink.
type Report struct {
	Severity   errors.Severity
	Code       errors.Code
	Op         string
	Object     uint64
	ObjectType vk.DebugReportObjectTypeEXT
	Message    string
	Violation  *errors.Error
}

// FromViolation builds the report for v concerning an object of type ot.
func FromViolation(v *errors.Error, ot vk.DebugReportObjectTypeEXT) Report {
	return Report{
		Severity:   v.Severity,
		Code:       v.Code,
		Op:         v.Op,
		Object:     v.Object,
		ObjectType: ot,
		Message:    v.Error(),
		Violation:  v,
	}
}

// Sink receives reports. Returning true asks for the reporting call to be
// failed even when the violation is advisory.
type Sink interface {
	Report(r Report) (abort bool)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Report) bool

func (f SinkFunc) Report(r Report) bool { return f(r) }

// Discard drops every report.
var Discard Sink = SinkFunc(func(Report) bool { return false })

type multi []Sink

// Multi fans a report out to every sink. The call aborts if any sink asks
// for it; every sink still sees the report.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s == nil {
			continue
		}
		if m, ok := s.(multi); ok {
			out = append(out, m...)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (m multi) Report(r Report) bool {
	abort := false
	for _, s := range m {
		if s.Report(r) {
			abort = true
		}
	}
	return abort
}

// Filter forwards reports whose severity is in Mask and whose code is not
// disabled.
type Filter struct {
	next     Sink
	mask     errors.Severity
	disabled map[errors.Code]struct{}
}

// NewFilter wraps next.
func NewFilter(next Sink, mask errors.Severity, disabled []errors.Code) *Filter {
	f := &Filter{next: next, mask: mask, disabled: make(map[errors.Code]struct{}, len(disabled))}
	for _, c := range disabled {
		f.disabled[c] = struct{}{}
	}
	return f
}

// Report implements Sink.
func (f *Filter) Report(r Report) bool {
	if r.Severity&f.mask == 0 {
		return false
	}
	if _, off := f.disabled[r.Code]; off {
		return false
	}
	return f.next.Report(r)
}
