package layer

import (
	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/enum"
	"github.com/wippyai/vk-validation/vk"
)

// Operation is the per-call rule set run by invoke.
type Operation struct {
	Name   string
	Object vk.Handle

	// Params runs the structural checks on the arguments.
	Params func(c *Checker)
	// Pre runs the custom checks after Params.
	Pre func(c *Checker)
	// Post inspects the result and outputs of a forwarded call.
	Post func(c *Checker, r vk.Result)
	// Track updates contexts and trackers after Post.
	Track func(r vk.Result)
}

// invoke is the validate-then-forward pipeline shared by every entry point.
// Violations are reported as they are found; if any of them blocks, the
// call returns vk.ErrorValidationFailedEXT without being forwarded.
func (l *Layer) invoke(ctx *Context, op Operation, forward func() vk.Result) vk.Result {
	settings := l.settings.Load()

	c := newChecker(op.Name, op.Object, ctx, settings)
	if op.Params != nil {
		op.Params(c)
	}
	if op.Pre != nil {
		op.Pre(c)
	}
	if l.report(ctx, c, settings) {
		return vk.ErrorValidationFailedEXT
	}

	r := forward()

	pc := newChecker(op.Name, op.Object, ctx, settings)
	checkResult(pc, r)
	if op.Post != nil {
		op.Post(pc, r)
	}
	l.report(ctx, pc, settings)

	if op.Track != nil {
		op.Track(r)
	}
	return r
}

// report delivers the checker's violations and reports whether the call
// must be blocked: a blocking violation, a severity listed in BlockOn, or a
// sink asking for it.
func (l *Layer) report(ctx *Context, c *Checker, settings *Settings) bool {
	if len(c.found) == 0 {
		return false
	}
	var sess *Session
	if ctx != nil {
		sess = ctx.Session
	}
	sink := l.sink(sess, settings)
	ot := vk.DebugReportObjectTypeUnknownEXT
	if c.object != nil {
		ot = c.object.ObjectType()
	}
	blocked := false
	for _, v := range c.found {
		if sink.Report(diag.FromViolation(v, ot)) {
			blocked = true
		}
		if v.Blocking() || v.Severity&settings.BlockOn != 0 {
			blocked = true
		}
	}
	return blocked
}

// checkResult validates a status returned by the next handler.
func checkResult(c *Checker, r vk.Result) {
	switch {
	case !r.IsValid():
		c.Fail(ruleResultUnknown, nil, r, int32(r))
	case r.IsError():
		c.Fail(ruleResultError, nil, r, r.String())
	case r != vk.Success:
		c.Fail(ruleResultStatus, nil, r, r.String())
	}
}

// postEnum validates an enumerant returned by the implementation.
func (c *Checker) postEnum(p path, v enum.Value) {
	if !v.IsValid() {
		c.Fail(rulePostEnum, p, v, v, v.EnumType())
	}
}

// postFlags validates a flag mask returned by the implementation.
func postFlags[T flagValue](c *Checker, p path, v T) {
	if !v.IsValid() {
		c.Fail(rulePostFlags, p, v, uint32(v), v.EnumType())
	}
}

// postBool validates a VkBool32 returned by the implementation.
func (c *Checker) postBool(p path, v vk.Bool32) {
	if !v.IsValid() {
		c.Fail(rulePostBool, p, v, uint32(v))
	}
}
