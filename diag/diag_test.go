package diag_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

func report(sev errors.Severity, code errors.Code) diag.Report {
	v := errors.New(errors.CategoryStructural, code).
		Severity(sev).
		Op("vkCreateBuffer").
		Path("pCreateInfo", "usage").
		Value(vk.BufferUsageFlags(1 << 20)).
		Object(7).
		Detail("bad usage").
		Build()
	return diag.FromViolation(v, vk.DebugReportObjectTypeDeviceEXT)
}

func TestFromViolation(t *testing.T) {
	r := report(errors.SeverityError, errors.CodeUnrecognizedValue)
	if r.Op != "vkCreateBuffer" || r.Object != 7 || r.Code != errors.CodeUnrecognizedValue {
		t.Errorf("unexpected report %+v", r)
	}
	if r.Message != r.Violation.Error() {
		t.Errorf("Message = %q", r.Message)
	}
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := diag.NewLogSink(zap.New(core))

	if sink.Report(report(errors.SeverityError, errors.CodeUnrecognizedValue)) {
		t.Error("log sink must not abort")
	}
	sink.Report(report(errors.SeverityPerformance, errors.CodeInvalidUsage))
	sink.Report(report(errors.SeverityInfo, errors.CodeNone))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("logged %d entries, want 3", len(entries))
	}
	wantLevels := []zapcore.Level{zapcore.ErrorLevel, zapcore.WarnLevel, zapcore.InfoLevel}
	for i, e := range entries {
		if e.Level != wantLevels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, wantLevels[i])
		}
	}
	fields := entries[0].ContextMap()
	if fields["code"] != "UNRECOGNIZED_VALUE" || fields["path"] != "pCreateInfo.usage" {
		t.Errorf("fields = %v", fields)
	}
	if fields["value"] != "unrecognized enumerator" {
		t.Errorf("value field = %v", fields["value"])
	}
}

func TestCallbacks(t *testing.T) {
	cbs := diag.NewCallbacks()
	var got []string
	cbs.Register(1, diag.Callback{
		Flags: vk.DebugReportErrorBitEXT,
		Fn: func(flags vk.DebugReportFlagsEXT, _ vk.DebugReportObjectTypeEXT, object, _ uint64, code int32, prefix, msg string, ud any) bool {
			got = append(got, ud.(string))
			if prefix != diag.LayerPrefix || code != errors.CodeRequiredParameter.Number() || object != 7 {
				t.Errorf("callback args: prefix=%q code=%d object=%d", prefix, code, object)
			}
			return true
		},
		UserData: "errors",
	})
	cbs.Register(2, diag.Callback{
		Flags: vk.DebugReportWarningBitEXT | vk.DebugReportErrorBitEXT,
		Fn: func(vk.DebugReportFlagsEXT, vk.DebugReportObjectTypeEXT, uint64, uint64, int32, string, string, any) bool {
			got = append(got, "all")
			return false
		},
	})

	if !cbs.Report(report(errors.SeverityError, errors.CodeRequiredParameter)) {
		t.Error("callback returning true must abort")
	}
	if len(got) != 2 || got[0] != "errors" || got[1] != "all" {
		t.Errorf("callbacks ran as %v", got)
	}

	got = nil
	if cbs.Report(report(errors.SeverityWarning, errors.CodeInvalidUsage)) {
		t.Error("warning callback returned false")
	}
	if len(got) != 1 {
		t.Errorf("callbacks ran as %v", got)
	}

	if !cbs.Unregister(1) || cbs.Unregister(1) {
		t.Error("Unregister must succeed exactly once")
	}
	if cbs.Len() != 1 {
		t.Errorf("Len() = %d", cbs.Len())
	}
}

func TestHistory(t *testing.T) {
	h := diag.NewHistory(3)
	for _, c := range errors.Codes()[:5] {
		h.Report(report(errors.SeverityError, c))
	}
	recent := h.Recent()
	if len(recent) != 3 || h.Len() != 3 || h.Total() != 5 {
		t.Fatalf("len = %d, total = %d", len(recent), h.Total())
	}
	if recent[0].Code != errors.Codes()[2] || recent[2].Code != errors.Codes()[4] {
		t.Errorf("kept %v, %v, %v", recent[0].Code, recent[1].Code, recent[2].Code)
	}
}

func TestMultiAndFilter(t *testing.T) {
	all := &diag.Recorder{}
	aborting := &diag.Recorder{AbortOn: errors.SeverityError}
	filtered := &diag.Recorder{}

	sink := diag.Multi(all, nil, diag.Multi(aborting,
		diag.NewFilter(filtered, errors.SeverityError, []errors.Code{errors.CodeDeviceLimit})))

	if !sink.Report(report(errors.SeverityError, errors.CodeInvalidUsage)) {
		t.Error("Multi must abort when one sink aborts")
	}
	if sink.Report(report(errors.SeverityWarning, errors.CodeInvalidUsage)) {
		t.Error("no sink aborts on warnings")
	}
	sink.Report(report(errors.SeverityError, errors.CodeDeviceLimit))

	if n := len(all.Reports()); n != 3 {
		t.Errorf("all saw %d reports", n)
	}
	if n := len(aborting.Reports()); n != 3 {
		t.Errorf("aborting saw %d reports", n)
	}
	if codes := filtered.Codes(); len(codes) != 1 || codes[0] != errors.CodeInvalidUsage {
		t.Errorf("filtered saw %v", codes)
	}
}

func TestRecorder(t *testing.T) {
	r := &diag.Recorder{}
	r.Report(report(errors.SeverityError, errors.CodeInvalidUsage))
	r.Report(report(errors.SeverityWarning, errors.CodeInvalidUsage))
	r.Report(report(errors.SeverityError, errors.CodeRequiredParameter))

	if r.Count(errors.CodeInvalidUsage) != 2 {
		t.Errorf("Count = %d", r.Count(errors.CodeInvalidUsage))
	}
	if len(r.Blocking()) != 2 {
		t.Errorf("Blocking = %d", len(r.Blocking()))
	}
	r.Reset()
	if len(r.Reports()) != 0 {
		t.Error("Reset kept reports")
	}
}
