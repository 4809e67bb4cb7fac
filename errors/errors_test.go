package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Category: CategoryCrossField,
				Code:     CodeInvalidUsage,
				Op:       "vkCreateBuffer",
				Path:     []string{"pCreateInfo", "pQueueFamilyIndices", "[1]"},
				Detail:   "duplicate queue family index",
			},
			contains: []string{"[cross_field]", "INVALID_USAGE", "vkCreateBuffer", "pCreateInfo.pQueueFamilyIndices[1]", "duplicate"},
		},
		{
			name: "minimal error",
			err: &Error{
				Category: CategoryStructural,
				Code:     CodeRequiredParameter,
			},
			contains: []string{"[structural]", "REQUIRED_PARAMETER"},
		},
		{
			name: "error with cause",
			err: &Error{
				Category: CategoryInternal,
				Code:     CodeNone,
				Detail:   "no state",
				Cause:    errors.New("underlying error"),
			},
			contains: []string{"[internal]", "no state", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(CategoryStructural, CodeInvalidUsage, cause, "wrapped")

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Category: CategoryCapability,
		Code:     CodeDeviceFeature,
		Path:     []string{"pCreateInfo", "anisotropyEnable"},
	}

	if !err.Is(&Error{Category: CategoryCapability, Code: CodeDeviceFeature}) {
		t.Error("Is should match same category and code")
	}
	if err.Is(&Error{Category: CategoryStructural, Code: CodeDeviceFeature}) {
		t.Error("Is should not match different category")
	}
	if err.Is(&Error{Category: CategoryCapability, Code: CodeDeviceLimit}) {
		t.Error("Is should not match different code")
	}

	var wrapped error = Wrap(CategoryInternal, CodeNone, err, "outer")
	if !errors.Is(wrapped, New(CategoryCapability, CodeDeviceFeature).Build()) {
		t.Error("errors.Is should match through the cause chain")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(CategoryStructural, CodeUnrecognizedValue).
		Op("vkCreateImage").
		Path("pCreateInfo", "imageType").
		Value(7).
		Object(42).
		Cause(cause).
		Detail("value %d is not a valid %s", 7, "VkImageType").
		Build()

	if err.Category != CategoryStructural || err.Code != CodeUnrecognizedValue {
		t.Errorf("Category/Code = %v/%v", err.Category, err.Code)
	}
	if err.Severity != SeverityError || !err.Blocking() {
		t.Errorf("default severity = %v, want error", err.Severity)
	}
	if err.Op != "vkCreateImage" || err.Object != 42 {
		t.Errorf("Op = %q, Object = %d", err.Op, err.Object)
	}
	if got := err.PathString(); got != "pCreateInfo.imageType" {
		t.Errorf("PathString() = %q", got)
	}
	if err.Value != 7 {
		t.Errorf("Value = %v, want 7", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "value 7 is not a valid VkImageType" {
		t.Errorf("Detail = %q", err.Detail)
	}

	advisory := New(CategoryStructural, CodeInvalidUsage).Severity(SeverityWarning).Build()
	if advisory.Blocking() {
		t.Error("warning severity must not block")
	}
}

func TestRule_Violation(t *testing.T) {
	r := Rule{
		Name:     "queue-priority-range",
		Code:     CodeInvalidUsage,
		Category: CategoryStructural,
		Severity: SeverityError,
		Template: "%s must be between 0 and 1",
	}
	v := r.Violation("vkCreateDevice", []string{"pQueuePriorities", "[0]"}, float32(1.5), "pQueuePriorities[0]")
	if v.Detail != "pQueuePriorities[0] must be between 0 and 1" {
		t.Errorf("Detail = %q", v.Detail)
	}
	if v.Op != "vkCreateDevice" || v.Value != float32(1.5) || !v.Blocking() {
		t.Errorf("unexpected violation %+v", v)
	}
	if !r.Blocking() {
		t.Error("error rule blocks")
	}

	plain := Rule{Code: CodeInvalidUsage, Template: "100% literal"}
	if got := plain.Violation("op", nil, nil).Detail; got != "100% literal" {
		t.Errorf("template without args = %q", got)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("Required", func(t *testing.T) {
		err := Required("vkCreateFence", []string{"pFence"})
		if err.Code != CodeRequiredParameter || err.Category != CategoryStructural {
			t.Errorf("Code = %v, Category = %v", err.Code, err.Category)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum("vkCreateSampler", []string{"magFilter"}, 9, "VkFilter")
		if err.Code != CodeUnrecognizedValue {
			t.Errorf("Code = %v", err.Code)
		}
		if !strings.Contains(err.Detail, "VkFilter") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Reserved", func(t *testing.T) {
		err := Reserved("vkCreateSemaphore", []string{"flags"}, 1)
		if err.Code != CodeReservedParameter || err.Value != 1 {
			t.Errorf("Code = %v, Value = %v", err.Code, err.Value)
		}
	})

	t.Run("Capability", func(t *testing.T) {
		err := Capability("vkCreateSampler", []string{"anisotropyEnable"}, "samplerAnisotropy")
		if err.Category != CategoryCapability || err.Code != CodeDeviceFeature {
			t.Errorf("Category = %v, Code = %v", err.Category, err.Code)
		}
	})

	t.Run("Postcondition", func(t *testing.T) {
		err := Postcondition("vkGetPhysicalDeviceProperties", []string{"deviceType"}, 99, "unrecognized")
		if err.Category != CategoryPostcondition || err.Blocking() {
			t.Errorf("Category = %v, blocking = %v", err.Category, err.Blocking())
		}
	})

	t.Run("Internal", func(t *testing.T) {
		err := Internal("vkGetDeviceQueue", "no state for key %d", 7)
		if err.Category != CategoryInternal || !strings.Contains(err.Detail, "7") {
			t.Errorf("Internal = %v", err)
		}
	})
}

func TestSeverity(t *testing.T) {
	s, err := ParseSeverity("error, warning,perf")
	if err != nil {
		t.Fatal(err)
	}
	if s != SeverityError|SeverityWarning|SeverityPerformance {
		t.Errorf("ParseSeverity = %v", s)
	}
	if got := s.String(); got != "warning,performance,error" {
		t.Errorf("String() = %q", got)
	}
	if _, err := ParseSeverity("loud"); err == nil {
		t.Error("expected error for unknown severity")
	}
	all, _ := ParseSeverity("all")
	if all != SeverityAll {
		t.Errorf("all = %v", all)
	}
	var u Severity
	if err := u.UnmarshalText([]byte("debug")); err != nil || u != SeverityDebug {
		t.Errorf("UnmarshalText = %v, %v", u, err)
	}
	if Severity(0).String() != "none" {
		t.Error("zero severity")
	}
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != 11 || codes[0] != CodeNone || codes[10] != CodeExtensionNotEnabled {
		t.Errorf("Codes() = %v", codes)
	}
	for i, c := range codes {
		if c.Number() != int32(i) {
			t.Errorf("%s.Number() = %d, want %d", c, c.Number(), i)
		}
	}
}
