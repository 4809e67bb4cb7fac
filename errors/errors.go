package errors

import (
	"fmt"
	"strings"
)

// Category classifies a violation by what went wrong.
type Category string

const (
	CategoryStructural    Category = "structural"    // malformed value, missing pointer, count mismatch
	CategoryCrossField    Category = "cross_field"   // individually valid fields that disagree
	CategoryCapability    Category = "capability"    // needs a feature or extension the connection lacks
	CategoryPostcondition Category = "postcondition" // implementation returned an out-of-range value
	CategoryInternal      Category = "internal"      // layer state is inconsistent, never reported
)

// Code is the message code delivered with a report.
type Code string

const (
	CodeNone                Code = "NONE"
	CodeInvalidUsage        Code = "INVALID_USAGE"
	CodeInvalidStructSType  Code = "INVALID_STRUCT_STYPE"
	CodeInvalidStructPNext  Code = "INVALID_STRUCT_PNEXT"
	CodeRequiredParameter   Code = "REQUIRED_PARAMETER"
	CodeReservedParameter   Code = "RESERVED_PARAMETER"
	CodeUnrecognizedValue   Code = "UNRECOGNIZED_VALUE"
	CodeDeviceLimit         Code = "DEVICE_LIMIT"
	CodeDeviceFeature       Code = "DEVICE_FEATURE"
	CodeFailureReturnCode   Code = "FAILURE_RETURN_CODE"
	CodeExtensionNotEnabled Code = "EXTENSION_NOT_ENABLED"
)

var codeNumbers = map[Code]int32{
	CodeNone:                0,
	CodeInvalidUsage:        1,
	CodeInvalidStructSType:  2,
	CodeInvalidStructPNext:  3,
	CodeRequiredParameter:   4,
	CodeReservedParameter:   5,
	CodeUnrecognizedValue:   6,
	CodeDeviceLimit:         7,
	CodeDeviceFeature:       8,
	CodeFailureReturnCode:   9,
	CodeExtensionNotEnabled: 10,
}

// Number is the numeric message code passed to debug-report callbacks.
func (c Code) Number() int32 { return codeNumbers[c] }

// Codes lists every code in numeric order.
func Codes() []Code {
	out := make([]Code, len(codeNumbers))
	for c, n := range codeNumbers {
		out[n] = c
	}
	return out
}

// Severity uses the debug-report flag bits so a mask of severities can be
// passed straight through to callbacks.
type Severity uint32

const (
	SeverityInfo        Severity = 1 << 0
	SeverityWarning     Severity = 1 << 1
	SeverityPerformance Severity = 1 << 2
	SeverityError       Severity = 1 << 3
	SeverityDebug       Severity = 1 << 4

	SeverityAll = SeverityInfo | SeverityWarning | SeverityPerformance | SeverityError | SeverityDebug
)

var severityNames = []struct {
	s    Severity
	name string
}{
	{SeverityInfo, "info"},
	{SeverityWarning, "warning"},
	{SeverityPerformance, "performance"},
	{SeverityError, "error"},
	{SeverityDebug, "debug"},
}

func (s Severity) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	for _, n := range severityNames {
		if s&n.s != 0 {
			parts = append(parts, n.name)
		}
	}
	if rest := s &^ SeverityAll; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, ",")
}

// ParseSeverity parses a comma separated list such as "error,warning".
// "perf" is accepted for performance and "all" for every severity.
func ParseSeverity(text string) (Severity, error) {
	var s Severity
	for _, part := range strings.Split(text, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
			continue
		case "all":
			s |= SeverityAll
			continue
		case "perf":
			s |= SeverityPerformance
			continue
		case "none":
			continue
		}
		found := false
		for _, n := range severityNames {
			if n.name == part {
				s |= n.s
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown severity %q", part)
		}
	}
	return s, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Error is a Violation: one detected rule breach with the call it came from.
type Error struct {
	Value    any
	Cause    error
	Category Category
	Code     Code
	Severity Severity
	Op       string
	Detail   string
	Path     []string
	Object   uint64
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Category))
	b.WriteString("] ")
	b.WriteString(string(e.Code))

	if e.Op != "" {
		b.WriteByte(' ')
		b.WriteString(e.Op)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(e.PathString())
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// PathString joins the field path the way the API spells member access.
func (e *Error) PathString() string {
	var b strings.Builder
	for i, p := range e.Path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same category and code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// Blocking reports whether the violation stops the call from being forwarded.
func (e *Error) Blocking() bool {
	return e.Severity&SeverityError != 0
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder with error severity.
func New(category Category, code Code) *Builder {
	return &Builder{
		err: Error{
			Category: category,
			Code:     code,
			Severity: SeverityError,
		},
	}
}

// Op sets the operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Severity overrides the default error severity
func (b *Builder) Severity(s Severity) *Builder {
	b.err.Severity = s
	return b
}

// Object sets the handle the violation concerns
func (b *Builder) Object(h uint64) *Builder {
	b.err.Object = h
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Rule is a named check with its code, category, severity and message
// template. Validators instantiate a Rule into an Error when it fails.
type Rule struct {
	Name     string
	Code     Code
	Category Category
	Severity Severity
	Template string
}

// Blocking reports whether failures of r stop forwarding.
func (r Rule) Blocking() bool {
	return r.Severity&SeverityError != 0
}

// Violation instantiates the rule for one call.
func (r Rule) Violation(op string, path []string, value any, args ...any) *Error {
	detail := r.Template
	if len(args) > 0 {
		detail = fmt.Sprintf(r.Template, args...)
	}
	return &Error{
		Category: r.Category,
		Code:     r.Code,
		Severity: r.Severity,
		Op:       op,
		Path:     path,
		Value:    value,
		Detail:   detail,
	}
}

// Convenience constructors for common violations

// Required creates a missing required parameter violation
func Required(op string, path []string) *Error {
	return &Error{
		Category: CategoryStructural,
		Code:     CodeRequiredParameter,
		Severity: SeverityError,
		Op:       op,
		Path:     path,
		Detail:   "required parameter is NULL",
	}
}

// InvalidEnum creates an out-of-range enumerator violation
func InvalidEnum(op string, path []string, value any, enumType string) *Error {
	return &Error{
		Category: CategoryStructural,
		Code:     CodeUnrecognizedValue,
		Severity: SeverityError,
		Op:       op,
		Path:     path,
		Value:    value,
		Detail:   fmt.Sprintf("value %v is not a valid %s", value, enumType),
	}
}

// Reserved creates a non-zero reserved field violation
func Reserved(op string, path []string, value any) *Error {
	return &Error{
		Category: CategoryStructural,
		Code:     CodeReservedParameter,
		Severity: SeverityError,
		Op:       op,
		Path:     path,
		Value:    value,
		Detail:   "reserved value must be 0",
	}
}

// Capability creates a missing device feature violation
func Capability(op string, path []string, feature string) *Error {
	return &Error{
		Category: CategoryCapability,
		Code:     CodeDeviceFeature,
		Severity: SeverityError,
		Op:       op,
		Path:     path,
		Detail:   fmt.Sprintf("requires the %s feature, which is not enabled", feature),
	}
}

// Postcondition creates a violation for a value returned by the implementation
func Postcondition(op string, path []string, value any, detail string) *Error {
	return &Error{
		Category: CategoryPostcondition,
		Code:     CodeUnrecognizedValue,
		Severity: SeverityWarning,
		Op:       op,
		Path:     path,
		Value:    value,
		Detail:   detail,
	}
}

// Internal creates an internal inconsistency. These are never reported;
// the layer panics with them.
func Internal(op string, detail string, args ...any) *Error {
	return &Error{
		Category: CategoryInternal,
		Code:     CodeNone,
		Severity: SeverityError,
		Op:       op,
		Detail:   fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(category Category, code Code, cause error, detail string) *Error {
	return &Error{
		Category: category,
		Code:     code,
		Severity: SeverityError,
		Detail:   detail,
		Cause:    cause,
	}
}
