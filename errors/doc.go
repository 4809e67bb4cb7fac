// Package errors provides the violation taxonomy of the validation layer.
//
// A violation is an *Error categorized by Category (structural, cross-field,
// capability, postcondition) and Code (the message code delivered to debug
// callbacks). Its Severity decides whether the call is still forwarded:
// error severity blocks, everything else is advisory.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.CategoryCrossField, errors.CodeInvalidUsage).
//		Op("vkCreateBuffer").
//		Path("pCreateInfo", "queueFamilyIndexCount").
//		Value(1).
//		Detail("must be greater than 1 when sharingMode is VK_SHARING_MODE_CONCURRENT").
//		Build()
//
// Or declare a Rule once and instantiate it per call:
//
//	var zeroDraw = errors.Rule{
//		Name:     "draw-vertex-count",
//		Code:     errors.CodeInvalidUsage,
//		Category: errors.CategoryStructural,
//		Severity: errors.SeverityWarning,
//		Template: "%s is 0, the call has no effect",
//	}
//	v := zeroDraw.Violation("vkCmdDraw", []string{"vertexCount"}, 0, "vertexCount")
//
// Internal inconsistencies (no validation state for a dispatch key) use
// CategoryInternal and are raised as panics, never reported.
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Category and Code.
package errors
