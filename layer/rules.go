package layer

import "github.com/wippyai/vk-validation/errors"

const (
	structural    = errors.CategoryStructural
	crossField    = errors.CategoryCrossField
	capability    = errors.CategoryCapability
	postcondition = errors.CategoryPostcondition

	blocking = errors.SeverityError
	advisory = errors.SeverityWarning
)

func rule(name string, code errors.Code, cat errors.Category, sev errors.Severity, tmpl string) errors.Rule {
	return errors.Rule{Name: name, Code: code, Category: cat, Severity: sev, Template: tmpl}
}

// Structural rules.
var (
	ruleRequired       = rule("required", errors.CodeRequiredParameter, structural, blocking, "required parameter %s is NULL")
	ruleRequiredHandle = rule("required-handle", errors.CodeRequiredParameter, structural, blocking, "%s must not be VK_NULL_HANDLE")
	ruleRequiredCount  = rule("required-count", errors.CodeRequiredParameter, structural, blocking, "%s must be greater than 0")
	ruleArrayLength    = rule("array-length", errors.CodeInvalidUsage, structural, blocking, "%s holds %d elements but its count is %d")
	ruleSType          = rule("stype", errors.CodeInvalidStructSType, structural, blocking, "sType is %s, must be %s")
	ruleChainSType     = rule("chain-stype", errors.CodeInvalidStructSType, structural, blocking, "chained structure has sType %s, its type requires %s")
	ruleChainDuplicate = rule("chain-duplicate", errors.CodeInvalidStructPNext, structural, blocking, "%s appears more than once in the pNext chain")
	ruleChainDisallow  = rule("chain-not-allowed", errors.CodeInvalidStructPNext, structural, blocking, "%s is not allowed in the pNext chain of this structure")
	ruleChainUnknown   = rule("chain-unknown", errors.CodeInvalidStructPNext, structural, advisory, "pNext chain holds unknown structure type %d; it is ignored")
	ruleEnum           = rule("enum", errors.CodeUnrecognizedValue, structural, blocking, "%d is not a valid %s value")
	ruleFlags          = rule("flags", errors.CodeUnrecognizedValue, structural, blocking, "0x%x contains bits not defined by %s")
	ruleFlagsZero      = rule("flags-zero", errors.CodeRequiredParameter, structural, blocking, "%s must not be 0")
	ruleSingleBit      = rule("single-bit", errors.CodeUnrecognizedValue, structural, blocking, "0x%x must have exactly one %s bit set")
	ruleReserved       = rule("reserved", errors.CodeReservedParameter, structural, blocking, "reserved value 0x%x must be 0")
	ruleBool           = rule("bool32", errors.CodeUnrecognizedValue, structural, blocking, "%d is neither VK_TRUE nor VK_FALSE")
	rulePositive       = rule("positive", errors.CodeInvalidUsage, structural, blocking, "%s must be greater than 0")
	ruleRange          = rule("range", errors.CodeInvalidUsage, structural, blocking, "%g is outside [%g, %g]")
	ruleAlign          = rule("alignment", errors.CodeInvalidUsage, structural, blocking, "%d is not a multiple of %d")
	ruleString         = rule("string", errors.CodeInvalidUsage, structural, blocking, "%s")
	ruleZeroWork       = rule("zero-work", errors.CodeInvalidUsage, structural, advisory, "%s is 0; the command has no effect")
)

// Cross-field rules.
var (
	ruleUsage             = rule("usage", errors.CodeInvalidUsage, crossField, blocking, "%s")
	ruleSharingCount      = rule("sharing-count", errors.CodeInvalidUsage, crossField, blocking, "sharing mode is VK_SHARING_MODE_CONCURRENT but queueFamilyIndexCount is %d; it must be greater than 1")
	ruleSharingNull       = rule("sharing-null", errors.CodeInvalidUsage, crossField, blocking, "sharing mode is VK_SHARING_MODE_CONCURRENT but pQueueFamilyIndices is NULL")
	ruleSharingDuplicate  = rule("sharing-duplicate", errors.CodeInvalidUsage, crossField, blocking, "queue family index %d appears more than once")
	ruleSharingUnknown    = rule("sharing-unknown", errors.CodeInvalidUsage, crossField, blocking, "queue family index %d was not requested when the device was created")
	ruleQueueIgnored      = rule("queue-ignored", errors.CodeInvalidUsage, crossField, blocking, "queueFamilyIndex must not be VK_QUEUE_FAMILY_IGNORED")
	ruleQueueFamily       = rule("queue-family", errors.CodeInvalidUsage, crossField, blocking, "queueFamilyIndex %d was not requested when the device was created")
	ruleQueueIndex        = rule("queue-index", errors.CodeInvalidUsage, crossField, blocking, "queueIndex %d is not less than the %d queues requested for family %d")
	ruleFamilyDuplicate   = rule("family-duplicate", errors.CodeInvalidUsage, crossField, blocking, "queueFamilyIndex %d is requested more than once")
	ruleFamilyRange       = rule("family-range", errors.CodeInvalidUsage, crossField, blocking, "queueFamilyIndex %d is not less than the %d families of the physical device")
	ruleDerivativeBoth    = rule("derivative-both", errors.CodeInvalidUsage, crossField, blocking, "basePipelineHandle and basePipelineIndex are both set; exactly one must be")
	ruleDerivativeNeither = rule("derivative-neither", errors.CodeInvalidUsage, crossField, blocking, "VK_PIPELINE_CREATE_DERIVATIVE_BIT is set but neither basePipelineHandle nor basePipelineIndex is")
	ruleDerivativeIndex   = rule("derivative-index", errors.CodeInvalidUsage, crossField, blocking, "basePipelineIndex %d must refer to an earlier element of pCreateInfos")
	ruleDerivativeAllow   = rule("derivative-allow", errors.CodeInvalidUsage, crossField, blocking, "base pipeline %d was not created with VK_PIPELINE_CREATE_ALLOW_DERIVATIVES_BIT")
)

// Capability rules.
var (
	ruleFeature        = rule("feature", errors.CodeDeviceFeature, capability, blocking, "requires the %s feature, which is not enabled")
	ruleUnsupported    = rule("feature-unsupported", errors.CodeDeviceFeature, capability, blocking, "enables %s, which the physical device does not support")
	ruleLimit          = rule("limit", errors.CodeDeviceLimit, capability, blocking, "%d exceeds %s (%d)")
	ruleLimitF         = rule("limit-float", errors.CodeDeviceLimit, capability, blocking, "%g exceeds %s (%g)")
	ruleExtension      = rule("extension", errors.CodeExtensionNotEnabled, capability, blocking, "requires %s, which is not enabled")
	ruleChainExtension = rule("chain-extension", errors.CodeExtensionNotEnabled, capability, advisory, "%s belongs to %s, which is not enabled")
)

// Postcondition rules. Nothing can be blocked after the call, so all of
// them are advisory.
var (
	ruleResultUnknown = rule("result-unknown", errors.CodeUnrecognizedValue, postcondition, advisory, "returned unrecognized status %d")
	ruleResultError   = rule("result-error", errors.CodeFailureReturnCode, postcondition, advisory, "returned %s")
	ruleResultStatus  = rule("result-status", errors.CodeFailureReturnCode, postcondition, errors.SeverityInfo, "returned %s")
	rulePostEnum      = rule("post-enum", errors.CodeUnrecognizedValue, postcondition, advisory, "implementation returned %d, which is not a valid %s value")
	rulePostFlags     = rule("post-flags", errors.CodeUnrecognizedValue, postcondition, advisory, "implementation returned 0x%x, which contains bits not defined by %s")
	rulePostBool      = rule("post-bool32", errors.CodeUnrecognizedValue, postcondition, advisory, "implementation returned %d, which is neither VK_TRUE nor VK_FALSE")
	rulePostLimit     = rule("post-limit", errors.CodeUnrecognizedValue, postcondition, advisory, "implementation returned %d, which exceeds %d")
)
