package vk

import "github.com/wippyai/vk-validation/enum"

// Result is VkResult. Negative values are errors, zero and positive values
// are success or status codes.
type Result int32

const (
	ErrorFragmentedPool       Result = -12
	ErrorFormatNotSupported   Result = -11
	ErrorTooManyObjects       Result = -10
	ErrorIncompatibleDriver   Result = -9
	ErrorFeatureNotPresent    Result = -8
	ErrorExtensionNotPresent  Result = -7
	ErrorLayerNotPresent      Result = -6
	ErrorMemoryMapFailed      Result = -5
	ErrorDeviceLost           Result = -4
	ErrorInitializationFailed Result = -3
	ErrorOutOfDeviceMemory    Result = -2
	ErrorOutOfHostMemory      Result = -1
	Success                   Result = 0
	NotReady                  Result = 1
	Timeout                   Result = 2
	EventSet                  Result = 3
	EventReset                Result = 4
	Incomplete                Result = 5

	ErrorSurfaceLostKHR           Result = -1000000000
	ErrorNativeWindowInUseKHR     Result = -1000000001
	SuboptimalKHR                 Result = 1000001003
	ErrorOutOfDateKHR             Result = -1000001004
	ErrorIncompatibleDisplayKHR   Result = -1000003001
	ErrorValidationFailedEXT      Result = -1000011001
	ErrorInvalidShaderNV          Result = -1000012000
	ErrorOutOfPoolMemoryKHR       Result = -1000069000
	ErrorInvalidExternalHandleKHR Result = -1000072003
)

var resultDecl = enum.Range[Result]("VkResult", ErrorFragmentedPool,
	"VK_ERROR_FRAGMENTED_POOL",
	"VK_ERROR_FORMAT_NOT_SUPPORTED",
	"VK_ERROR_TOO_MANY_OBJECTS",
	"VK_ERROR_INCOMPATIBLE_DRIVER",
	"VK_ERROR_FEATURE_NOT_PRESENT",
	"VK_ERROR_EXTENSION_NOT_PRESENT",
	"VK_ERROR_LAYER_NOT_PRESENT",
	"VK_ERROR_MEMORY_MAP_FAILED",
	"VK_ERROR_DEVICE_LOST",
	"VK_ERROR_INITIALIZATION_FAILED",
	"VK_ERROR_OUT_OF_DEVICE_MEMORY",
	"VK_ERROR_OUT_OF_HOST_MEMORY",
	"VK_SUCCESS",
	"VK_NOT_READY",
	"VK_TIMEOUT",
	"VK_EVENT_SET",
	"VK_EVENT_RESET",
	"VK_INCOMPLETE").
	Extend(ErrorSurfaceLostKHR, "VK_ERROR_SURFACE_LOST_KHR").
	Extend(ErrorNativeWindowInUseKHR, "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR").
	Extend(SuboptimalKHR, "VK_SUBOPTIMAL_KHR").
	Extend(ErrorOutOfDateKHR, "VK_ERROR_OUT_OF_DATE_KHR").
	Extend(ErrorIncompatibleDisplayKHR, "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR").
	Extend(ErrorValidationFailedEXT, "VK_ERROR_VALIDATION_FAILED_EXT").
	Extend(ErrorInvalidShaderNV, "VK_ERROR_INVALID_SHADER_NV").
	Extend(ErrorOutOfPoolMemoryKHR, "VK_ERROR_OUT_OF_POOL_MEMORY_KHR").
	Extend(ErrorInvalidExternalHandleKHR, "VK_ERROR_INVALID_EXTERNAL_HANDLE_KHR")

func (v Result) IsValid() bool { return resultDecl.IsValid(v) }
func (v Result) String() string { return resultDecl.Format(v) }
func (Result) EnumType() string { return resultDecl.TypeName() }
func (v *Result) UnmarshalText(b []byte) error { return resultDecl.Unmarshal(v, b) }

// IsError reports whether v is an error code.
func (v Result) IsError() bool { return v < 0 }

// IsSuccess reports whether v is VK_SUCCESS.
func (v Result) IsSuccess() bool { return v == Success }
