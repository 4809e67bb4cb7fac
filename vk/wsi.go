package vk

// SwapchainCreateInfoKHR is VkSwapchainCreateInfoKHR.
type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	Next                  Extension
	Flags                 Flags
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    []uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

// PresentInfoKHR is VkPresentInfoKHR. Results, when non-nil, receives one
// status per swapchain.
type PresentInfoKHR struct {
	SType              StructureType
	Next               Extension
	WaitSemaphoreCount uint32
	WaitSemaphores     []Semaphore
	SwapchainCount     uint32
	Swapchains         []SwapchainKHR
	ImageIndices       []uint32
	Results            []Result
}

// DebugReportCallback is PFN_vkDebugReportCallbackEXT. Returning true asks
// the layer to fail the call that triggered the report.
type DebugReportCallback func(flags DebugReportFlagsEXT, objectType DebugReportObjectTypeEXT,
	object uint64, location uint64, messageCode int32, layerPrefix, message string, userData any) bool

// DebugReportCallbackCreateInfoEXT is VkDebugReportCallbackCreateInfoEXT.
// Chained into InstanceCreateInfo it installs a callback for the lifetime of
// the CreateInstance/DestroyInstance calls.
type DebugReportCallbackCreateInfoEXT struct {
	SType    StructureType
	Next     Extension
	Flags    DebugReportFlagsEXT
	Callback DebugReportCallback
	UserData any
}
