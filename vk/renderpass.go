package vk

// AttachmentDescription is VkAttachmentDescription.
type AttachmentDescription struct {
	Flags          AttachmentDescriptionFlags
	Format         Format
	Samples        SampleCountFlags
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

// AttachmentReference is VkAttachmentReference.
type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

// SubpassDescription is VkSubpassDescription. ResolveAttachments, when
// non-nil, has ColorAttachmentCount entries.
type SubpassDescription struct {
	Flags                   SubpassDescriptionFlags
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	InputAttachments        []AttachmentReference
	ColorAttachmentCount    uint32
	ColorAttachments        []AttachmentReference
	ResolveAttachments      []AttachmentReference
	DepthStencilAttachment  *AttachmentReference
	PreserveAttachmentCount uint32
	PreserveAttachments     []uint32
}

// SubpassDependency is VkSubpassDependency.
type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

// RenderPassCreateInfo is VkRenderPassCreateInfo.
type RenderPassCreateInfo struct {
	SType           StructureType
	Next            Extension
	Flags           Flags
	AttachmentCount uint32
	Attachments     []AttachmentDescription
	SubpassCount    uint32
	Subpasses       []SubpassDescription
	DependencyCount uint32
	Dependencies    []SubpassDependency
}

// RenderPassBeginInfo is VkRenderPassBeginInfo.
type RenderPassBeginInfo struct {
	SType           StructureType
	Next            Extension
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	ClearValues     []ClearValue
}
