// Package enum is the rule library for enumerated and bit-flag types.
//
// Each enumerated type of the API model is declared once through a
// descriptor. The descriptor answers two questions for any raw value:
//
//	IsValid(v) - is v a member of the declared legal set
//	Format(v)  - the printable form of v
//
// Scalar types are declared as a contiguous core range plus optional
// extension values:
//
//	var imageTypes = enum.Range[ImageType]("VkImageType", 0,
//		"VK_IMAGE_TYPE_1D", "VK_IMAGE_TYPE_2D", "VK_IMAGE_TYPE_3D")
//
// Flag types are declared bit by bit, in declaration order:
//
//	var cullModes = enum.Bits[CullModeFlags]("VkCullModeFlags",
//		"VK_CULL_MODE_FRONT_BIT", "VK_CULL_MODE_BACK_BIT")
//
// # Formatting
//
// A valid scalar formats as its declared name. A valid flag combination
// formats as the names of its set bits joined by "|" in declaration order,
// and the empty combination formats as "0".
//
// Any invalid value formats as [Unrecognized]. This is all or nothing: a flag
// value with seven known bits and one unknown bit formats exactly like a value
// whose bits are all unknown.
//
// # Registry
//
// Every descriptor registers itself on construction. [All] and [Lookup]
// expose the registered descriptors through the type-erased [Descriptor]
// view, which is what property tests and tooling iterate over.
package enum
