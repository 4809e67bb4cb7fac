package vk

import "github.com/wippyai/vk-validation/enum"

// Format is VkFormat.
type Format int32

const (
	FormatUndefined                Format = 0
	FormatR4g4UnormPack8           Format = 1
	FormatR4g4b4a4UnormPack16      Format = 2
	FormatB4g4r4a4UnormPack16      Format = 3
	FormatR5g6b5UnormPack16        Format = 4
	FormatB5g6r5UnormPack16        Format = 5
	FormatR5g5b5a1UnormPack16      Format = 6
	FormatB5g5r5a1UnormPack16      Format = 7
	FormatA1r5g5b5UnormPack16      Format = 8
	FormatR8Unorm                  Format = 9
	FormatR8Snorm                  Format = 10
	FormatR8Uscaled                Format = 11
	FormatR8Sscaled                Format = 12
	FormatR8Uint                   Format = 13
	FormatR8Sint                   Format = 14
	FormatR8Srgb                   Format = 15
	FormatR8g8Unorm                Format = 16
	FormatR8g8Snorm                Format = 17
	FormatR8g8Uscaled              Format = 18
	FormatR8g8Sscaled              Format = 19
	FormatR8g8Uint                 Format = 20
	FormatR8g8Sint                 Format = 21
	FormatR8g8Srgb                 Format = 22
	FormatR8g8b8Unorm              Format = 23
	FormatR8g8b8Snorm              Format = 24
	FormatR8g8b8Uscaled            Format = 25
	FormatR8g8b8Sscaled            Format = 26
	FormatR8g8b8Uint               Format = 27
	FormatR8g8b8Sint               Format = 28
	FormatR8g8b8Srgb               Format = 29
	FormatB8g8r8Unorm              Format = 30
	FormatB8g8r8Snorm              Format = 31
	FormatB8g8r8Uscaled            Format = 32
	FormatB8g8r8Sscaled            Format = 33
	FormatB8g8r8Uint               Format = 34
	FormatB8g8r8Sint               Format = 35
	FormatB8g8r8Srgb               Format = 36
	FormatR8g8b8a8Unorm            Format = 37
	FormatR8g8b8a8Snorm            Format = 38
	FormatR8g8b8a8Uscaled          Format = 39
	FormatR8g8b8a8Sscaled          Format = 40
	FormatR8g8b8a8Uint             Format = 41
	FormatR8g8b8a8Sint             Format = 42
	FormatR8g8b8a8Srgb             Format = 43
	FormatB8g8r8a8Unorm            Format = 44
	FormatB8g8r8a8Snorm            Format = 45
	FormatB8g8r8a8Uscaled          Format = 46
	FormatB8g8r8a8Sscaled          Format = 47
	FormatB8g8r8a8Uint             Format = 48
	FormatB8g8r8a8Sint             Format = 49
	FormatB8g8r8a8Srgb             Format = 50
	FormatA8b8g8r8UnormPack32      Format = 51
	FormatA8b8g8r8SnormPack32      Format = 52
	FormatA8b8g8r8UscaledPack32    Format = 53
	FormatA8b8g8r8SscaledPack32    Format = 54
	FormatA8b8g8r8UintPack32       Format = 55
	FormatA8b8g8r8SintPack32       Format = 56
	FormatA8b8g8r8SrgbPack32       Format = 57
	FormatA2r10g10b10UnormPack32   Format = 58
	FormatA2r10g10b10SnormPack32   Format = 59
	FormatA2r10g10b10UscaledPack32 Format = 60
	FormatA2r10g10b10SscaledPack32 Format = 61
	FormatA2r10g10b10UintPack32    Format = 62
	FormatA2r10g10b10SintPack32    Format = 63
	FormatA2b10g10r10UnormPack32   Format = 64
	FormatA2b10g10r10SnormPack32   Format = 65
	FormatA2b10g10r10UscaledPack32 Format = 66
	FormatA2b10g10r10SscaledPack32 Format = 67
	FormatA2b10g10r10UintPack32    Format = 68
	FormatA2b10g10r10SintPack32    Format = 69
	FormatR16Unorm                 Format = 70
	FormatR16Snorm                 Format = 71
	FormatR16Uscaled               Format = 72
	FormatR16Sscaled               Format = 73
	FormatR16Uint                  Format = 74
	FormatR16Sint                  Format = 75
	FormatR16Sfloat                Format = 76
	FormatR16g16Unorm              Format = 77
	FormatR16g16Snorm              Format = 78
	FormatR16g16Uscaled            Format = 79
	FormatR16g16Sscaled            Format = 80
	FormatR16g16Uint               Format = 81
	FormatR16g16Sint               Format = 82
	FormatR16g16Sfloat             Format = 83
	FormatR16g16b16Unorm           Format = 84
	FormatR16g16b16Snorm           Format = 85
	FormatR16g16b16Uscaled         Format = 86
	FormatR16g16b16Sscaled         Format = 87
	FormatR16g16b16Uint            Format = 88
	FormatR16g16b16Sint            Format = 89
	FormatR16g16b16Sfloat          Format = 90
	FormatR16g16b16a16Unorm        Format = 91
	FormatR16g16b16a16Snorm        Format = 92
	FormatR16g16b16a16Uscaled      Format = 93
	FormatR16g16b16a16Sscaled      Format = 94
	FormatR16g16b16a16Uint         Format = 95
	FormatR16g16b16a16Sint         Format = 96
	FormatR16g16b16a16Sfloat       Format = 97
	FormatR32Uint                  Format = 98
	FormatR32Sint                  Format = 99
	FormatR32Sfloat                Format = 100
	FormatR32g32Uint               Format = 101
	FormatR32g32Sint               Format = 102
	FormatR32g32Sfloat             Format = 103
	FormatR32g32b32Uint            Format = 104
	FormatR32g32b32Sint            Format = 105
	FormatR32g32b32Sfloat          Format = 106
	FormatR32g32b32a32Uint         Format = 107
	FormatR32g32b32a32Sint         Format = 108
	FormatR32g32b32a32Sfloat       Format = 109
	FormatR64Uint                  Format = 110
	FormatR64Sint                  Format = 111
	FormatR64Sfloat                Format = 112
	FormatR64g64Uint               Format = 113
	FormatR64g64Sint               Format = 114
	FormatR64g64Sfloat             Format = 115
	FormatR64g64b64Uint            Format = 116
	FormatR64g64b64Sint            Format = 117
	FormatR64g64b64Sfloat          Format = 118
	FormatR64g64b64a64Uint         Format = 119
	FormatR64g64b64a64Sint         Format = 120
	FormatR64g64b64a64Sfloat       Format = 121
	FormatB10g11r11UfloatPack32    Format = 122
	FormatE5b9g9r9UfloatPack32     Format = 123
	FormatD16Unorm                 Format = 124
	FormatX8D24UnormPack32         Format = 125
	FormatD32Sfloat                Format = 126
	FormatS8Uint                   Format = 127
	FormatD16UnormS8Uint           Format = 128
	FormatD24UnormS8Uint           Format = 129
	FormatD32SfloatS8Uint          Format = 130
	FormatBc1RgbUnormBlock         Format = 131
	FormatBc1RgbSrgbBlock          Format = 132
	FormatBc1RgbaUnormBlock        Format = 133
	FormatBc1RgbaSrgbBlock         Format = 134
	FormatBc2UnormBlock            Format = 135
	FormatBc2SrgbBlock             Format = 136
	FormatBc3UnormBlock            Format = 137
	FormatBc3SrgbBlock             Format = 138
	FormatBc4UnormBlock            Format = 139
	FormatBc4SnormBlock            Format = 140
	FormatBc5UnormBlock            Format = 141
	FormatBc5SnormBlock            Format = 142
	FormatBc6hUfloatBlock          Format = 143
	FormatBc6hSfloatBlock          Format = 144
	FormatBc7UnormBlock            Format = 145
	FormatBc7SrgbBlock             Format = 146
	FormatEtc2R8g8b8UnormBlock     Format = 147
	FormatEtc2R8g8b8SrgbBlock      Format = 148
	FormatEtc2R8g8b8a1UnormBlock   Format = 149
	FormatEtc2R8g8b8a1SrgbBlock    Format = 150
	FormatEtc2R8g8b8a8UnormBlock   Format = 151
	FormatEtc2R8g8b8a8SrgbBlock    Format = 152
	FormatEacR11UnormBlock         Format = 153
	FormatEacR11SnormBlock         Format = 154
	FormatEacR11g11UnormBlock      Format = 155
	FormatEacR11g11SnormBlock      Format = 156
	FormatAstc4x4UnormBlock        Format = 157
	FormatAstc4x4SrgbBlock         Format = 158
	FormatAstc5x4UnormBlock        Format = 159
	FormatAstc5x4SrgbBlock         Format = 160
	FormatAstc5x5UnormBlock        Format = 161
	FormatAstc5x5SrgbBlock         Format = 162
	FormatAstc6x5UnormBlock        Format = 163
	FormatAstc6x5SrgbBlock         Format = 164
	FormatAstc6x6UnormBlock        Format = 165
	FormatAstc6x6SrgbBlock         Format = 166
	FormatAstc8x5UnormBlock        Format = 167
	FormatAstc8x5SrgbBlock         Format = 168
	FormatAstc8x6UnormBlock        Format = 169
	FormatAstc8x6SrgbBlock         Format = 170
	FormatAstc8x8UnormBlock        Format = 171
	FormatAstc8x8SrgbBlock         Format = 172
	FormatAstc10x5UnormBlock       Format = 173
	FormatAstc10x5SrgbBlock        Format = 174
	FormatAstc10x6UnormBlock       Format = 175
	FormatAstc10x6SrgbBlock        Format = 176
	FormatAstc10x8UnormBlock       Format = 177
	FormatAstc10x8SrgbBlock        Format = 178
	FormatAstc10x10UnormBlock      Format = 179
	FormatAstc10x10SrgbBlock       Format = 180
	FormatAstc12x10UnormBlock      Format = 181
	FormatAstc12x10SrgbBlock       Format = 182
	FormatAstc12x12UnormBlock      Format = 183
	FormatAstc12x12SrgbBlock       Format = 184
	FormatPvrtc12bppUnormBlockIMG  Format = 1000054000
	FormatPvrtc14bppUnormBlockIMG  Format = 1000054001
	FormatPvrtc22bppUnormBlockIMG  Format = 1000054002
	FormatPvrtc24bppUnormBlockIMG  Format = 1000054003
	FormatPvrtc12bppSrgbBlockIMG   Format = 1000054004
	FormatPvrtc14bppSrgbBlockIMG   Format = 1000054005
	FormatPvrtc22bppSrgbBlockIMG   Format = 1000054006
	FormatPvrtc24bppSrgbBlockIMG   Format = 1000054007
)

var formatDecl = enum.Range[Format]("VkFormat", 0,
	"VK_FORMAT_UNDEFINED",
	"VK_FORMAT_R4G4_UNORM_PACK8",
	"VK_FORMAT_R4G4B4A4_UNORM_PACK16",
	"VK_FORMAT_B4G4R4A4_UNORM_PACK16",
	"VK_FORMAT_R5G6B5_UNORM_PACK16",
	"VK_FORMAT_B5G6R5_UNORM_PACK16",
	"VK_FORMAT_R5G5B5A1_UNORM_PACK16",
	"VK_FORMAT_B5G5R5A1_UNORM_PACK16",
	"VK_FORMAT_A1R5G5B5_UNORM_PACK16",
	"VK_FORMAT_R8_UNORM",
	"VK_FORMAT_R8_SNORM",
	"VK_FORMAT_R8_USCALED",
	"VK_FORMAT_R8_SSCALED",
	"VK_FORMAT_R8_UINT",
	"VK_FORMAT_R8_SINT",
	"VK_FORMAT_R8_SRGB",
	"VK_FORMAT_R8G8_UNORM",
	"VK_FORMAT_R8G8_SNORM",
	"VK_FORMAT_R8G8_USCALED",
	"VK_FORMAT_R8G8_SSCALED",
	"VK_FORMAT_R8G8_UINT",
	"VK_FORMAT_R8G8_SINT",
	"VK_FORMAT_R8G8_SRGB",
	"VK_FORMAT_R8G8B8_UNORM",
	"VK_FORMAT_R8G8B8_SNORM",
	"VK_FORMAT_R8G8B8_USCALED",
	"VK_FORMAT_R8G8B8_SSCALED",
	"VK_FORMAT_R8G8B8_UINT",
	"VK_FORMAT_R8G8B8_SINT",
	"VK_FORMAT_R8G8B8_SRGB",
	"VK_FORMAT_B8G8R8_UNORM",
	"VK_FORMAT_B8G8R8_SNORM",
	"VK_FORMAT_B8G8R8_USCALED",
	"VK_FORMAT_B8G8R8_SSCALED",
	"VK_FORMAT_B8G8R8_UINT",
	"VK_FORMAT_B8G8R8_SINT",
	"VK_FORMAT_B8G8R8_SRGB",
	"VK_FORMAT_R8G8B8A8_UNORM",
	"VK_FORMAT_R8G8B8A8_SNORM",
	"VK_FORMAT_R8G8B8A8_USCALED",
	"VK_FORMAT_R8G8B8A8_SSCALED",
	"VK_FORMAT_R8G8B8A8_UINT",
	"VK_FORMAT_R8G8B8A8_SINT",
	"VK_FORMAT_R8G8B8A8_SRGB",
	"VK_FORMAT_B8G8R8A8_UNORM",
	"VK_FORMAT_B8G8R8A8_SNORM",
	"VK_FORMAT_B8G8R8A8_USCALED",
	"VK_FORMAT_B8G8R8A8_SSCALED",
	"VK_FORMAT_B8G8R8A8_UINT",
	"VK_FORMAT_B8G8R8A8_SINT",
	"VK_FORMAT_B8G8R8A8_SRGB",
	"VK_FORMAT_A8B8G8R8_UNORM_PACK32",
	"VK_FORMAT_A8B8G8R8_SNORM_PACK32",
	"VK_FORMAT_A8B8G8R8_USCALED_PACK32",
	"VK_FORMAT_A8B8G8R8_SSCALED_PACK32",
	"VK_FORMAT_A8B8G8R8_UINT_PACK32",
	"VK_FORMAT_A8B8G8R8_SINT_PACK32",
	"VK_FORMAT_A8B8G8R8_SRGB_PACK32",
	"VK_FORMAT_A2R10G10B10_UNORM_PACK32",
	"VK_FORMAT_A2R10G10B10_SNORM_PACK32",
	"VK_FORMAT_A2R10G10B10_USCALED_PACK32",
	"VK_FORMAT_A2R10G10B10_SSCALED_PACK32",
	"VK_FORMAT_A2R10G10B10_UINT_PACK32",
	"VK_FORMAT_A2R10G10B10_SINT_PACK32",
	"VK_FORMAT_A2B10G10R10_UNORM_PACK32",
	"VK_FORMAT_A2B10G10R10_SNORM_PACK32",
	"VK_FORMAT_A2B10G10R10_USCALED_PACK32",
	"VK_FORMAT_A2B10G10R10_SSCALED_PACK32",
	"VK_FORMAT_A2B10G10R10_UINT_PACK32",
	"VK_FORMAT_A2B10G10R10_SINT_PACK32",
	"VK_FORMAT_R16_UNORM",
	"VK_FORMAT_R16_SNORM",
	"VK_FORMAT_R16_USCALED",
	"VK_FORMAT_R16_SSCALED",
	"VK_FORMAT_R16_UINT",
	"VK_FORMAT_R16_SINT",
	"VK_FORMAT_R16_SFLOAT",
	"VK_FORMAT_R16G16_UNORM",
	"VK_FORMAT_R16G16_SNORM",
	"VK_FORMAT_R16G16_USCALED",
	"VK_FORMAT_R16G16_SSCALED",
	"VK_FORMAT_R16G16_UINT",
	"VK_FORMAT_R16G16_SINT",
	"VK_FORMAT_R16G16_SFLOAT",
	"VK_FORMAT_R16G16B16_UNORM",
	"VK_FORMAT_R16G16B16_SNORM",
	"VK_FORMAT_R16G16B16_USCALED",
	"VK_FORMAT_R16G16B16_SSCALED",
	"VK_FORMAT_R16G16B16_UINT",
	"VK_FORMAT_R16G16B16_SINT",
	"VK_FORMAT_R16G16B16_SFLOAT",
	"VK_FORMAT_R16G16B16A16_UNORM",
	"VK_FORMAT_R16G16B16A16_SNORM",
	"VK_FORMAT_R16G16B16A16_USCALED",
	"VK_FORMAT_R16G16B16A16_SSCALED",
	"VK_FORMAT_R16G16B16A16_UINT",
	"VK_FORMAT_R16G16B16A16_SINT",
	"VK_FORMAT_R16G16B16A16_SFLOAT",
	"VK_FORMAT_R32_UINT",
	"VK_FORMAT_R32_SINT",
	"VK_FORMAT_R32_SFLOAT",
	"VK_FORMAT_R32G32_UINT",
	"VK_FORMAT_R32G32_SINT",
	"VK_FORMAT_R32G32_SFLOAT",
	"VK_FORMAT_R32G32B32_UINT",
	"VK_FORMAT_R32G32B32_SINT",
	"VK_FORMAT_R32G32B32_SFLOAT",
	"VK_FORMAT_R32G32B32A32_UINT",
	"VK_FORMAT_R32G32B32A32_SINT",
	"VK_FORMAT_R32G32B32A32_SFLOAT",
	"VK_FORMAT_R64_UINT",
	"VK_FORMAT_R64_SINT",
	"VK_FORMAT_R64_SFLOAT",
	"VK_FORMAT_R64G64_UINT",
	"VK_FORMAT_R64G64_SINT",
	"VK_FORMAT_R64G64_SFLOAT",
	"VK_FORMAT_R64G64B64_UINT",
	"VK_FORMAT_R64G64B64_SINT",
	"VK_FORMAT_R64G64B64_SFLOAT",
	"VK_FORMAT_R64G64B64A64_UINT",
	"VK_FORMAT_R64G64B64A64_SINT",
	"VK_FORMAT_R64G64B64A64_SFLOAT",
	"VK_FORMAT_B10G11R11_UFLOAT_PACK32",
	"VK_FORMAT_E5B9G9R9_UFLOAT_PACK32",
	"VK_FORMAT_D16_UNORM",
	"VK_FORMAT_X8_D24_UNORM_PACK32",
	"VK_FORMAT_D32_SFLOAT",
	"VK_FORMAT_S8_UINT",
	"VK_FORMAT_D16_UNORM_S8_UINT",
	"VK_FORMAT_D24_UNORM_S8_UINT",
	"VK_FORMAT_D32_SFLOAT_S8_UINT",
	"VK_FORMAT_BC1_RGB_UNORM_BLOCK",
	"VK_FORMAT_BC1_RGB_SRGB_BLOCK",
	"VK_FORMAT_BC1_RGBA_UNORM_BLOCK",
	"VK_FORMAT_BC1_RGBA_SRGB_BLOCK",
	"VK_FORMAT_BC2_UNORM_BLOCK",
	"VK_FORMAT_BC2_SRGB_BLOCK",
	"VK_FORMAT_BC3_UNORM_BLOCK",
	"VK_FORMAT_BC3_SRGB_BLOCK",
	"VK_FORMAT_BC4_UNORM_BLOCK",
	"VK_FORMAT_BC4_SNORM_BLOCK",
	"VK_FORMAT_BC5_UNORM_BLOCK",
	"VK_FORMAT_BC5_SNORM_BLOCK",
	"VK_FORMAT_BC6H_UFLOAT_BLOCK",
	"VK_FORMAT_BC6H_SFLOAT_BLOCK",
	"VK_FORMAT_BC7_UNORM_BLOCK",
	"VK_FORMAT_BC7_SRGB_BLOCK",
	"VK_FORMAT_ETC2_R8G8B8_UNORM_BLOCK",
	"VK_FORMAT_ETC2_R8G8B8_SRGB_BLOCK",
	"VK_FORMAT_ETC2_R8G8B8A1_UNORM_BLOCK",
	"VK_FORMAT_ETC2_R8G8B8A1_SRGB_BLOCK",
	"VK_FORMAT_ETC2_R8G8B8A8_UNORM_BLOCK",
	"VK_FORMAT_ETC2_R8G8B8A8_SRGB_BLOCK",
	"VK_FORMAT_EAC_R11_UNORM_BLOCK",
	"VK_FORMAT_EAC_R11_SNORM_BLOCK",
	"VK_FORMAT_EAC_R11G11_UNORM_BLOCK",
	"VK_FORMAT_EAC_R11G11_SNORM_BLOCK",
	"VK_FORMAT_ASTC_4x4_UNORM_BLOCK",
	"VK_FORMAT_ASTC_4x4_SRGB_BLOCK",
	"VK_FORMAT_ASTC_5x4_UNORM_BLOCK",
	"VK_FORMAT_ASTC_5x4_SRGB_BLOCK",
	"VK_FORMAT_ASTC_5x5_UNORM_BLOCK",
	"VK_FORMAT_ASTC_5x5_SRGB_BLOCK",
	"VK_FORMAT_ASTC_6x5_UNORM_BLOCK",
	"VK_FORMAT_ASTC_6x5_SRGB_BLOCK",
	"VK_FORMAT_ASTC_6x6_UNORM_BLOCK",
	"VK_FORMAT_ASTC_6x6_SRGB_BLOCK",
	"VK_FORMAT_ASTC_8x5_UNORM_BLOCK",
	"VK_FORMAT_ASTC_8x5_SRGB_BLOCK",
	"VK_FORMAT_ASTC_8x6_UNORM_BLOCK",
	"VK_FORMAT_ASTC_8x6_SRGB_BLOCK",
	"VK_FORMAT_ASTC_8x8_UNORM_BLOCK",
	"VK_FORMAT_ASTC_8x8_SRGB_BLOCK",
	"VK_FORMAT_ASTC_10x5_UNORM_BLOCK",
	"VK_FORMAT_ASTC_10x5_SRGB_BLOCK",
	"VK_FORMAT_ASTC_10x6_UNORM_BLOCK",
	"VK_FORMAT_ASTC_10x6_SRGB_BLOCK",
	"VK_FORMAT_ASTC_10x8_UNORM_BLOCK",
	"VK_FORMAT_ASTC_10x8_SRGB_BLOCK",
	"VK_FORMAT_ASTC_10x10_UNORM_BLOCK",
	"VK_FORMAT_ASTC_10x10_SRGB_BLOCK",
	"VK_FORMAT_ASTC_12x10_UNORM_BLOCK",
	"VK_FORMAT_ASTC_12x10_SRGB_BLOCK",
	"VK_FORMAT_ASTC_12x12_UNORM_BLOCK",
	"VK_FORMAT_ASTC_12x12_SRGB_BLOCK").
	Extend(FormatPvrtc12bppUnormBlockIMG, "VK_FORMAT_PVRTC1_2BPP_UNORM_BLOCK_IMG").
	Extend(FormatPvrtc14bppUnormBlockIMG, "VK_FORMAT_PVRTC1_4BPP_UNORM_BLOCK_IMG").
	Extend(FormatPvrtc22bppUnormBlockIMG, "VK_FORMAT_PVRTC2_2BPP_UNORM_BLOCK_IMG").
	Extend(FormatPvrtc24bppUnormBlockIMG, "VK_FORMAT_PVRTC2_4BPP_UNORM_BLOCK_IMG").
	Extend(FormatPvrtc12bppSrgbBlockIMG, "VK_FORMAT_PVRTC1_2BPP_SRGB_BLOCK_IMG").
	Extend(FormatPvrtc14bppSrgbBlockIMG, "VK_FORMAT_PVRTC1_4BPP_SRGB_BLOCK_IMG").
	Extend(FormatPvrtc22bppSrgbBlockIMG, "VK_FORMAT_PVRTC2_2BPP_SRGB_BLOCK_IMG").
	Extend(FormatPvrtc24bppSrgbBlockIMG, "VK_FORMAT_PVRTC2_4BPP_SRGB_BLOCK_IMG")

func (v Format) IsValid() bool { return formatDecl.IsValid(v) }
func (v Format) String() string { return formatDecl.Format(v) }
func (Format) EnumType() string { return formatDecl.TypeName() }
func (v *Format) UnmarshalText(b []byte) error { return formatDecl.Unmarshal(v, b) }

// HasDepth reports whether v has a depth component.
func (v Format) HasDepth() bool {
	switch v {
	case FormatD16Unorm, FormatX8D24UnormPack32, FormatD32Sfloat,
		FormatD16UnormS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// HasStencil reports whether v has a stencil component.
func (v Format) HasStencil() bool {
	switch v {
	case FormatS8Uint, FormatD16UnormS8Uint, FormatD24UnormS8Uint, FormatD32SfloatS8Uint:
		return true
	}
	return false
}

// IsDepthOrStencil reports whether v is a depth and/or stencil format.
func (v Format) IsDepthOrStencil() bool { return v.HasDepth() || v.HasStencil() }

// IsCompressed reports whether v is a block-compressed format.
func (v Format) IsCompressed() bool {
	return (v >= FormatBc1RgbUnormBlock && v <= FormatAstc12x12SrgbBlock) ||
		(v >= FormatPvrtc12bppUnormBlockIMG && v <= FormatPvrtc24bppSrgbBlockIMG)
}
