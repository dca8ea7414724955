// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"
	"strings"
)

// TextureFormat is the declared pixel layout of an Image.
type TextureFormat uint8

const (
	FormatRGBA8Unorm TextureFormat = iota
	FormatRGBA8UnormSrgb
	FormatBGRA8Unorm
	FormatBGRA8UnormSrgb
	FormatR8Unorm
	FormatRGBA16Float
)

// BytesPerPixel returns the size of one pixel in bytes, or 0 for an
// unknown format.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case FormatRGBA8Unorm, FormatRGBA8UnormSrgb, FormatBGRA8Unorm, FormatBGRA8UnormSrgb:
		return 4
	case FormatR8Unorm:
		return 1
	case FormatRGBA16Float:
		return 8
	default:
		return 0
	}
}

// IsBGRA8 reports whether f is one of the 4-byte blue, green, red, padding
// layouts that a BitMapBackend can draw into.
func (f TextureFormat) IsBGRA8() bool {
	return f == FormatBGRA8Unorm || f == FormatBGRA8UnormSrgb
}

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8Unorm:
		return "Rgba8Unorm"
	case FormatRGBA8UnormSrgb:
		return "Rgba8UnormSrgb"
	case FormatBGRA8Unorm:
		return "Bgra8Unorm"
	case FormatBGRA8UnormSrgb:
		return "Bgra8UnormSrgb"
	case FormatR8Unorm:
		return "R8Unorm"
	case FormatRGBA16Float:
		return "Rgba16Float"
	default:
		return fmt.Sprintf("TextureFormat(%d)", uint8(f))
	}
}

// AssetUsage declares which side of the host may access an image.
type AssetUsage uint8

const (
	// UsageMainWorld keeps the pixel data readable on the CPU side.
	UsageMainWorld AssetUsage = 1 << iota
	// UsageRenderWorld allows the image to be uploaded to the GPU.
	UsageRenderWorld
)

// Contains reports whether every bit of other is set in u.
func (u AssetUsage) Contains(other AssetUsage) bool {
	return u&other == other
}

func (u AssetUsage) String() string {
	if u == 0 {
		return "NONE"
	}
	var parts []string
	if u&UsageMainWorld != 0 {
		parts = append(parts, "MAIN_WORLD")
	}
	if u&UsageRenderWorld != 0 {
		parts = append(parts, "RENDER_WORLD")
	}
	if rest := u &^ (UsageMainWorld | UsageRenderWorld); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}
