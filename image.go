// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

// Image is a texture resource: declared size, pixel format, usage flags and
// the raw pixel bytes. Drawing through a BitMapBackend mutates Data in
// place, so the same Image can be redrawn every frame without reallocating.
type Image struct {
	Width  uint32
	Height uint32
	Format TextureFormat
	Usage  AssetUsage
	Data   []byte
}

// NewImage wraps data as an image. data is not copied.
func NewImage(width, height uint32, data []byte, format TextureFormat, usage AssetUsage) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		Usage:  usage,
		Data:   data,
	}
}

// NewImageFill allocates an image of width*height pixels, each set to pixel.
// pixel should be one pixel of format (4 bytes for the BGRA formats).
func NewImageFill(width, height uint32, pixel []byte, format TextureFormat, usage AssetUsage) *Image {
	n := int(width) * int(height)
	data := make([]byte, n*len(pixel))
	if len(pixel) > 0 {
		for i := 0; i < len(data); i += len(pixel) {
			copy(data[i:], pixel)
		}
	}
	return NewImage(width, height, data, format, usage)
}

// ByteLen returns the buffer length the declared size and format require.
func (img *Image) ByteLen() int {
	return int(img.Width) * int(img.Height) * img.Format.BytesPerPixel()
}
