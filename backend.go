// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"
	"image"
	"image/color"
)

// BGRX is a pixel stored as blue, green, red and one padding byte.
// The padding byte is not alpha: colors read back are always opaque.
type BGRX struct {
	B, G, R, X uint8
}

// RGBA implements color.Color.
func (c BGRX) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// BGRXModel converts colors to BGRX. Translucent colors are stored as if
// composited over black.
var BGRXModel color.Model = color.ModelFunc(bgrxModel)

func bgrxModel(c color.Color) color.Color {
	if _, ok := c.(BGRX); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return BGRX{B: uint8(b >> 8), G: uint8(g >> 8), R: uint8(r >> 8)}
}

// BitMapBackend is a draw.Image over a caller-owned BGRX byte buffer.
// It never copies or reallocates the buffer: every write lands in the slice
// that was passed to NewBitMapBackend.
type BitMapBackend struct {
	pix    []byte
	stride int
	rect   image.Rectangle
}

// NewBitMapBackend wraps buf as a width x height BGRX surface.
// buf must hold at least width*height*4 bytes.
func NewBitMapBackend(buf []byte, width, height uint32) (*BitMapBackend, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	need := int(width) * int(height) * 4
	if len(buf) < need {
		return nil, fmt.Errorf("%w: have %d bytes, %dx%d needs %d", ErrBufferTooSmall, len(buf), width, height, need)
	}
	return &BitMapBackend{
		pix:    buf[:need],
		stride: int(width) * 4,
		rect:   image.Rect(0, 0, int(width), int(height)),
	}, nil
}

// TryAsBackend converts an image into a drawing backend if possible.
// It returns false when the format is not one of the BGRA8 variants or the
// buffer is too small for the declared size.
func TryAsBackend(img *Image) (*BitMapBackend, bool) {
	b, err := AsBackend(img)
	if err != nil {
		return nil, false
	}
	return b, true
}

// AsBackend is like TryAsBackend but reports why no backend was built.
//
// Images that are not flagged for both the main world and the render world
// are still accepted; a warning is logged because edits may never reach the
// GPU copy.
func AsBackend(img *Image) (*BitMapBackend, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if !img.Usage.Contains(UsageMainWorld | UsageRenderWorld) {
		Logger().Warn("plotui: expected image asset usage to include main world and render world",
			"usage", img.Usage.String(),
			"width", img.Width,
			"height", img.Height)
	}
	if !img.Format.IsBGRA8() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, img.Format)
	}
	return NewBitMapBackend(img.Data, img.Width, img.Height)
}

// ColorModel implements image.Image.
func (b *BitMapBackend) ColorModel() color.Model { return BGRXModel }

// Bounds implements image.Image.
func (b *BitMapBackend) Bounds() image.Rectangle { return b.rect }

// PixOffset returns the index of the first byte of pixel (x, y).
func (b *BitMapBackend) PixOffset(x, y int) int {
	return y*b.stride + x*4
}

// At implements image.Image.
func (b *BitMapBackend) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.rect)) {
		return BGRX{}
	}
	i := b.PixOffset(x, y)
	s := b.pix[i : i+4 : i+4]
	return BGRX{B: s[0], G: s[1], R: s[2], X: s[3]}
}

// Set implements draw.Image. The padding byte is overwritten with zero.
func (b *BitMapBackend) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(b.rect)) {
		return
	}
	p := BGRXModel.Convert(c).(BGRX)
	i := b.PixOffset(x, y)
	s := b.pix[i : i+4 : i+4]
	s[0] = p.B
	s[1] = p.G
	s[2] = p.R
	s[3] = 0
}

// FillRect paints r (clipped to the surface) with c.
func (b *BitMapBackend) FillRect(r image.Rectangle, c color.Color) {
	r = r.Intersect(b.rect)
	if r.Empty() {
		return
	}
	p := BGRXModel.Convert(c).(BGRX)
	first := b.pix[b.PixOffset(r.Min.X, r.Min.Y):b.PixOffset(r.Max.X, r.Min.Y)]
	for i := 0; i < len(first); i += 4 {
		first[i+0] = p.B
		first[i+1] = p.G
		first[i+2] = p.R
		first[i+3] = 0
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		copy(b.pix[b.PixOffset(r.Min.X, y):], first)
	}
}

// Pixels returns the underlying buffer (the same slice the backend was
// created over, trimmed to width*height*4).
func (b *BitMapBackend) Pixels() []byte {
	return b.pix
}

// Present finishes a frame. Drawing writes straight into the buffer, so
// there is nothing to flush; it exists so chart code can treat every
// backend alike.
func (b *BitMapBackend) Present() error {
	return nil
}

// IntoDrawingArea returns a drawing area covering the whole surface.
func (b *BitMapBackend) IntoDrawingArea() *DrawingArea {
	return IntoDrawingArea(b)
}
