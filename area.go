// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// ShapeStyle is the paint used for lines and shapes.
type ShapeStyle struct {
	Color       color.Color
	Filled      bool
	StrokeWidth float64
}

// NewShapeStyle returns a 1px stroke of c.
func NewShapeStyle(c color.Color) ShapeStyle {
	return ShapeStyle{Color: c, StrokeWidth: 1}
}

// Fill returns a filled copy of s.
func (s ShapeStyle) Fill() ShapeStyle {
	s.Filled = true
	return s
}

// Width returns a copy of s with the given stroke width.
func (s ShapeStyle) Width(w float64) ShapeStyle {
	s.StrokeWidth = w
	return s
}

func (s ShapeStyle) strokeWidth() float64 {
	if s.StrokeWidth <= 0 {
		return 1
	}
	return s.StrokeWidth
}

func (s ShapeStyle) color() color.Color {
	if s.Color == nil {
		return color.Black
	}
	return s.Color
}

type rectFiller interface {
	FillRect(r image.Rectangle, c color.Color)
}

type presenter interface {
	Present() error
}

// clipImage narrows the bounds of a draw.Image so that image/draw and
// font.Drawer clip to a drawing area.
type clipImage struct {
	draw.Image
	r image.Rectangle
}

func (c clipImage) Bounds() image.Rectangle { return c.r }

// DrawingArea is a rectangular region of a drawing surface.
// Coordinates passed to its methods are relative to the area's top-left
// corner, and everything drawn is clipped to the area.
type DrawingArea struct {
	dst  draw.Image
	rect image.Rectangle
	z    *vector.Rasterizer
}

// IntoDrawingArea returns an area covering all of dst.
func IntoDrawingArea(dst draw.Image) *DrawingArea {
	return &DrawingArea{dst: dst, rect: dst.Bounds()}
}

// Bounds returns the area in the surface's coordinate space.
func (a *DrawingArea) Bounds() image.Rectangle { return a.rect }

// Dim returns the width and height of the area.
func (a *DrawingArea) Dim() (w, h int) { return a.rect.Dx(), a.rect.Dy() }

// Fill paints the whole area with c.
func (a *DrawingArea) Fill(c color.Color) {
	if f, ok := a.dst.(rectFiller); ok {
		f.FillRect(a.rect, c)
		return
	}
	draw.Draw(a.dst, a.rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Margin returns the area shrunk by the given number of pixels on each
// side. Margins larger than the area give an empty area.
func (a *DrawingArea) Margin(top, bottom, left, right int) *DrawingArea {
	r := image.Rectangle{
		Min: image.Pt(a.rect.Min.X+left, a.rect.Min.Y+top),
		Max: image.Pt(a.rect.Max.X-right, a.rect.Max.Y-bottom),
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return &DrawingArea{dst: a.dst, rect: r}
}

// Sub returns the part of the area covered by r, given in area-relative
// coordinates.
func (a *DrawingArea) Sub(r image.Rectangle) *DrawingArea {
	r = r.Add(a.rect.Min).Intersect(a.rect)
	return &DrawingArea{dst: a.dst, rect: r}
}

// SplitVertically splits the area at y into a top and bottom part.
func (a *DrawingArea) SplitVertically(y int) (top, bottom *DrawingArea) {
	w, h := a.Dim()
	y = min(max(y, 0), h)
	return a.Sub(image.Rect(0, 0, w, y)), a.Sub(image.Rect(0, y, w, h))
}

// SplitHorizontally splits the area at x into a left and right part.
func (a *DrawingArea) SplitHorizontally(x int) (left, right *DrawingArea) {
	w, h := a.Dim()
	x = min(max(x, 0), w)
	return a.Sub(image.Rect(0, 0, x, h)), a.Sub(image.Rect(x, 0, w, h))
}

// Present flushes the underlying surface if it needs it.
func (a *DrawingArea) Present() error {
	if p, ok := a.dst.(presenter); ok {
		return p.Present()
	}
	return nil
}

func (a *DrawingArea) rasterizer() *vector.Rasterizer {
	w, h := a.Dim()
	if a.z == nil {
		a.z = vector.NewRasterizer(w, h)
	} else {
		a.z.Reset(w, h)
	}
	a.z.DrawOp = draw.Over
	return a.z
}

// paint rasterizes the path built by fn and composites c through it.
func (a *DrawingArea) paint(c color.Color, fn func(z *vector.Rasterizer)) {
	if a.rect.Empty() {
		return
	}
	z := a.rasterizer()
	fn(z)
	z.Draw(a.dst, a.rect, image.NewUniform(c), image.Point{})
}

// segment adds the quad covering a w-wide line from (x0, y0) to (x1, y1).
// Every quad winds the same way so overlapping segments do not cancel.
func segment(z *vector.Rasterizer, x0, y0, x1, y1, w float64) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
}

// DrawLine strokes a straight line.
func (a *DrawingArea) DrawLine(x0, y0, x1, y1 float64, style ShapeStyle) {
	a.paint(style.color(), func(z *vector.Rasterizer) {
		segment(z, x0, y0, x1, y1, style.strokeWidth())
	})
}

// DrawPolyline strokes the connected segments through pts.
func (a *DrawingArea) DrawPolyline(pts []Point, style ShapeStyle) {
	if len(pts) < 2 {
		return
	}
	w := style.strokeWidth()
	a.paint(style.color(), func(z *vector.Rasterizer) {
		for i := 1; i < len(pts); i++ {
			segment(z, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, w)
		}
	})
}

// DrawRect draws the rectangle with corners (x0, y0) and (x1, y1).
func (a *DrawingArea) DrawRect(x0, y0, x1, y1 float64, style ShapeStyle) {
	if style.Filled {
		a.paint(style.color(), func(z *vector.Rasterizer) {
			z.MoveTo(float32(x0), float32(y0))
			z.LineTo(float32(x1), float32(y0))
			z.LineTo(float32(x1), float32(y1))
			z.LineTo(float32(x0), float32(y1))
			z.ClosePath()
		})
		return
	}
	a.DrawPolyline([]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}, style)
}

func circleSegments(r float64) int {
	return max(16, int(r*2))
}

func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	n := circleSegments(r)
	for i := 0; i <= n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			t = -t
		}
		x, y := float32(cx+r*math.Cos(t)), float32(cy+r*math.Sin(t))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

// DrawCircle draws a circle of radius r centered at (cx, cy).
func (a *DrawingArea) DrawCircle(cx, cy, r float64, style ShapeStyle) {
	if r <= 0 {
		return
	}
	a.paint(style.color(), func(z *vector.Rasterizer) {
		if style.Filled {
			circlePath(z, cx, cy, r, false)
			return
		}
		w := style.strokeWidth()
		circlePath(z, cx, cy, r+w/2, false)
		if inner := r - w/2; inner > 0 {
			circlePath(z, cx, cy, inner, true)
		}
	})
}

// TextSize returns the size in pixels s would take when drawn with style.
func (a *DrawingArea) TextSize(s string, style TextStyle) (w, h int, err error) {
	return MeasureText(s, style.Font)
}

// DrawText draws s anchored at (x, y) according to style's alignment.
func (a *DrawingArea) DrawText(s string, x, y int, style TextStyle) error {
	if s == "" || a.rect.Empty() {
		return nil
	}
	c := style.Color
	if c == nil {
		c = color.Black
	}
	return withFace(style.Font, func(face font.Face) {
		m := face.Metrics()
		w := font.MeasureString(face, s).Ceil()
		h := (m.Ascent + m.Descent).Ceil()

		switch style.HAlign {
		case AlignCenter:
			x -= w / 2
		case AlignRight:
			x -= w
		}
		switch style.VAlign {
		case AlignMiddle:
			y -= h / 2
		case AlignBottom:
			y -= h
		}

		d := font.Drawer{
			Dst:  clipImage{Image: a.dst, r: a.rect},
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(a.rect.Min.X+x, a.rect.Min.Y+y+m.Ascent.Ceil()),
		}
		d.DrawString(s)
	})
}
