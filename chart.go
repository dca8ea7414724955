// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
)

// Common colors.
var (
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	Red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green = color.RGBA{0x00, 0xff, 0x00, 0xff}
	Blue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

// Point is a position, either in data or pixel coordinates.
type Point struct {
	X, Y float64
}

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Ticks returns evenly spaced "nice" values (1, 2 or 5 times a power of
// ten apart) inside r, at most n of them. It returns nil when r is too
// narrow for its magnitude to hold distinct ticks.
func Ticks(r Range, n int) []float64 {
	span := r.Span()
	if n <= 0 || !(span > 0) || math.IsInf(span, 0) {
		return nil
	}
	raw := span / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for {
		for _, m := range [...]float64{1, 2, 5} {
			step := m * mag
			if step < raw*(1-1e-9) {
				continue
			}
			if math.IsInf(step, 0) {
				return nil
			}
			lo := math.Ceil(r.Min/step - 1e-9)
			hi := math.Floor(r.Max/step + 1e-9)
			// Past 2^53 consecutive multiples of step are no longer distinct.
			if lo+1 == lo || hi-1 == hi {
				return nil
			}
			count := int(hi-lo) + 1
			if count > n {
				continue
			}
			ticks := make([]float64, 0, max(count, 0))
			for i := 0; i < count; i++ {
				ticks = append(ticks, roundTick((lo+float64(i))*step))
			}
			return ticks
		}
		mag *= 10
	}
}

// roundTick drops floating point noise such as 0.30000000000000004.
func roundTick(v float64) float64 {
	v, _ = strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if v == 0 {
		return 0 // no negative zero
	}
	return v
}

func defaultLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ChartBuilder lays out a cartesian chart on a drawing area.
type ChartBuilder struct {
	area        *DrawingArea
	caption     string
	captionFont FontDesc
	margin      int
	xLabelArea  int
	yLabelArea  int
}

// NewChartBuilder starts a chart on area.
func NewChartBuilder(area *DrawingArea) *ChartBuilder {
	return &ChartBuilder{area: area}
}

// Caption sets the title drawn centered above the chart.
func (b *ChartBuilder) Caption(text string, f FontDesc) *ChartBuilder {
	b.caption = text
	b.captionFont = f
	return b
}

// Margin sets the blank space around the chart on every side.
func (b *ChartBuilder) Margin(px int) *ChartBuilder {
	b.margin = px
	return b
}

// XLabelAreaSize reserves px pixels below the plot for x-axis labels.
func (b *ChartBuilder) XLabelAreaSize(px int) *ChartBuilder {
	b.xLabelArea = px
	return b
}

// YLabelAreaSize reserves px pixels left of the plot for y-axis labels.
func (b *ChartBuilder) YLabelAreaSize(px int) *ChartBuilder {
	b.yLabelArea = px
	return b
}

// BuildCartesian2D draws the caption and returns a chart mapping x and y
// onto the remaining plotting area.
func (b *ChartBuilder) BuildCartesian2D(x, y Range) (*ChartContext, error) {
	if !(x.Span() > 0) {
		return nil, fmt.Errorf("%w: x [%g, %g]", ErrEmptyRange, x.Min, x.Max)
	}
	if !(y.Span() > 0) {
		return nil, fmt.Errorf("%w: y [%g, %g]", ErrEmptyRange, y.Min, y.Max)
	}

	area := b.area.Margin(b.margin, b.margin, b.margin, b.margin)
	if b.caption != "" {
		_, h, err := MeasureText(b.caption, b.captionFont)
		if err != nil {
			return nil, err
		}
		w, _ := area.Dim()
		err = area.DrawText(b.caption, w/2, 0, TextStyle{
			Font:   b.captionFont,
			Color:  Black,
			HAlign: AlignCenter,
		})
		if err != nil {
			return nil, err
		}
		area = area.Margin(h+h/4, 0, 0, 0)
	}

	plot := area.Margin(0, b.xLabelArea, b.yLabelArea, 0)
	if w, h := plot.Dim(); w < 2 || h < 2 {
		return nil, fmt.Errorf("%w: %dx%d left for plotting", ErrAreaTooSmall, w, h)
	}
	pr := plot.Bounds()
	ar := area.Bounds()
	return &ChartContext{
		plot:    plot,
		xLabels: &DrawingArea{dst: area.dst, rect: image.Rect(pr.Min.X, pr.Max.Y, pr.Max.X, ar.Max.Y)},
		yLabels: &DrawingArea{dst: area.dst, rect: image.Rect(ar.Min.X, pr.Min.Y, pr.Min.X, pr.Max.Y)},
		x:       x,
		y:       y,
	}, nil
}

// ChartContext maps data coordinates onto a plotting area.
type ChartContext struct {
	plot    *DrawingArea
	xLabels *DrawingArea
	yLabels *DrawingArea
	x, y    Range
}

// PlottingArea returns the area inside the axes.
func (c *ChartContext) PlottingArea() *DrawingArea { return c.plot }

// Map converts a data point to pixel coordinates relative to the plotting
// area. The y axis grows upwards.
func (c *ChartContext) Map(p Point) Point {
	w, h := c.plot.Dim()
	fw, fh := float64(w-1), float64(h-1)
	return Point{
		X: (p.X - c.x.Min) / c.x.Span() * fw,
		Y: fh - (p.Y-c.y.Min)/c.y.Span()*fh,
	}
}

// DrawLineSeries connects points with a line.
func (c *ChartContext) DrawLineSeries(points []Point, style ShapeStyle) {
	px := make([]Point, len(points))
	for i, p := range points {
		px[i] = c.Map(p)
	}
	c.plot.DrawPolyline(px, style)
}

// DrawPointSeries draws a circle of radius size at every point. When label
// is non-nil its result is written next to each point.
func (c *ChartContext) DrawPointSeries(points []Point, size float64, style ShapeStyle, label func(Point) string) error {
	for _, p := range points {
		m := c.Map(p)
		c.plot.DrawCircle(m.X, m.Y, size, style)
		if label == nil {
			continue
		}
		err := c.plot.DrawText(label(p), int(m.X)+10, int(m.Y), TextStyle{
			Font:   Font("sans-serif", 16),
			Color:  Black,
			VAlign: AlignMiddle,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ConfigureMesh starts configuring the grid and axis labels.
func (c *ChartContext) ConfigureMesh() *MeshStyle {
	return &MeshStyle{
		chart:      c,
		xLabels:    10,
		yLabels:    10,
		xLabelFont: Font("sans-serif", 12),
		yLabelFont: Font("sans-serif", 12),
		xFormatter: defaultLabel,
		yFormatter: defaultLabel,
		gridColor:  color.RGBA{0xd8, 0xd8, 0xd8, 0xff},
		lightColor: color.RGBA{0xf0, 0xf0, 0xf0, 0xff},
		axisColor:  Black,
		labelColor: Black,
	}
}

// MeshStyle configures the grid and labels drawn by Draw.
type MeshStyle struct {
	chart                  *ChartContext
	xLabels, yLabels       int
	xLabelFont, yLabelFont FontDesc
	xFormatter, yFormatter func(float64) string
	gridColor, lightColor  color.Color
	axisColor, labelColor  color.Color
}

// XLabels sets the maximum number of x-axis labels.
func (m *MeshStyle) XLabels(n int) *MeshStyle { m.xLabels = n; return m }

// YLabels sets the maximum number of y-axis labels.
func (m *MeshStyle) YLabels(n int) *MeshStyle { m.yLabels = n; return m }

// XLabelStyle sets the font of x-axis labels.
func (m *MeshStyle) XLabelStyle(f FontDesc) *MeshStyle { m.xLabelFont = f; return m }

// YLabelStyle sets the font of y-axis labels.
func (m *MeshStyle) YLabelStyle(f FontDesc) *MeshStyle { m.yLabelFont = f; return m }

// XLabelFormatter sets how x-axis values are printed.
func (m *MeshStyle) XLabelFormatter(fn func(float64) string) *MeshStyle {
	m.xFormatter = fn
	return m
}

// YLabelFormatter sets how y-axis values are printed.
func (m *MeshStyle) YLabelFormatter(fn func(float64) string) *MeshStyle {
	m.yFormatter = fn
	return m
}

// Draw paints the grid, the axes and the labels.
func (m *MeshStyle) Draw() error {
	c := m.chart
	w, h := c.plot.Dim()
	fw, fh := float64(w-1), float64(h-1)
	xs := Ticks(c.x, m.xLabels)
	ys := Ticks(c.y, m.yLabels)

	light := NewShapeStyle(m.lightColor)
	grid := NewShapeStyle(m.gridColor)
	for i, v := range xs {
		px := c.Map(Point{X: v}).X
		if i > 0 {
			mid := (c.Map(Point{X: xs[i-1]}).X + px) / 2
			c.plot.DrawLine(mid, 0, mid, fh, light)
		}
		c.plot.DrawLine(px, 0, px, fh, grid)
	}
	for i, v := range ys {
		py := c.Map(Point{Y: v}).Y
		if i > 0 {
			mid := (c.Map(Point{Y: ys[i-1]}).Y + py) / 2
			c.plot.DrawLine(0, mid, fw, mid, light)
		}
		c.plot.DrawLine(0, py, fw, py, grid)
	}

	axis := NewShapeStyle(m.axisColor)
	c.plot.DrawLine(0.5, 0, 0.5, fh+0.5, axis)
	c.plot.DrawLine(0, fh+0.5, fw+0.5, fh+0.5, axis)

	for _, v := range xs {
		px := int(math.Round(c.Map(Point{X: v}).X))
		c.xLabels.DrawLine(float64(px)+0.5, 0, float64(px)+0.5, 4, axis)
		err := c.xLabels.DrawText(m.xFormatter(v), px, 6, TextStyle{
			Font:   m.xLabelFont,
			Color:  m.labelColor,
			HAlign: AlignCenter,
		})
		if err != nil {
			return err
		}
	}
	lw, _ := c.yLabels.Dim()
	for _, v := range ys {
		py := int(math.Round(c.Map(Point{Y: v}).Y))
		c.yLabels.DrawLine(float64(lw-4), float64(py)+0.5, float64(lw), float64(py)+0.5, axis)
		err := c.yLabels.DrawText(m.yFormatter(v), lw-6, py, TextStyle{
			Font:   m.yLabelFont,
			Color:  m.labelColor,
			HAlign: AlignRight,
			VAlign: AlignMiddle,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
