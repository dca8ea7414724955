// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		n    int
		want []float64
	}{
		{"symmetric", Range{-2, 2}, 5, []float64{-2, -1, 0, 1, 2}},
		{"coarsens to fit", Range{0, 10}, 5, []float64{0, 5, 10}},
		{"fractional", Range{0, 1}, 10, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{"unaligned bounds", Range{0.3, 0.4}, 5, []float64{0.3, 0.35, 0.4}},
		{"empty range", Range{1, 1}, 5, nil},
		{"reversed range", Range{2, 1}, 5, nil},
		{"no labels", Range{0, 1}, 0, nil},
		{"offset beyond float precision", Range{1e18, 1e18 + 128}, 10, nil},
		{"step overflows", Range{0, 1.7e308}, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ticks(tt.r, tt.n))
		})
	}
}

func TestTicksStayInRange(t *testing.T) {
	for _, r := range []Range{{-2, 2}, {0, 10}, {-137.5, 4200}, {1e-6, 3e-6}, {-1, -0.25}} {
		for n := 1; n <= 12; n++ {
			ticks := Ticks(r, n)
			assert.LessOrEqual(t, len(ticks), n, "range %v n %d", r, n)
			for _, v := range ticks {
				assert.GreaterOrEqual(t, v, r.Min-1e-9*r.Span())
				assert.LessOrEqual(t, v, r.Max+1e-9*r.Span())
			}
		}
	}
}

func TestBuildCartesian2DErrors(t *testing.T) {
	root := newWhiteBackend(t, 100, 100).IntoDrawingArea()

	_, err := NewChartBuilder(root).BuildCartesian2D(Range{1, 1}, Range{0, 1})
	assert.ErrorIs(t, err, ErrEmptyRange)
	_, err = NewChartBuilder(root).BuildCartesian2D(Range{0, 1}, Range{3, -3})
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = NewChartBuilder(root.Margin(0, 80, 0, 80)).
		XLabelAreaSize(20).
		YLabelAreaSize(20).
		BuildCartesian2D(Range{0, 1}, Range{0, 1})
	assert.ErrorIs(t, err, ErrAreaTooSmall)
}

func TestChartMap(t *testing.T) {
	root := newWhiteBackend(t, 200, 100).IntoDrawingArea()
	chart, err := NewChartBuilder(root).
		XLabelAreaSize(20).
		YLabelAreaSize(40).
		BuildCartesian2D(Range{0, 10}, Range{-1, 1})
	require.NoError(t, err)

	w, h := chart.PlottingArea().Dim()
	assert.Equal(t, 160, w)
	assert.Equal(t, 80, h)

	assert.Equal(t, Point{0, float64(h - 1)}, chart.Map(Point{0, -1}))
	assert.Equal(t, Point{float64(w - 1), 0}, chart.Map(Point{10, 1}))
	mid := chart.Map(Point{5, 0})
	assert.InDelta(t, float64(w-1)/2, mid.X, 1e-9)
	assert.InDelta(t, float64(h-1)/2, mid.Y, 1e-9)
}

func countReddish(b *BitMapBackend) int {
	n := 0
	pix := b.Pixels()
	for i := 0; i < len(pix); i += 4 {
		if pix[i+2] > 200 && pix[i+1] < 80 && pix[i] < 80 {
			n++
		}
	}
	return n
}

func TestSineChart(t *testing.T) {
	const size = 500
	img := NewImage(size, size, make([]byte, size*size*4), FormatBGRA8UnormSrgb, bothWorlds)
	b, ok := TryAsBackend(img)
	require.True(t, ok)

	root := b.IntoDrawingArea()
	root.Fill(White)
	chart, err := NewChartBuilder(root.Margin(30, 40, 30, 40)).
		Caption("Hello, Sine!", Font("sans-serif", 40)).
		XLabelAreaSize(20).
		YLabelAreaSize(40).
		BuildCartesian2D(Range{-2, 2}, Range{-2, 2})
	require.NoError(t, err)

	err = chart.ConfigureMesh().
		XLabels(5).
		YLabels(5).
		XLabelStyle(Font("sans-serif", 16)).
		YLabelStyle(Font("sans-serif", 16)).
		YLabelFormatter(func(v float64) string { return fmt.Sprintf("%.2f", v) }).
		Draw()
	require.NoError(t, err)
	assert.Zero(t, countReddish(b), "mesh has no red")

	var points []Point
	for i := -50; i <= 50; i++ {
		x := float64(i) / 25
		points = append(points, Point{x, math.Sin(x * 3)})
	}
	chart.DrawLineSeries(points, NewShapeStyle(Red).Width(2))
	require.NoError(t, root.Present())

	assert.Greater(t, countReddish(b), 100)

	// The outer margin stays white.
	for x := 0; x < size; x++ {
		r, g, bl := rgbAt(b, x, 5)
		require.Equal(t, [3]uint8{0xff, 0xff, 0xff}, [3]uint8{r, g, bl}, "x=%d", x)
	}
}

func TestPointSeries(t *testing.T) {
	root := newWhiteBackend(t, 300, 300).IntoDrawingArea()
	chart, err := NewChartBuilder(root).
		Margin(10).
		XLabelAreaSize(20).
		YLabelAreaSize(40).
		BuildCartesian2D(Range{0, 10}, Range{0, 10})
	require.NoError(t, err)

	var labels []string
	points := []Point{{0, 0}, {5, 5}, {8, 7}}
	err = chart.DrawPointSeries(points, 5, NewShapeStyle(Red).Fill(), func(p Point) string {
		s := fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
		labels = append(labels, s)
		return s
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"(0.0, 0.0)", "(5.0, 5.0)", "(8.0, 7.0)"}, labels)

	plot := chart.PlottingArea().Bounds()
	center := chart.Map(Point{5, 5})
	p := root.dst.At(plot.Min.X+int(center.X), plot.Min.Y+int(center.Y)).(BGRX)
	assert.Greater(t, p.R, uint8(200))
	assert.Less(t, p.G, uint8(80))
}
