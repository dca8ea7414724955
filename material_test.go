// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlotUIMaterial(t *testing.T) {
	images := NewAssets[Image]()
	h := images.Add(Image{})

	m := NewPlotUIMaterial(h)
	assert.Equal(t, PlotUIMaterial{Color: LinearRGBA{R: 1, G: 1, B: 1, A: 1}, Texture: h}, m)
	assert.Equal(t, PlotShaderPath, m.FragmentShader())
	assert.Equal(t, PlotKagePath, m.KageShader())

	var zero Handle[Image]
	assert.Equal(t, PlotUIMaterial{Color: LinearWhite}, NewPlotUIMaterial(zero))
}

func TestLinearRGBA(t *testing.T) {
	c := LinearWhite.WithAlpha(0.25)
	assert.Equal(t, []float32{1, 1, 1, 0.25}, c.Uniform())
	assert.Equal(t, float32(1), LinearWhite.A)
}

func TestMaterialBindings(t *testing.T) {
	b := MaterialBindings()
	require.Len(t, b, 3)
	for i, kind := range []BindingKind{BindingUniform, BindingTexture, BindingSampler} {
		assert.Equal(t, uint32(MaterialBindGroup), b[i].Group)
		assert.Equal(t, uint32(i), b[i].Binding)
		assert.Equal(t, kind, b[i].Kind)
	}
}

func TestShadeImage(t *testing.T) {
	// Two pixels with the same BGR and different padding bytes.
	img := NewImage(2, 1, []byte{10, 20, 30, 0, 10, 20, 30, 0xff}, FormatBGRA8Unorm, bothWorlds)

	out, err := ShadeImage(img, LinearRGBA{R: 0.5, G: 1, B: 1, A: 0.5})
	require.NoError(t, err)

	want := color.NRGBA{R: 15, G: 20, B: 10, A: 128}
	assert.Equal(t, want, out.NRGBAAt(0, 0))
	assert.Equal(t, want, out.NRGBAAt(1, 0))
}

func TestShadeImageAfterChartDraw(t *testing.T) {
	img := NewImage(4, 4, make([]byte, 64), FormatBGRA8UnormSrgb, bothWorlds)
	b, ok := TryAsBackend(img)
	require.True(t, ok)
	b.IntoDrawingArea().Fill(White)

	out, err := ShadeImage(img, LinearWhite)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, out.NRGBAAt(x, y))
		}
	}
}

func TestShadeImageErrors(t *testing.T) {
	_, err := ShadeImage(nil, LinearWhite)
	assert.ErrorIs(t, err, ErrNilImage)

	_, err = ShadeImage(NewImage(1, 1, make([]byte, 4), FormatRGBA8Unorm, bothWorlds), LinearWhite)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ShadeImage(NewImage(2, 2, make([]byte, 4), FormatBGRA8Unorm, bothWorlds), LinearWhite)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
}
