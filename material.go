// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"
	"image"
	"math"
)

// LinearRGBA is a color in linear space with straight (non-premultiplied)
// alpha.
type LinearRGBA struct {
	R, G, B, A float32
}

// LinearWhite is opaque white.
var LinearWhite = LinearRGBA{R: 1, G: 1, B: 1, A: 1}

// WithAlpha returns c with its alpha replaced.
func (c LinearRGBA) WithAlpha(a float32) LinearRGBA {
	c.A = a
	return c
}

// Uniform returns c as the vec4 a shader expects.
func (c LinearRGBA) Uniform() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

// PlotUIMaterial draws a BGRX plot texture on a UI node.
//
// The chart drawing code overwrites the fourth byte of every pixel, which
// the GPU would read as alpha. The material ignores that byte and takes the
// alpha of the whole plot from Color instead, so the alpha never has to be
// reset after drawing.
type PlotUIMaterial struct {
	// Color's RGB is multiplied with the texture's RGB. Color's alpha is
	// used for the whole texture. Bound as a uniform at binding 0.
	Color LinearRGBA
	// Texture is the plot image. Bound as texture 1 with sampler 2.
	Texture Handle[Image]
}

// NewPlotUIMaterial returns a material showing texture with a white, opaque
// tint.
func NewPlotUIMaterial(texture Handle[Image]) PlotUIMaterial {
	return PlotUIMaterial{
		Color:   LinearWhite,
		Texture: texture,
	}
}

// FragmentShader returns the WGSL shader a WebGPU host binds for this
// material.
func (PlotUIMaterial) FragmentShader() ShaderRef {
	return PlotShaderPath
}

// KageShader returns the shader the Ebitengine renderer uses.
func (PlotUIMaterial) KageShader() ShaderRef {
	return PlotKagePath
}

// BindingKind is the type of resource bound at a shader binding.
type BindingKind uint8

const (
	BindingUnknown BindingKind = iota
	BindingUniform
	BindingStorage
	BindingTexture
	BindingSampler
)

func (k BindingKind) String() string {
	switch k {
	case BindingUniform:
		return "uniform"
	case BindingStorage:
		return "storage"
	case BindingTexture:
		return "texture"
	case BindingSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// ShaderBinding is one @group/@binding resource.
type ShaderBinding struct {
	Group   uint32
	Binding uint32
	Kind    BindingKind
	Name    string
}

func (b ShaderBinding) String() string {
	return fmt.Sprintf("@group(%d) @binding(%d) %s %s", b.Group, b.Binding, b.Kind, b.Name)
}

// MaterialBindGroup is the bind group UI materials occupy.
const MaterialBindGroup = 1

// MaterialBindings returns the layout PlotUIMaterial binds: the color
// uniform, the plot texture and its sampler.
func MaterialBindings() []ShaderBinding {
	return []ShaderBinding{
		{Group: MaterialBindGroup, Binding: 0, Kind: BindingUniform, Name: "color"},
		{Group: MaterialBindGroup, Binding: 1, Kind: BindingTexture, Name: "texture"},
		{Group: MaterialBindGroup, Binding: 2, Kind: BindingSampler, Name: "sampler"},
	}
}

func scaleChannel(v uint8, f float32) uint8 {
	return uint8(math.Round(float64(min(max(float32(v)*f, 0), 255))))
}

// ShadeImage does on the CPU what the material's shaders do on the GPU:
// it reads img as BGRX, multiplies RGB by tint and uses tint's alpha for
// every pixel. It is meant for snapshots and tests.
func ShadeImage(img *Image, tint LinearRGBA) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if !img.Format.IsBGRA8() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, img.Format)
	}
	w, h := int(img.Width), int(img.Height)
	need := w * h * 4
	if len(img.Data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, %dx%d needs %d", ErrBufferTooSmall, len(img.Data), w, h, need)
	}
	alpha := scaleChannel(255, min(max(tint.A, 0), 1))
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < need; i += 4 {
		src := img.Data[i : i+4 : i+4]
		dst := out.Pix[i : i+4 : i+4]
		dst[0] = scaleChannel(src[2], tint.R)
		dst[1] = scaleChannel(src[1], tint.G)
		dst[2] = scaleChannel(src[0], tint.B)
		dst[3] = alpha
	}
	return out, nil
}
