// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// NodeOptions positions a plot on the screen. A zero Width or Height uses
// the texture's own size.
type NodeOptions struct {
	X, Y          float64
	Width, Height float64
}

type plotTexture struct {
	texture *ebiten.Image
	width   int
	height  int
	gen     uint64
}

// Renderer draws PlotUIMaterial nodes with Ebitengine.
// Each image gets one GPU texture that is reused across frames and written
// again only when the image was fetched with GetMut since the last upload.
type Renderer struct {
	plugin   *Plugin
	shader   *ebiten.Shader
	textures map[Handle[Image]]*plotTexture
	closed   bool
}

// NewRenderer compiles the plugin's Kage shader.
func NewRenderer(p *Plugin) (*Renderer, error) {
	src, ok := p.Shaders.Lookup(PlotKagePath)
	if !ok {
		return nil, fmt.Errorf("shader %s not registered", PlotKagePath)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", PlotKagePath, err)
	}
	return &Renderer{
		plugin:   p,
		shader:   shader,
		textures: make(map[Handle[Image]]*plotTexture),
	}, nil
}

type uploadAction uint8

const (
	uploadSkip uploadAction = iota
	uploadKeep
	uploadWrite
	uploadRealloc
)

func (a uploadAction) String() string {
	switch a {
	case uploadSkip:
		return "skip"
	case uploadKeep:
		return "keep"
	case uploadWrite:
		return "write"
	case uploadRealloc:
		return "realloc"
	default:
		return fmt.Sprintf("uploadAction(%d)", uint8(a))
	}
}

// planUpload decides what to do with the texture cached for img (nil when
// none is) given the image's current generation.
func planUpload(img *Image, gen uint64, cached *plotTexture) uploadAction {
	if !img.Format.IsBGRA8() {
		Logger().Warn("plotui: skipping plot with unsupported format", "format", img.Format.String())
		return uploadSkip
	}
	w, h := int(img.Width), int(img.Height)
	if w == 0 || h == 0 || len(img.Data) != w*h*4 {
		Logger().Warn("plotui: skipping plot whose buffer does not match its size",
			"width", w, "height", h, "bytes", len(img.Data))
		return uploadSkip
	}
	// main-world-only images never reach the GPU.
	if !img.Usage.Contains(UsageRenderWorld) {
		return uploadSkip
	}
	switch {
	case cached == nil || cached.width != w || cached.height != h:
		return uploadRealloc
	case cached.gen != gen:
		return uploadWrite
	default:
		return uploadKeep
	}
}

// upload returns the texture for h, writing the image bytes to it when the
// image changed. The bytes go up untouched; the shader swaps the channels.
func (r *Renderer) upload(h Handle[Image]) *plotTexture {
	img, ok := r.plugin.Images.Get(h)
	if !ok {
		return nil
	}
	gen := r.plugin.Images.Generation(h)
	t := r.textures[h]
	switch planUpload(img, gen, t) {
	case uploadSkip:
		return nil
	case uploadKeep:
		return t
	case uploadRealloc:
		if t != nil {
			t.texture.Deallocate()
		}
		w, ht := int(img.Width), int(img.Height)
		t = &plotTexture{texture: ebiten.NewImage(w, ht), width: w, height: ht}
		r.textures[h] = t
	}
	t.texture.WritePixels(img.Data)
	t.gen = gen
	Logger().Debug("plotui: uploaded plot texture", "width", t.width, "height", t.height, "generation", gen)
	return t
}

// linearSampling reports whether a w x h plot drawn with node must be
// filtered in the shader.
func linearSampling(filter ebiten.Filter, node NodeOptions, w, h int) bool {
	if filter != ebiten.FilterLinear || node.Width <= 0 || node.Height <= 0 {
		return false
	}
	return node.Width != float64(w) || node.Height != float64(h)
}

// DrawMaterial draws the material's plot onto screen. Materials or images
// that cannot be shown are skipped.
func (r *Renderer) DrawMaterial(screen *ebiten.Image, material Handle[PlotUIMaterial], opts *NodeOptions) {
	if r.closed {
		return
	}
	m, ok := r.plugin.Materials.Get(material)
	if !ok {
		return
	}
	t := r.upload(m.Texture)
	if t == nil {
		return
	}

	var node NodeOptions
	if opts != nil {
		node = *opts
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = t.texture
	var linear float32
	if linearSampling(r.plugin.opts.Filter, node, t.width, t.height) {
		linear = 1
	}
	op.Uniforms = map[string]any{
		"Color":  m.Color.Uniform(),
		"Linear": linear,
	}
	if node.Width > 0 && node.Height > 0 {
		op.GeoM.Scale(node.Width/float64(t.width), node.Height/float64(t.height))
	}
	op.GeoM.Translate(node.X, node.Y)
	screen.DrawRectShader(t.width, t.height, r.shader, op)
}

// Release frees the texture uploaded for an image. It is uploaded again if
// the image is drawn later.
func (r *Renderer) Release(h Handle[Image]) {
	if t, ok := r.textures[h]; ok {
		t.texture.Deallocate()
		delete(r.textures, h)
	}
}

// Close releases all textures and the shader. After Close, the renderer
// draws nothing.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for h, t := range r.textures {
		t.texture.Deallocate()
		delete(r.textures, h)
	}
	r.shader.Deallocate()
}
