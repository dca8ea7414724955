// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package plotui

import (
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options for creating the plugin. All fields are optional.
type Options struct {
	// Shaders, when set, is registered after the bundled shaders, so a file
	// named plot.kage or plot.wgsl at its root replaces the bundled one.
	Shaders fs.FS
	// Filter selects how the renderer samples a plot drawn at a size other
	// than its own. The zero value is ebiten.FilterNearest.
	Filter ebiten.Filter
	// Logger is installed with SetLogger when non-nil.
	Logger *slog.Logger
}

// Plugin holds everything a game needs to show plots: the shader sources,
// the image store and the material store. Create it once with New and
// pass it to NewRenderer.
type Plugin struct {
	Shaders   *ShaderRegistry
	Images    *Assets[Image]
	Materials *Assets[PlotUIMaterial]

	opts Options
}

// New creates and builds a plugin.
func New(opts *Options) *Plugin {
	p := &Plugin{
		Shaders:   NewShaderRegistry(),
		Images:    NewAssets[Image](),
		Materials: NewAssets[PlotUIMaterial](),
	}
	if opts != nil {
		p.opts = *opts
	}
	if p.opts.Logger != nil {
		SetLogger(p.opts.Logger)
	}
	p.Build()
	return p
}

// Build registers the bundled shaders and any user shaders. Calling it
// again re-registers the same sources and changes nothing.
// A user shader FS that cannot be walked is logged and skipped.
func (p *Plugin) Build() {
	p.Shaders.RegisterFile(string(PlotShaderPath), plotWGSL)
	p.Shaders.RegisterFile(string(PlotKagePath), plotKage)
	if p.opts.Shaders != nil {
		if err := p.Shaders.RegisterFS(p.opts.Shaders); err != nil {
			Logger().Warn("plotui: registering user shaders", "error", err)
		}
	}
}

// AddPlot stores img and a material showing it, and returns the material's
// handle.
func (p *Plugin) AddPlot(img *Image) Handle[PlotUIMaterial] {
	return p.Materials.Add(NewPlotUIMaterial(p.Images.Add(*img)))
}

// PlotImage returns the image behind a material for redrawing and marks
// it changed, so the renderer uploads it again.
func (p *Plugin) PlotImage(material Handle[PlotUIMaterial]) (*Image, bool) {
	m, ok := p.Materials.Get(material)
	if !ok {
		return nil, false
	}
	return p.Images.GetMut(m.Texture)
}
