// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Package plotui draws charts into BGRX pixel buffers and shows them as
// Ebitengine UI nodes.
//
// Charts are drawn straight into an image's byte buffer (no copy), and the
// buffer is uploaded to the GPU untouched. The fourth byte of every pixel is
// padding that chart drawing overwrites, so [PlotUIMaterial] ignores it and
// takes the plot's alpha from its Color field instead.
//
// Basic usage:
//
//	import plotui "github.com/YindSoft/plotui-ebitengine"
//
//	p := plotui.New(nil)
//	img := plotui.NewImageFill(500, 500, []byte{0, 0, 0, 0},
//	    plotui.FormatBGRA8UnormSrgb, plotui.UsageMainWorld|plotui.UsageRenderWorld)
//	material := p.AddPlot(img)
//
//	renderer, err := plotui.NewRenderer(p)
//	if err != nil { ... }
//	defer renderer.Close()
//
//	// In Ebiten Update(), redraw the chart into the same buffer:
//	if img, ok := p.PlotImage(material); ok {
//	    if backend, ok := plotui.TryAsBackend(img); ok {
//	        root := backend.IntoDrawingArea()
//	        root.Fill(plotui.White)
//	        chart, err := plotui.NewChartBuilder(root.Margin(30, 40, 30, 40)).
//	            Caption("Hello, Plot!", plotui.Font("sans-serif", 40)).
//	            XLabelAreaSize(20).
//	            YLabelAreaSize(40).
//	            BuildCartesian2D(plotui.Range{Min: 0, Max: 10}, plotui.Range{Min: 0, Max: 10})
//	        ...
//	    }
//	}
//
//	// In Ebiten Draw():
//	renderer.DrawMaterial(screen, material, &plotui.NodeOptions{X: 150, Y: 50})
//
// [TryAsBackend] accepts only the BGRA8 formats and buffers of at least
// width*height*4 bytes; anything else yields no backend. Images not flagged
// for both [UsageMainWorld] and [UsageRenderWorld] are still accepted, with
// a warning through the logger set by [SetLogger].
//
// The bundled shaders are registered under [PlotShaderPath] (WGSL, for
// WebGPU hosts) and [PlotKagePath] (Kage, used by [Renderer]).
// [CheckMaterialShader] verifies that a WGSL shader binds the material's
// color uniform, texture and sampler at bindings 0, 1 and 2.
package plotui
