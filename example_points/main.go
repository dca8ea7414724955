// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

package main

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	plotui "github.com/YindSoft/plotui-ebitengine"
)

const (
	screenWidth  = 800
	screenHeight = 600
	plotWidth    = 500
	plotHeight   = 500
)

type Game struct {
	plugin   *plotui.Plugin
	renderer *plotui.Renderer
	material plotui.Handle[plotui.PlotUIMaterial]
}

// helloPlot draws a line through points and labels each one.
func helloPlot(root *plotui.DrawingArea, points []plotui.Point) error {
	root.Fill(plotui.White)
	chart, err := plotui.NewChartBuilder(root.Margin(30, 40, 30, 40)).
		Caption("Hello, Plot!", plotui.Font("sans-serif", 40)).
		XLabelAreaSize(20).
		YLabelAreaSize(40).
		BuildCartesian2D(plotui.Range{Min: 0, Max: 10}, plotui.Range{Min: 0, Max: 10})
	if err != nil {
		return err
	}

	err = chart.ConfigureMesh().
		XLabels(5).
		YLabels(5).
		XLabelStyle(plotui.Font("sans-serif", 16)).
		YLabelStyle(plotui.Font("sans-serif", 16)).
		YLabelFormatter(func(v float64) string { return fmt.Sprintf("%.2f", v) }).
		Draw()
	if err != nil {
		return err
	}

	chart.DrawLineSeries(points, plotui.NewShapeStyle(plotui.Red))
	err = chart.DrawPointSeries(points, 5, plotui.NewShapeStyle(plotui.Red).Fill(), func(p plotui.Point) string {
		return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
	})
	if err != nil {
		return err
	}
	return root.Present()
}

func randomPoints(n int) []plotui.Point {
	points := make([]plotui.Point, n)
	for i := range points {
		points[i] = plotui.Point{X: rand.Float64() * 10, Y: rand.Float64() * 10}
	}
	return points
}

func (g *Game) redraw(points []plotui.Point) error {
	img, ok := g.plugin.PlotImage(g.material)
	if !ok {
		return fmt.Errorf("plot image missing")
	}
	backend, ok := plotui.TryAsBackend(img)
	if !ok {
		return nil
	}
	return helloPlot(backend.IntoDrawingArea(), points)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return g.redraw(randomPoints(3))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	g.renderer.DrawMaterial(screen, g.material, &plotui.NodeOptions{
		X: (screenWidth - plotWidth) / 2,
		Y: (screenHeight - plotHeight) / 2,
	})
	ebitenutil.DebugPrint(screen, "Space: new points")
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	p := plotui.New(&plotui.Options{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	})
	img := plotui.NewImageFill(plotWidth, plotHeight, []byte{0, 0, 0, 0},
		plotui.FormatBGRA8UnormSrgb, plotui.UsageMainWorld|plotui.UsageRenderWorld)
	game := &Game{plugin: p, material: p.AddPlot(img)}

	if err := game.redraw([]plotui.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 8, Y: 7}}); err != nil {
		log.Fatalf("draw: %v", err)
	}

	renderer, err := plotui.NewRenderer(p)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer renderer.Close()
	game.renderer = renderer

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("plotui - points")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("run: %v", err)
	}
}
