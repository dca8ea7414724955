// Copyright (c) 2026 Javier Podavini (YindSoft)
// Licensed under the MIT License. See LICENSE file in the project root.

// Command example animates a sine chart that is redrawn every tick into the
// same pixel buffer.
package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	plotui "github.com/YindSoft/plotui-ebitengine"
)

const (
	screenWidth  = 800
	screenHeight = 600
	border       = 20
)

var (
	xRange = plotui.Range{Min: -2, Max: 2}
	yRange = plotui.Range{Min: -2, Max: 2}
)

type config struct {
	Width    int     `mapstructure:"width" yaml:"width"`
	Height   int     `mapstructure:"height" yaml:"height"`
	Amp      float64 `mapstructure:"amp" yaml:"amp"`
	Freq     float64 `mapstructure:"freq" yaml:"freq"`
	Alpha    float64 `mapstructure:"alpha" yaml:"alpha"`
	Scale    float64 `mapstructure:"scale" yaml:"scale"`
	Filter   string  `mapstructure:"filter" yaml:"filter"`
	Snapshot string  `mapstructure:"snapshot" yaml:"snapshot"`
	Debug    bool    `mapstructure:"debug" yaml:"debug"`
}

// loadConfig merges flags, PLOTDEMO_* environment variables and, when
// given, a config file. Explicit flags win over the environment.
func loadConfig(cmd *cobra.Command, file string) (*config, error) {
	v := viper.New()
	v.SetEnvPrefix("PLOTDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}
	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid plot size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		return nil, fmt.Errorf("invalid scale %g", cfg.Scale)
	}
	if cfg.Filter != "nearest" && cfg.Filter != "linear" {
		return nil, fmt.Errorf("unknown filter %q", cfg.Filter)
	}
	return cfg, nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// sinPlot draws amp*sin((x+phase)*freq) over the whole area.
func sinPlot(root *plotui.DrawingArea, amp, freq, phase float64) error {
	root.Fill(plotui.White)
	chart, err := plotui.NewChartBuilder(root.Margin(30, 40, 30, 40)).
		Caption("Hello, Sine!", plotui.Font("sans-serif", 40)).
		XLabelAreaSize(20).
		YLabelAreaSize(40).
		BuildCartesian2D(xRange, yRange)
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

	points := make([]plotui.Point, 0, 101)
	for i := -50; i <= 50; i++ {
		x := float64(i) / 25
		points = append(points, plotui.Point{X: x, Y: amp * math.Sin((x+phase)*freq)})
	}
	chart.DrawLineSeries(points, plotui.NewShapeStyle(plotui.Red).Width(2))
	return root.Present()
}

// redraw draws the chart into the material's image in place.
func redraw(p *plotui.Plugin, material plotui.Handle[plotui.PlotUIMaterial], cfg *config, phase float64) error {
	img, ok := p.PlotImage(material)
	if !ok {
		return fmt.Errorf("plot image missing")
	}
	backend, err := plotui.AsBackend(img)
	if err != nil {
		return err
	}
	return sinPlot(backend.IntoDrawingArea(), cfg.Amp, cfg.Freq, phase)
}

func newPlot(cfg *config, logger *slog.Logger) (*plotui.Plugin, plotui.Handle[plotui.PlotUIMaterial]) {
	filter := ebiten.FilterNearest
	if cfg.Filter == "linear" {
		filter = ebiten.FilterLinear
	}
	p := plotui.New(&plotui.Options{Filter: filter, Logger: logger})
	img := plotui.NewImageFill(uint32(cfg.Width), uint32(cfg.Height), []byte{0, 0, 0, 0},
		plotui.FormatBGRA8UnormSrgb, plotui.UsageMainWorld|plotui.UsageRenderWorld)
	material := p.AddPlot(img)
	if m, ok := p.Materials.GetMut(material); ok {
		m.Color = m.Color.WithAlpha(float32(cfg.Alpha))
	}
	return p, material
}

// snapshot renders one frame without opening a window and saves it as PNG,
// shaded the way the material shades it on the GPU.
func snapshot(cfg *config, logger *slog.Logger) error {
	gg.SetLogger(logger)
	p, material := newPlot(cfg, logger)
	if err := redraw(p, material, cfg, 0); err != nil {
		return err
	}
	m, _ := p.Materials.Get(material)
	img, _ := p.Images.Get(m.Texture)
	shaded, err := plotui.ShadeImage(img, m.Color)
	if err != nil {
		return err
	}

	dc := gg.NewContext(cfg.Width+2*border, cfg.Height+2*border)
	defer func() {
		_ = dc.Close()
	}()
	dc.ClearWithColor(gg.Hex("#1e1e28"))
	dc.DrawImage(gg.ImageBufFromImage(shaded), border, border)
	if err := dc.SavePNG(cfg.Snapshot); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Snapshot, err)
	}
	logger.Info("snapshot written", "path", cfg.Snapshot)
	return nil
}

type Game struct {
	cfg      *config
	plugin   *plotui.Plugin
	renderer *plotui.Renderer
	material plotui.Handle[plotui.PlotUIMaterial]
	start    time.Time
}

func (g *Game) Update() error {
	return redraw(g.plugin, g.material, g.cfg, time.Since(g.start).Seconds())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 40, 255})
	w, h := float64(g.cfg.Width)*g.cfg.Scale, float64(g.cfg.Height)*g.cfg.Scale
	g.renderer.DrawMaterial(screen, g.material, &plotui.NodeOptions{
		X:      (screenWidth - w) / 2,
		Y:      (screenHeight - h) / 2,
		Width:  w,
		Height: h,
	})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func run(cfg *config, logger *slog.Logger) error {
	p, material := newPlot(cfg, logger)
	renderer, err := plotui.NewRenderer(p)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Close()

	game := &Game{cfg: cfg, plugin: p, renderer: renderer, material: material, start: time.Now()}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("plotui - animated sine")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(game)
}

func newRootCmd() *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:          "example",
		Short:        "Animated sine chart drawn into an Ebitengine UI node",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Debug)
			if cfg.Snapshot != "" {
				return snapshot(cfg, logger)
			}
			return run(cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	cmd.Flags().Int("width", 500, "plot width in pixels")
	cmd.Flags().Int("height", 500, "plot height in pixels")
	cmd.Flags().Float64("amp", 1.0, "sine amplitude")
	cmd.Flags().Float64("freq", 3.0, "sine frequency")
	cmd.Flags().Float64("alpha", 1.0, "plot opacity")
	cmd.Flags().Float64("scale", 1.0, "on-screen size of the plot relative to its texture")
	cmd.Flags().String("filter", "nearest", "sampling of a scaled plot: nearest or linear")
	cmd.Flags().String("snapshot", "", "render one frame to this PNG file and exit")
	cmd.Flags().Bool("debug", false, "enable debug logging")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
