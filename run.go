package slider

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws the FPS/TPS counter on top.
	ShowFPS bool
	// ClearColor fills the screen before the carousel draws.
	ClearColor Color
	// ScreenshotDir is the output directory of Carousel.Screenshot.
	ScreenshotDir string
}

// game adapts a Carousel to ebiten.Game.
type game struct {
	carousel *Carousel
	clear    color.Color
	fps      *fpsOverlay
}

func (g *game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.carousel.Step(dt)
	if g.fps != nil {
		g.fps.update(dt.Seconds())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.clear != nil {
		screen.Fill(g.clear)
	}
	g.carousel.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.carousel.Layout(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and runs c until the window is closed.
func Run(c *Carousel, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 450
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.ScreenshotDir != "" {
		c.SetScreenshotDir(cfg.ScreenshotDir)
	}

	g := &game{carousel: c}
	if cfg.ClearColor != (Color{}) {
		g.clear = cfg.ClearColor.toRGBA()
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
