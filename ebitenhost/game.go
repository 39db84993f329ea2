package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Dany0257/3dcoaching/herocanvas"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// HeroHeight limits the hero section to the top HeroHeight pixels of the
	// window. Zero means the hero fills the window.
	HeroHeight int
	ShowFPS    bool
}

// Viewport reports the window size from ebiten's Layout and an optional
// fixed-height hero section at the top of the window.
type Viewport struct {
	Width, Height int
	HeroHeight    int
}

func (v *Viewport) HeroBounds() (w, h float64, ok bool) {
	if v.HeroHeight <= 0 || v.Width <= 0 {
		return 0, 0, false
	}
	return float64(v.Width), float64(min(v.HeroHeight, v.Height)), true
}

func (v *Viewport) WindowSize() (w, h float64) {
	return float64(v.Width), float64(v.Height)
}

// Game implements ebiten.Game around a herocanvas.Engine. The engine's frame
// callbacks are queued on the game and run once per Update tick, which makes
// ebiten's tick the display refresh the engine schedules against.
type Game struct {
	engine   *herocanvas.Engine
	canvas   *Canvas
	host     herocanvas.QueueHost
	viewport Viewport
	showFPS  bool
}

// NewGame builds a canvas and engine sized for rc and starts the engine.
func NewGame(cfg herocanvas.Config, rc RunConfig) *Game {
	g := &Game{
		viewport: Viewport{Width: rc.Width, Height: rc.Height, HeroHeight: rc.HeroHeight},
		showFPS:  rc.ShowFPS,
	}
	g.canvas = NewCanvas(rc.Width, rc.Height)
	g.engine = herocanvas.New(g.canvas, &g.viewport, cfg)
	g.engine.Start(g)
	return g
}

// Engine returns the hosted engine.
func (g *Game) Engine() *herocanvas.Engine {
	return g.engine
}

// RequestFrame queues fn for the next Update.
func (g *Game) RequestFrame(fn func()) {
	g.host.RequestFrame(fn)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.engine.Stop()
		return ebiten.Termination
	}
	g.host.Pump()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nscene: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.engine.Scheduler().Current()))
	}
}

// Layout tracks the window size and resizes the engine when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.viewport.Width || outsideHeight != g.viewport.Height {
		g.viewport.Width, g.viewport.Height = outsideWidth, outsideHeight
		g.engine.Resize()
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and blocks until it is closed or Escape is
// pressed.
func Run(cfg herocanvas.Config, rc RunConfig) error {
	if rc.Width <= 0 || rc.Height <= 0 {
		rc.Width, rc.Height = 1280, 720
	}
	if rc.Title == "" {
		rc.Title = "hero"
	}
	ebiten.SetWindowTitle(rc.Title)
	ebiten.SetWindowSize(rc.Width, rc.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(cfg, rc)
	defer g.engine.Stop()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
