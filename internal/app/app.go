//go:build ebiten

package app

import (
	"time"

	"tilewater/internal/core"
	"tilewater/internal/render"
	"tilewater/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the water simulation to the ebiten.Game interface. Frames run
// at the window's TPS; the simulation ticks whenever its own clock fires.
type Game struct {
	sim     Editable
	painter *render.GridPainter
	hud     *ui.HUD
	menu    *ui.Overlay
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation.
func New(sim Editable, cfg *Config) *Game {
	size := sim.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		menu:    ui.NewOverlay(),
		clock:   core.NewFixedStep(sim.Config().TickPeriod),
		scale:   scale,
	}
}

// Reset rebuilds the scenario with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.tickOnce = false
	g.clock.Restart()
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyControlLeft) || inpututil.IsKeyJustPressed(ebiten.KeyControlRight) {
		g.setPaused(g.menu.Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.menu.Visible() {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sim.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.viewWidth())
	g.handlePointer()

	if g.paused {
		if g.tickOnce {
			g.sim.Step()
			g.tickOnce = false
		}
		return nil
	}
	g.tickOnce = false
	if g.clock.ShouldStep() {
		g.sim.Step()
	}
	return nil
}

func (g *Game) setPaused(paused bool) {
	if g.paused && !paused {
		g.clock.Restart()
	}
	g.paused = paused
}

// handlePointer turns the mouse buttons held over a cell into an edit.
// Editing stays available while paused.
func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if mx >= g.viewWidth() || g.hud.Contains(mx, my) {
		return
	}
	buttons := Buttons{
		Left:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Right:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Middle: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
	}
	if !buttons.Left && !buttons.Right && !buttons.Middle {
		return
	}
	x, y := render.ScreenToCell(mx, my, g.sim.Size().H, g.scale)
	if e, ok := editFor(g.sim.Grid().Get(x, y), buttons); ok {
		g.sim.Apply(e)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.painter.DrawWater(screen, g.sim.Grid(), g.scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.viewWidth(), h)
	if g.paused && !g.menu.Visible() {
		ebitenutil.DebugPrintAt(screen, "paused", 4, 4)
	}
	g.menu.Draw(screen)
}

// Layout returns the logical screen size: the grid view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	h := s.H * g.scale
	if m := g.hud.MinHeight(); m > h {
		h = m
	}
	return g.viewWidth() + g.hud.Width(), h
}

func (g *Game) viewWidth() int {
	return g.sim.Size().W * g.scale
}
