//go:build ebiten

package app

import (
	"image/color"
	"time"

	"rect-lives/internal/core"
	"rect-lives/internal/render"
	"rect-lives/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type rateProvider interface {
	Rate() int
}

type toggler interface {
	Toggle(x, y int) bool
}

// Game adapts a core simulation to the ebiten.Game interface. Generations are
// paced by a FixedStep so the board can run slower than the frame rate while
// fading cells are redrawn every frame.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	palette  []color.RGBA
	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		sim:      sim,
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		pacer:    core.NewFixedStep(rateOf(sim)),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	if p, ok := sim.(paletteProvider); ok {
		g.palette = p.Palette()
	}
	g.resizePainter()
	return g
}

func rateOf(sim core.Sim) int {
	if r, ok := sim.(rateProvider); ok {
		return r.Rate()
	}
	return ebiten.TPS()
}

func (g *Game) resizePainter() {
	size := g.sim.Size()
	if g.painter != nil {
		if w, h := g.painter.Size(); w == size.W && h == size.H {
			return
		}
	}
	g.painter = render.NewGridPainter(size.W, size.H)
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.resizePainter()
	g.pacer.Restart()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handleMouse()

	g.overlay.SetPaused(g.paused)
	g.overlay.Update()
	g.hud.Update(g.boardWidth())
	g.pacer.SetRate(rateOf(g.sim))

	steps := g.pacer.Due(time.Now())
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = max(steps, 1)
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	return nil
}

func (g *Game) handleMouse() {
	t, ok := g.sim.(toggler)
	if !ok || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.boardWidth() {
		return
	}
	t.Toggle(mx/g.scale, my/g.scale)
}

func (g *Game) boardWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.boardWidth() + g.hud.Width(), s.H * g.scale
}
