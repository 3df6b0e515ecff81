//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"mapforge/internal/core"
	"mapforge/internal/mapgen"
	"mapforge/internal/render"
	"mapforge/internal/terrain"
	"mapforge/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a generated map to the ebiten.Game interface.
type Game struct {
	cfg     Config
	m       *mapgen.Map
	logger  *slog.Logger
	painter *render.HeightPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	erosion     *core.FixedStep
	erosionLeft int
}

// New generates the initial map and constructs a Game around it.
func New(cfg Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		painter: render.NewHeightPainter(cfg.Map.Width, cfg.Map.Height),
		overlay: ui.NewOverlay(cfg.Scale),
		hud:     ui.NewHUD(cfg.HUDWidth),
		erosion: core.NewFixedStep(cfg.ErosionRate),
	}
	if err := g.Reset(cfg.Map.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset regenerates the map with the provided seed.
func (g *Game) Reset(seed int64) error {
	g.cfg.Map.Seed = seed
	m, err := mapgen.Generate(g.cfg.Map, g.logger)
	if err != nil {
		return err
	}
	g.m = m
	g.erosionLeft = 0
	g.overlay.SetMap(m)
	return nil
}

// Update handles per-frame logic and advances the erosion animation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.cfg.Map.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) && g.erosionLeft == 0 {
		g.erosionLeft = g.cfg.ErosionRounds
		g.erosion.Reset()
	}

	g.overlay.Update()
	g.hud.Update(g.cfg.Map.Parameters(), g.status())

	if g.erosionLeft > 0 && g.erosion.ShouldStep() {
		if err := g.erodeOnce(); err != nil {
			return err
		}
	}
	return nil
}

// erodeOnce runs one erosion round. Paths and settlements are rebuilt once
// the last round finishes; until then the overlay hides them.
func (g *Game) erodeOnce() error {
	h := terrain.Erode(g.m.Heights, g.cfg.Map.ErosionAmount)
	h = terrain.FillSinks(h, terrain.DefaultFillEpsilon)
	g.m.Heights = h
	g.erosionLeft--
	if g.erosionLeft > 0 {
		g.overlay.SetMap(nil)
		return nil
	}
	m, err := mapgen.FromHeights(g.cfg.Map, h, g.logger)
	if err != nil {
		return err
	}
	g.m = m
	g.overlay.SetMap(m)
	return nil
}

func (g *Game) status() string {
	if g.erosionLeft > 0 {
		return "eroding..."
	}
	return g.m.RunID.String()[:8]
}

// Draw renders the current map state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.m.Heights, g.cfg.Scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.cfg.Map.Width*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Map.Width*g.cfg.Scale + g.hud.Width(), g.cfg.Map.Height * g.cfg.Scale
}
