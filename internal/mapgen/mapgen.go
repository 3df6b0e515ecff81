// Package mapgen runs the full map pipeline: terrain, cities, territories and
// the river, coast and border paths drawn on top of them.
package mapgen

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mapforge/internal/paths"
	"mapforge/internal/terrain"
	"mapforge/internal/territory"
	pcore "mapforge/pkg/core"

	"github.com/google/uuid"
)

// Map is a finished, renderable map.
type Map struct {
	// RunID is derived from the configuration, so equal configs share it.
	RunID uuid.UUID
	Seed  int64

	Heights     *terrain.HeightField
	Cities      []int
	Territories []int

	Rivers  []paths.Path
	Coasts  []paths.Path
	Borders []paths.Path
}

// RunID returns the deterministic identifier for a configuration.
func RunID(cfg Config) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("mapforge:%+v", cfg)))
}

// Generate builds a map from cfg. A nil logger selects slog.Default().
func Generate(cfg Config, logger *slog.Logger) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = runLogger(cfg, logger)
	start := time.Now()

	h, err := terrain.Generate(cfg.Config, pcore.NewRNG(cfg.Seed))
	if err != nil {
		return nil, err
	}
	logger.Debug("terrain generated", "preset", cfg.Preset, "land", h.LandCount(), "elapsed", time.Since(start))

	m, err := annotate(cfg, h, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("map generated", "w", cfg.Width, "h", cfg.Height, "elapsed", time.Since(start))
	return m, nil
}

// FromHeights runs the settlement and path passes over an existing height
// field, for instance one that was eroded further after generation.
func FromHeights(cfg Config, h *terrain.HeightField, logger *slog.Logger) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return annotate(cfg, h, runLogger(cfg, logger))
}

func runLogger(cfg Config, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("run", RunID(cfg).String(), "seed", cfg.Seed)
}

func annotate(cfg Config, h *terrain.HeightField, logger *slog.Logger) (*Map, error) {
	margin := cfg.BoundaryMargin
	m := &Map{RunID: RunID(cfg), Seed: cfg.Seed, Heights: h}

	stage := time.Now()
	m.Rivers = terrain.Rivers(h, cfg.RiverLimit, margin)
	m.Coasts = terrain.Contour(h, 0, margin)
	logger.Debug("paths traced", "rivers", len(m.Rivers), "coasts", len(m.Coasts), "elapsed", time.Since(stage))

	stage = time.Now()
	m.Cities = territory.PlaceCities(h, nil, cfg.Cities, margin)
	if len(m.Cities) < cfg.Cities {
		logger.Warn("not enough room for cities", "requested", cfg.Cities, "placed", len(m.Cities))
	}
	if cfg.Territories > 0 {
		terr, err := territory.Partition(h, m.Cities, cfg.Territories)
		switch {
		case errors.Is(err, territory.ErrNoCities):
			logger.Warn("skipping territories", "err", err)
		case err != nil:
			return nil, err
		default:
			m.Territories = terr
			m.Borders = territory.Borders(h, terr, margin)
		}
	}
	logger.Debug("settlements placed", "cities", len(m.Cities), "borders", len(m.Borders), "elapsed", time.Since(stage))
	return m, nil
}

// Capitals returns the cities that own a territory.
func (m *Map) Capitals() []int {
	if m.Territories == nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for _, c := range m.Cities {
		if m.Territories[c] == c && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
