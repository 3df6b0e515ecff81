package mapgen

import (
	"encoding/json"
	"io"

	"mapforge/internal/paths"
)

type record struct {
	RunID       string         `json:"run_id"`
	Seed        int64          `json:"seed"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Heights     []float64      `json:"heights"`
	Cities      []int          `json:"cities"`
	Territories []int          `json:"territories"`
	Rivers      [][][2]float64 `json:"rivers"`
	Coasts      [][][2]float64 `json:"coasts"`
	Borders     [][][2]float64 `json:"borders"`
}

func pathRecords(ps []paths.Path) [][][2]float64 {
	out := make([][][2]float64, len(ps))
	for i, p := range ps {
		pts := make([][2]float64, len(p))
		for j, v := range p {
			pts[j] = [2]float64{v.X(), v.Y()}
		}
		out[i] = pts
	}
	return out
}

// WriteJSON encodes the map as a single JSON object.
func (m *Map) WriteJSON(w io.Writer) error {
	ext := m.Heights.Topology().Extent()
	rec := record{
		RunID:       m.RunID.String(),
		Seed:        m.Seed,
		Width:       ext.W,
		Height:      ext.H,
		Heights:     m.Heights.Values(),
		Cities:      m.Cities,
		Territories: m.Territories,
		Rivers:      pathRecords(m.Rivers),
		Coasts:      pathRecords(m.Coasts),
		Borders:     pathRecords(m.Borders),
	}
	if rec.Cities == nil {
		rec.Cities = []int{}
	}
	if rec.Territories == nil {
		rec.Territories = []int{}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(rec)
}
