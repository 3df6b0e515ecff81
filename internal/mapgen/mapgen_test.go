package mapgen

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log/slog"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 32
	cfg.Mountains = 10
	cfg.RelaxPasses = 3
	cfg.ErosionIterations = 1
	cfg.Cities = 6
	cfg.Territories = 3
	return cfg
}

func TestValidateWrapsErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Height = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	cfg = testConfig()
	cfg.Cities = -2
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if _, err := Generate(cfg, quietLogger()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Generate should reject invalid config, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":           "50",
		"cities":      "4",
		"territories": "x",
		"river_limit": "0.05",
	})
	if cfg.Width != 50 || cfg.Cities != 4 || cfg.RiverLimit != 0.05 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Territories != DefaultConfig().Territories {
		t.Fatalf("bad value should keep default, got %d", cfg.Territories)
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "64", "-preset", "island", "-cities", "3", "-erosion", "0"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Preset != "island" || cfg.Cities != 3 || cfg.ErosionAmount != 0 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParametersIncludeBothGroups(t *testing.T) {
	snap := testConfig().Parameters()
	if len(snap.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(snap.Groups))
	}
	if v, ok := snap.Lookup("territories"); !ok || v != "3" {
		t.Fatalf("territories parameter = %q (ok=%v)", v, ok)
	}
	if v, ok := snap.Lookup("w"); !ok || v != "40" {
		t.Fatalf("width parameter = %q (ok=%v)", v, ok)
	}
}

func TestGenerate(t *testing.T) {
	cfg := testConfig()
	m, err := Generate(cfg, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if m.Heights.Len() != cfg.Width*cfg.Height {
		t.Fatalf("heights has %d cells", m.Heights.Len())
	}
	if len(m.Cities) == 0 || len(m.Cities) > cfg.Cities {
		t.Fatalf("unexpected city count %d", len(m.Cities))
	}
	if len(m.Territories) != m.Heights.Len() {
		t.Fatalf("territories cover %d cells", len(m.Territories))
	}
	capitals := m.Capitals()
	if want := min(cfg.Territories, len(m.Cities)); len(capitals) != want {
		t.Fatalf("expected %d capitals, got %d", want, len(capitals))
	}
	owners := map[int]bool{}
	for _, c := range capitals {
		owners[c] = true
	}
	for i, o := range m.Territories {
		if !owners[o] {
			t.Fatalf("cell %d owned by non-capital %d", i, o)
		}
	}
	if len(m.Coasts) == 0 {
		t.Fatal("expected at least one coastline")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cfg := testConfig()
	var out [2]bytes.Buffer
	for i := range out {
		m, err := Generate(cfg, quietLogger())
		if err != nil {
			t.Fatal(err)
		}
		if err := m.WriteJSON(&out[i]); err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(out[0].Bytes(), out[1].Bytes()) {
		t.Fatal("equal configs produced different output")
	}
	other := cfg
	other.Seed++
	if RunID(cfg) == RunID(other) {
		t.Fatal("different seeds share a run id")
	}
}

func TestGenerateWithoutTerritories(t *testing.T) {
	cfg := testConfig()
	cfg.Territories = 0
	m, err := Generate(cfg, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if m.Territories != nil || m.Borders != nil || m.Capitals() != nil {
		t.Fatal("expected no territories when none are requested")
	}
}

func TestWriteJSONKeys(t *testing.T) {
	cfg := testConfig()
	m, err := Generate(cfg, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"width", "height", "heights", "cities", "territories", "rivers", "coasts", "borders", "run_id", "seed"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q", key)
		}
	}
	var width int
	if err := json.Unmarshal(decoded["width"], &width); err != nil || width != cfg.Width {
		t.Fatalf("width = %d (%v), want %d", width, err, cfg.Width)
	}
	var runID string
	if err := json.Unmarshal(decoded["run_id"], &runID); err != nil || runID != RunID(cfg).String() {
		t.Fatalf("run_id = %q, want %q", runID, RunID(cfg))
	}
}

func TestFromHeightsReusesField(t *testing.T) {
	cfg := testConfig()
	m, err := Generate(cfg, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	again, err := FromHeights(cfg, m.Heights, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if again.Heights != m.Heights {
		t.Fatal("FromHeights should keep the given field")
	}
	if len(again.Cities) != len(m.Cities) {
		t.Fatalf("city count changed: %d vs %d", len(again.Cities), len(m.Cities))
	}
	for i := range m.Cities {
		if again.Cities[i] != m.Cities[i] {
			t.Fatalf("city %d moved", i)
		}
	}
}
