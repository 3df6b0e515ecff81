package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-scale", "3", "-seed", "7", "-erosion-rate", "10", "-hud", "0"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Scale != 3 || cfg.Map.Seed != 7 || cfg.ErosionRate != 10 || cfg.HUDWidth != 0 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.TPS != NewConfig().TPS {
		t.Fatalf("unset flag changed: tps=%d", cfg.TPS)
	}
}
