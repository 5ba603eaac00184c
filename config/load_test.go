package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

const validConfig = `
env: dev
feed:
  mode: sim
symbols:
  SUDOWOODO:
    strategy: anchor
    ceiling: 50
    tick: 2
    anchor: 10000
  LUXRAY:
    strategy: midpoint
    ceiling: 250
    tick: 3
    defaultSize: 8
  ASH:
    strategy: basket
    ceiling: 60
    tick: 5
    defaultSize: 2
    weights:
      LUXRAY: 6
`

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, validConfig)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "dev" || len(cfg.Symbols) != 3 {
		t.Fatalf("unexpected cfg values: %+v", cfg)
	}
	if cfg.Symbols["ASH"].Weights["LUXRAY"] != 6 {
		t.Fatalf("weights not parsed: %+v", cfg.Symbols["ASH"])
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, validConfig)
	t.Setenv("QE_METRICS_ADDR", ":9200")
	cfg, err := LoadWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Metrics.Addr != ":9200" {
		t.Fatalf("env override not applied: %+v", cfg.Metrics)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing env", `
symbols:
  X: {strategy: midpoint, ceiling: 10, tick: 1}
`},
		{"no symbols", `
env: dev
`},
		{"zero tick", `
env: dev
symbols:
  X: {strategy: midpoint, ceiling: 10}
`},
		{"unknown strategy", `
env: dev
symbols:
  X: {strategy: martingale, ceiling: 10, tick: 1}
`},
		{"trend windows inverted", `
env: dev
symbols:
  X: {strategy: trend, ceiling: 10, tick: 1, shortWindow: 20, longWindow: 5}
`},
		{"basket with unconfigured constituent", `
env: dev
symbols:
  IDX:
    strategy: basket
    ceiling: 10
    tick: 1
    weights:
      GHOST: 2
`},
		{"ws mode without url", `
env: dev
feed:
  mode: ws
symbols:
  X: {strategy: midpoint, ceiling: 10, tick: 1}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.yaml)
			if _, err := Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
