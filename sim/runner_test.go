package sim

import (
	"testing"

	"quote-engine-go/config"
	"quote-engine-go/engine"
	"quote-engine-go/risk"
)

func simConfig() config.AppConfig {
	return config.AppConfig{
		Env: "test",
		Symbols: map[string]config.SymbolConfig{
			"LUXRAY": {Strategy: "midpoint", Ceiling: 250, Tick: 3, DefaultSize: 8},
			"SHINX":  {Strategy: "spread", Ceiling: 60, Tick: 1, DefaultSize: 3},
			"MISTY": {
				Strategy: "basket", Ceiling: 100, Tick: 5, DefaultSize: 3,
				Weights: map[string]int64{"LUXRAY": 4, "SHINX": 2},
			},
		},
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := simConfig()
	a, b := NewGenerator(cfg, 7), NewGenerator(cfg, 7)
	for i := 0; i < 20; i++ {
		sa, sb := a.Next(), b.Next()
		if len(sa.Books) != len(cfg.Symbols) {
			t.Fatalf("tick %d: %d books, want %d", i, len(sa.Books), len(cfg.Symbols))
		}
		for sym := range sa.Books {
			ma, okA := sa.Books[sym].Mid(1)
			mb, okB := sb.Books[sym].Mid(1)
			if okA != okB || ma != mb {
				t.Fatalf("tick %d symbol %s: mids diverge (%d vs %d)", i, sym, ma, mb)
			}
		}
	}
}

func TestRunnerEndToEnd(t *testing.T) {
	cfg := simConfig()
	d, err := engine.Build(cfg, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	sink := &Collector{}
	r := &Runner{
		Dispatcher: d,
		Guard:      risk.LimitGuard{Ceilings: engine.Ceilings(cfg)},
		Sink:       sink,
	}

	gen := NewGenerator(cfg, 42)
	for i := 0; i < 50; i++ {
		if err := r.OnTick(gen.Next()); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	if len(sink.Orders) == 0 {
		t.Fatal("expected some orders over 50 ticks")
	}
	for _, o := range sink.Orders {
		if o.Quantity == 0 {
			t.Fatalf("zero-quantity order emitted: %+v", o)
		}
		ceiling := engine.Ceilings(cfg)[o.Symbol]
		if o.Quantity > ceiling || o.Quantity < -ceiling {
			t.Fatalf("order size beyond ceiling: %+v", o)
		}
	}
}

func TestRunnerRequiresWiring(t *testing.T) {
	r := &Runner{}
	if err := r.OnTick(NewGenerator(simConfig(), 1).Next()); err == nil {
		t.Fatal("expected error for unwired runner")
	}
}
