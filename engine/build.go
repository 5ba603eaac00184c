package engine

import (
	"fmt"
	"sort"

	"quote-engine-go/config"
	"quote-engine-go/infrastructure/logger"
	"quote-engine-go/strategy"
)

// Build constructs a Dispatcher from the per-symbol config blocks. Basket
// strategies get each constituent's own ceiling, so hedge legs clamp
// against the right limit.
func Build(cfg config.AppConfig, log *logger.Logger) (*Dispatcher, error) {
	symbols := make([]string, 0, len(cfg.Symbols))
	for sym := range cfg.Symbols {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	strategies := make([]strategy.Strategy, 0, len(symbols))
	for _, sym := range symbols {
		sc := cfg.Symbols[sym]
		params := strategy.Params{
			Kind:        strategy.Kind(sc.Strategy),
			Ceiling:     sc.Ceiling,
			Tick:        sc.Tick,
			DefaultSize: sc.DefaultSize,
			Anchor:      sc.Anchor,
			Window:      sc.Window,
			ShortWindow: sc.ShortWindow,
			LongWindow:  sc.LongWindow,
			SizeStep:    sc.SizeStep,
			Weights:     sc.Weights,
		}
		if len(sc.Weights) > 0 {
			params.LegCeilings = make(map[string]int64, len(sc.Weights))
			for leg := range sc.Weights {
				legConf, ok := cfg.Symbols[leg]
				if !ok {
					return nil, fmt.Errorf("symbol %s: constituent %s is not configured", sym, leg)
				}
				params.LegCeilings[leg] = legConf.Ceiling
			}
		}
		s, err := strategy.New(sym, params)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return New(strategies, log)
}

// Ceilings 返回每个品种的仓位上限，供下游 risk.LimitGuard 使用。
func Ceilings(cfg config.AppConfig) map[string]int64 {
	res := make(map[string]int64, len(cfg.Symbols))
	for sym, sc := range cfg.Symbols {
		res[sym] = sc.Ceiling
	}
	return res
}
