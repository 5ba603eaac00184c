package strategy

import (
	"errors"
	"fmt"
)

// Kind selects a strategy variant.
type Kind string

const (
	KindAnchor    Kind = "anchor"
	KindMidpoint  Kind = "midpoint"
	KindSpread    Kind = "spread"
	KindReversion Kind = "reversion"
	KindTrend     Kind = "trend"
	KindBasket    Kind = "basket"
)

// Params configures one strategy instance. Only the fields relevant to the
// chosen Kind are read; New validates the rest.
type Params struct {
	Kind        Kind
	Ceiling     int64
	Tick        int64
	DefaultSize int64
	Anchor      int64            // anchor: fixed reference price
	Window      int              // reversion: history capacity
	ShortWindow int              // trend
	LongWindow  int              // trend: history capacity
	SizeStep    int64            // spread: price units of spread per extra unit of size
	Weights     map[string]int64 // basket: constituent -> units per composite
	LegCeilings map[string]int64 // basket: constituent -> its own ceiling
}

// New creates a strategy instance for symbol from params.
// DefaultSize 缺省为 max(1, ceiling/10)，SizeStep 缺省为 5。
func New(symbol string, p Params) (Strategy, error) {
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}
	if p.Ceiling < 0 {
		return nil, fmt.Errorf("symbol %s: ceiling must be >= 0", symbol)
	}
	if p.Tick <= 0 {
		return nil, fmt.Errorf("symbol %s: tick must be > 0", symbol)
	}
	if p.DefaultSize < 0 {
		return nil, fmt.Errorf("symbol %s: defaultSize must be >= 0", symbol)
	}
	if p.DefaultSize == 0 {
		p.DefaultSize = p.Ceiling / 10
		if p.DefaultSize < 1 {
			p.DefaultSize = 1
		}
	}

	switch p.Kind {
	case KindAnchor:
		if p.Anchor <= 0 {
			return nil, fmt.Errorf("symbol %s: anchor must be > 0", symbol)
		}
		return &AnchorQuoter{
			symbol: symbol, anchor: p.Anchor,
			tick: p.Tick, size: p.DefaultSize, ceiling: p.Ceiling,
		}, nil
	case KindMidpoint:
		return &MidpointQuoter{
			symbol: symbol,
			tick:   p.Tick, size: p.DefaultSize, ceiling: p.Ceiling,
		}, nil
	case KindSpread:
		if p.SizeStep < 0 {
			return nil, fmt.Errorf("symbol %s: sizeStep must be >= 0", symbol)
		}
		if p.SizeStep == 0 {
			p.SizeStep = 5
		}
		return &SpreadQuoter{
			symbol: symbol, sizeStep: p.SizeStep,
			tick: p.Tick, size: p.DefaultSize, ceiling: p.Ceiling,
		}, nil
	case KindReversion:
		if p.Window <= 0 {
			return nil, fmt.Errorf("symbol %s: window must be > 0", symbol)
		}
		return &MeanReversion{
			symbol: symbol, hist: newMidHistory(p.Window),
			tick: p.Tick, size: p.DefaultSize, ceiling: p.Ceiling,
		}, nil
	case KindTrend:
		if p.ShortWindow <= 0 || p.LongWindow <= 0 {
			return nil, fmt.Errorf("symbol %s: shortWindow/longWindow must be > 0", symbol)
		}
		if p.ShortWindow >= p.LongWindow {
			return nil, fmt.Errorf("symbol %s: shortWindow must be < longWindow", symbol)
		}
		return &TrendFollower{
			symbol: symbol, short: p.ShortWindow, long: p.LongWindow,
			hist: newMidHistory(p.LongWindow),
			tick: p.Tick, size: p.DefaultSize, ceiling: p.Ceiling,
		}, nil
	case KindBasket:
		if len(p.Weights) == 0 {
			return nil, fmt.Errorf("symbol %s: basket weights are required", symbol)
		}
		for leg, w := range p.Weights {
			if w <= 0 {
				return nil, fmt.Errorf("symbol %s: weight for %s must be > 0", symbol, leg)
			}
			if _, ok := p.LegCeilings[leg]; !ok {
				return nil, fmt.Errorf("symbol %s: no ceiling for constituent %s", symbol, leg)
			}
		}
		return &BasketArb{
			symbol: symbol, weights: p.Weights, legCeilings: p.LegCeilings,
			legs: sortedLegs(p.Weights),
			tick: p.Tick, size: p.DefaultSize, ceiling: p.Ceiling,
		}, nil
	default:
		return nil, fmt.Errorf("unknown strategy kind: %q", p.Kind)
	}
}
