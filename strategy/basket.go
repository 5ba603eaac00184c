package strategy

import (
	"errors"
	"fmt"
	"sort"

	"quote-engine-go/book"
	"quote-engine-go/metrics"
	"quote-engine-go/risk"
)

// ErrMissingConstituent reports a basket constituent absent from the tick's
// book collection. 区别于空盘口：缺品种是输入损坏，属硬错误。
var ErrMissingConstituent = errors.New("basket constituent missing from tick state")

// BasketArb trades a composite instrument against the weighted sum of its
// constituents' midpoints. When the composite's own midpoint diverges from
// the synthetic fair value by strictly more than one tick, it sells (or
// buys) the composite at its midpoint and hedges each constituent leg in
// the offsetting direction.
//
// Hedge legs are clamped independently per constituent; an infeasible leg is dropped
// without rolling back the composite leg, so callers accept residual basis
// risk from unfilled legs.
type BasketArb struct {
	symbol      string
	tick        int64
	size        int64
	ceiling     int64
	weights     map[string]int64
	legCeilings map[string]int64
	legs        []string // weights keys, sorted for stable output
}

func (s *BasketArb) Symbol() string { return s.symbol }

// synthetic computes the weighted sum of constituent midpoints. The
// one-sided fallback offset is exactly one price unit, independent of the
// composite's tick. Any constituent with both sides empty fails the whole
// synthesis for this tick.
func (s *BasketArb) synthetic(state TickState) (int64, bool, error) {
	var syn int64
	for _, leg := range s.legs {
		cb, ok := state.Books[leg]
		if !ok {
			return 0, false, fmt.Errorf("%w: %s", ErrMissingConstituent, leg)
		}
		mid, ok := cb.Mid(1)
		if !ok {
			return 0, false, nil
		}
		syn += mid * s.weights[leg]
	}
	return syn, true, nil
}

func (s *BasketArb) Orders(state TickState, bk *book.Book, position int64) ([]Order, error) {
	syn, ok, err := s.synthetic(state)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	mid, ok := bk.Mid(s.tick)
	if !ok {
		return nil, nil
	}

	premium := mid - syn
	metrics.BasketPremium.WithLabelValues(s.symbol).Set(float64(premium))
	if abs64(premium) <= s.tick {
		// 死区内不动作，tick 充当显著性阈值
		return nil, nil
	}

	compositeSide, hedgeSide := risk.Sell, risk.Buy
	if premium < 0 {
		compositeSide, hedgeSide = risk.Buy, risk.Sell
	}

	// The composite leg gates the whole multi-leg order: no hedges without
	// a tradable composite.
	size := min64(s.size, risk.AllowedSize(position, s.ceiling, compositeSide))
	if size == 0 {
		return nil, nil
	}

	orders := make([]Order, 0, 1+len(s.legs))
	if compositeSide == risk.Sell {
		orders = append(orders, Order{Symbol: s.symbol, Price: mid, Quantity: -size})
	} else {
		orders = append(orders, Order{Symbol: s.symbol, Price: mid, Quantity: size})
	}

	for _, leg := range s.legs {
		legMid, _ := state.Books[leg].Mid(1)
		want := s.weights[leg] * size
		qty := min64(want, risk.AllowedSize(state.Position(leg), s.legCeilings[leg], hedgeSide))
		if qty == 0 {
			continue
		}
		if hedgeSide == risk.Buy {
			orders = append(orders, Order{Symbol: leg, Price: legMid - 1, Quantity: qty})
		} else {
			orders = append(orders, Order{Symbol: leg, Price: legMid + 1, Quantity: -qty})
		}
	}
	return orders, nil
}

func sortedLegs(weights map[string]int64) []string {
	legs := make([]string, 0, len(weights))
	for leg := range weights {
		legs = append(legs, leg)
	}
	sort.Strings(legs)
	return legs
}
