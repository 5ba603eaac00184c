package risk

import (
	"errors"
	"fmt"
)

// Side 表示下单方向。
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Sell {
		return "SELL"
	}
	return "BUY"
}

// AllowedSize returns the quantity that can still be traded in the given
// direction before inventory leaves [-ceiling, +ceiling]. Buying consumes
// the room up to +ceiling, selling the room down to -ceiling (position may
// already be negative). Never negative.
//
// This is the single point enforcing the inventory ceiling: every emitted
// order magnitude must be min(desired, AllowedSize).
func AllowedSize(position, ceiling int64, side Side) int64 {
	var room int64
	if side == Buy {
		room = ceiling - position
	} else {
		room = ceiling + position
	}
	if room < 0 {
		return 0
	}
	return room
}

var ErrCeilingExceed = errors.New("position ceiling exceed")

// PositionSource 提供当前净仓位。
type PositionSource interface {
	Position(symbol string) int64
}

// LimitGuard 在下单前校验仓位上限；deltaQty 正买负卖。
// 策略自身的 clamp 是上限的第一道执行点，Guard 是下游兜底。
type LimitGuard struct {
	Ceilings  map[string]int64
	Positions PositionSource
}

func (g LimitGuard) PreOrder(symbol string, deltaQty int64) error {
	ceiling, ok := g.Ceilings[symbol]
	if !ok {
		return nil
	}
	var pos int64
	if g.Positions != nil {
		pos = g.Positions.Position(symbol)
	}
	net := pos + deltaQty
	if net > ceiling || net < -ceiling {
		return fmt.Errorf("%w: %s net %d over ceiling %d", ErrCeilingExceed, symbol, net, ceiling)
	}
	return nil
}
