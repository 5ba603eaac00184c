// Package feed decodes inbound tick-state snapshots for the decision layer.
// The engine does not own the feed; it only consumes materialized snapshots.
package feed

import (
	"encoding/json"
	"fmt"
	"strconv"

	"quote-engine-go/book"
	"quote-engine-go/strategy"
)

// tickMessage 对应一条完整的 tick 快照：全部盘口加当前持仓。
// 价格作为 JSON 对象键只能是字符串，解析时转回整数。
type tickMessage struct {
	Books     map[string]bookMessage `json:"books"`
	Positions map[string]int64       `json:"positions"`
}

type bookMessage struct {
	Bids map[string]int64 `json:"bids"`
	Asks map[string]int64 `json:"asks"`
}

// ParseTickState decodes one snapshot message into a TickState.
func ParseTickState(raw []byte) (strategy.TickState, error) {
	var msg tickMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return strategy.TickState{}, fmt.Errorf("parse tick: %w", err)
	}

	state := strategy.TickState{
		Books:     make(map[string]*book.Book, len(msg.Books)),
		Positions: msg.Positions,
	}
	if state.Positions == nil {
		state.Positions = map[string]int64{}
	}
	for symbol, bm := range msg.Books {
		bk := book.New()
		if err := fillSide(bk.Bids, bm.Bids); err != nil {
			return strategy.TickState{}, fmt.Errorf("symbol %s bids: %w", symbol, err)
		}
		if err := fillSide(bk.Asks, bm.Asks); err != nil {
			return strategy.TickState{}, fmt.Errorf("symbol %s asks: %w", symbol, err)
		}
		state.Books[symbol] = bk
	}
	return state, nil
}

func fillSide(dst map[int64]int64, src map[string]int64) error {
	for price, qty := range src {
		p, err := strconv.ParseInt(price, 10, 64)
		if err != nil {
			return fmt.Errorf("bad price key %q: %w", price, err)
		}
		if qty <= 0 {
			return fmt.Errorf("non-positive quantity %d at price %s", qty, price)
		}
		dst[p] = qty
	}
	return nil
}
