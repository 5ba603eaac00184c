package strategy

import (
	"quote-engine-go/book"
	"quote-engine-go/risk"
)

// MeanReversion keeps a rolling window of midpoints and fades deviations:
// once the current midpoint moves more than one tick away from the window
// mean it emits a single aggressive order back toward the mean. Within the
// band it stays silent.
//
// 均值为整数除法（与中间价同刻度），窗口未满时直接用现有样本。
type MeanReversion struct {
	symbol  string
	tick    int64
	size    int64
	ceiling int64
	hist    *midHistory
}

func (s *MeanReversion) Symbol() string { return s.symbol }

func (s *MeanReversion) Orders(_ TickState, bk *book.Book, position int64) ([]Order, error) {
	mid, ok := bk.Mid(s.tick)
	if !ok {
		return nil, nil
	}
	s.hist.Push(mid)
	avg := s.hist.Sum() / int64(s.hist.Len())

	switch {
	case mid < avg-s.tick:
		// price below the mean, buy at the ask to capture the snap back
		ask, ok := bk.BestAsk()
		if !ok {
			return nil, nil
		}
		qty := min64(s.size, risk.AllowedSize(position, s.ceiling, risk.Buy))
		if qty == 0 {
			return nil, nil
		}
		return []Order{{Symbol: s.symbol, Price: ask, Quantity: qty}}, nil
	case mid > avg+s.tick:
		bid, ok := bk.BestBid()
		if !ok {
			return nil, nil
		}
		qty := min64(s.size, risk.AllowedSize(position, s.ceiling, risk.Sell))
		if qty == 0 {
			return nil, nil
		}
		return []Order{{Symbol: s.symbol, Price: bid, Quantity: -qty}}, nil
	}
	return nil, nil
}
