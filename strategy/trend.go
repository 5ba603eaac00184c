package strategy

import (
	"quote-engine-go/book"
	"quote-engine-go/risk"
)

// TrendFollower compares a short and a long moving average of midpoints and
// trades in the direction of the crossover. History capacity equals the
// long window; until it is full the strategy emits nothing (insufficient
// data, not an error). Equal averages emit nothing.
type TrendFollower struct {
	symbol  string
	tick    int64
	size    int64
	ceiling int64
	short   int
	long    int
	hist    *midHistory
}

func (s *TrendFollower) Symbol() string { return s.symbol }

func (s *TrendFollower) Orders(_ TickState, bk *book.Book, position int64) ([]Order, error) {
	mid, ok := bk.Mid(s.tick)
	if !ok {
		return nil, nil
	}
	s.hist.Push(mid)
	if s.hist.Len() < s.long {
		return nil, nil
	}

	// 等权均线比较用交叉相乘避免除法取整误差。
	shortSum := s.hist.TailSum(s.short)
	longSum := s.hist.Sum()
	lhs := shortSum * int64(s.long)
	rhs := longSum * int64(s.short)

	switch {
	case lhs > rhs:
		ask, ok := bk.BestAsk()
		if !ok {
			return nil, nil
		}
		qty := min64(s.size, risk.AllowedSize(position, s.ceiling, risk.Buy))
		if qty == 0 {
			return nil, nil
		}
		return []Order{{Symbol: s.symbol, Price: ask, Quantity: qty}}, nil
	case lhs < rhs:
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
