package strategy

import "quote-engine-go/book"

// MidpointQuoter 以实时中间价为参考对称挂单；中间价缺失时本 tick 不报价。
type MidpointQuoter struct {
	symbol  string
	tick    int64
	size    int64
	ceiling int64
}

func (s *MidpointQuoter) Symbol() string { return s.symbol }

func (s *MidpointQuoter) Orders(_ TickState, bk *book.Book, position int64) ([]Order, error) {
	mid, ok := bk.Mid(s.tick)
	if !ok {
		return nil, nil
	}
	return symmetricQuotes(s.symbol, mid, s.tick, s.size, s.ceiling, position), nil
}
