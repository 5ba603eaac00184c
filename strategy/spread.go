package strategy

import "quote-engine-go/book"

// SpreadQuoter is a midpoint quoter whose desired size grows with the
// observed bid-ask spread: a wider book means more edge per fill, so more
// size is offered. Extra size is spread/sizeStep, still clamped by the
// position ceiling. One-sided books contribute zero extra size.
type SpreadQuoter struct {
	symbol   string
	tick     int64
	size     int64
	sizeStep int64
	ceiling  int64
}

func (s *SpreadQuoter) Symbol() string { return s.symbol }

func (s *SpreadQuoter) Orders(_ TickState, bk *book.Book, position int64) ([]Order, error) {
	mid, ok := bk.Mid(s.tick)
	if !ok {
		return nil, nil
	}
	want := s.size + bk.Spread()/s.sizeStep
	return symmetricQuotes(s.symbol, mid, s.tick, want, s.ceiling, position), nil
}
