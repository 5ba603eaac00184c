package strategy

import "quote-engine-go/book"

// AnchorQuoter quotes symmetrically around a fixed reference price
// calibrated off-line. It never reads the book, so it keeps quoting even
// when both sides are empty.
type AnchorQuoter struct {
	symbol  string
	anchor  int64
	tick    int64
	size    int64
	ceiling int64
}

func (s *AnchorQuoter) Symbol() string { return s.symbol }

func (s *AnchorQuoter) Orders(_ TickState, _ *book.Book, position int64) ([]Order, error) {
	return symmetricQuotes(s.symbol, s.anchor, s.tick, s.size, s.ceiling, position), nil
}
