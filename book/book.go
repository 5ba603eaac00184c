package book

// Book 表示单个品种的盘口快照：价格 -> 挂单数量。
// 快照只读，不保证任何遍历顺序，派生值按需重算。
type Book struct {
	Bids map[int64]int64
	Asks map[int64]int64
}

func New() *Book {
	return &Book{
		Bids: make(map[int64]int64),
		Asks: make(map[int64]int64),
	}
}

// BestBid 返回最高买价；买盘为空时 ok 为 false。
func (b *Book) BestBid() (price int64, ok bool) {
	for p := range b.Bids {
		if !ok || p > price {
			price, ok = p, true
		}
	}
	return price, ok
}

// BestAsk 返回最低卖价；卖盘为空时 ok 为 false。
func (b *Book) BestAsk() (price int64, ok bool) {
	for p := range b.Asks {
		if !ok || p < price {
			price, ok = p, true
		}
	}
	return price, ok
}

// Mid returns the floor average of best bid and best ask. A one-sided book
// falls back to the present side offset by tick (ask-tick or bid+tick).
// ok is false only when both sides are empty; callers treat that as
// "cannot quote this tick", not as an error.
func (b *Book) Mid(tick int64) (int64, bool) {
	bid, hasBid := b.BestBid()
	ask, hasAsk := b.BestAsk()
	switch {
	case !hasBid && !hasAsk:
		return 0, false
	case !hasBid:
		return ask - tick, true
	case !hasAsk:
		return bid + tick, true
	}
	return (bid + ask) / 2, true
}

// Spread 返回买卖价差；任一侧缺失时为 0。
func (b *Book) Spread() int64 {
	bid, hasBid := b.BestBid()
	ask, hasAsk := b.BestAsk()
	if !hasBid || !hasAsk {
		return 0
	}
	return ask - bid
}
