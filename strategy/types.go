package strategy

import "quote-engine-go/book"

// Order 是一条报价指令：正数量买入，负数量卖出。
// 单个 tick 内生成后即交给执行方，本层不保留任何订单状态。
type Order struct {
	Symbol   string
	Price    int64
	Quantity int64
}

// TickState is the materialized per-tick input: every known instrument's
// book snapshot plus the caller's current signed inventory. The strategy
// layer only reads it; absent position entries mean zero.
type TickState struct {
	Books     map[string]*book.Book
	Positions map[string]int64
}

// Position 返回品种当前净仓位，缺省为 0。
func (s TickState) Position(symbol string) int64 {
	return s.Positions[symbol]
}

// Strategy 每个 tick 为一个品种生成零或多条报价。
// bk 是该品种自己的盘口，state 供跨品种策略（如篮子套利）查询成分。
// 空书、数据不足等无信号情形返回 (nil, nil)，不是错误。
type Strategy interface {
	Symbol() string
	Orders(state TickState, bk *book.Book, position int64) ([]Order, error)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
