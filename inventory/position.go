package inventory

import "sync"

// Book 维护各品种净仓位。实现 risk.PositionSource，供回测和下游
// 校验使用；策略层本身只读取 tick 快照里的持仓，从不直接改它。
type Book struct {
	mu  sync.RWMutex
	net map[string]int64
}

func NewBook() *Book {
	return &Book{net: make(map[string]int64)}
}

// Apply 根据成交数量调整仓位，deltaQty 正买负卖。
func (b *Book) Apply(symbol string, deltaQty int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.net[symbol] += deltaQty
	if b.net[symbol] == 0 {
		delete(b.net, symbol)
	}
}

func (b *Book) Position(symbol string) int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.net[symbol]
}

// Snapshot 返回当前持仓的拷贝。
func (b *Book) Snapshot() map[string]int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	res := make(map[string]int64, len(b.net))
	for sym, pos := range b.net {
		res[sym] = pos
	}
	return res
}
