package sim

import (
	"math/rand"
	"sort"

	"quote-engine-go/book"
	"quote-engine-go/config"
	"quote-engine-go/strategy"
)

// Generator 为配置的所有品种生成随机游走的盘口快照，让引擎在没有外部
// 行情源时也能端到端运行。basket 品种的中间价围绕成分加权和游走，保证
// 溢价信号偶尔越过死区。
type Generator struct {
	rng     *rand.Rand
	symbols []string
	conf    map[string]config.SymbolConfig
	mids    map[string]int64
}

// NewGenerator 用固定种子可得到确定性序列。
func NewGenerator(cfg config.AppConfig, seed int64) *Generator {
	symbols := make([]string, 0, len(cfg.Symbols))
	for sym := range cfg.Symbols {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	g := &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		symbols: symbols,
		conf:    cfg.Symbols,
		mids:    make(map[string]int64, len(symbols)),
	}
	for _, sym := range symbols {
		sc := cfg.Symbols[sym]
		switch {
		case sc.Anchor > 0:
			g.mids[sym] = sc.Anchor
		case len(sc.Weights) > 0:
			// 由成分推导，首 tick 前成分已有初值
			g.mids[sym] = 0
		default:
			g.mids[sym] = 100 * sc.Tick * 10
		}
	}
	return g
}

// Next 产生下一个 tick 快照。持仓恒为 0：成交归执行方管。
func (g *Generator) Next() strategy.TickState {
	state := strategy.TickState{
		Books:     make(map[string]*book.Book, len(g.symbols)),
		Positions: map[string]int64{},
	}

	// 先游走所有非 basket 品种
	for _, sym := range g.symbols {
		if len(g.conf[sym].Weights) > 0 {
			continue
		}
		g.mids[sym] += g.step(g.conf[sym].Tick)
		state.Books[sym] = g.makeBook(sym)
	}
	// basket 中间价锚定合成值再加噪声
	for _, sym := range g.symbols {
		weights := g.conf[sym].Weights
		if len(weights) == 0 {
			continue
		}
		var syn int64
		for leg, w := range weights {
			syn += g.mids[leg] * w
		}
		g.mids[sym] = syn + g.step(g.conf[sym].Tick)*3
		state.Books[sym] = g.makeBook(sym)
	}
	return state
}

func (g *Generator) step(tick int64) int64 {
	return (g.rng.Int63n(3) - 1) * tick // -tick, 0, +tick
}

func (g *Generator) makeBook(sym string) *book.Book {
	tick := g.conf[sym].Tick
	mid := g.mids[sym]
	bk := book.New()
	for i := int64(1); i <= 3; i++ {
		bk.Bids[mid-i*tick] = g.rng.Int63n(20) + 1
		bk.Asks[mid+i*tick] = g.rng.Int63n(20) + 1
	}
	return bk
}
