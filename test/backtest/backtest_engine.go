// Package backtest drives the dispatcher over a synthetic tick series with
// a naive crossing-fill model. It is calibration tooling: execution proper
// stays outside the decision layer.
package backtest

import (
	"fmt"

	"quote-engine-go/config"
	"quote-engine-go/engine"
	"quote-engine-go/inventory"
	"quote-engine-go/sim"
	"quote-engine-go/strategy"
)

// Result 回测汇总。
type Result struct {
	Ticks          int
	TotalOrders    int
	TotalFills     int
	FinalPositions map[string]int64
	Cash           int64
	Equity         int64 // cash + 按最后中间价折算的持仓
}

// Engine 逐 tick 评估并用"穿越即成交"的模型维护持仓。
// 买单价格触及最优卖价即按卖价全额成交，卖单对称。
type Engine struct {
	dispatcher *engine.Dispatcher
	gen        *sim.Generator
	positions  *inventory.Book
	cash       int64
	orders     int
	fills      int
}

func NewEngine(cfg config.AppConfig, seed int64) (*Engine, error) {
	d, err := engine.Build(cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("build dispatcher: %w", err)
	}
	return &Engine{
		dispatcher: d,
		gen:        sim.NewGenerator(cfg, seed),
		positions:  inventory.NewBook(),
	}, nil
}

// Run 执行 ticks 个评估周期。
func (e *Engine) Run(ticks int) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("ticks must be > 0")
	}

	var lastState strategy.TickState
	for i := 0; i < ticks; i++ {
		state := e.gen.Next()
		state.Positions = e.positions.Snapshot() // 用回测自己的持仓替换生成器的零仓
		lastState = state

		result, err := e.dispatcher.Evaluate(state)
		if err != nil {
			return nil, fmt.Errorf("tick %d: %w", i, err)
		}
		for _, orders := range result {
			for _, o := range orders {
				e.orders++
				e.tryFill(state, o)
			}
		}
	}

	final := e.positions.Snapshot()
	res := &Result{
		Ticks:          ticks,
		TotalOrders:    e.orders,
		TotalFills:     e.fills,
		FinalPositions: final,
		Cash:           e.cash,
		Equity:         e.cash,
	}
	for sym, pos := range final {
		if bk, ok := lastState.Books[sym]; ok {
			if mid, ok := bk.Mid(1); ok {
				res.Equity += pos * mid
			}
		}
	}
	return res, nil
}

func (e *Engine) tryFill(state strategy.TickState, o strategy.Order) {
	bk, ok := state.Books[o.Symbol]
	if !ok {
		return
	}
	if o.Quantity > 0 {
		ask, ok := bk.BestAsk()
		if !ok || o.Price < ask {
			return
		}
		e.positions.Apply(o.Symbol, o.Quantity)
		e.cash -= o.Quantity * ask
	} else {
		bid, ok := bk.BestBid()
		if !ok || o.Price > bid {
			return
		}
		e.positions.Apply(o.Symbol, o.Quantity)
		e.cash -= o.Quantity * bid
	}
	e.fills++
}
