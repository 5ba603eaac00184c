package sim

import (
	"errors"
	"sort"

	"quote-engine-go/engine"
	"quote-engine-go/infrastructure/logger"
	"quote-engine-go/risk"
	"quote-engine-go/strategy"
)

// OrderSink 接收本层产生的报价指令；真实实现是撮合/执行方。
type OrderSink interface {
	Submit(o strategy.Order) error
}

// Runner 将行情 -> 调度器 -> 下单串起来（简化版，不含真实执行）。
// Guard 为下游兜底校验，拦截的单记日志后丢弃，不影响同 tick 其他单。
type Runner struct {
	Dispatcher *engine.Dispatcher
	Guard      risk.Guard
	Sink       OrderSink
	Log        *logger.Logger
}

// OnTick 评估一个 tick 并下发全部通过校验的指令。
func (r *Runner) OnTick(state strategy.TickState) error {
	if r.Dispatcher == nil || r.Sink == nil {
		return errors.New("runner not initialized")
	}
	log := r.Log
	if log == nil {
		log = logger.Nop()
	}

	result, evalErr := r.Dispatcher.Evaluate(state)

	// map 遍历无序，固定品种顺序让回放可复现
	symbols := make([]string, 0, len(result))
	for sym := range result {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	total := 0
	for _, sym := range symbols {
		for _, o := range result[sym] {
			if r.Guard != nil {
				if err := r.Guard.PreOrder(o.Symbol, o.Quantity); err != nil {
					log.LogError(err, map[string]interface{}{"symbol": o.Symbol})
					continue
				}
			}
			if err := r.Sink.Submit(o); err != nil {
				return err
			}
			log.LogOrder(o.Symbol, o.Price, o.Quantity)
			total++
		}
	}
	log.LogTick(len(state.Books), total)
	return evalErr
}

// Collector 是积攒指令的测试/干跑 Sink。
type Collector struct {
	Orders []strategy.Order
}

func (c *Collector) Submit(o strategy.Order) error {
	c.Orders = append(c.Orders, o)
	return nil
}
