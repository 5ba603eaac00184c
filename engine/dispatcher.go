package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"quote-engine-go/book"
	"quote-engine-go/infrastructure/logger"
	"quote-engine-go/metrics"
	"quote-engine-go/strategy"
)

// Dispatcher routes each tick's per-symbol book to the registered strategy
// and aggregates the resulting order lists. Evaluation is synchronous and
// single-threaded: one tick completes fully before the result is returned.
type Dispatcher struct {
	strategies map[string]strategy.Strategy
	logger     *logger.Logger
}

// New builds a Dispatcher from strategy instances keyed by their symbol.
// log 可为 nil，此时丢弃日志。
func New(strategies []strategy.Strategy, log *logger.Logger) (*Dispatcher, error) {
	if log == nil {
		log = logger.Nop()
	}
	bySymbol := make(map[string]strategy.Strategy, len(strategies))
	for _, s := range strategies {
		if s == nil {
			return nil, errors.New("nil strategy")
		}
		if _, dup := bySymbol[s.Symbol()]; dup {
			return nil, fmt.Errorf("duplicate strategy for symbol %s", s.Symbol())
		}
		bySymbol[s.Symbol()] = s
	}
	return &Dispatcher{strategies: bySymbol, logger: log}, nil
}

// Evaluate runs one tick. The result has exactly one entry per symbol in
// state.Books; symbols without a registered strategy map to an empty list.
// A failing strategy is isolated: its symbol gets an empty list, every
// other symbol is still evaluated, and the joined error is returned
// alongside the complete result.
func (d *Dispatcher) Evaluate(state strategy.TickState) (map[string][]strategy.Order, error) {
	metrics.TicksTotal.Inc()

	result := make(map[string][]strategy.Order, len(state.Books))
	var errs []error
	for symbol, bk := range state.Books {
		strat, ok := d.strategies[symbol]
		if !ok {
			result[symbol] = []strategy.Order{}
			continue
		}
		orders, err := evaluateOne(strat, state, bk)
		if err != nil {
			metrics.StrategyErrors.WithLabelValues(symbol).Inc()
			d.logger.Warn("strategy evaluation failed",
				zap.String("symbol", symbol), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", symbol, err))
			result[symbol] = []strategy.Order{}
			continue
		}
		if orders == nil {
			orders = []strategy.Order{}
		}
		for _, o := range orders {
			metrics.OrdersEmitted.WithLabelValues(o.Symbol).Inc()
		}
		result[symbol] = orders
	}
	return result, errors.Join(errs...)
}

// evaluateOne 隔离单个策略的失败，panic 一并转为错误。
func evaluateOne(s strategy.Strategy, state strategy.TickState, bk *book.Book) (orders []strategy.Order, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy panic: %v", r)
		}
	}()
	return s.Orders(state, bk, state.Position(s.Symbol()))
}
