package strategy

import "quote-engine-go/risk"

// symmetricQuotes 围绕参考价对称挂双边限价单：买 ref-tick，卖 ref+tick。
// 每侧独立 clamp 到仓位上限，clamp 后为 0 的一侧直接省略。
func symmetricQuotes(symbol string, ref, tick, want, ceiling, position int64) []Order {
	orders := make([]Order, 0, 2)
	if buy := min64(want, risk.AllowedSize(position, ceiling, risk.Buy)); buy > 0 {
		orders = append(orders, Order{Symbol: symbol, Price: ref - tick, Quantity: buy})
	}
	if sell := min64(want, risk.AllowedSize(position, ceiling, risk.Sell)); sell > 0 {
		orders = append(orders, Order{Symbol: symbol, Price: ref + tick, Quantity: -sell})
	}
	return orders
}
