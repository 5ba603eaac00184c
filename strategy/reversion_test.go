package strategy

import (
	"testing"

	"quote-engine-go/book"
)

func feedMids(t *testing.T, s Strategy, mids []int64) {
	t.Helper()
	for _, m := range mids {
		// 两侧等距盘口，中间价恰为 m
		if _, err := s.Orders(TickState{}, twoSided(m-1, m+1), 0); err != nil {
			t.Fatalf("warmup tick: %v", err)
		}
	}
}

func TestMeanReversionSellsAboveBand(t *testing.T) {
	s := mustNew(t, "PRODUCT2", Params{
		Kind: KindReversion, Ceiling: 100, Tick: 1, DefaultSize: 10, Window: 10,
	})
	feedMids(t, s, []int64{100, 100, 100, 100, 100, 100, 100, 100, 100})

	// 第 10 个样本 102：均值 100，偏离 2 > 1，应在最优买价卖出
	orders, err := s.Orders(TickState{}, twoSided(101, 103), 0)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	if orders[0].Price != 101 || orders[0].Quantity != -10 {
		t.Fatalf("sell order = %+v, want price 101 qty -10", orders[0])
	}
}

func TestMeanReversionBuysBelowBand(t *testing.T) {
	s := mustNew(t, "PRODUCT2", Params{
		Kind: KindReversion, Ceiling: 100, Tick: 1, DefaultSize: 10, Window: 10,
	})
	feedMids(t, s, []int64{100, 100, 100, 100, 100})

	orders, _ := s.Orders(TickState{}, twoSided(95, 97), 0)
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	if orders[0].Price != 97 || orders[0].Quantity != 10 {
		t.Fatalf("buy order = %+v, want price 97 qty 10", orders[0])
	}
}

func TestMeanReversionSilentWithinBand(t *testing.T) {
	s := mustNew(t, "PRODUCT2", Params{
		Kind: KindReversion, Ceiling: 100, Tick: 1, DefaultSize: 10, Window: 10,
	})
	feedMids(t, s, []int64{100, 100, 100})

	// 偏离恰为 1，不越过带宽
	orders, _ := s.Orders(TickState{}, twoSided(100, 102), 0)
	if orders != nil {
		t.Fatalf("within band, got %+v", orders)
	}
}

func TestMeanReversionClampedToCeiling(t *testing.T) {
	s := mustNew(t, "PRODUCT2", Params{
		Kind: KindReversion, Ceiling: 5, Tick: 1, DefaultSize: 10, Window: 10,
	})
	feedMids(t, s, []int64{100, 100, 100, 100})

	// 空头已到底，卖腿 clamp 到 0，不出单
	orders, _ := s.Orders(TickState{}, twoSided(104, 106), -5)
	if orders != nil {
		t.Fatalf("at -ceiling, got %+v", orders)
	}
}

func TestMeanReversionEmptyBookSkipsTick(t *testing.T) {
	s := mustNew(t, "PRODUCT2", Params{
		Kind: KindReversion, Ceiling: 100, Tick: 1, DefaultSize: 10, Window: 10,
	})
	orders, err := s.Orders(TickState{}, book.New(), 0)
	if err != nil || orders != nil {
		t.Fatalf("empty book: orders=%v err=%v", orders, err)
	}
}
