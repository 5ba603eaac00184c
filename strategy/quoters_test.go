package strategy

import (
	"testing"

	"quote-engine-go/book"
)

func twoSided(bid, ask int64) *book.Book {
	return &book.Book{
		Bids: map[int64]int64{bid: 10},
		Asks: map[int64]int64{ask: 10},
	}
}

func mustNew(t *testing.T, symbol string, p Params) Strategy {
	t.Helper()
	s, err := New(symbol, p)
	if err != nil {
		t.Fatalf("new strategy: %v", err)
	}
	return s
}

func TestAnchorQuoter(t *testing.T) {
	s := mustNew(t, "SUDOWOODO", Params{
		Kind: KindAnchor, Ceiling: 50, Tick: 2, DefaultSize: 5, Anchor: 10000,
	})

	orders, err := s.Orders(TickState{}, book.New(), 0)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].Price != 9998 || orders[0].Quantity != 5 {
		t.Fatalf("buy leg = %+v", orders[0])
	}
	if orders[1].Price != 10002 || orders[1].Quantity != -5 {
		t.Fatalf("sell leg = %+v", orders[1])
	}
}

func TestAnchorQuoterClampsAndOmitsSides(t *testing.T) {
	s := mustNew(t, "SUDOWOODO", Params{
		Kind: KindAnchor, Ceiling: 50, Tick: 2, DefaultSize: 5, Anchor: 10000,
	})

	// 多头到顶：买腿省略，卖腿保留
	orders, _ := s.Orders(TickState{}, book.New(), 50)
	if len(orders) != 1 || orders[0].Quantity != -5 {
		t.Fatalf("at +ceiling got %+v, want single sell", orders)
	}

	// buy side clamps to the remaining room
	orders, _ = s.Orders(TickState{}, book.New(), 47)
	if len(orders) != 2 || orders[0].Quantity != 3 {
		t.Fatalf("near ceiling got %+v, want buy of 3", orders)
	}
}

func TestMidpointQuoter(t *testing.T) {
	s := mustNew(t, "DROWZEE", Params{
		Kind: KindMidpoint, Ceiling: 50, Tick: 2, DefaultSize: 5,
	})

	orders, err := s.Orders(TickState{}, twoSided(100, 104), 0)
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].Price != 100 || orders[1].Price != 104 {
		t.Fatalf("quotes around mid: %+v", orders)
	}

	// 空书不报价
	orders, err = s.Orders(TickState{}, book.New(), 0)
	if err != nil || orders != nil {
		t.Fatalf("empty book: orders=%v err=%v", orders, err)
	}
}

func TestMidpointQuoterOneSidedFallback(t *testing.T) {
	s := mustNew(t, "DROWZEE", Params{
		Kind: KindMidpoint, Ceiling: 50, Tick: 2, DefaultSize: 5,
	})
	bk := &book.Book{Asks: map[int64]int64{104: 3}}

	// mid = ask - tick = 102
	orders, _ := s.Orders(TickState{}, bk, 0)
	if len(orders) != 2 || orders[0].Price != 100 || orders[1].Price != 104 {
		t.Fatalf("one-sided fallback quotes: %+v", orders)
	}
}

func TestSpreadQuoterSizeGrowsWithSpread(t *testing.T) {
	s := mustNew(t, "ABRA", Params{
		Kind: KindSpread, Ceiling: 50, Tick: 2, DefaultSize: 5, SizeStep: 5,
	})

	// spread 4 -> no extra size
	orders, _ := s.Orders(TickState{}, twoSided(100, 104), 0)
	if len(orders) != 2 || orders[0].Quantity != 5 {
		t.Fatalf("narrow book: %+v", orders)
	}

	// spread 20 -> default + 20/5 = 9
	orders, _ = s.Orders(TickState{}, twoSided(100, 120), 0)
	if len(orders) != 2 || orders[0].Quantity != 9 || orders[1].Quantity != -9 {
		t.Fatalf("wide book: %+v", orders)
	}

	// 加码后仍受仓位上限约束
	orders, _ = s.Orders(TickState{}, twoSided(100, 120), 44)
	if orders[0].Quantity != 6 {
		t.Fatalf("clamped wide book: %+v", orders)
	}
}

// 任何报价策略的 clamp 后数量都不能把仓位推出 [-ceiling, +ceiling]。
func TestQuotersNeverBreachCeiling(t *testing.T) {
	params := []Params{
		{Kind: KindAnchor, Ceiling: 10, Tick: 1, DefaultSize: 30, Anchor: 100},
		{Kind: KindMidpoint, Ceiling: 10, Tick: 1, DefaultSize: 30},
		{Kind: KindSpread, Ceiling: 10, Tick: 1, DefaultSize: 30, SizeStep: 1},
	}
	for _, p := range params {
		s := mustNew(t, "X", p)
		for pos := int64(-10); pos <= 10; pos++ {
			orders, err := s.Orders(TickState{}, twoSided(95, 105), pos)
			if err != nil {
				t.Fatalf("%s: %v", p.Kind, err)
			}
			for _, o := range orders {
				next := pos + o.Quantity
				if next > 10 || next < -10 {
					t.Fatalf("%s at pos %d: order %+v breaches ceiling", p.Kind, pos, o)
				}
			}
		}
	}
}
