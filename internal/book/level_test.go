package book

import "testing"

func TestLevelPushBackFIFO(t *testing.T) {
	lvl := newLevel(10000)
	o1 := NewLimitOrder(1, Buy, 10000, 10)
	o2 := NewLimitOrder(2, Buy, 10000, 20)

	lvl.PushBack(o1)
	lvl.PushBack(o2)

	if lvl.Front() != o1 {
		t.Fatalf("expected o1 at head, got %v", lvl.Front())
	}
	if lvl.OrderCount() != 2 {
		t.Fatalf("expected order count 2, got %d", lvl.OrderCount())
	}
	if lvl.TotalVolume() != 30 {
		t.Fatalf("expected total volume 30, got %d", lvl.TotalVolume())
	}
}

func TestLevelFillPartialKeepsOrderResting(t *testing.T) {
	lvl := newLevel(10000)
	o := NewLimitOrder(1, Sell, 10000, 50)
	lvl.PushBack(o)

	lvl.Fill(o, 20)

	if lvl.Empty() {
		t.Fatalf("expected order to still be resting after partial fill")
	}
	if o.Remaining != 30 {
		t.Fatalf("expected remaining 30, got %d", o.Remaining)
	}
	if lvl.TotalVolume() != 30 {
		t.Fatalf("expected total volume to track the partial fill, got %d", lvl.TotalVolume())
	}
}

func TestLevelFillExhaustsAndRemoves(t *testing.T) {
	lvl := newLevel(10000)
	o := NewLimitOrder(1, Sell, 10000, 50)
	lvl.PushBack(o)

	lvl.Fill(o, 50)

	if !lvl.Empty() {
		t.Fatalf("expected level to be empty after exhausting the only order")
	}
	if lvl.TotalVolume() != 0 || lvl.OrderCount() != 0 {
		t.Fatalf("expected zeroed aggregates, got volume=%d count=%d", lvl.TotalVolume(), lvl.OrderCount())
	}
	if o.Remaining != 0 {
		t.Fatalf("expected order fully filled, got remaining=%d", o.Remaining)
	}
}

func TestLevelPopFrontOrRemoveArbitrary(t *testing.T) {
	lvl := newLevel(10000)
	o1 := NewLimitOrder(1, Buy, 10000, 10)
	o2 := NewLimitOrder(2, Buy, 10000, 20)
	o3 := NewLimitOrder(3, Buy, 10000, 30)
	lvl.PushBack(o1)
	lvl.PushBack(o2)
	lvl.PushBack(o3)

	lvl.PopFrontOrRemove(o2) // cancel the middle order

	if lvl.OrderCount() != 2 {
		t.Fatalf("expected 2 orders left, got %d", lvl.OrderCount())
	}
	if lvl.TotalVolume() != 40 {
		t.Fatalf("expected total volume 40, got %d", lvl.TotalVolume())
	}
	if o1.Remaining == 0 || o1 == nil {
		t.Fatalf("o1 should be untouched")
	}

	seen := []uint64{}
	for n := lvl.Front(); n != nil; n = nextOf(n) {
		seen = append(seen, n.ID)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 3 {
		t.Fatalf("expected FIFO order [1,3], got %v", seen)
	}
}

// nextOf exposes the intrusive link for the test above without making
// it part of the package's public surface.
func nextOf(o *Order) *Order {
	return o.next
}
