package book

// Level is the FIFO queue of resting orders at one exact price on one
// side. It is an intrusive doubly-linked list: the queue links live on
// the Order records themselves (see Order.prev/next), so the level does
// no allocation per order.
//
// Position in the queue is arrival order; head is the oldest order and
// is always matched first.
type Level struct {
	Price       int64
	head, tail  *Order
	totalVolume uint64
	orderCount  int
}

func newLevel(price int64) *Level {
	return &Level{Price: price}
}

// PushBack appends order to the tail of the queue.
func (l *Level) PushBack(o *Order) {
	o.prev = l.tail
	o.next = nil
	if l.tail != nil {
		l.tail.next = o
	} else {
		l.head = o
	}
	l.tail = o
	l.totalVolume += o.Remaining
	l.orderCount++
}

// PopFrontOrRemove unlinks order from the queue, wherever it sits, by
// splicing its predecessor and successor links. Used both to drain the
// head once Fill has emptied it and to remove an arbitrary resting
// order on cancellation.
func (l *Level) PopFrontOrRemove(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		l.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		l.tail = o.prev
	}
	o.prev = nil
	o.next = nil

	l.totalVolume -= o.Remaining
	l.orderCount--
}

// Fill reduces a resting order's remaining quantity by qty and removes
// it from the queue if that exhausts it. qty must not exceed o.Remaining.
func (l *Level) Fill(o *Order, qty uint64) {
	o.Reduce(qty)
	l.totalVolume -= qty
	if o.IsFilled() {
		l.PopFrontOrRemove(o)
	}
}

// Front returns the oldest resting order. Only valid when !Empty().
func (l *Level) Front() *Order {
	return l.head
}

func (l *Level) Empty() bool {
	return l.head == nil
}

func (l *Level) TotalVolume() uint64 {
	return l.totalVolume
}

func (l *Level) OrderCount() int {
	return l.orderCount
}

// Each walks the queue head to tail, calling fn for each resting order.
// It stops early if fn returns false. Read-only; never call during
// mutation.
func (l *Level) Each(fn func(o *Order) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n) {
			return
		}
	}
}
