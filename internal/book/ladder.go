package book

import "github.com/google/btree"

const btreeDegree = 32

// Ladder is one side's ordered collection of price levels, backed by an
// ordered B-tree rather than a hash map (best-price lookup needs to be
// O(log L), which a hash map can't give us).
type Ladder struct {
	tree *btree.BTreeG[*Level]
}

// NewBidLadder returns a ladder ordered descending by price (the
// highest bid sorts first).
func NewBidLadder() *Ladder {
	return &Ladder{
		tree: btree.NewG(btreeDegree, func(a, b *Level) bool { return a.Price > b.Price }),
	}
}

// NewAskLadder returns a ladder ordered ascending by price (the lowest
// ask sorts first).
func NewAskLadder() *Ladder {
	return &Ladder{
		tree: btree.NewG(btreeDegree, func(a, b *Level) bool { return a.Price < b.Price }),
	}
}

// EntryOrCreate returns the level at price, creating and inserting an
// empty one if absent.
func (ld *Ladder) EntryOrCreate(price int64) *Level {
	if lvl, ok := ld.tree.Get(&Level{Price: price}); ok {
		return lvl
	}
	lvl := newLevel(price)
	ld.tree.ReplaceOrInsert(lvl)
	return lvl
}

func (ld *Ladder) Find(price int64) (*Level, bool) {
	return ld.tree.Get(&Level{Price: price})
}

// EraseEmpty removes the entry at price. Callers must only call this
// once the level is actually empty.
func (ld *Ladder) EraseEmpty(price int64) {
	ld.tree.Delete(&Level{Price: price})
}

// PeekBest returns the best-priced level (highest bid or lowest ask)
// and true, or (nil, false) if the ladder is empty.
func (ld *Ladder) PeekBest() (*Level, bool) {
	return ld.tree.Min()
}

func (ld *Ladder) Depth() int {
	return ld.tree.Len()
}

func (ld *Ladder) Empty() bool {
	return ld.tree.Len() == 0
}

// Levels returns up to n levels, best price first. The Less function
// already encodes side ordering, so a plain Ascend walk works for both
// sides.
func (ld *Ladder) Levels(n int) []*Level {
	size := n
	if depth := ld.tree.Len(); depth < size {
		size = depth
	}
	out := make([]*Level, 0, size)
	ld.tree.Ascend(func(lvl *Level) bool {
		if len(out) >= n {
			return false
		}
		out = append(out, lvl)
		return true
	})
	return out
}
