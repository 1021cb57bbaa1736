package subset

import "github.com/huanfachen/james-go/pkg/james/core"

// Move is a pair (added⊆unselected, deleted⊆selected) applied to a
// Solution. The four spec variants (Addition, Deletion, Swap,
// DisjointMultiSwap) are all represented by this one type, distinguished
// only by the sizes of Added/Deleted.
type Move struct {
	Added   []int
	Deleted []int
}

// NewAdditionMove builds a single-ID addition move.
func NewAdditionMove(id int) *Move { return &Move{Added: []int{id}} }

// NewDeletionMove builds a single-ID deletion move.
func NewDeletionMove(id int) *Move { return &Move{Deleted: []int{id}} }

// NewSwapMove builds a single addition paired with a single deletion.
func NewSwapMove(addID, delID int) *Move {
	return &Move{Added: []int{addID}, Deleted: []int{delID}}
}

// NewDisjointMultiSwapMove builds a move swapping len(added) additions for
// len(deleted) deletions; added and deleted must already be disjoint.
func NewDisjointMultiSwapMove(added, deleted []int) *Move {
	return &Move{Added: append([]int(nil), added...), Deleted: append([]int(nil), deleted...)}
}

// Apply implements core.Move: it removes every Deleted ID and adds every
// Added ID. sol must be a *subset.Solution.
func (m *Move) Apply(sol core.Solution) {
	s := asSubsetSolution(sol)
	for _, id := range m.Deleted {
		s.Deselect(id)
	}
	for _, id := range m.Added {
		s.Select(id)
	}
}

// Undo implements core.Move: it is the exact inverse of Apply, provided no
// other mutation happened in between.
func (m *Move) Undo(sol core.Solution) {
	s := asSubsetSolution(sol)
	for _, id := range m.Added {
		s.Deselect(id)
	}
	for _, id := range m.Deleted {
		s.Select(id)
	}
}

func asSubsetSolution(sol core.Solution) *Solution {
	s, ok := sol.(*Solution)
	if !ok {
		panic("subset: move applied to a non-subset.Solution")
	}
	return s
}
