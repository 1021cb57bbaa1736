package subset

import (
	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/problem"
)

// Neighbourhood generates subset moves for a given solution. The signatures
// match search.Neighbourhood exactly (core.Solution/core.Move/problem.RNG)
// so a *subset.Solution-based neighbourhood can be handed straight to any
// algo.Stepper without an adapter.
type Neighbourhood interface {
	// GetRandomMove returns one random applicable move, or nil if the
	// neighbourhood has no candidates for sol. sol must be a
	// *subset.Solution.
	GetRandomMove(sol core.Solution, rng problem.RNG) core.Move

	// GetAllMoves returns every applicable move for sol, or an empty slice
	// if none exist. sol must be a *subset.Solution.
	GetAllMoves(sol core.Solution) []core.Move
}

// base holds the optional set of IDs a neighbourhood never touches.
type base struct {
	fixed map[int]struct{}
}

func newBase(fixedIDs []int) base {
	fixed := make(map[int]struct{}, len(fixedIDs))
	for _, id := range fixedIDs {
		fixed[id] = struct{}{}
	}
	return base{fixed: fixed}
}

// addCandidates returns unselected \ fixed, sorted for determinism.
func (b base) addCandidates(sol *Solution) []int {
	return b.filterFixed(sol.Unselected())
}

// removeCandidates returns selected \ fixed, sorted for determinism.
func (b base) removeCandidates(sol *Solution) []int {
	return b.filterFixed(sol.Selected())
}

func (b base) filterFixed(ids []int) []int {
	if len(b.fixed) == 0 {
		return ids
	}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, fixed := b.fixed[id]; !fixed {
			out = append(out, id)
		}
	}
	return out
}

// SingleAdditionNeighbourhood generates single-ID Addition moves.
type SingleAdditionNeighbourhood struct{ base }

// NewSingleAdditionNeighbourhood builds a neighbourhood that never touches
// any ID in fixedIDs.
func NewSingleAdditionNeighbourhood(fixedIDs ...int) *SingleAdditionNeighbourhood {
	return &SingleAdditionNeighbourhood{newBase(fixedIDs)}
}

// GetRandomMove implements Neighbourhood.
func (n *SingleAdditionNeighbourhood) GetRandomMove(sol core.Solution, rng problem.RNG) core.Move {
	cands := n.addCandidates(asSubsetSolution(sol))
	if len(cands) == 0 {
		return nil
	}
	return NewAdditionMove(cands[rng.IntN(len(cands))])
}

// GetAllMoves implements Neighbourhood.
func (n *SingleAdditionNeighbourhood) GetAllMoves(sol core.Solution) []core.Move {
	cands := n.addCandidates(asSubsetSolution(sol))
	moves := make([]core.Move, 0, len(cands))
	for _, id := range cands {
		moves = append(moves, NewAdditionMove(id))
	}
	return moves
}

// SingleDeletionNeighbourhood generates single-ID Deletion moves.
type SingleDeletionNeighbourhood struct{ base }

// NewSingleDeletionNeighbourhood builds a neighbourhood that never touches
// any ID in fixedIDs.
func NewSingleDeletionNeighbourhood(fixedIDs ...int) *SingleDeletionNeighbourhood {
	return &SingleDeletionNeighbourhood{newBase(fixedIDs)}
}

// GetRandomMove implements Neighbourhood.
func (n *SingleDeletionNeighbourhood) GetRandomMove(sol core.Solution, rng problem.RNG) core.Move {
	cands := n.removeCandidates(asSubsetSolution(sol))
	if len(cands) == 0 {
		return nil
	}
	return NewDeletionMove(cands[rng.IntN(len(cands))])
}

// GetAllMoves implements Neighbourhood.
func (n *SingleDeletionNeighbourhood) GetAllMoves(sol core.Solution) []core.Move {
	cands := n.removeCandidates(asSubsetSolution(sol))
	moves := make([]core.Move, 0, len(cands))
	for _, id := range cands {
		moves = append(moves, NewDeletionMove(id))
	}
	return moves
}

// SingleSwapNeighbourhood generates single addition/deletion pair Swap
// moves.
type SingleSwapNeighbourhood struct{ base }

// NewSingleSwapNeighbourhood builds a neighbourhood that never touches any
// ID in fixedIDs.
func NewSingleSwapNeighbourhood(fixedIDs ...int) *SingleSwapNeighbourhood {
	return &SingleSwapNeighbourhood{newBase(fixedIDs)}
}

// GetRandomMove implements Neighbourhood.
func (n *SingleSwapNeighbourhood) GetRandomMove(sol core.Solution, rng problem.RNG) core.Move {
	s := asSubsetSolution(sol)
	addCands := n.addCandidates(s)
	delCands := n.removeCandidates(s)
	if len(addCands) == 0 || len(delCands) == 0 {
		return nil
	}
	return NewSwapMove(addCands[rng.IntN(len(addCands))], delCands[rng.IntN(len(delCands))])
}

// GetAllMoves implements Neighbourhood.
func (n *SingleSwapNeighbourhood) GetAllMoves(sol core.Solution) []core.Move {
	s := asSubsetSolution(sol)
	addCands := n.addCandidates(s)
	delCands := n.removeCandidates(s)
	moves := make([]core.Move, 0, len(addCands)*len(delCands))
	for _, a := range addCands {
		for _, d := range delCands {
			moves = append(moves, NewSwapMove(a, d))
		}
	}
	return moves
}

// DisjointMultiSwapNeighbourhood generates swaps of k disjoint additions
// against k disjoint deletions.
type DisjointMultiSwapNeighbourhood struct {
	base
	k int
}

// NewDisjointMultiSwapNeighbourhood builds a k-swap neighbourhood. k must
// be at least 1; a smaller value is a contract violation and panics.
func NewDisjointMultiSwapNeighbourhood(k int, fixedIDs ...int) *DisjointMultiSwapNeighbourhood {
	if k < 1 {
		panic("subset: DisjointMultiSwapNeighbourhood requires k >= 1")
	}
	return &DisjointMultiSwapNeighbourhood{base: newBase(fixedIDs), k: k}
}

// GetRandomMove implements Neighbourhood. It returns nil if either
// candidate set has fewer than k members.
func (n *DisjointMultiSwapNeighbourhood) GetRandomMove(sol core.Solution, rng problem.RNG) core.Move {
	s := asSubsetSolution(sol)
	addCands := n.addCandidates(s)
	delCands := n.removeCandidates(s)
	if len(addCands) < n.k || len(delCands) < n.k {
		return nil
	}
	added := sampleDistinct(addCands, n.k, rng)
	deleted := sampleDistinct(delCands, n.k, rng)
	return NewDisjointMultiSwapMove(added, deleted)
}

// GetAllMoves implements Neighbourhood: every k-combination of additions
// paired with every k-combination of deletions.
func (n *DisjointMultiSwapNeighbourhood) GetAllMoves(sol core.Solution) []core.Move {
	s := asSubsetSolution(sol)
	addCands := n.addCandidates(s)
	delCands := n.removeCandidates(s)
	if len(addCands) < n.k || len(delCands) < n.k {
		return nil
	}
	addCombos := combinations(addCands, n.k)
	delCombos := combinations(delCands, n.k)
	moves := make([]core.Move, 0, len(addCombos)*len(delCombos))
	for _, a := range addCombos {
		for _, d := range delCombos {
			moves = append(moves, NewDisjointMultiSwapMove(a, d))
		}
	}
	return moves
}

// combinations enumerates every k-element subset of items, preserving
// items' relative order within each subset.
func combinations(items []int, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	if k > len(items) {
		return nil
	}
	var out [][]int
	var pick func(start int, chosen []int)
	pick = func(start int, chosen []int) {
		if len(chosen) == k {
			out = append(out, append([]int(nil), chosen...))
			return
		}
		for i := start; i < len(items); i++ {
			pick(i+1, append(chosen, items[i]))
		}
	}
	pick(0, make([]int, 0, k))
	return out
}

// sampleDistinct draws k distinct elements from items uniformly at random
// via partial Fisher-Yates, without mutating items.
func sampleDistinct(items []int, k int, rng problem.RNG) []int {
	pool := append([]int(nil), items...)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return append([]int(nil), pool[:k]...)
}

var _ core.Move = (*Move)(nil)
