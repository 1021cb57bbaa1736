package subset

import "testing"

// sequenceRNG returns a fixed sequence of indices from IntN, cycling once
// exhausted. Float64 is unused by these neighbourhoods but implemented to
// satisfy problem.RNG.
type sequenceRNG struct {
	seq []int
	i   int
}

func (r *sequenceRNG) Float64() float64 { return 0 }
func (r *sequenceRNG) IntN(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

func newSeqRNG(seq ...int) *sequenceRNG { return &sequenceRNG{seq: seq} }

func TestSingleAdditionNeighbourhoodExcludesFixedIDs(t *testing.T) {
	n := NewSingleAdditionNeighbourhood(2)
	s := NewEmptySolution([]int{1, 2, 3})

	moves := n.GetAllMoves(s)
	if len(moves) != 2 {
		t.Fatalf("GetAllMoves returned %d moves, want 2 (ID 2 is fixed)", len(moves))
	}
	for _, m := range moves {
		if m.(*Move).Added[0] == 2 {
			t.Error("a fixed ID appeared in a generated move")
		}
	}
}

func TestSingleAdditionNeighbourhoodReturnsNilWhenExhausted(t *testing.T) {
	n := NewSingleAdditionNeighbourhood()
	s := NewEmptySolution([]int{1})
	s.Select(1)

	if got := n.GetRandomMove(s, newSeqRNG(0)); got != nil {
		t.Errorf("GetRandomMove = %v, want nil with no unselected candidates", got)
	}
	if got := n.GetAllMoves(s); len(got) != 0 {
		t.Errorf("GetAllMoves = %v, want empty", got)
	}
}

func TestSingleDeletionNeighbourhoodExcludesFixedIDs(t *testing.T) {
	n := NewSingleDeletionNeighbourhood(2)
	s := NewEmptySolution([]int{1, 2, 3})
	s.SelectAll([]int{1, 2, 3})

	moves := n.GetAllMoves(s)
	if len(moves) != 2 {
		t.Fatalf("GetAllMoves returned %d moves, want 2 (ID 2 is fixed)", len(moves))
	}
}

func TestSingleSwapNeighbourhoodGeneratesCrossProduct(t *testing.T) {
	n := NewSingleSwapNeighbourhood()
	s := NewEmptySolution([]int{1, 2, 3, 4})
	s.SelectAll([]int{1, 2})

	moves := n.GetAllMoves(s)
	if len(moves) != 4 { // 2 selected * 2 unselected
		t.Fatalf("GetAllMoves returned %d moves, want 4", len(moves))
	}
}

func TestSingleSwapNeighbourhoodPreservesSize(t *testing.T) {
	n := NewSingleSwapNeighbourhood()
	s := NewEmptySolution([]int{1, 2, 3, 4})
	s.SelectAll([]int{1, 2})

	move := n.GetRandomMove(s, newSeqRNG(0, 0))
	if move == nil {
		t.Fatal("GetRandomMove returned nil")
	}
	move.Apply(s)
	if s.Size() != 2 {
		t.Errorf("Size() after swap = %d, want 2 (size-preserving)", s.Size())
	}
}

func TestSingleSwapNeighbourhoodReturnsNilWithoutBothSides(t *testing.T) {
	n := NewSingleSwapNeighbourhood()
	s := NewEmptySolution([]int{1, 2})
	s.SelectAll([]int{1, 2})

	if got := n.GetRandomMove(s, newSeqRNG(0)); got != nil {
		t.Errorf("GetRandomMove = %v, want nil with no unselected candidates to swap in", got)
	}
}

func TestDisjointMultiSwapNeighbourhoodRequiresPositiveK(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for k < 1")
		}
	}()
	NewDisjointMultiSwapNeighbourhood(0)
}

func TestDisjointMultiSwapNeighbourhoodReturnsNilBelowK(t *testing.T) {
	n := NewDisjointMultiSwapNeighbourhood(2)
	s := NewEmptySolution([]int{1, 2, 3})
	s.Select(1)

	if got := n.GetRandomMove(s, newSeqRNG(0)); got != nil {
		t.Errorf("GetRandomMove = %v, want nil when fewer than k candidates exist on either side", got)
	}
	if got := n.GetAllMoves(s); got != nil {
		t.Errorf("GetAllMoves = %v, want nil when fewer than k candidates exist on either side", got)
	}
}

func TestDisjointMultiSwapNeighbourhoodGeneratesKCombinations(t *testing.T) {
	n := NewDisjointMultiSwapNeighbourhood(2)
	s := NewEmptySolution([]int{1, 2, 3, 4})
	s.SelectAll([]int{1, 2})

	moves := n.GetAllMoves(s)
	// C(2,2) additions * C(2,2) deletions = 1 * 1 = 1
	if len(moves) != 1 {
		t.Fatalf("GetAllMoves returned %d moves, want 1", len(moves))
	}
	m := moves[0].(*Move)
	if len(m.Added) != 2 || len(m.Deleted) != 2 {
		t.Errorf("move shape = %+v, want 2 added and 2 deleted", m)
	}
}
