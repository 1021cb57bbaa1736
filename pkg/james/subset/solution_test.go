package subset

import "testing"

func TestNewEmptySolutionStartsFullyUnselected(t *testing.T) {
	s := NewEmptySolution([]int{1, 2, 3})
	if s.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", s.Size())
	}
	if got := s.Unselected(); len(got) != 3 {
		t.Errorf("Unselected() = %v, want all 3 IDs", got)
	}
}

func TestNewEmptySolutionCollapsesDuplicateIDs(t *testing.T) {
	s := NewEmptySolution([]int{1, 1, 2})
	if got := s.Universe(); len(got) != 2 {
		t.Errorf("Universe() = %v, want 2 distinct IDs", got)
	}
}

func TestSelectMovesIDToSelected(t *testing.T) {
	s := NewEmptySolution([]int{1, 2, 3})
	s.Select(2)
	if !s.IsSelected(2) {
		t.Error("IsSelected(2) = false after Select(2)")
	}
	if s.Size() != 1 {
		t.Errorf("Size() = %d, want 1", s.Size())
	}
}

func TestSelectPanicsOnAlreadySelectedID(t *testing.T) {
	s := NewEmptySolution([]int{1})
	s.Select(1)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic selecting an already-selected ID")
		}
	}()
	s.Select(1)
}

func TestDeselectPanicsOnUnselectedID(t *testing.T) {
	s := NewEmptySolution([]int{1})
	defer func() {
		if recover() == nil {
			t.Error("expected a panic deselecting an unselected ID")
		}
	}()
	s.Deselect(1)
}

func TestSelectedAndUnselectedPartitionTheUniverse(t *testing.T) {
	s := NewEmptySolution([]int{1, 2, 3, 4})
	s.SelectAll([]int{2, 4})

	selected := s.Selected()
	unselected := s.Unselected()
	if len(selected)+len(unselected) != len(s.Universe()) {
		t.Fatalf("selected ∪ unselected does not cover the universe: %v + %v", selected, unselected)
	}
	seen := make(map[int]bool)
	for _, id := range append(append([]int{}, selected...), unselected...) {
		if seen[id] {
			t.Fatalf("ID %d appears in both selected and unselected", id)
		}
		seen[id] = true
	}
}

func TestEqualsComparesSelectionAndUniverse(t *testing.T) {
	a := NewEmptySolution([]int{1, 2, 3})
	a.Select(1)
	b := NewEmptySolution([]int{1, 2, 3})
	b.Select(1)
	if !a.Equals(b) {
		t.Error("Equals() = false for identical solutions")
	}

	b.Select(2)
	if a.Equals(b) {
		t.Error("Equals() = true for solutions with different selections")
	}
}

func TestCheckedCopyIsIndependent(t *testing.T) {
	a := NewEmptySolution([]int{1, 2, 3})
	a.Select(1)
	b := a.CheckedCopy().(*Solution)

	b.Select(2)
	if a.IsSelected(2) {
		t.Error("mutating the copy mutated the original")
	}
	if !a.Equals(a.CheckedCopy()) {
		t.Error("a copy of an unmutated solution should equal the original")
	}
}
