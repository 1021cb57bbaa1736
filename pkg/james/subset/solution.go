// Package subset implements the canonical solution type for combinatorial
// problems expressed as a bipartition of a fixed ID universe into selected
// and unselected sets, together with the moves and neighbourhoods that
// operate on it.
package subset

import (
	"sort"

	"github.com/huanfachen/james-go/pkg/james/core"
)

// Solution holds an immutable universe of integer IDs partitioned into
// selected and unselected sets. selected ∪ unselected always equals
// universe, and the two are always disjoint.
type Solution struct {
	universe   map[int]struct{}
	selected   map[int]struct{}
	unselected map[int]struct{}
}

// NewEmptySolution builds a solution over universe with every ID initially
// unselected. Duplicate IDs in universe are collapsed.
func NewEmptySolution(universe []int) *Solution {
	u := make(map[int]struct{}, len(universe))
	unselected := make(map[int]struct{}, len(universe))
	for _, id := range universe {
		u[id] = struct{}{}
		unselected[id] = struct{}{}
	}
	return &Solution{
		universe:   u,
		selected:   make(map[int]struct{}),
		unselected: unselected,
	}
}

// Select moves id from unselected to selected. It panics with a
// SolutionModificationError if id is not currently unselected.
func (s *Solution) Select(id int) {
	if _, ok := s.unselected[id]; !ok {
		panic(core.NewSolutionModificationError(s, "cannot select an ID that is not unselected"))
	}
	delete(s.unselected, id)
	s.selected[id] = struct{}{}
}

// Deselect moves id from selected to unselected. It panics with a
// SolutionModificationError if id is not currently selected.
func (s *Solution) Deselect(id int) {
	if _, ok := s.selected[id]; !ok {
		panic(core.NewSolutionModificationError(s, "cannot deselect an ID that is not selected"))
	}
	delete(s.selected, id)
	s.unselected[id] = struct{}{}
}

// SelectAll selects every ID in ids.
func (s *Solution) SelectAll(ids []int) {
	for _, id := range ids {
		s.Select(id)
	}
}

// DeselectAll deselects every ID in ids.
func (s *Solution) DeselectAll(ids []int) {
	for _, id := range ids {
		s.Deselect(id)
	}
}

// IsSelected reports whether id is currently selected.
func (s *Solution) IsSelected(id int) bool {
	_, ok := s.selected[id]
	return ok
}

// Size returns |selected|.
func (s *Solution) Size() int { return len(s.selected) }

// Selected returns a sorted copy of the selected IDs.
func (s *Solution) Selected() []int { return sortedKeys(s.selected) }

// Unselected returns a sorted copy of the unselected IDs.
func (s *Solution) Unselected() []int { return sortedKeys(s.unselected) }

// Universe returns a sorted copy of the full ID universe.
func (s *Solution) Universe() []int { return sortedKeys(s.universe) }

// Equals implements core.Solution.
func (s *Solution) Equals(other core.Solution) bool {
	o, ok := other.(*Solution)
	if !ok {
		return false
	}
	if len(s.selected) != len(o.selected) || len(s.universe) != len(o.universe) {
		return false
	}
	for id := range s.selected {
		if _, ok := o.selected[id]; !ok {
			return false
		}
	}
	for id := range s.universe {
		if _, ok := o.universe[id]; !ok {
			return false
		}
	}
	return true
}

// CheckedCopy implements core.Solution with a deep copy.
func (s *Solution) CheckedCopy() core.Solution {
	cp := &Solution{
		universe:   make(map[int]struct{}, len(s.universe)),
		selected:   make(map[int]struct{}, len(s.selected)),
		unselected: make(map[int]struct{}, len(s.unselected)),
	}
	for id := range s.universe {
		cp.universe[id] = struct{}{}
	}
	for id := range s.selected {
		cp.selected[id] = struct{}{}
	}
	for id := range s.unselected {
		cp.unselected[id] = struct{}{}
	}
	return cp
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
