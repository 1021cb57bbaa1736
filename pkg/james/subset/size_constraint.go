package subset

import (
	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
	"github.com/huanfachen/james-go/pkg/james/problem"
)

// SizeConstraint is a mandatory constraint bounding |selected| to [min, max].
// It produces a SubsetValidation wrapping an always-passing inner
// constraint, so its Passed() result is exactly the size bound.
type SizeConstraint struct {
	min, max int
}

// NewSizeConstraint builds a bound on the number of selected IDs. A max
// below min is a contract violation and panics immediately.
func NewSizeConstraint(min, max int) *SizeConstraint {
	if max < min {
		panic("subset: SizeConstraint requires max >= min")
	}
	return &SizeConstraint{min: min, max: max}
}

// Validate implements problem.MandatoryConstraint.
func (c *SizeConstraint) Validate(sol core.Solution, _ any) eval.Validation {
	s := asSubsetSolution(sol)
	size := s.Size()
	return eval.NewSubsetValidation(size >= c.min && size <= c.max, eval.SimpleValidation(true))
}

// ValidateDelta implements problem.DeltaMandatoryConstraint: the resulting
// size after move is computable in O(1) from the move's shape.
func (c *SizeConstraint) ValidateDelta(move core.Move, sol core.Solution, _ eval.Validation, _ any) (eval.Validation, error) {
	s := asSubsetSolution(sol)
	m, ok := move.(*Move)
	if !ok {
		return nil, problem.ErrIncompatibleDeltaValidation
	}
	size := s.Size() + len(m.Added) - len(m.Deleted)
	return eval.NewSubsetValidation(size >= c.min && size <= c.max, eval.SimpleValidation(true)), nil
}
