package problem

import (
	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
)

// MandatoryConstraint is a predicate a valid solution must satisfy.
type MandatoryConstraint interface {
	Validate(sol core.Solution, data any) eval.Validation
}

// DeltaMandatoryConstraint additionally validates a move's effect without
// materializing the moved-to solution. Must return
// ErrIncompatibleDeltaValidation for move kinds it cannot handle.
type DeltaMandatoryConstraint interface {
	MandatoryConstraint
	ValidateDelta(move core.Move, sol core.Solution, curVal eval.Validation, data any) (eval.Validation, error)
}

// PenalizingConstraint never fails a solution; it contributes a
// non-negative penalty to the Problem's penalized evaluation.
type PenalizingConstraint interface {
	Validate(sol core.Solution, data any) eval.PenalizingValidation
}

// DeltaPenalizingConstraint additionally validates a move's effect without
// materializing the moved-to solution.
type DeltaPenalizingConstraint interface {
	PenalizingConstraint
	ValidateDelta(move core.Move, sol core.Solution, curVal eval.PenalizingValidation, data any) (eval.PenalizingValidation, error)
}
