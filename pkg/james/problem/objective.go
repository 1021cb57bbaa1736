// Package problem binds an Objective, a set of mandatory and penalizing
// Constraints, a data handle, and a solution factory into the single
// Problem contract the search engine drives.
package problem

import (
	"errors"

	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
)

// ErrIncompatibleDeltaValidation is returned by a delta evaluator or
// validator that received a move it cannot process. Calling code may catch
// this and retry with full (non-delta) evaluation/validation; Problem does
// exactly that for every delta call it makes.
var ErrIncompatibleDeltaValidation = errors.New("james: move incompatible with delta evaluation/validation")

// Objective scores solutions. Data is the opaque problem-instance handle
// (scores, distances, anything the user's domain needs).
type Objective interface {
	Evaluate(sol core.Solution, data any) eval.Evaluation
}

// DeltaObjective is an Objective that can also evaluate the effect of a
// single move without materializing the moved-to solution. Implementations
// that cannot handle a given move kind must return
// ErrIncompatibleDeltaValidation so the caller can fall back to full
// evaluation.
type DeltaObjective interface {
	Objective
	EvaluateDelta(move core.Move, sol core.Solution, curEval eval.Evaluation, data any) (eval.Evaluation, error)
}

// MinMaxObjective additionally carries a mutable minimizing/maximizing
// direction, consulted by the owning Problem.
type MinMaxObjective interface {
	Objective
	IsMinimizing() bool
	SetMinimizing(minimizing bool)
}
