package problem

import (
	"errors"

	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
)

// RNG is the injectable random source a Problem uses to create random
// solutions and neighbourhoods use to pick random moves. *rand.Rand from
// math/rand/v2 satisfies this directly.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// SolutionFactory creates a random solution from an RNG. Problems that want
// a struct rather than a closure can give it a method with this signature
// and pass the method value.
type SolutionFactory func(rng RNG) core.Solution

// Problem composes an Objective, a data handle, a solution factory, and the
// mandatory/penalizing constraint sets into the single contract the search
// engine drives: evaluate, validate, and their delta counterparts.
type Problem struct {
	objective    Objective
	data         any
	factory      SolutionFactory
	mandatory    []MandatoryConstraint
	penalizing   []PenalizingConstraint
	isMinimizing bool
}

// NewProblem constructs a Problem. objective and factory are mandatory
// collaborators; a nil value for either is a contract violation and panics
// immediately.
func NewProblem(objective Objective, data any, factory SolutionFactory, isMinimizing bool, mandatory []MandatoryConstraint, penalizing []PenalizingConstraint) *Problem {
	if objective == nil {
		panic("problem: objective must not be nil")
	}
	if factory == nil {
		panic("problem: solution factory must not be nil")
	}
	return &Problem{
		objective:    objective,
		data:         data,
		factory:      factory,
		mandatory:    append([]MandatoryConstraint(nil), mandatory...),
		penalizing:   append([]PenalizingConstraint(nil), penalizing...),
		isMinimizing: isMinimizing,
	}
}

// IsMinimizing reports the optimization direction.
func (p *Problem) IsMinimizing() bool { return p.isMinimizing }

// SetMinimizing updates the optimization direction, propagating to the
// objective if it implements MinMaxObjective.
func (p *Problem) SetMinimizing(minimizing bool) {
	p.isMinimizing = minimizing
	if mm, ok := p.objective.(MinMaxObjective); ok {
		mm.SetMinimizing(minimizing)
	}
}

// Data returns the problem-instance data handle.
func (p *Problem) Data() any { return p.data }

// CreateRandomSolution builds a fresh random solution via the factory.
func (p *Problem) CreateRandomSolution(rng RNG) core.Solution {
	return p.factory(rng)
}

// Evaluate computes the full evaluation of sol. If there are no penalizing
// constraints, the objective's evaluation is returned directly; otherwise
// it is wrapped in a PenalizedEvaluation keyed by each penalizing
// constraint, in the order the constraints were registered.
func (p *Problem) Evaluate(sol core.Solution) eval.Evaluation {
	inner := p.objective.Evaluate(sol, p.data)
	if len(p.penalizing) == 0 {
		return inner
	}
	penalized := eval.NewPenalizedEvaluation(inner, p.isMinimizing)
	for _, c := range p.penalizing {
		penalized.SetPenalty(c, c.Validate(sol, p.data))
	}
	return penalized
}

// Validate composes a pass/fail outcome that is true iff every mandatory
// constraint passes. Penalizing constraints never affect this outcome.
func (p *Problem) Validate(sol core.Solution) eval.Validation {
	for _, c := range p.mandatory {
		if !c.Validate(sol, p.data).Passed() {
			return eval.SimpleValidation(false)
		}
	}
	return eval.SimpleValidation(true)
}

// GetViolatedConstraints returns every mandatory constraint currently
// failing on sol.
func (p *Problem) GetViolatedConstraints(sol core.Solution) []MandatoryConstraint {
	var violated []MandatoryConstraint
	for _, c := range p.mandatory {
		if !c.Validate(sol, p.data).Passed() {
			violated = append(violated, c)
		}
	}
	return violated
}

// EvaluateMove computes the evaluation of the solution that would result
// from applying move to sol, given its current evaluation curEval. It
// defers to the objective's delta implementation when available, falling
// back to full re-evaluation on a deep copy when the objective has no
// delta support, or when its delta call reports
// ErrIncompatibleDeltaValidation for this particular move.
func (p *Problem) EvaluateMove(move core.Move, sol core.Solution, curEval eval.Evaluation) (eval.Evaluation, error) {
	if len(p.penalizing) == 0 {
		return p.evaluateObjectiveMove(move, sol, curEval)
	}

	pe, ok := curEval.(*eval.PenalizedEvaluation)
	if !ok {
		return nil, errors.New("problem: curEval is not a PenalizedEvaluation but penalizing constraints are registered")
	}

	innerNext, err := p.evaluateObjectiveMove(move, sol, pe.Inner())
	if err != nil {
		return nil, err
	}
	next := eval.NewPenalizedEvaluation(innerNext, p.isMinimizing)
	for _, c := range p.penalizing {
		curPenalty, _ := pe.Penalty(c)
		v, err := p.validatePenalizingMove(c, move, sol, curPenalty)
		if err != nil {
			return nil, err
		}
		next.SetPenalty(c, v)
	}
	return next, nil
}

func (p *Problem) evaluateObjectiveMove(move core.Move, sol core.Solution, curEval eval.Evaluation) (eval.Evaluation, error) {
	deltaObj, ok := p.objective.(DeltaObjective)
	if !ok {
		return p.fullEvaluateAfterMove(move, sol), nil
	}
	next, err := deltaObj.EvaluateDelta(move, sol, curEval, p.data)
	if errors.Is(err, ErrIncompatibleDeltaValidation) {
		return p.fullEvaluateAfterMove(move, sol), nil
	}
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (p *Problem) validatePenalizingMove(c PenalizingConstraint, move core.Move, sol core.Solution, curVal eval.PenalizingValidation) (eval.PenalizingValidation, error) {
	deltaC, ok := c.(DeltaPenalizingConstraint)
	if !ok {
		return p.fullPenalizeAfterMove(c, move, sol), nil
	}
	next, err := deltaC.ValidateDelta(move, sol, curVal, p.data)
	if errors.Is(err, ErrIncompatibleDeltaValidation) {
		return p.fullPenalizeAfterMove(c, move, sol), nil
	}
	if err != nil {
		return eval.PenalizingValidation{}, err
	}
	return next, nil
}

func (p *Problem) fullEvaluateAfterMove(move core.Move, sol core.Solution) eval.Evaluation {
	probe := sol.CheckedCopy()
	move.Apply(probe)
	return p.objective.Evaluate(probe, p.data)
}

func (p *Problem) fullPenalizeAfterMove(c PenalizingConstraint, move core.Move, sol core.Solution) eval.PenalizingValidation {
	probe := sol.CheckedCopy()
	move.Apply(probe)
	return c.Validate(probe, p.data)
}

// ValidateMove computes the validation of the solution that would result
// from applying move to sol, given sol's already-known current validation
// curVal. curVal is threaded into every constraint's ValidateDelta so a
// delta-capable constraint never has to recompute a full Validate just to
// learn what it was already told; constraints without delta support still
// fall back to full re-evaluation on a probe copy, exactly as EvaluateMove
// does for the objective.
func (p *Problem) ValidateMove(move core.Move, sol core.Solution, curVal eval.Validation) (eval.Validation, error) {
	for _, c := range p.mandatory {
		deltaC, ok := c.(DeltaMandatoryConstraint)
		if !ok {
			if !p.fullValidateAfterMove(c, move, sol).Passed() {
				return eval.SimpleValidation(false), nil
			}
			continue
		}
		next, err := deltaC.ValidateDelta(move, sol, curVal, p.data)
		if errors.Is(err, ErrIncompatibleDeltaValidation) {
			next = p.fullValidateAfterMove(c, move, sol)
		} else if err != nil {
			return nil, err
		}
		if !next.Passed() {
			return eval.SimpleValidation(false), nil
		}
	}
	return eval.SimpleValidation(true), nil
}

func (p *Problem) fullValidateAfterMove(c MandatoryConstraint, move core.Move, sol core.Solution) eval.Validation {
	probe := sol.CheckedCopy()
	move.Apply(probe)
	return c.Validate(probe, p.data)
}
