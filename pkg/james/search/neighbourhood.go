package search

import (
	"math"
	"time"

	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
)

func (s *Search) recordDelta(delta float64) {
	s.lastDeltaBits.Store(math.Float64bits(math.Abs(delta)))
}

// LastStepDelta returns the absolute magnitude of the improvement of the
// last accepted move.
func (s *Search) LastStepDelta() float64 {
	return math.Float64frombits(s.lastDeltaBits.Load())
}

// CurrentSolution returns the search's current solution. Callers must treat
// the returned value as read-only; mutating it directly bypasses move
// accounting.
func (s *Search) CurrentSolution() core.Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentEvaluation returns the evaluation of the current solution.
func (s *Search) CurrentEvaluation() eval.Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentEval
}

// CurrentValidation returns the validation of the current solution.
func (s *Search) CurrentValidation() eval.Validation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentVal
}

// BestSolution returns a deep copy of the best solution found so far, or
// nil if none has been found (e.g. every visited solution was invalid).
func (s *Search) BestSolution() core.Solution {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.best == nil {
		return nil
	}
	return s.best.CheckedCopy()
}

// BestEvaluation returns the evaluation of the best solution, or nil.
func (s *Search) BestEvaluation() eval.Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestEval
}

// BestValidation returns the validation of the best solution, or nil.
func (s *Search) BestValidation() eval.Validation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestVal
}

// snapshotCurrent returns the current solution/evaluation/validation under
// lock, for internal callers that need a consistent triple before doing
// unlocked work (delta evaluation, listener dispatch).
func (s *Search) snapshotCurrent() (core.Solution, eval.Evaluation, eval.Validation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.currentEval, s.currentVal
}

// isImprovement reports whether ev1 is strictly preferred to ev2 given the
// problem's minimize/maximize direction, and val1 is valid. A nil ev2 (no
// best yet) always loses to any valid ev1.
func (s *Search) isImprovement(ev1 eval.Evaluation, val1 eval.Validation, ev2 eval.Evaluation) bool {
	if val1 == nil || !val1.Passed() {
		return false
	}
	if ev2 == nil {
		return true
	}
	if s.problem.IsMinimizing() {
		return ev1.Value() < ev2.Value()
	}
	return ev1.Value() > ev2.Value()
}

// updateBestLocked installs sol as the new best if it is valid and strictly
// improves over the current best (or no best exists yet). Callers must hold
// s.mu. It returns whether the update happened.
func (s *Search) updateBestLocked(sol core.Solution, ev eval.Evaluation, val eval.Validation) bool {
	if !s.isImprovement(ev, val, s.bestEval) {
		return false
	}
	s.best = sol.CheckedCopy()
	s.bestEval = ev
	s.bestVal = val
	s.lastImprovementNano.Store(time.Now().UnixNano())
	s.lastImprovementStep.Store(s.steps.Load())
	return true
}

// SetCurrentSolution evaluates and validates sol, installs it as the
// current solution, updates the best solution if sol strictly improves on
// it, and fires newBestSolution (if applicable) followed by
// newCurrentSolution.
func (s *Search) SetCurrentSolution(sol core.Solution) error {
	ev := s.problem.Evaluate(sol)
	val := s.problem.Validate(sol)

	s.mu.Lock()
	s.current = sol
	s.currentEval = ev
	s.currentVal = val
	updatedBest := s.updateBestLocked(sol, ev, val)
	var bestSol core.Solution
	var bestEv eval.Evaluation
	var bestVal eval.Validation
	if updatedBest {
		bestSol, bestEv, bestVal = s.best, s.bestEval, s.bestVal
	}
	s.mu.Unlock()

	if updatedBest {
		if err := s.fireNewBestSolution(bestSol, bestEv, bestVal); err != nil {
			return err
		}
	}
	return s.fireNewCurrentSolution(sol, ev, val)
}

// IsImprovingMove delta-evaluates and delta-validates move against the
// current solution, returning true iff the resulting neighbour would be
// valid and strictly better than the current solution. It never mutates
// the current solution.
func (s *Search) IsImprovingMove(move core.Move) (bool, eval.Evaluation, eval.Validation, error) {
	current, currentEval, currentVal := s.snapshotCurrent()
	ev, val, err := s.evaluateMove(move, current, currentEval, currentVal)
	if err != nil {
		return false, nil, nil, err
	}
	return s.isImprovement(ev, val, currentEval), ev, val, nil
}

// PrefersOverCurrent reports whether (ev, val) would be accepted as a
// strict improvement over the search's current solution. Used by
// algorithms (such as VNS) that compare a whole candidate solution built
// outside the move-based Accept/Reject protocol.
func (s *Search) PrefersOverCurrent(ev eval.Evaluation, val eval.Validation) bool {
	_, currentEval, _ := s.snapshotCurrent()
	return s.isImprovement(ev, val, currentEval)
}

// evaluateMove delta-evaluates and delta-validates move against sol, given
// sol's already-known current evaluation and validation (curEval, curVal),
// so neither the objective nor a delta-capable constraint ever needs to
// recompute what the caller already knows.
func (s *Search) evaluateMove(move core.Move, sol core.Solution, curEval eval.Evaluation, curVal eval.Validation) (eval.Evaluation, eval.Validation, error) {
	ev, err := s.problem.EvaluateMove(move, sol, curEval)
	if err != nil {
		return nil, nil, err
	}
	val, err := s.problem.ValidateMove(move, sol, curVal)
	if err != nil {
		return nil, nil, err
	}
	return ev, val, nil
}

// AcceptMove applies move to the current solution, replaces the current
// evaluation/validation with the already-computed (ev, val) pair, updates
// best if applicable, fires the corresponding listener notifications, and
// increments the accepted-move counter.
func (s *Search) AcceptMove(move core.Move, ev eval.Evaluation, val eval.Validation) error {
	s.mu.Lock()
	var prevValue float64
	if s.currentEval != nil {
		prevValue = s.currentEval.Value()
	}

	move.Apply(s.current)
	s.currentEval = ev
	s.currentVal = val
	s.recordDelta(ev.Value() - prevValue)

	cur := s.current
	updatedBest := s.updateBestLocked(cur, ev, val)
	var bestSol core.Solution
	var bestEv eval.Evaluation
	var bestVal eval.Validation
	if updatedBest {
		bestSol, bestEv, bestVal = s.best, s.bestEval, s.bestVal
	}
	s.mu.Unlock()

	if updatedBest {
		if err := s.fireNewBestSolution(bestSol, bestEv, bestVal); err != nil {
			return err
		}
	}
	if err := s.fireNewCurrentSolution(cur, ev, val); err != nil {
		return err
	}
	s.accepted.Add(1)
	return nil
}

// RejectMove increments the rejected-move counter. The move is never
// applied.
func (s *Search) RejectMove() {
	s.rejected.Add(1)
}

// Candidate pairs a move with its delta-computed outcome, as produced by
// GetBestMove.
type Candidate struct {
	Move       core.Move
	Evaluation eval.Evaluation
	Validation eval.Validation
	Delta      float64 // signed improvement over the current evaluation, positive means better
}

// GetBestMove scans candidates, delta-evaluating and delta-validating
// each, and returns the valid candidate whose delta is maximal under the
// problem's minimize/maximize direction (ties broken by first-encountered).
// If requirePositiveDelta is true, candidates whose delta is not strictly
// positive are excluded. It returns nil if no candidate qualifies.
func (s *Search) GetBestMove(candidates []core.Move, requirePositiveDelta bool) (*Candidate, error) {
	current, currentEval, currentVal := s.snapshotCurrent()

	var best *Candidate
	minimizing := s.problem.IsMinimizing()
	curValue := 0.0
	if currentEval != nil {
		curValue = currentEval.Value()
	}

	for _, move := range candidates {
		ev, val, err := s.evaluateMove(move, current, currentEval, currentVal)
		if err != nil {
			return nil, err
		}
		if !val.Passed() {
			continue
		}
		var delta float64
		if minimizing {
			delta = curValue - ev.Value()
		} else {
			delta = ev.Value() - curValue
		}
		if requirePositiveDelta && delta <= 0 {
			continue
		}
		if best == nil || delta > best.Delta {
			best = &Candidate{Move: move, Evaluation: ev, Validation: val, Delta: delta}
		}
	}
	return best, nil
}
