// Package sumofscores is a worked scenario exercising the subset domain:
// pick exactly SubsetSize IDs out of a universe {0, ..., N-1} to maximize
// the sum of their scores. With the identity scoring function and a
// universe of size 10 bounded to a subset of size 3, the optimum is the
// top three IDs {7, 8, 9} with a total score of 24 — small enough to
// verify by inspection.
package sumofscores

import (
	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
	"github.com/huanfachen/james-go/pkg/james/problem"
	"github.com/huanfachen/james-go/pkg/james/subset"
)

// Data holds one sum-of-scores instance: a universe and a score per ID.
type Data struct {
	Universe []int
	Score    map[int]float64
}

// IdentityData builds the canonical instance: universe {0, ..., n-1} with
// Score[id] == id.
func IdentityData(n int) *Data {
	universe := make([]int, n)
	score := make(map[int]float64, n)
	for i := 0; i < n; i++ {
		universe[i] = i
		score[i] = float64(i)
	}
	return &Data{Universe: universe, Score: score}
}

// Objective sums the scores of the selected IDs. It implements
// problem.DeltaObjective since a move's effect on the sum is just the
// scores of the IDs it adds minus the scores of the IDs it removes.
type Objective struct{}

// Evaluate implements problem.Objective.
func (Objective) Evaluate(sol core.Solution, data any) eval.Evaluation {
	d := data.(*Data)
	s := sol.(*subset.Solution)
	total := 0.0
	for _, id := range s.Selected() {
		total += d.Score[id]
	}
	return eval.SimpleEvaluation(total)
}

// EvaluateDelta implements problem.DeltaObjective.
func (o Objective) EvaluateDelta(move core.Move, sol core.Solution, curEval eval.Evaluation, data any) (eval.Evaluation, error) {
	d := data.(*Data)
	m, ok := move.(*subset.Move)
	if !ok {
		return nil, problem.ErrIncompatibleDeltaValidation
	}
	total := float64(curEval.(eval.SimpleEvaluation))
	for _, id := range m.Added {
		total += d.Score[id]
	}
	for _, id := range m.Deleted {
		total -= d.Score[id]
	}
	return eval.SimpleEvaluation(total), nil
}

// NewProblem builds the sum-of-scores problem: maximize Objective subject
// to a SizeConstraint fixing |selected| == size, over a universe of n IDs.
// The solution factory starts from a random subset already of the required
// size, since size-preserving neighbourhoods such as SingleSwapNeighbourhood
// (which keep a fixed-size solution feasible at every intermediate step)
// cannot repair a wrong-size starting point on their own.
func NewProblem(n, size int) *problem.Problem {
	data := IdentityData(n)
	factory := func(rng problem.RNG) core.Solution {
		return randomSizedSolution(data.Universe, size, rng)
	}
	return problem.NewProblem(
		Objective{},
		data,
		factory,
		false, // maximizing
		[]problem.MandatoryConstraint{subset.NewSizeConstraint(size, size)},
		nil,
	)
}

// randomSizedSolution picks size distinct IDs from universe uniformly at
// random via partial Fisher-Yates and selects them.
func randomSizedSolution(universe []int, size int, rng problem.RNG) *subset.Solution {
	pool := append([]int(nil), universe...)
	for i := 0; i < size && i < len(pool); i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	sol := subset.NewEmptySolution(universe)
	sol.SelectAll(pool[:size])
	return sol
}
