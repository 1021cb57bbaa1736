package algo

import (
	"github.com/huanfachen/james-go/pkg/james/problem"
	"github.com/huanfachen/james-go/pkg/james/search"
)

// LocalSearchFactory builds a fresh embedded Search that VNS runs to
// completion after each shake. The returned Search's Stepper must stop
// itself once it reaches a local optimum (SteepestDescent and VND both do)
// — VNS runs it synchronously to completion and never calls Stop on it.
type LocalSearchFactory func(p *problem.Problem, rng problem.RNG) *search.Search

// VNS (variable neighbourhood search) shakes the current solution with a
// random move from its current neighbourhood, then hands the perturbed
// solution to a fresh embedded local search. If the embedded search's
// result improves on the current solution it is accepted and the cursor
// resets to the first neighbourhood; otherwise the cursor advances,
// wrapping back to the first neighbourhood once the last is exhausted (VNS
// never stops itself; it runs until an external stop criterion or Stop()
// call intervenes), the "run an alternate strategy, compare, decide" shape
// mirrors a shadow-traffic comparison loop.
type VNS struct {
	Neighbourhoods []search.Neighbourhood
	LocalSearch    LocalSearchFactory

	idx int
}

// NewVNS builds a VNS stepper. factory must not be nil and neighbourhoods
// must contain at least one entry.
func NewVNS(factory LocalSearchFactory, neighbourhoods ...search.Neighbourhood) *VNS {
	if factory == nil {
		panic("algo: VNS requires a local search factory")
	}
	if len(neighbourhoods) == 0 {
		panic("algo: VNS requires at least one neighbourhood")
	}
	return &VNS{Neighbourhoods: neighbourhoods, LocalSearch: factory}
}

// Step implements search.Stepper.
func (a *VNS) Step(s *search.Search) error {
	nh := a.Neighbourhoods[a.idx]

	shaken := s.CurrentSolution().CheckedCopy()
	if move := nh.GetRandomMove(shaken, s.RNG()); move != nil {
		move.Apply(shaken)
	}

	embedded := a.LocalSearch(s.Problem(), s.RNG())
	if err := embedded.SetCurrentSolution(shaken); err != nil {
		return err
	}
	if err := embedded.Start(); err != nil {
		return err
	}
	defer embedded.Dispose()

	candidate := embedded.CurrentSolution()
	candidateEval := embedded.CurrentEvaluation()
	candidateVal := embedded.CurrentValidation()

	if s.PrefersOverCurrent(candidateEval, candidateVal) {
		a.idx = 0
		return s.SetCurrentSolution(candidate)
	}

	a.idx = (a.idx + 1) % len(a.Neighbourhoods)
	return nil
}
