package algo_test

import (
	"testing"

	"github.com/huanfachen/james-go/pkg/james/algo"
	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
	"github.com/huanfachen/james-go/pkg/james/problem"
	"github.com/huanfachen/james-go/pkg/james/search"
)

type counterSolution struct{ n int }

func (s *counterSolution) Equals(other core.Solution) bool {
	o, ok := other.(*counterSolution)
	return ok && o.n == s.n
}
func (s *counterSolution) CheckedCopy() core.Solution { return &counterSolution{n: s.n} }

type incrementMove struct{ delta int }

func (m incrementMove) Apply(sol core.Solution) { sol.(*counterSolution).n += m.delta }
func (m incrementMove) Undo(sol core.Solution)  { sol.(*counterSolution).n -= m.delta }

type identityObjective struct{}

func (identityObjective) Evaluate(sol core.Solution, _ any) eval.Evaluation {
	return eval.SimpleEvaluation(sol.(*counterSolution).n)
}

type fakeRNG struct{}

func (fakeRNG) Float64() float64 { return 0 }
func (fakeRNG) IntN(n int) int   { return 0 }

func newCounterProblem() *problem.Problem {
	factory := func(problem.RNG) core.Solution { return &counterSolution{} }
	return problem.NewProblem(identityObjective{}, nil, factory, false, nil, nil)
}

// cappedNeighbourhood offers a single +1 move while the current counter is
// below cap, and none once it reaches or passes cap.
type cappedNeighbourhood struct{ cap int }

func (n cappedNeighbourhood) moves(sol core.Solution) []core.Move {
	if sol.(*counterSolution).n >= n.cap {
		return nil
	}
	return []core.Move{incrementMove{delta: 1}}
}

func (n cappedNeighbourhood) GetRandomMove(sol core.Solution, _ problem.RNG) core.Move {
	moves := n.moves(sol)
	if len(moves) == 0 {
		return nil
	}
	return moves[0]
}

func (n cappedNeighbourhood) GetAllMoves(sol core.Solution) []core.Move {
	return n.moves(sol)
}

func TestRandomDescentStopsWhenNeighbourhoodExhausted(t *testing.T) {
	p := newCounterProblem()
	s := search.New("rd", p, algo.NewRandomDescent(cappedNeighbourhood{cap: 3}), fakeRNG{})
	s.AddStopCriterion(search.MaxSteps{N: 1000})

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := s.BestEvaluation().Value(); got != 3 {
		t.Errorf("BestEvaluation().Value() = %v, want 3", got)
	}
}

func TestNewRandomDescentPanicsOnNilNeighbourhood(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a nil neighbourhood")
		}
	}()
	algo.NewRandomDescent(nil)
}

func TestSteepestDescentConvergesToCap(t *testing.T) {
	p := newCounterProblem()
	s := search.New("sd", p, algo.NewSteepestDescent(cappedNeighbourhood{cap: 5}), fakeRNG{})
	s.AddStopCriterion(search.MaxSteps{N: 1000})

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := s.BestEvaluation().Value(); got != 5 {
		t.Errorf("BestEvaluation().Value() = %v, want 5", got)
	}
	if got := s.Status(); got != search.Idle {
		t.Errorf("Status() = %v, want Idle", got)
	}
}

func TestVNDCyclesThroughNeighbourhoodsUntilBothExhausted(t *testing.T) {
	p := newCounterProblem()
	nh1 := cappedNeighbourhood{cap: 3}
	nh2 := cappedNeighbourhood{cap: 10}
	s := search.New("vnd", p, algo.NewVND(nh1, nh2), fakeRNG{})
	s.AddStopCriterion(search.MaxSteps{N: 1000})

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := s.BestEvaluation().Value(); got != 10 {
		t.Errorf("BestEvaluation().Value() = %v, want 10 (both neighbourhoods fully exhausted)", got)
	}
}

func TestNewVNDPanicsOnEmptyNeighbourhoods(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for zero neighbourhoods")
		}
	}()
	algo.NewVND()
}

func TestRVNSNonCyclicStopsAfterOneFullPassWithoutImprovement(t *testing.T) {
	p := newCounterProblem()
	rvns := algo.NewRVNS(cappedNeighbourhood{cap: 0}, cappedNeighbourhood{cap: 0})
	rvns.Cyclic = false
	s := search.New("rvns", p, rvns, fakeRNG{})
	s.AddStopCriterion(search.MaxSteps{N: 1000})

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := s.GetMetrics().Steps; got != 2 {
		t.Errorf("Steps = %d, want 2 (one exhaustion step per neighbourhood)", got)
	}
}

func TestRVNSAcceptsAnImprovingRandomMoveAndResetsCursor(t *testing.T) {
	p := newCounterProblem()
	rvns := algo.NewRVNS(cappedNeighbourhood{cap: 4})
	s := search.New("rvns", p, rvns, fakeRNG{})
	s.AddStopCriterion(search.MaxSteps{N: 1000})

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := s.BestEvaluation().Value(); got != 4 {
		t.Errorf("BestEvaluation().Value() = %v, want 4", got)
	}
}

func localSteepestDescentFactory(p *problem.Problem, rng problem.RNG) *search.Search {
	return search.New("embedded", p, algo.NewSteepestDescent(cappedNeighbourhood{cap: 6}), rng)
}

func TestVNSAcceptsAnImprovingEmbeddedSearchResult(t *testing.T) {
	p := newCounterProblem()
	vns := algo.NewVNS(localSteepestDescentFactory, cappedNeighbourhood{cap: 1})
	s := search.New("vns", p, vns, fakeRNG{})
	s.SetCurrentSolution(&counterSolution{n: 0})

	if err := vns.Step(s); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := s.CurrentSolution().(*counterSolution).n; got != 6 {
		t.Errorf("current n = %d, want 6 (shake +1, then embedded descent to cap 6)", got)
	}
}

func TestNewVNSPanicsOnNilFactoryOrEmptyNeighbourhoods(t *testing.T) {
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for a nil factory")
			}
		}()
		algo.NewVNS(nil, cappedNeighbourhood{cap: 1})
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for zero neighbourhoods")
			}
		}()
		algo.NewVNS(localSteepestDescentFactory)
	}()
}
