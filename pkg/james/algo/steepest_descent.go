package algo

import "github.com/huanfachen/james-go/pkg/james/search"

// SteepestDescent descends a single neighbourhood by evaluating every
// applicable move each step and accepting the one with the largest
// improvement. It stops the search once no move improves on the current
// solution.
type SteepestDescent struct {
	Neighbourhood search.Neighbourhood
}

// NewSteepestDescent builds a SteepestDescent stepper over nh.
func NewSteepestDescent(nh search.Neighbourhood) *SteepestDescent {
	if nh == nil {
		panic("algo: SteepestDescent requires a neighbourhood")
	}
	return &SteepestDescent{Neighbourhood: nh}
}

// Step implements search.Stepper.
func (a *SteepestDescent) Step(s *search.Search) error {
	moves := a.Neighbourhood.GetAllMoves(s.CurrentSolution())
	best, err := s.GetBestMove(moves, true)
	if err != nil {
		return err
	}
	if best == nil {
		s.Stop()
		return nil
	}
	return s.AcceptMove(best.Move, best.Evaluation, best.Validation)
}
