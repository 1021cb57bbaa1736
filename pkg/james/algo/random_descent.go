package algo

import "github.com/huanfachen/james-go/pkg/james/search"

// RandomDescent descends a single neighbourhood by repeatedly drawing one
// random move and accepting it only if it strictly improves the current
// solution. It stops the search once the neighbourhood offers no move for
// the current solution.
type RandomDescent struct {
	Neighbourhood search.Neighbourhood
}

// NewRandomDescent builds a RandomDescent stepper over nh.
func NewRandomDescent(nh search.Neighbourhood) *RandomDescent {
	if nh == nil {
		panic("algo: RandomDescent requires a neighbourhood")
	}
	return &RandomDescent{Neighbourhood: nh}
}

// Step implements search.Stepper.
func (a *RandomDescent) Step(s *search.Search) error {
	move := a.Neighbourhood.GetRandomMove(s.CurrentSolution(), s.RNG())
	if move == nil {
		s.Stop()
		return nil
	}
	improving, ev, val, err := s.IsImprovingMove(move)
	if err != nil {
		return err
	}
	if !improving {
		s.RejectMove()
		return nil
	}
	return s.AcceptMove(move, ev, val)
}
