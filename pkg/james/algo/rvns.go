package algo

import "github.com/huanfachen/james-go/pkg/james/search"

// RVNS (reduced variable neighbourhood search) is VND's randomized sibling:
// each step draws one random move from the current neighbourhood and
// accepts it only if it improves, resetting the cursor to the first
// neighbourhood on acceptance and advancing it otherwise. When Cyclic is
// true (the default) the cursor wraps back to the first neighbourhood after
// the last is exhausted, so the search never stops on its own; when false
// it stops once every neighbourhood has been tried in turn without an
// accepted move.
type RVNS struct {
	Neighbourhoods []search.Neighbourhood
	Cyclic         bool

	idx int
}

// NewRVNS builds an RVNS stepper over the given neighbourhoods, tried in
// order, with Cyclic defaulting to true.
func NewRVNS(neighbourhoods ...search.Neighbourhood) *RVNS {
	if len(neighbourhoods) == 0 {
		panic("algo: RVNS requires at least one neighbourhood")
	}
	return &RVNS{Neighbourhoods: neighbourhoods, Cyclic: true}
}

// Step implements search.Stepper.
func (a *RVNS) Step(s *search.Search) error {
	if a.idx >= len(a.Neighbourhoods) {
		s.Stop()
		return nil
	}
	move := a.Neighbourhoods[a.idx].GetRandomMove(s.CurrentSolution(), s.RNG())
	if move == nil {
		a.advance(s)
		return nil
	}
	improving, ev, val, err := s.IsImprovingMove(move)
	if err != nil {
		return err
	}
	if improving {
		a.idx = 0
		return s.AcceptMove(move, ev, val)
	}
	s.RejectMove()
	a.advance(s)
	return nil
}

func (a *RVNS) advance(s *search.Search) {
	a.idx++
	if a.idx >= len(a.Neighbourhoods) {
		if a.Cyclic {
			a.idx = 0
		} else {
			s.Stop()
		}
	}
}
