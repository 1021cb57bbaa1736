package algo

import "github.com/huanfachen/james-go/pkg/james/search"

// VND (variable neighbourhood descent) runs steepest descent on its first
// neighbourhood until no move improves, then advances to the next
// neighbourhood; any improving move found in a later neighbourhood resets
// the cursor back to the first. It stops the search once every
// neighbourhood has been exhausted in turn without improvement.
type VND struct {
	Neighbourhoods []search.Neighbourhood

	idx int
}

// NewVND builds a VND stepper over the given neighbourhoods, tried in
// order.
func NewVND(neighbourhoods ...search.Neighbourhood) *VND {
	if len(neighbourhoods) == 0 {
		panic("algo: VND requires at least one neighbourhood")
	}
	return &VND{Neighbourhoods: neighbourhoods}
}

// Step implements search.Stepper.
func (a *VND) Step(s *search.Search) error {
	if a.idx >= len(a.Neighbourhoods) {
		s.Stop()
		return nil
	}
	moves := a.Neighbourhoods[a.idx].GetAllMoves(s.CurrentSolution())
	best, err := s.GetBestMove(moves, true)
	if err != nil {
		return err
	}
	if best == nil {
		a.idx++
		return nil
	}
	a.idx = 0
	return s.AcceptMove(best.Move, best.Evaluation, best.Validation)
}
