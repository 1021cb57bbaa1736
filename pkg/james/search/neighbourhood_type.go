package search

import (
	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/problem"
)

// Neighbourhood generates candidate moves for a solution. Domain packages
// (e.g. subset) implement this directly against core.Solution/core.Move so
// their neighbourhoods plug into every algorithm in package algo without an
// adapter.
type Neighbourhood interface {
	// GetRandomMove returns one random applicable move, or nil if none
	// apply to sol.
	GetRandomMove(sol core.Solution, rng problem.RNG) core.Move

	// GetAllMoves returns every applicable move for sol, or an empty slice.
	GetAllMoves(sol core.Solution) []core.Move
}
