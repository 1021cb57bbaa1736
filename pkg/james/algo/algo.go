// Package algo implements the search.Stepper algorithms a Search can be
// driven by: RandomDescent and SteepestDescent descend a single
// neighbourhood, VND and RVNS alternate across an ordered list of
// neighbourhoods, and VNS combines shaking with an embedded local search.
package algo
