package search

import (
	"errors"
	"fmt"

	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
)

// Listener receives lifecycle and progress notifications from a Search.
// Dispatch is synchronous on the search thread, in registration order.
type Listener interface {
	SearchStarted(s *Search)
	SearchStopped(s *Search)
	NewBestSolution(s *Search, sol core.Solution, ev eval.Evaluation, val eval.Validation)
	NewCurrentSolution(s *Search, sol core.Solution, ev eval.Evaluation, val eval.Validation)
	StepCompleted(s *Search, step int64)
}

// AddListener registers l. Safe to call at any time, including mid-run:
// dispatch snapshots the listener slice before iterating.
func (s *Search) AddListener(l Listener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters l, if present.
func (s *Search) RemoveListener(l Listener) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Search) snapshotListeners() []Listener {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	return append([]Listener(nil), s.listeners...)
}

// dispatch calls call for every registered listener. A listener that panics
// does not prevent subsequent listeners in the same dispatch from running;
// every panic is accumulated and re-raised as one JamesRuntimeError after
// the full dispatch completes.
func (s *Search) dispatch(event string, call func(Listener)) error {
	var errs []error
	for _, l := range s.snapshotListeners() {
		func() {
			defer func() {
				if r := recover(); r != nil {
					errs = append(errs, fmt.Errorf("%v", r))
				}
			}()
			call(l)
		}()
	}
	if len(errs) == 0 {
		return nil
	}
	return core.NewJamesRuntimeError("listener dispatch ("+event+")", errors.Join(errs...))
}

func (s *Search) fireSearchStarted() error {
	return s.dispatch("searchStarted", func(l Listener) { l.SearchStarted(s) })
}

func (s *Search) fireSearchStopped() error {
	return s.dispatch("searchStopped", func(l Listener) { l.SearchStopped(s) })
}

func (s *Search) fireNewBestSolution(sol core.Solution, ev eval.Evaluation, val eval.Validation) error {
	return s.dispatch("newBestSolution", func(l Listener) { l.NewBestSolution(s, sol, ev, val) })
}

func (s *Search) fireNewCurrentSolution(sol core.Solution, ev eval.Evaluation, val eval.Validation) error {
	return s.dispatch("newCurrentSolution", func(l Listener) { l.NewCurrentSolution(s, sol, ev, val) })
}

func (s *Search) fireStepCompleted(step int64) error {
	return s.dispatch("stepCompleted", func(l Listener) { l.StepCompleted(s, step) })
}
