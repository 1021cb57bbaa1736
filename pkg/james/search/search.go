package search

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
	"github.com/huanfachen/james-go/pkg/james/problem"
)

// DefaultStopCriterionCheckPeriod balances prompt termination against poller
// overhead: coarse enough to avoid contending with the step loop, fine
// enough that a satisfied stop criterion is noticed well within a search's
// typical runtime.
const DefaultStopCriterionCheckPeriod = 50 * time.Millisecond

// Stepper performs one algorithm-specific search step. Implementations are
// RandomDescent, SteepestDescent, VND, RVNS, and VNS in package algo.
type Stepper interface {
	Step(s *Search) error
}

// Search is the engine that drives a Stepper over a Problem. It owns the
// lifecycle state machine (Start/Stop/Dispose), listener and stop-criterion
// dispatch, and the current/best solution tracking every neighbourhood
// algorithm needs (see neighbourhood.go).
type Search struct {
	id   uuid.UUID
	name string

	problem *problem.Problem
	rng     problem.RNG
	stepper Stepper

	stateMu sync.Mutex
	status  Status

	// mu guards current/currentEval/currentVal/best/bestEval/bestVal: the
	// step loop mutates them on the search goroutine while the stop-criterion
	// poller and external callers (status/control endpoints) read them
	// concurrently.
	mu          sync.Mutex
	current     core.Solution
	currentEval eval.Evaluation
	currentVal  eval.Validation
	best        core.Solution
	bestEval    eval.Evaluation
	bestVal     eval.Validation

	steps    atomic.Int64
	accepted atomic.Int64
	rejected atomic.Int64

	startNano           atomic.Int64
	endNano             atomic.Int64
	lastImprovementNano atomic.Int64
	lastImprovementStep atomic.Int64
	lastDeltaBits       atomic.Uint64

	listenersMu sync.Mutex
	listeners   []Listener

	stopCriteriaMu  sync.Mutex
	stopCriteria    []StopCriterion
	stopCheckPeriod time.Duration

	stopRequested atomic.Bool
	pollerExited  chan struct{}
}

// New builds a Search bound to p, driven by stepper, using rng as its
// private random source. name is used only in logging and need not be
// unique.
func New(name string, p *problem.Problem, stepper Stepper, rng problem.RNG) *Search {
	if p == nil {
		panic("search: problem must not be nil")
	}
	if stepper == nil {
		panic("search: stepper must not be nil")
	}
	if rng == nil {
		panic("search: rng must not be nil")
	}
	return &Search{
		id:              uuid.New(),
		name:            name,
		problem:         p,
		rng:             rng,
		stepper:         stepper,
		status:          Idle,
		stopCheckPeriod: DefaultStopCriterionCheckPeriod,
	}
}

// ID returns the Search's unique identity, stable for its whole lifetime.
func (s *Search) ID() uuid.UUID { return s.id }

// Name returns the caller-supplied label.
func (s *Search) Name() string { return s.name }

// Problem returns the bound Problem.
func (s *Search) Problem() *problem.Problem { return s.problem }

// RNG returns the Search's private random source.
func (s *Search) RNG() problem.RNG { return s.rng }

// Status reports the current lifecycle state.
func (s *Search) Status() Status {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.status
}

// Start runs the search to completion: Idle -> Initializing -> Running,
// repeatedly invoking the Stepper until a stop criterion (or an explicit
// Stop() call) fires, then Running -> Terminating -> Idle. It blocks the
// calling goroutine for the whole run; call it from its own goroutine for
// a non-blocking search.
//
// Start is legal only from Idle and panics otherwise.
// Re-invoking Start after a prior run resumes from that run's best
// solution: counters reset, but the best-so-far is preserved.
func (s *Search) Start() error {
	s.stateMu.Lock()
	if s.status != Idle {
		status := s.status
		s.stateMu.Unlock()
		panic("search: start is only legal from Idle, was " + status.String())
	}
	s.status = Initializing
	s.stateMu.Unlock()

	s.steps.Store(0)
	s.accepted.Store(0)
	s.rejected.Store(0)
	s.stopRequested.Store(false)
	now := time.Now()
	s.startNano.Store(now.UnixNano())
	s.endNano.Store(0)
	s.lastImprovementNano.Store(now.UnixNano())
	s.lastImprovementStep.Store(0)

	if err := s.fireSearchStarted(); err != nil {
		return s.abort(err)
	}

	s.stateMu.Lock()
	s.status = Running
	s.stateMu.Unlock()

	s.mu.Lock()
	best := s.best
	hasCurrent := s.current != nil
	s.mu.Unlock()

	var initial core.Solution
	switch {
	case best != nil:
		initial = best.CheckedCopy()
	case !hasCurrent:
		initial = s.problem.CreateRandomSolution(s.rng)
	}
	if initial != nil {
		if err := s.SetCurrentSolution(initial); err != nil {
			return s.abort(err)
		}
	}

	done := make(chan struct{})
	s.pollerExited = make(chan struct{})
	go s.pollStopCriteria(done)

	var runErr error
	for !s.stopRequested.Load() {
		if err := s.safeStep(); err != nil {
			runErr = err
			s.stopRequested.Store(true)
			break
		}
		step := s.steps.Add(1)
		if err := s.fireStepCompleted(step); err != nil && runErr == nil {
			runErr = err
			s.stopRequested.Store(true)
		}
		for _, c := range s.snapshotStopCriteria() {
			if c.ShouldStop(s) {
				s.Stop()
				break
			}
		}
	}

	close(done)
	<-s.pollerExited

	s.stateMu.Lock()
	s.status = Terminating
	s.stateMu.Unlock()

	s.endNano.Store(time.Now().UnixNano())

	if err := s.fireSearchStopped(); err != nil && runErr == nil {
		runErr = err
	}

	s.stateMu.Lock()
	s.status = Idle
	s.stateMu.Unlock()

	return runErr
}

func (s *Search) abort(err error) error {
	s.endNano.Store(time.Now().UnixNano())
	s.stateMu.Lock()
	s.status = Idle
	s.stateMu.Unlock()
	return err
}

func (s *Search) safeStep() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = core.NewJamesRuntimeError("searchStep", e)
			} else {
				err = core.NewJamesRuntimeError("searchStep", fmt.Errorf("%v", r))
			}
		}
	}()
	return s.stepper.Step(s)
}

// Stop requests termination. Idempotent and safe to call from any thread;
// it has no effect when the search is not running.
func (s *Search) Stop() {
	s.stopRequested.CompareAndSwap(false, true)
}

// Dispose releases the search. Legal only from Idle; any subsequent
// operation on a disposed Search panics.
func (s *Search) Dispose() {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if s.status != Idle {
		panic("search: dispose is only legal from Idle, was " + s.status.String())
	}
	s.status = Disposed
}
