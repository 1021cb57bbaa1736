package search

import "time"

// Metrics is a torn-read-free snapshot of a Search's progress, built from
// atomic counters read without a lock.
type Metrics struct {
	Steps                    int64
	Accepted                 int64
	Rejected                 int64
	Runtime                  time.Duration
	TimeSinceLastImprovement time.Duration
}

// GetMetrics returns a consistent snapshot of the search's progress.
// Runtime is time since Start() if the search is still running, or the
// final run's duration once stopped.
func (s *Search) GetMetrics() Metrics {
	start := s.startNano.Load()
	end := s.endNano.Load()

	var runtime time.Duration
	if start != 0 {
		if end != 0 {
			runtime = time.Duration(end - start)
		} else {
			runtime = time.Since(time.Unix(0, start))
		}
	}

	var sinceImprovement time.Duration
	if last := s.lastImprovementNano.Load(); last != 0 {
		sinceImprovement = time.Since(time.Unix(0, last))
	}

	return Metrics{
		Steps:                    s.steps.Load(),
		Accepted:                 s.accepted.Load(),
		Rejected:                 s.rejected.Load(),
		Runtime:                  runtime,
		TimeSinceLastImprovement: sinceImprovement,
	}
}

// StepsSinceLastImprovement returns how many completed steps have elapsed
// since the best solution last changed.
func (s *Search) StepsSinceLastImprovement() int64 {
	return s.steps.Load() - s.lastImprovementStep.Load()
}
