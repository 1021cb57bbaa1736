package search

import "time"

// StopCriterion is polled on a background worker while a Search is
// running, and checked again after every completed step; the first one to
// report true triggers Stop().
type StopCriterion interface {
	ShouldStop(s *Search) bool
}

// MinStopCriterionCheckPeriod is the minimum enforced polling period;
// registering a smaller one is a contract violation and panics.
const MinStopCriterionCheckPeriod = time.Millisecond

// AddStopCriterion registers c. Safe to call at any time, including
// mid-run.
func (s *Search) AddStopCriterion(c StopCriterion) {
	s.stopCriteriaMu.Lock()
	defer s.stopCriteriaMu.Unlock()
	s.stopCriteria = append(s.stopCriteria, c)
}

// RemoveStopCriterion unregisters c, if present.
func (s *Search) RemoveStopCriterion(c StopCriterion) {
	s.stopCriteriaMu.Lock()
	defer s.stopCriteriaMu.Unlock()
	for i, existing := range s.stopCriteria {
		if existing == c {
			s.stopCriteria = append(s.stopCriteria[:i], s.stopCriteria[i+1:]...)
			return
		}
	}
}

func (s *Search) snapshotStopCriteria() []StopCriterion {
	s.stopCriteriaMu.Lock()
	defer s.stopCriteriaMu.Unlock()
	return append([]StopCriterion(nil), s.stopCriteria...)
}

// SetStopCriterionCheckPeriod configures the background poller's interval.
// A period below MinStopCriterionCheckPeriod is a contract violation and
// panics immediately.
func (s *Search) SetStopCriterionCheckPeriod(period time.Duration) {
	if period < MinStopCriterionCheckPeriod {
		panic("search: stop criterion check period below the enforced minimum")
	}
	s.stopCheckPeriod = period
}

// pollStopCriteria runs on its own goroutine for the lifetime of one run:
// it wakes every stopCheckPeriod, evaluates every registered criterion,
// and calls Stop() on the first positive result. It exits as soon as the
// run's done channel closes.
func (s *Search) pollStopCriteria(done <-chan struct{}) {
	defer close(s.pollerExited)

	ticker := time.NewTicker(s.stopCheckPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			for _, c := range s.snapshotStopCriteria() {
				if c.ShouldStop(s) {
					s.Stop()
					break
				}
			}
		}
	}
}
