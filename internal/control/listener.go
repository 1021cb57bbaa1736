package control

import (
	"encoding/json"
	"log"

	"github.com/huanfachen/james-go/pkg/james/core"
	"github.com/huanfachen/james-go/pkg/james/eval"
	"github.com/huanfachen/james-go/pkg/james/search"
)

// event is the wire shape of every message pushed to the Hub: a type tag
// plus whichever of the optional fields that event kind carries.
type event struct {
	Type      string  `json:"type"`
	SearchID  string  `json:"searchId"`
	Step      int64   `json:"step,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Validated bool    `json:"validated,omitempty"`
}

// EventListener implements search.Listener, forwarding every lifecycle and
// solution-tracking event to a Hub as JSON.
type EventListener struct {
	Hub *Hub
}

// NewEventListener builds an EventListener publishing to hub.
func NewEventListener(hub *Hub) *EventListener {
	return &EventListener{Hub: hub}
}

func (l *EventListener) publish(e event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("[control] failed to marshal search event: %v", err)
		return
	}
	l.Hub.Broadcast(data)
}

// SearchStarted implements search.Listener.
func (l *EventListener) SearchStarted(s *search.Search) {
	l.publish(event{Type: "search_started", SearchID: s.ID().String()})
}

// SearchStopped implements search.Listener.
func (l *EventListener) SearchStopped(s *search.Search) {
	l.publish(event{Type: "search_stopped", SearchID: s.ID().String()})
}

// NewBestSolution implements search.Listener.
func (l *EventListener) NewBestSolution(s *search.Search, sol core.Solution, ev eval.Evaluation, val eval.Validation) {
	l.publish(event{Type: "new_best", SearchID: s.ID().String(), Value: ev.Value(), Validated: val.Passed()})
}

// NewCurrentSolution implements search.Listener.
func (l *EventListener) NewCurrentSolution(s *search.Search, sol core.Solution, ev eval.Evaluation, val eval.Validation) {
	l.publish(event{Type: "new_current", SearchID: s.ID().String(), Value: ev.Value(), Validated: val.Passed()})
}

// StepCompleted implements search.Listener.
func (l *EventListener) StepCompleted(s *search.Search, step int64) {
	l.publish(event{Type: "step_completed", SearchID: s.ID().String(), Step: step})
}
