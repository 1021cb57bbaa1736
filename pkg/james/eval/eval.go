// Package eval holds the numeric scalar outcomes (Evaluation) and
// boolean/penalty outcomes (Validation) that objectives and constraints
// produce, plus their composition: penalized evaluation and subset
// validation.
package eval

import (
	"fmt"
	"sync"
)

// Evaluation carries a real-valued score for a solution.
type Evaluation interface {
	Value() float64
}

// SimpleEvaluation is a direct numeric score.
type SimpleEvaluation float64

// Value implements Evaluation.
func (e SimpleEvaluation) Value() float64 { return float64(e) }

// PenalizedEvaluation wraps an inner Evaluation and a keyed mapping of
// PenalizingValidations. Its value is inner ± Σ penalties — plus when
// minimizing, minus when maximizing — composed in the deterministic
// insertion order of the penalty keys. The combined value is lazily cached
// and invalidated on every mutation of the penalty mapping.
type PenalizedEvaluation struct {
	mu          sync.Mutex
	inner       Evaluation
	isMinimizing bool
	keys        []any
	penalties   map[any]PenalizingValidation

	cached bool
	value  float64
}

// NewPenalizedEvaluation wraps inner with no penalties yet applied.
func NewPenalizedEvaluation(inner Evaluation, isMinimizing bool) *PenalizedEvaluation {
	return &PenalizedEvaluation{
		inner:        inner,
		isMinimizing: isMinimizing,
		penalties:    make(map[any]PenalizingValidation),
	}
}

// SetPenalty installs (or replaces) the penalizing validation for key,
// invalidating the cached value. If key is new, it is appended to the
// insertion-order key list.
func (p *PenalizedEvaluation) SetPenalty(key any, v PenalizingValidation) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.penalties[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.penalties[key] = v
	p.cached = false
}

// Inner returns the wrapped Evaluation.
func (p *PenalizedEvaluation) Inner() Evaluation {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inner
}

// Penalty returns the penalty currently recorded for key and whether one is
// present.
func (p *PenalizedEvaluation) Penalty(key any) (PenalizingValidation, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.penalties[key]
	return v, ok
}

// Value implements Evaluation. It recomputes only when the penalty mapping
// has changed since the last call.
func (p *PenalizedEvaluation) Value() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached {
		return p.value
	}
	total := p.inner.Value()
	var penaltySum float64
	for _, k := range p.keys {
		penaltySum += p.penalties[k].Penalty()
	}
	if p.isMinimizing {
		total += penaltySum
	} else {
		total -= penaltySum
	}
	p.value = total
	p.cached = true
	return p.value
}

// String renders the evaluation, omitting the "(penalized)" annotation only
// when every recorded penalty reports Passed() true — per the invariant
// that Passed() implies Penalty()==0 (enforced at PenalizingValidation
// construction), a non-zero penalty can never coexist with an all-passed
// mapping.
func (p *PenalizedEvaluation) String() string {
	p.mu.Lock()
	allPassed := true
	for _, k := range p.keys {
		if !p.penalties[k].Passed() {
			allPassed = false
			break
		}
	}
	p.mu.Unlock()

	if allPassed {
		return fmt.Sprintf("%v", p.Value())
	}
	return fmt.Sprintf("%v (penalized)", p.Value())
}
