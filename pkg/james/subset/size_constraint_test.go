package subset

import (
	"testing"

	"github.com/huanfachen/james-go/pkg/james/core"
)

func TestNewSizeConstraintPanicsWhenMaxBelowMin(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic when max < min")
		}
	}()
	NewSizeConstraint(5, 2)
}

func TestSizeConstraintValidate(t *testing.T) {
	c := NewSizeConstraint(2, 3)
	s := NewEmptySolution([]int{1, 2, 3, 4})

	if c.Validate(s, nil).Passed() {
		t.Error("size 0 should fail a [2,3] bound")
	}
	s.SelectAll([]int{1, 2})
	if !c.Validate(s, nil).Passed() {
		t.Error("size 2 should pass a [2,3] bound")
	}
	s.Select(3)
	if !c.Validate(s, nil).Passed() {
		t.Error("size 3 should pass a [2,3] bound")
	}
	s.Select(4)
	if c.Validate(s, nil).Passed() {
		t.Error("size 4 should fail a [2,3] bound")
	}
}

func TestSizeConstraintValidateDeltaMatchesFullValidation(t *testing.T) {
	c := NewSizeConstraint(2, 3)
	s := NewEmptySolution([]int{1, 2, 3, 4})
	s.SelectAll([]int{1, 2})

	move := NewAdditionMove(3)
	delta, err := c.ValidateDelta(move, s, c.Validate(s, nil), nil)
	if err != nil {
		t.Fatalf("ValidateDelta returned an error: %v", err)
	}

	move.Apply(s)
	full := c.Validate(s, nil)
	if delta.Passed() != full.Passed() {
		t.Errorf("delta.Passed() = %v, full.Passed() = %v, want agreement", delta.Passed(), full.Passed())
	}
}

func TestSizeConstraintValidateDeltaRejectsForeignMoveKind(t *testing.T) {
	c := NewSizeConstraint(0, 10)
	s := NewEmptySolution([]int{1, 2})

	_, err := c.ValidateDelta(foreignMove{}, s, c.Validate(s, nil), nil)
	if err == nil {
		t.Error("expected ErrIncompatibleDeltaValidation for a non-*subset.Move")
	}
}

type foreignMove struct{}

func (foreignMove) Apply(core.Solution) {}
func (foreignMove) Undo(core.Solution)  {}
