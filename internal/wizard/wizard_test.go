package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerOrder(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 6)
	assert.Equal(t, []Step{StepInfo, StepObjectives, StepTechnical, StepConstraints, StepDeadlines, StepReview}, steps)

	s := NewSequencer()
	assert.Equal(t, StepInfo, s.Current())
	assert.True(t, s.IsFirst())
	assert.False(t, s.IsLast())
}

func TestSequencerBounds(t *testing.T) {
	s := NewSequencer()

	t.Run("retreat at first step is a no-op", func(t *testing.T) {
		assert.False(t, s.Retreat())
		assert.Equal(t, StepInfo, s.Current())
		assert.Equal(t, 0, s.Index())
	})

	t.Run("advance walks the fixed order", func(t *testing.T) {
		for i := 1; i < s.Len(); i++ {
			assert.True(t, s.Advance())
			assert.Equal(t, Steps()[i], s.Current())
		}
		assert.True(t, s.IsLast())
		assert.Equal(t, StepReview, s.Current())
	})

	t.Run("advance at review is a no-op", func(t *testing.T) {
		assert.False(t, s.Advance())
		assert.Equal(t, StepReview, s.Current())
		assert.Equal(t, s.Len()-1, s.Index())
	})

	t.Run("retreat is never blocked", func(t *testing.T) {
		assert.True(t, s.Retreat())
		assert.Equal(t, StepDeadlines, s.Current())
	})
}

func TestSequencerIndicator(t *testing.T) {
	s := NewSequencer()
	s.Advance()
	s.Advance() // at technical, index 2

	assert.True(t, s.Reached(0))
	assert.True(t, s.Reached(2))
	assert.False(t, s.Reached(3))

	assert.True(t, s.Completed(1))
	assert.False(t, s.Completed(2))
}

func TestFormStateGetSet(t *testing.T) {
	form := NewFormState()

	for _, field := range Fields() {
		assert.Equal(t, "", form.Get(field), "field %s should default to empty", field)
	}

	form.Set(FieldProjectName, "Refonte intranet")
	assert.Equal(t, "Refonte intranet", form.Get(FieldProjectName))
	assert.Equal(t, "Refonte intranet", form.ProjectName)

	// Last write wins, unconditionally.
	form.Set(FieldProjectName, "Portail client")
	assert.Equal(t, "Portail client", form.Get(FieldProjectName))

	form.Set(FieldBudgetMin, "5000")
	assert.Equal(t, "5000", form.BudgetMin)

	assert.Equal(t, "", form.Get(Field("unknown")))
}

func TestPermissiveGate(t *testing.T) {
	gate := PermissiveGate{}
	form := NewFormState()

	// The baseline gate never blocks, empty form included.
	for _, step := range Steps() {
		assert.NoError(t, gate.CanAdvance(step, form))
	}
}

func TestRequiredFieldsGate(t *testing.T) {
	gate := RequiredFieldsGate{Required: map[Step][]Field{
		StepInfo: {FieldProjectName, FieldCompanyName},
	}}
	form := NewFormState()

	err := gate.CanAdvance(StepInfo, form)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationDenied)

	form.Set(FieldProjectName, "CRM interne")
	form.Set(FieldCompanyName, "  ")
	assert.ErrorIs(t, gate.CanAdvance(StepInfo, form), ErrValidationDenied)

	form.Set(FieldCompanyName, "TechSolutions SAS")
	assert.NoError(t, gate.CanAdvance(StepInfo, form))

	// Steps with no required fields stay permissive.
	assert.NoError(t, gate.CanAdvance(StepObjectives, form))
}
