package wizard

// Step is one screen of the wizard.
type Step string

const (
	StepInfo        Step = "info"
	StepObjectives  Step = "objectives"
	StepTechnical   Step = "technical"
	StepConstraints Step = "constraints"
	StepDeadlines   Step = "deadlines"
	StepReview      Step = "review"
)

// Steps returns the fixed step order. The flow is linear: no branches,
// no cycles.
func Steps() []Step {
	return []Step{StepInfo, StepObjectives, StepTechnical, StepConstraints, StepDeadlines, StepReview}
}

// Title returns the human-facing heading for a step.
func (s Step) Title() string {
	switch s {
	case StepInfo:
		return "Informations générales"
	case StepObjectives:
		return "Objectifs du projet"
	case StepTechnical:
		return "Spécifications techniques"
	case StepConstraints:
		return "Contraintes du projet"
	case StepDeadlines:
		return "Délais et jalons"
	case StepReview:
		return "Récapitulatif"
	}
	return string(s)
}

// Sequencer tracks the current position in the fixed step order. Advancing
// past the last step and retreating before the first are guarded no-ops,
// never errors.
type Sequencer struct {
	steps []Step
	index int
}

// NewSequencer starts a sequencer at the first step.
func NewSequencer() *Sequencer {
	return &Sequencer{steps: Steps()}
}

// Current returns the active step.
func (s *Sequencer) Current() Step {
	return s.steps[s.index]
}

// Index returns the zero-based position of the active step.
func (s *Sequencer) Index() int {
	return s.index
}

// Len returns the number of steps.
func (s *Sequencer) Len() int {
	return len(s.steps)
}

// IsFirst reports whether the active step is the first one.
func (s *Sequencer) IsFirst() bool {
	return s.index == 0
}

// IsLast reports whether the active step is the terminal review step.
func (s *Sequencer) IsLast() bool {
	return s.index == len(s.steps)-1
}

// Advance moves one step forward and reports whether the position changed.
func (s *Sequencer) Advance() bool {
	if s.index >= len(s.steps)-1 {
		return false
	}
	s.index++
	return true
}

// Retreat moves one step back and reports whether the position changed.
// Going back is never blocked by validation.
func (s *Sequencer) Retreat() bool {
	if s.index <= 0 {
		return false
	}
	s.index--
	return true
}

// Reached reports whether the step marker at position i should render as
// reached (the dot), Completed whether the connector before the next marker
// should render as completed (the line).
func (s *Sequencer) Reached(i int) bool {
	return i <= s.index
}

// Completed reports whether the connecting line after marker i is filled.
func (s *Sequencer) Completed(i int) bool {
	return i < s.index
}
