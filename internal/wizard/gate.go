package wizard

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidationDenied is returned by strict gates when a forward transition
// is refused. The default gate never returns it.
var ErrValidationDenied = errors.New("validation denied")

// Gate decides whether the user may advance past a step. Retreating is never
// gated.
type Gate interface {
	CanAdvance(step Step, form *FormState) error
}

// PermissiveGate allows every forward transition. This is the documented
// baseline: empty fields render downstream as "Non spécifié" instead of
// blocking navigation.
type PermissiveGate struct{}

func (PermissiveGate) CanAdvance(Step, *FormState) error { return nil }

// RequiredFieldsGate blocks advancing past a step while any of its listed
// fields is blank. It is not installed by default; wiring it in is an
// intentional tightening of the baseline behavior.
type RequiredFieldsGate struct {
	Required map[Step][]Field
}

func (g RequiredFieldsGate) CanAdvance(step Step, form *FormState) error {
	for _, field := range g.Required[step] {
		if strings.TrimSpace(form.Get(field)) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidationDenied, field)
		}
	}
	return nil
}
