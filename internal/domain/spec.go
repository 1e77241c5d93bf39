package domain

import "fmt"

// ProgramSpec is a program template: the shape shared by catalog presets
// and generator output, with no ids attached. Ids are assigned when the
// engine builds a Program from the spec, so loading a template twice never
// collides.
type ProgramSpec struct {
	Name   string
	Phases []PhaseSpec
}

// PhaseSpec is one phase of a program template.
type PhaseSpec struct {
	Name            string
	DurationSeconds int
	Ingredients     []Ingredient
}

// Validate rejects specs that would produce an invalid program: empty
// name, empty phase list, or a non-positive phase duration. Validation
// happens at the boundary that introduces the data — never later at tick
// time.
func (s ProgramSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProgram)
	}
	if len(s.Phases) == 0 {
		return fmt.Errorf("%w: %q has no phases", ErrInvalidProgram, s.Name)
	}
	for i, ph := range s.Phases {
		if ph.Name == "" {
			return fmt.Errorf("%w: %q phase %d has no name", ErrInvalidProgram, s.Name, i+1)
		}
		if ph.DurationSeconds < 1 {
			return fmt.Errorf("%w: %q phase %q duration %ds (must be at least 1s)",
				ErrInvalidProgram, s.Name, ph.Name, ph.DurationSeconds)
		}
		for _, ing := range ph.Ingredients {
			if ing.Name == "" {
				return fmt.Errorf("%w: %q phase %q has an unnamed ingredient",
					ErrInvalidProgram, s.Name, ph.Name)
			}
			if ing.Amount <= 0 {
				return fmt.Errorf("%w: %q ingredient %q amount %v (must be positive)",
					ErrInvalidProgram, s.Name, ing.Name, ing.Amount)
			}
		}
	}
	return nil
}
