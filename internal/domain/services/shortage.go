package services

import (
	"fmt"

	"github.com/ersonp/chargen/internal/domain/entities"
)

// Step identifies one selection of the generation pipeline.
type Step int

// Pipeline steps, in execution order.
const (
	StepName Step = iota
	StepPositiveFeatures
	StepNegativeFeatures
	StepItems
)

// String returns the human label used in diagnostics.
func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepPositiveFeatures:
		return "positive features"
	case StepNegativeFeatures:
		return "negative features"
	case StepItems:
		return "items"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Shortage describes a selection that returned fewer rows than required.
// It unwraps to entities.ErrInsufficientData.
type Shortage struct {
	Step      Step
	Gender    entities.Gender
	Themes    entities.ThemeFilter
	Requested int
	Received  int
}

// Error returns the diagnostic message.
func (s *Shortage) Error() string {
	switch {
	case s.Step == StepName:
		return fmt.Sprintf("No name with gender `%s` and themes `%s`", s.Gender, s.Themes)
	case s.Received == 0:
		return fmt.Sprintf("No %s for themes `%s`", s.Step, s.Themes)
	case s.Received < s.Requested:
		return fmt.Sprintf("Not enough %s for themes `%s`. Expected `%d`, found `%d`",
			s.Step, s.Themes, s.Requested, s.Received)
	default:
		return fmt.Sprintf("Unexpected number of %s for themes `%s`. Expected `%d`, found `%d`",
			s.Step, s.Themes, s.Requested, s.Received)
	}
}

// Unwrap lets callers match every shortage with errors.Is.
func (s *Shortage) Unwrap() error {
	return entities.ErrInsufficientData
}

// CheckQuantity classifies a feature or item selection. It returns nil when
// the selection is sufficient. Asking for zero rows is always sufficient.
func CheckQuantity(step Step, themes entities.ThemeFilter, requested, received int) *Shortage {
	if requested == 0 || received == requested {
		return nil
	}
	return &Shortage{
		Step:      step,
		Themes:    themes,
		Requested: requested,
		Received:  received,
	}
}

// CheckName classifies a name selection. A name is always required.
func CheckName(gender entities.Gender, themes entities.ThemeFilter, name *entities.Name) *Shortage {
	if name != nil {
		return nil
	}
	return &Shortage{
		Step:      StepName,
		Gender:    gender,
		Themes:    themes,
		Requested: 1,
	}
}
