package domain

import (
	"errors"
	"fmt"
)

// ErrNegativeHorseCount возвращается при отрицательном количестве лошадей
var ErrNegativeHorseCount = errors.New("horse count must not be negative")

// WizardStep is one screen of the booking creation flow
type WizardStep string

const (
	StepSelectType  WizardStep = "selectType"
	StepSelectTime  WizardStep = "selectTime"
	StepSelectHorse WizardStep = "selectHorse"
	StepConfirm     WizardStep = "confirm"
)

// ResolveSteps returns the visible wizard steps in canonical order.
//
// The horse selection step is skipped for flexible bookings (they are not
// horse-specific) and for customers with exactly one horse (it is selected
// implicitly). Customers without horses keep the step so they can add one
// during the flow.
func ResolveSteps(horseCount int, isFlexible bool) ([]WizardStep, error) {
	if horseCount < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeHorseCount, horseCount)
	}

	skipHorse := isFlexible || horseCount == 1

	steps := make([]WizardStep, 0, 4)
	steps = append(steps, StepSelectType, StepSelectTime)
	if !skipHorse {
		steps = append(steps, StepSelectHorse)
	}
	steps = append(steps, StepConfirm)

	return steps, nil
}
