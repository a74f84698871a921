// Package prompt runs a one-shot form asking for a value and two units.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/migliorelli/uconv/pkg/converter"
	"github.com/migliorelli/uconv/pkg/units"
)

// ErrAborted is returned when the user leaves the form without submitting.
var ErrAborted = errors.New("prompt aborted")

// Answers holds what the form collected.
type Answers struct {
	Input string
	From  units.Unit
	To    units.Unit
}

// UnitOptions lists every unit as a select option keyed by its label.
func UnitOptions() []huh.Option[units.Unit] {
	all := units.All()
	opts := make([]huh.Option[units.Unit], 0, len(all))
	for _, u := range all {
		opts = append(opts, huh.NewOption(u.Label(), u))
	}
	return opts
}

// NewForm builds the form, writing answers into a as fields change.
func NewForm(a *Answers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter value").
				Placeholder("10.0").
				Value(&a.Input),
			huh.NewSelect[units.Unit]().
				Title("From").
				Options(UnitOptions()...).
				Value(&a.From),
			huh.NewSelect[units.Unit]().
				Title("To").
				Options(UnitOptions()...).
				Value(&a.To),
		),
	)
}

// Run shows the form starting from the given units and returns the
// resulting conversion state.
func Run(from, to units.Unit) (*converter.State, error) {
	a := Answers{From: from, To: to}
	if err := NewForm(&a).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, err
	}
	return Apply(a), nil
}

// Apply turns answers into conversion state.
func Apply(a Answers) *converter.State {
	s := converter.New(a.From, a.To)
	s.SetInput(a.Input)
	return s
}
