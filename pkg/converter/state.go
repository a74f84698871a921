package converter

import "github.com/migliorelli/uconv/pkg/units"

// State holds what the screen shows: the text being edited, both selected
// units and the derived output. Every setter recomputes the output, so it
// never lags behind the inputs.
type State struct {
	input    string
	from     units.Unit
	to       units.Unit
	value    float64
	fallback bool
	output   float64
}

// Snapshot is a copy of a State at one point in time.
type Snapshot struct {
	Input    string
	Value    float64 // effective input after fallback substitution
	Fallback bool
	From     units.Unit
	To       units.Unit
	Output   float64
}

// New returns a State with empty input converting from one unit to another.
func New(from, to units.Unit) *State {
	s := &State{from: from, to: to}
	s.recompute()
	return s
}

func (s *State) recompute() {
	v, ok := ParseInput(s.input)
	s.value = v
	s.fallback = !ok
	s.output = ConvertValue(v, s.from, s.to)
}

// SetInput replaces the input text.
func (s *State) SetInput(text string) {
	s.input = text
	s.recompute()
}

// SetInputUnit changes the unit the input is expressed in.
func (s *State) SetInputUnit(u units.Unit) {
	s.from = u
	s.recompute()
}

// SetOutputUnit changes the unit the output is expressed in.
func (s *State) SetOutputUnit(u units.Unit) {
	s.to = u
	s.recompute()
}

// Swap exchanges the input and output units.
func (s *State) Swap() {
	s.from, s.to = s.to, s.from
	s.recompute()
}

func (s *State) Input() string { return s.input }
func (s *State) InputUnit() units.Unit { return s.from }
func (s *State) OutputUnit() units.Unit { return s.to }
func (s *State) Output() float64 { return s.output }

// UsedFallback reports whether the current input failed to parse.
func (s *State) UsedFallback() bool { return s.fallback }

// ResultLabel is the result line for the current output.
func (s *State) ResultLabel() string {
	return ResultLabel(s.output)
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Input:    s.input,
		Value:    s.value,
		Fallback: s.fallback,
		From:     s.from,
		To:       s.to,
		Output:   s.output,
	}
}
