// Package report renders conversion results and the unit table for
// scripts as well as people.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/migliorelli/uconv/pkg/converter"
	"github.com/migliorelli/uconv/pkg/units"
)

// ErrUnknownFormat is returned for output formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Result describes one conversion.
type Result struct {
	Input    string  `json:"input" yaml:"input"`
	Value    float64 `json:"value" yaml:"value"`
	Fallback bool    `json:"fallback" yaml:"fallback"`
	From     string  `json:"from" yaml:"from"`
	To       string  `json:"to" yaml:"to"`
	Output   float64 `json:"output" yaml:"output"`
	Text     string  `json:"text" yaml:"text"`
}

// FromSnapshot builds a Result from converter state.
func FromSnapshot(s converter.Snapshot) Result {
	return Result{
		Input:    s.Input,
		Value:    s.Value,
		Fallback: s.Fallback,
		From:     s.From.Key(),
		To:       s.To.Key(),
		Output:   s.Output,
		Text:     converter.ResultLabel(s.Output),
	}
}

// UnitInfo is one row of the unit listing.
type UnitInfo struct {
	Key            string   `json:"key" yaml:"key"`
	Symbol         string   `json:"symbol" yaml:"symbol"`
	Label          string   `json:"label" yaml:"label"`
	FactorToMeters float64  `json:"factor_to_meters" yaml:"factor_to_meters"`
	Aliases        []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// UnitTable describes every supported unit.
func UnitTable() []UnitInfo {
	all := units.All()
	out := make([]UnitInfo, 0, len(all))
	for _, u := range all {
		out = append(out, UnitInfo{
			Key:            u.Key(),
			Symbol:         u.Symbol(),
			Label:          u.Label(),
			FactorToMeters: u.FactorToMeters(),
			Aliases:        u.Aliases(),
		})
	}
	return out
}

// WriteResult writes r to w. Text output is just the result label.
func WriteResult(w io.Writer, format Format, r Result) error {
	if format == FormatText {
		_, err := fmt.Fprintln(w, r.Text)
		return err
	}
	return encode(w, format, r)
}

// WriteUnits writes the unit table to w.
func WriteUnits(w io.Writer, format Format, table []UnitInfo) error {
	if format == FormatText {
		for _, u := range table {
			if _, err := fmt.Fprintf(w, "%-12s %-3s %-12s %g\n", u.Key, u.Symbol, u.Label, u.FactorToMeters); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(w, format, table)
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
