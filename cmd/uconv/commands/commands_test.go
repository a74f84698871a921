package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/migliorelli/uconv/pkg/report"
	"github.com/migliorelli/uconv/pkg/units"
	"github.com/migliorelli/uconv/pkg/version"
)

func notTerminal() bool { return false }

// run executes the CLI in-process with an isolated HOME.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd(notTerminal)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvertText(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"convert", "100", "--from", "cm", "--to", "m"}, "Result: 1.0\n"},
		{[]string{"convert", "1", "--from", "meters", "--to", "feet"}, "Result: 3.28\n"},
		{[]string{"convert", "abc"}, "Result: 0.1\n"},
		{[]string{"convert", ""}, "Result: 0.1\n"},
		{[]string{"convert", "0.005", "-f", "m", "-t", "m"}, "Result: 0.01\n"},
		{[]string{"convert", "--from", "m", "--to", "cm", "--", "-3"}, "Result: -300.0\n"},
	}
	for _, tt := range tests {
		stdout, stderr, err := run(t, tt.args...)
		if err != nil {
			t.Errorf("%v failed: %v\nstderr=%s", tt.args, err, stderr)
			continue
		}
		if stdout != tt.want {
			t.Errorf("%v: stdout = %q, want %q", tt.args, stdout, tt.want)
		}
		if stderr != "" {
			t.Errorf("%v: expected empty stderr; got:\n%s", tt.args, stderr)
		}
	}
}

func TestConvertJSON(t *testing.T) {
	stdout, stderr, err := run(t, "convert", "12", "--from", "ft", "--to", "cm", "--format", "json")
	if err != nil {
		t.Fatalf("convert failed: %v\nstderr=%s", err, stderr)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr; got:\n%s", stderr)
	}

	var payload report.Result
	if err := json.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("json decode: %v\nout=%s", err, stdout)
	}
	if payload.From != "feet" || payload.To != "centimeters" {
		t.Errorf("Unexpected units %q -> %q", payload.From, payload.To)
	}
	if payload.Output != 365.74 || payload.Text != "Result: 365.74" || payload.Fallback {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestConvertYAMLReportsFallback(t *testing.T) {
	stdout, _, err := run(t, "convert", "ten", "-o", "yaml")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	var payload report.Result
	if err := yaml.Unmarshal([]byte(stdout), &payload); err != nil {
		t.Fatalf("yaml decode: %v\nout=%s", err, stdout)
	}
	if !payload.Fallback || payload.Value != 10 || payload.Output != 0.1 {
		t.Errorf("Expected fallback payload, got %+v", payload)
	}
}

func TestConvertDebugLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := run(t, "convert", "abc", "--log-level", "debug")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if stdout != "Result: 0.1\n" {
		t.Errorf("stdout should only hold the result, got %q", stdout)
	}
	if !strings.Contains(stderr, "using fallback") {
		t.Errorf("Expected fallback debug log on stderr, got %q", stderr)
	}
}

func TestConvertUsesConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uconv.yaml")
	if err := os.WriteFile(path, []byte("defaults:\n  from: mm\n  to: cm\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	stdout, _, err := run(t, "convert", "25", "--config", path)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if stdout != "Result: 2.5\n" {
		t.Errorf("Expected 25 mm = 2.5 cm, got %q", stdout)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, _, err := run(t, "convert", "1", "--from", "parsecs"); !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("Expected ErrUnknownUnit for --from, got %v", err)
	}
	if _, _, err := run(t, "convert", "1", "--to", "inch"); !errors.Is(err, units.ErrUnknownUnit) {
		t.Errorf("Expected ErrUnknownUnit for --to, got %v", err)
	}
	if _, _, err := run(t, "convert", "1", "--format", "xml"); !errors.Is(err, report.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
	if _, _, err := run(t, "convert"); err == nil {
		t.Error("Expected an error without VALUE")
	}
	if _, _, err := run(t, "convert", "1", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing --config file")
	}
}

func TestUnitsCommand(t *testing.T) {
	stdout, stderr, err := run(t, "units")
	if err != nil {
		t.Fatalf("units failed: %v\nstderr=%s", err, stderr)
	}
	for _, want := range []string{"centimeters", "meters", "feet", "millimeters"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("units output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = run(t, "units", "--format", "json")
	if err != nil {
		t.Fatalf("units --format json failed: %v", err)
	}
	var table []report.UnitInfo
	if err := json.Unmarshal([]byte(stdout), &table); err != nil {
		t.Fatalf("json decode: %v\nout=%s", err, stdout)
	}
	if len(table) != 4 || table[0].FactorToMeters != 0.01 {
		t.Errorf("Unexpected unit table: %+v", table)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if stdout != "uconv version "+version.Version+"\n" {
		t.Errorf("Unexpected version output %q", stdout)
	}
}

func TestInteractiveNeedsTerminal(t *testing.T) {
	if _, _, err := run(t); !errors.Is(err, errNotTerminal) {
		t.Errorf("Expected errNotTerminal, got %v", err)
	}
	if _, _, err := run(t, "prompt"); !errors.Is(err, errNotTerminal) {
		t.Errorf("Expected errNotTerminal for prompt, got %v", err)
	}
}
