package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	ws := newWorkspace(t, 80, 75)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--spec", ws.SpecPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Config OK") || !strings.Contains(out.String(), "80 questions") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandInsufficientBank verifies undersized banks fail.
func TestValidateCommandInsufficientBank(t *testing.T) {
	ws := newWorkspace(t, 10, 75)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--spec", ws.SpecPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "need at least 75 questions; found 10") {
		t.Fatalf("expected insufficient bank error, got %q", err.String())
	}
}

// TestValidateCommandFailure verifies config issues are reported.
func TestValidateCommandFailure(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	if err := os.WriteFile(ws.SpecPath, []byte("version: 2\nexam:\n  passing_score: 1000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--spec", ws.SpecPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{"Validation failed", "version", "exam.passing_score"} {
		if !strings.Contains(err.String(), want) {
			t.Fatalf("expected %q in stderr, got %q", want, err.String())
		}
	}
}

// TestValidateCommandBankOverride verifies --bank replaces the configured bank.
func TestValidateCommandBankOverride(t *testing.T) {
	ws := newWorkspace(t, 80, 75)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--spec", ws.SpecPath, "--bank", ws.Dir + "/missing.json"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "missing.json") {
		t.Fatalf("expected missing bank error, got %q", err.String())
	}
}

// TestValidateCommandRejectsArgs verifies positional arguments are usage errors.
func TestValidateCommandRejectsArgs(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
