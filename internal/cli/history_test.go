package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// takeTwice records a passing and a failing exam in ws.
func takeTwice(t *testing.T, ws workspace) {
	t.Helper()
	withStdin(t, strings.NewReader(""))
	var out, err bytes.Buffer
	if code := Run([]string{"take", "--spec", ws.SpecPath}, &out, &err); code != ExitOK {
		t.Fatalf("failing run: exit %d (%s)", code, err.String())
	}
	answerAll(t)
	if code := Run([]string{"take", "--spec", ws.SpecPath}, &out, &err); code != ExitOK {
		t.Fatalf("passing run: exit %d (%s)", code, err.String())
	}
}

func TestHistoryListsRuns(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	takeTwice(t, ws)

	var out, err bytes.Buffer
	code := Run([]string{"history", "--spec", ws.SpecPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	text := out.String()
	for _, want := range []string{"Date", "75/75", "0/75", "PASS", "FAIL", "Exams: 2  Passed: 1  Best score: 900"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, text)
		}
	}
	if strings.Index(text, "PASS") > strings.Index(text, "FAIL") {
		t.Fatalf("expected newest run first, got:\n%s", text)
	}
}

func TestHistoryLast(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	takeTwice(t, ws)

	var out, err bytes.Buffer
	code := Run([]string{"history", "--spec", ws.SpecPath, "--last", "1"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if strings.Contains(out.String(), "0/75") || !strings.Contains(out.String(), "Exams: 2") {
		t.Fatalf("expected only the latest run listed, got:\n%s", out.String())
	}
}

func TestHistoryEmpty(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	var out, err bytes.Buffer
	code := Run([]string{"history", "--spec", ws.SpecPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "No exams recorded yet") {
		t.Fatalf("expected empty message, got %q", out.String())
	}
}

func TestHistoryRejectsNegativeLast(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"history", "--last", "-1"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestStatsShowsWeakestQuestions(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	takeTwice(t, ws)

	var out, err bytes.Buffer
	code := Run([]string{"stats", "--spec", ws.SpecPath, "--top", "3"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	text := out.String()
	for _, want := range []string{"Exams: 2  Passed: 1 (50%)", "Best: 900", "Weakest questions:", "QID", "Question"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, text)
		}
	}
}

func TestStatsEmpty(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	var out, err bytes.Buffer
	code := Run([]string{"stats", "--spec", ws.SpecPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "No exams recorded yet") {
		t.Fatalf("expected empty message, got %q", out.String())
	}
}

func TestReportWritesHTML(t *testing.T) {
	ws := newWorkspace(t, 80, 75)
	takeTwice(t, ws)
	output := filepath.Join(ws.Dir, "out", "history.html")

	var out, err bytes.Buffer
	code := Run([]string{"report", "--spec", ws.SpecPath, "--output", output}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Report: "+output) {
		t.Fatalf("expected report path, got %q", out.String())
	}
	data, readErr := os.ReadFile(output)
	if readErr != nil {
		t.Fatalf("read report: %v", readErr)
	}
	if !strings.Contains(string(data), "<html") || !strings.Contains(string(data), "PASS") {
		t.Fatalf("expected html report with results")
	}
}
