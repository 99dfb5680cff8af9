package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"pracexam/internal/testutil"
)

// workspace is a temp directory with a config, a bank, and a results dir.
type workspace struct {
	Dir        string
	SpecPath   string
	BankPath   string
	ResultsDir string
}

// newWorkspace writes a config pointing at a bank of bankSize questions and
// an exam of examSize questions.
func newWorkspace(t *testing.T, bankSize, examSize int) workspace {
	t.Helper()
	dir := t.TempDir()
	ws := workspace{
		Dir:        dir,
		SpecPath:   filepath.Join(dir, ".pracexam", "config.yml"),
		BankPath:   testutil.WriteBank(t, dir, bankSize),
		ResultsDir: filepath.Join(dir, "results"),
	}
	body := fmt.Sprintf(`version: 1
bank: "questions.json"
exam:
  size: %d
  time_limit_minutes: 30
  passing_score: 650
results:
  dir: "results"
ui:
  mode: plain
`, examSize)
	if err := os.MkdirAll(filepath.Dir(ws.SpecPath), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(ws.SpecPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return ws
}

// withStdin replaces the command input for the test.
func withStdin(t *testing.T, r io.Reader) {
	t.Helper()
	original := stdin
	stdin = r
	t.Cleanup(func() { stdin = original })
}

// countLines returns the number of lines in a file.
func countLines(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	count := 0
	for _, b := range data {
		if b == '\n' {
			count++
		}
	}
	return count
}
