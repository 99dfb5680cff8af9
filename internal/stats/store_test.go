package stats

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"pracexam/internal/testutil"
)

const testTimeout = 5 * time.Second

const detailCSV = `date,exam_id,qid,question,your_answer,correct_answer,is_correct
2026-04-01 10:00,20260401-100000,aaa111aaa111,"Which port, by default, does SSH use?",22,22,1
2026-04-01 10:00,20260401-100000,bbb222bbb222,"What does ""RAM"" stand for?",,Random Access Memory,0
2026-04-01 10:00,20260401-100000,ccc333ccc333,Which is an input device?,Keyboard,Keyboard,1
2026-04-02 18:30,20260402-183000,aaa111aaa111,"Which port, by default, does SSH use?",23,22,0
2026-04-02 18:30,20260402-183000,bbb222bbb222,"What does ""RAM"" stand for?",Read Access Memory,Random Access Memory,0
2026-04-02 18:30,20260402-183000,ccc333ccc333,Which is an input device?,Keyboard,Keyboard,1
`

const summaryCSV = `Date,Correct,Total,Score,Result
2026-04-01 10:00,2,3,633,FAIL
2026-04-02 18:30,3,3,900,PASS
2026-04-03 07:15,1,3,366,FAIL
`

// writeLogs writes the fixture logs and returns their paths.
func writeLogs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	summary := filepath.Join(dir, "results.csv")
	detail := filepath.Join(dir, "question_history.csv")
	if err := os.WriteFile(summary, []byte(summaryCSV), 0o644); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	if err := os.WriteFile(detail, []byte(detailCSV), 0o644); err != nil {
		t.Fatalf("write detail: %v", err)
	}
	return summary, detail
}

func openStore(t *testing.T, summary, detail string) *Store {
	t.Helper()
	store, err := Open(testutil.Context(t, testTimeout), summary, detail)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestQuestionsWeakestFirst(t *testing.T) {
	summary, detail := writeLogs(t)
	store := openStore(t, summary, detail)
	stats, err := store.Questions(testutil.Context(t, testTimeout), 0)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(stats))
	}
	order := []string{"bbb222bbb222", "aaa111aaa111", "ccc333ccc333"}
	for i, qid := range order {
		if stats[i].QID != qid {
			t.Fatalf("position %d: expected %s, got %s", i, qid, stats[i].QID)
		}
	}
	ram := stats[0]
	if ram.Question != `What does "RAM" stand for?` {
		t.Fatalf("expected unquoted question text, got %q", ram.Question)
	}
	if ram.Attempts != 2 || ram.Correct != 0 || ram.Accuracy != 0 {
		t.Fatalf("unexpected aggregate %+v", ram)
	}
	ssh := stats[1]
	if ssh.Attempts != 2 || ssh.Correct != 1 || ssh.Accuracy != 0.5 {
		t.Fatalf("unexpected aggregate %+v", ssh)
	}
	wantSeen := time.Date(2026, 4, 2, 18, 30, 0, 0, time.Local)
	if !ssh.LastSeen.Equal(wantSeen) {
		t.Fatalf("expected last seen %s, got %s", wantSeen, ssh.LastSeen)
	}
}

func TestQuestionsLimit(t *testing.T) {
	summary, detail := writeLogs(t)
	store := openStore(t, summary, detail)
	stats, err := store.Questions(testutil.Context(t, testTimeout), 1)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(stats) != 1 || stats[0].QID != "bbb222bbb222" {
		t.Fatalf("unexpected limited stats %+v", stats)
	}
}

func TestSummary(t *testing.T) {
	summary, detail := writeLogs(t)
	store := openStore(t, summary, detail)
	got, err := store.Summary(testutil.Context(t, testTimeout))
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.Exams != 3 || got.Passed != 1 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if got.BestScore != 900 || got.LatestScore != 366 {
		t.Fatalf("unexpected scores %+v", got)
	}
	if got.AverageScore != 633 {
		t.Fatalf("expected average 633, got %f", got.AverageScore)
	}
	if got.PassRate() < 0.333 || got.PassRate() > 0.334 {
		t.Fatalf("unexpected pass rate %f", got.PassRate())
	}
}

func TestMissingLogsAreEmpty(t *testing.T) {
	dir := t.TempDir()
	store := openStore(t, filepath.Join(dir, "results.csv"), filepath.Join(dir, "question_history.csv"))
	ctx := testutil.Context(t, testTimeout)
	stats, err := store.Questions(ctx, 10)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(stats) != 0 {
		t.Fatalf("expected no stats, got %+v", stats)
	}
	summary, err := store.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Exams != 0 || summary.PassRate() != 0 || !summary.LastTaken.IsZero() {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}
