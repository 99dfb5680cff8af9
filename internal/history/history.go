// Package history appends exam outcomes to the summary and detail CSV logs.
package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"pracexam/internal/exam"
)

// DateLayout is the timestamp format used in both logs.
const DateLayout = "2006-01-02 15:04"

// Default log file names inside the results directory.
const (
	DefaultSummaryFile = "results.csv"
	DefaultDetailFile  = "question_history.csv"
)

// SummaryHeader lists the summary log columns.
var SummaryHeader = []string{"Date", "Correct", "Total", "Score", "Result"}

// DetailHeader lists the detail log columns.
var DetailHeader = []string{"date", "exam_id", "qid", "question", "your_answer", "correct_answer", "is_correct"}

// Recorder appends outcomes to the summary and detail logs.
type Recorder struct {
	SummaryPath string
	DetailPath  string
}

// NewRecorder returns a recorder writing the default file names under dir.
func NewRecorder(dir string) Recorder {
	return Recorder{
		SummaryPath: filepath.Join(dir, DefaultSummaryFile),
		DetailPath:  filepath.Join(dir, DefaultDetailFile),
	}
}

// Record appends one summary row and one detail row per question. Both logs
// are attempted even if the first write fails.
func (r Recorder) Record(outcome exam.Outcome) error {
	var errs []error
	if err := appendRows(r.SummaryPath, SummaryHeader, [][]string{summaryRecord(outcome)}); err != nil {
		errs = append(errs, fmt.Errorf("save results summary: %w", err))
	}
	if err := appendRows(r.DetailPath, DetailHeader, detailRecords(outcome)); err != nil {
		errs = append(errs, fmt.Errorf("save question history: %w", err))
	}
	return errors.Join(errs...)
}

func summaryRecord(outcome exam.Outcome) []string {
	return []string{
		outcome.FinishedAt.Format(DateLayout),
		strconv.Itoa(outcome.Correct),
		strconv.Itoa(outcome.Total),
		strconv.Itoa(outcome.Score),
		string(outcome.Verdict),
	}
}

func detailRecords(outcome exam.Outcome) [][]string {
	date := outcome.FinishedAt.Format(DateLayout)
	records := make([][]string, 0, len(outcome.Answers))
	for _, answer := range outcome.Answers {
		isCorrect := "0"
		if answer.Correct {
			isCorrect = "1"
		}
		records = append(records, []string{
			date,
			outcome.ExamID,
			answer.Question.ID,
			answer.Question.Text,
			answer.Selected,
			answer.Question.Answer,
			isCorrect,
		})
	}
	return records
}

// appendRows opens path for append, writes header when the file is empty,
// then writes rows.
func appendRows(path string, header []string, rows [][]string) error {
	if path == "" {
		return errors.New("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	writer := csv.NewWriter(file)
	if info.Size() == 0 {
		if err := writer.Write(header); err != nil {
			_ = file.Close()
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := writer.WriteAll(rows); err != nil {
		_ = file.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}
