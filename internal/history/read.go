package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"pracexam/internal/score"
)

// SummaryRow is one parsed summary log line.
type SummaryRow struct {
	Date    time.Time
	Correct int
	Total   int
	Score   int
	Verdict score.Verdict
}

// DetailRow is one parsed detail log line.
type DetailRow struct {
	Date          time.Time
	ExamID        string
	QID           string
	Question      string
	YourAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// ReadSummary parses the summary log. A missing file reads as empty.
func ReadSummary(path string) ([]SummaryRow, error) {
	records, err := readRecords(path, SummaryHeader)
	if err != nil {
		return nil, err
	}
	rows := make([]SummaryRow, 0, len(records))
	for i, record := range records {
		line := i + 2
		date, err := time.ParseInLocation(DateLayout, record[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: parse date: %w", path, line, err)
		}
		ints := make([]int, 3)
		for j := range ints {
			value, err := strconv.Atoi(record[j+1])
			if err != nil {
				return nil, fmt.Errorf("%s line %d: parse %s: %w", path, line, SummaryHeader[j+1], err)
			}
			ints[j] = value
		}
		rows = append(rows, SummaryRow{
			Date:    date,
			Correct: ints[0],
			Total:   ints[1],
			Score:   ints[2],
			Verdict: score.Verdict(record[4]),
		})
	}
	return rows, nil
}

// ReadDetail parses the detail log. A missing file reads as empty.
func ReadDetail(path string) ([]DetailRow, error) {
	records, err := readRecords(path, DetailHeader)
	if err != nil {
		return nil, err
	}
	rows := make([]DetailRow, 0, len(records))
	for i, record := range records {
		date, err := time.ParseInLocation(DateLayout, record[0], time.Local)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: parse date: %w", path, i+2, err)
		}
		rows = append(rows, DetailRow{
			Date:          date,
			ExamID:        record[1],
			QID:           record[2],
			Question:      record[3],
			YourAnswer:    record[4],
			CorrectAnswer: record[5],
			IsCorrect:     record[6] == "1",
		})
	}
	return rows, nil
}

// readRecords returns the data records of a CSV log after checking its header.
func readRecords(path string, header []string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)
	first, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", path, err)
	}
	for i, column := range header {
		if first[i] != column {
			return nil, fmt.Errorf("%s: unexpected column %q, want %q", path, first[i], column)
		}
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}
