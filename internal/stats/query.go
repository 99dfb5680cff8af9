package stats

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"pracexam/internal/history"
)

// QuestionStat aggregates every recorded attempt at one question.
type QuestionStat struct {
	QID           string
	Question      string
	CorrectAnswer string
	Attempts      int
	Correct       int
	Accuracy      float64
	LastSeen      time.Time
}

// Summary aggregates the exam results log.
type Summary struct {
	Exams        int
	Passed       int
	AverageScore float64
	BestScore    int
	LatestScore  int
	LastTaken    time.Time
}

// PassRate returns the share of exams passed.
func (s Summary) PassRate() float64 {
	if s.Exams == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Exams)
}

const questionsQuery = `
SELECT
	qid,
	arg_max(question, date) AS question,
	arg_max(correct_answer, date) AS correct_answer,
	CAST(count(*) AS BIGINT) AS attempts,
	CAST(sum(is_correct) AS BIGINT) AS correct,
	max(date) AS last_seen
FROM question_history
GROUP BY qid
ORDER BY CAST(sum(is_correct) AS DOUBLE) / count(*) ASC, count(*) DESC, qid ASC`

const summaryQuery = `
SELECT
	CAST(count(*) AS BIGINT),
	CAST(coalesce(sum(CASE WHEN Result = 'PASS' THEN 1 ELSE 0 END), 0) AS BIGINT),
	coalesce(avg(Score), 0),
	coalesce(max(Score), 0),
	coalesce(arg_max(Score, Date), 0),
	coalesce(max(Date), '')
FROM exam_results`

// Questions returns per-question aggregates, weakest first. A limit of zero
// or less returns every question.
func (s *Store) Questions(ctx context.Context, limit int) ([]QuestionStat, error) {
	query := questionsQuery
	if limit > 0 {
		query += fmt.Sprintf("\nLIMIT %d", limit)
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query question stats: %w", err)
	}
	defer rows.Close()

	var out []QuestionStat
	for rows.Next() {
		var stat QuestionStat
		var lastSeen string
		if err := rows.Scan(&stat.QID, &stat.Question, &stat.CorrectAnswer, &stat.Attempts, &stat.Correct, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan question stats: %w", err)
		}
		if stat.Attempts > 0 {
			stat.Accuracy = float64(stat.Correct) / float64(stat.Attempts)
		}
		stat.LastSeen = parseDate(lastSeen)
		out = append(out, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate question stats: %w", err)
	}
	return out, nil
}

// Summary aggregates the results log.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var summary Summary
	var average sql.NullFloat64
	var lastTaken string
	row := s.db.QueryRowContext(ctx, summaryQuery)
	if err := row.Scan(&summary.Exams, &summary.Passed, &average, &summary.BestScore, &summary.LatestScore, &lastTaken); err != nil {
		return Summary{}, fmt.Errorf("query summary: %w", err)
	}
	summary.AverageScore = average.Float64
	summary.LastTaken = parseDate(lastTaken)
	return summary, nil
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.ParseInLocation(history.DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
