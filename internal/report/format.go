package report

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"pracexam/internal/history"
	"pracexam/internal/stats"
)

func formatDate(t time.Time) string {
	return t.Format(history.DateLayout)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

func formatPercent(share float64) string {
	return fmt.Sprintf("%.0f%%", share*100)
}

func formatCorrect(row history.SummaryRow) string {
	return fmt.Sprintf("%d/%d", row.Correct, row.Total)
}

func formatPassed(summary stats.Summary) string {
	return fmt.Sprintf("%d (%s)", summary.Passed, formatPercent(summary.PassRate()))
}

func formatAverage(summary stats.Summary) string {
	return fmt.Sprintf("%.0f", summary.AverageScore)
}

// newestFirst returns the log rows in reverse file order.
func newestFirst(rows []history.SummaryRow) []history.SummaryRow {
	out := slices.Clone(rows)
	slices.Reverse(out)
	return out
}
