// Package report renders the exam history as a standalone HTML page.
package report

//go:generate templ generate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pracexam/internal/history"
	"pracexam/internal/stats"
)

// Data is everything the report page shows.
type Data struct {
	Title       string
	GeneratedAt time.Time
	Summary     stats.Summary
	Exams       []history.SummaryRow
	Weakest     []stats.QuestionStat
}

// Render writes the report page for data to w.
func Render(ctx context.Context, w io.Writer, data Data) error {
	if data.Title == "" {
		data.Title = "Practice Exam History"
	}
	return Page(data).Render(ctx, w)
}

// RenderString renders the report into a string.
func RenderString(ctx context.Context, data Data) (string, error) {
	var builder strings.Builder
	if err := Render(ctx, &builder, data); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteFile renders the report to path, creating parent directories.
func WriteFile(ctx context.Context, path string, data Data) error {
	html, err := RenderString(ctx, data)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
