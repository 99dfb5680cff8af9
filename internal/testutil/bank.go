package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// BankEntry mirrors the on-disk question bank format.
type BankEntry struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// BankEntries builds n distinct questions with four options each.
func BankEntries(n int) []BankEntry {
	entries := make([]BankEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, BankEntry{
			Question: fmt.Sprintf("Question %03d?", i+1),
			Options: []string{
				fmt.Sprintf("Alpha %03d", i+1),
				fmt.Sprintf("Bravo %03d", i+1),
				fmt.Sprintf("Charlie %03d", i+1),
				fmt.Sprintf("Delta %03d", i+1),
			},
			Answer: i % 4,
		})
	}
	return entries
}

// WriteBank writes a JSON bank of n questions into dir and returns its path.
func WriteBank(t testing.TB, dir string, n int) string {
	t.Helper()
	data, err := json.MarshalIndent(BankEntries(n), "", "  ")
	if err != nil {
		t.Fatalf("marshal bank: %v", err)
	}
	path := filepath.Join(dir, "questions.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}
