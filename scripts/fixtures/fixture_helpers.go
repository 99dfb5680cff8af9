package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"pracexam/internal/question"
)

// newRand returns a deterministic source unless seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

// writeBank writes n numbered questions with four options each.
func writeBank(path, name string, n int) error {
	entries := make([]question.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, question.Entry{
			Question: fmt.Sprintf("%s question %03d: which option is correct?", name, i+1),
			Options: []string{
				fmt.Sprintf("Option A for %03d", i+1),
				fmt.Sprintf("Option B for %03d", i+1),
				fmt.Sprintf("Option C for %03d", i+1),
				fmt.Sprintf("Option D for %03d", i+1),
			},
			Answer: (i * 7) % 4,
		})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// pickChoice answers correctly with probability accuracy, otherwise picks a
// wrong option or leaves the question blank.
func pickChoice(rng *rand.Rand, q question.Question, accuracy float64) string {
	if rng.Float64() < accuracy {
		return q.Answer
	}
	if rng.Intn(10) == 0 {
		return ""
	}
	wrong := make([]string, 0, len(q.Choices)-1)
	for _, choice := range q.Choices {
		if choice != q.Answer {
			wrong = append(wrong, choice)
		}
	}
	return wrong[rng.Intn(len(wrong))]
}
