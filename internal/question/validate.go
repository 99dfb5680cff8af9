package question

import (
	"fmt"
	"strings"
)

// DefaultExamSize is the number of questions an exam draws from the bank.
const DefaultExamSize = 75

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

// InsufficientError reports a bank that cannot fill an exam.
type InsufficientError struct {
	Need int
	Have int
}

// Error returns a readable message for an undersized bank.
func (err *InsufficientError) Error() string {
	return fmt.Sprintf("need at least %d questions; found %d", err.Need, err.Have)
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace, validates entries, and resolves answers.
func NormalizeBank(entries []Entry) ([]Question, error) {
	collector := &issueCollector{}
	if len(entries) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	questions := make([]Question, 0, len(entries))
	seenText := map[string]int{}
	for i, entry := range entries {
		prefix := fmt.Sprintf("questions[%d]", i)
		text := strings.TrimSpace(entry.Question)
		if text == "" {
			collector.add(prefix+".question", "is required")
		} else if first, exists := seenText[text]; exists {
			collector.add(prefix+".question", fmt.Sprintf("duplicates questions[%d]", first))
		} else {
			seenText[text] = i
		}

		options := make([]string, 0, len(entry.Options))
		seenOptions := map[string]struct{}{}
		for optionIndex, option := range entry.Options {
			option = strings.TrimSpace(option)
			field := fmt.Sprintf("%s.options[%d]", prefix, optionIndex)
			if option == "" {
				collector.add(field, "is required")
			} else if _, exists := seenOptions[option]; exists {
				collector.add(field, fmt.Sprintf("duplicate option %q", option))
			}
			seenOptions[option] = struct{}{}
			options = append(options, option)
		}
		if len(options) < 2 {
			collector.add(prefix+".options", "must include at least two entries")
		}

		if entry.Answer < 0 || entry.Answer >= len(options) {
			collector.add(prefix+".answer", fmt.Sprintf("index %d out of range", entry.Answer))
			continue
		}
		questions = append(questions, Question{
			// Hash the text as written in the bank so ids match logs
			// written by earlier versions of the exam.
			ID:      QID(entry.Question),
			Text:    text,
			Choices: options,
			Answer:  options[entry.Answer],
		})
	}

	if err := collector.result(); err != nil {
		return nil, err
	}
	return questions, nil
}

// RequireSize fails when the bank holds fewer than size questions.
func RequireSize(bank Bank, size int) error {
	if bank.Len() < size {
		return &InsufficientError{Need: size, Have: bank.Len()}
	}
	return nil
}
