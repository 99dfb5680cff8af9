package question

// Entry is one question definition as it appears in a bank file.
type Entry struct {
	Question string   `json:"question" yaml:"question"`
	Options  []string `json:"options" yaml:"options"`
	Answer   int      `json:"answer" yaml:"answer"`
}

// Question is a validated question ready for sampling.
type Question struct {
	ID      string
	Text    string
	Choices []string
	Answer  string
}

// Bank is the read-only set of questions loaded at startup.
type Bank struct {
	Path      string
	Questions []Question
}

// Len reports the number of questions in the bank.
func (b Bank) Len() int {
	return len(b.Questions)
}

// HasChoice reports whether choice is one of the question's options.
func (q Question) HasChoice(choice string) bool {
	for _, c := range q.Choices {
		if c == choice {
			return true
		}
	}
	return false
}

// IsCorrect reports whether the given answer matches the correct choice.
// An empty answer never matches.
func (q Question) IsCorrect(answer string) bool {
	return answer != "" && answer == q.Answer
}
