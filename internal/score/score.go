// Package score maps raw exam results onto the 100-900 scaled range.
package score

const (
	MinScaled           = 100
	MaxScaled           = 900
	DefaultPassingScore = 650
)

// Verdict is the pass/fail outcome of an exam.
type Verdict string

const (
	Pass Verdict = "PASS"
	Fail Verdict = "FAIL"
)

// Result is the scored outcome of an exam.
type Result struct {
	Correct int
	Total   int
	Score   int
	Verdict Verdict
}

// Passed reports whether the result met the passing score.
func (r Result) Passed() bool {
	return r.Verdict == Pass
}

// ScaledScore returns floor(100 + 800*correct/total). Fractions are truncated.
func ScaledScore(correct, total int) int {
	if total <= 0 {
		return MinScaled
	}
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}
	return MinScaled + (MaxScaled-MinScaled)*correct/total
}

// VerdictFor returns Pass when score reaches passing.
func VerdictFor(score, passing int) Verdict {
	if score >= passing {
		return Pass
	}
	return Fail
}

// Evaluate scores a raw result against a passing threshold.
func Evaluate(correct, total, passing int) Result {
	scaled := ScaledScore(correct, total)
	return Result{
		Correct: correct,
		Total:   total,
		Score:   scaled,
		Verdict: VerdictFor(scaled, passing),
	}
}
