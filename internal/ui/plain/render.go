package plain

import (
	"fmt"
	"io"

	"pracexam/internal/exam"
	"pracexam/internal/score"
)

func (r *runner) printIntro() {
	passing := r.passing
	if passing <= 0 {
		passing = score.DefaultPassingScore
	}
	snap := r.session.Snapshot(r.now())
	fmt.Fprintln(r.out, "Practice Exam")
	fmt.Fprintf(r.out, "You will answer %d randomly-selected questions in %d minutes.\n", snap.Total, int(snap.Remaining.Minutes()))
	fmt.Fprintf(r.out, "Passing score: %d/%d (scaled).\n", passing, score.MaxScaled)
	fmt.Fprintln(r.out, "Type ? for help.")
}

func (r *runner) printQuestion(snap exam.Snapshot) {
	fmt.Fprintf(r.out, "\nQuestion %d of %d    Time remaining: %s    Answered: %d\n", snap.Index+1, snap.Total, snap.Clock(), snap.Answered)
	fmt.Fprintln(r.out, snap.Question.Text)
	for i, choice := range snap.Question.Choices {
		marker := " "
		if choice == snap.Selected {
			marker = "*"
		}
		fmt.Fprintf(r.out, " %s %d) %s\n", marker, i+1, choice)
	}
	fmt.Fprint(r.out, "> ")
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  <number>  choose an answer and move on")
	fmt.Fprintln(w, "  n         next question")
	fmt.Fprintln(w, "  p         previous question")
	fmt.Fprintln(w, "  g <n>     go to question n")
	fmt.Fprintln(w, "  c         clear the current answer")
	fmt.Fprintln(w, "  t         show remaining time")
	fmt.Fprintln(w, "  s         submit the exam")
}

// PrintResults writes the results screen for an outcome.
func PrintResults(w io.Writer, outcome exam.Outcome) {
	fmt.Fprintln(w, "\nExam Complete")
	fmt.Fprintf(w, "Correct: %d/%d\n", outcome.Correct, outcome.Total)
	fmt.Fprintf(w, "Scaled Score (approx.): %d / %d\n", outcome.Score, score.MaxScaled)
	fmt.Fprintf(w, "Result: %s\n", outcome.Verdict)
}

// PrintReview writes every question with the given and correct answers.
func PrintReview(w io.Writer, outcome exam.Outcome) {
	for _, answer := range outcome.Answers {
		mark := "✗"
		if answer.Correct {
			mark = "✓"
		}
		given := answer.Selected
		if given == "" {
			given = "(no answer)"
		}
		fmt.Fprintf(w, "\n%02d %s %s\n", answer.Index+1, mark, answer.Question.Text)
		fmt.Fprintf(w, "   Your answer:    %s\n", given)
		fmt.Fprintf(w, "   Correct answer: %s\n", answer.Question.Answer)
	}
}
