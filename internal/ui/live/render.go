package live

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pracexam/internal/score"
)

const (
	colorHeading = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("244")
	colorTimer   = lipgloss.Color("36")
	colorPass    = lipgloss.Color("42")
	colorFail    = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("220")
	colorCursor  = lipgloss.Color("39")
)

// renderStart renders the rules screen shown before the clock starts.
func renderStart(state State, noColor bool) string {
	snap := state.Snapshot
	lines := []string{
		renderHeading("Practice Exam", noColor),
		"",
		fmt.Sprintf("You will answer %d randomly-selected questions in %d minutes.", snap.Total, int(snap.Remaining.Minutes())),
		fmt.Sprintf("Passing score: %d/%d (scaled).", passingScore(state), score.MaxScaled),
		"",
		"Press enter to start.",
	}
	return strings.Join(lines, "\n")
}

// renderQuestion renders the current question with its choices.
func renderQuestion(state State, noColor bool) string {
	snap := state.Snapshot
	header := fmt.Sprintf("Question %d of %d", snap.Index+1, snap.Total)
	timer := "Time remaining: " + snap.Clock()
	status := fmt.Sprintf("Answered: %d/%d", snap.Answered, snap.Total)
	lines := []string{
		stylizeBold(header, noColor, colorHeading) + "    " + stylize(timer, noColor, colorTimer) + "    " + stylize(status, noColor, colorMuted),
		"",
		wrapText(snap.Question.Text, 80),
		"",
	}
	selected := snap.SelectedIndex()
	for i, choice := range snap.Question.Choices {
		lines = append(lines, formatChoice(i, choice, i == selected, noColor))
	}
	if prompt := confirmPrompt(state); prompt != "" {
		lines = append(lines, "", stylizeBold(prompt, noColor, colorWarn))
	}
	return strings.Join(lines, "\n")
}

// renderResults renders the score screen.
func renderResults(state State, noColor bool) string {
	if state.Outcome == nil {
		return ""
	}
	outcome := *state.Outcome
	verdictColor := colorFail
	if outcome.Passed() {
		verdictColor = colorPass
	}
	lines := []string{
		renderHeading("Exam Complete", noColor),
		"",
		fmt.Sprintf("Correct: %d/%d", outcome.Correct, outcome.Total),
		stylizeBold(fmt.Sprintf("Scaled Score (approx.): %d / %d", outcome.Score, score.MaxScaled), noColor, ""),
		stylizeBold("Result: "+string(outcome.Verdict), noColor, verdictColor),
	}
	switch {
	case state.SaveErr != "":
		lines = append(lines, "", stylize(state.SaveErr, noColor, colorWarn))
	case !state.Saved:
		lines = append(lines, "", stylize("Saving results...", noColor, colorMuted))
	}
	return strings.Join(lines, "\n")
}

// renderReviewDetail renders the selected review row in full.
func renderReviewDetail(state State, noColor bool) string {
	if state.Outcome == nil || state.Review >= len(state.Outcome.Answers) {
		return ""
	}
	answer := state.Outcome.Answers[state.Review]
	lines := []string{
		"",
		stylizeBold(fmt.Sprintf("Question %d:", answer.Index+1), noColor, ""),
		wrapText(answer.Question.Text, 80),
		"",
	}
	for _, choice := range answer.Question.Choices {
		lines = append(lines, " - "+choice)
	}
	given := answer.Selected
	if given == "" {
		given = noAnswer
	}
	givenColor := colorFail
	if answer.Correct {
		givenColor = colorPass
	}
	lines = append(lines,
		"",
		"Your answer: "+stylize(given, noColor, givenColor),
		"Correct answer: "+stylize(answer.Question.Answer, noColor, colorPass),
	)
	return strings.Join(lines, "\n")
}

// renderFooter renders the last status message.
func renderFooter(state State, noColor bool) string {
	if state.Message == "" {
		return ""
	}
	return "\n" + stylize(state.Message, noColor, colorWarn)
}

func renderHeading(text string, noColor bool) string {
	return stylizeBold(text, noColor, colorHeading)
}

// confirmPrompt returns the question asked while a confirmation is pending.
func confirmPrompt(state State) string {
	unanswered := state.Snapshot.Total - state.Snapshot.Answered
	switch state.Confirm {
	case ConfirmSubmit:
		if unanswered > 0 {
			return fmt.Sprintf("%d question(s) unanswered. Submit anyway? (y/n)", unanswered)
		}
		return "Submit the exam? (y/n)"
	case ConfirmQuit:
		return "Quit now? Your exam will be submitted. (y/n)"
	}
	return ""
}

func passingScore(state State) int {
	if state.PassingScore > 0 {
		return state.PassingScore
	}
	return score.DefaultPassingScore
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || color == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies bold and optional color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	style := lipgloss.NewStyle().Bold(true)
	if color != "" {
		style = style.Foreground(color)
	}
	return style.Render(text)
}
