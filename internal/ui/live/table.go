package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"pracexam/internal/exam"
)

const (
	indexWidth  = 4
	markWidth   = 4
	answerWidth = 24
)

// defaultColumns returns the review table columns for a standard terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(100)
}

// columnsForWidth sizes the question column to fill the terminal.
func columnsForWidth(width int) []table.Column {
	questionWidth := max(width-indexWidth-markWidth-answerWidth-8, 20)
	return []table.Column{
		{Title: "#", Width: indexWidth},
		{Title: "", Width: markWidth},
		{Title: "Question", Width: questionWidth},
		{Title: "Your answer", Width: answerWidth},
	}
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForOutcome converts answered questions into review rows.
func rowsForOutcome(outcome exam.Outcome) []table.Row {
	rows := make([]table.Row, 0, len(outcome.Answers))
	for _, answer := range outcome.Answers {
		given := answer.Selected
		if given == "" {
			given = noAnswer
		}
		rows = append(rows, table.Row{
			formatIndex(answer.Index),
			formatMark(answer.Correct),
			truncate(answer.Question.Text, 60),
			truncate(given, answerWidth),
		})
	}
	return rows
}
