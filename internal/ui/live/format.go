package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const noAnswer = "(no answer)"

// formatChoice renders one option line with its number key.
func formatChoice(index int, choice string, selected bool, noColor bool) string {
	marker := "( )"
	if selected {
		marker = "(•)"
	}
	line := marker + " " + strconv.Itoa(index+1) + ". " + choice
	if selected {
		return stylizeBold(line, noColor, colorCursor)
	}
	return line
}

// formatIndex formats a question number for the review list.
func formatIndex(index int) string {
	return pad2(index + 1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return strconv.Itoa(value)
	}
	return "0" + strconv.Itoa(value)
}

// formatMark renders the correctness mark for a review row.
func formatMark(correct bool) string {
	if correct {
		return "✓"
	}
	return "✗"
}

// truncate shortens text to limit runes, adding an ellipsis.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	runes := []rune(normalized)
	if limit <= 3 || len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// wrapText wraps text at width using lipgloss.
func wrapText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
