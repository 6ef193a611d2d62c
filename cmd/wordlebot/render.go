package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordlebot/internal/core"
)

var (
	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("34")).
			Bold(true)
	presentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("178")).
			Bold(true)
	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("240"))

	suggestStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderGuess colors each letter of the guess by its feedback: green for
// correct, yellow for present, gray for absent.
func renderGuess(guess core.Word, feedback core.Pattern) string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		cell := " " + strings.ToUpper(string(guess.CharAt(i))) + " "
		switch feedback.Digit(i) {
		case 2:
			b.WriteString(correctStyle.Render(cell))
		case 1:
			b.WriteString(presentStyle.Render(cell))
		default:
			b.WriteString(absentStyle.Render(cell))
		}
		if i < 4 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
