package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/strength-check/backend/internal/application/usecase/strength"
)

const barWidth = 20

var (
	emptyBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	verdictStyle   = lipgloss.NewStyle().Italic(true)
	headingStyle   = lipgloss.NewStyle().Bold(true)
	deficiencyMark = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6600")).Render("•")
)

// renderEvaluation draws the strength bar, verdict and missing criteria.
func renderEvaluation(output *strength.EvaluatePasswordOutput) string {
	level := output.Level
	levelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(level.Color)).Bold(true)

	filled := level.Percentage * barWidth / 100
	bar := levelStyle.Render(strings.Repeat("█", filled)) +
		emptyBarStyle.Render(strings.Repeat("░", barWidth-filled))

	var b strings.Builder
	b.WriteString(headingStyle.Render("Strength: "))
	b.WriteString(bar)
	b.WriteString(" ")
	b.WriteString(levelStyle.Render(level.Label))
	b.WriteString("\n")
	b.WriteString(verdictStyle.Render(level.Verdict))
	b.WriteString("\n")

	if len(output.Evaluation.Deficiencies) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Suggestions:"))
		b.WriteString("\n")
		for _, deficiency := range output.Evaluation.Deficiencies {
			b.WriteString("  ")
			b.WriteString(deficiencyMark)
			b.WriteString(" ")
			b.WriteString(deficiency)
			b.WriteString("\n")
		}
	}

	return b.String()
}
