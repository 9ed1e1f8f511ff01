package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theapemachine/qreg"
)

var (
	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	basisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)

// renderState draws one row per basis state: index, amplitude and weight.
func renderState(title string, register *qreg.Register) string {
	amplitudes := register.Amplitudes()
	rows := make([]string, 0, len(amplitudes)+1)

	rows = append(rows, titleStyle.Render(title))
	for i, amplitude := range amplitudes {
		rows = append(rows, fmt.Sprintf(
			"%s  %-28s %s",
			basisStyle.Render(fmt.Sprintf("|%d⟩", i)),
			amplitude.String(),
			dimStyle.Render(fmt.Sprintf("p=%.4f", amplitude.NormalizedSquared())),
		))
	}

	rows = append(rows, dimStyle.Render(fmt.Sprintf("total=%.4f", register.TotalProbability())))

	return stateStyle.Render(strings.Join(rows, "\n"))
}
