package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ritual/internal/constants"
	"github.com/julianstephens/ritual/internal/metrics"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	staleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	pacingStyles = map[constants.PacingStatus]lipgloss.Style{
		constants.PacingMet:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		constants.PacingOnTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		constants.PacingAtRisk:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		constants.PacingMissed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	trendStyles = map[constants.Trend]lipgloss.Style{
		constants.TrendRising: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		constants.TrendSteady: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		constants.TrendFading: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
)

// renderPacing formats a pacing result like "on-track (2/3)"
func renderPacing(p *metrics.Pacing) string {
	if p == nil {
		return dimStyle.Render("no goal")
	}
	style, ok := pacingStyles[p.Status]
	if !ok {
		style = dimStyle
	}
	return style.Render(string(p.Status)) + dimStyle.Render(fmt.Sprintf(" (%d/%d)", p.Count, p.Goal))
}

func renderTrend(t constants.Trend) string {
	style, ok := trendStyles[t]
	if !ok {
		style = dimStyle
	}
	return style.Render(string(t))
}
