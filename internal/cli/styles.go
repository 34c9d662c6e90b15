package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daydial/internal/streak"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	DoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Swatch renders a block in the activity's color
func Swatch(color string) string {
	if color == "" {
		return " "
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// FormatStreak renders a streak count tinted by its tier
func FormatStreak(n int) string {
	tier := streak.TierFor(n)
	if tier == streak.TierNone {
		return MutedStyle.Render(fmt.Sprintf("%d", n))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color())).
		Render(fmt.Sprintf("🔥 %d %s", n, tier))
}
