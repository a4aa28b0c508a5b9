package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/warsim/internal/game"
	"github.com/lox/warsim/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))
)

// renderSummary formats the aggregate statistics of one batch for stdout.
func renderSummary(title string, stats *statistics.Statistics, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	row("games", fmt.Sprintf("%d", stats.Games))
	row("player1 wins", fmt.Sprintf("%d (%.1f%%)", stats.Player1Wins, stats.WinRate(game.Player1)*100))
	row("player2 wins", fmt.Sprintf("%d (%.1f%%)", stats.Player2Wins, stats.WinRate(game.Player2)*100))
	row("draws", fmt.Sprintf("%d (%.1f%%)", stats.Draws, stats.DrawRate()*100))

	low, high := stats.ConfidenceInterval95()
	row("turns mean", fmt.Sprintf("%.1f ± %.2f SE (95%% CI [%.1f, %.1f])",
		stats.Mean(), stats.StdError(), low, high))
	row("turns median", fmt.Sprintf("%.0f (P5=%.0f, P95=%.0f)",
		stats.Median(), stats.Percentile(0.05), stats.Percentile(0.95)))
	row("longest game", fmt.Sprintf("%d turns (seed %d)", stats.MaxTurns, stats.MaxTurnsSeed))

	if elapsed > 0 {
		row("elapsed", fmt.Sprintf("%v (%.0f games/sec)",
			elapsed.Round(time.Millisecond), float64(stats.Games)/elapsed.Seconds()))
	}

	return b.String()
}
