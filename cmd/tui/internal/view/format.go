package view

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/elelcahyani/uangku/internal/report"
)

const dbTimeout = 5 * time.Second

// DbCtx returns a context for ledger calls triggered from the UI.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// Today returns the current date in the YYYY-MM-DD form used everywhere.
func Today() string {
	return time.Now().Format(time.DateOnly)
}

// CurrentMonth returns the current YYYY-MM period key.
func CurrentMonth() string {
	return time.Now().Format("2006-01")
}

// Bar renders a horizontal chart bar of the given color, scaled so that
// maxValue fills width cells.
func Bar(value, maxValue float64, width int, color lipgloss.Color) string {
	if maxValue <= 0 || width <= 0 {
		return ""
	}

	n := int(value / maxValue * float64(width))
	if n > width {
		n = width
	}

	if n == 0 && value > 0 {
		n = 1
	}

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", n))
}

// Gauge renders a budget progress bar capped at 100%.
func Gauge(percentage float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := MutedStyle.Render(strings.Repeat("░", width-filled))

	return bar + rest
}

// StatusColor maps a budget state to its display color.
func StatusColor(status report.BudgetState) lipgloss.Color {
	switch status {
	case report.BudgetExceeded:
		return DangerColor
	case report.BudgetWarning:
		return WarnColor
	default:
		return IncomeColor
	}
}
