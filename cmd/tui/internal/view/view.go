package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View is the interface that all TUI screens implement. Capturing reports
// whether the screen currently owns the keyboard (an open form or a focused
// text input), in which case global shortcuts must stay out of its way.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
	Capturing() bool
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// RefreshMsg tells a view to re-read its data from the ledger, sent after
// another view mutates a collection it displays.
type RefreshMsg struct{}

func Refresh() tea.Msg {
	return RefreshMsg{}
}

// Palette mirroring the pink theme of the web dashboard.
var (
	AccentColor  = lipgloss.Color("205")
	IncomeColor  = lipgloss.Color("212")
	ExpenseColor = lipgloss.Color("211")
	WarnColor    = lipgloss.Color("214")
	DangerColor  = lipgloss.Color("203")
	MutedColor   = lipgloss.Color("240")
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(AccentColor)
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)

	CardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor)

	FormPanelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63"))
)
