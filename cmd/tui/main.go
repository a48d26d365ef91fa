package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/elelcahyani/uangku/cmd/tui/internal/view"
	"github.com/elelcahyani/uangku/internal/config"
	"github.com/elelcahyani/uangku/internal/database"
	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/ledger/store"
)

type tab int

const (
	tabOverview tab = iota
	tabTransactions
	tabBudgets
	tabCategories
)

var tabNames = []string{"Overview", "Transactions", "Budgets", "Categories"}

type model struct {
	svc *ledger.Service

	currentTab tab

	overviewView     view.OverviewModel
	transactionsView view.TransactionsModel
	budgetsView      view.BudgetsModel
	categoriesView   view.CategoriesModel

	width  int
	height int
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	collectionStore, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	svc := ledger.NewService(collectionStore)
	if err := svc.Init(ctx); err != nil {
		slog.Error("failed to load collections", "error", err)
		os.Exit(1)
	}

	return model{
		svc:              svc,
		currentTab:       tabOverview,
		overviewView:     view.NewOverviewModel(svc),
		transactionsView: view.NewTransactionsModel(svc),
		budgetsView:      view.NewBudgetsModel(svc),
		categoriesView:   view.NewCategoriesModel(svc),
	}
}

func newStore(ctx context.Context, cfg *config.Config) (ledger.Store, error) {
	switch cfg.Store.Backend {
	case config.StorePostgres:
		db, err := database.New(ctx, cfg.ConnectionString())
		if err != nil {
			return nil, err
		}

		return store.NewPostgresStore(ctx, db)
	case config.StoreFile:
		return store.NewFileStore(cfg.Store.Dir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		// Global shortcuts stay out of open forms and text inputs.
		if !m.currentView().Capturing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.currentTab = (m.currentTab + 1) % tab(len(tabNames))
				return m, nil
			case "shift+tab":
				m.currentTab = (m.currentTab + tab(len(tabNames)) - 1) % tab(len(tabNames))
				return m, nil
			case "1", "2", "3", "4":
				m.currentTab = tab(msg.String()[0] - '1')
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case view.RefreshMsg:
		// Broadcast so every tab reflects the mutation.
		return m.broadcast(msg)
	}

	return m.updateCurrent(msg)
}

func (m model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	newModel, cmd := m.overviewView.Update(msg)
	m.overviewView = newModel.(view.OverviewModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.transactionsView.Update(msg)
	m.transactionsView = newModel.(view.TransactionsModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.budgetsView.Update(msg)
	m.budgetsView = newModel.(view.BudgetsModel)
	cmds = append(cmds, cmd)

	newModel, cmd = m.categoriesView.Update(msg)
	m.categoriesView = newModel.(view.CategoriesModel)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentTab {
	case tabOverview:
		var newModel tea.Model
		newModel, cmd = m.overviewView.Update(msg)
		m.overviewView = newModel.(view.OverviewModel)
	case tabTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case tabBudgets:
		var newModel tea.Model
		newModel, cmd = m.budgetsView.Update(msg)
		m.budgetsView = newModel.(view.BudgetsModel)
	case tabCategories:
		var newModel tea.Model
		newModel, cmd = m.categoriesView.Update(msg)
		m.categoriesView = newModel.(view.CategoriesModel)
	}

	return m, cmd
}

func (m model) currentView() view.View {
	switch m.currentTab {
	case tabTransactions:
		return m.transactionsView
	case tabBudgets:
		return m.budgetsView
	case tabCategories:
		return m.categoriesView
	default:
		return m.overviewView
	}
}

func (m model) tabBar() string {
	activeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(view.AccentColor).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(view.MutedColor).
		Padding(0, 2)

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.currentTab {
			tabs[i] = activeStyle.Render(label)
		} else {
			tabs[i] = inactiveStyle.Render(label)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m model) View() string {
	current := m.currentView()

	help := lipgloss.NewStyle().
		Foreground(view.MutedColor).
		Render(current.ShortHelp() + " | q: quit")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.tabBar(),
			"",
			current.View(),
			"",
			help,
		),
	)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
