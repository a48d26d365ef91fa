package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/elelcahyani/uangku/internal/category"
	"github.com/elelcahyani/uangku/internal/ledger"
	"github.com/elelcahyani/uangku/internal/transaction"
)

type categoriesState int

const (
	categoriesStateBrowse categoriesState = iota
	categoriesStateForm
)

// Color choices offered in the add/edit form, matching the web palette.
var paletteOptions = []huh.Option[string]{
	huh.NewOption("Pink", "#EC4899"),
	huh.NewOption("Rose", "#F472B6"),
	huh.NewOption("Red", "#F87171"),
	huh.NewOption("Amber", "#FBBF24"),
	huh.NewOption("Orange", "#FB923C"),
	huh.NewOption("Violet", "#A78BFA"),
	huh.NewOption("Purple", "#8B5CF6"),
	huh.NewOption("Cyan", "#06B6D4"),
	huh.NewOption("Emerald", "#10B981"),
	huh.NewOption("Green", "#34D399"),
	huh.NewOption("Gray", "#6B7280"),
}

// CategoriesModel manages the category list: add, rename, recolor, delete.
type CategoriesModel struct {
	CommonModel
	svc *ledger.Service

	state categoriesState
	table table.Model
	cats  []category.Category

	form    *huh.Form
	editing string // category id being edited, empty when adding
	status  string

	formName  string
	formColor string
	formType  string
}

func NewCategoriesModel(svc *ledger.Service) CategoriesModel {
	columns := []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Type", Width: 8},
		{Title: "Color", Width: 10},
		{Title: "Icon", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := CategoriesModel{svc: svc, table: t}
	m.reload()

	return m
}

func (m CategoriesModel) Title() string   { return "Categories" }
func (m CategoriesModel) Capturing() bool { return m.state == categoriesStateForm }
func (m CategoriesModel) ShortHelp() string {
	if m.state == categoriesStateForm {
		return "Navigate form | Esc: cancel"
	}

	return "a: add | e: edit | x: delete | Tab: switch tabs"
}

func (m CategoriesModel) Init() tea.Cmd { return nil }

func (m *CategoriesModel) reload() {
	m.cats = m.svc.Categories()

	rows := make([]table.Row, len(m.cats))
	for i, cat := range m.cats {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(cat.Color)).
			Render("●")

		rows[i] = table.Row{
			cat.Name,
			string(cat.Type),
			swatch + " " + cat.Color,
			cat.Icon,
		}
	}

	m.table.SetRows(rows)
}

func (m CategoriesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RefreshMsg:
		m.reload()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	if m.state == categoriesStateForm {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "a":
			return m.enterForm(nil)
		case "e":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.cats) {
				return m.enterForm(&m.cats[idx])
			}

			return m, nil
		case "x":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m CategoriesModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.cats) {
		return m, nil
	}

	ctx, cancel := DbCtx()
	defer cancel()

	if err := m.svc.DeleteCategory(ctx, m.cats[idx].ID); err != nil {
		m.status = fmt.Sprintf("Error deleting: %v", err)
		return m, nil
	}

	m.status = "Category deleted"
	m.reload()

	return m, Refresh
}

func (m CategoriesModel) enterForm(edit *category.Category) (tea.Model, tea.Cmd) {
	if edit != nil {
		m.editing = edit.ID
		m.formName = edit.Name
		m.formColor = edit.Color
		m.formType = string(edit.Type)
	} else {
		m.editing = ""
		m.formName = ""
		m.formColor = paletteOptions[0].Value
		m.formType = string(transaction.TypeExpense)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Validate(nonEmpty("name")).
				Value(&m.formName),

			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.TypeExpense)),
					huh.NewOption("Income", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("color").
				Title("Color").
				Options(paletteOptions...).
				Value(&m.formColor),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = categoriesStateForm
	m.table.Blur()

	return m, m.form.Init()
}

func (m CategoriesModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = categoriesStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	ctx, cancel := DbCtx()
	defer cancel()

	params := category.AddParams{
		Name:  m.form.GetString("name"),
		Color: m.form.GetString("color"),
		Type:  transaction.Type(m.form.GetString("type")),
	}

	var (
		cat *category.Category
		err error
	)

	if m.editing != "" {
		cat, err = m.svc.UpdateCategory(ctx, m.editing, params)
	} else {
		cat, err = m.svc.AddCategory(ctx, params)
	}

	switch {
	case err != nil:
		m.status = fmt.Sprintf("Error saving: %v", err)
	case cat == nil:
		m.status = "Rejected: name cannot be empty"
	case m.editing != "":
		m.status = "Category updated"
	default:
		m.status = "Category added"
	}

	m.state = categoriesStateBrowse
	m.form = nil
	m.editing = ""
	m.table.Focus()
	m.reload()

	return m, Refresh
}

func (m CategoriesModel) View() string {
	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(MutedColor).
		Render(m.table.View())

	parts := []string{tableView}

	if m.status != "" {
		parts = append(parts, MutedStyle.Render(m.status))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.state == categoriesStateForm && m.form != nil {
		title := "Add Category"
		if m.editing != "" {
			title = "Edit Category"
		}

		panel := FormPanelStyle.Width(48).
			Render(title + "\n\n" + m.form.View())

		return lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	return content
}
