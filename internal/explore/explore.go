// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package explore is the interactive filtering UI: five filter inputs,
// a live summary pane, and a year chart over one loaded table. The
// table is read-only here; each session owns its own view.
package explore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/paperscope/internal/aggregate"
	"github.com/pdiddy/paperscope/internal/dataset"
	"github.com/pdiddy/paperscope/internal/render"
	"github.com/pdiddy/paperscope/pkg/types"
)

// Input slots, in focus order.
const (
	fieldYearMin = iota
	fieldYearMax
	fieldJournal
	fieldSource
	fieldKeyword
	fieldCount
)

var fieldLabels = [fieldCount]string{"year from", "year to", "journal", "source", "keyword"}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	errText lipgloss.Style
	pane    lipgloss.Style
	help    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		focused: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		pane:    lipgloss.NewStyle().Padding(0, 2),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Model is the bubbletea model for one exploration session.
type Model struct {
	table *dataset.Table
	topK  int

	inputs [fieldCount]textinput.Model
	focus  int

	// filter is the last valid filter; summary matches it. Invalid
	// input leaves both untouched.
	filter  types.Filter
	summary aggregate.Summary
	errMsg  string

	styles styles
	width  int
}

// New builds a session over a cleaned table with an unconstrained filter.
func New(t *dataset.Table, topK int) Model {
	m := Model{table: t, topK: topK, styles: defaultStyles()}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		in.Width = 24
		m.inputs[i] = in
	}
	m.inputs[fieldYearMin].Placeholder = "any"
	m.inputs[fieldYearMax].Placeholder = "any"
	m.inputs[fieldJournal].Placeholder = "exact match"
	m.inputs[fieldSource].Placeholder = "exact match"
	m.inputs[fieldKeyword].Placeholder = "title/abstract contains"
	m.inputs[0].Focus()

	m.summary = mustSummary(t, types.Filter{}, topK)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			m.apply()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[i].Focus()
}

// apply parses the inputs into a filter and recomputes the summary.
// A bad year bound reports an error and keeps the previous valid
// filter and summary.
func (m *Model) apply() {
	f, err := m.parseFilter()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	view, err := aggregate.Select(m.table, f)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	m.filter = f
	m.summary = aggregate.Summarize(view, m.topK)
}

func (m *Model) parseFilter() (types.Filter, error) {
	f := types.Filter{
		Journal: strings.TrimSpace(m.inputs[fieldJournal].Value()),
		Source:  strings.TrimSpace(m.inputs[fieldSource].Value()),
		Keyword: strings.TrimSpace(m.inputs[fieldKeyword].Value()),
	}

	var err error
	if f.YearMin, err = parseYear(m.inputs[fieldYearMin].Value()); err != nil {
		return types.Filter{}, err
	}
	if f.YearMax, err = parseYear(m.inputs[fieldYearMax].Value()); err != nil {
		return types.Filter{}, err
	}
	if err := f.Validate(); err != nil {
		return types.Filter{}, err
	}
	return f, nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, &types.FilterError{Field: "year", Reason: fmt.Sprintf("%q is not an integer", s)}
	}
	return year, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var filters strings.Builder
	filters.WriteString(m.styles.title.Render("filters") + "\n\n")
	for i, in := range m.inputs {
		label := m.styles.label.Render(fmt.Sprintf("%-9s", fieldLabels[i]))
		if i == m.focus {
			label = m.styles.focused.Render(fmt.Sprintf("%-9s", fieldLabels[i]))
		}
		filters.WriteString(fmt.Sprintf("%s %s\n", label, in.View()))
	}
	if m.errMsg != "" {
		filters.WriteString("\n" + m.styles.errText.Render(m.errMsg) + "\n")
	}
	filters.WriteString("\n" + m.styles.help.Render("tab: next field · enter: apply · esc: quit"))

	var summary strings.Builder
	summary.WriteString(m.styles.title.Render("summary") + "\n\n")
	aggregate.FormatTable(trimmed(m.summary), &summary)

	var chart strings.Builder
	render.BarChart(&chart, "", render.YearBars(m.summary), 30)

	left := m.styles.pane.Render(filters.String())
	right := m.styles.pane.Render(summary.String() + "\n" + chart.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// trimmed drops the bulkier aggregates so the summary pane stays short;
// the chart covers the year distribution.
func trimmed(s aggregate.Summary) aggregate.Summary {
	s.ByYear = nil
	s.Monthly = nil
	s.BySource = nil
	if len(s.TopJournals) > 5 {
		s.TopJournals = s.TopJournals[:5]
	}
	return s
}

func mustSummary(t *dataset.Table, f types.Filter, topK int) aggregate.Summary {
	view, err := aggregate.Select(t, f)
	if err != nil {
		// The zero filter always validates.
		panic(err)
	}
	return aggregate.Summarize(view, topK)
}

// Run starts the interactive session and blocks until the user quits.
func Run(t *dataset.Table, topK int) error {
	p := tea.NewProgram(New(t, topK), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
