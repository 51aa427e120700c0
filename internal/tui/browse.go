// Package tui provides the interactive terminal browser over aggregated
// benchmark results, built on Bubble Tea.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RayFungHK/benchreport/internal/report"
	"github.com/RayFungHK/benchreport/internal/results"
)

type viewState int

const (
	scenarioListView viewState = iota
	scenarioDetailView
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	helpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// scenarioItem is one list entry for a scenario with data on either side.
type scenarioItem struct {
	id   string
	runs string
}

func (s scenarioItem) Title() string       { return report.ScenarioLabel(s.id) }
func (s scenarioItem) Description() string { return s.runs }
func (s scenarioItem) FilterValue() string { return s.id }

// model holds the state of the result browser.
type model struct {
	state    viewState
	list     list.Model
	viewport viewport.Model
	razy     results.TargetResults
	laravel  results.TargetResults
	width    int
	height   int
}

func newModel(razy, laravel results.TargetResults) model {
	items := []list.Item{}
	for _, id := range results.ScenarioUnion(razy, laravel) {
		items = append(items, scenarioItem{
			id:   id,
			runs: fmt.Sprintf("%s: %s, %s: %s",
				report.RazyName, runCount(razy[id]),
				report.LaravelName, runCount(laravel[id])),
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Benchmark Scenarios"
	l.SetShowHelp(false)

	return model{
		state:   scenarioListView,
		list:    l,
		razy:    razy,
		laravel: laravel,
	}
}

func runCount(runs []results.Sample) string {
	if len(runs) == 0 {
		return "no data"
	}
	if len(runs) == 1 {
		return "1 run"
	}
	return fmt.Sprintf("%d runs", len(runs))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		if m.state == scenarioDetailView {
			m.viewport.SetContent(m.selectedDetail())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state == scenarioDetailView {
				m.state = scenarioListView
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if m.state == scenarioListView {
				if _, ok := m.list.SelectedItem().(scenarioItem); ok {
					m.state = scenarioDetailView
					m.viewport.SetContent(m.selectedDetail())
					m.viewport.GotoTop()
				}
				return m, nil
			}
		case "esc":
			if m.state == scenarioDetailView {
				m.state = scenarioListView
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case scenarioListView:
		m.list, cmd = m.list.Update(msg)
	case scenarioDetailView:
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m model) selectedDetail() string {
	item, ok := m.list.SelectedItem().(scenarioItem)
	if !ok {
		return ""
	}
	return report.ScenarioDetail(item.id, m.razy, m.laravel)
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	switch m.state {
	case scenarioDetailView:
		header := titleStyle.Render("Scenario Detail")
		help := helpStyle.Render("↑/↓: scroll • esc: back • ctrl+c: quit")
		return header + "\n" + m.viewport.View() + "\n" + help
	default:
		help := helpStyle.Render("↑/↓: navigate • enter: open • q: quit")
		return m.list.View() + "\n" + help
	}
}

// Browse starts the interactive result browser over the two targets'
// collected results and blocks until the user quits.
func Browse(razy, laravel results.TargetResults) error {
	p := tea.NewProgram(newModel(razy, laravel), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("could not start result browser: %w", err)
	}
	return nil
}
