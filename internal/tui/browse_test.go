package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RayFungHK/benchreport/internal/results"
)

func fixtureTargets() (razy, laravel results.TargetResults) {
	sample := results.Sample{Run: 1, Metrics: map[string]float64{
		"rps": 1500, "p50": 5, "p90": 9, "p95": 11, "p99": 20,
	}}
	razy = results.TargetResults{
		"01_static_route": {sample, sample},
		"03_db_read":      {sample},
	}
	laravel = results.TargetResults{
		"01_static_route": {sample},
	}
	return razy, laravel
}

func TestNewModelListsScenarioUnion(t *testing.T) {
	m := newModel(fixtureTargets())

	items := m.list.Items()
	if len(items) != 2 {
		t.Fatalf("want 2 scenarios listed, got %d", len(items))
	}
	first, ok := items[0].(scenarioItem)
	if !ok {
		t.Fatalf("unexpected item type %T", items[0])
	}
	if first.id != "01_static_route" {
		t.Errorf("want 01_static_route first, got %s", first.id)
	}
	if got := first.Description(); got != "Razy: 2 runs, Laravel: 1 run" {
		t.Errorf("unexpected run summary: %q", got)
	}
	second := items[1].(scenarioItem)
	if got := second.Description(); got != "Razy: 1 run, Laravel: no data" {
		t.Errorf("unexpected run summary: %q", got)
	}
}

func TestUpdateOpensAndClosesDetailView(t *testing.T) {
	m := newModel(fixtureTargets())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(model)
	if m.state != scenarioListView {
		t.Fatalf("want list view after resize, got %v", m.state)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(model)
	if m.state != scenarioDetailView {
		t.Fatalf("want detail view after enter, got %v", m.state)
	}
	if detail := m.selectedDetail(); !strings.Contains(detail, "1. Static Route (Baseline)") {
		t.Errorf("detail content missing scenario heading:\n%s", detail)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)
	if m.state != scenarioListView {
		t.Fatalf("want list view after esc, got %v", m.state)
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	m := newModel(fixtureTargets())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("want quit command from q in list view")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q in list view should quit")
	}
	m = updated.(model)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("want quit command from ctrl+c")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit from any view")
	}
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newModel(fixtureTargets())

	if got := m.View(); got != "Initializing..." {
		t.Errorf("unexpected pre-resize view: %q", got)
	}
}

func TestViewShowsListAndHelp(t *testing.T) {
	m := newModel(fixtureTargets())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(model)

	view := m.View()
	if !strings.Contains(view, "Benchmark Scenarios") {
		t.Error("list view should render the list title")
	}
	if !strings.Contains(view, "q: quit") {
		t.Error("list view should render key hints")
	}
}
