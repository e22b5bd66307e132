package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starfield/dsofinder/internal/catalog"
	"github.com/starfield/dsofinder/internal/observe"
	"github.com/starfield/dsofinder/internal/state"
)

func testModel() Model {
	mgr := state.NewManager(state.DefaultConfig())
	cache := observe.NewSampleCache(16)
	return New(mgr, catalog.Builtin(), cache)
}

func resized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestModelViewSwitching(t *testing.T) {
	m := resized(testModel())

	if m.viewMode != ViewResults {
		t.Fatalf("initial view = %v, want results", m.viewMode)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = updated.(Model)
	if m.viewMode != ViewCosmo {
		t.Errorf("after '3' view = %v, want cosmology", m.viewMode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	m = updated.(Model)
	if m.viewMode != ViewDetail {
		t.Errorf("after '2' view = %v, want detail", m.viewMode)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	m = updated.(Model)
	if m.viewMode != ViewResults {
		t.Errorf("after '1' view = %v, want results", m.viewMode)
	}

	// Tab cycles through all three views and back.
	for i := 0; i < 3; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
	}
	if m.viewMode != ViewResults {
		t.Errorf("after three tabs view = %v, want results", m.viewMode)
	}
}

func TestModelQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		m := resized(testModel())
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %q: expected quit command", key.String())
			continue
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("key %q: command did not produce tea.QuitMsg", key.String())
		}
	}
}

func TestModelSearchDone(t *testing.T) {
	m := resized(testModel())

	result := observe.SearchResult{
		Candidates: []observe.Candidate{testCandidate()},
		Diagnostics: observe.SearchDiagnostics{
			ObjectsIn: 1,
			Sampled:   1,
		},
	}

	updated, _ := m.Update(SearchDoneMsg{Result: &result})
	m = updated.(Model)

	if m.snapshot.Result == nil {
		t.Fatal("snapshot missing the search result")
	}
	if m.results.Selected() == nil {
		t.Error("results table did not pick up the candidates")
	}

	// Enter on the selected row opens the detail view.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.viewMode != ViewDetail {
		t.Errorf("after enter view = %v, want detail", m.viewMode)
	}
	if m.detail.candidate == nil {
		t.Error("detail view has no candidate after enter")
	}
}

func TestModelViewRendersAllModes(t *testing.T) {
	m := resized(testModel())

	updated, _ := m.Update(SearchDoneMsg{Result: &observe.SearchResult{
		Candidates: []observe.Candidate{testCandidate()},
	}})
	m = updated.(Model)

	for _, mode := range []ViewMode{ViewResults, ViewDetail, ViewCosmo} {
		m.viewMode = mode
		if out := m.View(); out == "" {
			t.Errorf("View() empty in mode %v", mode)
		}
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	m := testModel()
	if out := m.View(); out != "Initializing..." {
		t.Errorf("View() before first WindowSizeMsg = %q", out)
	}
}
