package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appswitch/appswitch/internal/picker"
	"github.com/appswitch/appswitch/internal/state"
)

func newTestStore(running, installed []string) state.CandidateStore {
	store := state.NewCandidateStore()
	store.SetRunning(picker.CandidatesFromNames(running))
	if installed != nil {
		store.SetInstalled(picker.CandidatesFromNames(installed))
	}
	return store
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewModelStartsInBrowseMode(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari"}, nil)
	m := NewModel(store, 0, 0, false)
	if m.mode != picker.ModeBrowse {
		t.Fatalf("expected browse mode, got %v", m.mode)
	}
	if len(m.list.View) != 2 {
		t.Fatalf("expected 2 running applications in view, got %d", len(m.list.View))
	}
	if !m.showsRunning {
		t.Fatal("expected model to show the running set")
	}
	if m.Outcome().Kind != picker.OutcomeCancelled {
		t.Fatalf("expected default outcome cancelled, got %v", m.Outcome().Kind)
	}
}

func TestNewSearchModelStartsOverInstalledSet(t *testing.T) {
	store := newTestStore([]string{"Finder"}, []string{"Safari", "Spotify", "Music"})
	m := NewSearchModel(store, 0, 0, false)
	if m.mode != picker.ModeSearch {
		t.Fatalf("expected search mode, got %v", m.mode)
	}
	if len(m.list.View) != 3 {
		t.Fatalf("expected 3 installed applications in view, got %d", len(m.list.View))
	}
	if m.showsRunning {
		t.Fatal("expected model to show the installed set")
	}
}

func TestFixedDimensionsIgnoreWindowSize(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 40, 10, false)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 40 || m.height != 10 {
		t.Fatalf("expected fixed 40x10, got %dx%d", m.width, m.height)
	}
}

func TestWindowSizeAdoptedWhenNotFixed(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.width != 120 || m.height != 50 {
		t.Fatalf("expected 120x50 from resize, got %dx%d", m.width, m.height)
	}
}

func TestHandlerForDispatchesOnMessageType(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	if m.handlerFor(tea.KeyMsg{Type: tea.KeyEnter}) == nil {
		t.Fatal("expected handler for tea.KeyMsg")
	}
	if m.handlerFor(searchLoadedMsg{}) == nil {
		t.Fatal("expected handler for searchLoadedMsg")
	}
	if m.handlerFor(struct{ unknown int }{}) != nil {
		t.Fatal("expected no handler for unknown message type")
	}
}

func TestFinishRecordsOutcomeAndQuits(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	cmd := m.finish(picker.Confirmed(picker.Candidate{ID: "Finder", Label: "Finder"}))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if !m.done {
		t.Fatal("expected model to be done")
	}
	if m.Outcome().Kind != picker.OutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %v", m.Outcome().Kind)
	}
}

func TestKeysIgnoredAfterDone(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari"}, nil)
	m := NewModel(store, 0, 0, false)
	m.finish(picker.Cancelled())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Outcome().Kind != picker.OutcomeCancelled {
		t.Fatalf("expected outcome to stay cancelled, got %v", m.Outcome().Kind)
	}
}
