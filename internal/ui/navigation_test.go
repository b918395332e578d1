package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appswitch/appswitch/internal/picker"
)

var errFake = errors.New("enumeration failed")

func TestEscapeCancelsBrowseSession(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari"}, nil)
	m := NewModel(store, 0, 0, false)
	cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Outcome().Kind != picker.OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", m.Outcome().Kind)
	}
}

func TestEscapeCancelsSearchSession(t *testing.T) {
	store := newTestStore([]string{"Finder"}, []string{"Safari"})
	m := NewSearchModel(store, 0, 0, false)
	m.list.SetQuery("saf", 3)
	cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.Outcome().Kind != picker.OutcomeCancelled {
		t.Fatalf("expected cancelled outcome, got %v", m.Outcome().Kind)
	}
}

func TestQuitShortcutCancelsBrowseOnly(t *testing.T) {
	store := newTestStore([]string{"Quitter"}, []string{"Quitter"})
	m := NewModel(store, 0, 0, false)
	if cmd := m.handleKeyMsg(runeKey('q')); cmd == nil {
		t.Fatal("expected q to cancel in browse mode")
	}

	m = NewSearchModel(store, 0, 0, false)
	if cmd := m.handleKeyMsg(runeKey('q')); cmd != nil {
		t.Fatal("expected q to be query input in search mode")
	}
	if m.list.Query != "q" {
		t.Fatalf("expected query %q, got %q", "q", m.list.Query)
	}
}

func TestEnterConfirmsSelectedCandidate(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari", "Music"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	outcome := m.Outcome()
	if outcome.Kind != picker.OutcomeConfirmed {
		t.Fatalf("expected confirmed outcome, got %v", outcome.Kind)
	}
	if outcome.Candidate.ID != "Safari" {
		t.Fatalf("expected Safari confirmed, got %q", outcome.Candidate.ID)
	}
}

func TestEnterIsNoOpOnEmptyView(t *testing.T) {
	store := newTestStore(nil, nil)
	m := NewModel(store, 0, 0, false)
	if cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected no command on empty view")
	}
	if m.done {
		t.Fatal("expected session to continue")
	}
}

func TestEnterIsNoOpWhileLoading(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	m.loading = true
	if cmd := m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected no command while loading")
	}
}

func TestOpenShortcutRequestsOpenAction(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari"}, nil)
	m := NewModel(store, 0, 0, false)
	cmd := m.handleKeyMsg(runeKey('o'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	outcome := m.Outcome()
	if outcome.Kind != picker.OutcomeAction || outcome.Action != picker.ActionOpen {
		t.Fatalf("expected open action outcome, got %#v", outcome)
	}
	if outcome.Candidate.ID != "Finder" {
		t.Fatalf("expected Finder targeted, got %q", outcome.Candidate.ID)
	}
}

func TestKillShortcutRequestsTerminateAction(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	cmd := m.handleKeyMsg(runeKey('k'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	outcome := m.Outcome()
	if outcome.Kind != picker.OutcomeAction || outcome.Action != picker.ActionTerminate {
		t.Fatalf("expected terminate action outcome, got %#v", outcome)
	}
	if outcome.Candidate.ID != "Safari" {
		t.Fatalf("expected Safari targeted, got %q", outcome.Candidate.ID)
	}
}

func TestActionIsNoOpOnEmptyView(t *testing.T) {
	store := newTestStore(nil, nil)
	m := NewModel(store, 0, 0, false)
	if cmd := m.handleKeyMsg(runeKey('k')); cmd != nil {
		t.Fatal("expected no command on empty view")
	}
	if m.done {
		t.Fatal("expected session to continue")
	}
}

func TestStartSearchUsesLoadedStore(t *testing.T) {
	store := newTestStore([]string{"Finder"}, []string{"Safari", "Spotify"})
	m := NewModel(store, 0, 0, false)
	cmd := m.handleKeyMsg(runeKey('/'))
	if cmd != nil {
		t.Fatal("expected synchronous swap when installed set is loaded")
	}
	if m.mode != picker.ModeSearch {
		t.Fatalf("expected search mode, got %v", m.mode)
	}
	if m.loading {
		t.Fatal("expected no loading state")
	}
	if len(m.list.View) != 2 {
		t.Fatalf("expected installed set in view, got %d entries", len(m.list.View))
	}
}

func TestStartSearchLoadsInstalledSetOnce(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	cmd := m.handleKeyMsg(runeKey('/'))
	if cmd == nil {
		t.Fatal("expected load command on first search")
	}
	if !m.loading {
		t.Fatal("expected loading state")
	}
}

func TestMoveSelectionClampsAtEdges(t *testing.T) {
	store := newTestStore([]string{"a", "b", "c"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyUp})
	if m.list.Cursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", m.list.Cursor)
	}
	for i := 0; i < 5; i++ {
		m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.list.Cursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", m.list.Cursor)
	}
}

func TestHomeEndJumpSelection(t *testing.T) {
	store := newTestStore([]string{"a", "b", "c", "d"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyEnd})
	if m.list.Cursor != 3 {
		t.Fatalf("expected cursor at end, got %d", m.list.Cursor)
	}
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyHome})
	if m.list.Cursor != 0 {
		t.Fatalf("expected cursor at home, got %d", m.list.Cursor)
	}
}

func TestSearchLoadedMsgSwapsListAndKeepsQuery(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(runeKey('/'))
	m.list.SetQuery("saf", 3)

	m.handleSearchLoadedMsg(searchLoadedMsg{candidates: picker.CandidatesFromNames([]string{"Safari", "Music"})})
	if m.loading {
		t.Fatal("expected loading cleared")
	}
	if m.list.Query != "saf" {
		t.Fatalf("expected query preserved, got %q", m.list.Query)
	}
	if len(m.list.View) != 1 || m.list.View[0].ID != "Safari" {
		t.Fatalf("expected Safari to match, got %#v", m.list.View)
	}
}

func TestSearchLoadedMsgErrorSurfacesInStatus(t *testing.T) {
	store := newTestStore([]string{"Finder"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(runeKey('/'))

	m.handleSearchLoadedMsg(searchLoadedMsg{err: errFake})
	if m.loading {
		t.Fatal("expected loading cleared")
	}
	if m.errMsg == "" {
		t.Fatal("expected error message set")
	}
}

func TestSearchLoadFailureRevertsToBrowseMode(t *testing.T) {
	store := newTestStore([]string{"Finder", "Safari"}, nil)
	m := NewModel(store, 0, 0, false)
	m.handleKeyMsg(runeKey('/'))

	m.handleSearchLoadedMsg(searchLoadedMsg{err: errFake})
	if m.mode != picker.ModeBrowse {
		t.Fatalf("expected browse mode restored, got %v", m.mode)
	}
	if !m.showsRunning || len(m.list.View) != 2 {
		t.Fatalf("expected running list intact, got %#v", m.list.View)
	}
	// Typing must act as a browse shortcut again, not as query input.
	m.handleKeyMsg(runeKey('q'))
	if !m.done || m.Outcome().Kind != picker.OutcomeCancelled {
		t.Fatal("expected q to cancel the browse session after load failure")
	}
	if m.list.Query != "" {
		t.Fatalf("expected no query after load failure, got %q", m.list.Query)
	}
}
