package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appswitch/appswitch/internal/logging/events"
	"github.com/appswitch/appswitch/internal/picker"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return nil
	}
	cmd := picker.Resolve(keyMsg, m.mode)
	switch cmd.Kind {
	case picker.CmdCancel:
		events.UI.Cancel(m.modeName())
		return m.finish(picker.Cancelled())
	case picker.CmdConfirm:
		return m.confirmSelection()
	case picker.CmdAction:
		return m.requestAction(cmd.Action)
	case picker.CmdStartSearch:
		return m.startSearch()
	case picker.CmdMoveUp:
		m.moveSelection(-1)
	case picker.CmdMoveDown:
		m.moveSelection(1)
	case picker.CmdPageUp:
		if m.list.MoveSelectionPageUp(m.maxVisibleItems()) {
			events.UI.Cursor(m.modeName(), m.list.Cursor)
		}
		m.syncViewport()
	case picker.CmdPageDown:
		if m.list.MoveSelectionPageDown(m.maxVisibleItems()) {
			events.UI.Cursor(m.modeName(), m.list.Cursor)
		}
		m.syncViewport()
	case picker.CmdHome:
		if m.list.MoveSelectionHome() {
			events.UI.Cursor(m.modeName(), m.list.Cursor)
		}
		m.syncViewport()
	case picker.CmdEnd:
		if m.list.MoveSelectionEnd() {
			events.UI.Cursor(m.modeName(), m.list.Cursor)
		}
		m.syncViewport()
	default:
		m.handleQueryCommand(cmd)
	}
	return nil
}

// confirmSelection resolves Confirm against the current view. An empty view
// makes it a no-op so stray enter presses never end the session.
func (m *Model) confirmSelection() tea.Cmd {
	if m.loading {
		return nil
	}
	candidate, ok := m.list.Current()
	if !ok {
		return nil
	}
	events.UI.Confirm(candidate.ID, candidate.Label)
	return m.finish(picker.Confirmed(candidate))
}

func (m *Model) requestAction(kind picker.ActionKind) tea.Cmd {
	if m.loading {
		return nil
	}
	candidate, ok := m.list.Current()
	if !ok {
		return nil
	}
	events.Action.Requested(kind.String(), candidate.ID)
	return m.finish(picker.ActionRequested(candidate, kind))
}

// startSearch switches to the installed-application set, loading it on
// first use.
func (m *Model) startSearch() tea.Cmd {
	m.mode = picker.ModeSearch
	m.errMsg = ""
	m.forceClearInfo()
	events.UI.Mode(m.modeName())
	if m.store.InstalledLoaded() {
		m.list = picker.NewList(m.store.Installed())
		m.showsRunning = false
		return nil
	}
	m.loading = true
	return loadInstalledCmd()
}

func (m *Model) moveSelection(delta int) {
	if m.list.MoveSelection(delta) {
		events.UI.Cursor(m.modeName(), m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) modeName() string {
	if m.mode == picker.ModeSearch {
		return "search"
	}
	return "browse"
}
