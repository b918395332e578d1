package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appswitch/appswitch/internal/apps"
	"github.com/appswitch/appswitch/internal/logging"
	"github.com/appswitch/appswitch/internal/picker"
)

// searchLoadedMsg mirrors the async installed-application loader response.
type searchLoadedMsg struct {
	candidates []picker.Candidate
	err        error
}

func loadInstalledCmd() tea.Cmd {
	return func() tea.Msg {
		names, err := apps.Installed()
		if err != nil {
			logging.Error(err)
			return searchLoadedMsg{err: err}
		}
		return searchLoadedMsg{candidates: picker.CandidatesFromNames(names)}
	}
}

func (m *Model) handleSearchLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(searchLoadedMsg)
	if !ok {
		return nil
	}
	m.loading = false
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		// The installed set never arrived; return to browsing the running
		// list rather than filtering it under the search header.
		if m.mode == picker.ModeSearch && m.showsRunning {
			m.mode = picker.ModeBrowse
		}
		return nil
	}
	m.errMsg = ""
	m.store.SetInstalled(loaded.candidates)
	if m.mode != picker.ModeSearch {
		return nil
	}
	query := m.list.Query
	queryCursor := m.list.QueryCursorPos()
	m.list = picker.NewList(m.store.Installed())
	m.showsRunning = false
	if query != "" {
		m.list.SetQuery(query, queryCursor)
	}
	if len(m.list.View) == 0 && query == "" {
		m.setInfo("No applications found.")
	}
	m.syncViewport()
	return nil
}
