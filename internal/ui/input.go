package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appswitch/appswitch/internal/logging/events"
	"github.com/appswitch/appswitch/internal/picker"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.QueryCursorPos() {
		m.filterCursorDirty = true
	}
}

// handleQueryCommand applies a query-editing command to the list. Editing
// only exists in search mode; everything else is ignored.
func (m *Model) handleQueryCommand(cmd picker.Command) {
	if m.mode != picker.ModeSearch || m.loading {
		return
	}
	before := m.list.QueryCursorPos()
	switch cmd.Kind {
	case picker.CmdAppend:
		if !m.list.InsertText(cmd.Text) {
			return
		}
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Append(m.list.Query)
		m.syncViewport()
	case picker.CmdBackspace:
		if !m.list.DeleteRuneBackward() {
			return
		}
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Backspace(m.list.Query)
		m.syncViewport()
	case picker.CmdDeleteWord:
		if !m.list.DeleteWordBackward() {
			return
		}
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.WordBackspace(m.list.Query)
		m.syncViewport()
	case picker.CmdClearQuery:
		if !m.list.ClearQuery() {
			return
		}
		m.noteFilterCursorChange(before)
		m.errMsg = ""
		m.forceClearInfo()
		events.Filter.Cleared()
		m.syncViewport()
	case picker.CmdQueryCursorLeft:
		if !m.list.MoveQueryCursorRuneBackward() {
			return
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.QueryCursor)
	case picker.CmdQueryCursorRight:
		if !m.list.MoveQueryCursorRuneForward() {
			return
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.QueryCursor)
	case picker.CmdQueryCursorStart:
		if !m.list.MoveQueryCursorStart() {
			return
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.QueryCursor)
	case picker.CmdQueryCursorEnd:
		if !m.list.MoveQueryCursorEnd() {
			return
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.QueryCursor)
	case picker.CmdQueryCursorWordBack:
		if !m.list.MoveQueryCursorWordBackward() {
			return
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.QueryCursor)
	case picker.CmdQueryCursorWordForward:
		if !m.list.MoveQueryCursorWordForward() {
			return
		}
		m.noteFilterCursorChange(before)
		events.Filter.Cursor(m.list.QueryCursor)
	}
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.list.Query
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		var caretRune string
		var rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(caretRune)
		return prompt + caret + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.list.QueryCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	var caretRune string
	if pos < len(runes) {
		caretRune = string(runes[pos])
	} else {
		caretRune = " "
	}
	caret := m.renderFilterCursor(caretRune)
	var after string
	if pos < len(runes) {
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + caret + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
