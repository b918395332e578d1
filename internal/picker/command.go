package picker

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Mode selects how printable input is interpreted.
type Mode int

const (
	// ModeBrowse is the list-browsing variant: single-letter action
	// shortcuts are live and printable input never edits the query.
	ModeBrowse Mode = iota
	// ModeSearch is the query-prompt variant: printable input feeds the
	// query and shortcuts are plain characters.
	ModeSearch
)

// CommandKind enumerates the state-mutating commands a key event resolves to.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMoveUp
	CmdMoveDown
	CmdPageUp
	CmdPageDown
	CmdHome
	CmdEnd
	CmdAppend
	CmdBackspace
	CmdDeleteWord
	CmdClearQuery
	CmdQueryCursorLeft
	CmdQueryCursorRight
	CmdQueryCursorStart
	CmdQueryCursorEnd
	CmdQueryCursorWordBack
	CmdQueryCursorWordForward
	CmdStartSearch
	CmdConfirm
	CmdCancel
	CmdAction
)

// Command is the resolved interpretation of a single key event.
type Command struct {
	Kind   CommandKind
	Text   string
	Action ActionKind
}

// Resolve classifies a raw key event into a Command for the given mode.
// It is a pure function; unrecognised events resolve to CmdNone.
func Resolve(msg tea.KeyMsg, mode Mode) Command {
	switch msg.String() {
	case "ctrl+c", "esc":
		return Command{Kind: CmdCancel}
	case "enter":
		return Command{Kind: CmdConfirm}
	case "up":
		return Command{Kind: CmdMoveUp}
	case "down":
		return Command{Kind: CmdMoveDown}
	case "pgup":
		return Command{Kind: CmdPageUp}
	case "pgdown":
		return Command{Kind: CmdPageDown}
	case "home":
		return Command{Kind: CmdHome}
	case "end":
		return Command{Kind: CmdEnd}
	}
	if mode == ModeBrowse {
		return resolveBrowse(msg)
	}
	return resolveSearch(msg)
}

func resolveBrowse(msg tea.KeyMsg) Command {
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) != 1 {
		return Command{}
	}
	switch msg.Runes[0] {
	case 'o', 'O':
		return Command{Kind: CmdAction, Action: ActionOpen}
	case 'k', 'K':
		return Command{Kind: CmdAction, Action: ActionTerminate}
	case 'q', 'Q':
		return Command{Kind: CmdCancel}
	case '/':
		return Command{Kind: CmdStartSearch}
	}
	return Command{}
}

func resolveSearch(msg tea.KeyMsg) Command {
	switch msg.String() {
	case "ctrl+u":
		return Command{Kind: CmdClearQuery}
	case "ctrl+w":
		return Command{Kind: CmdDeleteWord}
	case "ctrl+a":
		return Command{Kind: CmdQueryCursorStart}
	case "ctrl+e":
		return Command{Kind: CmdQueryCursorEnd}
	case "alt+b":
		return Command{Kind: CmdQueryCursorWordBack}
	case "alt+f":
		return Command{Kind: CmdQueryCursorWordForward}
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return Command{Kind: CmdBackspace}
	case tea.KeyLeft:
		return Command{Kind: CmdQueryCursorLeft}
	case tea.KeyRight:
		return Command{Kind: CmdQueryCursorRight}
	case tea.KeySpace:
		return Command{Kind: CmdAppend, Text: " "}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return Command{}
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return Command{}
			}
		}
		return Command{Kind: CmdAppend, Text: string(msg.Runes)}
	}
	return Command{}
}
