package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appswitch/appswitch/internal/picker"
	"github.com/appswitch/appswitch/internal/state"
	"github.com/appswitch/appswitch/internal/theme"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the application picker.
type Model struct {
	list    *picker.List
	mode    picker.Mode
	outcome picker.Outcome
	done    bool

	loading      bool
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	showsRunning bool

	store             state.CandidateStore
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI over the running-application set. The store
// supplies the installed set once search mode loads it.
func NewModel(store state.CandidateStore, width, height int, showFooter bool) *Model {
	m := &Model{
		list:         picker.NewList(store.Running()),
		mode:         picker.ModeBrowse,
		outcome:      picker.Cancelled(),
		showFooter:   showFooter,
		showsRunning: true,
		store:        store,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// NewSearchModel initialises the UI directly in search mode over the
// installed-application set.
func NewSearchModel(store state.CandidateStore, width, height int, showFooter bool) *Model {
	m := NewModel(store, width, height, showFooter)
	m.mode = picker.ModeSearch
	m.showsRunning = false
	m.list = picker.NewList(store.Installed())
	return m
}

// Outcome reports how the session ended. It is meaningful once the program
// has quit.
func (m *Model) Outcome() picker.Outcome {
	return m.outcome
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(searchLoadedMsg{}):   m.handleSearchLoadedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) finish(outcome picker.Outcome) tea.Cmd {
	m.outcome = outcome
	m.done = true
	return tea.Quit
}
