package ui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/atomicstack/checklist/internal/backend"
	"github.com/atomicstack/checklist/internal/checklist"
	"github.com/atomicstack/checklist/internal/list"
	"github.com/atomicstack/checklist/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "checklist"

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Title      string
	Rows       []*checklist.Record
	FocusIndex int
	Width      int
	Height     int
	ShowFooter bool
	Cycle      bool
	Horizontal bool
	Classes    checklist.Classes
	// Watcher, when set, feeds reloads of the rows file into the checklist.
	Watcher *backend.Watcher
}

// Model implements the Bubble Tea model for a checklist.
type Model struct {
	list        *checklist.CheckList
	keys        KeyMap
	help        help.Model
	styles      *theme.Styles
	glyphs      theme.Glyphs
	title       string
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	backend     *backend.Watcher

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the checklist and loads opts.Rows into it.
func NewModel(opts Options) *Model {
	orientation := list.Vertical
	if opts.Horizontal {
		orientation = list.Horizontal
	}
	nav := list.New(list.Options{Orientation: orientation, Cycle: opts.Cycle})
	cl := checklist.New(nav, checklist.Options{Classes: opts.Classes})

	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	m := &Model{
		list:       cl,
		keys:       newKeyMap(cl.Keys()),
		help:       help.New(),
		styles:     theme.Default(),
		glyphs:     theme.DefaultGlyphs(),
		title:      title,
		showFooter: opts.ShowFooter,
		backend:    opts.Watcher,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	cl.OnChange(m.noteChange)
	cl.Resize(m.maxVisibleItems())
	cl.SetData(opts.Rows, opts.FocusIndex)
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
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

// Checklist exposes the hosted checklist.
func (m *Model) Checklist() *checklist.CheckList {
	return m.list
}

// Checked returns the checked rows in checked-set order.
func (m *Model) Checked() []*checklist.Record {
	return m.list.CheckedData()
}

func (m *Model) noteChange(ev checklist.ChangeEvent) {
	title := ""
	if ev.View != nil && ev.View.Title != nil {
		title = ev.View.Title.Text()
	}
	if ev.State {
		m.setInfo(fmt.Sprintf("Checked %s", title))
	} else {
		m.setInfo(fmt.Sprintf("Unchecked %s", title))
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
