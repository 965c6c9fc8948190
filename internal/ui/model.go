package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/expi-showcase/internal/data/dispatcher"
	"github.com/atomicstack/expi-showcase/internal/presenter"
	"github.com/atomicstack/expi-showcase/internal/ui/command"
	uistate "github.com/atomicstack/expi-showcase/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	tickInterval  = 150 * time.Millisecond
	infoLifetime  = 5 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

type tickMsg time.Time

// Model implements the Bubble Tea model for the product walkthrough.
type Model struct {
	presenter  *presenter.Presenter
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	clips      *Clips

	body   viewport.Model
	blocks []mediaBlock
	focus  int
	frame  int

	menu     *uistate.Menu
	jump     textinput.Model
	jumping  bool
	showHelp bool

	summaryCache map[summaryKey][]string
	summaryWidth int

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	quitting    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires the renderer to an existing presenter. clips must be the
// registry whose Factory the presenter was built with.
func NewModel(p *presenter.Presenter, clips *Clips, width, height int, showFooter bool, verbose bool) *Model {
	if clips == nil {
		clips = NewClips()
	}
	m := &Model{
		presenter:    p,
		dispatcher:   dispatcher.New(p),
		bus:          command.New(),
		clips:        clips,
		body:         viewport.New(defaultWidth, defaultHeight),
		summaryCache: make(map[summaryKey][]string),
		showFooter:   showFooter,
		verbose:      verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.menu = uistate.NewMenu(m.menuItems(), p.CurrentSection())
	m.jump = newJumpInput()
	m.registerHandlers()
	if m.fixedWidth {
		m.dispatcher.Handle(dispatcher.Resize(m.width))
	}
	m.refresh()
	return m
}

func newJumpInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "jump: "
	ti.Placeholder = "section name"
	ti.CharLimit = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
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
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(copyResultMsg{}):     m.handleCopyResultMsg,
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

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.dispatcher.Handle(dispatcher.Resize(m.viewWidth()))
	m.refresh()
	return nil
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	if m.quitting {
		return nil
	}
	m.frame++
	m.clips.advance()
	return tick()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.presenter.Close()
	return tea.Quit
}

func (m *Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) viewHeight() int {
	if m.height > 0 {
		return m.height
	}
	return defaultHeight
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) menuItems() []uistate.Item {
	entries := m.presenter.Sections()
	items := make([]uistate.Item, len(entries))
	for i, e := range entries {
		items[i] = uistate.Item{ID: e.ID, Label: e.Label}
	}
	return items
}
