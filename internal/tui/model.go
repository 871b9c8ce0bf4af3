package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/notebook"
)

type ConfirmationFormModel struct {
	Confirmed bool
}

// TickMsg drives the clock and the day rollover check.
type TickMsg time.Time

type Model struct {
	ctrl   *notebook.Controller
	dialog *dialogQueue

	state         constants.SessionState
	previousState constants.SessionState
	focus         constants.Focus
	keys          KeyMap
	help          help.Model
	styles        Styles
	quitting      bool
	width         int
	height        int

	// dayCursor is the calendar cell under the keyboard cursor
	dayCursor string
	noteIndex int
	remIndex  int

	editor      textarea.Model
	editingID   int64
	reminderIn  textinput.Model
	form        *huh.Form
	confirmForm *ConfirmationFormModel
	active      dialogRequest
}

// New opens a session on store and builds the model around it.
func New(store notebook.Store, opts ...notebook.Option) (Model, error) {
	q := &dialogQueue{}
	ctrl, err := notebook.New(store, q, opts...)
	if err != nil {
		return Model{}, err
	}

	editor := textarea.New()
	editor.Placeholder = "Write a note..."
	editor.ShowLineNumbers = false
	editor.SetHeight(4)
	editor.SetWidth(48)
	// Enter adds a new note, so newlines need a modifier
	editor.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))

	in := textinput.New()
	in.Placeholder = "Remind me to..."
	in.CharLimit = 200
	in.Width = 40

	s := ctrl.Session()
	m := Model{
		ctrl:       ctrl,
		dialog:     q,
		state:      constants.StateBrowse,
		focus:      constants.FocusCalendar,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     NewStyles(s.Theme),
		dayCursor:  s.ViewDate,
		editor:     editor,
		reminderIn: in,
	}
	return m, nil
}

// Controller exposes the underlying controller.
func (m Model) Controller() *notebook.Controller { return m.ctrl }

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(constants.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
