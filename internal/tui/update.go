package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/models"
	"github.com/julianstephens/daynotes/internal/notebook"
	"github.com/julianstephens/daynotes/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editor.SetWidth(max(20, min(72, msg.Width/2-8)))
		return m, nil

	case TickMsg:
		if m.ctrl.OnTick() {
			// Yesterday's notes are read-only from now on
			m.settle()
		}
		return m, tick()
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateConfirmation:
		cmd = m.updateConfirmation(msg)
	case constants.StateAlert:
		m.updateAlert(msg)
	case constants.StateEditNote:
		cmd = m.updateEditor(msg)
	default:
		cmd = m.updateBrowse(msg)
	}
	if m.quitting {
		return m, tea.Quit
	}

	m.settle()
	return m, tea.Batch(cmd, m.nextDialog())
}

// handleGlobalKeys handles the keys that work in every pane. It reports
// whether the key was consumed.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) bool {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % 3)
	case key.Matches(msg, m.keys.ShiftTab):
		m.setFocus((m.focus + 2) % 3)
	case key.Matches(msg, m.keys.Theme):
		next := models.NextTheme(m.ctrl.Session().Theme)
		m.report(m.ctrl.SetTheme(string(next)))
	case key.Matches(msg, m.keys.Save):
		m.report(m.ctrl.Flush())
	default:
		return false
	}
	return true
}

func (m *Model) updateBrowse(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == constants.FocusReminder {
			var cmd tea.Cmd
			m.reminderIn, cmd = m.reminderIn.Update(msg)
			return cmd
		}
		return nil
	}
	if m.handleGlobalKeys(k) {
		return nil
	}

	if m.focus == constants.FocusReminder {
		return m.updateReminderPane(k)
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		m.quitting = true
		return nil
	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(k, m.keys.Today):
		m.report(m.ctrl.GoToToday())
		m.dayCursor = m.ctrl.Session().ViewDate
		m.noteIndex = 0
		return nil
	case key.Matches(k, m.keys.PrevMonth):
		m.ctrl.PrevMonth()
		m.dayCursor = m.ctrl.Session().Cursor.Key() + "-01"
		return nil
	case key.Matches(k, m.keys.NextMonth):
		m.ctrl.NextMonth()
		m.dayCursor = m.ctrl.Session().Cursor.Key() + "-01"
		return nil
	case key.Matches(k, m.keys.Add):
		return m.addNote()
	}

	if m.focus == constants.FocusNotes {
		return m.updateNotesPane(k)
	}
	m.updateCalendarPane(k)
	return nil
}

func (m *Model) updateCalendarPane(k tea.KeyMsg) {
	switch {
	case key.Matches(k, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(k, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(k, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(k, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(k, m.keys.Enter):
		composing := m.ctrl.Session().Pending.Active()
		m.report(m.ctrl.ClickDay(m.dayCursor))
		if !composing {
			m.noteIndex = 0
			m.remIndex = 0
		}
	}
}

// moveCursor moves the day cursor by n days, paging the calendar when the
// cursor leaves the displayed month.
func (m *Model) moveCursor(n int) {
	next, err := utils.AddDays(m.dayCursor, n)
	if err != nil {
		return
	}
	cur := m.ctrl.Session().Cursor
	if !cur.Contains(next) {
		if n < 0 {
			m.ctrl.PrevMonth()
		} else {
			m.ctrl.NextMonth()
		}
	}
	m.dayCursor = next
}

func (m *Model) updateNotesPane(k tea.KeyMsg) tea.Cmd {
	notes := m.ctrl.View().Notes
	switch {
	case key.Matches(k, m.keys.Up):
		if m.noteIndex > 0 {
			m.noteIndex--
		}
	case key.Matches(k, m.keys.Down):
		if m.noteIndex < len(notes)-1 {
			m.noteIndex++
		}
	case key.Matches(k, m.keys.Enter), key.Matches(k, m.keys.Edit):
		if len(notes) == 0 {
			return nil
		}
		if m.ctrl.Mode() != notebook.ModeEditable {
			m.report(notebook.ErrReadOnlyDay)
			return nil
		}
		return m.startEditing(notes[m.noteIndex].ID)
	case key.Matches(k, m.keys.Delete):
		if len(notes) == 0 {
			return nil
		}
		m.report(m.ctrl.DeleteNote(notes[m.noteIndex].ID))
	}
	return nil
}

func (m *Model) updateReminderPane(k tea.KeyMsg) tea.Cmd {
	switch k.String() {
	case "enter":
		m.report(m.ctrl.CommitReminder())
		m.reminderIn.SetValue(m.ctrl.Session().Pending.Text)
		return nil
	case "esc":
		m.ctrl.ClearPending()
		m.reminderIn.Reset()
		return nil
	case "up":
		if m.remIndex > 0 {
			m.remIndex--
		}
		return nil
	case "down":
		if m.remIndex < len(m.ctrl.View().Reminders)-1 {
			m.remIndex++
		}
		return nil
	}
	if key.Matches(k, m.keys.Unremind) {
		m.report(m.ctrl.DeleteReminder(m.ctrl.Session().ViewDate, m.remIndex))
		return nil
	}

	var cmd tea.Cmd
	before := m.reminderIn.Value()
	m.reminderIn, cmd = m.reminderIn.Update(k)
	if v := m.reminderIn.Value(); v != before {
		m.ctrl.SetReminderText(v)
	}
	return cmd
}

func (m *Model) addNote() tea.Cmd {
	id, err := m.ctrl.AddNote()
	if errors.Is(err, notebook.ErrReadOnlyDay) {
		m.report(err)
		return nil
	}
	// A failed save still leaves the note in memory
	m.report(err)
	return m.startEditing(id)
}

func (m *Model) startEditing(id int64) tea.Cmd {
	text := ""
	for i, n := range m.ctrl.View().Notes {
		if n.ID == id {
			text = n.Text
			m.noteIndex = i
		}
	}
	m.editingID = id
	m.editor.SetValue(text)
	m.state = constants.StateEditNote
	m.setFocus(constants.FocusNotes)
	return tea.Batch(m.editor.Focus(), textarea.Blink)
}

func (m *Model) stopEditing() {
	m.editingID = 0
	m.editor.Blur()
	m.editor.Reset()
	if m.state == constants.StateEditNote {
		m.state = constants.StateBrowse
	}
}

func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.String() == "ctrl+c":
			m.quitting = true
			return nil
		case key.Matches(k, m.keys.Back):
			m.stopEditing()
			return nil
		case key.Matches(k, m.keys.Theme), key.Matches(k, m.keys.Save):
			m.handleGlobalKeys(k)
			return nil
		case k.Type == tea.KeyEnter && !k.Alt:
			m.report(m.ctrl.HandleNoteKey(m.editingID, notebook.NoteKeySubmit, m.editor.Value()))
			if id := m.ctrl.Session().FocusNoteID; id != 0 && id != m.editingID {
				return m.startEditing(id)
			}
			return nil
		case k.Type == tea.KeyBackspace && m.editor.Value() == "":
			m.report(m.ctrl.HandleNoteKey(m.editingID, notebook.NoteKeyBackspace, ""))
			return nil
		}
	}

	var cmd tea.Cmd
	before := m.editor.Value()
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != before {
		m.report(m.ctrl.EditNoteText(m.editingID, v))
	}
	return cmd
}

func (m *Model) setFocus(f constants.Focus) {
	m.focus = f
	if f == constants.FocusReminder {
		m.reminderIn.Focus()
	} else {
		m.reminderIn.Blur()
	}
}

// report logs an error returned by the controller. Validation errors have
// already been shown as alerts and persistence errors stay visible in the
// footer through the controller's last error.
func (m *Model) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, notebook.ErrReadOnlyDay) {
		m.dialog.Alert(err.Error())
	}
	logger.Debug("operation rejected", "error", err)
}

// settle brings the model back in line with the controller after any
// change: the theme, the selection bounds and the note being edited.
func (m *Model) settle() {
	v := m.ctrl.View()
	m.styles = NewStyles(v.Theme)

	m.noteIndex = min(m.noteIndex, max(0, len(v.Notes)-1))
	m.remIndex = min(m.remIndex, max(0, len(v.Reminders)-1))

	if m.editingID == 0 {
		return
	}
	if v.Mode != notebook.ModeEditable {
		m.stopEditing()
		return
	}
	for _, n := range v.Notes {
		if n.ID == m.editingID {
			return
		}
	}
	m.stopEditing()
}

// nextDialog shows the next queued dialog when none is open.
func (m *Model) nextDialog() tea.Cmd {
	if m.state == constants.StateConfirmation || m.state == constants.StateAlert {
		return nil
	}
	r, ok := m.dialog.pop()
	if !ok {
		return nil
	}
	m.previousState = m.state
	m.active = r
	if !r.confirm {
		m.state = constants.StateAlert
		return nil
	}

	m.confirmForm = &ConfirmationFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(r.message).
				Affirmative("Yes").
				Negative("No").
				Value(&m.confirmForm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
	m.state = constants.StateConfirmation
	return m.form.Init()
}

func (m *Model) updateConfirmation(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "y", "Y":
			m.resolve(true)
			return nil
		case "n", "N", "esc":
			m.resolve(false)
			return nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		m.resolve(m.confirmForm.Confirmed)
	case huh.StateAborted:
		m.resolve(false)
	}
	return cmd
}

// resolve closes the open confirmation and runs its continuation.
func (m *Model) resolve(ok bool) {
	r := m.active
	m.active = dialogRequest{}
	m.form = nil
	m.confirmForm = nil
	m.state = m.previousState
	if r.onResult != nil {
		r.onResult(ok)
	}
}

func (m *Model) updateAlert(msg tea.Msg) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return
	}
	switch k.String() {
	case "enter", "esc", " ":
		m.active = dialogRequest{}
		m.state = m.previousState
	case "ctrl+c":
		m.quitting = true
	}
}
