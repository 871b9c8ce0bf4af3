package notebook

import "fmt"

// CommandKind enumerates the operations a presentation layer can request.
type CommandKind int

const (
	CmdSelectDate CommandKind = iota
	CmdClickDay
	CmdAddNote
	CmdEditNote
	CmdDeleteNote
	CmdNoteKey
	CmdPrevMonth
	CmdNextMonth
	CmdGoToToday
	CmdTick
	CmdSetTheme
	CmdFlush
	CmdSetReminderText
	CmdToggleReminderDate
	CmdCommitReminder
	CmdClearPending
	CmdDeleteReminder
)

var commandNames = [...]string{
	CmdSelectDate:         "select-date",
	CmdClickDay:           "click-day",
	CmdAddNote:            "add-note",
	CmdEditNote:           "edit-note",
	CmdDeleteNote:         "delete-note",
	CmdNoteKey:            "note-key",
	CmdPrevMonth:          "prev-month",
	CmdNextMonth:          "next-month",
	CmdGoToToday:          "go-to-today",
	CmdTick:               "tick",
	CmdSetTheme:           "set-theme",
	CmdFlush:              "flush",
	CmdSetReminderText:    "set-reminder-text",
	CmdToggleReminderDate: "toggle-reminder-date",
	CmdCommitReminder:     "commit-reminder",
	CmdClearPending:       "clear-pending",
	CmdDeleteReminder:     "delete-reminder",
}

func (k CommandKind) String() string {
	if k >= 0 && int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is one requested operation. Only the fields the kind uses are
// read: Date for date commands, NoteID/Text/Key for note commands, Index for
// reminder deletion and Text for themes and reminder text.
type Command struct {
	Kind   CommandKind
	Date   string
	NoteID int64
	Text   string
	Key    NoteKey
	Index  int
}

// Dispatch runs cmd against the session.
func (c *Controller) Dispatch(cmd Command) error {
	switch cmd.Kind {
	case CmdSelectDate:
		return c.SelectDate(cmd.Date)
	case CmdClickDay:
		return c.ClickDay(cmd.Date)
	case CmdAddNote:
		_, err := c.AddNote()
		return err
	case CmdEditNote:
		return c.EditNoteText(cmd.NoteID, cmd.Text)
	case CmdDeleteNote:
		return c.DeleteNote(cmd.NoteID)
	case CmdNoteKey:
		return c.HandleNoteKey(cmd.NoteID, cmd.Key, cmd.Text)
	case CmdPrevMonth:
		c.PrevMonth()
	case CmdNextMonth:
		c.NextMonth()
	case CmdGoToToday:
		return c.GoToToday()
	case CmdTick:
		c.OnTick()
	case CmdSetTheme:
		return c.SetTheme(cmd.Text)
	case CmdFlush:
		return c.Flush()
	case CmdSetReminderText:
		c.SetReminderText(cmd.Text)
	case CmdToggleReminderDate:
		return c.ToggleDateSelection(cmd.Date)
	case CmdCommitReminder:
		return c.CommitReminder()
	case CmdClearPending:
		c.ClearPending()
	case CmdDeleteReminder:
		return c.DeleteReminder(cmd.Date, cmd.Index)
	default:
		return fmt.Errorf("unknown command %s", cmd.Kind)
	}
	return nil
}
