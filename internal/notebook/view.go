package notebook

import (
	"slices"

	"github.com/julianstephens/daynotes/internal/calendar"
	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/models"
	"github.com/julianstephens/daynotes/internal/utils"
)

// NoteView is a note as it should be displayed.
type NoteView struct {
	ID       int64
	Text     string
	Editable bool
	Focused  bool
}

// ViewState is everything a presentation layer needs to draw the screen.
type ViewState struct {
	ViewDate     string
	Header       string
	Mode         Mode
	EmptyMessage string
	Notes        []NoteView
	FocusNoteID  int64

	Cursor     calendar.Cursor
	MonthLabel string
	Weeks      [][]calendar.DayCell

	Reminders     []string
	PendingText   string
	PendingDates  []string
	PendingActive bool

	Today       string
	SidebarDate string
	Clock       string
	NightNotice string

	Theme   models.Theme
	Unsaved bool
	LastErr error
}

// View derives the screen from the session. It is rebuilt in full on every
// call.
func (c *Controller) View() ViewState {
	s := c.s
	mode := c.Mode()

	v := ViewState{
		ViewDate:      s.ViewDate,
		Header:        utils.DisplayDate(s.ViewDate),
		Mode:          mode,
		FocusNoteID:   s.FocusNoteID,
		Cursor:        s.Cursor,
		MonthLabel:    s.Cursor.Label(),
		Reminders:     slices.Clone(s.Reminders.For(s.ViewDate)),
		PendingText:   s.Pending.Text,
		PendingDates:  slices.Clone(s.Pending.Dates),
		PendingActive: s.Pending.Active(),
		Today:         s.Today,
		SidebarDate:   utils.DisplayDate(s.Today),
		Clock:         utils.ClockText(s.Now),
		NightNotice:   utils.NightNotice(s.Now),
		Theme:         s.Theme,
		Unsaved:       c.Unsaved(),
		LastErr:       s.LastErr,
	}

	for _, n := range s.Notes.Day(s.ViewDate).Notes {
		v.Notes = append(v.Notes, NoteView{
			ID:       n.ID,
			Text:     n.Text,
			Editable: mode == ModeEditable,
			Focused:  n.ID == s.FocusNoteID,
		})
	}
	if len(v.Notes) == 0 {
		v.EmptyMessage = emptyMessage(mode)
	}

	cells := calendar.BuildMonth(s.Cursor.Year, s.Cursor.Month, calendar.Marks{
		Today:     s.Today,
		Selected:  s.ViewDate,
		Notes:     s.Notes,
		Reminders: s.Reminders,
		Pending:   s.Pending.Dates,
	})
	v.Weeks = calendar.Weeks(cells)
	return v
}

func emptyMessage(m Mode) string {
	switch m {
	case ModeEditable:
		return constants.MsgEmptyEditable
	case ModeReadOnlyPast:
		return constants.MsgEmptyPast
	default:
		return constants.MsgEmptyFuture
	}
}
