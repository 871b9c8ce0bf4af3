// Package notebook holds the day view and reminder logic shared by the
// terminal UI and the command line.
package notebook

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/daynotes/internal/calendar"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/models"
	"github.com/julianstephens/daynotes/internal/storage"
	"github.com/julianstephens/daynotes/internal/utils"
)

// Mode says what may be done with the viewed date's notes.
type Mode int

const (
	ModeEditable Mode = iota
	ModeReadOnlyPast
	ModeReadOnlyFuture
)

func (m Mode) String() string {
	switch m {
	case ModeEditable:
		return "editable"
	case ModeReadOnlyPast:
		return "past"
	default:
		return "future"
	}
}

// Session is the state of one interactive session. Notes and Reminders are
// the in-memory copies of the stored mappings; when a save fails they stay
// ahead of the store and the matching dirty flag is set.
type Session struct {
	ViewDate    string
	Today       string
	Now         time.Time
	Cursor      calendar.Cursor
	Pending     models.PendingReminder
	Notes       models.NotesIndex
	Reminders   models.ReminderStore
	Theme       models.Theme
	FocusNoteID int64
	LastErr     error

	notesDirty     bool
	remindersDirty bool
	themeDirty     bool
}

// Controller applies user operations to a Session and persists them.
type Controller struct {
	store  Store
	dialog Dialog
	now    func() time.Time
	s      Session
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces time.Now. The returned times should be in the user's
// timezone.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New loads the stored mappings and opens the session on the application day.
func New(store Store, dialog Dialog, opts ...Option) (*Controller, error) {
	c := &Controller{store: store, dialog: dialog, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	notes, err := store.LoadNotes()
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	reminders, err := store.LoadReminders()
	if err != nil {
		return nil, fmt.Errorf("failed to load reminders: %w", err)
	}
	theme, err := store.LoadTheme()
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	if notes == nil {
		notes = models.NotesIndex{}
	}
	if reminders == nil {
		reminders = models.ReminderStore{}
	}

	now := c.now()
	today := utils.ApplicationDay(now)
	cursor, _ := calendar.CursorForKey(today)
	c.s = Session{
		ViewDate:  today,
		Today:     today,
		Now:       now,
		Cursor:    cursor,
		Notes:     notes,
		Reminders: reminders,
		Theme:     theme,
	}
	logger.Debug("session opened", "today", today, "days", len(notes))
	return c, nil
}

// Session returns a copy of the current state.
func (c *Controller) Session() Session { return c.s }

// Err returns the last error raised outside a direct call, such as a failed
// save after a confirmation, or a save that has not yet been retried.
func (c *Controller) Err() error { return c.s.LastErr }

// Unsaved reports whether some in-memory change has not reached the store.
func (c *Controller) Unsaved() bool {
	return c.s.notesDirty || c.s.remindersDirty || c.s.themeDirty
}

// Mode derives the mode of the viewed date from the application day.
func (c *Controller) Mode() Mode {
	switch {
	case c.s.ViewDate == c.s.Today:
		return ModeEditable
	case c.s.ViewDate < c.s.Today:
		return ModeReadOnlyPast
	default:
		return ModeReadOnlyFuture
	}
}

// realToday is the calendar date right now, ignoring the night rollover.
// Reminder dates are compared against it.
func (c *Controller) realToday() string {
	return utils.ToDateKey(c.now())
}

// SelectDate shows the notes of key. The calendar follows when key lies in
// another month.
func (c *Controller) SelectDate(key string) error {
	if !utils.IsDateKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	c.s.ViewDate = key
	c.s.FocusNoteID = 0
	if !c.s.Cursor.Contains(key) {
		c.s.Cursor, _ = calendar.CursorForKey(key)
	}
	return nil
}

// ClickDay is a click on a calendar cell. While a reminder is being
// composed it toggles the date for the reminder; otherwise it opens the day.
func (c *Controller) ClickDay(key string) error {
	if c.s.Pending.Active() {
		return c.ToggleDateSelection(key)
	}
	return c.SelectDate(key)
}

func (c *Controller) PrevMonth() { c.s.Cursor = c.s.Cursor.Prev() }
func (c *Controller) NextMonth() { c.s.Cursor = c.s.Cursor.Next() }

// GoToToday opens the application day.
func (c *Controller) GoToToday() error {
	return c.SelectDate(c.s.Today)
}

// OnTick refreshes the clock. It reports whether the application day
// changed, in which case the previous day became read-only.
func (c *Controller) OnTick() bool {
	now := c.now()
	c.s.Now = now
	day := utils.ApplicationDay(now)
	if day == c.s.Today {
		return false
	}
	logger.Info("application day rolled over", "from", c.s.Today, "to", day)
	c.s.Today = day
	return true
}

// SetTheme validates and stores the theme.
func (c *Controller) SetTheme(name string) error {
	if !models.ValidTheme(name) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	c.s.Theme = models.Theme(name)
	return c.saveTheme()
}

// Flush writes every mapping whose last save failed.
func (c *Controller) Flush() error {
	var errs []error
	if c.s.notesDirty {
		errs = append(errs, c.saveNotes())
	}
	if c.s.remindersDirty {
		errs = append(errs, c.saveReminders())
	}
	if c.s.themeDirty {
		errs = append(errs, c.saveTheme())
	}
	return errors.Join(errs...)
}

func (c *Controller) saveNotes() error {
	err := c.store.SaveNotes(c.s.Notes)
	c.s.notesDirty = err != nil
	return c.afterSave("notes", err)
}

func (c *Controller) saveReminders() error {
	err := c.store.SaveReminders(c.s.Reminders)
	c.s.remindersDirty = err != nil
	return c.afterSave("reminders", err)
}

func (c *Controller) saveTheme() error {
	err := c.store.SaveTheme(c.s.Theme)
	c.s.themeDirty = err != nil
	return c.afterSave("theme", err)
}

// afterSave keeps the in-memory edit on failure and records the error until
// every mapping is saved again.
func (c *Controller) afterSave(what string, err error) error {
	if err != nil {
		if !errors.Is(err, storage.ErrPersistence) {
			err = fmt.Errorf("%w: %v", storage.ErrPersistence, err)
		}
		logger.Warn("changes kept in memory only", "mapping", what, "error", err)
		c.s.LastErr = err
		return err
	}
	if !c.Unsaved() {
		c.s.LastErr = nil
	}
	return nil
}
