package notebook

import (
	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/models"
)

// NoteKey is a key press inside a note being edited.
type NoteKey int

const (
	NoteKeyOther NoteKey = iota
	// NoteKeySubmit is enter without shift.
	NoteKeySubmit
	NoteKeyBackspace
)

func (c *Controller) requireEditable() error {
	if c.Mode() != ModeEditable {
		return ErrReadOnlyDay
	}
	return nil
}

// AddNote appends an empty note to the application day and focuses it. The
// id is returned even when saving fails, since the note exists in memory.
func (c *Controller) AddNote() (int64, error) {
	if err := c.requireEditable(); err != nil {
		return 0, err
	}
	day := c.s.ViewDate
	id := c.s.Notes.Day(day).NextID(c.now().UnixMilli())
	c.s.Notes.Append(day, models.NoteRecord{ID: id})
	c.s.FocusNoteID = id
	logger.Debug("note added", "date", day, "id", id)
	return id, c.saveNotes()
}

// EditNoteText replaces a note's text and saves. An unknown id is ignored.
func (c *Controller) EditNoteText(id int64, text string) error {
	if err := c.requireEditable(); err != nil {
		return err
	}
	if !c.s.Notes.SetText(c.s.ViewDate, id, text) {
		return nil
	}
	return c.saveNotes()
}

// DeleteNote asks for confirmation and removes the note when granted. An
// unknown id is ignored without asking.
func (c *Controller) DeleteNote(id int64) error {
	if err := c.requireEditable(); err != nil {
		return err
	}
	day := c.s.ViewDate
	if c.s.Notes.Day(day).Index(id) < 0 {
		return nil
	}

	c.dialog.Confirm(constants.MsgConfirmDeleteNote, func(ok bool) {
		if !ok {
			return
		}
		// The day may have rolled over while the dialog was open
		if day != c.s.Today {
			c.s.LastErr = ErrReadOnlyDay
			return
		}
		if !c.s.Notes.Remove(day, id) {
			return
		}
		if c.s.FocusNoteID == id {
			c.s.FocusNoteID = 0
		}
		logger.Debug("note deleted", "date", day, "id", id)
		_ = c.saveNotes()
	})
	return nil
}

// HandleNoteKey applies the editing shortcuts: submit adds a new note and
// backspace in an empty note deletes it after confirmation.
func (c *Controller) HandleNoteKey(id int64, key NoteKey, currentText string) error {
	switch key {
	case NoteKeySubmit:
		_, err := c.AddNote()
		return err
	case NoteKeyBackspace:
		if currentText == "" {
			return c.DeleteNote(id)
		}
	}
	return nil
}
