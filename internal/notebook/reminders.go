package notebook

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/utils"
)

// SetReminderText updates the text of the reminder being composed.
func (c *Controller) SetReminderText(text string) {
	c.s.Pending.Text = text
}

// ToggleDateSelection adds or removes key from the dates of the reminder
// being composed. Only dates after the real current date are accepted.
func (c *Controller) ToggleDateSelection(key string) error {
	if !utils.IsDateKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	if !c.s.Pending.Active() {
		return ErrNoPendingReminder
	}
	if key <= c.realToday() {
		c.dialog.Alert(constants.MsgFutureOnly)
		return ErrDateNotInFuture
	}
	c.s.Pending.Toggle(key)
	return nil
}

// CommitReminder stores the composed reminder on every chosen date.
func (c *Controller) CommitReminder() error {
	text := strings.TrimSpace(c.s.Pending.Text)
	if text == "" {
		c.dialog.Alert(constants.MsgReminderTextNeeded)
		return ErrEmptyReminderText
	}
	if len(c.s.Pending.Dates) == 0 {
		c.dialog.Alert(constants.MsgReminderDateNeeded)
		return ErrNoReminderDates
	}
	// Midnight may have passed since the dates were chosen
	today := c.realToday()
	for _, d := range c.s.Pending.Dates {
		if d <= today {
			c.dialog.Alert(constants.MsgFutureOnly)
			return fmt.Errorf("%w: %s", ErrDateNotInFuture, d)
		}
	}

	c.s.Reminders.Add(text, c.s.Pending.Dates...)
	logger.Debug("reminder set", "dates", c.s.Pending.Dates)
	c.s.Pending.Reset()
	if err := c.saveReminders(); err != nil {
		return err
	}
	c.dialog.Alert(constants.MsgReminderSet)
	return nil
}

// ClearPending abandons the reminder being composed.
func (c *Controller) ClearPending() {
	c.s.Pending.Reset()
}

// DeleteReminder asks for confirmation and removes one reminder of a date.
// Indexes out of range are ignored without asking.
func (c *Controller) DeleteReminder(key string, index int) error {
	if index < 0 || index >= len(c.s.Reminders.For(key)) {
		return nil
	}
	c.dialog.Confirm(constants.MsgConfirmDeleteRem, func(ok bool) {
		if !ok || !c.s.Reminders.RemoveAt(key, index) {
			return
		}
		logger.Debug("reminder deleted", "date", key, "index", index)
		_ = c.saveReminders()
	})
	return nil
}
