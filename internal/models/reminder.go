package models

import (
	"slices"
	"strings"
)

// ReminderStore maps a date key to the reminder texts for that date, in the
// order they were added. A key is never kept with an empty list.
type ReminderStore map[string][]string

// For returns the reminders of key.
func (rs ReminderStore) For(key string) []string {
	if rs == nil {
		return nil
	}
	return rs[key]
}

// Has reports whether key has any reminders.
func (rs ReminderStore) Has(key string) bool {
	return len(rs.For(key)) > 0
}

// Add appends text to every date in keys.
func (rs ReminderStore) Add(text string, keys ...string) {
	for _, k := range keys {
		rs[k] = append(rs[k], text)
	}
}

// RemoveAt deletes the reminder at index for key and drops the key once its
// list is empty. Out-of-range indexes are ignored. It reports whether a
// reminder was removed.
func (rs ReminderStore) RemoveAt(key string, index int) bool {
	list, ok := rs[key]
	if !ok || index < 0 || index >= len(list) {
		return false
	}
	list = slices.Delete(slices.Clone(list), index, index+1)
	if len(list) == 0 {
		delete(rs, key)
		return true
	}
	rs[key] = list
	return true
}

// Compact removes keys holding empty lists, as written by older versions.
func (rs ReminderStore) Compact() {
	for k, v := range rs {
		if len(v) == 0 {
			delete(rs, k)
		}
	}
}

// Clone returns a deep copy.
func (rs ReminderStore) Clone() ReminderStore {
	out := make(ReminderStore, len(rs))
	for k, v := range rs {
		out[k] = slices.Clone(v)
	}
	return out
}

// PendingReminder is a reminder being composed: its text and the dates
// chosen for it. It is never persisted.
type PendingReminder struct {
	Text  string
	Dates []string
}

// Active reports whether a reminder is being composed, meaning the trimmed
// text is non-empty or a date has been chosen.
func (p PendingReminder) Active() bool {
	return strings.TrimSpace(p.Text) != "" || len(p.Dates) > 0
}

// Selected reports whether key is among the chosen dates.
func (p PendingReminder) Selected(key string) bool {
	return slices.Contains(p.Dates, key)
}

// Toggle adds key to the chosen dates, or removes it when already chosen.
func (p *PendingReminder) Toggle(key string) {
	if i := slices.Index(p.Dates, key); i >= 0 {
		p.Dates = slices.Delete(p.Dates, i, i+1)
		return
	}
	p.Dates = append(p.Dates, key)
}

// Reset clears the text and the chosen dates.
func (p *PendingReminder) Reset() {
	p.Text = ""
	p.Dates = nil
}
