package models

// NoteRecord is a single free-text note. IDs are derived from the creation
// time in milliseconds and are unique within their day.
type NoteRecord struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// DayNotes holds the notes of one date in display order.
type DayNotes struct {
	Notes []NoteRecord `json:"notes"`
}

// NotesIndex maps a date key (YYYY-MM-DD) to that day's notes.
type NotesIndex map[string]DayNotes

// Index returns the position of the note with id, or -1.
func (d DayNotes) Index(id int64) int {
	for i, n := range d.Notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// NextID returns an id for a note created at nowMillis. It follows the clock
// but never repeats or goes below an existing id of the day.
func (d DayNotes) NextID(nowMillis int64) int64 {
	next := nowMillis
	for _, n := range d.Notes {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next
}

// Day returns the notes for key. An absent key yields an empty DayNotes.
func (idx NotesIndex) Day(key string) DayNotes {
	if idx == nil {
		return DayNotes{}
	}
	return idx[key]
}

// HasNotes reports whether key has at least one note.
func (idx NotesIndex) HasNotes(key string) bool {
	return len(idx.Day(key).Notes) > 0
}

// Append adds a note to the end of key's list.
func (idx NotesIndex) Append(key string, note NoteRecord) {
	day := idx[key]
	day.Notes = append(day.Notes, note)
	idx[key] = day
}

// SetText replaces the text of the note with id. It reports whether the
// note was found.
func (idx NotesIndex) SetText(key string, id int64, text string) bool {
	day, ok := idx[key]
	if !ok {
		return false
	}
	i := day.Index(id)
	if i < 0 {
		return false
	}
	day.Notes[i].Text = text
	return true
}

// Remove deletes the note with id from key's list. The day entry is kept
// with an empty list when its last note goes. It reports whether a note was
// removed.
func (idx NotesIndex) Remove(key string, id int64) bool {
	day, ok := idx[key]
	if !ok {
		return false
	}
	i := day.Index(id)
	if i < 0 {
		return false
	}
	notes := make([]NoteRecord, 0, len(day.Notes)-1)
	notes = append(notes, day.Notes[:i]...)
	notes = append(notes, day.Notes[i+1:]...)
	idx[key] = DayNotes{Notes: notes}
	return true
}

// Clone returns a deep copy.
func (idx NotesIndex) Clone() NotesIndex {
	out := make(NotesIndex, len(idx))
	for k, v := range idx {
		notes := make([]NoteRecord, len(v.Notes))
		copy(notes, v.Notes)
		out[k] = DayNotes{Notes: notes}
	}
	return out
}
