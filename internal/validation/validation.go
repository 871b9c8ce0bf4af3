package validation

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/julianstephens/daynotes/internal/models"
	"github.com/julianstephens/daynotes/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictDuplicateNoteID ConflictType = "duplicate_note_id"
	ConflictInvalidNoteID   ConflictType = "invalid_note_id"
	ConflictEmptyReminder   ConflictType = "empty_reminder"
)

// Conflict represents a problem found in the stored data
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// Validator checks the stored mappings for entries the application would
// never have written.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate checks both mappings. Conflicts are ordered by date.
func (v *Validator) Validate(notes models.NotesIndex, reminders models.ReminderStore) ValidationResult {
	var result ValidationResult
	result.Conflicts = append(result.Conflicts, v.ValidateNotes(notes).Conflicts...)
	result.Conflicts = append(result.Conflicts, v.ValidateReminders(reminders).Conflicts...)
	slices.SortStableFunc(result.Conflicts, func(a, b Conflict) int {
		return strings.Compare(a.Date, b.Date)
	})
	return result
}

// ValidateNotes checks date keys and note ids.
func (v *Validator) ValidateNotes(notes models.NotesIndex) ValidationResult {
	var result ValidationResult
	for _, day := range slices.Sorted(maps.Keys(notes)) {
		if !utils.IsDateKey(day) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("notes stored under invalid date %q", day),
				Date:        day,
			})
			continue
		}
		seen := make(map[int64]bool)
		for _, n := range notes[day].Notes {
			if n.ID <= 0 {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictInvalidNoteID,
					Description: fmt.Sprintf("note with invalid id %d on %s", n.ID, day),
					Date:        day,
				})
			}
			if seen[n.ID] {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateNoteID,
					Description: fmt.Sprintf("duplicate note id %d on %s", n.ID, day),
					Date:        day,
				})
			}
			seen[n.ID] = true
		}
	}
	return result
}

// ValidateReminders checks date keys and reminder texts.
func (v *Validator) ValidateReminders(reminders models.ReminderStore) ValidationResult {
	var result ValidationResult
	for _, day := range slices.Sorted(maps.Keys(reminders)) {
		if !utils.IsDateKey(day) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("reminders stored under invalid date %q", day),
				Date:        day,
			})
			continue
		}
		for i, text := range reminders[day] {
			if strings.TrimSpace(text) == "" {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictEmptyReminder,
					Description: fmt.Sprintf("reminder %d on %s is empty", i+1, day),
					Date:        day,
				})
			}
		}
	}
	return result
}
