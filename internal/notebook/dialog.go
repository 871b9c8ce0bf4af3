package notebook

import "github.com/julianstephens/daynotes/internal/models"

// Dialog asks the user to confirm destructive actions and shows messages.
// Confirm may answer later; onResult runs once with the user's choice and
// continues the operation that asked.
type Dialog interface {
	Confirm(message string, onResult func(bool))
	Alert(message string)
}

// Store is the persistence the controller needs. *storage.Store satisfies it.
type Store interface {
	LoadNotes() (models.NotesIndex, error)
	SaveNotes(models.NotesIndex) error
	LoadReminders() (models.ReminderStore, error)
	SaveReminders(models.ReminderStore) error
	LoadTheme() (models.Theme, error)
	SaveTheme(models.Theme) error
}
