package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/models"
)

// Store reads and writes the three persisted mappings. Every call reads or
// writes a whole mapping; nothing is cached here.
type Store struct {
	backend      Backend
	defaultTheme models.Theme
}

// Stats summarizes the stored data.
type Stats struct {
	NoteDays     int
	Notes        int
	ReminderDays int
	Reminders    int
}

func New(b Backend) *Store {
	return &Store{backend: b, defaultTheme: constants.DefaultTheme}
}

// SetDefaultTheme changes the theme reported when none is saved. Unknown
// names are ignored.
func (s *Store) SetDefaultTheme(name string) {
	if models.ValidTheme(name) {
		s.defaultTheme = models.Theme(name)
	}
}

func (s *Store) Init() error  { return s.backend.Init() }
func (s *Store) Load() error  { return s.backend.Load() }
func (s *Store) Close() error { return s.backend.Close() }

// Backend returns the underlying key-value backend.
func (s *Store) Backend() Backend { return s.backend }

func (s *Store) GetConfigPath() string { return s.backend.GetConfigPath() }

func (s *Store) LoadNotes() (models.NotesIndex, error) {
	notes := models.NotesIndex{}
	if err := s.loadJSON(constants.NotesKey, &notes); err != nil {
		return models.NotesIndex{}, err
	}
	return notes, nil
}

func (s *Store) SaveNotes(notes models.NotesIndex) error {
	if notes == nil {
		notes = models.NotesIndex{}
	}
	return s.saveJSON(constants.NotesKey, notes)
}

func (s *Store) LoadReminders() (models.ReminderStore, error) {
	reminders := models.ReminderStore{}
	if err := s.loadJSON(constants.RemindersKey, &reminders); err != nil {
		return models.ReminderStore{}, err
	}
	reminders.Compact()
	return reminders, nil
}

func (s *Store) SaveReminders(reminders models.ReminderStore) error {
	if reminders == nil {
		reminders = models.ReminderStore{}
	}
	return s.saveJSON(constants.RemindersKey, reminders)
}

// LoadTheme returns the saved theme, or the default when none is saved or
// the saved one is unknown.
func (s *Store) LoadTheme() (models.Theme, error) {
	v, ok, err := s.backend.Get(constants.ThemeKey)
	if err != nil {
		return s.defaultTheme, err
	}
	if !ok {
		return s.defaultTheme, nil
	}
	if !models.ValidTheme(v) {
		logger.Warn("ignoring unknown saved theme", "theme", v)
		return s.defaultTheme, nil
	}
	return models.Theme(v), nil
}

func (s *Store) SaveTheme(theme models.Theme) error {
	if err := s.backend.Set(constants.ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// Stats counts the days and entries in both mappings.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	notes, err := s.LoadNotes()
	if err != nil {
		return st, err
	}
	for _, day := range notes {
		if len(day.Notes) > 0 {
			st.NoteDays++
			st.Notes += len(day.Notes)
		}
	}

	reminders, err := s.LoadReminders()
	if err != nil {
		return st, err
	}
	st.ReminderDays = len(reminders)
	for _, list := range reminders {
		st.Reminders += len(list)
	}
	return st, nil
}

func (s *Store) loadJSON(key string, v any) error {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (s *Store) saveJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", ErrPersistence, key, err)
	}
	if err := s.backend.Set(key, string(raw)); err != nil {
		logger.Warn("save failed", "key", key, "error", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	logger.Debug("saved", "key", key, "bytes", len(raw))
	return nil
}
