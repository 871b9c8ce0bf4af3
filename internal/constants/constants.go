package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

// Focus represents which pane of the TUI receives key input
type Focus int

const (
	AppName           = "daynotes"
	Version           = "v0.3.0"
	DefaultConfigDir  = "~/.config/daynotes"
	DefaultStorePath  = "~/.config/daynotes/daynotes.db"
	DefaultConfigFile = "~/.config/daynotes/config.yaml"

	// DateFormat is the canonical date key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format accepted for month arguments (YYYY-MM)
	MonthFormat = "2006-01"

	// TimeFormat is the clock format (HH:MM)
	TimeFormat = "15:04"

	// DisplayDateFormat is the long header form of a date key
	DisplayDateFormat = "Monday, January 2, 2006"

	// DisplayMonthFormat labels the calendar month
	DisplayMonthFormat = "January 2006"

	// ShortDateFormat is used by the night notice
	ShortDateFormat = "January 2"

	// DayRolloverHour is the local hour at which the application day begins.
	DayRolloverHour = 3

	// TickInterval drives the clock and the rollover check
	TickInterval = time.Second

	// Storage keys. The V9 suffix keeps stored data compatible across releases.
	NotesKey     = "dailyNotesV9"
	RemindersKey = "dailyRemindersV9"
	ThemeKey     = "appThemeV9"

	// Backend kinds
	BackendAuto   = "auto"
	BackendSQLite = "sqlite"
	BackendDiskv  = "diskv"
	BackendJSON   = "json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "daynotes-"
	BackupFileSuffix = ".db"

	// Themes
	ThemeDarkBlue   = "dark-blue"
	ThemeDarkGreen  = "dark-green"
	ThemeDarkPurple = "dark-purple"
	ThemeLight      = "light"
	DefaultTheme    = ThemeDarkBlue
)

// Session States
const (
	StateBrowse SessionState = iota
	StateEditNote
	StateConfirmation
	StateAlert
	StateHelp
)

// Focus panes
const (
	FocusCalendar Focus = iota
	FocusNotes
	FocusReminder
)

// Themes lists the known theme identifiers in display order.
var Themes = []string{ThemeDarkBlue, ThemeDarkGreen, ThemeDarkPurple, ThemeLight}

// User-facing messages
const (
	MsgEmptyEditable      = "No notes yet. Press 'a' to add one."
	MsgEmptyPast          = "No notes were recorded for this date."
	MsgEmptyFuture        = "Notes cannot be added for a future date yet."
	MsgFutureOnly         = "You can only set reminders for future days."
	MsgReminderTextNeeded = "Please enter reminder text."
	MsgReminderDateNeeded = "Please select at least one future date on the calendar."
	MsgReminderSet        = "Reminder set successfully!"
	MsgConfirmDeleteNote  = "Are you sure you want to permanently delete this note?"
	MsgConfirmDeleteRem   = "Are you sure you want to delete this reminder?"
)
