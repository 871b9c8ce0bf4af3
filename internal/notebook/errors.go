package notebook

import "errors"

var (
	// ErrReadOnlyDay is returned when a note operation targets a day other
	// than the application day.
	ErrReadOnlyDay = errors.New("notes can only be changed on the current day")

	// ErrInvalidDate is returned for a malformed date key.
	ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")

	ErrNoPendingReminder = errors.New("enter reminder text before choosing dates")
	ErrEmptyReminderText = errors.New("reminder text is empty")
	ErrNoReminderDates   = errors.New("no reminder dates selected")
	ErrDateNotInFuture   = errors.New("reminders can only be set for future days")
	ErrUnknownTheme      = errors.New("unknown theme")
)

// IsValidation reports whether err was caused by user input that was
// rejected without changing any state.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidDate,
		ErrNoPendingReminder,
		ErrEmptyReminderText,
		ErrNoReminderDates,
		ErrDateNotInFuture,
		ErrUnknownTheme,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
