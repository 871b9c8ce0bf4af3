package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/utils"
)

// Cursor is the displayed month.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorFor returns the month containing t.
func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// CursorForKey returns the month containing a date key.
func CursorForKey(key string) (Cursor, error) {
	t, err := utils.ParseDateKey(key, time.UTC)
	if err != nil {
		return Cursor{}, err
	}
	return CursorFor(t), nil
}

func (c Cursor) first() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Prev returns the previous month.
func (c Cursor) Prev() Cursor {
	return CursorFor(c.first().AddDate(0, -1, 0))
}

// Next returns the following month.
func (c Cursor) Next() Cursor {
	return CursorFor(c.first().AddDate(0, 1, 0))
}

// Contains reports whether the date key lies in this month.
func (c Cursor) Contains(key string) bool {
	other, err := CursorForKey(key)
	return err == nil && other == c
}

// Label renders the month as "October 2026".
func (c Cursor) Label() string {
	return utils.DisplayMonth(c.Year, c.Month)
}

// Key renders the month as YYYY-MM.
func (c Cursor) Key() string {
	return c.first().Format(constants.MonthFormat)
}

// ParseMonth parses a YYYY-MM month.
func ParseMonth(s string) (Cursor, error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return CursorFor(t), nil
}
