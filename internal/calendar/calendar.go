// Package calendar builds the month grid shown next to the day view.
package calendar

import (
	"time"

	"github.com/julianstephens/daynotes/internal/models"
	"github.com/julianstephens/daynotes/internal/utils"
)

// WeekdayHeaders labels the grid columns, Monday first.
var WeekdayHeaders = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// DayCell is one square of the grid. Blank cells pad the first and last
// week and carry no date.
type DayCell struct {
	Blank       bool
	DateKey     string
	Day         int
	HasNote     bool
	HasReminder bool
	IsSelected  bool
	IsToday     bool
	IsPending   bool
}

// Marks carries what the grid highlights.
type Marks struct {
	Today     string
	Selected  string
	Notes     models.NotesIndex
	Reminders models.ReminderStore
	Pending   []string
}

// DaysIn returns the number of days in month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks returns how many cells precede day 1 in a Monday-first week.
func LeadingBlanks(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(wd) + 6) % 7
}

// BuildMonth returns the leading blanks followed by one cell per day.
func BuildMonth(year int, month time.Month, marks Marks) []DayCell {
	blanks := LeadingBlanks(year, month)
	days := DaysIn(year, month)
	pending := make(map[string]bool, len(marks.Pending))
	for _, k := range marks.Pending {
		pending[k] = true
	}

	cells := make([]DayCell, blanks, blanks+days)
	for i := range cells {
		cells[i].Blank = true
	}
	for d := 1; d <= days; d++ {
		key := utils.ToDateKey(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
		cells = append(cells, DayCell{
			DateKey:     key,
			Day:         d,
			HasNote:     marks.Notes.HasNotes(key),
			HasReminder: marks.Reminders.Has(key),
			IsSelected:  key == marks.Selected,
			IsToday:     key == marks.Today,
			IsPending:   pending[key],
		})
	}
	return cells
}

// Weeks splits cells into rows of seven, padding the last row with blanks.
func Weeks(cells []DayCell) [][]DayCell {
	var rows [][]DayCell
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		row := make([]DayCell, 7)
		copy(row, cells[start:end])
		for i := end - start; i < 7; i++ {
			row[i].Blank = true
		}
		rows = append(rows, row)
	}
	return rows
}
