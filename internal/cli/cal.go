package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/julianstephens/daynotes/internal/calendar"
	"github.com/julianstephens/daynotes/internal/utils"
)

type CalCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM). Defaults to the current month."`
}

// an example week
const calWidth = len(" 11  12  13  14  15  16  17 ")

func (c *CalCmd) Run(ctx *Context) error {
	today := utils.ApplicationDay(ctx.now())
	cursor, err := calendar.CursorForKey(today)
	if err != nil {
		return err
	}
	if c.Month != "" {
		if cursor, err = calendar.ParseMonth(c.Month); err != nil {
			return err
		}
	}

	notes, err := ctx.Store.LoadNotes()
	if err != nil {
		return err
	}
	reminders, err := ctx.Store.LoadReminders()
	if err != nil {
		return err
	}

	cells := calendar.BuildMonth(cursor.Year, cursor.Month, calendar.Marks{
		Today:     today,
		Notes:     notes,
		Reminders: reminders,
	})
	printMonth(ctx.out(), cursor.Label(), calendar.Weeks(cells))
	return nil
}

func printMonth(w io.Writer, label string, weeks [][]calendar.DayCell) {
	title := color.New(color.Bold)
	header := color.New(color.Faint)
	plain := color.New()
	today := color.New(color.Bold, color.Underline, color.FgHiCyan)
	note := color.New(color.FgCyan)
	reminder := color.New(color.FgYellow)
	both := color.New(color.FgGreen)

	mid := max(0, (calWidth-len(label))/2)
	title.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), label)

	for _, h := range calendar.WeekdayHeaders {
		header.Fprintf(w, " %s ", h)
	}
	fmt.Fprintln(w)

	for _, week := range weeks {
		for _, c := range week {
			if c.Blank {
				fmt.Fprint(w, "    ")
				continue
			}
			mark := " "
			printer := plain
			switch {
			case c.HasNote && c.HasReminder:
				mark, printer = "+", both
			case c.HasNote:
				mark, printer = "•", note
			case c.HasReminder:
				mark, printer = "*", reminder
			}
			if c.IsToday {
				printer = today
			}
			printer.Fprintf(w, "%3d", c.Day)
			fmt.Fprint(w, mark)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	note.Fprint(w, "• notes  ")
	reminder.Fprint(w, "* reminders  ")
	both.Fprintln(w, "+ both")
}
