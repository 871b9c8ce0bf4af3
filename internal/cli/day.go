package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/julianstephens/daynotes/internal/notebook"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, 'today', 'yesterday' or 'tomorrow'). Defaults to today."`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	ctrl, err := ctx.Controller(false)
	if err != nil {
		return err
	}
	if err := ctrl.SelectDate(date); err != nil {
		return err
	}
	printDay(ctx, ctrl.View())
	return nil
}

func printDay(ctx *Context, v notebook.ViewState) {
	w := ctx.out()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	yellow := color.New(color.FgYellow)

	bold.Fprint(w, v.Header)
	switch v.Mode {
	case notebook.ModeReadOnlyPast:
		faint.Fprint(w, "  (read-only)")
	case notebook.ModeReadOnlyFuture:
		faint.Fprint(w, "  (upcoming)")
	}
	fmt.Fprintln(w)
	if v.NightNotice != "" && v.ViewDate == v.Today {
		color.New(color.Italic, color.FgHiYellow).Fprintf(w, "Working on %s\n", v.NightNotice)
	}
	fmt.Fprintln(w)

	if len(v.Notes) == 0 {
		faint.Fprintln(w, "  "+v.EmptyMessage)
	}
	for _, n := range v.Notes {
		faint.Fprintf(w, "  %d  ", n.ID)
		fmt.Fprintln(w, n.Text)
	}

	if len(v.Reminders) > 0 {
		fmt.Fprintln(w)
		bold.Fprintln(w, "Reminders")
		for i, r := range v.Reminders {
			yellow.Fprintf(w, "  %d. %s\n", i+1, r)
		}
	}
}
