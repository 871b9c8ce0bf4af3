package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type RemindCmd struct {
	Add    RemindAddCmd    `cmd:"" help:"Set a reminder on one or more future dates."`
	List   RemindListCmd   `cmd:"" help:"List reminders." default:"1"`
	Delete RemindDeleteCmd `cmd:"" help:"Delete a reminder."`
}

type RemindAddCmd struct {
	Text string   `arg:"" help:"Reminder text."`
	On   []string `required:"" help:"Date to be reminded on (YYYY-MM-DD or 'tomorrow'). Repeatable."`
}

func (c *RemindAddCmd) Run(ctx *Context) error {
	ctrl, err := ctx.Controller(false)
	if err != nil {
		return err
	}
	ctrl.SetReminderText(c.Text)
	for _, arg := range c.On {
		date, err := ctx.resolveDate(arg)
		if err != nil {
			return err
		}
		if slices.Contains(ctrl.Session().Pending.Dates, date) {
			continue
		}
		if err := ctrl.ToggleDateSelection(date); err != nil {
			return err
		}
	}
	return ctrl.CommitReminder()
}

type RemindListCmd struct {
	Date string `arg:"" optional:"" help:"Only list this date (YYYY-MM-DD). Defaults to every upcoming date."`
}

func (c *RemindListCmd) Run(ctx *Context) error {
	reminders, err := ctx.Store.LoadReminders()
	if err != nil {
		return err
	}

	var dates []string
	if c.Date != "" {
		date, err := ctx.resolveDate(c.Date)
		if err != nil {
			return err
		}
		dates = []string{date}
	} else {
		today, _ := ctx.resolveDate("")
		for _, d := range slices.Sorted(maps.Keys(reminders)) {
			if d >= today {
				dates = append(dates, d)
			}
		}
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("DATE"), bold.Sprint("#"), bold.Sprint("REMINDER"))
	rows := 0
	for _, d := range dates {
		for i, text := range reminders.For(d) {
			tbl.AddRow(d, i+1, text)
			rows++
		}
	}
	if rows == 0 {
		fmt.Fprintln(ctx.out(), "No reminders.")
		return nil
	}
	fmt.Fprintln(ctx.out(), tbl)
	return nil
}

type RemindDeleteCmd struct {
	Date  string `arg:"" help:"Date of the reminder (YYYY-MM-DD)."`
	Index int    `arg:"" help:"Position of the reminder on that date, starting at 1 (see 'remind list')."`
	Yes   bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *RemindDeleteCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	ctrl, err := ctx.Controller(c.Yes)
	if err != nil {
		return err
	}
	before := len(ctrl.Session().Reminders.For(date))
	if c.Index < 1 || c.Index > before {
		return fmt.Errorf("no reminder %d on %s", c.Index, date)
	}
	if err := ctrl.DeleteReminder(date, c.Index-1); err != nil {
		return err
	}
	if err := ctrl.Err(); err != nil {
		return err
	}
	if len(ctrl.Session().Reminders.For(date)) < before {
		fmt.Fprintf(ctx.out(), "Deleted reminder %d on %s\n", c.Index, date)
	}
	return nil
}
