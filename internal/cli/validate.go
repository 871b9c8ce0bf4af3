package cli

import (
	"fmt"

	"github.com/julianstephens/daynotes/internal/validation"
)

type ValidateCmd struct{}

func (c *ValidateCmd) Run(ctx *Context) error {
	notes, err := ctx.Store.LoadNotes()
	if err != nil {
		return err
	}
	reminders, err := ctx.Store.LoadReminders()
	if err != nil {
		return err
	}

	result := validation.New().Validate(notes, reminders)
	fmt.Fprint(ctx.out(), result.FormatReport())
	if result.HasConflicts() {
		return fmt.Errorf("found %d conflicts", len(result.Conflicts))
	}
	fmt.Fprintln(ctx.out())
	return nil
}
