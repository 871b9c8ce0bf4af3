package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/daynotes/internal/notebook"
)

type NoteCmd struct {
	Add    NoteAddCmd    `cmd:"" help:"Add a note to today."`
	Edit   NoteEditCmd   `cmd:"" help:"Replace the text of one of today's notes."`
	Delete NoteDeleteCmd `cmd:"" help:"Delete one of today's notes."`
	List   NoteListCmd   `cmd:"" help:"List the notes of a day." default:"1"`
}

type NoteAddCmd struct {
	Text string `arg:"" help:"Note text."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	ctrl, err := ctx.Controller(false)
	if err != nil {
		return err
	}
	id, err := ctrl.AddNote()
	if err != nil {
		return err
	}
	if err := ctrl.EditNoteText(id, c.Text); err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Added note %d\n", id)
	return nil
}

type NoteEditCmd struct {
	ID   int64  `arg:"" help:"Note id (see 'note list')."`
	Text string `arg:"" help:"New note text."`
}

func (c *NoteEditCmd) Run(ctx *Context) error {
	ctrl, err := ctx.Controller(false)
	if err != nil {
		return err
	}
	if err := requireNote(ctrl, c.ID); err != nil {
		return err
	}
	if err := ctrl.EditNoteText(c.ID, c.Text); err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Updated note %d\n", c.ID)
	return nil
}

type NoteDeleteCmd struct {
	ID  int64 `arg:"" help:"Note id (see 'note list')."`
	Yes bool  `short:"y" help:"Do not ask for confirmation."`
}

func (c *NoteDeleteCmd) Run(ctx *Context) error {
	ctrl, err := ctx.Controller(c.Yes)
	if err != nil {
		return err
	}
	if err := requireNote(ctrl, c.ID); err != nil {
		return err
	}
	if err := ctrl.DeleteNote(c.ID); err != nil {
		return err
	}
	if err := ctrl.Err(); err != nil {
		return err
	}
	if requireNote(ctrl, c.ID) != nil {
		fmt.Fprintf(ctx.out(), "Deleted note %d\n", c.ID)
	}
	return nil
}

// requireNote reports a missing note on the command line, where a silent
// no-op would look like success.
func requireNote(ctrl *notebook.Controller, id int64) error {
	s := ctrl.Session()
	if s.Notes.Day(s.ViewDate).Index(id) < 0 {
		return fmt.Errorf("note %d not found on %s", id, s.ViewDate)
	}
	return nil
}

type NoteListCmd struct {
	Date string `arg:"" optional:"" help:"Date to list (YYYY-MM-DD). Defaults to today."`
}

func (c *NoteListCmd) Run(ctx *Context) error {
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
	v := ctrl.View()

	if len(v.Notes) == 0 {
		fmt.Fprintln(ctx.out(), v.EmptyMessage)
		return nil
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 80
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NOTE"))
	for _, n := range v.Notes {
		tbl.AddRow(n.ID, n.Text)
	}
	fmt.Fprintln(ctx.out(), tbl)
	return nil
}
