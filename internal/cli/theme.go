package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/julianstephens/daynotes/internal/constants"
)

type ThemeCmd struct {
	Name string `arg:"" optional:"" help:"Theme to use. Without a name, lists the themes."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	ctrl, err := ctx.Controller(false)
	if err != nil {
		return err
	}

	if c.Name != "" {
		if err := ctrl.SetTheme(c.Name); err != nil {
			return err
		}
		fmt.Fprintf(ctx.out(), "Theme set to %s\n", c.Name)
		return nil
	}

	current := string(ctrl.Session().Theme)
	active := color.New(color.Bold, color.FgHiCyan)
	for _, name := range constants.Themes {
		if name == current {
			active.Fprintf(ctx.out(), "* %s\n", name)
			continue
		}
		fmt.Fprintf(ctx.out(), "  %s\n", name)
	}
	return nil
}
