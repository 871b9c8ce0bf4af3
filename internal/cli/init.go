package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/daynotes/internal/config"
)

type InitCmd struct {
	Force bool `help:"Delete the existing store before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	if c.Force {
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing store: %w", err)
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to delete existing store: %w", err)
		}
		fmt.Fprintf(ctx.out(), "Deleted existing store at: %s\n", path)
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "Initialized daynotes storage at: %s\n", path)

	if ctx.ConfigPath == "" {
		return nil
	}
	if _, err := os.Stat(ctx.ConfigPath); errors.Is(err, os.ErrNotExist) {
		if err := config.Write(ctx.ConfigPath, ctx.Config); err != nil {
			return err
		}
		fmt.Fprintf(ctx.out(), "Wrote config to: %s\n", ctx.ConfigPath)
	}
	return nil
}
