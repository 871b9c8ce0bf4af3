package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daynotes/internal/backup"
	"github.com/julianstephens/daynotes/internal/config"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/notebook"
	"github.com/julianstephens/daynotes/internal/storage"
	"github.com/julianstephens/daynotes/internal/utils"
)

type Context struct {
	Store      *storage.Store
	Config     config.Config
	ConfigPath string

	// Out receives command output. Defaults to stdout.
	Out io.Writer
	// Now is the clock in the configured timezone.
	Now func() time.Time
	// Ask shows a yes/no question. Defaults to a huh confirm prompt.
	Ask func(message string) (bool, error)
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Clock returns a clock that reads the time in timezone. An invalid zone
// falls back to local time.
func Clock(timezone string) func() time.Time {
	return func() time.Time {
		now, err := utils.NowInTimezone(timezone)
		if err != nil {
			return time.Now()
		}
		return now
	}
}

// Controller opens a notebook session for a single command. With assumeYes
// every confirmation is granted without asking.
func (c *Context) Controller(assumeYes bool) (*notebook.Controller, error) {
	d := &cliDialog{out: c.out(), assumeYes: assumeYes, ask: c.Ask}
	return notebook.New(c.Store, d, notebook.WithClock(c.now))
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.Backend().(*storage.SQLiteBackend); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

var errBackupUnsupported = errors.New("backups are only available for the sqlite backend")

func (c *Context) backupManager() (*backup.Manager, error) {
	if _, ok := c.Store.Backend().(*storage.SQLiteBackend); !ok {
		return nil, errBackupUnsupported
	}
	return backup.NewManager(c.Store.GetConfigPath()), nil
}

// cliDialog answers the controller's dialogs on the terminal.
type cliDialog struct {
	out       io.Writer
	assumeYes bool
	ask       func(string) (bool, error)
}

func (d *cliDialog) Confirm(message string, onResult func(bool)) {
	if d.assumeYes {
		onResult(true)
		return
	}
	ask := d.ask
	if ask == nil {
		ask = confirmPrompt
	}
	ok, err := ask(message)
	if err != nil {
		logger.Debug("confirmation aborted", "error", err)
		ok = false
	}
	if !ok {
		fmt.Fprintln(d.out, "Cancelled.")
	}
	onResult(ok)
}

func (d *cliDialog) Alert(message string) {
	fmt.Fprintln(d.out, message)
}

func confirmPrompt(message string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(huh.ThemeDracula()).Run()
	return ok, err
}

// resolveDate turns an optional date argument into a date key. Empty means
// the application day.
func (c *Context) resolveDate(arg string) (string, error) {
	switch arg {
	case "", "today":
		return utils.ApplicationDay(c.now()), nil
	case "tomorrow":
		return utils.AddDays(utils.ApplicationDay(c.now()), 1)
	case "yesterday":
		return utils.AddDays(utils.ApplicationDay(c.now()), -1)
	}
	if !utils.IsDateKey(arg) {
		return "", fmt.Errorf("%w: %q", notebook.ErrInvalidDate, arg)
	}
	return arg, nil
}
