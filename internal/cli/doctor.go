package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/daynotes/internal/storage"
	"github.com/julianstephens/daynotes/internal/utils"
	"github.com/julianstephens/daynotes/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(*Context) error
	warnOnly bool
	needsDB  bool
}

var doctorChecks = []check{
	{name: "Store reachable", run: checkStoreReachable},
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true, needsDB: true},
	{name: "Data validation", run: checkData, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

var errSkipped = errors.New("skipped")

func (cmd *DoctorCmd) Run(ctx *Context) error {
	w := ctx.out()
	fmt.Fprintln(w, "Running diagnostics...")
	fmt.Fprintln(w)

	hasError := false
	reachable := true
	for _, c := range doctorChecks {
		if c.needsDB && !reachable {
			fmt.Fprintf(w, "⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case errors.Is(err, errSkipped):
			fmt.Fprintf(w, "⊘ %s: SKIPPED (%s backend)\n", c.name, backendName(ctx))
		case err != nil && c.warnOnly:
			fmt.Fprintf(w, "⚠ %s: WARNING\n", c.name)
			fmt.Fprintf(w, "   %v\n", err)
		case err != nil:
			fmt.Fprintf(w, "❌ %s: FAIL\n", c.name)
			fmt.Fprintf(w, "   Error: %v\n", err)
			hasError = true
			if c.name == "Store reachable" {
				reachable = false
			}
		default:
			fmt.Fprintf(w, "✓ %s: OK\n", c.name)
		}
	}

	fmt.Fprintln(w)
	if hasError {
		fmt.Fprintln(w, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Fprintln(w, "All diagnostics passed!")
	return nil
}

func backendName(ctx *Context) string {
	switch ctx.Store.Backend().(type) {
	case *storage.SQLiteBackend:
		return "sqlite"
	case *storage.DiskvBackend:
		return "diskv"
	default:
		return "json"
	}
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if _, err := ctx.Store.Backend().Keys(); err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	b, ok := ctx.Store.Backend().(*storage.SQLiteBackend)
	if !ok {
		return errSkipped
	}
	current, latest, err := b.SchemaVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d", current, latest)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return errSkipped
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
	}
	return nil
}

// checkData decodes both mappings and validates their contents.
func checkData(ctx *Context) error {
	notes, err := ctx.Store.LoadNotes()
	if err != nil {
		return err
	}
	reminders, err := ctx.Store.LoadReminders()
	if err != nil {
		return err
	}
	result := validation.New().Validate(notes, reminders)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflicts found, run 'daynotes validate' for details", len(result.Conflicts))
	}
	st, err := ctx.Store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "   %d notes on %d days, %d reminders on %d days\n",
		st.Notes, st.NoteDays, st.Reminders, st.ReminderDays)
	return nil
}

func checkClockTimezone(ctx *Context) error {
	if err := utils.ValidateTimezone(ctx.Config.Timezone); err != nil {
		return err
	}
	now := ctx.now()
	if now.Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", now)
	}
	return nil
}
