package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/daynotes/internal/config"
	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/notebook"
	"github.com/julianstephens/daynotes/internal/storage"
)

func friday() time.Time {
	return time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
}

func setupTestContext(t *testing.T, backend storage.Backend) (*Context, *bytes.Buffer) {
	t.Helper()
	store := storage.New(backend)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	out := &bytes.Buffer{}
	ctx := &Context{
		Store:  store,
		Config: config.Default(),
		Out:    out,
		Now:    friday,
		Ask: func(string) (bool, error) {
			t.Error("unexpected confirmation prompt")
			return false, nil
		},
	}
	return ctx, out
}

func setupJSON(t *testing.T) (*Context, *bytes.Buffer) {
	return setupTestContext(t, storage.NewJSONBackend(filepath.Join(t.TempDir(), "daynotes.json")))
}

func setupSQLite(t *testing.T) (*Context, *bytes.Buffer) {
	return setupTestContext(t, storage.NewSQLiteBackend(filepath.Join(t.TempDir(), "daynotes.db")))
}

func TestNoteCommands(t *testing.T) {
	ctx, out := setupJSON(t)

	if err := (&NoteAddCmd{Text: "buy milk"}).Run(ctx); err != nil {
		t.Fatalf("note add failed: %v", err)
	}
	notes, _ := ctx.Store.LoadNotes()
	day := notes.Day("2026-10-16").Notes
	if len(day) != 1 || day[0].Text != "buy milk" {
		t.Fatalf("stored notes = %+v", day)
	}
	id := day[0].ID

	if err := (&NoteEditCmd{ID: id, Text: "buy oat milk"}).Run(ctx); err != nil {
		t.Fatalf("note edit failed: %v", err)
	}

	out.Reset()
	if err := (&NoteListCmd{}).Run(ctx); err != nil {
		t.Fatalf("note list failed: %v", err)
	}
	if !strings.Contains(out.String(), "buy oat milk") {
		t.Errorf("note list output = %q", out.String())
	}

	if err := (&NoteDeleteCmd{ID: id, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("note delete failed: %v", err)
	}
	notes, _ = ctx.Store.LoadNotes()
	if notes.HasNotes("2026-10-16") {
		t.Error("note should be deleted")
	}
}

func TestNoteDeleteDeclined(t *testing.T) {
	ctx, out := setupJSON(t)
	if err := (&NoteAddCmd{Text: "keep me"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	notes, _ := ctx.Store.LoadNotes()
	id := notes.Day("2026-10-16").Notes[0].ID

	asked := 0
	ctx.Ask = func(message string) (bool, error) {
		asked++
		if message != constants.MsgConfirmDeleteNote {
			t.Errorf("prompt = %q", message)
		}
		return false, nil
	}
	if err := (&NoteDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("note delete failed: %v", err)
	}

	if asked != 1 {
		t.Errorf("asked %d times, want 1", asked)
	}
	notes, _ = ctx.Store.LoadNotes()
	if !notes.HasNotes("2026-10-16") {
		t.Error("declined delete removed the note")
	}
	if !strings.Contains(out.String(), "Cancelled.") {
		t.Errorf("output = %q, want a cancellation message", out.String())
	}
}

func TestNoteEditUnknownID(t *testing.T) {
	ctx, _ := setupJSON(t)
	err := (&NoteEditCmd{ID: 42, Text: "x"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestNoteListPastDay(t *testing.T) {
	ctx, out := setupJSON(t)
	if err := (&NoteListCmd{Date: "2026-10-01"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), constants.MsgEmptyPast) {
		t.Errorf("output = %q", out.String())
	}
}

func TestRemindCommands(t *testing.T) {
	ctx, out := setupJSON(t)

	err := (&RemindAddCmd{Text: "Pay rent", On: []string{"tomorrow", "2026-10-20", "2026-10-20"}}).Run(ctx)
	if err != nil {
		t.Fatalf("remind add failed: %v", err)
	}
	if !strings.Contains(out.String(), constants.MsgReminderSet) {
		t.Errorf("output = %q, want the success message", out.String())
	}

	reminders, _ := ctx.Store.LoadReminders()
	for _, d := range []string{"2026-10-17", "2026-10-20"} {
		if got := reminders.For(d); len(got) != 1 || got[0] != "Pay rent" {
			t.Errorf("reminders on %s = %v", d, got)
		}
	}

	out.Reset()
	if err := (&RemindListCmd{}).Run(ctx); err != nil {
		t.Fatalf("remind list failed: %v", err)
	}
	if strings.Count(out.String(), "Pay rent") != 2 {
		t.Errorf("remind list output = %q", out.String())
	}

	if err := (&RemindDeleteCmd{Date: "2026-10-17", Index: 1, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("remind delete failed: %v", err)
	}
	reminders, _ = ctx.Store.LoadReminders()
	if reminders.Has("2026-10-17") {
		t.Error("reminder on 2026-10-17 should be gone")
	}

	if err := (&RemindDeleteCmd{Date: "2026-10-20", Index: 5, Yes: true}).Run(ctx); err == nil {
		t.Error("expected an error for an index out of range")
	}
}

func TestRemindAddRejectsToday(t *testing.T) {
	ctx, _ := setupJSON(t)

	err := (&RemindAddCmd{Text: "Too late", On: []string{"2026-10-16"}}).Run(ctx)
	if !errors.Is(err, notebook.ErrDateNotInFuture) {
		t.Fatalf("error = %v, want ErrDateNotInFuture", err)
	}
	reminders, _ := ctx.Store.LoadReminders()
	if len(reminders) != 0 {
		t.Errorf("reminders = %v, want none", reminders)
	}
}

func TestDayCmd(t *testing.T) {
	ctx, out := setupJSON(t)
	if err := (&NoteAddCmd{Text: "stand-up at 9"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := (&DayCmd{}).Run(ctx); err != nil {
		t.Fatalf("day failed: %v", err)
	}
	for _, want := range []string{"Friday, October 16, 2026", "stand-up at 9"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("day output missing %q:\n%s", want, out.String())
		}
	}

	if err := (&DayCmd{Date: "16/10/2026"}).Run(ctx); !errors.Is(err, notebook.ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestCalCmd(t *testing.T) {
	ctx, out := setupJSON(t)

	if err := (&CalCmd{}).Run(ctx); err != nil {
		t.Fatalf("cal failed: %v", err)
	}
	if !strings.Contains(out.String(), "October 2026") {
		t.Errorf("cal output = %q", out.String())
	}

	out.Reset()
	if err := (&CalCmd{Month: "2027-02"}).Run(ctx); err != nil {
		t.Fatalf("cal 2027-02 failed: %v", err)
	}
	if !strings.Contains(out.String(), "February 2027") || !strings.Contains(out.String(), "28") {
		t.Errorf("cal output = %q", out.String())
	}

	if err := (&CalCmd{Month: "2027-13"}).Run(ctx); err == nil {
		t.Error("expected an error for an invalid month")
	}
}

func TestThemeCmd(t *testing.T) {
	ctx, out := setupJSON(t)

	if err := (&ThemeCmd{Name: constants.ThemeLight}).Run(ctx); err != nil {
		t.Fatalf("theme failed: %v", err)
	}
	out.Reset()
	if err := (&ThemeCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "* "+constants.ThemeLight) {
		t.Errorf("theme list = %q", out.String())
	}

	if err := (&ThemeCmd{Name: "neon"}).Run(ctx); !errors.Is(err, notebook.ErrUnknownTheme) {
		t.Errorf("error = %v, want ErrUnknownTheme", err)
	}
}

func TestInitWritesConfig(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(storage.NewSQLiteBackend(filepath.Join(dir, "daynotes.db")))
	t.Cleanup(func() { store.Close() })
	ctx := &Context{
		Store:      store,
		Config:     config.Default(),
		ConfigPath: filepath.Join(dir, "config.yaml"),
		Out:        &bytes.Buffer{},
	}

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "daynotes.db")); err != nil {
		t.Errorf("store not created: %v", err)
	}
	cfg, err := config.Load(ctx.ConfigPath)
	if err != nil {
		t.Fatalf("config not readable: %v", err)
	}
	if cfg.Backend != constants.BackendAuto {
		t.Errorf("config backend = %q", cfg.Backend)
	}
}

func TestBackupCommands(t *testing.T) {
	ctx, out := setupSQLite(t)

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup create failed: %v", err)
	}
	if !strings.Contains(out.String(), "Backup created") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("backup list failed: %v", err)
	}
	if !strings.Contains(out.String(), "1 total") {
		t.Errorf("backup list output = %q", out.String())
	}
}

func TestBackupRequiresSQLite(t *testing.T) {
	ctx, _ := setupJSON(t)
	if err := (&BackupCreateCmd{}).Run(ctx); !errors.Is(err, errBackupUnsupported) {
		t.Errorf("error = %v, want errBackupUnsupported", err)
	}
}

func TestDoctor(t *testing.T) {
	ctx, out := setupSQLite(t)
	if err := (&NoteAddCmd{Text: "hello"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out.String())
	}
	for _, want := range []string{"✓ Store reachable", "✓ Schema version", "⚠ Backups present", "1 notes on 1 days"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("doctor output missing %q:\n%s", want, out.String())
		}
	}
}

func TestDebugDump(t *testing.T) {
	ctx, out := setupJSON(t)
	if err := (&ThemeCmd{Name: constants.ThemeDarkGreen}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := (&DebugKeysCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != constants.ThemeKey {
		t.Errorf("keys = %q", out.String())
	}

	out.Reset()
	if err := (&DebugDumpCmd{Key: constants.ThemeKey}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != constants.ThemeDarkGreen {
		t.Errorf("dump = %q", out.String())
	}

	if err := (&DebugDumpCmd{Key: "missing"}).Run(ctx); err == nil {
		t.Error("expected an error for a missing key")
	}
}

func TestValidateCmd(t *testing.T) {
	ctx, out := setupJSON(t)
	if err := (&ValidateCmd{}).Run(ctx); err != nil {
		t.Fatalf("validate on an empty store failed: %v", err)
	}

	raw := `{"2026-10-16":{"notes":[{"id":1,"text":"a"},{"id":1,"text":"b"}]}}`
	if err := ctx.Store.Backend().Set(constants.NotesKey, raw); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := (&ValidateCmd{}).Run(ctx); err == nil {
		t.Error("expected validate to fail on duplicate ids")
	}
	if !strings.Contains(out.String(), "duplicate note id 1 on 2026-10-16") {
		t.Errorf("validate output = %q", out.String())
	}
}
