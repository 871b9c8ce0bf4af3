package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "daynotes.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('appThemeV9', 'dark-green')`); err != nil {
		t.Fatalf("failed to insert test data: %v", err)
	}
	return dbPath
}

func readTheme(t *testing.T, path string) string {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer db.Close()
	var v string
	if err := db.QueryRow(`SELECT value FROM kv WHERE key = 'appThemeV9'`).Scan(&v); err != nil {
		t.Fatalf("failed to read theme from %s: %v", path, err)
	}
	return v
}

func setTheme(t *testing.T, path, theme string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer db.Close()
	if _, err := db.Exec(`UPDATE kv SET value = ? WHERE key = 'appThemeV9'`, theme); err != nil {
		t.Fatalf("failed to update theme: %v", err)
	}
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(backupPath) != mgr.GetBackupDir() {
		t.Errorf("backup written to %s, want inside %s", backupPath, mgr.GetBackupDir())
	}
	if !strings.HasPrefix(filepath.Base(backupPath), "daynotes-") {
		t.Errorf("backup name %s lacks daynotes- prefix", backupPath)
	}
	if got := readTheme(t, backupPath); got != "dark-green" {
		t.Errorf("backup theme = %q, want dark-green", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing database")
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	frozen := time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local)
	mgr.now = func() time.Time { return frozen }

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		if seen[p] {
			t.Fatalf("duplicate backup path %s", p)
		}
		seen[p] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if !b.Timestamp.Equal(frozen) {
			t.Errorf("backup %s timestamp = %v, want %v", b.Path, b.Timestamp, frozen)
		}
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.keep = 3
	mgr.now = fixedClock(time.Date(2026, 10, 1, 8, 0, 0, 0, time.Local))

	var created []string
	for i := 0; i < 5; i++ {
		p, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		created = append(created, p)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups after rotation, got %d", len(backups))
	}
	// Newest first, oldest two pruned
	for i, b := range backups {
		if want := created[4-i]; b.Path != want {
			t.Errorf("backups[%d] = %s, want %s", i, b.Path, want)
		}
	}
	if _, err := os.Stat(created[0]); !os.IsNotExist(err) {
		t.Errorf("oldest backup %s was not removed", created[0])
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	mgr := NewManager(setupTestDB(t))
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for _, name := range []string{"notes.txt", "daynotes-garbage.db", "daynotes-20261016-093000-x.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("ListBackups() = %v, want none", backups)
	}
}

func TestListBackupsNoDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "daynotes.db"))
	backups, err := mgr.ListBackups()
	if err != nil || len(backups) != 0 {
		t.Errorf("ListBackups() = %v, %v; want empty", backups, err)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"daynotes-20261016-093000.db", true},
		{"daynotes-20261016-093000-2.db", true},
		{"daynotes-20261016-0930.db", false},
		{"notes-20261016-093000.db", false},
		{"daynotes-20261016-093000.sqlite", false},
	}
	for _, tt := range tests {
		if _, ok := parseName(tt.name); ok != tt.ok {
			t.Errorf("parseName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fixedClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.Local))

	saved, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	setTheme(t, dbPath, "light")

	previous, err := mgr.RestoreBackup(saved)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if got := readTheme(t, dbPath); got != "dark-green" {
		t.Errorf("restored theme = %q, want dark-green", got)
	}
	if previous == "" {
		t.Fatal("RestoreBackup did not back up the current database")
	}
	if got := readTheme(t, previous); got != "light" {
		t.Errorf("pre-restore backup theme = %q, want light", got)
	}
}

func TestRestoreBackupErrors(t *testing.T) {
	mgr := NewManager(setupTestDB(t))

	if _, err := mgr.RestoreBackup(filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error restoring a missing backup")
	}

	corrupted := filepath.Join(t.TempDir(), "corrupted.db")
	if err := os.WriteFile(corrupted, []byte("not a valid sqlite database"), 0600); err != nil {
		t.Fatalf("failed to create corrupted file: %v", err)
	}
	if _, err := mgr.RestoreBackup(corrupted); err == nil {
		t.Error("expected error restoring a corrupted backup")
	}
}
