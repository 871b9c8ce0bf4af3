package e2e

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// findBinary locates the daynotes binary: DAYNOTES_BIN_DIR if set, else
// ../../bin relative to this directory.
func findBinary(t *testing.T) string {
	t.Helper()
	binDir := os.Getenv("DAYNOTES_BIN_DIR")
	if binDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get cwd: %v", err)
		}
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "daynotes")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Build it first with: go build -o bin/daynotes ./cmd/daynotes", cliPath)
	}
	return cliPath
}

// isolatedEnv points HOME at tempDir so no real config is read.
func isolatedEnv(tempDir string) []string {
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "XDG_CONFIG_HOME=") {
			env = append(env, e)
		}
	}
	env = append(env, fmt.Sprintf("HOME=%s", tempDir))
	env = append(env, fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir))
	return env
}

func TestEndToEndWorkflow(t *testing.T) {
	cliPath := findBinary(t)

	tests := []struct {
		name  string
		store string
	}{
		{"sqlite", "daynotes.db"},
		{"json", "daynotes.json"},
		{"diskv", "daynotes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			env := isolatedEnv(tempDir)
			store := filepath.Join(tempDir, "data", tt.store)
			config := filepath.Join(tempDir, "config.yaml")
			run := func(args ...string) string {
				t.Helper()
				full := append([]string{"--config", config, "--store", store}, args...)
				return runCmd(t, cliPath, env, full...)
			}

			t.Log("Initializing store...")
			run("init")
			if _, err := os.Stat(config); err != nil {
				t.Errorf("init should write the config file: %v", err)
			}

			run("note", "add", "water the plants")
			if out := run("note", "list"); !strings.Contains(out, "water the plants") {
				t.Errorf("note list output missing the note:\n%s", out)
			}

			if out := run("remind", "add", "renew passport", "--on", "2099-01-01"); !strings.Contains(out, "Reminder set successfully!") {
				t.Errorf("remind add output:\n%s", out)
			}
			if out := run("remind", "list", "2099-01-01"); !strings.Contains(out, "renew passport") {
				t.Errorf("remind list output:\n%s", out)
			}
			if out := run("day", "2099-01-01"); !strings.Contains(out, "Thursday, January 1, 2099") {
				t.Errorf("day output:\n%s", out)
			}
			if out := run("cal", "2099-01"); !strings.Contains(out, "January 2099") {
				t.Errorf("cal output:\n%s", out)
			}

			run("theme", "light")
			if out := run("debug", "dump", "appThemeV9"); strings.TrimSpace(out) != "light" {
				t.Errorf("stored theme = %q, want light", out)
			}

			if tt.name == "sqlite" {
				run("backup", "create")
				if out := run("backup", "list"); !strings.Contains(out, "1 total") {
					t.Errorf("backup list output:\n%s", out)
				}
			}

			if out := run("doctor"); !strings.Contains(out, "All diagnostics passed!") {
				t.Errorf("doctor output:\n%s", out)
			}
		})
	}
}

func TestCommandsRequireInit(t *testing.T) {
	cliPath := findBinary(t)
	tempDir := t.TempDir()

	cmd := exec.Command(cliPath, "--config", filepath.Join(tempDir, "config.yaml"),
		"--store", filepath.Join(tempDir, "daynotes.db"), "day")
	cmd.Env = isolatedEnv(tempDir)
	out, err := cmd.CombinedOutput()
	if err == nil {
		t.Fatalf("expected day to fail before init, output:\n%s", out)
	}
	if !strings.Contains(string(out), "run 'daynotes init' first") {
		t.Errorf("unexpected error output:\n%s", out)
	}
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}
