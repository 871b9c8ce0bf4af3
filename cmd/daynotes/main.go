package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/daynotes/internal/cli"
	"github.com/julianstephens/daynotes/internal/config"
	"github.com/julianstephens/daynotes/internal/constants"
	"github.com/julianstephens/daynotes/internal/errors"
	"github.com/julianstephens/daynotes/internal/logger"
	"github.com/julianstephens/daynotes/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"${config_file}"`
	Store    string `help:"Store path. Overrides the config file. The backend is picked from the extension unless --backend is set."`
	Backend  string `help:"Storage backend: auto, sqlite, diskv or json."`
	Timezone string `help:"IANA timezone used for the application day. Defaults to local time."`
	Debug    bool   `help:"Log debug output to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize daynotes storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day      cli.DayCmd      `cmd:"" help:"Show the notes and reminders of a day."`
	Cal      cli.CalCmd      `cmd:"" help:"Print a month calendar."`
	Note     cli.NoteCmd     `cmd:"" help:"Manage today's notes."`
	Remind   cli.RemindCmd   `cmd:"" help:"Manage reminders."`
	Theme    cli.ThemeCmd    `cmd:"" help:"Show or set the theme."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage store backups (sqlite only)."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Validate cli.ValidateCmd `cmd:"" help:"Check stored notes and reminders for invalid entries."`
	Inspect  cli.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily notes and reminders for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_file": constants.DefaultConfigFile,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	cfg = cfg.Merge(config.Flags{
		Store:    CLI.Store,
		Backend:  CLI.Backend,
		Timezone: CLI.Timezone,
		Debug:    CLI.Debug,
	})
	if err := cfg.Validate(); err != nil {
		errors.Fatal(err)
	}

	dir, err := cfg.Dir()
	if err != nil {
		errors.Fatal(err)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: dir}); err != nil {
		errors.Fatalf("failed to initialize logger: %w", err)
	}

	path, err := cfg.StorePath()
	if err != nil {
		errors.Fatal(err)
	}
	backend, err := storage.Open(path, cfg.Backend)
	if err != nil {
		errors.Fatal(err)
	}
	store := storage.New(backend)
	store.SetDefaultTheme(cfg.DefaultTheme)

	configPath, err := config.Expand(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	appCtx := &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: configPath,
		Now:        cli.Clock(cfg.Timezone),
	}

	// Load the store before running the command (Init command will handle its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	logger.Debug("running command", "command", ctx.Command(), "store", path)
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
