package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mjordahl/habitgrid/internal/cli"
	"github.com/mjordahl/habitgrid/internal/cli/backups"
	"github.com/mjordahl/habitgrid/internal/cli/display"
	"github.com/mjordahl/habitgrid/internal/cli/documents"
	"github.com/mjordahl/habitgrid/internal/cli/habits"
	"github.com/mjordahl/habitgrid/internal/cli/system"
	"github.com/mjordahl/habitgrid/internal/logger"
	"github.com/mjordahl/habitgrid/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. Use a .json extension for the plain-file backend, or ':memory:' for an ephemeral session." type:"path" default:"~/.config/habitgrid/habitgrid.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd      `cmd:"" help:"Initialize habitgrid storage."`
	Tui     system.TuiCmd       `cmd:"" help:"Launch the interactive grid view." default:"1"`
	Doctor  system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Habit   habits.HabitCmd     `cmd:"" help:"Manage habits."`
	Day     habits.DayCmd       `cmd:"" help:"Record daily completions."`
	Log     habits.HabitLogCmd  `cmd:"" help:"Show habit history."`
	Export  documents.ExportCmd `cmd:"" help:"Export the document as JSON."`
	Import  documents.ImportCmd `cmd:"" help:"Import a document JSON file, replacing current state."`
	Display display.DisplayCmd  `cmd:"" help:"Manage display preferences."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func newStore(path string) storage.Provider {
	switch {
	case path == ":memory:":
		return storage.NewMemoryStore()
	case strings.HasSuffix(path, ".json"):
		return storage.NewJSONStore(path)
	default:
		return storage.NewSQLiteStore(path)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run owns the store lifecycle; exiting from main instead keeps the deferred
// Close running on the error path too.
func run() error {
	ctx := kong.Parse(&CLI,
		kong.Name("habitgrid"),
		kong.Description("Personal habit tracker with a calendar completion grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.3.0"},
	)

	if CLI.Config != ":memory:" {
		if err := logger.Init(logger.Config{
			Debug:     CLI.Debug,
			ConfigDir: filepath.Dir(CLI.Config),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
		}
	}

	store := newStore(CLI.Config)
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}
	return ctx.Run(appCtx)
}
