package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/hard75/hard75/internal/backup"
	"github.com/hard75/hard75/internal/cli"
	"github.com/hard75/hard75/internal/completion"
	apperrors "github.com/hard75/hard75/internal/errors"
	"github.com/hard75/hard75/internal/logger"
	"github.com/hard75/hard75/internal/models"
	"github.com/hard75/hard75/internal/storage"
	"github.com/hard75/hard75/internal/tracker"
)

const version = "v0.1.0"

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path." type:"path" default:"~/.config/hard75/hard75.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Start a new 75-day challenge."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive day selector." default:"1"`
	Status   cli.StatusCmd   `cmd:"" help:"Show streak, unlocks and today's progress."`
	Day      cli.DayCmd      `cmd:"" help:"Show (and optionally navigate to) a day."`
	Toggle   cli.ToggleCmd   `cmd:"" help:"Toggle a checklist task."`
	Mood     cli.MoodCmd     `cmd:"" help:"Set or clear the day's mood."`
	Weight   cli.WeightCmd   `cmd:"" help:"Set or clear the day's weight entry."`
	Photo    cli.PhotoCmd    `cmd:"" help:"Record or clear the day's progress photo."`
	Complete cli.CompleteCmd `cmd:"" help:"Mark the day's attempt complete."`
	Retry    cli.RetryCmd    `cmd:"" help:"Start a fresh attempt for a day."`
	Tasks    struct {
		List   cli.TasksListCmd   `cmd:"" help:"Show the active task template."`
		Add    cli.TasksAddCmd    `cmd:"" help:"Add a task to the template."`
		Rename cli.TasksRenameCmd `cmd:"" help:"Rename a template task."`
		Remove cli.TasksRemoveCmd `cmd:"" help:"Remove a task from the template."`
	} `cmd:"" help:"Edit the task template (applies to incomplete and future days)."`
	Export   cli.ExportCmd   `cmd:"" help:"Export the challenge to a backup archive."`
	Import   cli.ImportCmd   `cmd:"" help:"Restore the challenge from a backup."`
	Validate cli.ValidateCmd `cmd:"" help:"Validate a backup payload without importing."`
	Unit     cli.UnitCmd     `cmd:"" help:"Show or set the weight unit."`
	Reset    cli.ResetCmd    `cmd:"" help:"Destroy the challenge and start over."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run diagnostics."`
	Debugs   cli.DebugCmd    `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("hard75"),
		kong.Description("75-day challenge tracker: daily tasks, mood, weight and a progress photo"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	configDir := filepath.Dir(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// sqlite for .db paths, file-per-key storage otherwise
	var blob storage.Blob
	if strings.HasSuffix(CLI.Config, ".db") {
		blob = storage.NewSQLiteStore(CLI.Config)
	} else {
		blob = storage.NewFileStore(configDir)
	}

	store := storage.NewChallengeStore(blob)
	tr := tracker.New(store)
	tr.Subscribe(func(ch models.Challenge) {
		logger.Debug("Challenge updated",
			"completed", completion.CompletedDaysCount(ch.Days),
			"streak", completion.StreakCount(ch.Days))
	})

	appCtx := &cli.Context{
		Tracker:   tr,
		Store:     store,
		Codec:     backup.NewCodec(version),
		ConfigDir: configDir,
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close store: %v\n", closeErr)
	}
	apperrors.Fatal(err)
}
