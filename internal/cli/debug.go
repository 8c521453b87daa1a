package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	Path    *DebugPathCmd    `cmd:"" help:"Show storage paths."`
	DumpDay *DebugDumpDayCmd `cmd:"" help:"Dump a day's record as JSON."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"config_dir": ctx.ConfigDir,
		"photo_dir":  ctx.PhotoDir(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpDayCmd struct {
	Day string `arg:"" help:"Day to dump (1-75, 'today' or 'current')."`
}

func (cmd *DebugDumpDayCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, cmd.Day)
	if err != nil {
		return err
	}

	ch, err := ctx.Tracker.Challenge()
	if err != nil {
		return err
	}
	day, err := ch.Day(index)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(day, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal day: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
