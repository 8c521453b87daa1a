package cli

import (
	"fmt"
	"time"

	"github.com/hard75/hard75/internal/constants"
)

type InitCmd struct {
	Start string `short:"s" help:"Start date (YYYY-MM-DD, defaults to today)."`
}

func (c *InitCmd) Run(ctx *Context) error {
	exists, err := ctx.Store.IsInitialized()
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("a challenge already exists; use 'hard75 reset' to start over")
	}

	start := time.Now()
	if c.Start != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, c.Start, time.Local)
		if err != nil {
			return fmt.Errorf("invalid start date, use YYYY-MM-DD: %w", err)
		}
		start = parsed
	}

	ch, err := ctx.Tracker.Initialize(start)
	if err != nil {
		return err
	}

	fmt.Printf("Challenge initialized: %d days starting %s\n", len(ch.Days), ch.Days[0].Date)
	fmt.Println("Good luck. Day 1 is unlocked now.")
	return nil
}
