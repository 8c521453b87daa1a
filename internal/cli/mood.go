package cli

import (
	"fmt"

	"github.com/hard75/hard75/internal/models"
)

type MoodCmd struct {
	Mood  string `arg:"" optional:"" help:"Mood (awesome|good|okay|bad|awful)."`
	Day   string `short:"d" help:"Day to edit (1-75, 'today' or 'current')." default:"current"`
	Clear bool   `short:"c" help:"Clear the mood instead of setting it."`
}

func (c *MoodCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	if c.Clear {
		if _, err := ctx.Tracker.ClearMood(index); err != nil {
			return err
		}
		fmt.Printf("Day %d: mood cleared\n", index)
		return nil
	}

	if c.Mood == "" {
		return fmt.Errorf("mood required (awesome|good|okay|bad|awful), or pass --clear")
	}
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}

	if _, err := ctx.Tracker.SetMood(index, mood); err != nil {
		return err
	}
	fmt.Printf("Day %d: mood set to %s\n", index, mood)
	return nil
}
