package cli

import (
	"fmt"
)

type DayCmd struct {
	Day string `arg:"" optional:"" help:"Day to show (1-75, 'today' or 'current')." default:"current"`
	Go  bool   `short:"g" help:"Also navigate to the day (subject to unlock rules)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	ch, err := ctx.Tracker.Challenge()
	if err != nil {
		return err
	}

	if c.Go {
		updated, ok, err := ctx.Tracker.Navigate(index)
		if err != nil {
			return err
		}
		if !ok {
			// gate failed; stay put, show the requested day read-only
			fmt.Printf("Day %d is locked.\n\n", index)
		} else {
			ch = updated
		}
	}

	day, err := ch.Day(index)
	if err != nil {
		return err
	}

	unit, err := ctx.Store.WeightUnit()
	if err != nil {
		return err
	}

	status := "incomplete"
	if day.Completed() {
		status = "completed"
	}
	fmt.Printf("Day %d (%s) — %s, %d attempt(s)\n", day.Index, day.Date, status, len(day.Attempts))

	attempt, err := day.CurrentAttempt()
	if err != nil {
		return err
	}
	fmt.Printf("\nAttempt %d:\n", attempt.Number)
	printAttempt(attempt, unit)
	return nil
}
