package cli

import (
	"fmt"
)

type CompleteCmd struct {
	Day string `short:"d" help:"Day to complete (1-75, 'today' or 'current')." default:"current"`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	unmet, ok, err := ctx.Tracker.CompleteAttempt(index)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("day %d is not ready: missing %s", index, formatCategories(unmet))
	}

	fmt.Printf("🎉 Day %d complete! Keep going.\n", index)
	return nil
}

type RetryCmd struct {
	Day string `short:"d" help:"Day to retry (1-75, 'today' or 'current')." default:"current"`
}

func (c *RetryCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	ch, err := ctx.Tracker.StartNewAttempt(index)
	if err != nil {
		return err
	}

	day, err := ch.Day(index)
	if err != nil {
		return err
	}
	fmt.Printf("Day %d: started attempt %d\n", index, len(day.Attempts))
	if day.Completed() {
		fmt.Println("(a prior attempt already completed this day; it stays completed)")
	}
	return nil
}
