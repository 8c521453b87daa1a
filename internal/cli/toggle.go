package cli

import (
	"fmt"
)

type ToggleCmd struct {
	TaskID string `arg:"" help:"Task ID to toggle (see 'hard75 tasks list')."`
	Day    string `short:"d" help:"Day to edit (1-75, 'today' or 'current')." default:"current"`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	ch, err := ctx.Tracker.ToggleTask(index, c.TaskID)
	if err != nil {
		return err
	}

	day, err := ch.Day(index)
	if err != nil {
		return err
	}
	attempt, err := day.CurrentAttempt()
	if err != nil {
		return err
	}
	task, _ := attempt.TaskByID(c.TaskID)

	state := "pending"
	if task.Completed {
		state = "done"
	}
	fmt.Printf("Day %d: %s is now %s\n", index, task.Title, state)
	return nil
}
