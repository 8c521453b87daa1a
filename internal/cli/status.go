package cli

import (
	"fmt"
	"time"

	"github.com/hard75/hard75/internal/completion"
	"github.com/hard75/hard75/internal/unlock"
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	ch, err := ctx.Tracker.Challenge()
	if err != nil {
		return err
	}

	now := time.Now()
	maxDay := unlock.MaxUnlockedDay(ch.StartDate, now)
	streak := completion.StreakCount(ch.Days)
	done := completion.CompletedDaysCount(ch.Days)

	fmt.Printf("Challenge started %s\n", ch.StartDate.Format("2006-01-02"))
	fmt.Printf("Day %d of %d unlocked by time\n", maxDay, len(ch.Days))
	fmt.Printf("Current day: %d\n", ch.CurrentDayIndex)
	fmt.Printf("Completed days: %d\n", done)
	fmt.Printf("Streak: %d day(s) from day 1\n", streak)

	if maxDay < len(ch.Days) {
		until := unlock.UntilNextUnlock(now).Round(time.Minute)
		fmt.Printf("Next day unlocks in %s\n", until)
	}

	cur, err := ch.Day(ch.CurrentDayIndex)
	if err != nil {
		return err
	}
	attempt, err := cur.CurrentAttempt()
	if err != nil {
		return err
	}

	unit, err := ctx.Store.WeightUnit()
	if err != nil {
		return err
	}

	fmt.Printf("\nDay %d (%s), attempt %d:\n", cur.Index, cur.Date, attempt.Number)
	printAttempt(attempt, unit)
	return nil
}
