package cli

import (
	"fmt"
	"time"

	"github.com/hard75/hard75/internal/constants"
)

type ResetCmd struct {
	Start string `short:"s" help:"Start date for the fresh challenge (YYYY-MM-DD, defaults to today)."`
	Yes   bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	start := time.Now()
	if c.Start != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, c.Start, time.Local)
		if err != nil {
			return fmt.Errorf("invalid start date, use YYYY-MM-DD: %w", err)
		}
		start = parsed
	}

	if !c.Yes {
		ok, err := confirm(
			"Reset the challenge?",
			"All 75 days of progress will be destroyed and a fresh challenge created. This cannot be undone.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ch, err := ctx.Tracker.Reset(start)
	if err != nil {
		return err
	}

	fmt.Printf("Challenge reset: day 1 is %s\n", ch.Days[0].Date)
	return nil
}

type UnitCmd struct {
	Unit string `arg:"" optional:"" help:"Weight unit to use (lbs|kg). Omit to show the current unit."`
}

func (c *UnitCmd) Run(ctx *Context) error {
	if c.Unit == "" {
		unit, err := ctx.Store.WeightUnit()
		if err != nil {
			return err
		}
		fmt.Printf("Weight unit: %s\n", unit)
		return nil
	}

	if err := ctx.Store.SetWeightUnit(c.Unit); err != nil {
		return err
	}
	fmt.Printf("Weight unit set to %s\n", c.Unit)
	return nil
}
