package cli

import (
	"fmt"
	"strconv"

	apperrors "github.com/hard75/hard75/internal/errors"
)

type WeightCmd struct {
	Weight string `arg:"" optional:"" help:"Weight entry (must be greater than 0)."`
	Day    string `short:"d" help:"Day to edit (1-75, 'today' or 'current')." default:"current"`
	Clear  bool   `short:"c" help:"Clear the weight instead of setting it."`
}

func (c *WeightCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	if c.Clear {
		if _, err := ctx.Tracker.ClearWeight(index); err != nil {
			return err
		}
		fmt.Printf("Day %d: weight cleared\n", index)
		return nil
	}

	if c.Weight == "" {
		return fmt.Errorf("weight required, or pass --clear")
	}
	weight, err := strconv.ParseFloat(c.Weight, 64)
	if err != nil {
		return apperrors.NewValidation("malformed weight: %q", c.Weight)
	}

	if _, err := ctx.Tracker.SetWeight(index, weight); err != nil {
		return err
	}

	unit, err := ctx.Store.WeightUnit()
	if err != nil {
		return err
	}
	fmt.Printf("Day %d: weight set to %.1f %s\n", index, weight, unit)
	return nil
}
