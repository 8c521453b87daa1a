package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type PhotoCmd struct {
	File  string `arg:"" optional:"" type:"existingfile" help:"Image file to record as the progress photo."`
	Day   string `short:"d" help:"Day to edit (1-75, 'today' or 'current')." default:"current"`
	Clear bool   `short:"c" help:"Clear the photo instead of setting it."`
}

func (c *PhotoCmd) Run(ctx *Context) error {
	index, err := resolveDayIndex(ctx, c.Day)
	if err != nil {
		return err
	}

	if c.Clear {
		if _, err := ctx.Tracker.ClearPhoto(index); err != nil {
			return err
		}
		fmt.Printf("Day %d: photo cleared\n", index)
		return nil
	}

	if c.File == "" {
		return fmt.Errorf("photo file required, or pass --clear")
	}

	ch, err := ctx.Tracker.Challenge()
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

	// The copy stands in for the capture collaborator: it must resolve
	// fully before the URI is written into the attempt.
	dest := filepath.Join(ctx.PhotoDir(), fmt.Sprintf("day-%d-attempt-%d.jpg", index, attempt.Number))
	if err := copyPhoto(c.File, dest); err != nil {
		return fmt.Errorf("failed to store photo: %w", err)
	}

	if _, err := ctx.Tracker.SetPhoto(index, dest); err != nil {
		return err
	}
	fmt.Printf("Day %d: photo recorded (%s)\n", index, dest)
	return nil
}

func copyPhoto(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0700); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
