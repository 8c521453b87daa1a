package cli

import (
	"fmt"
	"os"

	"github.com/hard75/hard75/internal/validation"
)

type ValidateCmd struct {
	File string `arg:"" type:"existingfile" help:"Backup JSON payload to validate without importing."`
}

func (c *ValidateCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	v := validation.New()
	_, result, err := v.ParsePayload(data)
	if err != nil {
		return err
	}

	fmt.Print(result.FormatReport())
	if !result.OK() {
		return fmt.Errorf("%d problem(s) found", len(result.Problems))
	}
	return nil
}
