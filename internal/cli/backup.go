package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output path (defaults to hard75-backup-<date>.zip)."`
	JSON   bool   `help:"Write the bare JSON payload without photos."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	ch, err := ctx.Tracker.Challenge()
	if err != nil {
		return err
	}

	out := c.Output
	if out == "" {
		ext := ".zip"
		if c.JSON {
			ext = ".json"
		}
		out = fmt.Sprintf("hard75-backup-%s%s", time.Now().Format("20060102"), ext)
	}

	if c.JSON {
		data, err := ctx.Codec.ExportJSON(ch)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, data, 0600); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		fmt.Printf("✓ Backup written: %s\n", out)
		return nil
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	res, err := ctx.Codec.ExportArchive(ch, f)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("✓ Backup written: %s (%d photo(s) bundled", out, res.PhotosBundled)
	if res.PhotosSkipped > 0 {
		fmt.Printf(", %d skipped", res.PhotosSkipped)
	}
	fmt.Println(")")
	return nil
}

type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"Backup archive or JSON payload to import."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	// Parse and validate before anything destructive: a structural
	// failure must abort while current data is still intact.
	var (
		imported = 0
		restore  func() error
	)

	if strings.HasSuffix(c.File, ".json") {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}
		ch, err := ctx.Codec.ImportJSON(data)
		if err != nil {
			return err
		}
		restore = func() error { return ctx.Tracker.Replace(ch) }
	} else {
		f, err := os.Open(c.File)
		if err != nil {
			return fmt.Errorf("failed to open backup: %w", err)
		}
		defer f.Close()
		info, err := f.Stat()
		if err != nil {
			return err
		}
		res, err := ctx.Codec.ImportArchive(f, info.Size(), ctx.PhotoDir())
		if err != nil {
			return err
		}
		imported = res.PhotosRestored
		restore = func() error { return ctx.Tracker.Replace(res.Challenge) }
	}

	if !c.Yes {
		ok, err := confirm(
			"Replace current challenge?",
			fmt.Sprintf("Importing %s overwrites all current progress. This cannot be undone.", filepath.Base(c.File)),
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := restore(); err != nil {
		return err
	}

	fmt.Println("✓ Challenge restored from backup")
	if imported > 0 {
		fmt.Printf("  %d photo(s) restored\n", imported)
	}
	return nil
}
