package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/ritual/internal/export"
)

type ExportCmd struct {
	Out string `help:"Write to a file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	var w io.Writer = os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := export.Write(w, ctx.Snapshot); err != nil {
		return err
	}
	if c.Out != "" {
		fmt.Printf("Exported %d habit(s) to %s\n", len(ctx.Snapshot.Habits), c.Out)
	}
	return nil
}

type ImportCmd struct {
	In     string `help:"Read from a file instead of stdin." type:"path"`
	Update bool   `help:"Update existing habits with matching ids instead of adding copies."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	var r io.Reader = os.Stdin
	if c.In != "" {
		f, err := os.Open(c.In)
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer f.Close()
		r = f
	}
	habits, err := export.Read(r)
	if err != nil {
		return err
	}

	added, updated := 0, 0
	for _, h := range habits {
		existing := ctx.Snapshot.Find(h.ID)
		switch {
		case existing != nil && c.Update:
			h.LastModified = ctx.Habits.Now().UTC()
			*existing = h
			updated++
		case existing != nil:
			// ID taken: import as a new habit under the next free id
			h.ID = ctx.Snapshot.NextID()
			fallthrough
		default:
			h.LastModified = ctx.Habits.Now().UTC()
			ctx.Snapshot.Habits = append(ctx.Snapshot.Habits, h)
			added++
		}
	}
	if err := ctx.Persist(); err != nil {
		return err
	}
	fmt.Printf("Imported %d habit(s): %d added, %d updated.\n", len(habits), added, updated)
	return nil
}
