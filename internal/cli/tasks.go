package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hard75/hard75/internal/models"
)

type TasksListCmd struct{}

func (c *TasksListCmd) Run(ctx *Context) error {
	template, err := ctx.Tracker.Template()
	if err != nil {
		return err
	}

	fmt.Println("Active task template:")
	for _, t := range template {
		fmt.Printf("  %-12s %s\n", t.ID, t.Title)
	}
	return nil
}

type TasksAddCmd struct {
	Title string `arg:"" help:"Title of the new checklist task."`
	ID    string `help:"Explicit task ID (defaults to a generated one)."`
}

func (c *TasksAddCmd) Run(ctx *Context) error {
	template, err := ctx.Tracker.Template()
	if err != nil {
		return err
	}

	id := c.ID
	if id == "" {
		id = uuid.New().String()
	}
	for _, t := range template {
		if t.ID == id {
			return fmt.Errorf("task ID already in use: %s", id)
		}
	}

	template = append(template, models.NewTask(id, c.Title))
	changed, err := ctx.Tracker.ReviseTasks(template)
	if err != nil {
		return err
	}
	fmt.Printf("Added task %q (ID: %s); %d day(s) updated\n", c.Title, id, changed)
	return nil
}

type TasksRenameCmd struct {
	ID    string `arg:"" help:"ID of the task to rename."`
	Title string `arg:"" help:"New title."`
}

func (c *TasksRenameCmd) Run(ctx *Context) error {
	template, err := ctx.Tracker.Template()
	if err != nil {
		return err
	}

	found := false
	for i, t := range template {
		if t.ID == c.ID {
			template[i].Title = c.Title
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no such task: %s", c.ID)
	}

	changed, err := ctx.Tracker.ReviseTasks(template)
	if err != nil {
		return err
	}
	fmt.Printf("Renamed task %s to %q; %d day(s) updated\n", c.ID, c.Title, changed)
	fmt.Println("Tasks already checked off today keep their completion.")
	return nil
}

type TasksRemoveCmd struct {
	ID string `arg:"" help:"ID of the task to remove."`
}

func (c *TasksRemoveCmd) Run(ctx *Context) error {
	template, err := ctx.Tracker.Template()
	if err != nil {
		return err
	}

	next := make([]models.Task, 0, len(template))
	for _, t := range template {
		if t.ID != c.ID {
			next = append(next, t)
		}
	}
	if len(next) == len(template) {
		return fmt.Errorf("no such task: %s", c.ID)
	}

	changed, err := ctx.Tracker.ReviseTasks(next)
	if err != nil {
		return err
	}
	fmt.Printf("Removed task %s; %d day(s) updated\n", c.ID, changed)
	return nil
}
