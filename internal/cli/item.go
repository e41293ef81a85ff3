package cli

import (
	"fmt"

	"github.com/google/uuid"

	"tripdeck/internal/models"
	"tripdeck/internal/timeutil"
)

type ItemAddCmd struct {
	Day      string `arg:"" help:"Day id the item belongs to."`
	Activity string `short:"a" help:"What you are doing." required:""`
	Start    string `short:"s" help:"Start time (HH:MM)." required:""`
	End      string `short:"e" help:"End time (HH:MM)."`
	Location string `short:"l" help:"Searchable place name."`
	Category string `short:"c" help:"Category (transport|food|activity|shopping|concert)." default:"activity"`
}

func (c *ItemAddCmd) Validate() error {
	if !timeutil.IsHHMM(c.Start) {
		return fmt.Errorf("invalid start time %q, use HH:MM", c.Start)
	}
	if c.End != "" && !timeutil.IsHHMM(c.End) {
		return fmt.Errorf("invalid end time %q, use HH:MM", c.End)
	}
	if !models.Category(c.Category).Valid() {
		return fmt.Errorf("invalid category: %s", c.Category)
	}
	return nil
}

func (c *ItemAddCmd) Run(ctx *Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	if _, ok := ctx.Store.Day(c.Day); !ok {
		return fmt.Errorf("no such day: %s", c.Day)
	}

	item := models.ItineraryItem{
		ID:           uuid.New().String(),
		StartTime:    c.Start,
		EndTime:      c.End,
		Activity:     c.Activity,
		Location:     c.Location,
		Category:     models.Category(c.Category),
		LastEditedBy: sess.Name,
	}

	if err := ctx.Store.UpsertItem(c.Day, item); err != nil {
		return err
	}

	fmt.Printf("Added %q to %s (ID: %s)\n", c.Activity, c.Day, item.ID)
	return nil
}

type ItemEditCmd struct {
	ID       string `arg:"" help:"Item id."`
	Activity string `short:"a" help:"New activity text."`
	Start    string `short:"s" help:"New start time (HH:MM)."`
	End      string `short:"e" help:"New end time (HH:MM)."`
	Location string `short:"l" help:"New location."`
	Category string `short:"c" help:"New category."`
}

func (c *ItemEditCmd) Validate() error {
	if c.Start != "" && !timeutil.IsHHMM(c.Start) {
		return fmt.Errorf("invalid start time %q, use HH:MM", c.Start)
	}
	if c.End != "" && !timeutil.IsHHMM(c.End) {
		return fmt.Errorf("invalid end time %q, use HH:MM", c.End)
	}
	if c.Category != "" && !models.Category(c.Category).Valid() {
		return fmt.Errorf("invalid category: %s", c.Category)
	}
	return nil
}

func (c *ItemEditCmd) Run(ctx *Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	item, dayID, ok := ctx.Store.FindItem(c.ID)
	if !ok {
		return fmt.Errorf("no such item: %s", c.ID)
	}

	if c.Activity != "" {
		item.Activity = c.Activity
	}
	if c.Start != "" {
		item.StartTime = c.Start
	}
	if c.End != "" {
		item.EndTime = c.End
	}
	if c.Location != "" {
		item.Location = c.Location
	}
	if c.Category != "" {
		item.Category = models.Category(c.Category)
	}
	item.LastEditedBy = sess.Name

	if err := ctx.Store.UpsertItem(dayID, item); err != nil {
		return err
	}

	fmt.Printf("Updated %q\n", item.Activity)
	return nil
}

type ItemDeleteCmd struct {
	ID  string `arg:"" help:"Item id."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ItemDeleteCmd) Run(ctx *Context) error {
	if _, err := requireSession(ctx); err != nil {
		return err
	}

	item, dayID, ok := ctx.Store.FindItem(c.ID)
	if !ok {
		return fmt.Errorf("no such item: %s", c.ID)
	}

	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete %q from %s?", item.Activity, dayID))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteItem(dayID, c.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted %q\n", item.Activity)
	return nil
}
