package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"tripdeck/internal/reorder"
	"tripdeck/internal/timeutil"
)

type ItemMoveCmd struct {
	ID string `arg:"" help:"Item id to move."`
	To int    `arg:"" help:"Target position within the day (1-based)."`
}

func (c *ItemMoveCmd) Run(ctx *Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}

	_, dayID, ok := ctx.Store.FindItem(c.ID)
	if !ok {
		return fmt.Errorf("no such item: %s", c.ID)
	}

	pending, err := ctx.Engine.MoveItem(dayID, c.ID, c.To-1)
	if err != nil {
		return err
	}
	if pending == nil {
		fmt.Println("Moved.")
		printDayByID(ctx, dayID)
		return nil
	}

	// The reordered list is already committed; the time change waits for the
	// user. Show the new order first, then prompt.
	printDayByID(ctx, dayID)
	fmt.Println()

	ctx.Engine.Await()
	confirmed, accepted, err := promptTimeAdjustment(pending)
	if err != nil {
		return err
	}
	if !accepted {
		if err := ctx.Engine.Cancel(); err != nil {
			return err
		}
		fmt.Println("Move cancelled, schedule restored.")
		printDayByID(ctx, dayID)
		return nil
	}

	item, _, ok := ctx.Store.FindItem(c.ID)
	if !ok {
		return ctx.Engine.Cancel()
	}
	item.StartTime = confirmed.start
	item.EndTime = confirmed.end
	item.LastEditedBy = sess.Name
	if err := ctx.Engine.Commit(item); err != nil {
		return err
	}

	fmt.Println("Move confirmed.")
	printDayByID(ctx, dayID)
	return nil
}

type confirmedTimes struct {
	start string
	end   string
}

// promptTimeAdjustment presents the suggested window as an editable form.
// Declining rolls the whole move back.
func promptTimeAdjustment(pending *reorder.Pending) (confirmedTimes, bool, error) {
	times := confirmedTimes{
		start: pending.Proposal.NewStart,
		end:   pending.Proposal.NewEnd,
	}
	keep := true

	validateTime := func(s string) error {
		if !timeutil.IsHHMM(s) {
			return fmt.Errorf("use HH:MM")
		}
		return nil
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().
			Title("Time conflict").
			Description("The moved item's times collide with its new neighbors. Adjust and confirm, or decline to undo the move."),
		huh.NewInput().
			Title("Start time").
			Validate(validateTime).
			Value(&times.start),
		huh.NewInput().
			Title("End time").
			Validate(validateTime).
			Value(&times.end),
		huh.NewConfirm().
			Title("Apply these times?").
			Affirmative("Save").
			Negative("Undo move").
			Value(&keep),
	))
	if err := form.Run(); err != nil {
		// Aborting the form counts as declining.
		if err == huh.ErrUserAborted {
			return times, false, nil
		}
		return times, false, err
	}
	return times, keep, nil
}

func printDayByID(ctx *Context, dayID string) {
	if day, ok := ctx.Store.Day(dayID); ok {
		printDay(ctx, day)
	}
}
