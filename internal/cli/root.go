package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tripdeck/internal/auth"
	"tripdeck/internal/ledger"
	"tripdeck/internal/models"
	"tripdeck/internal/reorder"
	"tripdeck/internal/store"
)

type Context struct {
	Store  *store.Store
	Gate   *auth.Gate
	Engine *reorder.Engine
	Data   string
}

// requireSession resolves the active editor session or fails with a hint.
func requireSession(ctx *Context) (*auth.Session, error) {
	sess := ctx.Gate.Current()
	if sess == nil {
		return nil, fmt.Errorf("editing requires login, run 'tripdeck login' first")
	}
	return sess, nil
}

// confirm presents a blocking yes/no prompt for destructive actions.
func confirm(title string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func timeRange(item models.ItineraryItem) string {
	if item.EndTime == "" {
		return item.StartTime
	}
	return fmt.Sprintf("%s - %s", item.StartTime, item.EndTime)
}

// printDay renders one day's itinerary in display order.
func printDay(ctx *Context, day models.DaySchedule) {
	header := color.New(color.Bold, color.FgCyan)
	header.Printf("%s  %s\n", day.DayLabel, day.DateLabel)

	if len(day.Items) == 0 {
		fmt.Println("  (no items)")
		return
	}

	currency := ctx.Store.Currency()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("#", "TIME", "", "ACTIVITY", "LOCATION", "COST", "EDITED BY")
	for i, item := range day.Items {
		cost := ""
		if total := ledger.ItemTotal(item); total > 0 {
			cost = ledger.Format(total, currency)
		}
		tbl.AddRow(
			i+1,
			timeRange(item),
			item.EffectiveCategory().Glyph(),
			item.Activity,
			item.Location,
			cost,
			item.LastEditedBy,
		)
	}
	fmt.Fprintln(color.Output, tbl)
}
