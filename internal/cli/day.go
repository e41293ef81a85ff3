package cli

import "fmt"

type DayCmd struct {
	Day string `arg:"" optional:"" help:"Day id (day1..day4). Omit to show the whole trip."`
}

func (c *DayCmd) Run(ctx *Context) error {
	if c.Day != "" {
		day, ok := ctx.Store.Day(c.Day)
		if !ok {
			return fmt.Errorf("no such day: %s", c.Day)
		}
		printDay(ctx, day)
		return nil
	}

	for i, day := range ctx.Store.Days() {
		if i > 0 {
			fmt.Println()
		}
		printDay(ctx, day)
	}
	return nil
}
