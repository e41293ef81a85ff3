package cli

import (
	"fmt"

	"tripdeck/internal/maplink"
)

type MapCmd struct {
	ItemID string `arg:"" help:"Item whose location to look up."`
}

func (c *MapCmd) Run(ctx *Context) error {
	item, _, ok := ctx.Store.FindItem(c.ItemID)
	if !ok {
		return fmt.Errorf("no such item: %s", c.ItemID)
	}
	u := maplink.SearchURL(item.Location)
	if u == "" {
		return fmt.Errorf("%s has no location set", item.Activity)
	}
	fmt.Println(u)
	return nil
}
