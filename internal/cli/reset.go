package cli

import "fmt"

type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if _, err := requireSession(ctx); err != nil {
		return err
	}
	if !c.Yes {
		ok, err := confirm("Reset the whole itinerary to the built-in plan? Edits and costs will be lost.")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err := ctx.Store.Reset(); err != nil {
		return err
	}
	fmt.Println("Itinerary reset.")
	return nil
}
