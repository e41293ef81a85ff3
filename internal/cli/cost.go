package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/gosuri/uitable"

	"tripdeck/internal/ledger"
	"tripdeck/internal/models"
)

type CostAddCmd struct {
	ItemID string  `arg:"" help:"Item to attach the cost to."`
	Item   string  `short:"i" required:"" help:"What the money was spent on."`
	Amount float64 `short:"a" required:"" help:"Amount in the trip currency."`
	Payer  string  `short:"p" help:"Who paid. Defaults to the signed-in name, else Unknown."`
}

func (c *CostAddCmd) Validate() error {
	if c.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	return nil
}

func (c *CostAddCmd) Run(ctx *Context) error {
	item, _, ok := ctx.Store.FindItem(c.ItemID)
	if !ok {
		return fmt.Errorf("no such item: %s", c.ItemID)
	}

	payer := c.Payer
	if payer == "" {
		if sess := ctx.Gate.Current(); sess != nil {
			payer = sess.Name
		}
	}

	costs := append(item.Costs, models.CostDetail{
		ID:     uuid.New().String(),
		Item:   c.Item,
		Amount: c.Amount,
		Payer:  payer,
	})
	if err := ctx.Store.SetItemCosts(c.ItemID, costs); err != nil {
		return err
	}
	fmt.Printf("Added %s to %s.\n", ledger.Format(c.Amount, ctx.Store.Currency()), item.Activity)
	return nil
}

type CostListCmd struct {
	ItemID string `arg:"" help:"Item whose costs to list."`
}

func (c *CostListCmd) Run(ctx *Context) error {
	item, _, ok := ctx.Store.FindItem(c.ItemID)
	if !ok {
		return fmt.Errorf("no such item: %s", c.ItemID)
	}
	if len(item.Costs) == 0 {
		fmt.Printf("No costs recorded for %s.\n", item.Activity)
		return nil
	}

	cur := ctx.Store.Currency()
	tbl := uitable.New()
	tbl.AddRow("ID", "ITEM", "AMOUNT", "PAYER")
	for _, cost := range item.Costs {
		payer := cost.Payer
		if payer == "" {
			payer = ledger.UnknownPayer
		}
		tbl.AddRow(cost.ID, cost.Item, ledger.Format(cost.Amount, cur), payer)
	}
	fmt.Fprintln(color.Output, tbl)
	color.New(color.Bold).Printf("Total: %s\n", ledger.Format(ledger.ItemTotal(item), cur))
	return nil
}

type CostDeleteCmd struct {
	ItemID string `arg:"" help:"Item the cost belongs to."`
	CostID string `arg:"" help:"Cost id to remove."`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *CostDeleteCmd) Run(ctx *Context) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}
	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Delete cost %s?", c.CostID))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err := ctx.Store.DeleteCostFromItem(sess.Name, c.ItemID, c.CostID); err != nil {
		return err
	}
	fmt.Println("Cost removed.")
	return nil
}
