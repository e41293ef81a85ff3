package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tripdeck/internal/ledger"
)

type ExpensesCmd struct {
	ByPayer bool `help:"Group totals by who paid instead of listing every cost."`
}

func (c *ExpensesCmd) Run(ctx *Context) error {
	days := ctx.Store.Days()
	cur := ctx.Store.Currency()

	if c.ByPayer {
		totals := ledger.ByPayer(days)
		if len(totals) == 0 {
			fmt.Println("No costs recorded yet.")
			return nil
		}
		tbl := uitable.New()
		tbl.AddRow("PAYER", "TOTAL")
		for _, pt := range totals {
			tbl.AddRow(pt.Payer, ledger.Format(pt.Amount, cur))
		}
		fmt.Fprintln(color.Output, tbl)
		color.New(color.Bold).Printf("Trip total: %s\n", ledger.Format(ledger.Total(days), cur))
		return nil
	}

	entries := ledger.Flatten(days)
	if len(entries) == 0 {
		fmt.Println("No costs recorded yet.")
		return nil
	}
	tbl := uitable.New()
	tbl.AddRow("DAY", "ACTIVITY", "ITEM", "AMOUNT", "PAYER")
	for _, e := range entries {
		payer := e.Payer
		if payer == "" {
			payer = ledger.UnknownPayer
		}
		tbl.AddRow(e.DayLabel, e.Activity, e.Item, ledger.Format(e.Amount, cur), payer)
	}
	fmt.Fprintln(color.Output, tbl)
	color.New(color.Bold).Printf("Trip total: %s\n", ledger.Format(ledger.Total(days), cur))
	return nil
}
