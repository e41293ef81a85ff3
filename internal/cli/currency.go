package cli

import (
	"fmt"
	"strings"

	"tripdeck/internal/ledger"
)

type CurrencyCmd struct {
	Code string `arg:"" optional:"" help:"Currency code to switch to. Omit to show the current one."`
}

func (c *CurrencyCmd) Run(ctx *Context) error {
	if c.Code == "" {
		cur := ctx.Store.Currency()
		fmt.Printf("%s (%s)\n", cur, ledger.Symbol(cur))
		return nil
	}
	code := strings.ToUpper(c.Code)
	if err := ctx.Store.SetCurrency(code); err != nil {
		return err
	}
	fmt.Printf("Currency set to %s (%s).\n", code, ledger.Symbol(code))
	return nil
}
