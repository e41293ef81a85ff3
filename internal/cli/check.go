package cli

import (
	"fmt"

	"github.com/fatih/color"

	"tripdeck/internal/validation"
)

type CheckCmd struct{}

func (c *CheckCmd) Run(ctx *Context) error {
	v := validation.New()
	result := v.ValidateSchedule(ctx.Store.Days())
	if !result.HasConflicts() {
		color.Green("Schedule looks good.")
		return nil
	}
	fmt.Print(result.FormatReport())
	return fmt.Errorf("%d problem(s) found", len(result.Conflicts))
}
