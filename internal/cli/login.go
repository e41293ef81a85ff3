package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"tripdeck/internal/auth"
)

type LoginCmd struct {
	Name string `short:"n" help:"Your name. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	name := c.Name
	var passcode string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Validate(func(s string) error {
				if s == "" {
					return auth.ErrNameRequired
				}
				return nil
			}).
			Value(&name),
		huh.NewInput().
			Title("Passcode").
			EchoMode(huh.EchoModePassword).
			Value(&passcode),
	))

	// A wrong passcode reopens the form with the error inline rather than
	// exiting, so a typo does not cost the typed name.
	for {
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		sess, err := ctx.Gate.Login(name, passcode)
		if err == nil {
			fmt.Printf("Welcome, %s.\n", sess.Name)
			return nil
		}
		if !errors.Is(err, auth.ErrBadPasscode) {
			return err
		}
		fmt.Println(err)
		passcode = ""
		form = huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Passcode").
				Description("Incorrect passcode, try again.").
				EchoMode(huh.EchoModePassword).
				Value(&passcode),
		))
	}
}

type LogoutCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *LogoutCmd) Run(ctx *Context) error {
	sess := ctx.Gate.Current()
	if sess == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	if !c.Yes {
		ok, err := confirm(fmt.Sprintf("Sign out %s?", sess.Name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	if err := ctx.Gate.Logout(); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
