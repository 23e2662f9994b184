package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/meetly-app/meetly-cli/internal/keyring"
)

type LoginCmd struct {
	Email string `help:"Account email. Prompted for when omitted."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	email := c.Email
	var password string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password is required")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	token, err := ctx.API.Login(context.Background(), email, password)
	if err != nil {
		return err
	}

	if err := keyring.SetToken(token); err != nil {
		return err
	}

	fmt.Println("Logged in successfully.")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("Not logged in.")
			return nil
		}
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
