package controller

import (
	"context"

	"github.com/Duhandrade22/vet-system/internal/validate"
	"github.com/Duhandrade22/vet-system/vetapi"
)

// LoginForm is the login page draft.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginController drives the login page.
type LoginController struct {
	client *vetapi.Client
	notify Notifier
	nav    Navigator

	Form    LoginForm
	Loading bool
}

// NewLogin creates a login controller.
func NewLogin(client *vetapi.Client, notify Notifier, nav Navigator) *LoginController {
	return &LoginController{client: client, notify: notify, nav: nav}
}

// Submit validates the draft and exchanges the credentials for a
// session. On success it navigates to the dashboard; on failure it
// surfaces the error and leaves the form editable.
func (c *LoginController) Submit(ctx context.Context) error {
	if err := validate.Form(c.Form); err != nil {
		c.notify.Error(err.Error())
		return err
	}

	c.Loading = true
	_, err := c.client.Auth.Login(ctx, vetapi.LoginRequest{
		Email:    c.Form.Email,
		Password: c.Form.Password,
	})
	if err != nil {
		c.Loading = false
		c.notify.Error(errMessage(err, "Invalid credentials"))
		return err
	}

	c.notify.Success("Logged in successfully!")
	c.nav.NavigateTo("/")
	return nil
}
