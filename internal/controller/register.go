package controller

import (
	"context"

	"github.com/Duhandrade22/vet-system/internal/validate"
	"github.com/Duhandrade22/vet-system/vetapi"
)

// RegisterForm is the account creation draft.
type RegisterForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,password"`
	ConfirmPassword string `validate:"required"`
}

// RegisterController drives the account creation page.
type RegisterController struct {
	client *vetapi.Client
	notify Notifier
	nav    Navigator

	Form    RegisterForm
	Loading bool
}

// NewRegister creates a register controller.
func NewRegister(client *vetapi.Client, notify Notifier, nav Navigator) *RegisterController {
	return &RegisterController{client: client, notify: notify, nav: nav}
}

// Submit validates the draft and creates the account. Registration
// never establishes a session; on success the user is sent to the
// login page.
func (c *RegisterController) Submit(ctx context.Context) error {
	if err := validate.PasswordMatch(c.Form.Password, c.Form.ConfirmPassword); err != nil {
		c.notify.Error(err.Error())
		return err
	}
	if err := validate.Form(c.Form); err != nil {
		c.notify.Error(err.Error())
		return err
	}

	c.Loading = true
	_, err := c.client.Auth.Register(ctx, vetapi.CreateUserRequest{
		Name:     c.Form.Name,
		Email:    c.Form.Email,
		Password: c.Form.Password,
	})
	if err != nil {
		c.Loading = false
		c.notify.Error(errMessage(err, "Failed to create account"))
		return err
	}

	c.notify.Success("Account created successfully! Log in to continue.")
	c.nav.NavigateTo("/login")
	return nil
}
