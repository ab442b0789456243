package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Duhandrade22/vet-system/internal/controller"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Exchange credentials for a session token.

The token and user snapshot are stored under the configured session
directory and reused by every other command until logout or expiry.

Examples:
  vetctl login --email ana@clinic.com --password secret1pass
  vetctl login                      (prompts for both)`,
	RunE: runLogin,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a user account. Registration does not log you in;
run 'vetctl login' afterwards.`,
	RunE: runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")

	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("confirm-password", "", "password confirmation")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	ctrl := controller.NewLogin(client, terminalNotifier{}, terminalNavigator{})

	ctrl.Form.Email, _ = cmd.Flags().GetString("email")
	ctrl.Form.Password, _ = cmd.Flags().GetString("password")
	if ctrl.Form.Email == "" {
		if ctrl.Form.Email, err = promptLine("Email"); err != nil {
			return err
		}
	}
	if ctrl.Form.Password == "" {
		if ctrl.Form.Password, err = promptLine("Password"); err != nil {
			return err
		}
	}

	return ctrl.Submit(context.Background())
}

func runRegister(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	ctrl := controller.NewRegister(client, terminalNotifier{}, terminalNavigator{})

	ctrl.Form.Name, _ = cmd.Flags().GetString("name")
	ctrl.Form.Email, _ = cmd.Flags().GetString("email")
	ctrl.Form.Password, _ = cmd.Flags().GetString("password")
	ctrl.Form.ConfirmPassword, _ = cmd.Flags().GetString("confirm-password")

	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &ctrl.Form.Name},
		{"Email", &ctrl.Form.Email},
		{"Password", &ctrl.Form.Password},
		{"Confirm password", &ctrl.Form.ConfirmPassword},
	}
	for _, f := range fields {
		if *f.dst == "" {
			if *f.dst, err = promptLine(f.label); err != nil {
				return err
			}
		}
	}

	return ctrl.Submit(context.Background())
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	if err := client.Auth.Logout(); err != nil {
		printError(err)
		return err
	}

	fmt.Printf("%s Logged out\n", colorGreen("✓"))
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	user := client.Auth.CurrentUser()
	if user == nil || !client.Auth.IsAuthenticated() {
		return fmt.Errorf("not logged in. Run 'vetctl login' first")
	}

	if jsonOut {
		return printJSON(user)
	}

	fmt.Printf("%s (%s)\n", colorBold(user.Name), user.Email)
	return nil
}
