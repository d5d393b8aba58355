package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"taskdesk/pkg/apierrors"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session token",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password (defaults to $DESK_PASSWORD)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("DESK_PASSWORD")
	}

	ctx := cmd.Context()
	if err := app.Auth.Login(ctx, email, password); err != nil {
		return failed(apierrors.MsgFailLogin, err)
	}
	user, err := app.Auth.WhoAmI(ctx)
	if err != nil {
		return failed(apierrors.MsgFailLogin, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := app.Auth.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	user, err := app.Auth.WhoAmI(cmd.Context())
	if err != nil {
		return err
	}
	role := "member"
	if user.IsAdmin {
		role = "admin"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.Name, user.Email, role)
	return nil
}
