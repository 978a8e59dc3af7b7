package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/internship-checkin/internal/domain"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage account passwords",
	}

	cmd.AddCommand(newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthSetCmd(app *app) *cobra.Command {
	var accountID string
	var secretKey string
	var password string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Move an account password into the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.service.SetPassword(cmd.Context(), domain.AccountID(accountID), secretKey, password)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "Secret-store key (default checkin/accounts/<id>/password)")
	cmd.Flags().StringVar(&password, "password-value", "", "Password")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("password-value")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove an account password from the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.service.RemovePassword(cmd.Context(), domain.AccountID(accountID))
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
