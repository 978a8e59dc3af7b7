package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/internship-checkin/internal/application"
	"github.com/bnema/internship-checkin/internal/domain"
)

type runOptions struct {
	account  string
	progress bool
}

func newRunCmd(app *app) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Check in every configured account once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckIn(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.account, "account", "", "Only check in this account (file name without extension)")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show a progress spinner on stderr")

	return cmd
}

// runCheckIn fails only when the accounts cannot be enumerated. Accounts that
// fail to check in are reported in the summary.
func runCheckIn(cmd *cobra.Command, app *app, opts runOptions) error {
	var outcomes []application.Outcome

	run := func(ctx context.Context, onAccount func(domain.AccountID, int, int)) error {
		var err error
		outcomes, err = app.runner.Run(ctx, application.RunOptions{
			Account:   domain.AccountID(opts.account),
			OnAccount: onAccount,
		})
		return err
	}

	var err error
	if opts.progress {
		err = runCheckInSpinner(cmd.Context(), cmd.ErrOrStderr(), run)
	} else {
		err = run(cmd.Context(), nil)
	}
	if err != nil {
		return err
	}

	rendered, err := app.runRenderer(outcomes)
	if err != nil {
		return fmt.Errorf("render run summary: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
