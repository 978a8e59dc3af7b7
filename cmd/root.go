package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var configFile string
	app := &app{}

	rootCmd := &cobra.Command{
		Use:   "checkin",
		Short: "Internship attendance check-in runner",
		Long: "checkin clocks every configured internship account in or out once. " +
			"Each account file in the accounts directory is processed in turn and its result " +
			"is pushed to the account's notification channel when one is configured.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd, configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckIn(cmd, app, runOptions{})
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $HOME/.config/checkin/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(app),
		newAuthCmd(app),
		newRunCmd(app),
	)

	return rootCmd
}
