package cmd

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/internship-checkin/internal/adapters/push"
	"github.com/bnema/internship-checkin/internal/adapters/remote"
	"github.com/bnema/internship-checkin/internal/adapters/render/summary"
	"github.com/bnema/internship-checkin/internal/adapters/repo/accountfile"
	chainstore "github.com/bnema/internship-checkin/internal/adapters/secrets/chain"
	"github.com/bnema/internship-checkin/internal/application"
	"github.com/bnema/internship-checkin/internal/config"
	"github.com/bnema/internship-checkin/internal/platform/logging"
)

type app struct {
	service         *application.Service
	runner          *application.Runner
	runRenderer     func([]application.Outcome) (string, error)
	accountRenderer func([]application.AccountSummary) (string, error)
}

func (a *app) wire(cmd *cobra.Command, configFile string) error {
	cfg, err := config.Load(viper.New(), configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

	repo, err := accountfile.NewRepository(cfg.Accounts.Dir, logger)
	if err != nil {
		return fmt.Errorf("wire account repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(cfg.Secrets.PassDir, cfg.Secrets.Dir)
	if err != nil {
		return fmt.Errorf("wire secret store chain: %w", err)
	}

	clock := clockwork.NewRealClock()

	session := &remote.Client{
		API:            remote.DefaultAPI(cfg.API.BaseURL),
		RequestTimeout: cfg.API.Timeout,
		Secrets:        secretStore,
		Clock:          clock,
		Logger:         logger,
	}
	notifier := &push.Pusher{
		Endpoints:      push.DefaultEndpoints(),
		RequestTimeout: cfg.Push.Timeout,
	}

	*a = app{
		service:         application.NewService(repo, secretStore),
		runner:          application.NewRunner(repo, application.NewCheckInService(session, clock, logger), notifier, logger),
		runRenderer:     summary.Render,
		accountRenderer: summary.RenderAccounts,
	}

	return nil
}
