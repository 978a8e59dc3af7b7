package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

// Outcome records what happened to one account during a run.
type Outcome struct {
	AccountID   domain.AccountID
	DisplayName string
	Report      domain.RunReport
	Notified    bool
	NotifyErr   error
}

type RunOptions struct {
	// Account restricts the run to one account when set.
	Account domain.AccountID
	// OnAccount is called before each account is processed.
	OnAccount func(id domain.AccountID, index, total int)
}

// Runner processes every configured account once, one after another.
type Runner struct {
	accounts ports.AccountSource
	checkIn  *CheckInService
	notifier ports.Notifier
	logger   *slog.Logger
}

func NewRunner(accounts ports.AccountSource, checkIn *CheckInService, notifier ports.Notifier, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{
		accounts: accounts,
		checkIn:  checkIn,
		notifier: notifier,
		logger:   logger,
	}
}

// Run returns an error only when the accounts cannot be enumerated or the
// requested account does not exist. Per-account failures live in the outcomes.
func (r *Runner) Run(ctx context.Context, opts RunOptions) ([]Outcome, error) {
	ids, err := r.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	if opts.Account != "" {
		ids, err = selectAccount(ids, opts.Account)
		if err != nil {
			return nil, err
		}
	}

	if len(ids) == 0 {
		r.logger.Info("no account files configured")
		return nil, nil
	}

	outcomes := make([]Outcome, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}
		if opts.OnAccount != nil {
			opts.OnAccount(id, i, len(ids))
		}

		outcomes = append(outcomes, r.runAccount(ctx, id))
	}

	return outcomes, nil
}

func (r *Runner) runAccount(ctx context.Context, id domain.AccountID) Outcome {
	logger := r.logger.With("account", string(id))
	outcome := Outcome{AccountID: id, DisplayName: string(id)}

	store, err := r.accounts.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("open account %s: %w", id, err)
		logger.Error("account skipped", "error", err, "kind", domain.KindOf(err))
		outcome.Report = domain.NewFailureReport(err)
		return outcome
	}

	outcome.Report = r.checkIn.RunOnce(ctx, store)
	// Read after the run so a fresh login's nickname is used.
	outcome.DisplayName = store.UserInfo().DisplayName()

	channel, ok := store.Config().PushChannel()
	if !ok {
		logger.Debug("notification disabled")
		return outcome
	}
	if r.notifier == nil {
		return outcome
	}

	if err := r.notify(ctx, outcome.Report.Message(), channel); err != nil {
		logger.Warn("notification failed", "push_type", channel.Type, "error", err)
		outcome.NotifyErr = err
		return outcome
	}

	logger.Info("notification sent", "push_type", channel.Type)
	outcome.Notified = true
	return outcome
}

// notify keeps a panicking notifier from aborting the remaining accounts.
func (r *Runner) notify(ctx context.Context, message domain.Message, channel domain.PushChannel) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: notifier panicked: %v", domain.ErrUnexpected, rec)
		}
	}()

	return r.notifier.Push(ctx, message, channel)
}

func selectAccount(ids []domain.AccountID, want domain.AccountID) ([]domain.AccountID, error) {
	for _, id := range ids {
		if id == want {
			return []domain.AccountID{id}, nil
		}
	}
	return nil, fmt.Errorf("select account %s: %w", want, domain.ErrAccountNotFound)
}
