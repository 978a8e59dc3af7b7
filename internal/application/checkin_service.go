package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

// CheckInService performs one attendance check-in for one account.
type CheckInService struct {
	session ports.SessionClient
	clock   clockwork.Clock
	logger  *slog.Logger
}

func NewCheckInService(session ports.SessionClient, clock clockwork.Clock, logger *slog.Logger) *CheckInService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &CheckInService{
		session: session,
		clock:   clock,
		logger:  logger,
	}
}

// RunOnce always yields a report. Every failure, including a panic raised by
// a collaborator, is turned into a failure report.
func (s *CheckInService) RunOnce(ctx context.Context, store ports.ConfigStore) (report domain.RunReport) {
	logger := s.logger.With("run_id", uuid.NewString())

	defer func() {
		if recovered := recover(); recovered != nil {
			err := fmt.Errorf("%w: %v", domain.ErrUnexpected, recovered)
			logger.Error("check-in aborted", "error", err, "kind", domain.KindUnexpected)
			report = domain.NewFailureReport(err)
		}
	}()

	if store == nil {
		err := fmt.Errorf("%w: no account configuration", domain.ErrUnexpected)
		logger.Error("check-in failed", "error", err, "kind", domain.KindOf(err))
		return domain.NewFailureReport(err)
	}
	logger = logger.With("account", string(store.ID()))

	details, err := s.checkIn(ctx, store, logger)
	if err != nil {
		logger.Error("check-in failed", "error", err, "kind", domain.KindOf(err))
		return domain.NewFailureReport(err)
	}

	logger.Info("check-in submitted", "type", string(details.Type), "previous_type", string(details.Previous.Type))
	return domain.NewSuccessReport(details)
}

func (s *CheckInService) checkIn(ctx context.Context, store ports.ConfigStore, logger *slog.Logger) (domain.SuccessDetails, error) {
	if s.session == nil {
		return domain.SuccessDetails{}, errors.New("check-in service has no session client")
	}

	if store.UserInfo().HasToken() {
		logger.Debug("using cached session token")
	} else {
		logger.Info("logging in")
		if _, err := s.session.Login(ctx, store); err != nil {
			return domain.SuccessDetails{}, err
		}
	}

	if plan := store.PlanInfo(); plan.HasPlan() {
		logger.Info("using cached plan", "plan_id", plan.PlanID)
	} else {
		plan, err := s.session.FetchPlan(ctx, store)
		if err != nil {
			return domain.SuccessDetails{}, err
		}
		logger.Info("resolved plan", "plan_id", plan.PlanID, "plan_name", plan.PlanName)
	}

	current, err := s.session.GetCheckInState(ctx, store)
	if err != nil {
		return domain.SuccessDetails{}, err
	}

	next := current
	next.Type = current.Type.Next()

	if err := s.session.Submit(ctx, store, next); err != nil {
		return domain.SuccessDetails{}, err
	}

	return domain.SuccessDetails{
		DisplayName: store.UserInfo().DisplayName(),
		Type:        next.Type,
		At:          s.clock.Now(),
		Address:     store.Config().Address,
		Previous:    current,
	}, nil
}
