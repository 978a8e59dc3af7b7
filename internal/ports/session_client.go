package ports

import (
	"context"

	"github.com/bnema/internship-checkin/internal/domain"
)

// SessionClient talks to the remote internship service. Login and FetchPlan
// write their results back through the store.
type SessionClient interface {
	Login(ctx context.Context, store ConfigStore) (domain.Session, error)
	FetchPlan(ctx context.Context, store ConfigStore) (domain.PlanInfo, error)
	GetCheckInState(ctx context.Context, store ConfigStore) (domain.CheckInRecord, error)
	Submit(ctx context.Context, store ConfigStore, record domain.CheckInRecord) error
}
