package ports

import (
	"context"

	"github.com/bnema/internship-checkin/internal/domain"
)

// ConfigStore exposes one account file through typed sections. Save calls
// persist immediately.
type ConfigStore interface {
	ID() domain.AccountID
	UserInfo() domain.UserInfo
	PlanInfo() domain.PlanInfo
	Config() domain.Settings
	SaveUserInfo(ctx context.Context, info domain.UserInfo) error
	SavePlanInfo(ctx context.Context, info domain.PlanInfo) error
}

// AccountSource enumerates account files. Each account is opened on its own so
// that one unreadable file does not hide the others.
type AccountSource interface {
	List(ctx context.Context) ([]domain.AccountID, error)
	GetByID(ctx context.Context, id domain.AccountID) (ConfigStore, error)
}
