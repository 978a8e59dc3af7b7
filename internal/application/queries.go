package application

import (
	"context"
	"fmt"

	"github.com/bnema/internship-checkin/internal/domain"
)

type AccountSummary struct {
	ID          domain.AccountID
	DisplayName string
	Plan        domain.PlanInfo
	HasToken    bool
	PushType    string
	Err         error
}

// ListAccounts describes every account file. A file that cannot be opened is
// reported with its error instead of failing the whole listing.
func (s *Service) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	ids, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	summaries := make([]AccountSummary, 0, len(ids))
	for _, id := range ids {
		summary := AccountSummary{ID: id, DisplayName: string(id)}

		config, err := s.accounts.GetByID(ctx, id)
		if err != nil {
			summary.Err = err
			summaries = append(summaries, summary)
			continue
		}

		user := config.UserInfo()
		summary.DisplayName = user.DisplayName()
		summary.Plan = config.PlanInfo()
		summary.HasToken = user.HasToken()
		if channel, ok := config.Config().PushChannel(); ok {
			summary.PushType = channel.Type
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}
