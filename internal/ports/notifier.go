package ports

import (
	"context"

	"github.com/bnema/internship-checkin/internal/domain"
)

type Notifier interface {
	Push(ctx context.Context, message domain.Message, channel domain.PushChannel) error
}
