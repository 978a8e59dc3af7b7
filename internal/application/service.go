package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

// Service manages account files outside of a check-in run.
type Service struct {
	accounts ports.AccountSource
	store    ports.SecretStore
}

func NewService(accounts ports.AccountSource, store ports.SecretStore) *Service {
	return &Service{
		accounts: accounts,
		store:    store,
	}
}

func PasswordSecretKey(id domain.AccountID) string {
	return fmt.Sprintf("checkin/accounts/%s/password", id)
}

// SetPassword stores the password in the secret store and points the account
// file at it. The plain password is removed from the file.
func (s *Service) SetPassword(ctx context.Context, id domain.AccountID, secretKey, password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password must not be empty")
	}
	if secretKey == "" {
		secretKey = PasswordSecretKey(id)
	}

	config, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	info := config.UserInfo()
	previousRef := strings.TrimSpace(info.PasswordRef)

	if err := s.store.Put(ctx, secretKey, password); err != nil {
		return fmt.Errorf("store password secret: %w", err)
	}

	info.Password = ""
	info.PasswordRef = secretKey
	// A new password invalidates the cached session.
	info.Token = ""

	if err := config.SaveUserInfo(ctx, info); err != nil {
		if rollbackErr := s.store.Delete(ctx, secretKey); rollbackErr != nil {
			return fmt.Errorf("save account password ref and rollback stored secret: %w", errors.Join(err, rollbackErr))
		}

		return fmt.Errorf("save account password ref: %w", err)
	}

	if previousRef != "" && previousRef != secretKey {
		if err := s.store.Delete(ctx, previousRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return fmt.Errorf("delete previous password secret: %w", err)
		}
	}

	return nil
}

// RemovePassword clears the password reference and deletes the secret. The
// reference is restored when the secret cannot be deleted.
func (s *Service) RemovePassword(ctx context.Context, id domain.AccountID) error {
	config, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}

	original := config.UserInfo()
	secretRef := strings.TrimSpace(original.PasswordRef)
	if secretRef == "" {
		return nil
	}

	info := original
	info.PasswordRef = ""
	if err := config.SaveUserInfo(ctx, info); err != nil {
		return fmt.Errorf("save account password ref: %w", err)
	}

	if err := s.store.Delete(ctx, secretRef); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
		if restoreErr := config.SaveUserInfo(ctx, original); restoreErr != nil {
			return fmt.Errorf("delete password secret and restore ref: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete password secret: %w", err)
	}

	return nil
}
