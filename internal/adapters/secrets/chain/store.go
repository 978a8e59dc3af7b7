package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/internship-checkin/internal/adapters/secrets/file"
	passstore "github.com/bnema/internship-checkin/internal/adapters/secrets/pass"
	"github.com/bnema/internship-checkin/internal/ports"
)

// Store tries each backend in order. Reads stop at the first hit, writes at
// the first backend that accepts them, deletes go to every backend.
type Store struct {
	backends []ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret store chain has no backends")

func NewStore(backends ...ports.SecretStore) (*Store, error) {
	filtered := make([]ports.SecretStore, 0, len(backends))
	for _, backend := range backends {
		if backend != nil {
			filtered = append(filtered, backend)
		}
	}
	if len(filtered) == 0 {
		return nil, errNoBackends
	}

	return &Store{backends: filtered}, nil
}

// NewPassFirstWithFileFallback prefers pass (passDir empty means pass's own
// default) and falls back to plain files below fileRoot.
func NewPassFirstWithFileFallback(passDir, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passDir), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextErr(err) {
			return "", err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	return "", fmt.Errorf("get secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	return fmt.Errorf("put secret %q: %w", key, errors.Join(errs...))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	var errs []error
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil || errors.Is(err, passstore.ErrUnavailable) {
			continue
		}
		if isContextErr(err) {
			return err
		}
		errs = append(errs, fmt.Errorf("backend %d: %w", i, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("delete secret %q: %w", key, errors.Join(errs...))
	}
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
