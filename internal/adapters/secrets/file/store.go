package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

const (
	storeDirMode   = 0o700
	secretFileMode = 0o600
	secretSuffix   = ".secret"
)

// keySegment rejects hidden, empty and parent segments.
var keySegment = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]*$`)

// Store is the fallback password store: one file per key below root, named
// after the key with a ".secret" suffix, e.g. checkin/accounts/alice/password.secret.
type Store struct {
	root string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

// Put replaces the secret atomically so a reader never sees a partial password.
func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.secretPath(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create secret directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".secret-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp secret: %w", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.WriteString(value)
	if writeErr == nil {
		writeErr = tmp.Chmod(secretFileMode)
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr == nil {
		writeErr = os.Rename(tmpName, path)
	}
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write secret %q: %w", key, writeErr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.secretPath(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	case err != nil:
		return "", fmt.Errorf("read secret %q: %w", key, err)
	}

	// Hand-edited files usually end with a newline that is not part of the password.
	return strings.TrimRight(string(data), "\r\n"), nil
}

// Delete removes the secret and any directories it leaves empty. Deleting a
// missing secret is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.secretPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete secret %q: %w", key, err)
	}

	s.pruneEmptyDirs(filepath.Dir(path))
	return nil
}

func (s *Store) pruneEmptyDirs(dir string) {
	for dir != s.root && strings.HasPrefix(dir, s.root+string(filepath.Separator)) {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

func (s *Store) secretPath(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("secret key is empty")
	}

	segments := strings.Split(key, "/")
	for _, segment := range segments {
		if !keySegment.MatchString(segment) {
			return "", fmt.Errorf("invalid secret key %q", key)
		}
	}

	return filepath.Join(s.root, filepath.Join(segments...)+secretSuffix), nil
}
