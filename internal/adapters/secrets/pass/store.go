package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

// ErrUnavailable means pass cannot be used at all: the binary is missing or
// the store has not been initialised. Callers may fall back to another store.
var ErrUnavailable = errors.New("pass store unavailable")

type runFunc func(ctx context.Context, env []string, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps account passwords in the standard unix password manager. Only
// the first line of an entry is the password.
type Store struct {
	// Dir overrides PASSWORD_STORE_DIR when set.
	Dir string
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{Dir: dir, run: runPass}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("pass insert %q: password must be a single line", key)
	}

	if _, stderr, err := s.exec(ctx, value+"\n", "insert", "--echo", "--force", key); err != nil {
		return classify("insert", key, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.exec(ctx, "", "show", key)
	if err != nil {
		return "", classify("show", key, err, stderr)
	}

	password, _, _ := strings.Cut(stdout, "\n")
	password = strings.TrimSuffix(password, "\r")
	if password == "" {
		return "", fmt.Errorf("pass show %q: entry has an empty first line: %w", key, domain.ErrSecretNotFound)
	}

	return password, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.exec(ctx, "", "rm", "--force", key); err != nil {
		return classify("rm", key, err, stderr)
	}

	return nil
}

func (s *Store) exec(ctx context.Context, input string, args ...string) (string, string, error) {
	var env []string
	if s.Dir != "" {
		env = []string{"PASSWORD_STORE_DIR=" + s.Dir}
	}

	run := s.run
	if run == nil {
		run = runPass
	}

	return run(ctx, env, input, args...)
}

func runPass(ctx context.Context, env []string, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = append(os.Environ(), env...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

// classify maps pass failures onto the errors the secret chain understands.
func classify(op string, key string, err error, stderr string) error {
	switch {
	case errors.Is(err, ErrUnavailable):
		return fmt.Errorf("pass %s %q: %w", op, key, ErrUnavailable)
	case strings.Contains(stderr, "is not in the password store"):
		return fmt.Errorf("pass %s %q: %w", op, key, domain.ErrSecretNotFound)
	case strings.Contains(stderr, "pass init"), strings.Contains(stderr, "password store is empty"):
		return fmt.Errorf("pass %s %q: %w: %s", op, key, ErrUnavailable, stderr)
	case stderr == "":
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	default:
		return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
	}
}
