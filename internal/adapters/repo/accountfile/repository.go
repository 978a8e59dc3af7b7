package accountfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

const (
	accountFileMode = 0o600
	accountDirMode  = 0o700
)

// Repository treats every recognised file in dir as one account. The account
// ID is the file name without its extension.
type Repository struct {
	dir    string
	logger *slog.Logger
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountSource = (*Repository)(nil)

func NewRepository(dir string, logger *slog.Logger) (*Repository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("accounts directory is empty")
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve accounts directory: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Repository{dir: filepath.Clean(absDir), logger: logger}, nil
}

func (r *Repository) Dir() string {
	return r.dir
}

// ErrDuplicateAccount is returned by GetByID when more than one file maps to
// the same account ID. List still reports the ID so other accounts are unaffected.
var ErrDuplicateAccount = errors.New("account is defined by more than one file")

type accountEntry struct {
	id    domain.AccountID
	files []string
}

func (r *Repository) List(ctx context.Context) ([]domain.AccountID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := r.accountFiles()
	if err != nil {
		return nil, err
	}

	ids := make([]domain.AccountID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.id)
	}

	return ids, nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.AccountID) (ports.ConfigStore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := r.accountFiles()
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.id != id {
			continue
		}
		if len(entry.files) > 1 {
			return nil, fmt.Errorf("account %s (%s): %w", id, strings.Join(entry.files, ", "), ErrDuplicateAccount)
		}

		return r.open(id, filepath.Join(r.dir, entry.files[0]))
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
}

// accountFiles groups recognised account files by ID, in sorted order. A
// missing directory is the same as an empty one.
func (r *Repository) accountFiles() ([]accountEntry, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read accounts directory: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, entry := range dirEntries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, ok := codecFor(entry.Name()); !ok {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	entries := make([]accountEntry, 0, len(names))
	index := make(map[domain.AccountID]int, len(names))
	for _, name := range names {
		id := accountIDFromName(name)
		if i, ok := index[id]; ok {
			entries[i].files = append(entries[i].files, name)
			continue
		}
		index[id] = len(entries)
		entries = append(entries, accountEntry{id: id, files: []string{name}})
	}

	return entries, nil
}

func (r *Repository) open(id domain.AccountID, path string) (ports.ConfigStore, error) {
	doc, err := Open(path)
	if err != nil {
		return nil, err
	}

	if keys := doc.UnknownKeys(); len(keys) > 0 {
		r.logger.Warn("account file has keys that are dropped when it is saved",
			"account", string(id), "file", filepath.Base(path), "keys", keys)
	}

	return doc, nil
}

func accountIDFromName(name string) domain.AccountID {
	return domain.AccountID(strings.TrimSuffix(name, filepath.Ext(name)))
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
