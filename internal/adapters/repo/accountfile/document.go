package accountfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/bnema/internship-checkin/internal/ports"
)

const tempFilePattern = ".account-*.tmp"

// Document is one decoded account file. Reads are served from memory; every
// Save rewrites the file atomically.
type Document struct {
	id    domain.AccountID
	path  string
	codec codec
	mu    *sync.RWMutex
	file  fileSchema

	unknownKeys []string
}

var _ ports.ConfigStore = (*Document)(nil)

func Open(path string) (*Document, error) {
	c, ok := codecFor(path)
	if !ok {
		return nil, fmt.Errorf("unsupported account file extension %q", filepath.Ext(path))
	}

	doc := &Document{
		id:    accountIDFromName(filepath.Base(path)),
		path:  path,
		codec: c,
		mu:    lockForPath(path),
	}

	doc.mu.RLock()
	defer doc.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read account file %s: %w", doc.id, err)
	}
	if err := c.Unmarshal(data, &doc.file); err != nil {
		return nil, fmt.Errorf("decode account file %s: %w", doc.id, err)
	}

	var raw map[string]any
	if err := c.Unmarshal(data, &raw); err == nil {
		doc.unknownKeys = unknownKeys(raw)
	}

	return doc, nil
}

// UnknownKeys reports keys in the file that are not kept when it is saved.
func (d *Document) UnknownKeys() []string {
	return d.unknownKeys
}

func (d *Document) ID() domain.AccountID {
	return d.id
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) UserInfo() domain.UserInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.file.userInfo()
}

func (d *Document) PlanInfo() domain.PlanInfo {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.file.planInfo()
}

func (d *Document) Config() domain.Settings {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.file.settings()
}

func (d *Document) SaveUserInfo(ctx context.Context, info domain.UserInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	updated := d.file
	updated.setUserInfo(info)
	if err := d.write(updated); err != nil {
		return fmt.Errorf("save user info: %w", err)
	}
	d.file = updated

	return nil
}

func (d *Document) SavePlanInfo(ctx context.Context, info domain.PlanInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	updated := d.file
	updated.setPlanInfo(info)
	if err := d.write(updated); err != nil {
		return fmt.Errorf("save plan info: %w", err)
	}
	d.file = updated

	return nil
}

func (d *Document) write(file fileSchema) error {
	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, accountDirMode); err != nil {
		return fmt.Errorf("create accounts directory: %w", err)
	}

	data, err := d.codec.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode account file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp account file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp account file: %w", err)
	}

	if err := tempFile.Chmod(accountFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp account file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp account file: %w", err)
	}

	if err := os.Rename(tempName, d.path); err != nil {
		return fmt.Errorf("replace account file: %w", err)
	}
	cleanup = false

	return nil
}
