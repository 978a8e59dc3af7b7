package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/internship-checkin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "secret key is empty"},
		{name: "whitespace", key: "   ", wantErr: "secret key is empty"},
		{name: "absolute", key: "/etc/passwd", wantErr: "invalid secret key"},
		{name: "parent", key: "..", wantErr: "invalid secret key"},
		{name: "traversal", key: "checkin/../../password", wantErr: "invalid secret key"},
		{name: "hidden segment", key: "checkin/.alice/password", wantErr: "invalid secret key"},
		{name: "empty segment", key: "checkin//password", wantErr: "invalid secret key"},
		{name: "backslash", key: `checkin\alice`, wantErr: "invalid secret key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutWritesSecretFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "checkin/accounts/alice/password", "hunter2"))

	path := filepath.Join(root, "checkin", "accounts", "alice", "password.secret")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(secretFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestStoreGetTrimsTrailingNewlineAndPutReplaces(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	key := "checkin/alice/password"

	require.NoError(t, os.MkdirAll(filepath.Join(root, "checkin", "alice"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "checkin", "alice", "password.secret"), []byte("hunter2\r\n"), 0o600))

	got, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)

	require.NoError(t, store.Put(context.Background(), key, "rotated"))
	got, err = store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "rotated", got)
}

func TestStoreGetMissingSecret(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "checkin/nobody/password")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreDeleteIsIdempotentAndPrunesEmptyDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "checkin/accounts/alice/password", "hunter2"))
	require.NoError(t, store.Put(context.Background(), "checkin/accounts/bob/password", "hunter3"))

	require.NoError(t, store.Delete(context.Background(), "checkin/accounts/alice/password"))
	require.NoError(t, store.Delete(context.Background(), "checkin/accounts/alice/password"))

	_, err := store.Get(context.Background(), "checkin/accounts/alice/password")
	require.ErrorIs(t, err, domain.ErrSecretNotFound)

	assert.NoDirExists(t, filepath.Join(root, "checkin", "accounts", "alice"))
	assert.DirExists(t, filepath.Join(root, "checkin", "accounts", "bob"))
	assert.DirExists(t, root)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Put(ctx, "checkin/alice/password", "x"), context.Canceled)
	_, err := store.Get(ctx, "checkin/alice/password")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Delete(ctx, "checkin/alice/password"), context.Canceled)
}
