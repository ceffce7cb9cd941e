package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// INFO: https://github.com/go-redis/redis/issues/1029
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func testStoreRoundTrip(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)
	assert.False(t, HasToken(ctx, s))

	require.NoError(t, s.Set(ctx, "T"))
	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", token)
	assert.True(t, HasToken(ctx, s))

	require.NoError(t, s.Set(ctx, "T2"))
	token, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", token)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	// clearing twice is fine
	require.NoError(t, s.Clear(ctx))
}

func TestMemoryStore(t *testing.T) {
	testStoreRoundTrip(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gymdash", TokenKey)
	s := NewFileStore(path)
	assert.Equal(t, path, s.Path())
	testStoreRoundTrip(t, s)
}

func TestFileStore_TokenVerbatim(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), TokenKey)
	s := NewFileStore(path)

	require.NoError(t, s.Set(ctx, " T\t"))
	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, " T\t", token)

	require.NoError(t, os.WriteFile(path, []byte("T\r\n"), 0o600))
	token, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", token)

	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))
	_, err = s.Get(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestFileStore_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenKey)
	s := NewFileStore(path)
	require.NoError(t, s.Set(context.Background(), "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDefaultTokenPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultTokenPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/gymdash/authToken", path)
}

func TestRedisStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	ctx := context.Background()
	s := NewRedisStore(db, "serj")
	key := "gymdash-session||serj||authToken"

	mock.ExpectGet(key).RedisNil()
	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrNoToken)

	mock.ExpectSet(key, "T", 0).SetVal("OK")
	require.NoError(t, s.Set(ctx, "T"))

	mock.ExpectGet(key).SetVal("T")
	token, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T", token)

	mock.ExpectDel(key).SetVal(1)
	require.NoError(t, s.Clear(ctx))

	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	_, err = s.Get(ctx)
	require.EqualError(t, err, "connection refused")

	require.NoError(t, mock.ExpectationsWereMet())
}
