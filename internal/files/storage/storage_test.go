package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-mracek/libcomps/internal/retry"
	"github.com/j-mracek/libcomps/pkg/comps"
)

func TestStore_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "comps.xml")
	s := New()

	require.NoError(t, s.Write(ctx, path, []byte("<comps></comps>\n")))

	data, err := s.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "<comps></comps>\n", string(data))

	require.NoError(t, s.Write(ctx, path, []byte("<comps/>")))
	data, err = s.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "<comps/>", string(data), "write replaces previous content")
}

func TestStore_ReadMissing(t *testing.T) {
	_, err := New().Read(context.Background(), filepath.Join(t.TempDir(), "absent.xml"))
	require.Error(t, err)

	var ioErr *comps.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.True(t, errors.Is(err, comps.ErrIO))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestStore_RejectsCompressedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comps.xml.gz")
	require.NoError(t, os.WriteFile(path, []byte("<comps/>"), 0o644))

	_, err := New().Read(context.Background(), path)
	assert.True(t, errors.Is(err, comps.ErrCompressed))
	assert.True(t, errors.Is(err, comps.ErrIO))
}

func TestStore_RejectsCompressedContent(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"gzip", []byte{0x1f, 0x8b, 0x08, 0x00}},
		{"bzip2", []byte("BZh91AY")},
		{"xz", []byte{0xfd, '7', 'z', 'X', 'Z', 0x00, 0x00}},
		{"zstd", []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "comps.xml")
			require.NoError(t, os.WriteFile(path, tt.data, 0o644))

			_, err := New().Read(context.Background(), path)
			assert.True(t, errors.Is(err, comps.ErrCompressed))
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestStore_WriteWaitsForLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comps.xml")

	held := flock.New(LockPath(path))
	locked, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer held.Unlock()

	s := New(WithLockTimeout(150 * time.Millisecond))
	err = s.Write(context.Background(), path, []byte("<comps/>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLockTimeout))
	assert.True(t, errors.Is(err, comps.ErrIO))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "nothing written while locked")
}

func TestStore_WriteLeavesNoLockFileBesideDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comps.xml")

	require.NoError(t, New().Write(context.Background(), path, []byte("<comps/>")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "comps.xml", entries[0].Name())
	assert.Equal(t, os.TempDir(), filepath.Dir(LockPath(path)))
	assert.NotEqual(t, LockPath(path), LockPath(filepath.Join(dir, "other.xml")))
}

func TestStore_LockFailureKeepsCause(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comps.xml")
	// a directory where the lock file belongs cannot be opened for locking
	require.NoError(t, os.Mkdir(LockPath(path), 0o755))
	t.Cleanup(func() { _ = os.Remove(LockPath(path)) })

	err := New(WithLockTimeout(time.Second)).Write(context.Background(), path, []byte("<comps/>"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrLockTimeout))
	assert.True(t, errors.Is(err, comps.ErrIO))
	assert.Contains(t, err.Error(), "failed to lock")
}

func TestStore_RejectsNetworkLocations(t *testing.T) {
	for _, location := range []string{
		"https://mirror.example/repodata/comps.xml",
		"s3://bucket/comps.xml",
		"SSH://host/comps.xml",
	} {
		t.Run(location, func(t *testing.T) {
			_, err := New().Read(context.Background(), location)
			assert.True(t, errors.Is(err, ErrUnsupportedLocation))
			assert.True(t, errors.Is(err, comps.ErrIO))

			err = New().Write(context.Background(), location, []byte("<comps/>"))
			assert.True(t, errors.Is(err, ErrUnsupportedLocation))
		})
	}
}

func TestStore_EmptyPath(t *testing.T) {
	_, err := New().Read(context.Background(), "")
	assert.True(t, errors.Is(err, comps.ErrIO))
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		url   string
		path  string
		local bool
	}{
		{"/tmp/comps.xml", "/tmp/comps.xml", true},
		{"file:///tmp/comps.xml", "/tmp/comps.xml", true},
		{"mem://localhost/comps.xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			path, ok := localPath(tt.url)
			assert.Equal(t, tt.local, ok)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestStore_LocalErrorsAreNotRetried(t *testing.T) {
	retries := 0
	executor := retry.NewExecutor(retry.NewTransientIOClassifier(), retry.NewExponentialBackoff(5, retry.WithInitialDelay(time.Millisecond))).
		WithOnRetry(func(int, error, time.Duration) { retries++ })

	_, err := New(WithRetry(executor)).Read(context.Background(), filepath.Join(t.TempDir(), "absent.xml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Zero(t, retries)
}
