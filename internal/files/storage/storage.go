package storage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/viant/afs"

	"github.com/j-mracek/libcomps/internal/retry"
	"github.com/j-mracek/libcomps/pkg/comps"
)

const (
	// DefaultLockTimeout bounds the wait for another writer's lock.
	DefaultLockTimeout = 5 * time.Second

	lockRetryInterval = 50 * time.Millisecond
	transferRetries   = 3
	lockPrefix        = "comps-"
	lockSuffix        = ".lock"
	fileMode          = 0o644
)

var (
	// ErrLockTimeout indicates the document lock could not be acquired in time.
	ErrLockTimeout = errors.New("timed out waiting for document lock")

	// ErrUnsupportedLocation indicates a URL scheme other than file:// or mem://.
	// Documents are never fetched over the network.
	ErrUnsupportedLocation = errors.New("unsupported document location")
)

var supportedSchemes = []string{"file", "mem"}

// Store reads and writes document bytes.
type Store struct {
	fs          afs.Service
	lockTimeout time.Duration
	retry       *retry.Executor
}

// Option configures a Store.
type Option func(*Store)

// WithLockTimeout sets how long Write waits for the lock. Non-positive
// values keep the default.
func WithLockTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithRetry replaces the executor used for transfers.
func WithRetry(executor *retry.Executor) Option {
	return func(s *Store) {
		if executor != nil {
			s.retry = executor
		}
	}
}

// New returns a Store backed by afs.
func New(opts ...Option) *Store {
	s := &Store{
		fs:          afs.New(),
		lockTimeout: DefaultLockTimeout,
		retry:       retry.NewExecutor(retry.NewTransientIOClassifier(), retry.NewExponentialBackoff(transferRetries)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the bytes stored at location.
//
// Errors are *comps.IOError values; a missing document matches fs.ErrNotExist
// and compressed input matches comps.ErrCompressed.
func (s *Store) Read(ctx context.Context, location string) ([]byte, error) {
	if format, ok := compressedExtension(location); ok {
		return nil, readError(location, fmt.Errorf("%w: %s file", comps.ErrCompressed, format))
	}

	URL, err := normalize(location)
	if err != nil {
		return nil, readError(location, err)
	}

	var data []byte
	err = s.retry.Execute(ctx, func(ctx context.Context) error {
		exists, err := s.fs.Exists(ctx, URL)
		if err != nil {
			return err
		}
		if !exists {
			return fs.ErrNotExist
		}
		data, err = s.fs.DownloadWithURL(ctx, URL)
		return err
	})
	if err != nil {
		return nil, readError(location, err)
	}
	if format, ok := compressedContent(data); ok {
		return nil, readError(location, fmt.Errorf("%w: %s data", comps.ErrCompressed, format))
	}
	return data, nil
}

// Write replaces the document at location with data. Local files are
// written under an exclusive lock on LockPath.
func (s *Store) Write(ctx context.Context, location string, data []byte) error {
	URL, err := normalize(location)
	if err != nil {
		return writeError(location, err)
	}

	if local, ok := localPath(URL); ok {
		unlock, err := s.lock(ctx, local)
		if err != nil {
			return writeError(location, err)
		}
		defer unlock()
	}

	err = s.retry.Execute(ctx, func(ctx context.Context) error {
		return s.fs.Upload(ctx, URL, fileMode, bytes.NewReader(data))
	})
	if err != nil {
		return writeError(location, err)
	}
	return nil
}

func (s *Store) lock(ctx context.Context, path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	lockPath := LockPath(path)
	fileLock := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(ctx, lockRetryInterval)
	switch {
	case locked:
		return func() { _ = fileLock.Unlock() }, nil
	case err == nil, errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("%w: %s", ErrLockTimeout, path)
	default:
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
}

// LockPath returns the lock file guarding writes to path. Lock files live in
// the system temp directory, keyed by the cleaned path.
func LockPath(path string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(path)))
	return filepath.Join(os.TempDir(), lockPrefix+hex.EncodeToString(sum[:8])+lockSuffix)
}

func readError(location string, err error) error {
	return &comps.IOError{Op: "read", Path: location, Err: err}
}

func writeError(location string, err error) error {
	return &comps.IOError{Op: "write", Path: location, Err: err}
}

// normalize turns plain paths into absolute ones and leaves file:// and
// mem:// URLs alone. Other schemes are rejected.
func normalize(location string) (string, error) {
	if location == "" {
		return "", errors.New("empty document path")
	}
	if scheme, _, ok := strings.Cut(location, "://"); ok {
		if !slices.Contains(supportedSchemes, strings.ToLower(scheme)) {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedLocation, location)
		}
		return location, nil
	}
	return filepath.Abs(location)
}

// localPath returns the filesystem path for plain paths and file:// URLs.
func localPath(URL string) (string, bool) {
	if after, ok := strings.CutPrefix(URL, "file://"); ok {
		return after, true
	}
	if strings.Contains(URL, "://") {
		return "", false
	}
	return URL, true
}
