package compsxml

import (
	"context"

	"github.com/j-mracek/libcomps/internal/files/storage"
	"github.com/j-mracek/libcomps/pkg/comps"
)

// ParseFile reads and parses the document at path, which may also be a
// file:// or mem:// URL. Compressed files fail with an error matching
// comps.ErrCompressed.
func ParseFile(ctx context.Context, path string, opts ...Option) (*comps.Comps, Diagnostics, error) {
	o := buildOptions(opts)
	data, err := storage.New().Read(ctx, path)
	if err != nil {
		o.logger.Verbose("Failed to read %s: %v", path, err)
		return nil, nil, err
	}
	return ParseBytes(data, append([]Option{WithSource(path)}, opts...)...)
}

// SerializeToFile writes the canonical XML form of doc to path, holding an
// advisory lock (see storage.LockPath) while writing.
func SerializeToFile(ctx context.Context, doc *comps.Comps, path string, opts ...Option) error {
	o := buildOptions(opts)
	out, err := SerializeToString(doc, opts...)
	if err != nil {
		return err
	}

	store := storage.New(storage.WithLockTimeout(o.lockTimeout))
	if err := store.Write(ctx, path, []byte(out)); err != nil {
		return err
	}
	o.logger.Verbose("Wrote %s (%d bytes)", path, len(out))
	return nil
}
