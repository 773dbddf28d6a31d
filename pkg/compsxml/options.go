package compsxml

import (
	"time"

	"github.com/j-mracek/libcomps/internal/logging"
	"github.com/j-mracek/libcomps/pkg/comps"
)

const defaultIndent = "  "

type options struct {
	logger comps.Logger
	source string
	indent string

	lockTimeout time.Duration
}

// Option configures parsing and serialization.
type Option func(*options)

// WithLogger routes progress messages and diagnostics to logger.
func WithLogger(logger comps.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSource names the input in errors and log messages.
func WithSource(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

// WithIndent sets the indentation unit used by the encoder.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithLockTimeout bounds how long SerializeToFile waits for another writer.
func WithLockTimeout(d time.Duration) Option {
	return func(o *options) {
		o.lockTimeout = d
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: logging.NewNullLogger(),
		indent: defaultIndent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
