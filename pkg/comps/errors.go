package comps

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds of the comps toolkit.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	g, err := doc.Groups.GetByID("core")
//	if errors.Is(err, comps.ErrNotFound) {
//	    // no such group
//	}
var (
	// ErrNotFound indicates a missing key, id or entry.
	ErrNotFound = errors.New("not found")

	// ErrIndexOutOfRange indicates a negative or too large index on a non-slice access.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNilItem indicates a nil group, category or environment stored into a list.
	ErrNilItem = errors.New("nil item")

	// ErrTypeCompare indicates an equality check against an incompatible type.
	ErrTypeCompare = errors.New("cannot compare with incompatible type")

	// ErrUnorderable indicates an ordering comparison on a type with no natural order.
	ErrUnorderable = errors.New("type is not orderable")

	// ErrParse indicates malformed or truncated XML, or an unrecoverable structural violation.
	ErrParse = errors.New("malformed comps document")

	// ErrIO indicates a document could not be read or written.
	ErrIO = errors.New("comps document I/O failed")

	// ErrCompressed indicates compressed input, which is rejected instead of decompressed.
	ErrCompressed = errors.New("compressed input is not supported")

	// ErrValidation indicates a document parsed with error diagnostics in strict mode.
	ErrValidation = errors.New("document validation failed")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IOError describes a failed read or write of a document.
// It matches both ErrIO and the underlying cause with errors.Is().
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

func indexError(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

func notFoundError(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, key)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrValidation):
		return ExitValidationFailed
	}

	// cobra reports usage problems as plain errors
	msg := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(msg, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}
