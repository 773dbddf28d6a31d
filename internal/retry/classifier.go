package retry

import (
	"context"
	"errors"
	"strings"
	"syscall"
)

// Classifier decides whether an error is worth another attempt.
type Classifier interface {
	IsTransient(err error) bool
}

// TransientIOClassifier treats busy, interrupted and stale-handle
// conditions as transient and every other error as fatal.
type TransientIOClassifier struct{}

func NewTransientIOClassifier() *TransientIOClassifier {
	return &TransientIOClassifier{}
}

var transientErrnos = []syscall.Errno{
	syscall.EINTR,
	syscall.EAGAIN,
	syscall.EBUSY,
	syscall.ETXTBSY,
	syscall.ESTALE,
}

// some afs backends flatten the cause into the message
var transientPatterns = []string{
	"interrupted system call",
	"resource temporarily unavailable",
	"device or resource busy",
	"text file busy",
	"stale file handle",
}

func (c *TransientIOClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range transientPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
