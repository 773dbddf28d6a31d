package retry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBusy = &fs.PathError{Op: "open", Path: "/srv/repo/comps.xml", Err: syscall.EBUSY}

type flakyOperation struct {
	calls     int
	failUntil int
	err       error
}

func (f *flakyOperation) run(context.Context) error {
	f.calls++
	if f.calls < f.failUntil {
		return f.err
	}
	return nil
}

func quickBackoff(attempts int) *ExponentialBackoff {
	return NewExponentialBackoff(attempts, WithInitialDelay(time.Millisecond), WithJitter(0))
}

func TestExecutor_SucceedsAfterTransientFailures(t *testing.T) {
	op := &flakyOperation{failUntil: 3, err: errBusy}
	var retries []int
	executor := NewExecutor(NewTransientIOClassifier(), quickBackoff(5)).
		WithOnRetry(func(attempt int, err error, _ time.Duration) {
			retries = append(retries, attempt)
			assert.ErrorIs(t, err, errBusy)
		})

	require.NoError(t, executor.Execute(context.Background(), op.run))
	assert.Equal(t, 3, op.calls)
	assert.Equal(t, []int{0, 1}, retries)
}

func TestExecutor_FatalErrorStopsImmediately(t *testing.T) {
	fatal := &fs.PathError{Op: "open", Path: "/srv/repo/comps.xml", Err: fs.ErrPermission}
	op := &flakyOperation{failUntil: 10, err: fatal}

	err := NewExecutor(NewTransientIOClassifier(), quickBackoff(5)).Execute(context.Background(), op.run)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, 1, op.calls)
}

func TestExecutor_ExhaustsBudget(t *testing.T) {
	op := &flakyOperation{failUntil: 100, err: errBusy}

	err := NewExecutor(NewTransientIOClassifier(), quickBackoff(2)).Execute(context.Background(), op.run)
	assert.ErrorIs(t, err, errBusy)
	assert.Equal(t, 3, op.calls, "initial attempt plus two retries")
}

func TestExecutor_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	op := &flakyOperation{failUntil: 100, err: errBusy}
	executor := NewExecutor(NewTransientIOClassifier(), NewExponentialBackoff(-1, WithInitialDelay(time.Hour))).
		WithOnRetry(func(int, error, time.Duration) { cancel() })

	err := executor.Execute(ctx, op.run)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, op.calls)
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewExecutor(nil, quickBackoff(1)) })
	assert.Panics(t, func() { NewExecutor(NewTransientIOClassifier(), nil) })
}

func TestTransientIOClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"busy", &fs.PathError{Op: "open", Path: "x", Err: syscall.EBUSY}, true},
		{"interrupted", fmt.Errorf("upload: %w", &fs.PathError{Op: "write", Path: "x", Err: syscall.EINTR}), true},
		{"stale nfs handle", &fs.PathError{Op: "read", Path: "x", Err: syscall.ESTALE}, true},
		{"flattened message", errors.New("failed to upload: open /srv/comps.xml: text file busy"), true},
		{"missing", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, false},
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: syscall.EACCES}, false},
		{"cancelled", fmt.Errorf("wrapped: %w", context.Canceled), false},
		{"deadline", context.DeadlineExceeded, false},
	}

	c := NewTransientIOClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsTransient(tt.err))
		})
	}
}

func TestExponentialBackoff_NextDelay(t *testing.T) {
	b := NewExponentialBackoff(5, WithInitialDelay(100*time.Millisecond), WithMaxDelay(time.Second), WithJitter(0))

	assert.Equal(t, 100*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, 200*time.Millisecond, b.NextDelay(1))
	assert.Equal(t, 800*time.Millisecond, b.NextDelay(3))
	assert.Equal(t, time.Second, b.NextDelay(10), "capped")
	assert.Equal(t, 5, b.MaxAttempts())
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	high := NewExponentialBackoff(1, WithInitialDelay(time.Second), WithJitter(0.1), WithRandom(func() float64 { return 1 }))
	low := NewExponentialBackoff(1, WithInitialDelay(time.Second), WithJitter(0.1), WithRandom(func() float64 { return 0 }))

	assert.Equal(t, 1100*time.Millisecond, high.NextDelay(0))
	assert.Equal(t, 900*time.Millisecond, low.NextDelay(0))
}

func TestExponentialBackoff_Multiplier(t *testing.T) {
	b := NewExponentialBackoff(1, WithInitialDelay(10*time.Millisecond), WithMultiplier(3), WithJitter(0))
	assert.Equal(t, 90*time.Millisecond, b.NextDelay(2))
}
