// Package retry re-runs document transfers that fail for transient
// reasons, such as a file briefly busy on a network filesystem.
//
//	executor := retry.NewExecutor(retry.NewTransientIOClassifier(), retry.NewExponentialBackoff(3))
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return upload(ctx)
//	})
//
// Missing files, permission problems and context cancellation fail on the
// first attempt.
package retry
