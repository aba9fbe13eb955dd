package store

import "context"

// RunInRun wraps ctx with the run id and calls fn inside the provided TxRunner.
// All writes for a single analysis run go through here so the tracer can tag them
func RunInRun(ctx context.Context, tx TxRunner, runID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithRun(ctx, runID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
