// Package workers runs the server's background maintenance jobs.
//
// The only job today is the stale-cart sweeper, enabled by CART_TTL. Workers
// share the server's root context and stop when it is cancelled; main waits
// for them with [Workers.Wait] before closing the database.
package workers

import "context"

// Worker blocks in Run until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
