package database

import "context"

// Sequencer mints monotonically increasing numeric IDs.
// Services depend on this interface so tests can supply deterministic IDs
// without a live store.
type Sequencer interface {
	NextSequence(ctx context.Context, name string) (int64, error)
}

// Ensure Store implements Sequencer
var _ Sequencer = (*Store)(nil)
