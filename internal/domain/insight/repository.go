package insight

import "context"

// Repository persists metrics snapshots.
type Repository interface {
	Create(ctx context.Context, snapshot *Snapshot) error
	// FindLatestByActor returns the actor's most recent snapshot, or a
	// not-found error when none exists yet.
	FindLatestByActor(ctx context.Context, actorID string) (*Snapshot, error)
}
