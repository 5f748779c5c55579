package decision

import "context"

// Repository persists decision analyses.
type Repository interface {
	Create(ctx context.Context, decision *Decision) error
	FindByPublicID(ctx context.Context, publicID string) (*Decision, error)
	// ListByActor returns the actor's decisions, newest first.
	ListByActor(ctx context.Context, actorID string) ([]Decision, error)
}
