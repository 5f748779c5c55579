package goal

import "context"

// Repository persists goals.
type Repository interface {
	Create(ctx context.Context, goal *Goal) error
	FindByPublicID(ctx context.Context, publicID string) (*Goal, error)
	// ListByActor returns the actor's goals, newest first.
	ListByActor(ctx context.Context, actorID string) ([]Goal, error)
	Update(ctx context.Context, goal *Goal) error
}
