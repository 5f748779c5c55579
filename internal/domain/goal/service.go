package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// CreateParams carries one goal creation request.
type CreateParams struct {
	Title       string
	Description string
}

// Service manages goal lifecycle and progress.
type Service interface {
	Create(ctx context.Context, actorID string, params CreateParams) (*Goal, error)
	List(ctx context.Context, actorID string) ([]Goal, error)
	// UpdateProgress sets a goal's progress percentage. Values outside
	// [0,100] are rejected before storage is touched.
	UpdateProgress(ctx context.Context, actorID, goalPublicID string, progress int) (*Goal, error)
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	goals  Repository
	logger zerolog.Logger
}

// NewService creates a goal service.
func NewService(goals Repository, logger zerolog.Logger) *ServiceImpl {
	return &ServiceImpl{
		goals:  goals,
		logger: logger.With().Str("component", "goal_service").Logger(),
	}
}

// Create persists a new goal starting at zero progress.
func (s *ServiceImpl) Create(ctx context.Context, actorID string, params CreateParams) (*Goal, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "title is required", nil, "goal-title-required")
	}

	g := NewGoal(NewPublicID(), actorID, title, strings.TrimSpace(params.Description))
	if err := s.goals.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// List returns the actor's goals, newest first.
func (s *ServiceImpl) List(ctx context.Context, actorID string) ([]Goal, error) {
	return s.goals.ListByActor(ctx, actorID)
}

// UpdateProgress validates and stores a new progress value. Goals owned by
// other actors read as not found.
func (s *ServiceImpl) UpdateProgress(ctx context.Context, actorID, goalPublicID string, progress int) (*Goal, error) {
	if progress < 0 || progress > 100 {
		return nil, platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			fmt.Sprintf("progress %d out of range [0,100]", progress),
			nil, "goal-progress-out-of-range", map[string]any{"progress": progress})
	}

	g, err := s.goals.FindByPublicID(ctx, goalPublicID)
	if err != nil {
		return nil, err
	}
	if g.ActorID != actorID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound, "goal not found", nil, "goal-not-owned")
	}

	g.Progress = progress
	g.UpdatedAt = time.Now()
	if err := s.goals.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}
