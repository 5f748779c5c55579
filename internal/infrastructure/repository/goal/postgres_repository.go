// Package goal provides PostgreSQL persistence for goals.
package goal

import (
	"context"

	"gorm.io/gorm"

	domain "lifenav-server/navigator-api/internal/domain/goal"
	"lifenav-server/navigator-api/internal/infrastructure/database/entities"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for goals.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new goal record.
func (r *PostgresRepository) Create(ctx context.Context, g *domain.Goal) error {
	entity := mapGoalToEntity(g)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create goal",
			err,
			"goal-create-db-001",
		)
	}
	g.ID = entity.ID
	g.CreatedAt = entity.CreatedAt
	g.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByPublicID fetches a goal by public ID.
func (r *PostgresRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Goal, error) {
	var entity entities.Goal
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"goal not found",
				err,
				"goal-find-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find goal",
			err,
			"goal-find-db-001",
		)
	}
	return mapGoalFromEntity(&entity), nil
}

// ListByActor retrieves the actor's goals, newest first.
func (r *PostgresRepository) ListByActor(ctx context.Context, actorID string) ([]domain.Goal, error) {
	var records []entities.Goal
	if err := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list goals",
			err,
			"goal-list-db-001",
		)
	}

	goals := make([]domain.Goal, 0, len(records))
	for _, record := range records {
		goals = append(goals, *mapGoalFromEntity(&record))
	}
	return goals, nil
}

// Update persists changes to a goal.
func (r *PostgresRepository) Update(ctx context.Context, g *domain.Goal) error {
	updates := map[string]interface{}{
		"title":       g.Title,
		"description": g.Description,
		"progress":    g.Progress,
		"updated_at":  g.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Goal{}).
		Where("public_id = ?", g.PublicID).
		Updates(updates).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update goal",
			err,
			"goal-update-db-001",
		)
	}
	return nil
}

func mapGoalToEntity(g *domain.Goal) *entities.Goal {
	return &entities.Goal{
		ID:          g.ID,
		PublicID:    g.PublicID,
		ActorID:     g.ActorID,
		Title:       g.Title,
		Description: g.Description,
		Progress:    g.Progress,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func mapGoalFromEntity(entity *entities.Goal) *domain.Goal {
	return &domain.Goal{
		ID:          entity.ID,
		PublicID:    entity.PublicID,
		ActorID:     entity.ActorID,
		Title:       entity.Title,
		Description: entity.Description,
		Progress:    entity.Progress,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}
