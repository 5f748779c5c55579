// Package decision provides PostgreSQL persistence for decision analyses.
package decision

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	domain "lifenav-server/navigator-api/internal/domain/decision"
	"lifenav-server/navigator-api/internal/infrastructure/database/entities"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for decisions.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new decision record.
func (r *PostgresRepository) Create(ctx context.Context, dec *domain.Decision) error {
	entity, err := mapDecisionToEntity(dec)
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeInternal,
			"failed to map decision to entity",
			err,
			"decision-create-map-001",
		)
	}

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create decision",
			err,
			"decision-create-db-001",
		)
	}

	dec.ID = entity.ID
	dec.CreatedAt = entity.CreatedAt
	dec.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByPublicID fetches a decision by public ID.
func (r *PostgresRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Decision, error) {
	var entity entities.Decision
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"decision not found",
				err,
				"decision-find-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find decision",
			err,
			"decision-find-db-001",
		)
	}
	return mapDecisionFromEntity(ctx, &entity)
}

// ListByActor retrieves the actor's decisions, newest first.
func (r *PostgresRepository) ListByActor(ctx context.Context, actorID string) ([]domain.Decision, error) {
	var records []entities.Decision
	if err := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list decisions",
			err,
			"decision-list-db-001",
		)
	}

	decisions := make([]domain.Decision, 0, len(records))
	for _, record := range records {
		dec, err := mapDecisionFromEntity(ctx, &record)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, *dec)
	}
	return decisions, nil
}

func mapDecisionToEntity(dec *domain.Decision) (*entities.Decision, error) {
	analysis, err := json.Marshal(dec.Analysis)
	if err != nil {
		return nil, err
	}
	return &entities.Decision{
		ID:        dec.ID,
		PublicID:  dec.PublicID,
		ActorID:   dec.ActorID,
		Context:   dec.Context,
		OptionA:   dec.OptionA,
		OptionB:   dec.OptionB,
		Analysis:  datatypes.JSON(analysis),
		Degraded:  dec.Degraded,
		CreatedAt: dec.CreatedAt,
		UpdatedAt: dec.UpdatedAt,
	}, nil
}

func mapDecisionFromEntity(ctx context.Context, entity *entities.Decision) (*domain.Decision, error) {
	dec := &domain.Decision{
		ID:        entity.ID,
		PublicID:  entity.PublicID,
		ActorID:   entity.ActorID,
		Context:   entity.Context,
		OptionA:   entity.OptionA,
		OptionB:   entity.OptionB,
		Degraded:  entity.Degraded,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
	if len(entity.Analysis) > 0 {
		if err := json.Unmarshal(entity.Analysis, &dec.Analysis); err != nil {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal,
				"failed to unmarshal stored analysis",
				err,
				"decision-map-analysis-001",
			)
		}
	}
	return dec, nil
}
