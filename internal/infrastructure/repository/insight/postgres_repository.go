// Package insight provides PostgreSQL persistence for metrics snapshots.
package insight

import (
	"context"

	"gorm.io/gorm"

	domain "lifenav-server/navigator-api/internal/domain/insight"
	"lifenav-server/navigator-api/internal/infrastructure/database/entities"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for metrics snapshots.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new snapshot record.
func (r *PostgresRepository) Create(ctx context.Context, snapshot *domain.Snapshot) error {
	entity := mapSnapshotToEntity(snapshot)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create metrics snapshot",
			err,
			"snapshot-create-db-001",
		)
	}
	snapshot.ID = entity.ID
	return nil
}

// FindLatestByActor fetches the actor's most recent snapshot.
func (r *PostgresRepository) FindLatestByActor(ctx context.Context, actorID string) (*domain.Snapshot, error) {
	var entity entities.MetricsSnapshot
	if err := r.db.WithContext(ctx).
		Where("actor_id = ?", actorID).
		Order("recorded_at DESC").
		First(&entity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"metrics snapshot not found",
				err,
				"snapshot-find-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find metrics snapshot",
			err,
			"snapshot-find-db-001",
		)
	}
	return mapSnapshotFromEntity(&entity), nil
}

func mapSnapshotToEntity(snapshot *domain.Snapshot) *entities.MetricsSnapshot {
	return &entities.MetricsSnapshot{
		ID:              snapshot.ID,
		ActorID:         snapshot.ActorID,
		Productivity:    snapshot.Productivity,
		DecisionQuality: snapshot.DecisionQuality,
		StressLevel:     snapshot.StressLevel,
		RecordedAt:      snapshot.RecordedAt,
	}
}

func mapSnapshotFromEntity(entity *entities.MetricsSnapshot) *domain.Snapshot {
	return &domain.Snapshot{
		ID:              entity.ID,
		ActorID:         entity.ActorID,
		Productivity:    entity.Productivity,
		DecisionQuality: entity.DecisionQuality,
		StressLevel:     entity.StressLevel,
		RecordedAt:      entity.RecordedAt,
	}
}
