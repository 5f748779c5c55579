package insight

import (
	"context"

	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/infrastructure/metrics"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// Service reads wellbeing metrics, seeding defaults on first access.
type Service interface {
	// Latest returns the actor's most recent snapshot. When none exists a
	// default snapshot is persisted and returned; the boolean reports
	// whether seeding happened on this call.
	Latest(ctx context.Context, actorID string) (*Snapshot, bool, error)
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	snapshots Repository
	logger    zerolog.Logger
}

// NewService creates an insight service.
func NewService(snapshots Repository, logger zerolog.Logger) *ServiceImpl {
	return &ServiceImpl{
		snapshots: snapshots,
		logger:    logger.With().Str("component", "insight_service").Logger(),
	}
}

// Latest implements the get-or-seed read path. Seeding is idempotent from
// the caller's point of view: a second call returns the stored snapshot.
func (s *ServiceImpl) Latest(ctx context.Context, actorID string) (*Snapshot, bool, error) {
	snapshot, err := s.snapshots.FindLatestByActor(ctx, actorID)
	if err == nil {
		return snapshot, false, nil
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return nil, false, err
	}

	seeded := NewDefaultSnapshot(actorID)
	if err := s.snapshots.Create(ctx, seeded); err != nil {
		return nil, false, err
	}
	metrics.RecordSnapshotSeeded()
	s.logger.Info().Str("actor_id", actorID).Msg("seeded default metrics snapshot")
	return seeded, true, nil
}
