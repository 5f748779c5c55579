// Package conversation provides PostgreSQL persistence for conversations.
package conversation

import (
	"context"

	"gorm.io/gorm"

	domain "lifenav-server/navigator-api/internal/domain/conversation"
	"lifenav-server/navigator-api/internal/infrastructure/database/entities"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// PostgresRepository provides persistence for conversation metadata.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new conversation record.
func (r *PostgresRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	entity := mapConversationToEntity(conv)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation",
			err,
			"conversation-create-db-001",
		)
	}
	conv.ID = entity.ID
	conv.CreatedAt = entity.CreatedAt
	conv.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByPublicID fetches a conversation by public ID.
func (r *PostgresRepository) FindByPublicID(ctx context.Context, publicID string) (*domain.Conversation, error) {
	var entity entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&entity).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				"conversation not found",
				err,
				"conversation-find-notfound-001",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find conversation",
			err,
			"conversation-find-db-001",
		)
	}
	return mapConversationFromEntity(&entity), nil
}

// GetOrCreate resolves a conversation by public ID, or persists fresh when
// no ID was requested.
func (r *PostgresRepository) GetOrCreate(ctx context.Context, publicID string, fresh *domain.Conversation) (*domain.Conversation, bool, error) {
	if publicID != "" {
		conv, err := r.FindByPublicID(ctx, publicID)
		if err != nil {
			return nil, false, err
		}
		return conv, false, nil
	}
	if err := r.Create(ctx, fresh); err != nil {
		return nil, false, err
	}
	return fresh, true, nil
}

func mapConversationToEntity(conv *domain.Conversation) *entities.Conversation {
	return &entities.Conversation{
		ID:        conv.ID,
		PublicID:  conv.PublicID,
		ActorID:   conv.ActorID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

func mapConversationFromEntity(entity *entities.Conversation) *domain.Conversation {
	return &domain.Conversation{
		ID:        entity.ID,
		PublicID:  entity.PublicID,
		ActorID:   entity.ActorID,
		Title:     entity.Title,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}
