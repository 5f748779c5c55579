package conversation

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "lifenav-server/navigator-api/internal/domain/conversation"
	"lifenav-server/navigator-api/internal/infrastructure/database/entities"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// PostgresMessageRepository provides persistence for conversation messages.
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository constructs the repository.
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Append stores the message at the end of its conversation. The sequence
// number is assigned inside the transaction so concurrent appends to the
// same conversation cannot interleave.
func (r *PostgresMessageRepository) Append(ctx context.Context, message *domain.Message) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Message{}).
			Where("conversation_id = ?", message.ConversationID).
			Count(&count).Error; err != nil {
			return err
		}

		entity := mapMessageToEntity(message)
		entity.Sequence = int(count) + 1
		if err := tx.Create(entity).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Conversation{}).
			Where("id = ?", message.ConversationID).
			Update("updated_at", time.Now()).Error; err != nil {
			return err
		}

		message.ID = entity.ID
		message.Sequence = entity.Sequence
		message.CreatedAt = entity.CreatedAt
		return nil
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to append message",
			err,
			"message-append-db-001",
		)
	}
	return nil
}

// ListByConversationID retrieves all messages of a conversation in sequence
// order.
func (r *PostgresMessageRepository) ListByConversationID(ctx context.Context, conversationID uint) ([]domain.Message, error) {
	var records []entities.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sequence ASC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"message-list-db-001",
		)
	}

	messages := make([]domain.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, *mapMessageFromEntity(&record))
	}
	return messages, nil
}

func mapMessageToEntity(message *domain.Message) *entities.Message {
	return &entities.Message{
		ID:             message.ID,
		PublicID:       message.PublicID,
		ConversationID: message.ConversationID,
		Role:           string(message.Role),
		Content:        message.Content,
		Sequence:       message.Sequence,
		CreatedAt:      message.CreatedAt,
	}
}

func mapMessageFromEntity(entity *entities.Message) *domain.Message {
	return &domain.Message{
		ID:             entity.ID,
		PublicID:       entity.PublicID,
		ConversationID: entity.ConversationID,
		Role:           domain.MessageRole(entity.Role),
		Content:        entity.Content,
		Sequence:       entity.Sequence,
		CreatedAt:      entity.CreatedAt,
	}
}
