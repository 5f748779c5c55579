package conversation

import "context"

// Repository exposes CRUD operations for conversation metadata.
type Repository interface {
	Create(ctx context.Context, conversation *Conversation) error
	FindByPublicID(ctx context.Context, publicID string) (*Conversation, error)
	// GetOrCreate returns the conversation with publicID, or persists fresh
	// when publicID is empty. The boolean reports whether a new record was
	// created, so callers and tests can tell which branch ran.
	GetOrCreate(ctx context.Context, publicID string, fresh *Conversation) (*Conversation, bool, error)
}

// MessageRepository persists individual conversation messages.
type MessageRepository interface {
	// Append stores the message at the end of its conversation, assigning
	// the next sequence number.
	Append(ctx context.Context, message *Message) error
	// ListByConversationID returns all messages in sequence order.
	ListByConversationID(ctx context.Context, conversationID uint) ([]Message, error)
}
