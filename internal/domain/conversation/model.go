// Package conversation defines chat thread entities and history assembly.
package conversation

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole indicates who authored a message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// titleLimit bounds the derived conversation title length.
const titleLimit = 50

// Conversation represents a logical chat thread.
type Conversation struct {
	ID       uint    `json:"-"`
	PublicID string  `json:"id"`
	ActorID  string  `json:"-"`
	Title    *string `json:"title,omitempty"`

	Messages []Message `json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message contains one persisted conversational turn. Messages are
// append-only; insertion order is chronological order.
type Message struct {
	ID             uint        `json:"-"`
	ConversationID uint        `json:"-"`
	PublicID       string      `json:"id"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
	Sequence       int         `json:"sequence"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewPublicID generates a conversation public identifier.
func NewPublicID() string {
	return "conv_" + uuid.NewString()
}

// NewMessagePublicID generates a message public identifier.
func NewMessagePublicID() string {
	return "msg_" + uuid.NewString()
}

// NewConversation creates a conversation owned by the given actor.
func NewConversation(publicID, actorID string, title *string) *Conversation {
	now := time.Now()
	return &Conversation{
		PublicID:  publicID,
		ActorID:   actorID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewMessage creates a message for the given conversation.
func NewMessage(publicID string, conversationID uint, role MessageRole, content string) *Message {
	return &Message{
		PublicID:       publicID,
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      time.Now(),
	}
}

// TitleFromMessage derives a conversation title from its opening message:
// the first 50 characters followed by an ellipsis marker.
func TitleFromMessage(message string) string {
	runes := []rune(message)
	if len(runes) > titleLimit {
		runes = runes[:titleLimit]
	}
	return string(runes) + "..."
}
