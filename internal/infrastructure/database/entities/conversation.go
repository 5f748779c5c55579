package entities

import (
	"time"
)

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// Conversation represents the persisted conversation record.
type Conversation struct {
	ID        uint    `gorm:"primaryKey"`
	PublicID  string  `gorm:"uniqueIndex;size:64"`
	ActorID   string  `gorm:"size:128;index:idx_conversation_actor"`
	Title     *string `gorm:"size:256"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Messages []Message `gorm:"foreignKey:ConversationID"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// Message represents one persisted conversational turn.
type Message struct {
	ID             uint          `gorm:"primaryKey"`
	PublicID       string        `gorm:"uniqueIndex;size:64"`
	ConversationID uint          `gorm:"index:idx_message_conversation"`
	Conversation   *Conversation `gorm:"foreignKey:ConversationID"`
	Role           string        `gorm:"size:16"`
	Content        string        `gorm:"type:text"`
	Sequence       int           `gorm:"default:0;index:idx_message_conversation"`
	CreatedAt      time.Time
}
