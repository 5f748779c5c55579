package entities

import "time"

// TableName specifies the table name for Goal.
func (Goal) TableName() string {
	return "goals"
}

// Goal represents the persisted goal record.
type Goal struct {
	ID          uint   `gorm:"primaryKey"`
	PublicID    string `gorm:"uniqueIndex;size:64"`
	ActorID     string `gorm:"size:128;index:idx_goal_actor"`
	Title       string `gorm:"size:256"`
	Description string `gorm:"type:text"`
	Progress    int    `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
