package entities

import (
	"time"

	"gorm.io/datatypes"
)

// TableName specifies the table name for Decision.
func (Decision) TableName() string {
	return "decisions"
}

// Decision represents the persisted decision analysis record.
type Decision struct {
	ID       uint   `gorm:"primaryKey"`
	PublicID string `gorm:"uniqueIndex;size:64"`
	ActorID  string `gorm:"size:128;index:idx_decision_actor"`

	Context  string         `gorm:"type:text"`
	OptionA  string         `gorm:"type:text"`
	OptionB  string         `gorm:"type:text"`
	Analysis datatypes.JSON `gorm:"type:jsonb"`
	Degraded bool           `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
