package entities

import "time"

// TableName specifies the table name for MetricsSnapshot.
func (MetricsSnapshot) TableName() string {
	return "metrics_snapshots"
}

// MetricsSnapshot represents one persisted wellbeing reading.
type MetricsSnapshot struct {
	ID              uint   `gorm:"primaryKey"`
	ActorID         string `gorm:"size:128;index:idx_snapshot_actor"`
	Productivity    int    `gorm:"default:0"`
	DecisionQuality int    `gorm:"default:0"`
	StressLevel     int    `gorm:"default:0"`
	RecordedAt      time.Time `gorm:"index:idx_snapshot_recorded"`
}
