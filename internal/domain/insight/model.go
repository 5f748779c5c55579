// Package insight serves wellbeing metrics snapshots with lazy seeding.
package insight

import "time"

// Baseline values used when an actor has no snapshot yet.
const (
	DefaultProductivity    = 75
	DefaultDecisionQuality = 68
	DefaultStressLevel     = 35
)

// Snapshot is one point-in-time wellbeing reading for an actor. All three
// readings are percentages in [0,100].
type Snapshot struct {
	ID      uint   `json:"-"`
	ActorID string `json:"-"`

	Productivity    int `json:"productivity"`
	DecisionQuality int `json:"decisionQuality"`
	StressLevel     int `json:"stressLevel"`

	RecordedAt time.Time `json:"recorded_at"`
}

// NewDefaultSnapshot builds the seed snapshot for an actor.
func NewDefaultSnapshot(actorID string) *Snapshot {
	return &Snapshot{
		ActorID:         actorID,
		Productivity:    DefaultProductivity,
		DecisionQuality: DefaultDecisionQuality,
		StressLevel:     DefaultStressLevel,
		RecordedAt:      time.Now(),
	}
}
