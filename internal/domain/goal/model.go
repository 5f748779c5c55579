// Package goal tracks personal goals and their progress.
package goal

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a persisted personal goal with bounded progress.
type Goal struct {
	ID       uint   `json:"-"`
	PublicID string `json:"id"`
	ActorID  string `json:"-"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Progress is a percentage in [0,100].
	Progress int `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPublicID generates a goal public identifier.
func NewPublicID() string {
	return "goal_" + uuid.NewString()
}

// NewGoal creates a goal owned by the given actor with zero progress.
func NewGoal(publicID, actorID, title, description string) *Goal {
	now := time.Now()
	return &Goal{
		PublicID:    publicID,
		ActorID:     actorID,
		Title:       title,
		Description: description,
		Progress:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
