package responses

import (
	"time"

	"lifenav-server/navigator-api/internal/domain/chat"
	"lifenav-server/navigator-api/internal/domain/conversation"
	"lifenav-server/navigator-api/internal/domain/decision"
	"lifenav-server/navigator-api/internal/domain/goal"
	"lifenav-server/navigator-api/internal/domain/insight"
)

// ChatPayload is returned from the chat endpoint. The reply travels under
// the "message" key, mirroring the request body.
type ChatPayload struct {
	Reply          string `json:"message"`
	ConversationID string `json:"conversationId"`
}

// FromChatResult maps a chat result to its payload.
func FromChatResult(result *chat.Result) ChatPayload {
	return ChatPayload{
		Reply:          result.Reply,
		ConversationID: result.ConversationID,
	}
}

// MessagePayload is one conversational turn.
type MessagePayload struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Sequence  int       `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

// MessagesPayload wraps a conversation's history.
type MessagesPayload struct {
	ConversationID string           `json:"conversationId"`
	Data           []MessagePayload `json:"data"`
}

// FromMessages maps conversation history to its payload.
func FromMessages(conversationID string, messages []conversation.Message) MessagesPayload {
	data := make([]MessagePayload, 0, len(messages))
	for _, message := range messages {
		data = append(data, MessagePayload{
			ID:        message.PublicID,
			Role:      string(message.Role),
			Content:   message.Content,
			Sequence:  message.Sequence,
			CreatedAt: message.CreatedAt,
		})
	}
	return MessagesPayload{ConversationID: conversationID, Data: data}
}

// GoalPayload is one goal.
type GoalPayload struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GoalsPayload wraps a goal listing.
type GoalsPayload struct {
	Data []GoalPayload `json:"data"`
}

// FromGoal maps a goal to its payload.
func FromGoal(g *goal.Goal) GoalPayload {
	return GoalPayload{
		ID:          g.PublicID,
		Title:       g.Title,
		Description: g.Description,
		Progress:    g.Progress,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// FromGoals maps a goal listing to its payload.
func FromGoals(goals []goal.Goal) GoalsPayload {
	data := make([]GoalPayload, 0, len(goals))
	for i := range goals {
		data = append(data, FromGoal(&goals[i]))
	}
	return GoalsPayload{Data: data}
}

// DecisionPayload is one persisted decision analysis.
type DecisionPayload struct {
	ID        string            `json:"id"`
	Context   string            `json:"context"`
	OptionA   string            `json:"optionA"`
	OptionB   string            `json:"optionB"`
	Analysis  decision.Analysis `json:"analysis"`
	CreatedAt time.Time         `json:"created_at"`
}

// DecisionsPayload wraps a decision listing.
type DecisionsPayload struct {
	Data []DecisionPayload `json:"data"`
}

// FromDecision maps a decision to its payload.
func FromDecision(dec *decision.Decision) DecisionPayload {
	return DecisionPayload{
		ID:        dec.PublicID,
		Context:   dec.Context,
		OptionA:   dec.OptionA,
		OptionB:   dec.OptionB,
		Analysis:  dec.Analysis,
		CreatedAt: dec.CreatedAt,
	}
}

// FromDecisions maps a decision listing to its payload.
func FromDecisions(decisions []decision.Decision) DecisionsPayload {
	data := make([]DecisionPayload, 0, len(decisions))
	for i := range decisions {
		data = append(data, FromDecision(&decisions[i]))
	}
	return DecisionsPayload{Data: data}
}

// MetricsPayload is the actor's latest wellbeing reading.
type MetricsPayload struct {
	Productivity    int       `json:"productivity"`
	DecisionQuality int       `json:"decisionQuality"`
	StressLevel     int       `json:"stressLevel"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// FromSnapshot maps a metrics snapshot to its payload.
func FromSnapshot(snapshot *insight.Snapshot) MetricsPayload {
	return MetricsPayload{
		Productivity:    snapshot.Productivity,
		DecisionQuality: snapshot.DecisionQuality,
		StressLevel:     snapshot.StressLevel,
		RecordedAt:      snapshot.RecordedAt,
	}
}
