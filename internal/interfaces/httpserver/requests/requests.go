// Package requests defines the inbound payload shapes for the navigator API.
package requests

// ChatRequest starts or continues a conversation.
type ChatRequest struct {
	Message        string  `json:"message"`
	ConversationID *string `json:"conversationId"`
}

// AnalyzeDecisionRequest asks for a structured two-option analysis.
type AnalyzeDecisionRequest struct {
	Context string `json:"context"`
	OptionA string `json:"optionA"`
	OptionB string `json:"optionB"`
}

// CreateGoalRequest creates a new goal.
type CreateGoalRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateGoalProgressRequest sets a goal's progress percentage. Progress is a
// pointer so an absent field binds as missing rather than zero, and a
// non-integer value fails to bind at all.
type UpdateGoalProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}
