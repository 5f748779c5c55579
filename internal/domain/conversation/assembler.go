package conversation

import (
	"lifenav-server/navigator-api/internal/domain/genai"
)

// AssembleHistory maps stored messages onto the turn sequence the model
// client consumes. Assistant turns are re-tagged to the model role; user
// turns pass through unchanged. The mapping is pure: it preserves length
// and order, and an empty history yields an empty sequence.
func AssembleHistory(messages []Message) []genai.Content {
	contents := make([]genai.Content, 0, len(messages))
	for _, message := range messages {
		role := genai.RoleUser
		if message.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewTextContent(role, message.Content))
	}
	return contents
}
