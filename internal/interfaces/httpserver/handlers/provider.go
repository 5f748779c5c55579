package handlers

import (
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/chat"
	"lifenav-server/navigator-api/internal/domain/decision"
	"lifenav-server/navigator-api/internal/domain/goal"
	"lifenav-server/navigator-api/internal/domain/insight"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat     *ChatHandler
	Decision *DecisionHandler
	Goal     *GoalHandler
	Insight  *InsightHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	chatService chat.Service,
	decisionService decision.Service,
	goalService goal.Service,
	insightService insight.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:     NewChatHandler(chatService, log),
		Decision: NewDecisionHandler(decisionService, log),
		Goal:     NewGoalHandler(goalService, log),
		Insight:  NewInsightHandler(insightService, log),
	}
}
