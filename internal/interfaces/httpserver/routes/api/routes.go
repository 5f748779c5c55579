// Package api registers the /api route group.
package api

import (
	"github.com/gin-gonic/gin"

	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates /api route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the API route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all routes under the /api prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/api")
	registerChatRoutes(group, r.handlers.Chat)
	registerGoalRoutes(group, r.handlers.Goal)
	registerDecisionRoutes(group, r.handlers.Decision)
	registerInsightRoutes(group, r.handlers.Insight)
}
