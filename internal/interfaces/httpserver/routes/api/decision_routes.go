package api

import (
	"github.com/gin-gonic/gin"

	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
)

func registerDecisionRoutes(group *gin.RouterGroup, handler *handlers.DecisionHandler) {
	group.POST("/decisions/analyze", handler.Analyze)
	group.GET("/decisions", handler.List)
}
