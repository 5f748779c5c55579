package api

import (
	"github.com/gin-gonic/gin"

	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
)

func registerGoalRoutes(group *gin.RouterGroup, handler *handlers.GoalHandler) {
	group.POST("/goals", handler.Create)
	group.GET("/goals", handler.List)
	group.PATCH("/goals/:goal_id/progress", handler.UpdateProgress)
}
