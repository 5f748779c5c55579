package api

import (
	"github.com/gin-gonic/gin"

	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
)

func registerInsightRoutes(group *gin.RouterGroup, handler *handlers.InsightHandler) {
	group.GET("/metrics", handler.GetMetrics)
}
