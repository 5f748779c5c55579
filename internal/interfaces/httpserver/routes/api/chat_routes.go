package api

import (
	"github.com/gin-gonic/gin"

	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(group *gin.RouterGroup, handler *handlers.ChatHandler) {
	group.POST("/chat", handler.Chat)
	group.GET("/conversations/:conversation_id/messages", handler.ListMessages)
}
