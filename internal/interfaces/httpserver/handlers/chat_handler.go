package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/chat"
	"lifenav-server/navigator-api/internal/infrastructure/metrics"
	"lifenav-server/navigator-api/internal/infrastructure/observability"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/middleware"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/requests"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/responses"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// ChatHandler exposes HTTP entrypoints for chat and conversation history.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req requests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid chat request body", "chat-bind-001")
		return
	}

	requested := ""
	if req.ConversationID != nil {
		requested = *req.ConversationID
	}
	ctx, span := observability.StartChatSpan(c.Request.Context(), requested, requested == "")
	defer span.End()

	result, err := h.service.HandleChat(ctx, middleware.ActorID(c), chat.Params{
		Message:        req.Message,
		ConversationID: req.ConversationID,
	})
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to handle chat message")
		return
	}
	if result.Degraded {
		observability.AddDegradedEvent(span, metrics.FlowChat)
	}

	c.JSON(http.StatusOK, responses.FromChatResult(result))
}

// ListMessages handles GET /api/conversations/:conversation_id/messages.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	conversationID := c.Param("conversation_id")

	messages, err := h.service.ListMessages(c.Request.Context(), middleware.ActorID(c), conversationID)
	if err != nil {
		responses.HandleError(c, err, "failed to list conversation messages")
		return
	}

	c.JSON(http.StatusOK, responses.FromMessages(conversationID, messages))
}
