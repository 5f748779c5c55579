package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/insight"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/middleware"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/responses"
)

// InsightHandler exposes HTTP entrypoints for wellbeing metrics.
type InsightHandler struct {
	service insight.Service
	log     zerolog.Logger
}

// NewInsightHandler constructs the handler.
func NewInsightHandler(service insight.Service, log zerolog.Logger) *InsightHandler {
	return &InsightHandler{
		service: service,
		log:     log.With().Str("handler", "insight").Logger(),
	}
}

// GetMetrics handles GET /api/metrics.
func (h *InsightHandler) GetMetrics(c *gin.Context) {
	snapshot, seeded, err := h.service.Latest(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		responses.HandleError(c, err, "failed to get metrics")
		return
	}
	if seeded {
		h.log.Debug().Msg("metrics snapshot seeded on first read")
	}

	c.JSON(http.StatusOK, responses.FromSnapshot(snapshot))
}
