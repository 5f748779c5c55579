package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/decision"
	"lifenav-server/navigator-api/internal/infrastructure/metrics"
	"lifenav-server/navigator-api/internal/infrastructure/observability"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/middleware"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/requests"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/responses"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// DecisionHandler exposes HTTP entrypoints for decision analysis.
type DecisionHandler struct {
	service decision.Service
	log     zerolog.Logger
}

// NewDecisionHandler constructs the handler.
func NewDecisionHandler(service decision.Service, log zerolog.Logger) *DecisionHandler {
	return &DecisionHandler{
		service: service,
		log:     log.With().Str("handler", "decision").Logger(),
	}
}

// Analyze handles POST /api/decisions/analyze.
func (h *DecisionHandler) Analyze(c *gin.Context) {
	var req requests.AnalyzeDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid decision request body", "decision-bind-001")
		return
	}

	ctx, span := observability.StartAnalysisSpan(c.Request.Context(), "")
	defer span.End()

	dec, err := h.service.Analyze(ctx, middleware.ActorID(c), decision.AnalyzeParams{
		Context: req.Context,
		OptionA: req.OptionA,
		OptionB: req.OptionB,
	})
	if err != nil {
		observability.RecordError(span, err)
		responses.HandleError(c, err, "failed to analyze decision")
		return
	}
	if dec.Degraded {
		observability.AddDegradedEvent(span, metrics.FlowDecision)
	}

	c.JSON(http.StatusOK, responses.FromDecision(dec))
}

// List handles GET /api/decisions.
func (h *DecisionHandler) List(c *gin.Context) {
	decisions, err := h.service.List(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		responses.HandleError(c, err, "failed to list decisions")
		return
	}

	c.JSON(http.StatusOK, responses.FromDecisions(decisions))
}
