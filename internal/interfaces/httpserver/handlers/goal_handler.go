package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/goal"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/middleware"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/requests"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/responses"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// GoalHandler exposes HTTP entrypoints for goal management.
type GoalHandler struct {
	service goal.Service
	log     zerolog.Logger
}

// NewGoalHandler constructs the handler.
func NewGoalHandler(service goal.Service, log zerolog.Logger) *GoalHandler {
	return &GoalHandler{
		service: service,
		log:     log.With().Str("handler", "goal").Logger(),
	}
}

// Create handles POST /api/goals.
func (h *GoalHandler) Create(c *gin.Context) {
	var req requests.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"invalid goal request body", "goal-bind-001")
		return
	}

	g, err := h.service.Create(c.Request.Context(), middleware.ActorID(c), goal.CreateParams{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create goal")
		return
	}

	c.JSON(http.StatusCreated, responses.FromGoal(g))
}

// List handles GET /api/goals.
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.service.List(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		responses.HandleError(c, err, "failed to list goals")
		return
	}

	c.JSON(http.StatusOK, responses.FromGoals(goals))
}

// UpdateProgress handles PATCH /api/goals/:goal_id/progress.
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	goalID := c.Param("goal_id")

	var req requests.UpdateGoalProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation,
			"progress must be an integer", "goal-progress-bind-001")
		return
	}

	g, err := h.service.UpdateProgress(c.Request.Context(), middleware.ActorID(c), goalID, *req.Progress)
	if err != nil {
		responses.HandleError(c, err, "failed to update goal progress")
		return
	}

	c.JSON(http.StatusOK, responses.FromGoal(g))
}
