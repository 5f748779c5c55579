package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/insight"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/middleware"
)

// MockInsightService is a mock implementation of insight.Service for testing.
type MockInsightService struct {
	LatestFunc func(ctx context.Context, actorID string) (*insight.Snapshot, bool, error)
}

func (m *MockInsightService) Latest(ctx context.Context, actorID string) (*insight.Snapshot, bool, error) {
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx, actorID)
	}
	return nil, false, nil
}

func setupInsightTestRouter(handler *handlers.InsightHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Actor("default-user"))
	r.GET("/api/metrics", handler.GetMetrics)
	return r
}

func TestInsightHandler_GetMetrics(t *testing.T) {
	mockService := &MockInsightService{
		LatestFunc: func(ctx context.Context, actorID string) (*insight.Snapshot, bool, error) {
			if actorID != "default-user" {
				t.Errorf("Expected fallback actor, got %q", actorID)
			}
			return &insight.Snapshot{
				ActorID:         actorID,
				Productivity:    insight.DefaultProductivity,
				DecisionQuality: insight.DefaultDecisionQuality,
				StressLevel:     insight.DefaultStressLevel,
				RecordedAt:      time.Now(),
			}, true, nil
		},
	}

	handler := handlers.NewInsightHandler(mockService, zerolog.Nop())
	router := setupInsightTestRouter(handler)

	req, _ := http.NewRequest("GET", "/api/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["productivity"] != 75.0 {
		t.Errorf("Expected productivity 75, got %v", response["productivity"])
	}
	if response["decisionQuality"] != 68.0 {
		t.Errorf("Expected decisionQuality 68, got %v", response["decisionQuality"])
	}
	if response["stressLevel"] != 35.0 {
		t.Errorf("Expected stressLevel 35, got %v", response["stressLevel"])
	}
}
