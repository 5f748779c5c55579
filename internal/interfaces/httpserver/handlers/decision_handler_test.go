package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/decision"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/handlers"
	"lifenav-server/navigator-api/internal/interfaces/httpserver/middleware"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// MockDecisionService is a mock implementation of decision.Service for testing.
type MockDecisionService struct {
	AnalyzeFunc func(ctx context.Context, actorID string, params decision.AnalyzeParams) (*decision.Decision, error)
	ListFunc    func(ctx context.Context, actorID string) ([]decision.Decision, error)
}

func (m *MockDecisionService) Analyze(ctx context.Context, actorID string, params decision.AnalyzeParams) (*decision.Decision, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, actorID, params)
	}
	return nil, nil
}

func (m *MockDecisionService) List(ctx context.Context, actorID string) ([]decision.Decision, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, actorID)
	}
	return nil, nil
}

func setupDecisionTestRouter(handler *handlers.DecisionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Actor("default-user"))
	api := r.Group("/api")
	{
		api.POST("/decisions/analyze", handler.Analyze)
		api.GET("/decisions", handler.List)
	}
	return r
}

func TestDecisionHandler_Analyze(t *testing.T) {
	mockService := &MockDecisionService{
		AnalyzeFunc: func(ctx context.Context, actorID string, params decision.AnalyzeParams) (*decision.Decision, error) {
			if params.OptionA != "Move abroad" {
				t.Errorf("Unexpected optionA: %q", params.OptionA)
			}
			return &decision.Decision{
				PublicID: "dec_1",
				Context:  params.Context,
				OptionA:  params.OptionA,
				OptionB:  params.OptionB,
				Analysis: decision.FallbackAnalysis(params.OptionA, params.OptionB),
			}, nil
		},
	}

	handler := handlers.NewDecisionHandler(mockService, zerolog.Nop())
	router := setupDecisionTestRouter(handler)

	body := bytes.NewBufferString(`{"context":"Big life choice","optionA":"Move abroad","optionB":"Stay home"}`)
	req, _ := http.NewRequest("POST", "/api/decisions/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		ID       string `json:"id"`
		Analysis struct {
			Factors    []map[string]interface{} `json:"factors"`
			Confidence int                      `json:"confidence"`
		} `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.ID != "dec_1" {
		t.Errorf("Unexpected decision id: %q", response.ID)
	}
	if len(response.Analysis.Factors) != 2 {
		t.Errorf("Expected 2 factors in payload, got %d", len(response.Analysis.Factors))
	}
}

func TestDecisionHandler_Analyze_MissingFields(t *testing.T) {
	mockService := &MockDecisionService{
		AnalyzeFunc: func(ctx context.Context, actorID string, params decision.AnalyzeParams) (*decision.Decision, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation, "missing required fields: optionB", nil, "decision-missing-fields")
		},
	}

	handler := handlers.NewDecisionHandler(mockService, zerolog.Nop())
	router := setupDecisionTestRouter(handler)

	body := bytes.NewBufferString(`{"context":"c","optionA":"a"}`)
	req, _ := http.NewRequest("POST", "/api/decisions/analyze", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
}

func TestDecisionHandler_List(t *testing.T) {
	mockService := &MockDecisionService{
		ListFunc: func(ctx context.Context, actorID string) ([]decision.Decision, error) {
			return []decision.Decision{
				{PublicID: "dec_2"},
				{PublicID: "dec_1"},
			}, nil
		},
	}

	handler := handlers.NewDecisionHandler(mockService, zerolog.Nop())
	router := setupDecisionTestRouter(handler)

	req, _ := http.NewRequest("GET", "/api/decisions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Data) != 2 || response.Data[0].ID != "dec_2" {
		t.Errorf("Unexpected listing: %+v", response.Data)
	}
}
