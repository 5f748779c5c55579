package platformerrors

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	underlying := errors.New("connection refused")
	err := NewError(context.Background(), LayerRepository, ErrorTypeDatabaseError,
		"failed to create goal", underlying, "goal-create-db-001")

	require.NotNil(t, err)
	assert.Equal(t, "goal-create-db-001", err.UUID)
	assert.Equal(t, ErrorTypeDatabaseError, err.Type)
	assert.Equal(t, LayerRepository, err.Layer)
	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "failed to create goal")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestNewErrorWithContext(t *testing.T) {
	err := NewErrorWithContext(context.Background(), LayerDomain, ErrorTypeValidation,
		"missing required fields", nil, "decision-validate-001",
		map[string]any{"missing": []string{"optionB"}})

	require.NotNil(t, err)
	assert.Equal(t, []string{"optionB"}, err.Context["missing"])
}

func TestNewError_RequestIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), "requestID", "req-123") //nolint:staticcheck
	err := NewError(ctx, LayerHandler, ErrorTypeInternal, "boom", nil, "")

	assert.Equal(t, "req-123", err.RequestID)
}

func TestIsErrorType(t *testing.T) {
	capacity := NewError(context.Background(), LayerInfrastructure,
		ErrorTypeCapacityExhausted, "model capacity exhausted", nil, "genai-capacity")
	wrapped := NewError(context.Background(), LayerDomain,
		ErrorTypeCapacityExhausted, "chat completion degraded", capacity, "chat-capacity")

	assert.True(t, IsErrorType(capacity, ErrorTypeCapacityExhausted))
	assert.True(t, IsErrorType(wrapped, ErrorTypeCapacityExhausted))
	assert.False(t, IsErrorType(capacity, ErrorTypeValidation))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeCapacityExhausted))
	assert.False(t, IsErrorType(nil, ErrorTypeCapacityExhausted))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		status    int
	}{
		{"not found", ErrorTypeNotFound, http.StatusNotFound},
		{"validation", ErrorTypeValidation, http.StatusBadRequest},
		{"capacity exhausted", ErrorTypeCapacityExhausted, http.StatusServiceUnavailable},
		{"external", ErrorTypeExternal, http.StatusBadGateway},
		{"database", ErrorTypeDatabaseError, http.StatusInternalServerError},
		{"internal", ErrorTypeInternal, http.StatusInternalServerError},
		{"unknown", ErrorType("WHATEVER"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, ErrorTypeToHTTPStatus(tt.errorType))
		})
	}
}

func TestAsError(t *testing.T) {
	assert.Nil(t, AsError(context.Background(), LayerDomain, nil, "nothing"))

	inner := NewError(context.Background(), LayerRepository, ErrorTypeNotFound,
		"conversation not found", nil, "conversation-find-001")
	outer := AsError(context.Background(), LayerDomain, inner, "load history")

	require.NotNil(t, outer)
	assert.Equal(t, ErrorTypeNotFound, outer.Type)
	assert.Equal(t, "conversation-find-001", outer.UUID)
}
