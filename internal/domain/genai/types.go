// Package genai defines the contract for invoking the generative-text backend.
package genai

import (
	"context"

	"github.com/invopop/jsonschema"

	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// Turn roles understood by the model API. Stored assistant messages are
// re-tagged to RoleModel before they are sent upstream.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Client invokes the generative-text backend. Implementations classify
// upstream failures into typed errors so callers never inspect raw error
// text: capacity exhaustion (rate limiting, quota) is reported as
// platformerrors.ErrorTypeCapacityExhausted, anything else as
// platformerrors.ErrorTypeExternal.
type Client interface {
	// GenerateText sends the request and returns the model's text output.
	// When req.ResponseSchema is set the backend is constrained to emit
	// JSON conforming to that schema; the raw text is still returned and
	// parsing stays with the caller.
	GenerateText(ctx context.Context, req GenerateRequest) (string, error)
}

// GenerateRequest carries one model invocation.
type GenerateRequest struct {
	SystemInstruction string
	Contents          []Content
	// ResponseSchema switches the backend into schema-constrained JSON
	// output mode. Nil means plain text.
	ResponseSchema *jsonschema.Schema
}

// Content is a single role-tagged turn.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part holds one fragment of turn content.
type Part struct {
	Text string `json:"text"`
}

// NewTextContent builds a single-part text turn.
func NewTextContent(role, text string) Content {
	return Content{
		Role:  role,
		Parts: []Part{{Text: text}},
	}
}

// IsCapacityExhausted reports whether err is an upstream rate-limit or quota
// signal, the only failure kind with a defined degraded path.
func IsCapacityExhausted(err error) bool {
	return platformerrors.IsErrorType(err, platformerrors.ErrorTypeCapacityExhausted)
}
