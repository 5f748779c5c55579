// Package genai implements the model client against a Gemini-style REST API.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/invopop/jsonschema"
	"github.com/rs/zerolog"

	domain "lifenav-server/navigator-api/internal/domain/genai"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// Client implements the domain genai.Client interface.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
	logger     zerolog.Logger
}

// NewClient creates a Resty-backed model client.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
		apiKey: apiKey,
		model:  model,
		logger: logger.With().Str("component", "genai_client").Logger(),
	}
}

// generateContentRequest is the wire shape of one generation call.
type generateContentRequest struct {
	SystemInstruction *wireContent      `json:"system_instruction,omitempty"`
	Contents          []domain.Content  `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type wireContent struct {
	Parts []domain.Part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string             `json:"responseMimeType,omitempty"`
	ResponseSchema   *jsonschema.Schema `json:"responseSchema,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []domain.Part `json:"parts"`
			Role  string        `json:"role"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

type apiErrorResponse struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateText sends one generation call and returns the first candidate's
// text. Failures are classified into capacity exhaustion or external errors.
func (c *Client) GenerateText(ctx context.Context, req domain.GenerateRequest) (string, error) {
	if c.apiKey == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "model API key is not configured", nil, "genai-missing-key")
	}

	body := generateContentRequest{
		Contents: req.Contents,
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &wireContent{
			Parts: []domain.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.ResponseSchema != nil {
		body.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.ResponseSchema,
		}
	}

	var result generateContentResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "model request failed", err, "genai-transport")
	}

	if resp.IsError() {
		return "", c.classifyError(ctx, resp)
	}

	text := extractText(&result)
	if text == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal, "model returned no candidates", nil, "genai-empty-response")
	}
	return text, nil
}

// classifyError maps an upstream error response onto the typed taxonomy.
// Rate limiting and quota exhaustion become capacity errors; everything
// else is external.
func (c *Client) classifyError(ctx context.Context, resp *resty.Response) error {
	var parsed apiErrorResponse
	_ = json.Unmarshal(resp.Body(), &parsed)

	message := parsed.Error.Message
	if message == "" {
		message = resp.String()
	}

	if isCapacitySignal(resp.StatusCode(), parsed.Error.Status, message) {
		c.logger.Warn().
			Int("status_code", resp.StatusCode()).
			Str("api_status", parsed.Error.Status).
			Msg("model reported capacity exhaustion")
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeCapacityExhausted,
			fmt.Sprintf("model capacity exhausted: %s", message), nil, "genai-capacity")
	}

	return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal,
		fmt.Sprintf("model API error (%d): %s", resp.StatusCode(), message), nil, "genai-api-error")
}

func isCapacitySignal(statusCode int, apiStatus, message string) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	if apiStatus == "RESOURCE_EXHAUSTED" {
		return true
	}
	lowered := strings.ToLower(message)
	return strings.Contains(lowered, "quota") || strings.Contains(lowered, "rate limit")
}

func extractText(resp *generateContentResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// Ensure interface compliance.
var _ domain.Client = (*Client)(nil)
