package decision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"lifenav-server/navigator-api/internal/domain/genai"
	"lifenav-server/navigator-api/internal/infrastructure/metrics"
	"lifenav-server/navigator-api/internal/utils/platformerrors"
)

// analysisInstruction frames the structured-output model call.
const analysisInstruction = "You are a decision analysis assistant. " +
	"Given a decision context and two options, produce a balanced, structured comparison. " +
	"Score each option per factor from 1 to 10, weight each factor by importance from 1 to 10, " +
	"grade the risk of each option as Low, Medium, or High, " +
	"and finish with a clear recommendation and a 1 to 10 confidence rating. " +
	"Be honest about uncertainty and do not favor either option without reasons."

// AnalyzeParams carries one analysis request.
type AnalyzeParams struct {
	Context string
	OptionA string
	OptionB string
}

// Service analyzes decisions and lists past analyses.
type Service interface {
	Analyze(ctx context.Context, actorID string, params AnalyzeParams) (*Decision, error)
	List(ctx context.Context, actorID string) ([]Decision, error)
}

// ServiceImpl implements Service.
type ServiceImpl struct {
	decisions Repository
	model     genai.Client
	logger    zerolog.Logger
}

// NewService creates a decision service.
func NewService(decisions Repository, model genai.Client, logger zerolog.Logger) *ServiceImpl {
	return &ServiceImpl{
		decisions: decisions,
		model:     model,
		logger:    logger.With().Str("component", "decision_service").Logger(),
	}
}

// Analyze runs a structured analysis of a two-option decision and persists
// the result. Capacity exhaustion at the model yields the deterministic
// fallback analysis, persisted with the degraded marker set. Malformed model
// output is an upstream failure; nothing is persisted in that case.
func (s *ServiceImpl) Analyze(ctx context.Context, actorID string, params AnalyzeParams) (*Decision, error) {
	if err := validateParams(ctx, params); err != nil {
		return nil, err
	}

	analysis, degraded, err := s.runAnalysis(ctx, params)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dec := &Decision{
		PublicID:  NewPublicID(),
		ActorID:   actorID,
		Context:   params.Context,
		OptionA:   params.OptionA,
		OptionB:   params.OptionB,
		Analysis:  *analysis,
		Degraded:  degraded,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.decisions.Create(ctx, dec); err != nil {
		return nil, err
	}
	return dec, nil
}

// List returns the actor's persisted analyses, newest first.
func (s *ServiceImpl) List(ctx context.Context, actorID string) ([]Decision, error) {
	return s.decisions.ListByActor(ctx, actorID)
}

func (s *ServiceImpl) runAnalysis(ctx context.Context, params AnalyzeParams) (*Analysis, bool, error) {
	prompt := fmt.Sprintf(
		"Decision context:\n%s\n\nOption A: %s\nOption B: %s\n\nAnalyze this decision.",
		params.Context, params.OptionA, params.OptionB)

	start := time.Now()
	raw, err := s.model.GenerateText(ctx, genai.GenerateRequest{
		SystemInstruction: analysisInstruction,
		Contents:          []genai.Content{genai.NewTextContent(genai.RoleUser, prompt)},
		ResponseSchema:    AnalysisSchema(),
	})
	if err != nil {
		if genai.IsCapacityExhausted(err) {
			metrics.RecordModelCall(metrics.FlowDecision, metrics.OutcomeCapacityExhausted, time.Since(start))
			metrics.RecordFallback(metrics.FlowDecision)
			s.logger.Warn().Err(err).Msg("model capacity exhausted, serving fallback decision analysis")
			fallback := FallbackAnalysis(params.OptionA, params.OptionB)
			return &fallback, true, nil
		}
		metrics.RecordModelCall(metrics.FlowDecision, metrics.OutcomeError, time.Since(start))
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "decision analysis failed", err, "decision-analysis-failed")
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		metrics.RecordModelCall(metrics.FlowDecision, metrics.OutcomeError, time.Since(start))
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "decision analysis returned malformed output", err, "decision-analysis-malformed")
	}
	if err := analysis.Validate(); err != nil {
		metrics.RecordModelCall(metrics.FlowDecision, metrics.OutcomeError, time.Since(start))
		return nil, false, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "decision analysis violated its output contract", err, "decision-analysis-contract")
	}

	metrics.RecordModelCall(metrics.FlowDecision, metrics.OutcomeOK, time.Since(start))
	return &analysis, false, nil
}

func validateParams(ctx context.Context, params AnalyzeParams) error {
	missing := make([]string, 0, 3)
	if strings.TrimSpace(params.Context) == "" {
		missing = append(missing, "context")
	}
	if strings.TrimSpace(params.OptionA) == "" {
		missing = append(missing, "optionA")
	}
	if strings.TrimSpace(params.OptionB) == "" {
		missing = append(missing, "optionB")
	}
	if len(missing) == 0 {
		return nil
	}
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain,
		platformerrors.ErrorTypeValidation,
		fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")),
		nil, "decision-missing-fields", map[string]any{"fields": missing})
}
