// Package decision implements structured two-option decision analysis.
package decision

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RiskLevel grades the risk attached to choosing an option.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Decision is a persisted analysis of a two-option choice.
type Decision struct {
	ID       uint   `json:"-"`
	PublicID string `json:"id"`
	ActorID  string `json:"-"`

	Context  string   `json:"context"`
	OptionA  string   `json:"optionA"`
	OptionB  string   `json:"optionB"`
	Analysis Analysis `json:"analysis"`

	// Degraded marks analyses produced by the canned fallback rather than
	// the model. Internal only; it is not part of the API payload.
	Degraded bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Analysis is the structured output of one decision analysis.
type Analysis struct {
	Summary        string         `json:"summary" jsonschema:"description=Neutral one-paragraph summary of the decision"`
	Factors        []Factor       `json:"factors" jsonschema:"minItems=1,description=Factors relevant to the choice"`
	RiskAssessment RiskAssessment `json:"riskAssessment"`
	Recommendation string         `json:"recommendation" jsonschema:"description=Recommended course of action with reasoning"`
	Confidence     int            `json:"confidence" jsonschema:"minimum=1,maximum=10,description=Confidence in the recommendation from 1 to 10"`
}

// Factor scores both options along one dimension.
type Factor struct {
	Name         string `json:"name"`
	OptionAScore int    `json:"optionAScore" jsonschema:"minimum=1,maximum=10"`
	OptionBScore int    `json:"optionBScore" jsonschema:"minimum=1,maximum=10"`
	Weight       int    `json:"weight" jsonschema:"minimum=1,maximum=10,description=Importance of this factor from 1 to 10"`
	Reasoning    string `json:"reasoning"`
}

// RiskAssessment holds the per-option risk grades.
type RiskAssessment struct {
	OptionA Risk `json:"optionA"`
	OptionB Risk `json:"optionB"`
}

// Risk grades one option.
type Risk struct {
	Level       RiskLevel `json:"level" jsonschema:"enum=Low,enum=Medium,enum=High"`
	Description string    `json:"description"`
}

// NewPublicID generates a decision public identifier.
func NewPublicID() string {
	return "dec_" + uuid.NewString()
}

// Validate checks that a parsed analysis satisfies the structural contract.
// Model output that fails here is treated as an upstream failure.
func (a *Analysis) Validate() error {
	if a.Summary == "" {
		return fmt.Errorf("analysis summary is empty")
	}
	if len(a.Factors) == 0 {
		return fmt.Errorf("analysis has no factors")
	}
	for i, factor := range a.Factors {
		if factor.Name == "" {
			return fmt.Errorf("factor %d has no name", i)
		}
		if err := scoreInRange("optionAScore", factor.OptionAScore); err != nil {
			return fmt.Errorf("factor %q: %w", factor.Name, err)
		}
		if err := scoreInRange("optionBScore", factor.OptionBScore); err != nil {
			return fmt.Errorf("factor %q: %w", factor.Name, err)
		}
		if err := scoreInRange("weight", factor.Weight); err != nil {
			return fmt.Errorf("factor %q: %w", factor.Name, err)
		}
	}
	if err := a.RiskAssessment.OptionA.validate(); err != nil {
		return fmt.Errorf("optionA risk: %w", err)
	}
	if err := a.RiskAssessment.OptionB.validate(); err != nil {
		return fmt.Errorf("optionB risk: %w", err)
	}
	if a.Recommendation == "" {
		return fmt.Errorf("analysis recommendation is empty")
	}
	return scoreInRange("confidence", a.Confidence)
}

func (r Risk) validate() error {
	switch r.Level {
	case RiskLow, RiskMedium, RiskHigh:
		return nil
	default:
		return fmt.Errorf("unknown risk level %q", r.Level)
	}
}

func scoreInRange(field string, value int) error {
	if value < 1 || value > 10 {
		return fmt.Errorf("%s %d out of range [1,10]", field, value)
	}
	return nil
}

// FallbackAnalysis is the deterministic analysis served when the model
// backend has no capacity. Scores are intentionally neutral.
func FallbackAnalysis(optionA, optionB string) Analysis {
	return Analysis{
		Summary: fmt.Sprintf(
			"Automated analysis is temporarily unavailable, so this is a neutral placeholder comparing %q and %q.",
			optionA, optionB),
		Factors: []Factor{
			{
				Name:         "Cost",
				OptionAScore: 5,
				OptionBScore: 5,
				Weight:       8,
				Reasoning:    "Costs could not be evaluated automatically. Compare the financial impact of each option yourself.",
			},
			{
				Name:         "Time Investment",
				OptionAScore: 5,
				OptionBScore: 5,
				Weight:       7,
				Reasoning:    "Time demands could not be evaluated automatically. Estimate how much time each option requires.",
			},
		},
		RiskAssessment: RiskAssessment{
			OptionA: Risk{Level: RiskMedium, Description: "Manual analysis recommended."},
			OptionB: Risk{Level: RiskMedium, Description: "Manual analysis recommended."},
		},
		Recommendation: "The analysis service is temporarily unavailable. " +
			"List the pros and cons of each option, weigh them against your own priorities, " +
			"and consider discussing the choice with someone you trust before deciding.",
		Confidence: 3,
	}
}
