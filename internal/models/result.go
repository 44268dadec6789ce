// internal/models/result.go
package models

import (
	"bytes"
	"encoding/json"
)

// GoalPlanningResult is the response envelope of the goal-planning service.
// Sections are kept raw so a section of unexpected shape never rejects the
// whole response; only their presence drives navigation.
type GoalPlanningResult struct {
	RiskAssessment               json.RawMessage `json:"risk_assessment,omitempty"`
	PortfolioAnalysis            json.RawMessage `json:"portfolio_analysis,omitempty"`
	ComprehensiveRecommendations json.RawMessage `json:"comprehensive_recommendations,omitempty"`
	Recommendations              json.RawMessage `json:"recommendations,omitempty"`
	NextSteps                    json.RawMessage `json:"next_steps,omitempty"`
	AgeSpecificAdvice            json.RawMessage `json:"age_specific_advice,omitempty"`
	HTML                         json.RawMessage `json:"html,omitempty"`
}

func (r *GoalPlanningResult) HasRiskAssessment() bool {
	return r != nil && present(r.RiskAssessment)
}

func (r *GoalPlanningResult) HasPortfolioAnalysis() bool {
	return r != nil && present(r.PortfolioAnalysis)
}

func (r *GoalPlanningResult) HasComprehensiveRecommendations() bool {
	return r != nil && present(r.ComprehensiveRecommendations)
}

func (r *GoalPlanningResult) HasRecommendations() bool {
	return r != nil && present(r.Recommendations)
}

// HasNextSteps reports a non-empty JSON array, whatever its elements.
func (r *GoalPlanningResult) HasNextSteps() bool {
	if r == nil {
		return false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(r.NextSteps, &items); err != nil {
		return false
	}
	return len(items) > 0
}

// HasLegacyMarkup reports whether the service answered with a pre-rendered
// page instead of structured sections.
func (r *GoalPlanningResult) HasLegacyMarkup() bool {
	return r.LegacyMarkup() != ""
}

// RiskAssessment is the typed view of the risk_assessment section.
type RiskAssessment struct {
	RiskScore           float64  `json:"risk_score"`
	RiskCategory        string   `json:"risk_category"`
	ContributingFactors []string `json:"contributing_factors"`
	Explanation         string   `json:"explanation"`
}

// PortfolioAnalysis is the typed view of the portfolio_analysis section.
type PortfolioAnalysis struct {
	DiversityScore    float64            `json:"diversity_score"`
	AssetCount        int                `json:"asset_count"`
	AssetAllocation   map[string]float64 `json:"asset_allocation"`
	RiskConcentration string             `json:"risk_concentration"`
	Summary           string             `json:"summary"`
}

// DecodeRiskAssessment returns nil when the section is absent or does not
// have the expected shape.
func (r *GoalPlanningResult) DecodeRiskAssessment() *RiskAssessment {
	if !r.HasRiskAssessment() {
		return nil
	}
	var ra RiskAssessment
	if err := json.Unmarshal(r.RiskAssessment, &ra); err != nil {
		return nil
	}
	return &ra
}

func (r *GoalPlanningResult) DecodePortfolioAnalysis() *PortfolioAnalysis {
	if !r.HasPortfolioAnalysis() {
		return nil
	}
	var pa PortfolioAnalysis
	if err := json.Unmarshal(r.PortfolioAnalysis, &pa); err != nil {
		return nil
	}
	return &pa
}

// DecodeNextSteps returns the string entries of next_steps. Entries of any
// other type are skipped; a section that is not an array yields nil.
func (r *GoalPlanningResult) DecodeNextSteps() []string {
	if r == nil {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(r.NextSteps, &items); err != nil {
		return nil
	}
	var steps []string
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil && s != "" {
			steps = append(steps, s)
		}
	}
	return steps
}

// DecodeAgeSpecificAdvice returns the advice text, or "" when the section is
// absent or not a string.
func (r *GoalPlanningResult) DecodeAgeSpecificAdvice() string {
	if r == nil {
		return ""
	}
	return decodeString(r.AgeSpecificAdvice)
}

// LegacyMarkup returns the pre-rendered page, or "".
func (r *GoalPlanningResult) LegacyMarkup() string {
	if r == nil {
		return ""
	}
	return decodeString(r.HTML)
}

func decodeString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// present treats null, false, 0, "", [] and {} as an absent section.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	var v interface{}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []interface{}:
		return len(x) > 0
	case map[string]interface{}:
		return len(x) > 0
	}
	return true
}
