package wizard

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/internal/models"
)

var preResultIDs = []StepID{
	StepProfileBasic,
	StepProfileGoals,
	StepProfileRisk,
	StepInvestments,
	StepProcessing,
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	require.Len(t, cat, 10)
	assert.Equal(t, StepProfileBasic, cat[0].ID)
	assert.Equal(t, StepResultsActionPlan, cat[9].ID)

	cat[0].Title = "changed"
	assert.Equal(t, "Basic Info", Catalog()[0].Title)

	seen := map[StepID]bool{}
	for _, s := range cat {
		assert.False(t, seen[s.ID], "duplicate step id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestPreResultStepCount(t *testing.T) {
	assert.Equal(t, 5, PreResultStepCount())
	assert.Equal(t, StepResultsOverview, Catalog()[PreResultStepCount()].ID)
}

func TestTransitionTableCoversCatalog(t *testing.T) {
	for _, s := range catalog {
		_, ok := transitions[s.ID]
		assert.True(t, ok, "no transition for %s", s.ID)
	}
	assert.Equal(t, gateValidateProfile, transitionFor(StepProfileRisk).gate)
	assert.Equal(t, gateSubmit, transitionFor(StepInvestments).gate)
	assert.Equal(t, gateTransient, transitionFor(StepProcessing).gate)
	assert.Equal(t, StepResultsOverview, transitionFor(StepInvestments).onSuccess)
}

func TestAvailableSteps_NoResult(t *testing.T) {
	steps := AvailableSteps(nil)
	assert.Len(t, steps, PreResultStepCount())
	assert.Equal(t, preResultIDs, stepIDs(steps))
	assert.Empty(t, ResultTabs(nil))
}

func TestAvailableSteps_AllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		portfolio := mask&1 != 0
		comprehensive := mask&2 != 0
		recommendations := mask&4 != 0
		nextSteps := mask&8 != 0

		name := fmt.Sprintf("p=%t c=%t r=%t n=%t", portfolio, comprehensive, recommendations, nextSteps)
		t.Run(name, func(t *testing.T) {
			want := append([]StepID{}, preResultIDs...)
			want = append(want, StepResultsOverview)
			if portfolio {
				want = append(want, StepResultsPortfolio)
			}
			if comprehensive {
				want = append(want, StepResultsComprehensive)
			}
			if recommendations {
				want = append(want, StepResultsRecommendations)
			}
			if nextSteps {
				want = append(want, StepResultsActionPlan)
			}

			got := AvailableSteps(resultWith(portfolio, comprehensive, recommendations, nextSteps))
			assert.Equal(t, want, stepIDs(got))
		})
	}
}

func TestAvailableSteps_AbsentSections(t *testing.T) {
	overviewOnly := append(append([]StepID{}, preResultIDs...), StepResultsOverview)

	r := &models.GoalPlanningResult{
		PortfolioAnalysis: json.RawMessage(`null`),
		Recommendations:   json.RawMessage(` `),
		NextSteps:         json.RawMessage(`[]`),
	}
	assert.Equal(t, overviewOnly, stepIDs(AvailableSteps(r)))

	for _, empty := range []string{`""`, `false`, `0`, `[]`, `{}`} {
		r := &models.GoalPlanningResult{
			PortfolioAnalysis:            json.RawMessage(empty),
			ComprehensiveRecommendations: json.RawMessage(empty),
			Recommendations:              json.RawMessage(empty),
			NextSteps:                    json.RawMessage(empty),
		}
		assert.Equal(t, overviewOnly, stepIDs(AvailableSteps(r)), "sections set to %s", empty)
	}

	r = &models.GoalPlanningResult{NextSteps: json.RawMessage(`"call your advisor"`)}
	assert.Equal(t, overviewOnly, stepIDs(AvailableSteps(r)))
}

func TestAvailableSteps_DecodedFromJSON(t *testing.T) {
	var r models.GoalPlanningResult
	require.NoError(t, json.Unmarshal([]byte(`{
		"risk_assessment": {"risk_score": 40},
		"comprehensive_recommendations": {"goals": []},
		"next_steps": ["Review insurance"]
	}`), &r))

	assert.Equal(t, []string{"overview", "comprehensive", "action-plan"}, ResultTabs(&r))
}
