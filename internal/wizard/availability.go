package wizard

import "goal-planner/internal/models"

// AvailableSteps returns the navigable steps, in catalog order. Without a
// result only the pre-result steps are available; with one, overview is
// always added and every other result step only when its section is present.
func AvailableSteps(result *models.GoalPlanningResult) []StepDescriptor {
	steps := make([]StepDescriptor, 0, len(catalog))
	for _, s := range catalog {
		if s.MainStep != PhaseResults {
			steps = append(steps, s)
			continue
		}
		if result != nil && resultStepAvailable(s.ID, result) {
			steps = append(steps, s)
		}
	}
	return steps
}

func resultStepAvailable(id StepID, result *models.GoalPlanningResult) bool {
	switch id {
	case StepResultsOverview:
		return true
	case StepResultsPortfolio:
		return result.HasPortfolioAnalysis()
	case StepResultsComprehensive:
		return result.HasComprehensiveRecommendations()
	case StepResultsRecommendations:
		return result.HasRecommendations()
	case StepResultsActionPlan:
		return result.HasNextSteps()
	default:
		return false
	}
}

// ResultTabs lists the sub-step names of the available result steps, the
// tabs a dashboard renders for result.
func ResultTabs(result *models.GoalPlanningResult) []string {
	var tabs []string
	for _, s := range AvailableSteps(result) {
		if s.MainStep == PhaseResults {
			tabs = append(tabs, s.SubStep)
		}
	}
	return tabs
}

func indexOf(steps []StepDescriptor, id StepID) int {
	for i, s := range steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}
