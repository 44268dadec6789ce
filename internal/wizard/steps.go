// Package wizard holds the step catalog, the availability resolver and the
// controller that moves a user through the goal-planning flow.
package wizard

// Phase is the coarse grouping of a step.
type Phase string

const (
	PhaseProfile     Phase = "profile"
	PhaseInvestments Phase = "investments"
	PhaseProcessing  Phase = "processing"
	PhaseResults     Phase = "results"
)

// StepID identifies a step in the catalog.
type StepID string

const (
	StepProfileBasic           StepID = "profile-basic"
	StepProfileGoals           StepID = "profile-goals"
	StepProfileRisk            StepID = "profile-risk"
	StepInvestments            StepID = "investments"
	StepProcessing             StepID = "processing"
	StepResultsOverview        StepID = "results-overview"
	StepResultsPortfolio       StepID = "results-portfolio"
	StepResultsComprehensive   StepID = "results-comprehensive"
	StepResultsRecommendations StepID = "results-recommendations"
	StepResultsActionPlan      StepID = "results-action-plan"
)

type StepDescriptor struct {
	ID       StepID `json:"id"`
	Title    string `json:"title"`
	MainStep Phase  `json:"mainStep"`
	SubStep  string `json:"subStep,omitempty"`
}

// catalog is the canonical navigation order.
var catalog = []StepDescriptor{
	{ID: StepProfileBasic, Title: "Basic Info", MainStep: PhaseProfile, SubStep: "basic"},
	{ID: StepProfileGoals, Title: "Financial Goals", MainStep: PhaseProfile, SubStep: "goals"},
	{ID: StepProfileRisk, Title: "Investment Profile", MainStep: PhaseProfile, SubStep: "risk"},
	{ID: StepInvestments, Title: "Investment Data", MainStep: PhaseInvestments},
	{ID: StepProcessing, Title: "Processing", MainStep: PhaseProcessing},
	{ID: StepResultsOverview, Title: "Overview", MainStep: PhaseResults, SubStep: "overview"},
	{ID: StepResultsPortfolio, Title: "Portfolio Analysis", MainStep: PhaseResults, SubStep: "portfolio"},
	{ID: StepResultsComprehensive, Title: "Investment Plan", MainStep: PhaseResults, SubStep: "comprehensive"},
	{ID: StepResultsRecommendations, Title: "Asset Allocation", MainStep: PhaseResults, SubStep: "recommendations"},
	{ID: StepResultsActionPlan, Title: "Action Plan", MainStep: PhaseResults, SubStep: "action-plan"},
}

// Catalog returns a copy of every step the wizard can ever show.
func Catalog() []StepDescriptor {
	out := make([]StepDescriptor, len(catalog))
	copy(out, catalog)
	return out
}

// PreResultStepCount is the number of profile, investments and processing
// steps. It is also the index of the overview step once a result exists.
func PreResultStepCount() int {
	n := 0
	for _, s := range catalog {
		if s.MainStep != PhaseResults {
			n++
		}
	}
	return n
}
