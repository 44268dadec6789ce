package wizard

// gateKind says what has to happen before Next may leave a step.
type gateKind int

const (
	// gateNone advances to the next available step.
	gateNone gateKind = iota
	// gateValidateProfile runs profile validation first.
	gateValidateProfile
	// gateSubmit moves through processing and submits.
	gateSubmit
	// gateTransient refuses navigation; the step is left by the submission.
	gateTransient
)

func (g gateKind) String() string {
	switch g {
	case gateValidateProfile:
		return "validate-profile"
	case gateSubmit:
		return "submit"
	case gateTransient:
		return "transient"
	default:
		return "none"
	}
}

type transition struct {
	gate gateKind
	// via, onSuccess and onFailure are only set for gateSubmit.
	via       StepID
	onSuccess StepID
	onFailure StepID
}

var transitions = map[StepID]transition{
	StepProfileBasic: {gate: gateNone},
	StepProfileGoals: {gate: gateNone},
	StepProfileRisk:  {gate: gateValidateProfile},
	StepInvestments: {
		gate:      gateSubmit,
		via:       StepProcessing,
		onSuccess: StepResultsOverview,
		onFailure: StepInvestments,
	},
	StepProcessing:             {gate: gateTransient},
	StepResultsOverview:        {gate: gateNone},
	StepResultsPortfolio:       {gate: gateNone},
	StepResultsComprehensive:   {gate: gateNone},
	StepResultsRecommendations: {gate: gateNone},
	StepResultsActionPlan:      {gate: gateNone},
}

func transitionFor(id StepID) transition {
	if t, ok := transitions[id]; ok {
		return t
	}
	return transition{gate: gateNone}
}
