// internal/services/goalplanning/models.go
package goalplanning

import (
	commonhttp "goal-planner/internal/common/http"
	"goal-planner/internal/common/logger"
	"goal-planner/internal/common/observability"
)

// Payload is the request body expected by the analyze endpoint.
type Payload struct {
	Age          *int                `json:"age,omitempty"`
	Income       *float64            `json:"income,omitempty"`
	Expenses     *float64            `json:"expenses,omitempty"`
	Savings      *float64            `json:"savings,omitempty"`
	Goals        string              `json:"goals"`
	RiskAppetite string              `json:"risk_appetite,omitempty"`
	Investments  []InvestmentPayload `json:"investments"`
}

type InvestmentPayload struct {
	Type            string   `json:"type"`
	Amount          float64  `json:"amount"`
	Name            string   `json:"name"`
	ExpectedReturns float64  `json:"expected_returns"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
}

type ServiceDependencies struct {
	Logger        logger.Logger
	HTTPClient    *commonhttp.Client
	Observability *observability.Observability
}
