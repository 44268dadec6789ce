// internal/models/profile.go
package models

// RiskAppetite is the user's self-declared tolerance for volatility.
type RiskAppetite string

const (
	RiskConservative RiskAppetite = "conservative"
	RiskModerate     RiskAppetite = "moderate"
	RiskAggressive   RiskAppetite = "aggressive"
)

func (r RiskAppetite) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

type InvestmentHorizon string

const (
	HorizonShort  InvestmentHorizon = "short"
	HorizonMedium InvestmentHorizon = "medium"
	HorizonLong   InvestmentHorizon = "long"
)

func (h InvestmentHorizon) Valid() bool {
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong:
		return true
	}
	return false
}

// FinancialProfile is the personal data collected by the profile steps.
// Nil numeric fields are treated as not yet entered.
type FinancialProfile struct {
	Age               *int              `json:"age,omitempty" mapstructure:"age"`
	AnnualIncome      *float64          `json:"annual_income,omitempty" mapstructure:"annual_income"`
	MonthlyExpenses   *float64          `json:"monthly_expenses,omitempty" mapstructure:"monthly_expenses"`
	TotalSavings      *float64          `json:"total_savings,omitempty" mapstructure:"total_savings"`
	RiskAppetite      RiskAppetite      `json:"risk_appetite,omitempty" mapstructure:"risk_appetite"`
	FinancialGoals    []string          `json:"financial_goals" mapstructure:"financial_goals"`
	InvestmentHorizon InvestmentHorizon `json:"investment_horizon,omitempty" mapstructure:"investment_horizon"`
}

// DefaultProfile returns the values the wizard starts with.
func DefaultProfile() FinancialProfile {
	return FinancialProfile{
		Age:               IntPtr(30),
		AnnualIncome:      Float64Ptr(1200000),
		MonthlyExpenses:   Float64Ptr(40000),
		TotalSavings:      Float64Ptr(500000),
		RiskAppetite:      RiskModerate,
		FinancialGoals:    []string{"retirement"},
		InvestmentHorizon: HorizonMedium,
	}
}

// Clone returns a deep copy so callers never share pointers with the owner.
func (p FinancialProfile) Clone() FinancialProfile {
	out := p
	if p.Age != nil {
		out.Age = IntPtr(*p.Age)
	}
	out.AnnualIncome = cloneFloat(p.AnnualIncome)
	out.MonthlyExpenses = cloneFloat(p.MonthlyExpenses)
	out.TotalSavings = cloneFloat(p.TotalSavings)
	if p.FinancialGoals != nil {
		out.FinancialGoals = append([]string(nil), p.FinancialGoals...)
	}
	return out
}

// HasGoal reports whether the goal tag is selected.
func (p FinancialProfile) HasGoal(id string) bool {
	for _, g := range p.FinancialGoals {
		if g == id {
			return true
		}
	}
	return false
}

// ToggleGoal selects the goal if absent and deselects it otherwise.
func (p *FinancialProfile) ToggleGoal(id string) {
	if !p.HasGoal(id) {
		p.FinancialGoals = append(p.FinancialGoals, id)
		return
	}
	for i, g := range p.FinancialGoals {
		if g == id {
			p.FinancialGoals = append(p.FinancialGoals[:i:i], p.FinancialGoals[i+1:]...)
			return
		}
	}
}

// GoalOption is one selectable financial goal.
type GoalOption struct {
	ID    string
	Label string
}

var GoalOptions = []GoalOption{
	{ID: "emergency_fund", Label: "Emergency Funds"},
	{ID: "home", Label: "Home loan down payment"},
	{ID: "education", Label: "Higher Education"},
	{ID: "retirement", Label: "Retirement"},
	{ID: "vacation", Label: "Vacations"},
	{ID: "car", Label: "Car"},
	{ID: "gadgets", Label: "Electronic gadget / Clothes"},
	{ID: "marriage", Label: "Marriage"},
	{ID: "kids_marriage", Label: "Kid's marriage"},
	{ID: "kids_education", Label: "Kid's education"},
	{ID: "wealth_generation", Label: "I am not sure"},
}

// GoalLabel returns the display label for a goal tag, or the tag itself when
// it is not in the catalog.
func GoalLabel(id string) string {
	for _, g := range GoalOptions {
		if g.ID == id {
			return g.Label
		}
	}
	return id
}

func IntPtr(i int) *int {
	return &i
}

func Float64Ptr(f float64) *float64 {
	return &f
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	return Float64Ptr(*f)
}
