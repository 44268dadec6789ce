package validation

import "goal-planner/internal/models"

// Issue messages returned by ValidateProfile and ValidateChoices.
const (
	MsgRiskAppetiteChoice = "Risk appetite must be one of: conservative, moderate, aggressive"
	MsgHorizonChoice      = "Investment horizon must be one of: short, medium, long"

	MsgAgeRange          = "Age must be between 18 and 120 years"
	MsgNegativeIncome    = "Annual income cannot be negative"
	MsgNegativeExpenses  = "Monthly expenses cannot be negative"
	MsgExpensesTooHigh   = "Monthly expenses seem unusually high compared to income"
	MsgNegativeSavings   = "Total savings cannot be negative"
	requiredSuffix       = " is required"
	expenseIncomeCeiling = 1.5
)

// Field names used in "<Field> is required" messages.
const (
	FieldAge             = "Age"
	FieldAnnualIncome    = "Annual Income"
	FieldMonthlyExpenses = "Monthly Expenses"
	FieldTotalSavings    = "Total Savings"
	FieldFinancialGoals  = "Financial Goals"
	FieldRiskAppetite    = "Risk Appetite"
)

// RequiredMessage formats the missing-field message for field.
func RequiredMessage(field string) string {
	return field + requiredSuffix
}

// ValidateProfile checks a profile for completeness and sane ranges. It
// returns the missing-field messages followed by the range issues; an empty
// result means the profile is valid.
//
// Age and income count as missing when zero. Expenses and savings are only
// missing when not entered at all, since zero is a legitimate answer.
func ValidateProfile(p models.FinancialProfile) []string {
	var missing []string
	var issues []string

	age := intOrZero(p.Age)
	income := floatOrZero(p.AnnualIncome)
	expenses := floatOrZero(p.MonthlyExpenses)

	if age == 0 {
		missing = append(missing, FieldAge)
	}
	if income == 0 {
		missing = append(missing, FieldAnnualIncome)
	}
	if p.MonthlyExpenses == nil {
		missing = append(missing, FieldMonthlyExpenses)
	}
	if p.TotalSavings == nil {
		missing = append(missing, FieldTotalSavings)
	}
	if len(p.FinancialGoals) == 0 {
		missing = append(missing, FieldFinancialGoals)
	}
	if p.RiskAppetite == "" {
		missing = append(missing, FieldRiskAppetite)
	}

	if age != 0 && (age < 18 || age > 120) {
		issues = append(issues, MsgAgeRange)
	}
	if income != 0 && income < 0 {
		issues = append(issues, MsgNegativeIncome)
	}
	if expenses != 0 && expenses < 0 {
		issues = append(issues, MsgNegativeExpenses)
	}
	if expenses != 0 && income != 0 && expensesTooHigh(expenses, income) {
		issues = append(issues, MsgExpensesTooHigh)
	}
	if p.TotalSavings != nil && *p.TotalSavings < 0 {
		issues = append(issues, MsgNegativeSavings)
	}

	out := make([]string, 0, len(missing)+len(issues))
	for _, field := range missing {
		out = append(out, RequiredMessage(field))
	}
	return append(out, issues...)
}

// ValidateChoices reports risk appetite and investment horizon values that
// are set but outside their enums. Profiles loaded from files can carry any
// string; the editor only offers the fixed options.
func ValidateChoices(p models.FinancialProfile) []string {
	var issues []string
	if p.RiskAppetite != "" && !p.RiskAppetite.Valid() {
		issues = append(issues, MsgRiskAppetiteChoice)
	}
	if p.InvestmentHorizon != "" && !p.InvestmentHorizon.Valid() {
		issues = append(issues, MsgHorizonChoice)
	}
	return issues
}

func expensesTooHigh(monthly, annualIncome float64) bool {
	return monthly*12 > annualIncome*expenseIncomeCeiling
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
