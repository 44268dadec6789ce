package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "goal-planner/internal/common/errors"
	"goal-planner/internal/models"
)

const validProfileYAML = `
profile:
  age: 34
  annual_income: 1800000
  monthly_expenses: 60000
  total_savings: 750000
  risk_appetite: moderate
  financial_goals: [retirement, home]
  investment_horizon: long
assets:
  - asset_type: Mutual Funds
    name: Index fund
    amount: 300000
    expected_returns: 11
  - asset_type: Gold
    name: Sovereign gold bond
    amount: 80000
`

const invalidProfileYAML = `
profile:
  annual_income: 1800000
  monthly_expenses: 60000
  total_savings: 750000
  risk_appetite: moderate
  financial_goals: [retirement]
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func writeConfig(t *testing.T, apiURL string) string {
	t.Helper()
	return writeFile(t, "config.yaml", "planner:\n  api_url: "+apiURL+"\n  timeout: 5s\nlogging:\n  level: error\n")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func TestLoadPlannerInput(t *testing.T) {
	in, err := loadPlannerInput(writeFile(t, "profile.yaml", validProfileYAML))
	require.NoError(t, err)

	require.NotNil(t, in.Profile.Age)
	assert.Equal(t, 34, *in.Profile.Age)
	assert.Equal(t, 1800000.0, *in.Profile.AnnualIncome)
	assert.Equal(t, models.RiskModerate, in.Profile.RiskAppetite)
	assert.Equal(t, []string{"retirement", "home"}, in.Profile.FinancialGoals)
	assert.Equal(t, models.HorizonLong, in.Profile.InvestmentHorizon)

	require.Len(t, in.Assets, 2)
	assert.NotEmpty(t, in.Assets[0].ID)
	assert.NotEqual(t, in.Assets[0].ID, in.Assets[1].ID)
	assert.Equal(t, models.AssetMutual, in.Assets[0].AssetType)
	require.NotNil(t, in.Assets[0].ExpectedReturns)
	assert.Equal(t, 11.0, *in.Assets[0].ExpectedReturns)
	assert.Nil(t, in.Assets[1].ExpectedReturns)

	_, err = loadPlannerInput("")
	assert.Error(t, err)
}

func TestStepsCommand(t *testing.T) {
	cfg := writeConfig(t, "http://localhost:8000/analyze")

	out, err := execute(t, "--config", cfg, "steps")
	require.NoError(t, err)
	assert.Contains(t, out, "profile-basic")
	assert.Contains(t, out, "processing")
	assert.NotContains(t, out, "results-overview")

	resultFile := writeFile(t, "result.json", `{"portfolio_analysis": {"diversity_score": 0.4}, "next_steps": ["Save more"]}`)
	out, err = execute(t, "--config", cfg, "steps", "--result", resultFile)
	require.NoError(t, err)
	assert.Contains(t, out, "results-overview")
	assert.Contains(t, out, "results-portfolio")
	assert.Contains(t, out, "results-action-plan")
	assert.NotContains(t, out, "results-comprehensive")

	out, err = execute(t, "--config", cfg, "steps", "--all", "--result", resultFile)
	require.NoError(t, err)
	assert.Regexp(t, `results-portfolio\s+Portfolio Analysis\s+results\s+true`, out)
	assert.Regexp(t, `results-comprehensive\s+Investment Plan\s+results\s+false`, out)
}

func TestValidateCommand(t *testing.T) {
	cfg := writeConfig(t, "http://localhost:8000/analyze")

	out, err := execute(t, "--config", cfg, "validate", "--profile", writeFile(t, "ok.yaml", validProfileYAML))
	require.NoError(t, err)
	assert.Contains(t, out, "goals: Retirement, Home loan down payment")
	assert.Contains(t, out, "profile OK")

	out, err = execute(t, "--config", cfg, "validate", "--profile", writeFile(t, "bad.yaml", invalidProfileYAML))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProfileValidationFailed, apperrors.CodeOf(err))
	assert.Contains(t, out, "Age is required")
}

func TestValidateCommand_UnknownChoices(t *testing.T) {
	cfg := writeConfig(t, "http://localhost:8000/analyze")
	profile := strings.Replace(validProfileYAML, "risk_appetite: moderate", "risk_appetite: reckless", 1)
	profile = strings.Replace(profile, "investment_horizon: long", "investment_horizon: forever", 1)

	out, err := execute(t, "--config", cfg, "validate", "--profile", writeFile(t, "choices.yaml", profile))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeProfileValidationFailed, apperrors.CodeOf(err))
	assert.Contains(t, out, "profile: Risk appetite must be one of: conservative, moderate, aggressive")
	assert.Contains(t, out, "profile: Investment horizon must be one of: short, medium, long")
	assert.NotContains(t, out, "profile OK")
}

func TestRunCommand_Success(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "retirement, home", body["goals"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"risk_assessment": {"risk_score": 62, "risk_category": "Moderate"},
			"portfolio_analysis": {"diversity_score": 0.7},
			"recommendations": {"equity": 65},
			"next_steps": ["Increase SIP by 10%"]
		}`))
	}))
	defer srv.Close()

	output := filepath.Join(t.TempDir(), "result.json")
	out, err := execute(t,
		"--config", writeConfig(t, srv.URL),
		"run",
		"--profile", writeFile(t, "profile.yaml", validProfileYAML),
		"--output", output,
	)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, out, "[1/5] Basic Info")
	assert.Contains(t, out, "[4/5] Investment Data")
	assert.Contains(t, out, "Result tabs: overview, portfolio, recommendations, action-plan")
	assert.Contains(t, out, "Risk: Moderate (62)")
	assert.Contains(t, out, "Diversity score: 0.70")
	assert.Contains(t, out, "1. Increase SIP by 10%")

	saved, err := loadResult(output)
	require.NoError(t, err)
	assert.True(t, saved.HasPortfolioAnalysis())
	assert.Equal(t, []string{"Increase SIP by 10%"}, saved.DecodeNextSteps())
}

func TestRunCommand_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	out, err := execute(t,
		"--config", writeConfig(t, srv.URL),
		"run",
		"--profile", writeFile(t, "profile.yaml", validProfileYAML),
	)
	require.Error(t, err)
	assert.Contains(t, out, "Server error occurred. Please try again later.")
	assert.Contains(t, out, "The request can be retried by running the command again.")
}

func TestRunCommand_InvalidProfile(t *testing.T) {
	out, err := execute(t,
		"--config", writeConfig(t, "http://localhost:1/analyze"),
		"run",
		"--profile", writeFile(t, "bad.yaml", invalidProfileYAML),
	)
	require.Error(t, err)
	assert.Contains(t, out, "Please fix the following issues before proceeding:")
	assert.Contains(t, out, "  - Age is required")
	assert.NotContains(t, out, "Investment Data")
}
