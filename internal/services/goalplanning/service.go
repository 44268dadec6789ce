package goalplanning

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"

	apperrors "goal-planner/internal/common/errors"
	commonhttp "goal-planner/internal/common/http"
	"goal-planner/internal/common/logger"
	"goal-planner/internal/common/metrics"
	"goal-planner/internal/common/observability"
	"goal-planner/internal/models"
)

const maxLoggedBody = 512

// Service submits a profile and asset list to the goal-planning service.
type Service struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
	obs    *observability.Observability
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if config == nil {
		config = DefaultConfig()
	}
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	client := deps.HTTPClient
	if client == nil {
		client = commonhttp.NewClient(config.Timeout)
	}
	return &Service{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "goal-planning"}),
		obs:    deps.Observability,
	}
}

// Submit issues exactly one request. On failure the returned error is a
// *errors.StandardError whose Message is safe to show; the result is then nil.
func (s *Service) Submit(ctx context.Context, profile models.FinancialProfile, assets []models.InvestmentAsset) (*models.GoalPlanningResult, error) {
	start := time.Now()
	metrics.SubmissionsActive.Inc()
	defer metrics.SubmissionsActive.Dec()

	ctx, span := s.obs.StartSpan(ctx, "goalplanning.submit",
		attribute.Int("goal_planning.asset_count", len(assets)),
		attribute.Int("goal_planning.goal_count", len(profile.FinancialGoals)),
	)

	result, err := s.submit(ctx, profile, assets)
	duration := time.Since(start)

	outcome := "success"
	if err != nil {
		outcome = "failure"
		metrics.SubmissionsFailed.WithLabelValues(string(apperrors.CodeOf(err))).Inc()
	}
	metrics.SubmissionsCompleted.WithLabelValues(outcome).Inc()
	metrics.SubmissionDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	s.obs.RecordSubmission(ctx, outcome)
	s.obs.RecordSubmissionDuration(ctx, duration, outcome)
	observability.EndSpan(span, err)

	if err != nil {
		return nil, err
	}

	s.logger.Info("Goal planning completed", map[string]interface{}{
		"durationMs":      duration.Milliseconds(),
		"portfolio":       result.HasPortfolioAnalysis(),
		"comprehensive":   result.HasComprehensiveRecommendations(),
		"recommendations": result.HasRecommendations(),
		"nextSteps":       len(result.DecodeNextSteps()),
		"assets":          len(assets),
		"totalValue":      models.TotalValue(assets),
	})
	return result, nil
}

func (s *Service) submit(ctx context.Context, profile models.FinancialProfile, assets []models.InvestmentAsset) (*models.GoalPlanningResult, error) {
	if strings.TrimSpace(s.config.APIURL) == "" {
		err := apperrors.NewNotConfiguredError()
		s.logFailure(err)
		return nil, err
	}

	payload := BuildPayload(profile, assets)
	s.logger.Debug("Submitting goal planning request", map[string]interface{}{
		"url":     s.config.APIURL,
		"timeout": s.client.Timeout().String(),
		"payload": payload,
	})

	headers := map[string]string{}
	if s.config.CSRFToken != "" {
		headers["Cookie"] = "csrftoken=" + s.config.CSRFToken
	}

	resp, err := s.client.PostJSON(ctx, s.config.APIURL, payload, headers)
	if err != nil {
		stdErr := classifyTransportError(err)
		s.logFailure(stdErr)
		return nil, stdErr
	}

	if !resp.IsSuccess() {
		stdErr := apperrors.NewHTTPStatusError(resp.StatusCode, truncate(string(resp.Body), maxLoggedBody))
		s.logFailure(stdErr)
		return nil, stdErr
	}

	var result models.GoalPlanningResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		stdErr := apperrors.NewSubmissionFailedError(fmt.Errorf("decode response: %w", err))
		s.logFailure(stdErr)
		return nil, stdErr
	}

	return &result, nil
}

// BuildPayload maps the domain model onto the request body. Goals are sent
// as a comma separated list of tags and a missing expected return as 0.
func BuildPayload(profile models.FinancialProfile, assets []models.InvestmentAsset) Payload {
	investments := make([]InvestmentPayload, 0, len(assets))
	for _, a := range assets {
		var expected float64
		if a.ExpectedReturns != nil {
			expected = *a.ExpectedReturns
		}
		var current *float64
		if a.CurrentValue != nil {
			current = models.Float64Ptr(*a.CurrentValue)
		}
		investments = append(investments, InvestmentPayload{
			Type:            a.AssetType,
			Amount:          a.Amount,
			Name:            a.Name,
			ExpectedReturns: expected,
			CurrentValue:    current,
		})
	}

	p := profile.Clone()
	return Payload{
		Age:          p.Age,
		Income:       p.AnnualIncome,
		Expenses:     p.MonthlyExpenses,
		Savings:      p.TotalSavings,
		Goals:        strings.Join(p.FinancialGoals, ", "),
		RiskAppetite: string(p.RiskAppetite),
		Investments:  investments,
	}
}

func classifyTransportError(err error) *apperrors.StandardError {
	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return apperrors.NewTimeoutError(err)
		}
		return apperrors.NewUnreachableError(err)
	}

	if stderrors.Is(err, syscall.ECONNREFUSED) {
		return apperrors.NewUnreachableError(err)
	}

	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return apperrors.NewTimeoutError(err)
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.NewTimeoutError(err)
	}

	return apperrors.NewSubmissionFailedError(err)
}

func (s *Service) logFailure(err *apperrors.StandardError) {
	s.logger.Error("Goal planning request failed", map[string]interface{}{
		"errorCode":  err.Code,
		"statusCode": err.StatusCode,
		"retryable":  err.Retryable,
		"details":    err.Details,
	})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
