package wizard

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goal-planner/internal/models"
)

// ==========================
// Fake ticker
// ==========================

type fakeTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.once.Do(func() { close(f.stopped) })
}

func (f *fakeTicker) isStopped() bool {
	select {
	case <-f.stopped:
		return true
	default:
		return false
	}
}

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (fc *fakeClock) factory(time.Duration) Ticker {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	ft := &fakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
	fc.tickers = append(fc.tickers, ft)
	return ft
}

func (fc *fakeClock) last() *fakeTicker {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if len(fc.tickers) == 0 {
		return nil
	}
	return fc.tickers[len(fc.tickers)-1]
}

// ==========================
// Submitters
// ==========================

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) Submit(ctx context.Context, profile models.FinancialProfile, assets []models.InvestmentAsset) (*models.GoalPlanningResult, error) {
	args := m.Called(ctx, profile, assets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GoalPlanningResult), args.Error(1)
}

// blockingSubmitter holds the submission open until release is closed.
type blockingSubmitter struct {
	started chan struct{}
	release chan struct{}
	result  *models.GoalPlanningResult
	err     error
}

func newBlockingSubmitter(result *models.GoalPlanningResult, err error) *blockingSubmitter {
	return &blockingSubmitter{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  result,
		err:     err,
	}
}

func (b *blockingSubmitter) Submit(ctx context.Context, _ models.FinancialProfile, _ []models.InvestmentAsset) (*models.GoalPlanningResult, error) {
	b.started <- struct{}{}
	<-b.release
	return b.result, b.err
}

// ==========================
// Helpers
// ==========================

func newTestController(t *testing.T, sub Submitter, opts ...Option) (*Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	all := append([]Option{WithTickerFactory(clock.factory)}, opts...)
	c := NewController(sub, all...)
	t.Cleanup(c.Close)
	return c, clock
}

// advanceTo calls Next until the controller reaches target.
func advanceTo(t *testing.T, c *Controller, target StepID) {
	t.Helper()
	for i := 0; i < len(catalog) && c.Snapshot().Step.ID != target; i++ {
		_, err := c.Next(context.Background())
		require.NoError(t, err)
	}
	require.Equal(t, target, c.Snapshot().Step.ID)
}

func resultWith(portfolio, comprehensive, recommendations, nextSteps bool) *models.GoalPlanningResult {
	r := &models.GoalPlanningResult{
		RiskAssessment: json.RawMessage(`{"risk_score": 55, "risk_category": "Moderate"}`),
	}
	if portfolio {
		r.PortfolioAnalysis = json.RawMessage(`{"diversity_score": 0.5}`)
	}
	if comprehensive {
		r.ComprehensiveRecommendations = json.RawMessage(`{"summary": "plan"}`)
	}
	if recommendations {
		r.Recommendations = json.RawMessage(`{"equity": 60, "debt": 40}`)
	}
	if nextSteps {
		r.NextSteps = json.RawMessage(`["Open a PPF account"]`)
	}
	return r
}

func stepIDs(steps []StepDescriptor) []StepID {
	ids := make([]StepID, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}
