package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "goal-planner/internal/common/errors"
	"goal-planner/internal/common/logger"
	"goal-planner/internal/common/metrics"
	"goal-planner/internal/common/validation"
	"goal-planner/internal/models"
)

// Submitter performs the goal-planning request.
type Submitter interface {
	Submit(ctx context.Context, profile models.FinancialProfile, assets []models.InvestmentAsset) (*models.GoalPlanningResult, error)
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	Step             StepDescriptor   `json:"step"`
	Index            int              `json:"index"`
	Steps            []StepDescriptor `json:"steps"`
	IsFirstStep      bool             `json:"isFirstStep"`
	IsLastStep       bool             `json:"isLastStep"`
	IsProcessing     bool             `json:"isProcessing"`
	ElapsedSeconds   int              `json:"elapsedSeconds"`
	Progress         float64          `json:"progress"`
	Error            string           `json:"error,omitempty"`
	ValidationIssues []string         `json:"validationIssues,omitempty"`
	AssetIssues      []string         `json:"assetIssues,omitempty"`
	CanGoBack        bool             `json:"canGoBack"`
	CanGoNext        bool             `json:"canGoNext"`
	CanReset         bool             `json:"canReset"`
}

// ElapsedLabel formats ElapsedSeconds as m:ss.
func (s Snapshot) ElapsedLabel() string {
	return fmt.Sprintf("%d:%02d", s.ElapsedSeconds/60, s.ElapsedSeconds%60)
}

// Outcome describes a completed Next call.
type Outcome struct {
	From      StepID
	To        StepID
	Submitted bool
}

type Option func(*Controller)

func WithLogger(l logger.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func WithTickerFactory(f TickerFactory) Option {
	return func(c *Controller) { c.newTicker = f }
}

// WithTickInterval changes how often the elapsed counter advances.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) { c.tickInterval = d }
}

// WithObserver registers fn to receive a snapshot after every state change.
// fn is called without the controller lock held, possibly from the ticker
// goroutine.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) { c.observer = fn }
}

func WithProfile(p models.FinancialProfile) Option {
	return func(c *Controller) { c.profile = p.Clone() }
}

func WithAssets(assets []models.InvestmentAsset) Option {
	return func(c *Controller) { c.assets = models.CloneAssets(assets) }
}

// Controller is the wizard state machine. It owns the profile, the asset
// list and the result; views read them through Snapshot and the getters and
// change them through the setters. Safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	submitter    Submitter
	logger       logger.Logger
	observer     func(Snapshot)
	newTicker    TickerFactory
	tickInterval time.Duration

	step        StepID
	profile     models.FinancialProfile
	assets      []models.InvestmentAsset
	result      *models.GoalPlanningResult
	lastError   string
	issues      []string
	assetIssues []string
	processing  bool
	elapsed     int
	timer       *elapsedTimer
}

func NewController(submitter Submitter, opts ...Option) *Controller {
	c := &Controller{
		submitter:    submitter,
		logger:       logger.NewNoOpLogger(),
		newTicker:    NewRealTicker,
		tickInterval: time.Second,
		step:         catalog[0].ID,
		profile:      models.DefaultProfile(),
		assets:       models.DefaultAssets(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.WithFields(map[string]interface{}{"component": "wizard"})
	return c
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	steps := AvailableSteps(c.result)
	idx := indexOf(steps, c.step)
	if idx < 0 {
		// unreachable while the invariants hold; fall back to the start
		idx = 0
	}
	transient := transitionFor(c.step).gate == gateTransient
	last := idx == len(steps)-1

	return Snapshot{
		Step:             steps[idx],
		Index:            idx,
		Steps:            steps,
		IsFirstStep:      idx == 0,
		IsLastStep:       last,
		IsProcessing:     c.processing,
		ElapsedSeconds:   c.elapsed,
		Progress:         float64(idx+1) / float64(len(steps)) * 100,
		Error:            c.lastError,
		ValidationIssues: append([]string(nil), c.issues...),
		AssetIssues:      append([]string(nil), c.assetIssues...),
		CanGoBack:        !c.processing && !transient && idx > 0,
		CanGoNext:        !c.processing && !transient && !last,
		CanReset:         !c.processing,
	}
}

// Next leaves the current step. From the risk step it validates the
// profile first; from investments it submits, blocking until the
// submission finishes, and lands on the overview or back on investments.
func (c *Controller) Next(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return Outcome{From: StepProcessing, To: StepProcessing}, ErrBusy
	}

	from := c.step
	t := transitionFor(from)

	switch t.gate {
	case gateTransient:
		c.mu.Unlock()
		return Outcome{From: from, To: from}, ErrBusy

	case gateSubmit:
		return c.submitLocked(ctx, t)

	case gateValidateProfile:
		if issues := validation.ValidateProfile(c.profile); len(issues) > 0 {
			c.issues = issues
			snap := c.snapshotLocked()
			c.mu.Unlock()

			metrics.ValidationFailures.Inc()
			c.logger.Warn("Profile validation failed", map[string]interface{}{
				"step":   from,
				"issues": issues,
			})
			c.publish(snap)
			return Outcome{From: from, To: from}, &ValidationError{Issues: issues}
		}
		c.issues = nil
	}

	steps := AvailableSteps(c.result)
	idx := indexOf(steps, from)
	if idx < 0 || idx+1 >= len(steps) {
		c.mu.Unlock()
		return Outcome{From: from, To: from}, ErrNoNextStep
	}

	to := steps[idx+1].ID
	c.step = to
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.recordTransition("next", from, to)
	c.publish(snap)
	return Outcome{From: from, To: to}, nil
}

// submitLocked is entered with c.mu held and releases it before calling the
// submitter. The processing state, the ticker and the final position are
// settled in a deferred block so every exit path leaves processing.
func (c *Controller) submitLocked(ctx context.Context, t transition) (out Outcome, err error) {
	from := c.step
	profile := c.profile.Clone()
	assets := models.CloneAssets(c.assets)

	c.assetIssues = validation.ValidateAssets(assets)
	c.step = t.via
	c.processing = true
	c.elapsed = 0
	c.lastError = ""
	c.issues = nil
	timer := startElapsedTimer(c.newTicker, c.tickInterval, c.tick)
	c.timer = timer
	snap := c.snapshotLocked()
	assetIssues := c.assetIssues
	c.mu.Unlock()

	if len(assetIssues) > 0 {
		c.logger.Warn("Submitting assets with validation issues", map[string]interface{}{
			"issues": assetIssues,
		})
	}
	c.recordTransition("next", from, t.via)
	c.publish(snap)

	var result *models.GoalPlanningResult
	out = Outcome{From: from, Submitted: true}

	defer func() {
		timer.stop()

		if err == nil && result == nil {
			err = apperrors.NewSubmissionFailedError(errors.New("submission returned no result"))
		}

		c.mu.Lock()
		c.processing = false
		c.elapsed = 0
		if c.timer == timer {
			c.timer = nil
		}
		if err != nil {
			c.step = t.onFailure
			c.lastError = apperrors.UserMessage(err)
		} else {
			c.result = result
			c.step = t.onSuccess
		}
		out.To = c.step
		snap := c.snapshotLocked()
		c.mu.Unlock()

		if err != nil {
			c.logger.WithError(err).Error("Submission failed", map[string]interface{}{
				"errorCode": apperrors.CodeOf(err),
				"returnTo":  out.To,
			})
		} else {
			c.logger.Info("Submission succeeded", map[string]interface{}{
				"steps": len(snap.Steps),
				"tabs":  ResultTabs(result),
			})
		}
		c.recordTransition("submit", StepProcessing, out.To)
		c.publish(snap)
	}()

	result, err = c.submitter.Submit(ctx, profile, assets)
	return out, err
}

func (c *Controller) tick() {
	c.mu.Lock()
	if !c.processing {
		c.mu.Unlock()
		return
	}
	c.elapsed++
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap)
}

// Back moves to the previous available step. The processing step is never a
// destination; going back from the first result step lands on investments.
func (c *Controller) Back() error {
	c.mu.Lock()
	if c.processing || transitionFor(c.step).gate == gateTransient {
		c.mu.Unlock()
		return ErrBusy
	}

	steps := AvailableSteps(c.result)
	idx := indexOf(steps, c.step)
	if idx <= 0 {
		c.mu.Unlock()
		return ErrAtFirstStep
	}

	prev := idx - 1
	for prev > 0 && transitionFor(steps[prev].ID).gate == gateTransient {
		prev--
	}

	from := c.step
	c.step = steps[prev].ID
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.recordTransition("back", from, snap.Step.ID)
	c.publish(snap)
	return nil
}

// Reset returns to the first step and drops the result and any error. The
// profile and assets are kept. Calling it repeatedly has the same effect as
// calling it once.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return ErrBusy
	}
	from := c.step
	c.step = catalog[0].ID
	c.result = nil
	c.lastError = ""
	c.issues = nil
	c.assetIssues = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.recordTransition("reset", from, snap.Step.ID)
	c.publish(snap)
	return nil
}

// ClearError dismisses the last submission error.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.lastError = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap)
}

// Close stops the elapsed ticker if one is running. It does not cancel an
// in-flight submission.
func (c *Controller) Close() {
	c.mu.Lock()
	timer := c.timer
	c.timer = nil
	c.mu.Unlock()
	timer.stop()
}

// Profile returns a copy of the profile.
func (c *Controller) Profile() models.FinancialProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.Clone()
}

// Assets returns a copy of the asset list.
func (c *Controller) Assets() []models.InvestmentAsset {
	c.mu.Lock()
	defer c.mu.Unlock()
	return models.CloneAssets(c.assets)
}

// Result returns the last successful result, or nil. Callers must treat it
// as read-only.
func (c *Controller) Result() *models.GoalPlanningResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// UpdateProfile applies fn to the profile.
func (c *Controller) UpdateProfile(fn func(p *models.FinancialProfile)) error {
	return c.mutate(func() error {
		fn(&c.profile)
		return nil
	})
}

// ToggleGoal selects or deselects a goal tag.
func (c *Controller) ToggleGoal(id string) error {
	return c.mutate(func() error {
		c.profile.ToggleGoal(id)
		return nil
	})
}

// AddAsset appends an empty asset of assetType and returns its id.
func (c *Controller) AddAsset(assetType string) (string, error) {
	var id string
	err := c.mutate(func() error {
		a := models.NewAsset(assetType)
		c.assets = append(c.assets, a)
		id = a.ID
		return nil
	})
	return id, err
}

// UpdateAsset applies fn to the asset with the given id. The id itself
// cannot be changed.
func (c *Controller) UpdateAsset(id string, fn func(a *models.InvestmentAsset)) error {
	return c.mutate(func() error {
		for i := range c.assets {
			if c.assets[i].ID == id {
				fn(&c.assets[i])
				c.assets[i].ID = id
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	})
}

// RemoveAsset deletes the asset with the given id.
func (c *Controller) RemoveAsset(id string) error {
	return c.mutate(func() error {
		for i := range c.assets {
			if c.assets[i].ID == id {
				c.assets = append(c.assets[:i:i], c.assets[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	})
}

func (c *Controller) mutate(fn func() error) error {
	c.mu.Lock()
	if c.processing {
		c.mu.Unlock()
		return ErrBusy
	}
	if err := fn(); err != nil {
		c.mu.Unlock()
		return err
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(snap)
	return nil
}

func (c *Controller) publish(snap Snapshot) {
	if c.observer != nil {
		c.observer(snap)
	}
}

func (c *Controller) recordTransition(action string, from, to StepID) {
	metrics.WizardTransitions.WithLabelValues(action, string(to)).Inc()
	c.logger.Debug("Step changed", map[string]interface{}{
		"action": action,
		"from":   from,
		"to":     to,
	})
}
