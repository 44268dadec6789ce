package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	apperrors "goal-planner/internal/common/errors"
	commonhttp "goal-planner/internal/common/http"
	"goal-planner/internal/common/observability"
	"goal-planner/internal/services/goalplanning"
	"goal-planner/internal/wizard"
)

func runCmd(a *app) *cobra.Command {
	var profileFile, outputFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Walk the wizard with a profile file and submit it for analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadPlannerInput(profileFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stopMetrics := a.startMetricsServer()
			defer stopMetrics()

			obs := observability.New(a.cfg.App.Name)
			defer obs.Shutdown()

			plannerCfg := goalplanning.FromAppConfig(a.cfg.Planner)
			if err := plannerCfg.Validate(); err != nil {
				return err
			}
			svc := goalplanning.NewService(goalplanning.ServiceDependencies{
				Logger:        a.log,
				HTTPClient:    commonhttp.NewClient(plannerCfg.Timeout),
				Observability: obs,
			}, plannerCfg)

			errOut := cmd.ErrOrStderr()
			ctrl := wizard.NewController(svc,
				wizard.WithLogger(a.log),
				wizard.WithProfile(in.Profile),
				wizard.WithAssets(in.Assets),
				wizard.WithObserver(func(s wizard.Snapshot) {
					if s.IsProcessing {
						fmt.Fprintf(errOut, "\rProcessing... %s", s.ElapsedLabel())
					}
				}),
			)
			defer ctrl.Close()

			return drive(ctx, ctrl, apperrors.NewErrorHandler(a.log), cmd.OutOrStdout(), errOut, outputFile)
		},
	}

	cmd.Flags().StringVar(&profileFile, "profile", "", "profile file (yaml or json)")
	cmd.Flags().StringVar(&outputFile, "output", "", "write the raw result as JSON to this file")
	return cmd
}

// drive presses Next until the wizard reaches the results, then prints the
// available result tabs.
func drive(ctx context.Context, ctrl *wizard.Controller, errs *apperrors.ErrorHandler, out, errOut io.Writer, outputFile string) error {
	for {
		snap := ctrl.Snapshot()
		if snap.Step.MainStep == wizard.PhaseResults {
			break
		}
		fmt.Fprintf(out, "[%d/%d] %s\n", snap.Index+1, wizard.PreResultStepCount(), snap.Step.Title)

		outcome, err := ctrl.Next(ctx)
		if outcome.Submitted {
			fmt.Fprintln(errOut)
		}
		if err != nil {
			var vErr *wizard.ValidationError
			if errors.As(err, &vErr) {
				fmt.Fprintln(out, "Please fix the following issues before proceeding:")
				for _, issue := range vErr.Issues {
					fmt.Fprintf(out, "  - %s\n", issue)
				}
				return err
			}
			if errors.Is(err, wizard.ErrBusy) || errors.Is(err, wizard.ErrNoNextStep) {
				return err
			}
			stdErr := errs.Handle("submit", err)
			fmt.Fprintf(out, "%s\n", stdErr.Message)
			if apperrors.IsRetryableErrorCode(stdErr.Code) {
				fmt.Fprintln(out, "The request can be retried by running the command again.")
			}
			return stdErr
		}
	}

	result := ctrl.Result()
	tabs := wizard.ResultTabs(result)
	fmt.Fprintf(out, "Result tabs: %s\n", strings.Join(tabs, ", "))

	if ra := result.DecodeRiskAssessment(); ra != nil {
		fmt.Fprintf(out, "Risk: %s (%.0f)\n", ra.RiskCategory, ra.RiskScore)
	}
	if pa := result.DecodePortfolioAnalysis(); pa != nil {
		fmt.Fprintf(out, "Diversity score: %.2f\n", pa.DiversityScore)
	}
	if result.HasLegacyMarkup() {
		fmt.Fprintln(out, "The service also returned a pre-rendered report; see the saved output.")
	}
	if advice := result.DecodeAgeSpecificAdvice(); advice != "" {
		fmt.Fprintf(out, "Advice: %s\n", advice)
	}
	for i, step := range result.DecodeNextSteps() {
		fmt.Fprintf(out, "%d. %s\n", i+1, step)
	}

	if outputFile != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := os.WriteFile(outputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
		fmt.Fprintf(out, "Result written to %s\n", outputFile)
	}
	return nil
}
