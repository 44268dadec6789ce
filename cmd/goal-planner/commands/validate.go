package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "goal-planner/internal/common/errors"
	"goal-planner/internal/common/validation"
	"goal-planner/internal/models"
)

func validateCmd(a *app) *cobra.Command {
	var profileFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a profile file without submitting it",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadPlannerInput(profileFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			issues := append(validation.ValidateProfile(in.Profile), validation.ValidateChoices(in.Profile)...)
			assetIssues := validation.ValidateAssets(in.Assets)

			labels := make([]string, 0, len(in.Profile.FinancialGoals))
			for _, g := range in.Profile.FinancialGoals {
				labels = append(labels, models.GoalLabel(g))
			}
			fmt.Fprintf(out, "goals: %s\n", strings.Join(labels, ", "))

			for _, issue := range issues {
				fmt.Fprintf(out, "profile: %s\n", issue)
			}
			for _, issue := range assetIssues {
				fmt.Fprintf(out, "assets: %s\n", issue)
			}

			a.log.Info("Validated profile", map[string]interface{}{
				"profileIssues": len(issues),
				"assetIssues":   len(assetIssues),
			})

			if len(issues) > 0 {
				return apperrors.NewProfileValidationError(issues)
			}
			fmt.Fprintln(out, "profile OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&profileFile, "profile", "", "profile file (yaml or json)")
	return cmd
}
