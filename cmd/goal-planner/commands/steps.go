package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"goal-planner/internal/models"
	"goal-planner/internal/wizard"
)

func stepsCmd(a *app) *cobra.Command {
	var resultFile string
	var all bool

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "List the wizard steps available with or without a result",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result *models.GoalPlanningResult
			if resultFile != "" {
				r, err := loadResult(resultFile)
				if err != nil {
					return err
				}
				result = r
			}

			available := wizard.AvailableSteps(result)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if all {
				open := make(map[wizard.StepID]bool, len(available))
				for _, s := range available {
					open[s.ID] = true
				}
				fmt.Fprintln(w, "ID\tTITLE\tPHASE\tAVAILABLE")
				for _, s := range wizard.Catalog() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", s.ID, s.Title, s.MainStep, open[s.ID])
				}
				return w.Flush()
			}

			fmt.Fprintln(w, "#\tID\tTITLE\tPHASE")
			for i, s := range available {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, s.ID, s.Title, s.MainStep)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&resultFile, "result", "", "JSON result saved by run --output")
	cmd.Flags().BoolVar(&all, "all", false, "list every catalog step with its availability")
	return cmd
}
