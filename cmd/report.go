package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/venturelab/venturesim/internal/assessment"
	"github.com/venturelab/venturesim/internal/catalog"
	"github.com/venturelab/venturesim/internal/store"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [assessment-id]",
	Short: "Print the results of an assessment",
	Long:  "Prints the competency report for the most recent assessment, or for the given assessment ID.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		recorder := assessment.NewStoreRecorder(st)

		var run *assessment.Assessment
		if len(args) == 1 {
			run, err = recorder.Load(ctx, args[0])
		} else {
			run, err = recorder.LoadLatest(ctx)
		}
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}
		if run == nil {
			fmt.Println("No assessments found. Run `venturesim` to start one.")
			return nil
		}

		sum := assessment.BuildSummary(run)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(sum)
		}

		printSummary(sum)
		return nil
	},
}

func init() {
	reportCmd.Flags().Bool("json", false, "Emit the report as JSON")
}

func printSummary(sum assessment.Summary) {
	status := "in progress"
	if sum.Completed {
		status = "complete"
	}
	fmt.Printf("Assessment %s (%s)\n", sum.AssessmentID, status)
	fmt.Printf("Score: %d/100 (%s)   Answered: %d   Duration: %s\n\n",
		sum.OverallScore, sum.AverageLevel.Name(), sum.Answered, sum.Duration.Round(time.Second))

	fmt.Printf("Capital: %.0f   Revenue: %.0f/mo   Runway: %.1f months\n\n",
		sum.FinalState.Financial.Capital,
		sum.FinalState.Financial.MonthlyRevenue,
		sum.FinalState.Financial.RunwayMonths)

	if len(sum.Competencies) > 0 {
		fmt.Println("Competencies (strongest first):")
		for _, cs := range sum.Competencies {
			if cs.Possible == 0 {
				continue
			}
			fmt.Printf("  %-24s %3d%%  %s\n", cs.Code.DisplayName(), cs.Percentage, cs.Level.Label())
		}
		fmt.Println()
	}

	if len(sum.Mistakes.Triggered) == 0 {
		fmt.Println("No mistakes triggered.")
		return
	}
	fmt.Println("Mistakes:")
	for _, rec := range sum.Mistakes.Triggered {
		title := string(rec.Code)
		if def := catalog.MistakeByCode(rec.Code); def != nil {
			title = def.Title
		}
		fmt.Printf("  %-34s -%.0f\n", title, rec.TotalCost())
	}
	fmt.Printf("Total cost of mistakes: %.0f\n", sum.Mistakes.TotalCost)
}
