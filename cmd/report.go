package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/attempt"
	"github.com/abhisek/mathcoach/internal/reports"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a student's attempt history",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		taskID, _ := cmd.Flags().GetString("task")
		coach, _ := cmd.Flags().GetString("coach")
		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		asJSON, _ := cmd.Flags().GetBool("json")

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		b := reports.FromStore(st, newLogger(cfg, nil, nil))

		var r *reports.Report
		if coach != "" {
			r, err = b.BuildForCoach(cmd.Context(), coach, student, taskID)
		} else {
			r, err = b.Build(cmd.Context(), student, taskID)
		}
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		if xlsxPath != "" {
			if err := writeXLSXFile(xlsxPath, r); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", xlsxPath)
			return nil
		}
		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}
		printReport(r)
		return nil
	},
}

func writeXLSXFile(path string, r *reports.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := reports.WriteXLSX(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write spreadsheet: %w", err)
	}
	return f.Close()
}

func printReport(r *reports.Report) {
	fmt.Printf("%s  (%d tasks, %d attempts)\n\n", r.StudentName, len(r.Tasks), r.AttemptCount())
	for _, t := range r.Tasks {
		status := ""
		if !t.Active {
			status = "  [inactive]"
		}
		best := "-"
		if b := t.Best(); b >= 0 {
			best = fmt.Sprintf("%d%%", b)
		}
		fmt.Printf("%s%s\n", t.Title, status)
		fmt.Printf("  %d questions · pass %d%% · good %d%% · master %d%% · best %s  %s\n",
			t.Total, t.PassPct, t.GoodPct, t.MasterPct, best, reports.Sparkline(t.Trend, 30))
		if len(t.Attempts) == 0 {
			fmt.Println("  no attempts")
			fmt.Println()
			continue
		}
		fmt.Println("  " + strings.Repeat("─", 60))
		for _, a := range t.Attempts {
			fmt.Printf("  %s  %-5s  %3d/%-3d  %8s  %s\n",
				a.CompletedAt.Local().Format("2006-01-02 15:04"),
				a.Mode,
				a.Score, t.Total,
				attempt.FormatDuration(a.TimeTaken),
				a.Grade.Label(),
			)
		}
		fmt.Println()
	}
}

func init() {
	reportCmd.Flags().String("student", "", "Student profile id (required)")
	reportCmd.Flags().String("task", "", "Limit to one task")
	reportCmd.Flags().String("coach", "", "Restrict to this coach's students")
	reportCmd.Flags().String("xlsx", "", "Write the report to this .xlsx file instead of printing it")
	reportCmd.Flags().Bool("json", false, "Print the report as JSON")
	_ = reportCmd.MarkFlagRequired("student")
}
