package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/session"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest snacks that fit the remaining calorie budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		add, _ := cmd.Flags().GetString("add")
		return withSession(func(s *session.Session) error {
			if add != "" {
				if !s.AddSuggestion(add) {
					return fmt.Errorf("no suggestion named %q", add)
				}
				printLogged(os.Stdout, s.Foods()[0])
				return nil
			}
			snap := s.Snapshot()
			fmt.Printf("Remaining budget: %s kcal\n\n", nutrition.FormatKcal(snap.Remaining))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tKCAL\tBADGE\t")
			for _, r := range snap.Recommendations {
				fmt.Fprintf(w, "%s\t%s\t%s\t\n", r.Name, nutrition.FormatKcal(r.Kcal), r.Badge)
			}
			return w.Flush()
		})
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print or save the plain-text daily report",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("output")
		if path == "" {
			path = viper.GetString("report.path")
		}
		return withSession(func(s *session.Session) error {
			report := s.Report()
			if path == "" {
				fmt.Println(report)
				return nil
			}
			if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
				return fmt.Errorf("could not write report: %w", err)
			}
			fmt.Printf("Report written to %s\n", path)
			return nil
		})
	},
}

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Show the two-week weight trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "DAY\tWEIGHT (lb)\t")
		for _, p := range nutrition.SampleWeightSeries() {
			fmt.Fprintf(w, "%s\t%.1f\t\n", p.Label, p.Value)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd, reportCmd, weightCmd)
	recommendCmd.Flags().String("add", "", "Log the named suggestion as a snack")
	reportCmd.Flags().StringP("output", "o", "", "Write the report to this file ("+nutrition.ReportFileName+" is a good name)")
}
