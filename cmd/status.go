package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's dashboard: calories, grade, macros, water, steps and a tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			printSnapshot(os.Stdout, s.Snapshot())
			return nil
		})
	},
}

func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func printSnapshot(out io.Writer, snap nutrition.Snapshot) {
	in := snap.Inputs
	fmt.Fprintln(out, snap.Headline)
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "Target\t%d kcal\t\n", in.CalorieTarget)
	fmt.Fprintf(w, "Consumed\t%s kcal\t\n", nutrition.FormatKcal(snap.Consumed))
	fmt.Fprintf(w, "Exercise\t%d kcal\t\n", in.ExerciseCals)
	fmt.Fprintf(w, "Net\t%s kcal (%.0f%%)\t\n", nutrition.FormatKcal(snap.Net), snap.ProgressPct)
	fmt.Fprintf(w, "Remaining\t%s kcal\t\n", nutrition.FormatKcal(snap.Remaining))
	fmt.Fprintf(w, "Grade\t%s\t\n", snap.Grade)
	fmt.Fprintf(w, "Projection\t%.2f lb/week\t\n", snap.WeeklyProjection)
	fmt.Fprintf(w, "Water\t%sL / %sL\t\n", snap.WaterLiters, snap.WaterGoalLiters)
	fmt.Fprintf(w, "Steps\t%s / %s\t\n", humanize.Comma(int64(in.Steps)), humanize.Comma(int64(in.StepsGoal)))
	fmt.Fprintf(w, "Weight\t%s lb\t\n", nutrition.FormatKcal(in.Weight))
	w.Flush()
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "MACRO\tEATEN (g)\tTARGET (g)\tSHARE\t")
	t, e := snap.Targets, snap.ConsumedMacros
	fmt.Fprintf(w, "Carbs\t%d\t%d\t%.0f%%\t\n", e.Carbs, t.Carbs, t.CarbsPct)
	fmt.Fprintf(w, "Protein\t%d\t%d\t%.0f%%\t\n", e.Protein, t.Protein, t.ProteinPct)
	fmt.Fprintf(w, "Fat\t%d\t%d\t%.0f%%\t\n", e.Fat, t.Fat, t.FatPct)
	w.Flush()
	fmt.Fprintln(out)

	w = tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "MICRO\tEATEN\tTARGET\tPROGRESS\t")
	m, goal := snap.MicrosConsumed, in.Micros
	fmt.Fprintf(w, "Fiber (g)\t%g\t%g\t%.0f%%\t\n", m.FiberG, goal.FiberG, pct(m.FiberG, goal.FiberG))
	fmt.Fprintf(w, "Vitamin C (mg)\t%g\t%g\t%.0f%%\t\n", m.VitaminCMg, goal.VitaminCMg, pct(m.VitaminCMg, goal.VitaminCMg))
	fmt.Fprintf(w, "Iron (mg)\t%g\t%g\t%.0f%%\t\n", m.IronMg, goal.IronMg, pct(m.IronMg, goal.IronMg))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Tip: %s\n", snap.Tip.Text)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
