package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/session"
)

// foodCmd represents the parent `food` command.
var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log foods and inspect today's food log",
}

var foodAddCmd = &cobra.Command{
	Use:   "add <name> [kcal]",
	Short: "Log a food. Without kcal a guess based on the name is used",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := mealFromFlags(cmd)
		if err != nil {
			return err
		}
		kcal := ""
		if len(args) == 2 {
			kcal = args[1]
		}
		return withSession(func(s *session.Session) error {
			if !s.QuickAdd(args[0], kcal, meal) {
				return fmt.Errorf("food name is required")
			}
			printLogged(os.Stdout, s.Foods()[0])
			return nil
		})
	},
}

var foodRepeatCmd = &cobra.Command{
	Use:   "repeat <recent-id>",
	Short: "Log a food from the recent list again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := mealFromFlags(cmd)
		if err != nil {
			return err
		}
		return withSession(func(s *session.Session) error {
			if !s.RepeatRecent(args[0], meal) {
				return fmt.Errorf("no recent food with id %q (see `nutrimind food recent`)", args[0])
			}
			printLogged(os.Stdout, s.Foods()[0])
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show today's food log grouped by meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			printMeals(os.Stdout, s.Foods())
			return nil
		})
	},
}

var foodRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently logged foods for one-tap repeats",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKCAL\t")
			for _, r := range s.Recent() {
				fmt.Fprintf(w, "%s\t%s\t%s\t\n", r.ID, r.Name, nutrition.FormatKcal(r.Kcal))
			}
			return w.Flush()
		})
	},
}

var foodPhotoCmd = &cobra.Command{
	Use:   "photo <filename>",
	Short: "Recognize a meal photo and log it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := mealFromFlags(cmd)
		if err != nil {
			return err
		}
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return withSession(func(s *session.Session) error {
			p := s.ScanPhoto(args[0])
			fmt.Printf("Looks like %s (~%s kcal, fiber %gg, vitamin C %gmg, iron %gmg)\n",
				p.Name, nutrition.FormatKcal(p.Kcal), p.FiberG, p.VitaminCMg, p.IronMg)
			if dryRun {
				s.CancelPhoto()
				return nil
			}
			s.ConfirmPhoto(meal)
			printLogged(os.Stdout, s.Foods()[0])
			return nil
		})
	},
}

var foodBarcodeCmd = &cobra.Command{
	Use:   "barcode [code]",
	Short: "Look up a barcode and log the product as a snack",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code := ""
		if len(args) == 1 {
			code = args[0]
		}
		return withSession(func(s *session.Session) error {
			printLogged(os.Stdout, s.AddBarcode(code))
			return nil
		})
	},
}

func mealFromFlags(cmd *cobra.Command) (nutrition.Meal, error) {
	raw, _ := cmd.Flags().GetString("meal")
	return parseMealFlag(raw)
}

func printLogged(out io.Writer, e nutrition.FoodLogEntry) {
	fmt.Fprintf(out, "Logged %s (%s kcal) to %s\n", e.Name, nutrition.FormatKcal(e.Kcal), e.Meal)
}

func printMeals(out io.Writer, foods []nutrition.FoodLogEntry) {
	buckets := nutrition.BucketMeals(foods)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, meal := range nutrition.Meals {
		entries := buckets[meal]
		fmt.Fprintf(w, "%s\t\t%s kcal\t\n", strings.ToUpper(string(meal)), nutrition.FormatKcal(nutrition.SumKcal(entries)))
		if len(entries) == 0 {
			fmt.Fprintln(w, "\t(nothing logged)\t\t")
		}
		for _, e := range entries {
			fmt.Fprintf(w, "\t%s\t%s\t\n", e.Name, nutrition.FormatKcal(e.Kcal))
		}
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodRepeatCmd, foodListCmd, foodRecentCmd, foodPhotoCmd, foodBarcodeCmd)

	for _, c := range []*cobra.Command{foodAddCmd, foodRepeatCmd, foodPhotoCmd} {
		c.Flags().StringP("meal", "m", string(nutrition.Breakfast), "Meal to log to. Available: breakfast, lunch, dinner, snacks")
	}
	foodPhotoCmd.Flags().Bool("dry-run", false, "Only show the guess, don't log it")
}
