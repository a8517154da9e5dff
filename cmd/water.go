package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nutrimind/nutrimind/pkg/session"
)

// glassMl is one tap of the water tracker.
const glassMl = 250

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track water intake",
}

func waterAdjuster(use, short string, sign int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [ml]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ml := glassMl
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("%q is not a whole number of ml", args[0])
				}
				ml = v
			}
			return withSession(func(s *session.Session) error {
				s.AdjustWater(sign * ml)
				snap := s.Snapshot()
				fmt.Printf("Water: %sL / %sL\n", snap.WaterLiters, snap.WaterGoalLiters)
				return nil
			})
		},
	}
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Track exercise",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <kcal>",
	Short: "Add a workout's burned calories to today's exercise total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kcal, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%q is not a whole number of kcal", args[0])
		}
		return withSession(func(s *session.Session) error {
			s.AddExercise(kcal)
			fmt.Printf("Exercise today: %d kcal\n", s.Inputs().ExerciseCals)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd, exerciseCmd)
	waterCmd.AddCommand(
		waterAdjuster("add", "Log a glass of water (250 ml unless given)", 1),
		waterAdjuster("remove", "Undo a glass of water (250 ml unless given)", -1),
	)
	exerciseCmd.AddCommand(exerciseAddCmd)
}
