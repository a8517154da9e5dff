package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nutrimind/nutrimind/pkg/nutrition"
	"github.com/nutrimind/nutrimind/pkg/session"
)

// setCmd represents the parent `set` command.
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change today's targets and tracked values",
}

func parseNumbers(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", a)
		}
		out[i] = v
	}
	return out, nil
}

// numberSetter builds a `set <name> <value>` subcommand.
func numberSetter(use, short string, apply func(*session.Session, float64)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseNumbers(args)
			if err != nil {
				return err
			}
			return withSession(func(s *session.Session) error {
				apply(s, v[0])
				fmt.Printf("%s set to %s\n", use, nutrition.FormatKcal(v[0]))
				return nil
			})
		},
	}
}

var setMacrosCmd = &cobra.Command{
	Use:   "macros <carbs> <protein> <fat>",
	Short: "Set the macro split. Values are relative weights and need not sum to 100",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseNumbers(args)
		if err != nil {
			return err
		}
		return withSession(func(s *session.Session) error {
			s.SetMacroRatios(nutrition.MacroRatios{Carbs: v[0], Protein: v[1], Fat: v[2]})
			t := s.Snapshot().Targets
			fmt.Printf("Macro targets: %dg carbs, %dg protein, %dg fat\n", t.Carbs, t.Protein, t.Fat)
			return nil
		})
	},
}

var setMicrosCmd = &cobra.Command{
	Use:   "micros <fiber_g> <vitaminC_mg> <iron_mg>",
	Short: "Set the daily micronutrient targets",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseNumbers(args)
		if err != nil {
			return err
		}
		return withSession(func(s *session.Session) error {
			s.SetMicroTargets(nutrition.MicroTargets{FiberG: v[0], VitaminCMg: v[1], IronMg: v[2]})
			fmt.Println("Micronutrient targets updated")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	setCmd.AddCommand(
		numberSetter("target", "Set the daily calorie target (kcal)", func(s *session.Session, v float64) { s.SetCalorieTarget(nutrition.ToInt(v)) }),
		numberSetter("exercise", "Set calories burned by exercise today (kcal)", func(s *session.Session, v float64) { s.SetExercise(nutrition.ToInt(v)) }),
		numberSetter("steps", "Set today's step count", func(s *session.Session, v float64) { s.SetSteps(nutrition.ToInt(v)) }),
		numberSetter("steps-goal", "Set the daily step goal", func(s *session.Session, v float64) { s.SetStepsGoal(nutrition.ToInt(v)) }),
		numberSetter("water", "Set water drunk today (ml)", func(s *session.Session, v float64) { s.SetWater(nutrition.ToInt(v)) }),
		numberSetter("water-goal", "Set the daily water goal (ml)", func(s *session.Session, v float64) { s.SetWaterGoal(nutrition.ToInt(v)) }),
		numberSetter("weight", "Set today's body weight (lb)", func(s *session.Session, v float64) { s.SetWeight(v) }),
		setMacrosCmd,
		setMicrosCmd,
	)
}
