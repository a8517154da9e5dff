package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nutrimind/nutrimind/pkg/session"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Swipe through recipe ideas",
}

var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current recipe card",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			printDeck(os.Stdout, s.Deck())
			return nil
		})
	},
}

// deckAction builds one swipe subcommand.
func deckAction(use, short, done string, action func(*session.Session) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(func(s *session.Session) error {
				before := s.Deck().Current
				if !action(s) {
					fmt.Println("The deck is empty, nothing to do.")
					return nil
				}
				if before != nil && done != "" {
					fmt.Printf(done+"\n", before.Title)
				}
				printDeck(os.Stdout, s.Deck())
				return nil
			})
		},
	}
}

var deckFavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session.Session) error {
			favs := s.FavoriteRecipes()
			if len(favs) == 0 {
				fmt.Println("No favorites yet. Like a card with `nutrimind deck like`.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\t")
			for _, c := range favs {
				fmt.Fprintf(w, "%d\t%s\t%s\t\n", c.ID, c.Title, c.Category)
			}
			return w.Flush()
		})
	},
}

func printDeck(out io.Writer, d session.DeckState) {
	if d.Current == nil {
		fmt.Fprintln(out, "No more recipes in the deck.")
		return
	}
	fmt.Fprintf(out, "[%d/%d] %s (%s)\n", d.Cursor+1, len(d.Cards), d.Current.Title, d.Current.Category)
	fmt.Fprintf(out, "      %s\n", d.Current.Image)
}

func init() {
	rootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(
		deckShowCmd,
		deckAction("like", "Add the current recipe to favorites", "Liked %s", (*session.Session).LikeRecipe),
		deckAction("skip", "Skip the current recipe for now", "Skipped %s", (*session.Session).SkipRecipe),
		deckAction("super", "Put the current recipe first in favorites", "Super liked %s", (*session.Session).SuperLikeRecipe),
		deckAction("no", "Never show the current recipe again", "Removed %s from the deck", (*session.Session).RejectRecipe),
		deckAction("undo", "Go back to the previous card", "", (*session.Session).UndoRecipe),
		deckFavoritesCmd,
	)
}
