package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nutrimind/nutrimind/internal/utils"
	"github.com/nutrimind/nutrimind/pkg/session"
	"github.com/nutrimind/nutrimind/pkg/storage"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Interact with the nutrimind database",
}

// dbKeysCmd lists every stored key with its raw value.
var dbKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the stored keys and their raw values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := storageConfig()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), storage.DefaultDBTimeout)
		defer cancel()

		store, err := storage.OpenStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		keys, err := store.Keys(ctx, storage.KeyPrefix)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			fmt.Println("Nothing stored yet, every value is at its default.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE\t")
		for _, k := range keys {
			v, err := store.Get(ctx, k)
			if err != nil {
				return err
			}
			v = truncate(v, 80)
			fmt.Fprintf(w, "%s\t%s\t\n", k, v)
		}
		return w.Flush()
	},
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored state and start the day over with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes today's log, targets and recipe picks; rerun with --force")
		}
		return withSession(func(s *session.Session) error {
			if err := s.Reset(context.Background()); err != nil {
				return err
			}
			fmt.Println("All stored state removed.")
			return nil
		})
	},
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive sqlite3 shell on the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := utils.GetAbsDBPath(viper.GetString("storage.path"))
		if err != nil {
			return err
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s", dbPath)
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the db shell")
		}

		fmt.Println("--> Database schema:")
		schemaCmd := exec.Command(sqlitePath, dbPath, ".schema")
		schemaCmd.Stdout = os.Stdout
		schemaCmd.Stderr = os.Stderr
		if err := schemaCmd.Run(); err != nil {
			utils.Log.Warnf("Couldn't retrieve schema: %v", err)
		}
		fmt.Println("\n--> Starting interactive shell... (Ctrl+D to exit)")

		c := exec.Command(sqlitePath, dbPath)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbKeysCmd, dbResetCmd, shellCmd)
	dbResetCmd.Flags().Bool("force", false, "Confirm the reset")
}
