package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutrimind/nutrimind/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `                _       _           _           _
 _ __  _   _| |_ _ __(_)_ __ ___ (_)_ __   __| |
| '_ \| | | | __| '__| | '_ ' _ \| | '_ \ / _' |
| | | | |_| | |_| |  | | | | | | | | | | | (_| |
|_| |_|\__,_|\__|_|  |_|_| |_| |_|_|_| |_|\__,_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nutrimind",
	Short: "Track one day of eating, moving and drinking from your terminal.",
	Long: LOGO + `nutrimind keeps today's calories, macros, water, steps and recipe picks in a
local database and turns them into a grade, a weekly projection and a coaching tip.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nutrimind.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().String("dbpath", "", "Path to SQLite DB file (default is $HOME/.config/nutrimind/nutrimind.sqlite)")
	rootCmd.PersistentFlags().String("driver", "", "Storage driver. Available: sqlite, redis, memory")
	viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("dbpath"))
	viper.BindPFlag("storage.driver", rootCmd.PersistentFlags().Lookup("driver"))
}

func setConfigDefaults() {
	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.redis_url", "redis://localhost:6379/0")
	viper.SetDefault("storage.prefix", "nutrimind:")
	viper.SetDefault("server.listen", "127.0.0.1:7420")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")
	viper.SetDefault("server.cors_origins", []string{"http://localhost:5173"})
	viper.SetDefault("report.path", "")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setConfigDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".nutrimind")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("NUTRIMIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := filepath.Join(home, ".nutrimind.yaml")
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s\n", err)
			}
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	if err := utils.SetLogLevel(levelString); err != nil {
		utils.Log.Fatal(err)
	}
}
