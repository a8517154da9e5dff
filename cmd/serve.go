package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nutrimind/nutrimind/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve today's session as a local JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sess, done, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer done()

		srv := server.New(sess, server.Config{
			Username:    viper.GetString("server.username"),
			Password:    viper.GetString("server.password"),
			CORSOrigins: viper.GetStringSlice("server.cors_origins"),
		})
		return srv.Start(ctx, viper.GetString("server.listen"))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from server.listen, 127.0.0.1:7420)")
	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}
