package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/pillar-dev/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Starts the HTTP server. With CONTACT_MODE=store contact messages and
hashed visitor records are kept in sqlite and the admin area is enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if servePort != "" {
			cfg.Server.Port = servePort
		}
		gin.SetMode(cfg.Server.GinMode)

		opts := []server.Option{}
		if cfg.StoreEnabled() {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()
			logger.Info("Database opened", zap.String("path", st.Path()))
			opts = append(opts, server.WithStore(st), server.WithSubmitter(buildSubmitter(cfg, st, logger)))
		}

		srv, err := server.New(cfg, logger, opts...)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
