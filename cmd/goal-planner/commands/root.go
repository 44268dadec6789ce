package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"goal-planner/internal/common/config"
	"goal-planner/internal/common/logger"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	configFile string
	logLevel   string

	cfg *config.Config
	log logger.Logger
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "goal-planner",
		Short:         "Financial goal planning wizard",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.Logging.Level = a.logLevel
			}
			a.cfg = cfg
			a.log = logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output).
				WithFields(map[string]interface{}{
					"app":         cfg.App.Name,
					"environment": cfg.App.Environment,
				})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./configs/config.yaml or ./config.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override: debug, info, warn, error")

	root.AddCommand(stepsCmd(a), validateCmd(a), runCmd(a))
	return root
}

// startMetricsServer exposes the prometheus registry when metrics are
// enabled. The returned func shuts the server down.
func (a *app) startMetricsServer() func() {
	if !a.cfg.Metrics.Enabled {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle(a.cfg.Metrics.Path, promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:              a.cfg.Metrics.Address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		a.log.Info("Metrics server listening", map[string]interface{}{
			"address": a.cfg.Metrics.Address,
			"path":    a.cfg.Metrics.Path,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Metrics server failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
