package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/keepmind9/framebot/internal/bot"
	"github.com/keepmind9/framebot/internal/command"
	"github.com/keepmind9/framebot/internal/core"
	"github.com/keepmind9/framebot/internal/framedata"
	"github.com/keepmind9/framebot/internal/logger"
	"github.com/keepmind9/framebot/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const metricsShutdownTimeout = 5 * time.Second

var (
	configFile string
	envFile    string

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the chat bot",
		Long:  "Connect to Twitch chat, join the configured channels and answer frame data commands until interrupted",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := runStart(ctx); err != nil {
				log.Fatalf("framebot: %v", err)
			}
			log.Println("framebot stopped")
		},
	}
)

// runStart wires the bot together and blocks until ctx is cancelled.
// Configuration and frame-data errors are returned before any connection
// attempt is made.
func runStart(ctx context.Context) error {
	if err := core.LoadDotEnv(envFile); err != nil {
		return err
	}

	path := resolveConfigPath(configFile)
	config, err := core.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.InitLogger(logger.Config{
		Level:        config.Logging.Level,
		Format:       config.Logging.Format,
		File:         config.Logging.File,
		MaxSize:      config.Logging.MaxSize,
		MaxBackups:   config.Logging.MaxBackups,
		MaxAge:       config.Logging.MaxAge,
		Compress:     config.Logging.Compress,
		EnableStdout: config.Logging.StdoutEnabled(),
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"config_file": path,
		"log_level":   config.Logging.Level,
		"log_file":    config.Logging.File,
	}).Info("logger-initialized")

	store, err := framedata.LoadFile(config.FrameData.File)
	if err != nil {
		return err
	}

	m := metrics.New()
	dispatcher := command.NewDispatcher(store, m)
	engine := core.NewEngine(config.Twitch, bot.NewWebsocketDialer(), dispatcher, m)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Run(gctx)
	})

	if config.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle(config.Metrics.Path, m.Handler())
		server := &http.Server{
			Addr:              config.Metrics.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			logger.WithFields(logrus.Fields{
				"address": config.Metrics.Address,
				"path":    config.Metrics.Path,
			}).Info("starting-metrics-server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.WithField("error", err).Error("failed-to-stop-metrics-server")
				server.Close()
			}
			return nil
		})
	}

	return g.Wait()
}

func init() {
	startCmd.Flags().StringVarP(&configFile, "config", "c", "", "Configuration file path (default: first of ./config.yaml, ~/.config/framebot/config.yaml, /etc/framebot/config.yaml)")
	startCmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
}
