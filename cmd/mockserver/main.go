package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/aravindan888/opsml/internal/config"
	"github.com/aravindan888/opsml/internal/fixtures"
	"github.com/aravindan888/opsml/internal/handler"
	"github.com/aravindan888/opsml/internal/registry"
	"github.com/aravindan888/opsml/internal/router"
	"github.com/aravindan888/opsml/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "mockserver",
	Short: "Fixture-backed registry server for dashboard development",
	Long: `mockserver serves the card registry and monitoring routes the opsml
dashboard consumes, backed entirely by deterministic fixture data. Run it
when no live registry backend is available.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("mock registry server starting...",
		"version", version,
		"address", cfg.GetServerAddr(),
	)

	// Route Hertz internals through slog
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))

	store := registry.NewStore(fixtures.Cards)
	registryHandler := handler.NewRegistryHandler(store, slog.Default())
	monitorHandler := handler.NewMonitorHandler()
	healthHandler := handler.NewHealthHandler()

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, registryHandler, monitorHandler, healthHandler)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
