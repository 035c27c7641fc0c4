package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"esconnector/internal/api"
	"esconnector/internal/config"
	"esconnector/internal/data/connection"
	"esconnector/internal/logger"
	"esconnector/internal/version"

	"go.uber.org/zap"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetInfo().String())
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Initialize the shared elasticsearch client; the probe is bounded by max_retry_timeout
	connector := connection.New(cfg.Data.Elasticsearch, log)
	es, err := connector.Initialize(context.Background())
	if err != nil {
		log.Fatal("Failed to initialize elasticsearch client", zap.Error(err))
	}

	var server *http.Server
	if cfg.API.Enabled {
		router := api.NewRouter(cfg, es, log)
		server = &http.Server{
			Addr:         cfg.API.Address,
			Handler:      router.Handler(),
			ReadTimeout:  cfg.API.ReadTimeout,
			WriteTimeout: cfg.API.WriteTimeout,
		}

		go func() {
			log.Info("Starting status API", zap.String("address", cfg.API.Address))
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				log.Error("Status API error", zap.Error(err))
			}
		}()
	}

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.Info("Received signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer shutdownCancel()

	// the API is the only in-process consumer; stop it before releasing the client
	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("Status API shutdown error", zap.Error(err))
		}
	}

	if err := connector.Shutdown(shutdownCtx); err != nil {
		log.Error("Elasticsearch shutdown error", zap.Error(err))
	}

	log.Info("Shutdown complete")
}
