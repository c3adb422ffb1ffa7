package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"trendboard/internal/config"
	"trendboard/internal/handler"
	"trendboard/internal/service"
	"trendboard/pkg/geo"
	"trendboard/pkg/logger"
	"trendboard/pkg/provider"
)

type Application struct {
	configPath string
	debug      bool
}

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	app := &Application{}

	flag.StringVar(&app.configPath, "config", os.Getenv("TRENDBOARD_CONFIG"), "Configuration file path (env: TRENDBOARD_CONFIG)")
	flag.BoolVar(&app.debug, "debug", os.Getenv("DEBUG") == "true", "Enable debug logging (env: DEBUG)")
	flag.Parse()

	if err := app.Run(); err != nil {
		log.Fatalf("Application failed: %v", err)
	}
}

func (app *Application) Run() error {
	manager := config.NewManager()
	cfg, err := manager.Load(app.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := cfg.Logger.Level
	if app.debug {
		level = "debug"
	}
	appLogger := logger.New(logger.Config{
		Level:      level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(appLogger)

	mainLog := appLogger.WithField("component", "main")
	mainLog.WithFields(map[string]interface{}{
		"provider_url":  cfg.Provider.BaseURL,
		"api_key_set":   cfg.Provider.APIKey != "",
		"default_top_n": cfg.Shaper.TopN,
		"min_interest":  cfg.Shaper.MinInterest,
		"config_source": app.configPath,
	}).Info("Configuration loaded")

	client := provider.NewClient(provider.Config{
		BaseURL:         cfg.Provider.BaseURL,
		APIKey:          cfg.Provider.APIKey,
		RequestTimeout:  time.Duration(cfg.Provider.TimeoutMs) * time.Millisecond,
		MaxRetries:      cfg.Provider.MaxRetries,
		RetryDelay:      time.Duration(cfg.Provider.RetryDelayMs) * time.Millisecond,
		MaxConnsPerHost: 64,
	})

	explorer := service.NewExplorer(client)
	h := handler.NewHandler(explorer, geo.NewResolver(), client, manager)
	server := handler.NewApp(h)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		mainLog.WithField("addr", addr).Info("Starting trendboard server")
		errCh <- server.Listen(addr)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

loop:
	for {
		select {
		case err := <-errCh:
			return fmt.Errorf("server stopped: %w", err)
		case sig := <-sigChan:
			if sig == syscall.SIGHUP {
				// Shaper defaults take effect immediately; server and
				// provider settings need a restart.
				if err := manager.Reload(); err != nil {
					mainLog.WithError(err).Warn("Config reload failed, keeping previous configuration")
				} else {
					mainLog.Info("Configuration reloaded")
				}
				continue
			}
			mainLog.WithField("signal", sig.String()).Info("Shutdown signal received")
			break loop
		}
	}

	if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	mainLog.Info("Server stopped")
	return nil
}
