// @title			Daily Sales & Cash Management API
// @version		0.1.0
// @description	Backend for daily sales closing and cash management.
// @BasePath		/

package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/dailysales/internal/config"
	"github.com/mtlprog/dailysales/internal/handler"
	"github.com/mtlprog/dailysales/internal/logger"
	"github.com/mtlprog/dailysales/internal/middleware"
	"github.com/mtlprog/dailysales/internal/server"
)

func main() {
	// JSON logs from the first line; Before re-applies the configured level
	logger.Setup(slog.LevelInfo)

	// Load .env file if present; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaults := config.Default()

	return &cli.App{
		Name:    "dailysales",
		Usage:   defaults.Title,
		Version: defaults.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			// Global so that "serve" and the default action read the same value
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   strconv.Itoa(defaults.Port),
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			logger.Setup(cfg.LogLevel)
			if err != nil {
				slog.Warn("invalid port, using default", "error", err, "default_port", cfg.Port)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Action: runServe,
			},
		},
		Action: runServe,
	}
}

// loadConfig builds the immutable configuration from flags and environment.
// An unusable port falls back to the default; the parse error is returned
// alongside the usable config so the caller can report it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default().WithLogLevel(logger.ParseLevel(c.String("log-level")))

	raw := c.String("port")
	if _, err := config.ParsePort(raw); err != nil && raw != "" {
		return cfg.WithPort(config.DefaultPort), err
	}

	return cfg.WithPort(config.PortOrDefault(raw)), nil
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, _ := loadConfig(c)
	return serve(ctx, cfg)
}

func serve(ctx context.Context, cfg config.Config) error {
	router := handler.NewRouter(cfg, middleware.Permissive(), slog.Default())

	return server.New(cfg, router).Run(ctx)
}
