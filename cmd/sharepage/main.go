package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for goose migrations
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"github.com/givebridge/sharepage/internal/api"
	"github.com/givebridge/sharepage/internal/config"
	"github.com/givebridge/sharepage/internal/design"
	"github.com/givebridge/sharepage/internal/handler"
	"github.com/givebridge/sharepage/internal/logger"
	"github.com/givebridge/sharepage/internal/middleware"
	"github.com/givebridge/sharepage/internal/sandbox"
	"github.com/givebridge/sharepage/internal/service"
	"github.com/givebridge/sharepage/internal/static"
	"github.com/givebridge/sharepage/internal/store"
	"github.com/givebridge/sharepage/internal/store/migrations"
	"github.com/givebridge/sharepage/internal/view"
)

func main() {
	app := &cli.App{
		Name:  "sharepage",
		Usage: "Shareable public pages for the GiveBridge donation platform",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL connection URL",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.StringFlag{
				Name:    "platform-api-url",
				Aliases: []string{"a"},
				Value:   config.DefaultPlatformAPIURL,
				Usage:   "Donation platform backend API URL",
				EnvVars: []string{"PLATFORM_API_URL"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Value:   config.DefaultRateLimit,
				Usage:   "Requests per minute per IP",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.BoolFlag{
				Name:    "sanitize-values",
				Usage:   "Strip script-capable markup from substituted profile values",
				EnvVars: []string{"SANITIZE_VALUES"},
			},
			&cli.BoolFlag{
				Name:    "sandbox-no-scripts",
				Usage:   "Disable script execution in hosted share pages",
				EnvVars: []string{"SANDBOX_NO_SCRIPTS"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML config file",
				EnvVars: []string{"SHAREPAGE_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// settings is the merged runtime configuration: defaults, then config file,
// then flags and environment.
type settings struct {
	port             string
	databaseURL      string
	platformAPIURL   string
	rateLimit        int
	sanitizeValues   bool
	sandboxNoScripts bool
}

func loadSettings(c *cli.Context) (settings, error) {
	s := settings{
		port:             c.String("port"),
		databaseURL:      c.String("database-url"),
		platformAPIURL:   c.String("platform-api-url"),
		rateLimit:        c.Int("rate-limit"),
		sanitizeValues:   c.Bool("sanitize-values"),
		sandboxNoScripts: c.Bool("sandbox-no-scripts"),
	}

	path := c.String("config")
	if path == "" {
		return s, nil
	}

	f, err := config.LoadFile(path)
	if err != nil {
		return settings{}, err
	}

	if f.Port != "" && !c.IsSet("port") {
		s.port = f.Port
	}
	if f.DatabaseURL != "" && !c.IsSet("database-url") {
		s.databaseURL = f.DatabaseURL
	}
	if f.PlatformAPIURL != "" && !c.IsSet("platform-api-url") {
		s.platformAPIURL = f.PlatformAPIURL
	}
	if f.RateLimit > 0 && !c.IsSet("rate-limit") {
		s.rateLimit = f.RateLimit
	}
	if f.SanitizeValues && !c.IsSet("sanitize-values") {
		s.sanitizeValues = true
	}
	if f.SandboxNoScripts && !c.IsSet("sandbox-no-scripts") {
		s.sandboxNoScripts = true
	}
	if f.LogLevel != "" && !c.IsSet("log-level") {
		logger.Setup(logger.ParseLevel(f.LogLevel))
	}

	return s, nil
}

func run(c *cli.Context) error {
	ctx := c.Context

	cfg, err := loadSettings(c)
	if err != nil {
		return err
	}
	if cfg.databaseURL == "" {
		return fmt.Errorf("database URL is required")
	}

	pool, err := pgxpool.New(ctx, cfg.databaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := migrate(cfg.databaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	links, err := store.NewShareLinkRepository(pool)
	if err != nil {
		return fmt.Errorf("create share link repository: %w", err)
	}
	designs, err := store.NewDesignStore(pool, links)
	if err != nil {
		return fmt.Errorf("create design store: %w", err)
	}
	platform, err := service.NewPlatformService(cfg.platformAPIURL)
	if err != nil {
		return fmt.Errorf("create platform service: %w", err)
	}
	tmpl, err := view.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	var sandboxOpts []sandbox.Option
	if cfg.sandboxNoScripts {
		sandboxOpts = append(sandboxOpts, sandbox.WithoutScripts())
	}
	host := sandbox.New(sandboxOpts...)

	var pageOpts []handler.Option
	var apiOpts []api.Option
	if cfg.sanitizeValues {
		sanitizer := design.NewValueSanitizer()
		pageOpts = append(pageOpts, handler.WithValueSanitizer(sanitizer))
		apiOpts = append(apiOpts, api.WithValueSanitizer(sanitizer))
	}

	pages, err := handler.New(links, designs, platform, tmpl, host, pageOpts...)
	if err != nil {
		return fmt.Errorf("create page handler: %w", err)
	}
	apiHandler, err := api.New(links, designs, platform, host, apiOpts...)
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}

	mux := http.NewServeMux()
	pages.RegisterRoutes(mux)
	apiHandler.RegisterRoutes(mux)
	mux.Handle("GET /static/", http.StripPrefix("/static/", static.Handler()))

	limiter, err := middleware.NewRateLimiter(cfg.rateLimit, []string{"/healthz", "/robots.txt", "/static/favicon.svg"})
	if err != nil {
		return fmt.Errorf("create rate limiter: %w", err)
	}
	defer limiter.Close()

	server := &http.Server{
		Addr:         ":" + cfg.port,
		Handler:      limiter.Middleware(middleware.CacheControl(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+cfg.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// migrate applies the embedded goose migrations over a dedicated
// database/sql connection.
func migrate(databaseURL string) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	return goose.Up(db, ".")
}
