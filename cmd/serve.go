package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ams-coverage/core/config"
	"ams-coverage/core/loader"
	"ams-coverage/core/logger"
	"ams-coverage/core/middleware/auth"
	"ams-coverage/core/middleware/rayid"
	"ams-coverage/feature/conformance"
	"ams-coverage/feature/coverage"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve coverage reports over HTTP",
	Long: `Starts the HTTP server exposing coverage comparisons.

Conformance packs are fetched from the configured source base URL and cached
for SERVER_CACHE_TTL_SECONDS; the catalogue is read on every request.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidReportFormat() {
			logg.Fatal("Invalid report format", zap.String("format", cfg.Server.ReportFormat))
		}

		// 3. Catalogue backends
		deps, err := connectDependencies(cfg, false, logg)
		if err != nil {
			logg.Fatal("Failed to connect catalogue backend", zap.Error(err))
		}
		source, err := newCatalogueSource(cfg, deps)
		if err != nil {
			logg.Fatal("Failed to create catalogue source", zap.Error(err))
		}

		// 4. Conformance packs (cached)
		fetcher, err := conformance.NewFetcher(cfg.Source)
		if err != nil {
			logg.Fatal("Failed to create conformance fetcher", zap.Error(err))
		}
		ttl := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
		packs := conformance.NewCachedLoader(conformance.NewLoader(fetcher, logg), ttl)

		svc := coverage.NewService(packs, fetcher, source, logg)

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		mgr := loader.NewManager()
		mgr.Register(coverage.NewFeature(svc, cfg.Server.ReportFormat))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("catalogue", source.Describe()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
