package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"grail-tracker/core/config"
	"grail-tracker/core/database"
	"grail-tracker/core/loader"
	"grail-tracker/core/logger"
	"grail-tracker/core/middleware/auth"
	"grail-tracker/core/middleware/rayid"
	"grail-tracker/core/storage"

	"grail-tracker/feature/catalog"
	"grail-tracker/feature/useritems"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "grail-tracker/docs/swagger"
)

// @title Grail Tracker API
// @version 1.0
// @description Item catalog and per-user Holy Grail progress.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the grail-tracker server",
	Long:  `Starts the HTTP server with the catalog and user-items APIs.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configPath)
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

		// 3. Connect to Database (progress lives here)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		logg.Info("Connected to progress database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage (catalog objects)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit,
		})

		// 5. Register Features
		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(store, cfg.Storage.Bucket, cfg.Server.CatalogCacheTTL, logg))
		mgr.Register(useritems.NewFeature(db, logg))

		// RayID must be first so every log line carries it.
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

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.RequiresAuth() {
			logg.Warn("No API key configured, the API is open")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
