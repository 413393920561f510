package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trusted-api/core/config"
	"trusted-api/core/database"
	"trusted-api/core/loader"
	"trusted-api/core/logger"
	"trusted-api/core/metrics"
	"trusted-api/core/middleware/auth"
	"trusted-api/core/middleware/rayid"
	"trusted-api/core/notify"
	"trusted-api/core/signing"
	"trusted-api/core/storage"

	"trusted-api/feature/credentials"
	"trusted-api/feature/integrity"
	"trusted-api/feature/trusted"
	"trusted-api/feature/trusted/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "trusted-api/docs/swagger"
)

// @title Trusted Results Write API
// @version 1.0
// @description Signed write API for event results: matches, rankings, awards, team lists, alliance selections and match videos.
// @host localhost:8080
// @BasePath /

const shutdownTimeout = 10 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the trusted API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configDir)
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

		// 3. Connect to Database (required)
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Database connection failed", zap.Error(err))
		}
		logg.Info("Connected to results database", zap.String("driver", cfg.Database.Driver))

		// 4. Initialize Storage (optional archive)
		var client storage.Client
		if cfg.Storage.Enabled {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Storage.Timeout())
			err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
			cancel()
			if err != nil {
				logg.Fatal("Archive bucket unavailable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
			}
		}

		// 5. Authentication
		scheme, err := signing.ParseScheme(cfg.Auth.Scheme)
		if err != nil {
			logg.Fatal("Invalid signing scheme", zap.Error(err))
		}
		m := metrics.New()
		ttl := time.Duration(cfg.Auth.CredentialCacheTTLSeconds) * time.Second
		creds := credentials.NewCachedStore(credentials.NewGormStore(db), ttl)
		guard := credentials.NewGuard(credentials.NewVerifier(creds, scheme), cfg.Auth.IDHeader, cfg.Auth.SigHeader, logg, m)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 6. Register Features
		mgr := loader.NewManager()
		mgr.Register(trusted.NewFeature(
			store.NewGormStore(db),
			guard,
			notify.NewLogNotifier(logg),
			trusted.NewArchive(client, cfg.Storage.Bucket),
			m,
			logg,
		))
		mgr.Register(integrity.NewFeature(db, persistedModels(), client, cfg.Storage.Bucket, cfg.Server.ApiKey, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with the ray id attached
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Metrics, behind the operational api key
		if cfg.Metrics.Enabled {
			app.Get(cfg.Metrics.Path, auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}), m.Handler())
		}

		// 7. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logg.Warn("Shutdown did not complete cleanly", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
