package cmd

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"line-checker/core/config"
	"line-checker/core/loader"
	"line-checker/core/logger"
	"line-checker/core/middleware/auth"
	"line-checker/core/middleware/rayid"
	"line-checker/core/storage"

	"line-checker/feature/integrity"
	"line-checker/feature/lines"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "line-checker/docs/swagger"
)

// @title Line Checker API
// @version 1.0
// @description API for checking and fixing line markers in DOCX scripts.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the line checker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
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

		// 3. Initialize Storage (Optional)
		store, err := storage.NewClient(cfg.Storage)
		switch {
		case errors.Is(err, storage.ErrDisabled):
			logg.Info("Storage disabled, bucket mode unavailable")
		case err != nil:
			logg.Fatal("Failed to create storage client", zap.Error(err))
		default:
			logg.Info("Storage enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(lines.NewFeature(store, cfg.Storage.Bucket, cfg.Lines, logg))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, []string{cfg.Lines.InputPrefix, cfg.Lines.OutputPrefix}, logg))

		// RayID first so every later log line carries it
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

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
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
	RootCmd.AddCommand(startCmd)
}
