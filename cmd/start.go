package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"state-reconciler/core/config"
	"state-reconciler/core/database"
	"state-reconciler/core/loader"
	"state-reconciler/core/logger"
	"state-reconciler/core/middleware/auth"
	"state-reconciler/core/middleware/rayid"
	"state-reconciler/core/storage"

	"state-reconciler/feature/artifacts"
	artifactmodels "state-reconciler/feature/artifacts/models"
	"state-reconciler/feature/usergroups"
	usergroupmodels "state-reconciler/feature/usergroups/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "state-reconciler/docs/swagger"
)

// @title State Reconciler API
// @version 1.0
// @description API for planning and applying state reconciliation.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled integrations.`,
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

		if !cfg.Server.IsValidEnvironment() {
			logg.Fatal("Invalid environment", zap.String("environment", cfg.Server.Environment))
		}

		// 3. Connect to Database
		// The database holds the declared state; nothing works without it.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(db,
			&usergroupmodels.Usergroup{},
			&usergroupmodels.UsergroupMember{},
			&usergroupmodels.UsergroupChannel{},
			&artifactmodels.Artifact{},
		); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(usergroups.NewFeature(db, usergroupsProvider(), logg, cfg.Reconcile))
		mgr.Register(artifacts.NewFeature(store, cfg.Storage.Bucket, db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
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

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		// Every plan and apply endpoint requires the API key.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

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
		_ = app.Shutdown()
	},
}

// usergroupsProvider returns the vendor client for the usergroups
// integration. No vendor client is compiled into this build; the feature
// stays registered but disabled until one is wired here.
//
// TODO: wire the real chat provider client once its API access is settled.
func usergroupsProvider() usergroups.Provider {
	return nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
