package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"server-launcher/core/config"
	"server-launcher/core/launcher"
	"server-launcher/core/loader"
	"server-launcher/core/logger"
	"server-launcher/core/middleware/auth"
	"server-launcher/core/middleware/rayid"
	"server-launcher/core/storage"
	"server-launcher/feature/secrets"
	"server-launcher/feature/status"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "server-launcher/docs/swagger"
)

// @title Server Launcher Status API
// @version 1.0
// @description Status of the launched backend server and its secret bundles.
// @host localhost:9090
// @BasePath /

// shutdownGrace is how long serve waits for the child after forwarding a signal.
const shutdownGrace = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Launch the backend server",
	Long: `Runs the function entry point: injects the secret bundle when enabled, defaults
the port variable, switches to the application root and starts the server binary.
The command then stays up until it receives SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(stop)

		return runServe(cmd.Context(), cfg, logg, stop)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// runServe invokes the function and blocks until stop delivers a signal.
func runServe(ctx context.Context, cfg *config.Config, logg *zap.Logger, stop <-chan os.Signal) error {
	if cfg.Server.ConflictsWith(strconv.Itoa(cfg.Function.Port)) {
		return fmt.Errorf("status server port %s conflicts with the backend port", cfg.Server.Port)
	}

	var secretSvc *secrets.Service
	if cfg.Secrets.Enabled {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		secretSvc = secrets.NewService(store, cfg.Storage.Bucket, cfg.Secrets.Prefix, logg)
	}

	statusSvc := status.NewService(cfg.Function.App, cfg.Function.Spec(), logg)
	l := launcher.New(cfg.Launcher, logg)

	var child *launcher.Child
	app, err := declareApp(cfg, func(ctx context.Context) error {
		if secretSvc != nil {
			if _, err := secretSvc.Inject(ctx, cfg.Function.SecretName, launcher.OSEnvironment{}, cfg.Secrets.Override); err != nil {
				return err
			}
		}

		c, err := l.Launch(ctx)
		if err != nil {
			return err
		}
		child = c
		statusSvc.Track(c)
		return nil
	})
	if err != nil {
		return err
	}

	var srv *fiber.App
	if cfg.Server.Enabled {
		srv, err = newStatusServer(cfg, logg, statusSvc, secretSvc)
		if err != nil {
			return err
		}
		go func() {
			logg.Info("Starting status server", zap.String("addr", cfg.Server.Addr()))
			if err := srv.Listen(cfg.Server.Addr()); err != nil {
				logg.Error("Status server stopped", zap.Error(err))
			}
		}()
		defer func() { _ = srv.Shutdown() }()
	}

	if err := app.Invoke(ctx, cfg.Function.Name); err != nil {
		if child != nil {
			_ = child.Signal(os.Kill)
		}
		return err
	}
	logg.Info("Function ready",
		zap.String("app", cfg.Function.App),
		zap.String("function", cfg.Function.Name),
		zap.Int("port", cfg.Function.Port),
		zap.String("label", cfg.Function.Label),
	)

	sig := <-stop
	logg.Info("Shutting down", zap.String("signal", sig.String()))
	if err := child.Signal(sig); err != nil {
		logg.Warn("Failed to forward signal", zap.Error(err))
	}
	select {
	case <-child.Done():
	case <-time.After(shutdownGrace):
		logg.Warn("Server process still running after grace period", zap.Duration("grace", shutdownGrace))
	}
	return nil
}

func newStatusServer(cfg *config.Config, logg *zap.Logger, statusSvc *status.Service, secretSvc *secrets.Service) (*fiber.App, error) {
	srv := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(status.NewFeature(statusSvc))
	mgr.Register(secrets.NewFeature(secretSvc))

	// RayID first so every later log line carries it.
	srv.Use(rayid.New())
	srv.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		l.Debug("Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	srv.Get("/swagger/*", swagger.HandlerDefault)
	srv.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	if _, err := mgr.LoadAll(srv); err != nil {
		return nil, err
	}
	return srv, nil
}
