package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"layout-catalog/core/loader"
	"layout-catalog/core/logger"
	"layout-catalog/core/middleware/auth"
	"layout-catalog/core/middleware/rayid"
	"layout-catalog/feature/integrity"
	"layout-catalog/feature/layouts"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "layout-catalog/docs/swagger"
)

// @title Layout Catalog API
// @version 1.0
// @description API for syncing and browsing the page layout catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the layout catalog server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer rt.Close()
		logg := rt.log
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(layouts.NewFeature(rt.service))
		mgr.Register(integrity.NewFeature(rt.storage, rt.cfg.Storage.Bucket, logg, rt.db))

		// RayID must be first to trace everything
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

		if rt.cfg.Server.IsProtected() {
			app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
		} else {
			logg.Warn("No API key configured, the API is unprotected")
		}

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errc := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			errc <- app.Listen(rt.cfg.Server.Address())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errc:
			return err
		case <-sig:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
