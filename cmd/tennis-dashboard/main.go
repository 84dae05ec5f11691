package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	httpapi "github.com/i474232898/tennis-dashboard/internal/api/http"
	"github.com/i474232898/tennis-dashboard/internal/config"
	"github.com/i474232898/tennis-dashboard/internal/dashboard"
	"github.com/i474232898/tennis-dashboard/internal/tennis"
)

func main() {
	// Diagnostics go to the console alongside the data overview.
	log.SetOutput(os.Stdout)

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	log.Printf("INFO: data file path: %s", cfg.DataFilePath)

	// Read data. Read failures are reported by the loader; an empty dataset stops the run.
	raw, err := tennis.NewLoader(cfg.DataFilePath).Load()
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}

	// Preprocess with the fixed column types.
	res := tennis.NewPreprocessor(config.DefaultTypeMap(), os.Stdout).Preprocess(raw)
	if res.Degraded() {
		log.Printf("INFO: continuing with partially converted data (%d conversion errors)", len(res.Recovered))
	}

	// Build the figure once; it is served unchanged for the life of the process.
	fig, err := dashboard.BuildFigure(res.Dataset, dashboard.DefaultFigureSpec())
	if err != nil {
		log.Fatalf("failed to build figure: %v", err)
	}
	dash, err := dashboard.New(dashboard.DefaultTitle, dashboard.DefaultCaption, fig)
	if err != nil {
		log.Fatalf("failed to render dashboard: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "tennis-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		Views:                 dashboard.Views(cfg.Debug),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).SendString(err.Error())
		},
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: os.Stdout,
	}))
	app.Use(recover.New())

	httpapi.RegisterRoutes(app, dash)

	go func() {
		log.Printf("INFO: dashboard available at http://%s/", cfg.Addr())
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
