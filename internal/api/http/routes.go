package httpapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/tennis-dashboard/internal/dashboard"
)

// RegisterRoutes wires the dashboard page into the Fiber app. The app must
// be configured with dashboard.Views.
func RegisterRoutes(app *fiber.App, d *dashboard.Dashboard) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render(dashboard.PageView, d.ViewData())
	})
}
