package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/maestroya/backend/app/controllers"
	"github.com/maestroya/backend/internal/pkg/env"
)

// InstallRouter registers the health probe and the internal ops surface.
// Everything under /internal sits behind basic auth; these endpoints are for
// operators, not marketplace users.
func InstallRouter(app *fiber.App) {
	app.Get("/healthz", controllers.HandleHealth)

	internal := app.Group("/internal",
		limiter.New(),
		basicauth.New(basicauth.Config{
			Users: map[string]string{
				env.GetEnv("OPS_USER", "ops"): env.GetEnv("OPS_PASSWORD", "ops"),
			},
		}),
	)

	internal.Get("/closure/status", controllers.HandleClosureStatus)
	internal.Post("/closure/run", controllers.HandleClosureRun)
	internal.Get("/settings/cash", controllers.HandleGetCashSettings)
	internal.Put("/settings/cash", controllers.HandleUpdateCashSettings)
}
