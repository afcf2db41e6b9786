package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "pesantrenku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar secara berurutan.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
