package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AlphaJr1/AlumniFund/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar aplikasi.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
