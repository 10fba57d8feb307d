package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registra a pilha base da aplicação.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(MetricsMiddleware())
}
