// file: internals/route/index.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"escolaviva_backend/internals/configs"
	database "escolaviva_backend/internals/databases"
	"escolaviva_backend/internals/helpers/cache"
	"escolaviva_backend/internals/middlewares"
	authMw "escolaviva_backend/internals/middlewares/auth_school"
	featMw "escolaviva_backend/internals/middlewares/features"
	"escolaviva_backend/internals/route/details"
)

// SetupRoutes monta os três blocos de rota:
//
//	/api/public: sem autenticação (health-check de domínio etc.)
//	/api/u     : autenticado (responsáveis e staff)
//	/api/a     : autenticado + staff da escola (editor)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	// Redis quando disponível; memória como degradação local.
	var c cache.Cache
	if database.RDB != nil && database.RedisHealthy() {
		c = cache.NewRedis(database.RDB)
	} else {
		c = cache.NewMemory()
	}

	auth := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	api := app.Group("/api")

	public := api.Group("/public")
	public.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "pong"})
	})

	user := api.Group("/u", auth)
	admin := api.Group("/a", auth, featMw.IsSchoolAdmin(), middlewares.AdminWriteRateLimiter())

	details.SchoolUserRoutes(user, db, v, c)
	details.SchoolAdminRoutes(admin, db, v, c)
}
