// file: internals/features/school/settings/route/settings_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "escolaviva_backend/internals/features/school/settings/controller"
)

// SettingsAdminRoutes monta as settings por escola (inclui o toggle
// daily_timeline_enabled).
func SettingsAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	c := ctl.New(db, v)

	s := r.Group("/settings")
	s.Get("/", c.List)
	s.Get("/:key", c.GetByKey)
	s.Put("/", c.Upsert)
}
