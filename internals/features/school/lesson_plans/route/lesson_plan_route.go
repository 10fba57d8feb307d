// file: internals/features/school/lesson_plans/route/lesson_plan_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "escolaviva_backend/internals/features/school/lesson_plans/controller"
)

// LessonPlanAdminRoutes monta o CRUD de planos de aula (admin/professor).
func LessonPlanAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	c := ctl.New(db, v)

	lp := r.Group("/lesson-plans")
	lp.Post("/", c.Create)
	lp.Get("/", c.List)
	lp.Get("/:id", c.GetByID)
	lp.Patch("/:id", c.Patch)
	lp.Post("/:id/cancel", c.Cancel)
	lp.Delete("/:id", c.Delete)
}
