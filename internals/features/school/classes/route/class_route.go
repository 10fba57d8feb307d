// file: internals/features/school/classes/route/class_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "escolaviva_backend/internals/features/school/classes/controller"
	"escolaviva_backend/internals/helpers/cache"
)

// ClassUserRoutes: matrículas do aluno na visão do responsável.
func ClassUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c cache.Cache) {
	cc := ctl.New(db, v, c)
	r.Get("/enrollments", cc.ListGuardianEnrollments)
}

// ClassAdminRoutes monta turmas e matrículas (admin da escola).
func ClassAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c cache.Cache) {
	cc := ctl.New(db, v, c)

	cls := r.Group("/classes")
	cls.Post("/", cc.Create)
	cls.Get("/", cc.List)
	cls.Get("/:id", cc.GetByID)
	cls.Patch("/:id", cc.Patch)
	cls.Delete("/:id", cc.Delete)
	cls.Get("/:id/enrollments", cc.ListEnrollments)

	enr := r.Group("/enrollments")
	enr.Post("/", cc.CreateEnrollment)
	enr.Patch("/:enrollment_id", cc.PatchEnrollment)
	enr.Delete("/:enrollment_id", cc.DeleteEnrollment)
}
