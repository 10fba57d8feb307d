// file: internals/features/school/timelines/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "escolaviva_backend/internals/features/school/timelines/controller"
	"escolaviva_backend/internals/helpers/cache"
)

// TimelineAdminRoutes monta o editor de rotinas (admin da escola).
func TimelineAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c cache.Cache) {
	tplCtl := ctl.New(db, v, c)
	itemCtl := ctl.NewItemController(db, v, c)

	tpl := r.Group("/timeline-templates")
	tpl.Post("/", tplCtl.Create)
	tpl.Get("/", tplCtl.List)
	tpl.Get("/:id", tplCtl.GetByID)
	tpl.Patch("/:id", tplCtl.Patch)
	tpl.Post("/:id/duplicate", tplCtl.Duplicate)
	tpl.Delete("/:id", tplCtl.Delete)

	items := tpl.Group("/:template_id/items")
	items.Post("/", itemCtl.Create)
	items.Post("/reorder", itemCtl.Reorder)
	items.Patch("/:item_id", itemCtl.Patch)
	items.Delete("/:item_id", itemCtl.Delete)
}
