// file: internals/features/school/timelines/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "escolaviva_backend/internals/features/school/timelines/controller"
	"escolaviva_backend/internals/helpers/cache"
)

// TimelineUserRoutes monta a visão do responsável (somente leitura).
func TimelineUserRoutes(r fiber.Router, db *gorm.DB, c cache.Cache) {
	daily := ctl.NewDailyTimelineController(db, c)
	r.Get("/daily-timeline", daily.Get)
}
