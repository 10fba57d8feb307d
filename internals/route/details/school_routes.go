// file: internals/route/details/school_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classRoute "escolaviva_backend/internals/features/school/classes/route"
	lessonPlanRoute "escolaviva_backend/internals/features/school/lesson_plans/route"
	settingsRoute "escolaviva_backend/internals/features/school/settings/route"
	timelineRoute "escolaviva_backend/internals/features/school/timelines/route"
	"escolaviva_backend/internals/helpers/cache"
)

// SchoolUserRoutes: visão do responsável.
func SchoolUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c cache.Cache) {
	timelineRoute.TimelineUserRoutes(r, db, c)
	classRoute.ClassUserRoutes(r, db, v, c)
}

// SchoolAdminRoutes: editor da escola (staff).
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, c cache.Cache) {
	timelineRoute.TimelineAdminRoutes(r, db, v, c)
	lessonPlanRoute.LessonPlanAdminRoutes(r, db, v)
	classRoute.ClassAdminRoutes(r, db, v, c)
	settingsRoute.SettingsAdminRoutes(r, db, v)
}
