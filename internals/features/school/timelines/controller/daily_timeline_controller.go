// file: internals/features/school/timelines/controller/daily_timeline_controller.go
package controller

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "escolaviva_backend/internals/helpers"
	helperAuth "escolaviva_backend/internals/helpers/auth"
	"escolaviva_backend/internals/helpers/cache"

	lpmodel "escolaviva_backend/internals/features/school/lesson_plans/model"
	settingsSvc "escolaviva_backend/internals/features/school/settings/service"
	d "escolaviva_backend/internals/features/school/timelines/dto"
	svc "escolaviva_backend/internals/features/school/timelines/service"
)

/* =========================
   Controller & Constructor
   ========================= */

// DailyTimelineController entrega a visão do responsável: rotina resolvida
// (override da matrícula → padrão da turma) + planos de aula do dia, já
// mesclados e com status temporal derivado.
type DailyTimelineController struct {
	DB       *gorm.DB
	Resolver *svc.Resolver
}

func NewDailyTimelineController(db *gorm.DB, c cache.Cache) *DailyTimelineController {
	return &DailyTimelineController{
		DB:       db,
		Resolver: svc.NewResolver(svc.NewGormStore(db), c),
	}
}

/* =========================
   GET /daily-timeline
   ========================= */

// Query params:
//
//	class_id     : turma (opcional)
//	enrollment_id: matrícula (opcional; tem precedência na resolução)
//	date         : YYYY-MM-DD (opcional; default = hoje)
func (ctl *DailyTimelineController) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	classID, err := parseUUIDQuery(c, "class_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	enrollmentID, err := parseUUIDQuery(c, "enrollment_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	now := time.Now()
	date := now.Format("2006-01-02")
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "date deve ser YYYY-MM-DD")
		}
		date = parsed.Format("2006-01-02")
	}

	// Toggle por escola: desligado devolve casca vazia, não erro.
	if !settingsSvc.DailyTimelineEnabled(c.UserContext(), ctl.DB, schoolID) {
		return helper.JsonOK(c, "Rotina do dia", d.DailyTimelineResponse{
			Enabled: false,
			Date:    date,
			Entries: []d.TimelineEntryView{},
		})
	}

	// Sem turma nem matrícula não há o que resolver.
	if classID == nil && enrollmentID == nil {
		return helper.JsonOK(c, "Rotina do dia", d.NewDailyTimelineResponse(date, nil, nil))
	}

	ctx := c.UserContext()

	var rt *svc.ResolvedTimeline
	var plans []lpmodel.LessonPlanModel

	if classID != nil {
		// Turma conhecida: busca dos planos corre em paralelo com a resolução.
		plansCh := make(chan []lpmodel.LessonPlanModel, 1)
		go func() {
			plansCh <- ctl.fetchPlans(ctx, schoolID, *classID, date)
		}()
		rt = ctl.Resolver.Resolve(ctx, classID, enrollmentID)
		plans = <-plansCh
	} else {
		// Só matrícula: a turma efetiva sai da própria resolução.
		rt = ctl.Resolver.Resolve(ctx, nil, enrollmentID)
		if rt != nil && rt.ClassID != nil {
			plans = ctl.fetchPlans(ctx, schoolID, *rt.ClassID, date)
		}
	}

	var templateEntries []svc.TimelineEntry
	if rt != nil {
		templateEntries = svc.FromItems(rt.Items)
	}
	// datas fora de hoje não usam o relógio de parede: dia passado sai todo
	// como past e dia futuro todo como future
	merged := svc.Merge(templateEntries, svc.FromLessonPlans(plans), svc.ClockFor(date, now))

	return helper.JsonOK(c, "Rotina do dia", d.NewDailyTimelineResponse(date, rt, merged))
}

// fetchPlans degrada para vazio em erro: plano de aula enriquece a rotina,
// nunca a derruba.
func (ctl *DailyTimelineController) fetchPlans(ctx context.Context, schoolID, classID uuid.UUID, date string) []lpmodel.LessonPlanModel {
	var plans []lpmodel.LessonPlanModel
	if err := ctl.DB.WithContext(ctx).
		Where("lesson_plan_school_id = ? AND lesson_plan_class_id = ? AND lesson_plan_date = ?",
			schoolID, classID, date).
		Order("lesson_plan_start_time ASC NULLS LAST").
		Find(&plans).Error; err != nil {
		log.Printf("[ERROR] daily timeline: lesson plans class=%s date=%s: %v", classID, date, err)
		return nil
	}
	return plans
}

func parseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
