// file: internals/features/school/lesson_plans/controller/lesson_plan_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "escolaviva_backend/internals/helpers"
	helperAuth "escolaviva_backend/internals/helpers/auth"

	d "escolaviva_backend/internals/features/school/lesson_plans/dto"
	m "escolaviva_backend/internals/features/school/lesson_plans/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type LessonPlanController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LessonPlanController {
	return &LessonPlanController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s é obrigatório", name)
	}
	return uuid.Parse(idStr)
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referência não encontrada (FK violation).")
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "Dado duplicado (unique violation).")
		case "23P01":
			return helper.JsonError(c, http.StatusConflict, "Conflito de exclusão (exclusion violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func (ctl *LessonPlanController) owned(c *fiber.Ctx, id uuid.UUID) (*m.LessonPlanModel, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var plan m.LessonPlanModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("lesson_plan_id = ? AND lesson_plan_school_id = ?", id, schoolID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "plano de aula não encontrado")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &plan, nil
}

/* =========================
   Create
   ========================= */

func (ctl *LessonPlanController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateLessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	plan, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&plan).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Plano de aula criado", d.FromModel(plan))
}

/* =========================
   List / Get
   ========================= */

// List filtra por turma (obrigatório) e por intervalo de datas opcional
// (date_from / date_to, YYYY-MM-DD). Sem intervalo devolve o dia de hoje.
func (ctl *LessonPlanController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	classRaw := strings.TrimSpace(c.Query("class_id"))
	if classRaw == "" {
		return helper.JsonError(c, http.StatusBadRequest, "class_id é obrigatório")
	}
	classID, err := uuid.Parse(classRaw)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "class_id inválido")
	}

	from, to, err := resolveDateRange(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.LessonPlanModel{}).
		Where("lesson_plan_school_id = ? AND lesson_plan_class_id = ?", schoolID, classID).
		Where("lesson_plan_date BETWEEN ? AND ?", from, to)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.LessonPlanModel
	if err := q.
		Order("lesson_plan_date ASC, lesson_plan_start_time ASC NULLS LAST").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pg := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "Planos de aula", d.FromModels(rows), &pg)
}

func resolveDateRange(c *fiber.Ctx) (string, string, error) {
	today := time.Now().Format("2006-01-02")
	from := strings.TrimSpace(c.Query("date_from"))
	to := strings.TrimSpace(c.Query("date_to"))
	if from == "" && to == "" {
		return today, today, nil
	}
	if from == "" {
		from = to
	}
	if to == "" {
		to = from
	}
	for _, raw := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return "", "", fmt.Errorf("data inválida: %s (use YYYY-MM-DD)", raw)
		}
	}
	if from > to {
		from, to = to, from
	}
	return from, to, nil
}

func (ctl *LessonPlanController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	plan, err := ctl.owned(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Plano de aula", d.FromModel(*plan))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *LessonPlanController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	plan, err := ctl.owned(c, id)
	if err != nil {
		return err
	}

	var req d.PatchLessonPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Apply(plan); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(plan).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Plano de aula atualizado", d.FromModel(*plan))
}

/* =========================
   Cancel / Delete
   ========================= */

// Cancel marca o plano como cancelado sem removê-lo: o responsável continua
// vendo o bloco com o badge de cancelamento na rotina do dia.
func (ctl *LessonPlanController) Cancel(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	plan, err := ctl.owned(c, id)
	if err != nil {
		return err
	}

	plan.LessonPlanStatus = m.LessonPlanCancelled
	if err := ctl.DB.WithContext(c.UserContext()).Save(plan).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Plano de aula cancelado", d.FromModel(*plan))
}

func (ctl *LessonPlanController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	plan, err := ctl.owned(c, id)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(plan).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Plano de aula removido", d.FromModel(*plan))
}
