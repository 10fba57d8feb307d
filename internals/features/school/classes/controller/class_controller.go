// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "escolaviva_backend/internals/helpers"
	helperAuth "escolaviva_backend/internals/helpers/auth"
	"escolaviva_backend/internals/helpers/cache"

	d "escolaviva_backend/internals/features/school/classes/dto"
	m "escolaviva_backend/internals/features/school/classes/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    cache.Cache
}

func New(db *gorm.DB, v *validator.Validate, c cache.Cache) *ClassController {
	return &ClassController{DB: db, Validate: v, Cache: c}
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

// Trocar o vínculo de timeline (da turma ou da matrícula) muda o resultado da
// resolução; as entradas cacheadas precisam cair na hora.
func (ctl *ClassController) invalidateResolver(c *fiber.Ctx) {
	if ctl.Cache != nil {
		ctl.Cache.InvalidatePrefix(c.UserContext(), cache.ResolverPrefix())
	}
}

/* =========================
   Turmas
   ========================= */

func (ctl *ClassController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	cls := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&cls).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Turma criada", d.FromClassModel(cls))
}

func (ctl *ClassController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.ClassModel{}).
		Where("class_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ClassModel
	if err := q.
		Order("class_name ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pg := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "Turmas", d.FromClassModels(rows), &pg)
}

func (ctl *ClassController) ownedClass(c *fiber.Ctx, id uuid.UUID) (*m.ClassModel, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var cls m.ClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_id = ? AND class_school_id = ?", id, schoolID).
		First(&cls).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "turma não encontrada")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &cls, nil
}

func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	cls, err := ctl.ownedClass(c, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Turma", d.FromClassModel(*cls))
}

func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	cls, err := ctl.ownedClass(c, id)
	if err != nil {
		return err
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Apply(cls)

	if err := ctl.DB.WithContext(c.UserContext()).Save(cls).Error; err != nil {
		return writePGError(c, err)
	}

	if req.ClassDailyTimelineID != nil {
		ctl.invalidateResolver(c)
	}
	return helper.JsonUpdated(c, "Turma atualizada", d.FromClassModel(*cls))
}

func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	cls, err := ctl.ownedClass(c, id)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(cls).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonDeleted(c, "Turma removida", d.FromClassModel(*cls))
}

/* =========================
   Matrículas
   ========================= */

func (ctl *ClassController) CreateEnrollment(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	enr := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&enr).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Matrícula criada", d.FromEnrollmentModel(enr))
}

func (ctl *ClassController) ListEnrollments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var rows []m.ClassEnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_enrollment_school_id = ? AND class_enrollment_class_id = ?", schoolID, classID).
		Order("class_enrollment_created_at ASC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Matrículas", d.FromEnrollmentModels(rows))
}

// ListGuardianEnrollments: visão do responsável: matrículas ativas do aluno
// selecionado no cliente, sempre dentro da escola do token.
func (ctl *ClassController) ListGuardianEnrollments(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	studentRaw := strings.TrimSpace(c.Query("student_id"))
	if studentRaw == "" {
		return helper.JsonError(c, http.StatusBadRequest, "student_id é obrigatório")
	}
	studentID, err := uuid.Parse(studentRaw)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "student_id inválido")
	}

	var rows []m.ClassEnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_enrollment_school_id = ? AND class_enrollment_student_id = ? AND class_enrollment_status = ?",
			schoolID, studentID, m.EnrollmentActive).
		Order("class_enrollment_created_at ASC").
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "Matrículas", d.FromEnrollmentModels(rows))
}

func (ctl *ClassController) ownedEnrollment(c *fiber.Ctx, id uuid.UUID) (*m.ClassEnrollmentModel, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var enr m.ClassEnrollmentModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_enrollment_id = ? AND class_enrollment_school_id = ?", id, schoolID).
		First(&enr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "matrícula não encontrada")
		}
		return nil, fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return &enr, nil
}

func (ctl *ClassController) PatchEnrollment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "enrollment_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	enr, err := ctl.ownedEnrollment(c, id)
	if err != nil {
		return err
	}

	var req d.UpdateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Apply(enr)

	if err := ctl.DB.WithContext(c.UserContext()).Save(enr).Error; err != nil {
		return writePGError(c, err)
	}

	if req.ClassEnrollmentDailyTimelineID != nil {
		ctl.invalidateResolver(c)
	}
	return helper.JsonUpdated(c, "Matrícula atualizada", d.FromEnrollmentModel(*enr))
}

func (ctl *ClassController) DeleteEnrollment(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "enrollment_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	enr, err := ctl.ownedEnrollment(c, id)
	if err != nil {
		return err
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(enr).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonDeleted(c, "Matrícula removida", d.FromEnrollmentModel(*enr))
}
