// file: internals/features/school/timelines/controller/timeline_template_controller.go
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

	d "escolaviva_backend/internals/features/school/timelines/dto"
	m "escolaviva_backend/internals/features/school/timelines/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type TimelineTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    cache.Cache
}

func New(db *gorm.DB, v *validator.Validate, c cache.Cache) *TimelineTemplateController {
	return &TimelineTemplateController{DB: db, Validate: v, Cache: c}
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

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation
	// 23505 = unique_violation
	// 23P01 = exclusion_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referência não encontrada (FK violation)."
		case "23505":
			return http.StatusConflict, "Dado duplicado (unique violation)."
		case "23P01":
			return http.StatusConflict, "Conflito de exclusão (exclusion violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

// pgError: para helpers que devolvem erro ao handler em vez de escrever a
// resposta; o ErrorHandler do app aplica o envelope.
func pgError(err error) error {
	code, msg := mapPGError(err)
	return fiber.NewError(code, msg)
}

// Mutações no editor evictam as entradas do resolver proativamente, em vez
// de esperar o TTL.
func (ctl *TimelineTemplateController) invalidateResolver(c *fiber.Ctx) {
	if ctl.Cache != nil {
		ctl.Cache.InvalidatePrefix(c.UserContext(), cache.ResolverPrefix())
	}
}

/* =========================
   Create
   ========================= */

func (ctl *TimelineTemplateController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.CreateTimelineTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tpl := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.UserContext()).Create(&tpl).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonCreated(c, "Rotina criada", d.FromTemplateModel(tpl))
}

/* =========================
   List / Get
   ========================= */

func (ctl *TimelineTemplateController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TimelineTemplateModel{}).
		Where("timeline_template_school_id = ?", schoolID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.TimelineTemplateModel
	if err := q.
		Order("timeline_template_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pg := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "Rotinas", d.FromTemplateModels(rows), &pg)
}

func (ctl *TimelineTemplateController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tpl, items, err := ctl.findTemplate(c, schoolID, id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Rotina", d.FromTemplateModelWithItems(*tpl, items))
}

func (ctl *TimelineTemplateController) findTemplate(c *fiber.Ctx, schoolID, id uuid.UUID) (*m.TimelineTemplateModel, []m.TimelineItemModel, error) {
	var tpl m.TimelineTemplateModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_template_id = ? AND timeline_template_school_id = ?", id, schoolID).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(http.StatusNotFound, "rotina não encontrada")
		}
		return nil, nil, pgError(err)
	}

	var items []m.TimelineItemModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_item_template_id = ?", id).
		Order("timeline_item_order_index ASC").
		Find(&items).Error; err != nil {
		return nil, nil, pgError(err)
	}
	return &tpl, items, nil
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *TimelineTemplateController) Patch(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimelineTemplateModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_template_id = ? AND timeline_template_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "rotina não encontrada")
		}
		return writePGError(c, err)
	}

	var req d.UpdateTimelineTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	req.Apply(&existing)

	if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonUpdated(c, "Rotina atualizada", d.FromTemplateModel(existing))
}

/* =========================
   Duplicate
   ========================= */

// Duplicate copia o template e todos os itens com identidades novas;
// is_default é sempre resetado para false na cópia.
func (ctl *TimelineTemplateController) Duplicate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	tpl, items, err := ctl.findTemplate(c, schoolID, id)
	if err != nil {
		return err
	}

	copyTpl := *tpl
	copyTpl.TimelineTemplateID = uuid.Nil // novo id no BeforeCreate
	copyTpl.TimelineTemplateName = tpl.TimelineTemplateName + " (cópia)"
	copyTpl.TimelineTemplateIsDefault = false
	copyTpl.TimelineTemplateCreatedAt = timeZero()
	copyTpl.TimelineTemplateUpdatedAt = timeZero()
	copyTpl.Items = nil

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&copyTpl).Error; err != nil {
			return err
		}
		for i := range items {
			it := items[i]
			it.TimelineItemID = uuid.Nil
			it.TimelineItemTemplateID = copyTpl.TimelineTemplateID
			it.TimelineItemCreatedAt = timeZero()
			it.TimelineItemUpdatedAt = timeZero()
			if err := tx.Create(&it).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return writePGError(c, txErr)
	}

	ctl.invalidateResolver(c)
	return helper.JsonCreated(c, "Rotina duplicada", d.FromTemplateModel(copyTpl))
}

/* =========================
   Soft Delete
   ========================= */

func (ctl *TimelineTemplateController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.TimelineTemplateModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_template_id = ? AND timeline_template_school_id = ?", id, schoolID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "rotina não encontrada")
		}
		return writePGError(c, err)
	}

	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("timeline_item_template_id = ?", id).
			Delete(&m.TimelineItemModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&existing).Error
	})
	if txErr != nil {
		return writePGError(c, txErr)
	}

	ctl.invalidateResolver(c)
	return helper.JsonDeleted(c, "Rotina removida", d.FromTemplateModel(existing))
}
