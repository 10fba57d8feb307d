// file: internals/features/school/timelines/controller/timeline_item_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "escolaviva_backend/internals/helpers"
	helperAuth "escolaviva_backend/internals/helpers/auth"
	"escolaviva_backend/internals/helpers/cache"

	d "escolaviva_backend/internals/features/school/timelines/dto"
	m "escolaviva_backend/internals/features/school/timelines/model"
	svc "escolaviva_backend/internals/features/school/timelines/service"
)

func timeZero() time.Time { return time.Time{} }

/* =========================
   Controller & Constructor
   ========================= */

type TimelineItemController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Cache    cache.Cache
}

func NewItemController(db *gorm.DB, v *validator.Validate, c cache.Cache) *TimelineItemController {
	return &TimelineItemController{DB: db, Validate: v, Cache: c}
}

func (ctl *TimelineItemController) invalidateResolver(c *fiber.Ctx) {
	if ctl.Cache != nil {
		ctl.Cache.InvalidatePrefix(c.UserContext(), cache.ResolverPrefix())
	}
}

// garante que o template pertence à escola do token
func (ctl *TimelineItemController) ownedTemplate(c *fiber.Ctx, templateID uuid.UUID) (*m.TimelineTemplateModel, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var tpl m.TimelineTemplateModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_template_id = ? AND timeline_template_school_id = ?", templateID, schoolID).
		First(&tpl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(http.StatusNotFound, "rotina não encontrada")
		}
		return nil, pgError(err)
	}
	return &tpl, nil
}

/* =========================
   Create
   ========================= */

func (ctl *TimelineItemController) Create(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.ownedTemplate(c, templateID); err != nil {
		return err
	}

	var req d.CreateTimelineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// order_index default = quantidade atual de itens do template
	var count int64
	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&m.TimelineItemModel{}).
		Where("timeline_item_template_id = ?", templateID).
		Count(&count).Error; err != nil {
		return writePGError(c, err)
	}

	item, err := req.ToModel(templateID, int(count))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if !item.HasValidWindow() {
		// alerta de qualidade de dado, não bloqueia (regra: start <= end)
		c.Set("X-Data-Quality-Warning", "start_time > end_time")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Create(&item).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonCreated(c, "Atividade criada", d.FromItemModel(item))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *TimelineItemController) Patch(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.ownedTemplate(c, templateID); err != nil {
		return err
	}

	var existing m.TimelineItemModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_item_id = ? AND timeline_item_template_id = ?", itemID, templateID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "atividade não encontrada")
		}
		return writePGError(c, err)
	}

	var req d.PatchTimelineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if !existing.HasValidWindow() {
		c.Set("X-Data-Quality-Warning", "start_time > end_time")
	}

	if err := ctl.DB.WithContext(c.UserContext()).Save(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonUpdated(c, "Atividade atualizada", d.FromItemModel(existing))
}

/* =========================
   Reorder (swap com vizinho)
   ========================= */

func (ctl *TimelineItemController) Reorder(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.ownedTemplate(c, templateID); err != nil {
		return err
	}

	var req d.ReorderTimelineItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var items []m.TimelineItemModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_item_template_id = ?", templateID).
		Order("timeline_item_order_index ASC").
		Find(&items).Error; err != nil {
		return writePGError(c, err)
	}

	a, b, err := svc.SwapAdjacent(items, req.TimelineItemID, req.Direction)
	if err != nil {
		if errors.Is(err, svc.ErrReorderAtEdge) {
			return helper.JsonError(c, http.StatusConflict, err.Error())
		}
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// persiste os dois índices na mesma transação
	txErr := ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&m.TimelineItemModel{}).
			Where("timeline_item_id = ?", a.TimelineItemID).
			Update("timeline_item_order_index", a.TimelineItemOrderIndex).Error; err != nil {
			return err
		}
		return tx.Model(&m.TimelineItemModel{}).
			Where("timeline_item_id = ?", b.TimelineItemID).
			Update("timeline_item_order_index", b.TimelineItemOrderIndex).Error
	})
	if txErr != nil {
		return writePGError(c, txErr)
	}

	ctl.invalidateResolver(c)
	return helper.JsonUpdated(c, "Ordem atualizada", fiber.Map{
		"swapped": []d.TimelineItemResponse{d.FromItemModel(*a), d.FromItemModel(*b)},
	})
}

/* =========================
   Delete
   ========================= */

func (ctl *TimelineItemController) Delete(c *fiber.Ctx) error {
	templateID, err := parseUUIDParam(c, "template_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	itemID, err := parseUUIDParam(c, "item_id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if _, err := ctl.ownedTemplate(c, templateID); err != nil {
		return err
	}

	var existing m.TimelineItemModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("timeline_item_id = ? AND timeline_item_template_id = ?", itemID, templateID).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "atividade não encontrada")
		}
		return writePGError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&existing).Error; err != nil {
		return writePGError(c, err)
	}

	ctl.invalidateResolver(c)
	return helper.JsonDeleted(c, "Atividade removida", d.FromItemModel(existing))
}
