// file: internals/features/school/settings/controller/school_setting_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "escolaviva_backend/internals/features/school/settings/dto"
	m "escolaviva_backend/internals/features/school/settings/model"
	svc "escolaviva_backend/internals/features/school/settings/service"
	helper "escolaviva_backend/internals/helpers"
	helperAuth "escolaviva_backend/internals/helpers/auth"
)

type SchoolSettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SchoolSettingController {
	return &SchoolSettingController{DB: db, Validate: v}
}

/* =========================
   List / Get
   ========================= */

func (ctl *SchoolSettingController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []m.SchoolSettingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_setting_school_id = ?", schoolID).
		Order("school_setting_key ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Settings", d.FromModels(rows))
}

func (ctl *SchoolSettingController) GetByKey(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return helper.JsonError(c, http.StatusBadRequest, "key é obrigatória")
	}

	value, found, err := svc.GetSetting(c.UserContext(), ctl.DB, schoolID, key)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if !found {
		return helper.JsonError(c, http.StatusNotFound, "setting não encontrada")
	}
	return helper.JsonOK(c, "Setting", fiber.Map{
		"school_setting_key":   key,
		"school_setting_value": value,
	})
}

/* =========================
   Upsert
   ========================= */

func (ctl *SchoolSettingController) Upsert(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.UpsertSchoolSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := svc.SetSetting(c.UserContext(), ctl.DB, schoolID, strings.TrimSpace(req.SchoolSettingKey), req.SchoolSettingValue); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Setting salva", fiber.Map{
		"school_setting_key":   strings.TrimSpace(req.SchoolSettingKey),
		"school_setting_value": req.SchoolSettingValue,
	})
}
