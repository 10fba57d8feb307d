// file: internals/features/school/settings/dto/school_setting_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "escolaviva_backend/internals/features/school/settings/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type UpsertSchoolSettingRequest struct {
	SchoolSettingKey   string `json:"school_setting_key" validate:"required,max=80"`
	SchoolSettingValue string `json:"school_setting_value" validate:"required,max=4000"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type SchoolSettingResponse struct {
	SchoolSettingID       uuid.UUID `json:"school_setting_id"`
	SchoolSettingSchoolID uuid.UUID `json:"school_setting_school_id"`
	SchoolSettingKey      string    `json:"school_setting_key"`
	SchoolSettingValue    string    `json:"school_setting_value"`
	SchoolSettingUpdatedAt time.Time `json:"school_setting_updated_at"`
}

func FromModel(m model.SchoolSettingModel) SchoolSettingResponse {
	return SchoolSettingResponse{
		SchoolSettingID:        m.SchoolSettingID,
		SchoolSettingSchoolID:  m.SchoolSettingSchoolID,
		SchoolSettingKey:       m.SchoolSettingKey,
		SchoolSettingValue:     m.SchoolSettingValue,
		SchoolSettingUpdatedAt: m.SchoolSettingUpdatedAt,
	}
}

func FromModels(list []model.SchoolSettingModel) []SchoolSettingResponse {
	out := make([]SchoolSettingResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
