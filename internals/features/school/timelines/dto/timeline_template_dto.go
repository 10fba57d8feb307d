// file: internals/features/school/timelines/dto/timeline_template_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "escolaviva_backend/internals/features/school/timelines/model"
)

/* =========================================================
   Helpers
   ========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func timePtrOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateTimelineTemplateRequest struct {
	TimelineTemplateName        string  `json:"timeline_template_name" validate:"required,max=120"`
	TimelineTemplateDescription *string `json:"timeline_template_description" validate:"omitempty,max=2000"`
	TimelineTemplateIsDefault   *bool   `json:"timeline_template_is_default" validate:"omitempty"`
}

func (r CreateTimelineTemplateRequest) ToModel(schoolID uuid.UUID) model.TimelineTemplateModel {
	isDefault := false
	if r.TimelineTemplateIsDefault != nil {
		isDefault = *r.TimelineTemplateIsDefault
	}
	return model.TimelineTemplateModel{
		TimelineTemplateSchoolID:    schoolID,
		TimelineTemplateName:        strings.TrimSpace(r.TimelineTemplateName),
		TimelineTemplateDescription: trimPtr(r.TimelineTemplateDescription),
		TimelineTemplateIsDefault:   isDefault,
		TimelineTemplateIsActive:    true,
	}
}

// Update (partial)
type UpdateTimelineTemplateRequest struct {
	TimelineTemplateName        *string `json:"timeline_template_name" validate:"omitempty,max=120"`
	TimelineTemplateDescription *string `json:"timeline_template_description" validate:"omitempty,max=2000"`
	TimelineTemplateIsDefault   *bool   `json:"timeline_template_is_default" validate:"omitempty"`
	TimelineTemplateIsActive    *bool   `json:"timeline_template_is_active" validate:"omitempty"`
}

func (r UpdateTimelineTemplateRequest) Apply(m *model.TimelineTemplateModel) {
	if r.TimelineTemplateName != nil {
		if v := strings.TrimSpace(*r.TimelineTemplateName); v != "" {
			m.TimelineTemplateName = v
		}
	}
	if r.TimelineTemplateDescription != nil {
		m.TimelineTemplateDescription = trimPtr(r.TimelineTemplateDescription)
	}
	if r.TimelineTemplateIsDefault != nil {
		m.TimelineTemplateIsDefault = *r.TimelineTemplateIsDefault
	}
	if r.TimelineTemplateIsActive != nil {
		m.TimelineTemplateIsActive = *r.TimelineTemplateIsActive
	}
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type TimelineTemplateResponse struct {
	TimelineTemplateID       uuid.UUID `json:"timeline_template_id"`
	TimelineTemplateSchoolID uuid.UUID `json:"timeline_template_school_id"`

	TimelineTemplateName        string  `json:"timeline_template_name"`
	TimelineTemplateDescription *string `json:"timeline_template_description,omitempty"`
	TimelineTemplateIsDefault   bool    `json:"timeline_template_is_default"`
	TimelineTemplateIsActive    bool    `json:"timeline_template_is_active"`

	TimelineTemplateCreatedAt time.Time  `json:"timeline_template_created_at"`
	TimelineTemplateUpdatedAt *time.Time `json:"timeline_template_updated_at,omitempty"`

	Items []TimelineItemResponse `json:"items,omitempty"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func FromTemplateModel(m model.TimelineTemplateModel) TimelineTemplateResponse {
	return TimelineTemplateResponse{
		TimelineTemplateID:       m.TimelineTemplateID,
		TimelineTemplateSchoolID: m.TimelineTemplateSchoolID,

		TimelineTemplateName:        m.TimelineTemplateName,
		TimelineTemplateDescription: m.TimelineTemplateDescription,
		TimelineTemplateIsDefault:   m.TimelineTemplateIsDefault,
		TimelineTemplateIsActive:    m.TimelineTemplateIsActive,

		TimelineTemplateCreatedAt: m.TimelineTemplateCreatedAt,
		TimelineTemplateUpdatedAt: timePtrOrNil(m.TimelineTemplateUpdatedAt),
	}
}

func FromTemplateModelWithItems(m model.TimelineTemplateModel, items []model.TimelineItemModel) TimelineTemplateResponse {
	resp := FromTemplateModel(m)
	resp.Items = FromItemModels(items)
	return resp
}

func FromTemplateModels(list []model.TimelineTemplateModel) []TimelineTemplateResponse {
	out := make([]TimelineTemplateResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromTemplateModel(m))
	}
	return out
}
