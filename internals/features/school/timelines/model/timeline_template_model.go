// file: internals/features/school/timelines/model/timeline_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: TimelineTemplateModel
========================= */

type TimelineTemplateModel struct {
	// PK
	TimelineTemplateID uuid.UUID `gorm:"type:uuid;primaryKey;column:timeline_template_id"`

	// Tenant
	TimelineTemplateSchoolID uuid.UUID `gorm:"type:uuid;not null;column:timeline_template_school_id;index"`

	TimelineTemplateName        string  `gorm:"type:varchar(120);not null;column:timeline_template_name"`
	TimelineTemplateDescription *string `gorm:"type:text;column:timeline_template_description"`

	// is_default é informativo: a resolução usa apenas os vínculos explícitos
	// de turma/matrícula.
	TimelineTemplateIsDefault bool `gorm:"not null;default:false;column:timeline_template_is_default"`
	TimelineTemplateIsActive  bool `gorm:"not null;default:true;column:timeline_template_is_active"`

	// Timestamps
	TimelineTemplateCreatedAt time.Time      `gorm:"column:timeline_template_created_at;autoCreateTime"`
	TimelineTemplateUpdatedAt time.Time      `gorm:"column:timeline_template_updated_at;autoUpdateTime"`
	TimelineTemplateDeletedAt gorm.DeletedAt `gorm:"column:timeline_template_deleted_at;index"`

	// Itens pertencem exclusivamente ao template (delete em cascata no banco).
	Items []TimelineItemModel `gorm:"foreignKey:TimelineItemTemplateID;references:TimelineTemplateID;constraint:OnDelete:CASCADE"`
}

func (TimelineTemplateModel) TableName() string { return "timeline_templates" }

func (t *TimelineTemplateModel) BeforeCreate(tx *gorm.DB) error {
	if t.TimelineTemplateID == uuid.Nil {
		t.TimelineTemplateID = uuid.New()
	}
	return nil
}
