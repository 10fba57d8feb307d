// file: internals/features/school/settings/model/school_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: SchoolSettingModel
========================= */

// Chave/valor genérico por escola (flags de exibição etc). Uma linha por
// (escola, chave).
type SchoolSettingModel struct {
	// PK
	SchoolSettingID uuid.UUID `gorm:"type:uuid;primaryKey;column:school_setting_id"`

	// Tenant
	SchoolSettingSchoolID uuid.UUID `gorm:"type:uuid;not null;column:school_setting_school_id;uniqueIndex:uq_school_setting_key"`

	SchoolSettingKey   string `gorm:"type:varchar(80);not null;column:school_setting_key;uniqueIndex:uq_school_setting_key"`
	SchoolSettingValue string `gorm:"type:text;not null;column:school_setting_value"`

	// Timestamps
	SchoolSettingCreatedAt time.Time `gorm:"column:school_setting_created_at;autoCreateTime"`
	SchoolSettingUpdatedAt time.Time `gorm:"column:school_setting_updated_at;autoUpdateTime"`
}

func (SchoolSettingModel) TableName() string { return "school_settings" }

func (s *SchoolSettingModel) BeforeCreate(tx *gorm.DB) error {
	if s.SchoolSettingID == uuid.Nil {
		s.SchoolSettingID = uuid.New()
	}
	return nil
}
