// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: ClassModel
========================= */

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_id"`

	// Tenant
	ClassSchoolID uuid.UUID `gorm:"type:uuid;not null;column:class_school_id;index"`

	ClassName string `gorm:"type:varchar(120);not null;column:class_name"`
	ClassYear *int   `gorm:"column:class_year"`

	// Template padrão da rotina diária (fallback da resolução): opcional
	ClassDailyTimelineID *uuid.UUID `gorm:"type:uuid;column:class_daily_timeline_id;index"`

	ClassIsActive bool `gorm:"not null;default:true;column:class_is_active"`

	// Timestamps
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;autoCreateTime"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string { return "classes" }

func (c *ClassModel) BeforeCreate(tx *gorm.DB) error {
	if c.ClassID == uuid.Nil {
		c.ClassID = uuid.New()
	}
	return nil
}
