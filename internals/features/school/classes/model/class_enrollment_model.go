// file: internals/features/school/classes/model/class_enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type EnrollmentStatus string

const (
	EnrollmentActive   EnrollmentStatus = "active"
	EnrollmentInactive EnrollmentStatus = "inactive"
)

/* =========================
   Model: ClassEnrollmentModel
========================= */

type ClassEnrollmentModel struct {
	// PK
	ClassEnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_enrollment_id"`

	// Tenant
	ClassEnrollmentSchoolID uuid.UUID `gorm:"type:uuid;not null;column:class_enrollment_school_id;index"`

	ClassEnrollmentClassID   uuid.UUID `gorm:"type:uuid;not null;column:class_enrollment_class_id;index"`
	ClassEnrollmentStudentID uuid.UUID `gorm:"type:uuid;not null;column:class_enrollment_student_id;index"`

	// Override da rotina diária por matrícula: vence o padrão da turma
	ClassEnrollmentDailyTimelineID *uuid.UUID `gorm:"type:uuid;column:class_enrollment_daily_timeline_id;index"`

	ClassEnrollmentStatus EnrollmentStatus `gorm:"type:varchar(20);not null;default:'active';column:class_enrollment_status"`

	// Timestamps
	ClassEnrollmentCreatedAt time.Time      `gorm:"column:class_enrollment_created_at;autoCreateTime"`
	ClassEnrollmentUpdatedAt time.Time      `gorm:"column:class_enrollment_updated_at;autoUpdateTime"`
	ClassEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:class_enrollment_deleted_at;index"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }

func (e *ClassEnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.ClassEnrollmentID == uuid.Nil {
		e.ClassEnrollmentID = uuid.New()
	}
	return nil
}
