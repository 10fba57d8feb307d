// file: internals/features/school/lesson_plans/model/lesson_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type LessonPlanStatus string

const (
	LessonPlanScheduled LessonPlanStatus = "scheduled"
	LessonPlanCancelled LessonPlanStatus = "cancelled"
)

/* =========================
   Model: LessonPlanModel
========================= */

type LessonPlanModel struct {
	// PK
	LessonPlanID uuid.UUID `gorm:"type:uuid;primaryKey;column:lesson_plan_id"`

	// Tenant + turma
	LessonPlanSchoolID uuid.UUID `gorm:"type:uuid;not null;column:lesson_plan_school_id;index"`
	LessonPlanClassID  uuid.UUID `gorm:"type:uuid;not null;column:lesson_plan_class_id;index"`

	// Dia letivo + janela (HH:MM, mesma convenção textual da timeline)
	LessonPlanDate      time.Time `gorm:"type:date;not null;column:lesson_plan_date;index"`
	LessonPlanStartTime *string   `gorm:"type:varchar(5);column:lesson_plan_start_time"`
	LessonPlanEndTime   *string   `gorm:"type:varchar(5);column:lesson_plan_end_time"`

	// Disciplina
	LessonPlanSubjectName  string  `gorm:"type:varchar(120);not null;column:lesson_plan_subject_name"`
	LessonPlanSubjectEmoji *string `gorm:"type:varchar(8);column:lesson_plan_subject_emoji"`
	LessonPlanSubjectColor *string `gorm:"type:varchar(20);column:lesson_plan_subject_color"`

	// Conteúdo
	LessonPlanTopic       *string        `gorm:"type:text;column:lesson_plan_topic"`
	LessonPlanObjective   *string        `gorm:"type:text;column:lesson_plan_objective"`
	LessonPlanMaterials   pq.StringArray `gorm:"type:text[];column:lesson_plan_materials"`
	LessonPlanHomework    *string        `gorm:"type:text;column:lesson_plan_homework"`
	LessonPlanTeacherName *string        `gorm:"type:varchar(120);column:lesson_plan_teacher_name"`
	LessonPlanAttachments datatypes.JSON `gorm:"type:jsonb;column:lesson_plan_attachments"`

	LessonPlanStatus LessonPlanStatus `gorm:"type:varchar(20);not null;default:'scheduled';column:lesson_plan_status"`

	// Timestamps
	LessonPlanCreatedAt time.Time      `gorm:"column:lesson_plan_created_at;autoCreateTime"`
	LessonPlanUpdatedAt time.Time      `gorm:"column:lesson_plan_updated_at;autoUpdateTime"`
	LessonPlanDeletedAt gorm.DeletedAt `gorm:"column:lesson_plan_deleted_at;index"`
}

func (LessonPlanModel) TableName() string { return "lesson_plans" }

func (p *LessonPlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.LessonPlanID == uuid.Nil {
		p.LessonPlanID = uuid.New()
	}
	return nil
}
