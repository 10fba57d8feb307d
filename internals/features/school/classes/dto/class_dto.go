// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "escolaviva_backend/internals/features/school/classes/model"
)

/* =========================================================
   1) REQUESTS: turma
   ========================================================= */

type CreateClassRequest struct {
	ClassName string `json:"class_name" validate:"required,max=120"`
	ClassYear *int   `json:"class_year" validate:"omitempty,min=2000,max=2100"`

	ClassDailyTimelineID *uuid.UUID `json:"class_daily_timeline_id"`
}

func (r CreateClassRequest) ToModel(schoolID uuid.UUID) model.ClassModel {
	return model.ClassModel{
		ClassSchoolID:        schoolID,
		ClassName:            strings.TrimSpace(r.ClassName),
		ClassYear:            r.ClassYear,
		ClassDailyTimelineID: r.ClassDailyTimelineID,
		ClassIsActive:        true,
	}
}

type UpdateClassRequest struct {
	ClassName *string `json:"class_name" validate:"omitempty,max=120"`
	ClassYear *int    `json:"class_year" validate:"omitempty,min=2000,max=2100"`

	// uuid.Nil desvincula o template padrão da turma.
	ClassDailyTimelineID *uuid.UUID `json:"class_daily_timeline_id"`

	ClassIsActive *bool `json:"class_is_active"`
}

func (r UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassYear != nil {
		m.ClassYear = r.ClassYear
	}
	if r.ClassDailyTimelineID != nil {
		if *r.ClassDailyTimelineID == uuid.Nil {
			m.ClassDailyTimelineID = nil
		} else {
			m.ClassDailyTimelineID = r.ClassDailyTimelineID
		}
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}

/* =========================================================
   2) REQUESTS: matrícula
   ========================================================= */

type CreateEnrollmentRequest struct {
	ClassEnrollmentClassID   uuid.UUID `json:"class_enrollment_class_id" validate:"required"`
	ClassEnrollmentStudentID uuid.UUID `json:"class_enrollment_student_id" validate:"required"`

	ClassEnrollmentDailyTimelineID *uuid.UUID `json:"class_enrollment_daily_timeline_id"`
}

func (r CreateEnrollmentRequest) ToModel(schoolID uuid.UUID) model.ClassEnrollmentModel {
	return model.ClassEnrollmentModel{
		ClassEnrollmentSchoolID:        schoolID,
		ClassEnrollmentClassID:         r.ClassEnrollmentClassID,
		ClassEnrollmentStudentID:       r.ClassEnrollmentStudentID,
		ClassEnrollmentDailyTimelineID: r.ClassEnrollmentDailyTimelineID,
		ClassEnrollmentStatus:          model.EnrollmentActive,
	}
}

type UpdateEnrollmentRequest struct {
	// uuid.Nil remove o override; a matrícula volta a herdar o padrão da turma.
	ClassEnrollmentDailyTimelineID *uuid.UUID `json:"class_enrollment_daily_timeline_id"`

	ClassEnrollmentStatus *string `json:"class_enrollment_status" validate:"omitempty,oneof=active inactive"`
}

func (r UpdateEnrollmentRequest) Apply(m *model.ClassEnrollmentModel) {
	if r.ClassEnrollmentDailyTimelineID != nil {
		if *r.ClassEnrollmentDailyTimelineID == uuid.Nil {
			m.ClassEnrollmentDailyTimelineID = nil
		} else {
			m.ClassEnrollmentDailyTimelineID = r.ClassEnrollmentDailyTimelineID
		}
	}
	if r.ClassEnrollmentStatus != nil {
		m.ClassEnrollmentStatus = model.EnrollmentStatus(*r.ClassEnrollmentStatus)
	}
}

/* =========================================================
   3) RESPONSES
   ========================================================= */

type ClassResponse struct {
	ClassID       uuid.UUID `json:"class_id"`
	ClassSchoolID uuid.UUID `json:"class_school_id"`

	ClassName string `json:"class_name"`
	ClassYear *int   `json:"class_year,omitempty"`

	ClassDailyTimelineID *uuid.UUID `json:"class_daily_timeline_id,omitempty"`
	ClassIsActive        bool       `json:"class_is_active"`

	ClassCreatedAt time.Time `json:"class_created_at"`
	ClassUpdatedAt time.Time `json:"class_updated_at"`
}

func FromClassModel(m model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:              m.ClassID,
		ClassSchoolID:        m.ClassSchoolID,
		ClassName:            m.ClassName,
		ClassYear:            m.ClassYear,
		ClassDailyTimelineID: m.ClassDailyTimelineID,
		ClassIsActive:        m.ClassIsActive,
		ClassCreatedAt:       m.ClassCreatedAt,
		ClassUpdatedAt:       m.ClassUpdatedAt,
	}
}

func FromClassModels(list []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromClassModel(m))
	}
	return out
}

type EnrollmentResponse struct {
	ClassEnrollmentID       uuid.UUID `json:"class_enrollment_id"`
	ClassEnrollmentSchoolID uuid.UUID `json:"class_enrollment_school_id"`

	ClassEnrollmentClassID   uuid.UUID `json:"class_enrollment_class_id"`
	ClassEnrollmentStudentID uuid.UUID `json:"class_enrollment_student_id"`

	ClassEnrollmentDailyTimelineID *uuid.UUID `json:"class_enrollment_daily_timeline_id,omitempty"`
	ClassEnrollmentStatus          string     `json:"class_enrollment_status"`

	ClassEnrollmentCreatedAt time.Time `json:"class_enrollment_created_at"`
	ClassEnrollmentUpdatedAt time.Time `json:"class_enrollment_updated_at"`
}

func FromEnrollmentModel(m model.ClassEnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		ClassEnrollmentID:              m.ClassEnrollmentID,
		ClassEnrollmentSchoolID:        m.ClassEnrollmentSchoolID,
		ClassEnrollmentClassID:         m.ClassEnrollmentClassID,
		ClassEnrollmentStudentID:       m.ClassEnrollmentStudentID,
		ClassEnrollmentDailyTimelineID: m.ClassEnrollmentDailyTimelineID,
		ClassEnrollmentStatus:          string(m.ClassEnrollmentStatus),
		ClassEnrollmentCreatedAt:       m.ClassEnrollmentCreatedAt,
		ClassEnrollmentUpdatedAt:       m.ClassEnrollmentUpdatedAt,
	}
}

func FromEnrollmentModels(list []model.ClassEnrollmentModel) []EnrollmentResponse {
	out := make([]EnrollmentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromEnrollmentModel(m))
	}
	return out
}
