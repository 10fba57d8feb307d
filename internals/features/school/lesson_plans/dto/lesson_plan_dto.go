// file: internals/features/school/lesson_plans/dto/lesson_plan_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	model "escolaviva_backend/internals/features/school/lesson_plans/model"
)

/* =========================================================
   Anexos (JSONB)
   ========================================================= */

type Attachment struct {
	Name string `json:"name" validate:"required,max=160"`
	URL  string `json:"url" validate:"required,url"`
}

func attachmentsToJSON(list []Attachment) datatypes.JSON {
	if len(list) == 0 {
		return nil
	}
	raw, err := sonic.Marshal(list)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func attachmentsFromJSON(raw datatypes.JSON) []Attachment {
	if len(raw) == 0 {
		return nil
	}
	var list []Attachment
	if err := sonic.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateLessonPlanRequest struct {
	LessonPlanClassID uuid.UUID `json:"lesson_plan_class_id" validate:"required"`
	LessonPlanDate    string    `json:"lesson_plan_date" validate:"required,datetime=2006-01-02"`

	LessonPlanStartTime *string `json:"lesson_plan_start_time" validate:"omitempty,datetime=15:04"`
	LessonPlanEndTime   *string `json:"lesson_plan_end_time" validate:"omitempty,datetime=15:04"`

	LessonPlanSubjectName  string  `json:"lesson_plan_subject_name" validate:"required,max=120"`
	LessonPlanSubjectEmoji *string `json:"lesson_plan_subject_emoji" validate:"omitempty,max=8"`
	LessonPlanSubjectColor *string `json:"lesson_plan_subject_color" validate:"omitempty,max=20"`

	LessonPlanTopic       *string      `json:"lesson_plan_topic"`
	LessonPlanObjective   *string      `json:"lesson_plan_objective"`
	LessonPlanMaterials   []string     `json:"lesson_plan_materials" validate:"omitempty,dive,max=200"`
	LessonPlanHomework    *string      `json:"lesson_plan_homework"`
	LessonPlanTeacherName *string      `json:"lesson_plan_teacher_name" validate:"omitempty,max=120"`
	LessonPlanAttachments []Attachment `json:"lesson_plan_attachments" validate:"omitempty,dive"`

	LessonPlanStatus *string `json:"lesson_plan_status" validate:"omitempty,oneof=scheduled cancelled"`
}

func (r CreateLessonPlanRequest) ToModel(schoolID uuid.UUID) (model.LessonPlanModel, error) {
	date, err := time.Parse("2006-01-02", r.LessonPlanDate)
	if err != nil {
		return model.LessonPlanModel{}, err
	}

	status := model.LessonPlanScheduled
	if r.LessonPlanStatus != nil {
		status = model.LessonPlanStatus(*r.LessonPlanStatus)
	}

	return model.LessonPlanModel{
		LessonPlanSchoolID:     schoolID,
		LessonPlanClassID:      r.LessonPlanClassID,
		LessonPlanDate:         date,
		LessonPlanStartTime:    r.LessonPlanStartTime,
		LessonPlanEndTime:      r.LessonPlanEndTime,
		LessonPlanSubjectName:  strings.TrimSpace(r.LessonPlanSubjectName),
		LessonPlanSubjectEmoji: trimPtr(r.LessonPlanSubjectEmoji),
		LessonPlanSubjectColor: trimPtr(r.LessonPlanSubjectColor),
		LessonPlanTopic:        trimPtr(r.LessonPlanTopic),
		LessonPlanObjective:    trimPtr(r.LessonPlanObjective),
		LessonPlanMaterials:    pq.StringArray(r.LessonPlanMaterials),
		LessonPlanHomework:     trimPtr(r.LessonPlanHomework),
		LessonPlanTeacherName:  trimPtr(r.LessonPlanTeacherName),
		LessonPlanAttachments:  attachmentsToJSON(r.LessonPlanAttachments),
		LessonPlanStatus:       status,
	}, nil
}

type PatchLessonPlanRequest struct {
	LessonPlanDate *string `json:"lesson_plan_date" validate:"omitempty,datetime=2006-01-02"`

	LessonPlanStartTime *string `json:"lesson_plan_start_time" validate:"omitempty,datetime=15:04"`
	LessonPlanEndTime   *string `json:"lesson_plan_end_time" validate:"omitempty,datetime=15:04"`

	LessonPlanSubjectName  *string `json:"lesson_plan_subject_name" validate:"omitempty,max=120"`
	LessonPlanSubjectEmoji *string `json:"lesson_plan_subject_emoji" validate:"omitempty,max=8"`
	LessonPlanSubjectColor *string `json:"lesson_plan_subject_color" validate:"omitempty,max=20"`

	LessonPlanTopic       *string       `json:"lesson_plan_topic"`
	LessonPlanObjective   *string       `json:"lesson_plan_objective"`
	LessonPlanMaterials   *[]string     `json:"lesson_plan_materials" validate:"omitempty,dive,max=200"`
	LessonPlanHomework    *string       `json:"lesson_plan_homework"`
	LessonPlanTeacherName *string       `json:"lesson_plan_teacher_name" validate:"omitempty,max=120"`
	LessonPlanAttachments *[]Attachment `json:"lesson_plan_attachments" validate:"omitempty,dive"`

	LessonPlanStatus *string `json:"lesson_plan_status" validate:"omitempty,oneof=scheduled cancelled"`
}

func (r PatchLessonPlanRequest) Apply(m *model.LessonPlanModel) error {
	if r.LessonPlanDate != nil {
		date, err := time.Parse("2006-01-02", *r.LessonPlanDate)
		if err != nil {
			return err
		}
		m.LessonPlanDate = date
	}
	if r.LessonPlanStartTime != nil {
		m.LessonPlanStartTime = timePtrOrNil(*r.LessonPlanStartTime)
	}
	if r.LessonPlanEndTime != nil {
		m.LessonPlanEndTime = timePtrOrNil(*r.LessonPlanEndTime)
	}
	if r.LessonPlanSubjectName != nil {
		m.LessonPlanSubjectName = strings.TrimSpace(*r.LessonPlanSubjectName)
	}
	if r.LessonPlanSubjectEmoji != nil {
		m.LessonPlanSubjectEmoji = trimPtr(r.LessonPlanSubjectEmoji)
	}
	if r.LessonPlanSubjectColor != nil {
		m.LessonPlanSubjectColor = trimPtr(r.LessonPlanSubjectColor)
	}
	if r.LessonPlanTopic != nil {
		m.LessonPlanTopic = trimPtr(r.LessonPlanTopic)
	}
	if r.LessonPlanObjective != nil {
		m.LessonPlanObjective = trimPtr(r.LessonPlanObjective)
	}
	if r.LessonPlanMaterials != nil {
		m.LessonPlanMaterials = pq.StringArray(*r.LessonPlanMaterials)
	}
	if r.LessonPlanHomework != nil {
		m.LessonPlanHomework = trimPtr(r.LessonPlanHomework)
	}
	if r.LessonPlanTeacherName != nil {
		m.LessonPlanTeacherName = trimPtr(r.LessonPlanTeacherName)
	}
	if r.LessonPlanAttachments != nil {
		m.LessonPlanAttachments = attachmentsToJSON(*r.LessonPlanAttachments)
	}
	if r.LessonPlanStatus != nil {
		m.LessonPlanStatus = model.LessonPlanStatus(*r.LessonPlanStatus)
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// "" limpa o campo; qualquer outro valor já passou no datetime=15:04.
func timePtrOrNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type LessonPlanResponse struct {
	LessonPlanID       uuid.UUID `json:"lesson_plan_id"`
	LessonPlanSchoolID uuid.UUID `json:"lesson_plan_school_id"`
	LessonPlanClassID  uuid.UUID `json:"lesson_plan_class_id"`

	LessonPlanDate      string  `json:"lesson_plan_date"`
	LessonPlanStartTime *string `json:"lesson_plan_start_time,omitempty"`
	LessonPlanEndTime   *string `json:"lesson_plan_end_time,omitempty"`

	LessonPlanSubjectName  string  `json:"lesson_plan_subject_name"`
	LessonPlanSubjectEmoji *string `json:"lesson_plan_subject_emoji,omitempty"`
	LessonPlanSubjectColor *string `json:"lesson_plan_subject_color,omitempty"`

	LessonPlanTopic       *string      `json:"lesson_plan_topic,omitempty"`
	LessonPlanObjective   *string      `json:"lesson_plan_objective,omitempty"`
	LessonPlanMaterials   []string     `json:"lesson_plan_materials,omitempty"`
	LessonPlanHomework    *string      `json:"lesson_plan_homework,omitempty"`
	LessonPlanTeacherName *string      `json:"lesson_plan_teacher_name,omitempty"`
	LessonPlanAttachments []Attachment `json:"lesson_plan_attachments,omitempty"`

	LessonPlanStatus string `json:"lesson_plan_status"`

	LessonPlanCreatedAt time.Time `json:"lesson_plan_created_at"`
	LessonPlanUpdatedAt time.Time `json:"lesson_plan_updated_at"`
}

func FromModel(m model.LessonPlanModel) LessonPlanResponse {
	return LessonPlanResponse{
		LessonPlanID:           m.LessonPlanID,
		LessonPlanSchoolID:     m.LessonPlanSchoolID,
		LessonPlanClassID:      m.LessonPlanClassID,
		LessonPlanDate:         m.LessonPlanDate.Format("2006-01-02"),
		LessonPlanStartTime:    m.LessonPlanStartTime,
		LessonPlanEndTime:      m.LessonPlanEndTime,
		LessonPlanSubjectName:  m.LessonPlanSubjectName,
		LessonPlanSubjectEmoji: m.LessonPlanSubjectEmoji,
		LessonPlanSubjectColor: m.LessonPlanSubjectColor,
		LessonPlanTopic:        m.LessonPlanTopic,
		LessonPlanObjective:    m.LessonPlanObjective,
		LessonPlanMaterials:    m.LessonPlanMaterials,
		LessonPlanHomework:     m.LessonPlanHomework,
		LessonPlanTeacherName:  m.LessonPlanTeacherName,
		LessonPlanAttachments:  attachmentsFromJSON(m.LessonPlanAttachments),
		LessonPlanStatus:       string(m.LessonPlanStatus),
		LessonPlanCreatedAt:    m.LessonPlanCreatedAt,
		LessonPlanUpdatedAt:    m.LessonPlanUpdatedAt,
	}
}

func FromModels(list []model.LessonPlanModel) []LessonPlanResponse {
	out := make([]LessonPlanResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
