// file: internals/features/school/timelines/model/timeline_item_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

type TimelineItemType string

const (
	TimelineItemAcademic  TimelineItemType = "academic"
	TimelineItemFood      TimelineItemType = "food"
	TimelineItemRest      TimelineItemType = "rest"
	TimelineItemTransport TimelineItemType = "transport"
	TimelineItemOther     TimelineItemType = "other"
)

func ParseTimelineItemType(s string) (TimelineItemType, bool) {
	switch TimelineItemType(strings.ToLower(strings.TrimSpace(s))) {
	case TimelineItemAcademic:
		return TimelineItemAcademic, true
	case TimelineItemFood:
		return TimelineItemFood, true
	case TimelineItemRest:
		return TimelineItemRest, true
	case TimelineItemTransport:
		return TimelineItemTransport, true
	case TimelineItemOther:
		return TimelineItemOther, true
	}
	return TimelineItemOther, false
}

/* =========================
   Model: TimelineItemModel
========================= */

type TimelineItemModel struct {
	// PK
	TimelineItemID uuid.UUID `gorm:"type:uuid;primaryKey;column:timeline_item_id"`

	// Dono
	TimelineItemTemplateID uuid.UUID `gorm:"type:uuid;not null;column:timeline_item_template_id;index"`

	TimelineItemTitle string           `gorm:"type:varchar(160);not null;column:timeline_item_title"`
	TimelineItemType  TimelineItemType `gorm:"type:varchar(20);not null;default:'other';column:timeline_item_type"`

	// HH:MM com zero à esquerda: a forma textual é o contrato de ordenação
	// lexicográfica, não converter para time.Time.
	TimelineItemStartTime *string `gorm:"type:varchar(5);column:timeline_item_start_time"`
	TimelineItemEndTime   *string `gorm:"type:varchar(5);column:timeline_item_end_time"`

	// Ordenação manual persistida (o merge reordena por horário na exibição).
	TimelineItemOrderIndex int `gorm:"not null;default:0;column:timeline_item_order_index"`

	// Conteúdo rico (apenas relevante quando type = academic)
	TimelineItemDescription *string        `gorm:"type:text;column:timeline_item_description"`
	TimelineItemTopic       *string        `gorm:"type:text;column:timeline_item_topic"`
	TimelineItemObjective   *string        `gorm:"type:text;column:timeline_item_objective"`
	TimelineItemMaterials   pq.StringArray `gorm:"type:text[];column:timeline_item_materials"`
	TimelineItemHomework    *string        `gorm:"type:text;column:timeline_item_homework"`
	TimelineItemTeacherName *string        `gorm:"type:varchar(120);column:timeline_item_teacher_name"`
	TimelineItemAttachments datatypes.JSON `gorm:"type:jsonb;column:timeline_item_attachments"`

	// Dicas visuais opcionais
	TimelineItemIcon  *string `gorm:"type:varchar(40);column:timeline_item_icon"`
	TimelineItemColor *string `gorm:"type:varchar(20);column:timeline_item_color"`

	// Timestamps
	TimelineItemCreatedAt time.Time      `gorm:"column:timeline_item_created_at;autoCreateTime"`
	TimelineItemUpdatedAt time.Time      `gorm:"column:timeline_item_updated_at;autoUpdateTime"`
	TimelineItemDeletedAt gorm.DeletedAt `gorm:"column:timeline_item_deleted_at;index"`
}

func (TimelineItemModel) TableName() string { return "timeline_items" }

func (i *TimelineItemModel) BeforeCreate(tx *gorm.DB) error {
	if i.TimelineItemID == uuid.Nil {
		i.TimelineItemID = uuid.New()
	}
	return nil
}

// HasValidWindow: start <= end quando ambos presentes. Violação é alerta de
// qualidade de dado, nunca erro fatal.
func (i *TimelineItemModel) HasValidWindow() bool {
	if i.TimelineItemStartTime == nil || i.TimelineItemEndTime == nil {
		return true
	}
	return *i.TimelineItemStartTime <= *i.TimelineItemEndTime
}
