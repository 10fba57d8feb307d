// file: internals/features/school/timelines/dto/timeline_item_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "escolaviva_backend/internals/features/school/timelines/model"
)

/* =========================================================
   Attachments (JSONB [{name,url}])
   ========================================================= */

type Attachment struct {
	Name string `json:"name" validate:"required,max=160"`
	URL  string `json:"url" validate:"required,url"`
}

func AttachmentsToJSON(list []Attachment) (datatypes.JSON, error) {
	if len(list) == 0 {
		return nil, nil
	}
	raw, err := sonic.Marshal(list)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func AttachmentsFromJSON(raw datatypes.JSON) []Attachment {
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
   Visual por tipo (união fechada → tabela, não if-chain)
   ========================================================= */

type TypeVisual struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var typeVisualDefaults = map[model.TimelineItemType]TypeVisual{
	model.TimelineItemAcademic:  {Icon: "book-open", Color: "#6366F1"},
	model.TimelineItemFood:      {Icon: "utensils", Color: "#F59E0B"},
	model.TimelineItemRest:      {Icon: "moon", Color: "#8B5CF6"},
	model.TimelineItemTransport: {Icon: "bus", Color: "#10B981"},
	model.TimelineItemOther:     {Icon: "circle-dot", Color: "#94A3B8"},
}

// VisualFor resolve ícone/cor: override do item quando presente, senão o
// padrão do tipo.
func VisualFor(t model.TimelineItemType, icon, color *string) TypeVisual {
	v, ok := typeVisualDefaults[t]
	if !ok {
		v = typeVisualDefaults[model.TimelineItemOther]
	}
	if icon != nil && strings.TrimSpace(*icon) != "" {
		v.Icon = strings.TrimSpace(*icon)
	}
	if color != nil && strings.TrimSpace(*color) != "" {
		v.Color = strings.TrimSpace(*color)
	}
	return v
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateTimelineItemRequest struct {
	TimelineItemTitle *string `json:"timeline_item_title" validate:"omitempty,max=160"`
	TimelineItemType  *string `json:"timeline_item_type" validate:"omitempty,oneof=academic food rest transport other"`

	TimelineItemStartTime *string `json:"timeline_item_start_time" validate:"omitempty,datetime=15:04"`
	TimelineItemEndTime   *string `json:"timeline_item_end_time" validate:"omitempty,datetime=15:04"`

	TimelineItemOrderIndex *int `json:"timeline_item_order_index" validate:"omitempty,min=0"`

	TimelineItemDescription *string      `json:"timeline_item_description" validate:"omitempty,max=4000"`
	TimelineItemTopic       *string      `json:"timeline_item_topic" validate:"omitempty,max=2000"`
	TimelineItemObjective   *string      `json:"timeline_item_objective" validate:"omitempty,max=2000"`
	TimelineItemMaterials   []string     `json:"timeline_item_materials" validate:"omitempty,dive,max=300"`
	TimelineItemHomework    *string      `json:"timeline_item_homework" validate:"omitempty,max=2000"`
	TimelineItemTeacherName *string      `json:"timeline_item_teacher_name" validate:"omitempty,max=120"`
	TimelineItemAttachments []Attachment `json:"timeline_item_attachments" validate:"omitempty,dive"`

	TimelineItemIcon  *string `json:"timeline_item_icon" validate:"omitempty,max=40"`
	TimelineItemColor *string `json:"timeline_item_color" validate:"omitempty,max=20"`
}

// ToModel aplica os defaults do editor: título "Nova atividade", tipo
// academic e order_index = quantidade atual de itens.
func (r CreateTimelineItemRequest) ToModel(templateID uuid.UUID, currentCount int) (model.TimelineItemModel, error) {
	title := "Nova atividade"
	if r.TimelineItemTitle != nil {
		if v := strings.TrimSpace(*r.TimelineItemTitle); v != "" {
			title = v
		}
	}

	itemType := model.TimelineItemAcademic
	if r.TimelineItemType != nil {
		if t, ok := model.ParseTimelineItemType(*r.TimelineItemType); ok {
			itemType = t
		}
	}

	orderIndex := currentCount
	if r.TimelineItemOrderIndex != nil {
		orderIndex = *r.TimelineItemOrderIndex
	}

	attachments, err := AttachmentsToJSON(r.TimelineItemAttachments)
	if err != nil {
		return model.TimelineItemModel{}, err
	}

	return model.TimelineItemModel{
		TimelineItemTemplateID:  templateID,
		TimelineItemTitle:       title,
		TimelineItemType:        itemType,
		TimelineItemStartTime:   trimPtr(r.TimelineItemStartTime),
		TimelineItemEndTime:     trimPtr(r.TimelineItemEndTime),
		TimelineItemOrderIndex:  orderIndex,
		TimelineItemDescription: trimPtr(r.TimelineItemDescription),
		TimelineItemTopic:       trimPtr(r.TimelineItemTopic),
		TimelineItemObjective:   trimPtr(r.TimelineItemObjective),
		TimelineItemMaterials:   r.TimelineItemMaterials,
		TimelineItemHomework:    trimPtr(r.TimelineItemHomework),
		TimelineItemTeacherName: trimPtr(r.TimelineItemTeacherName),
		TimelineItemAttachments: attachments,
		TimelineItemIcon:        trimPtr(r.TimelineItemIcon),
		TimelineItemColor:       trimPtr(r.TimelineItemColor),
	}, nil
}

// Patch (partial)
type PatchTimelineItemRequest struct {
	TimelineItemTitle *string `json:"timeline_item_title" validate:"omitempty,max=160"`
	TimelineItemType  *string `json:"timeline_item_type" validate:"omitempty,oneof=academic food rest transport other"`

	TimelineItemStartTime *string `json:"timeline_item_start_time" validate:"omitempty,datetime=15:04"`
	TimelineItemEndTime   *string `json:"timeline_item_end_time" validate:"omitempty,datetime=15:04"`

	TimelineItemDescription *string       `json:"timeline_item_description" validate:"omitempty,max=4000"`
	TimelineItemTopic       *string       `json:"timeline_item_topic" validate:"omitempty,max=2000"`
	TimelineItemObjective   *string       `json:"timeline_item_objective" validate:"omitempty,max=2000"`
	TimelineItemMaterials   *[]string     `json:"timeline_item_materials" validate:"omitempty,dive,max=300"`
	TimelineItemHomework    *string       `json:"timeline_item_homework" validate:"omitempty,max=2000"`
	TimelineItemTeacherName *string       `json:"timeline_item_teacher_name" validate:"omitempty,max=120"`
	TimelineItemAttachments *[]Attachment `json:"timeline_item_attachments" validate:"omitempty,dive"`

	TimelineItemIcon  *string `json:"timeline_item_icon" validate:"omitempty,max=40"`
	TimelineItemColor *string `json:"timeline_item_color" validate:"omitempty,max=20"`
}

func (r PatchTimelineItemRequest) Apply(m2 *model.TimelineItemModel) error {
	if r.TimelineItemTitle != nil {
		if v := strings.TrimSpace(*r.TimelineItemTitle); v != "" {
			m2.TimelineItemTitle = v
		}
	}
	if r.TimelineItemType != nil {
		if t, ok := model.ParseTimelineItemType(*r.TimelineItemType); ok {
			m2.TimelineItemType = t
		}
	}
	if r.TimelineItemStartTime != nil {
		m2.TimelineItemStartTime = trimPtr(r.TimelineItemStartTime)
	}
	if r.TimelineItemEndTime != nil {
		m2.TimelineItemEndTime = trimPtr(r.TimelineItemEndTime)
	}
	if r.TimelineItemDescription != nil {
		m2.TimelineItemDescription = trimPtr(r.TimelineItemDescription)
	}
	if r.TimelineItemTopic != nil {
		m2.TimelineItemTopic = trimPtr(r.TimelineItemTopic)
	}
	if r.TimelineItemObjective != nil {
		m2.TimelineItemObjective = trimPtr(r.TimelineItemObjective)
	}
	if r.TimelineItemMaterials != nil {
		m2.TimelineItemMaterials = *r.TimelineItemMaterials
	}
	if r.TimelineItemHomework != nil {
		m2.TimelineItemHomework = trimPtr(r.TimelineItemHomework)
	}
	if r.TimelineItemTeacherName != nil {
		m2.TimelineItemTeacherName = trimPtr(r.TimelineItemTeacherName)
	}
	if r.TimelineItemAttachments != nil {
		attachments, err := AttachmentsToJSON(*r.TimelineItemAttachments)
		if err != nil {
			return err
		}
		m2.TimelineItemAttachments = attachments
	}
	if r.TimelineItemIcon != nil {
		m2.TimelineItemIcon = trimPtr(r.TimelineItemIcon)
	}
	if r.TimelineItemColor != nil {
		m2.TimelineItemColor = trimPtr(r.TimelineItemColor)
	}
	return nil
}

// Reorder: troca com o vizinho imediato
type ReorderTimelineItemRequest struct {
	TimelineItemID uuid.UUID `json:"timeline_item_id" validate:"required"`
	Direction      string    `json:"direction" validate:"required,oneof=up down"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type TimelineItemResponse struct {
	TimelineItemID         uuid.UUID `json:"timeline_item_id"`
	TimelineItemTemplateID uuid.UUID `json:"timeline_item_template_id"`

	TimelineItemTitle string `json:"timeline_item_title"`
	TimelineItemType  string `json:"timeline_item_type"`

	TimelineItemStartTime *string `json:"timeline_item_start_time,omitempty"`
	TimelineItemEndTime   *string `json:"timeline_item_end_time,omitempty"`

	TimelineItemOrderIndex int `json:"timeline_item_order_index"`

	TimelineItemDescription *string      `json:"timeline_item_description,omitempty"`
	TimelineItemTopic       *string      `json:"timeline_item_topic,omitempty"`
	TimelineItemObjective   *string      `json:"timeline_item_objective,omitempty"`
	TimelineItemMaterials   []string     `json:"timeline_item_materials,omitempty"`
	TimelineItemHomework    *string      `json:"timeline_item_homework,omitempty"`
	TimelineItemTeacherName *string      `json:"timeline_item_teacher_name,omitempty"`
	TimelineItemAttachments []Attachment `json:"timeline_item_attachments,omitempty"`

	TimelineItemVisual TypeVisual `json:"timeline_item_visual"`

	TimelineItemCreatedAt time.Time  `json:"timeline_item_created_at"`
	TimelineItemUpdatedAt *time.Time `json:"timeline_item_updated_at,omitempty"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func FromItemModel(m2 model.TimelineItemModel) TimelineItemResponse {
	return TimelineItemResponse{
		TimelineItemID:         m2.TimelineItemID,
		TimelineItemTemplateID: m2.TimelineItemTemplateID,

		TimelineItemTitle: m2.TimelineItemTitle,
		TimelineItemType:  string(m2.TimelineItemType),

		TimelineItemStartTime: m2.TimelineItemStartTime,
		TimelineItemEndTime:   m2.TimelineItemEndTime,

		TimelineItemOrderIndex: m2.TimelineItemOrderIndex,

		TimelineItemDescription: m2.TimelineItemDescription,
		TimelineItemTopic:       m2.TimelineItemTopic,
		TimelineItemObjective:   m2.TimelineItemObjective,
		TimelineItemMaterials:   m2.TimelineItemMaterials,
		TimelineItemHomework:    m2.TimelineItemHomework,
		TimelineItemTeacherName: m2.TimelineItemTeacherName,
		TimelineItemAttachments: AttachmentsFromJSON(m2.TimelineItemAttachments),

		TimelineItemVisual: VisualFor(m2.TimelineItemType, m2.TimelineItemIcon, m2.TimelineItemColor),

		TimelineItemCreatedAt: m2.TimelineItemCreatedAt,
		TimelineItemUpdatedAt: timePtrOrNil(m2.TimelineItemUpdatedAt),
	}
}

func FromItemModels(list []model.TimelineItemModel) []TimelineItemResponse {
	out := make([]TimelineItemResponse, 0, len(list))
	for _, m2 := range list {
		out = append(out, FromItemModel(m2))
	}
	return out
}
