// file: internals/features/school/timelines/service/normalize_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lpmodel "escolaviva_backend/internals/features/school/lesson_plans/model"
	m "escolaviva_backend/internals/features/school/timelines/model"
)

func TestFromItems(t *testing.T) {
	desc := "Fila no pátio"
	items := []m.TimelineItemModel{
		{
			TimelineItemID:          uuid.New(),
			TimelineItemTitle:       "Entrada",
			TimelineItemType:        m.TimelineItemOther,
			TimelineItemStartTime:   strPtr("07:30"),
			TimelineItemDescription: &desc,
		},
	}

	got := FromItems(items)
	require.Len(t, got, 1)
	assert.Equal(t, SourceTemplate, got[0].Source)
	assert.Equal(t, "Entrada", got[0].Title)
	assert.Equal(t, m.TimelineItemOther, got[0].Type)
	assert.Equal(t, "07:30", *got[0].StartTime)
	assert.Equal(t, &desc, got[0].Description)
	assert.False(t, got[0].Cancelled)
}

// Plano de aula vira sempre academic; o título concatena emoji + disciplina.
func TestFromLessonPlans(t *testing.T) {
	emoji := "📐"
	plans := []lpmodel.LessonPlanModel{
		{
			LessonPlanID:           uuid.New(),
			LessonPlanSubjectName:  "Matemática",
			LessonPlanSubjectEmoji: &emoji,
			LessonPlanStartTime:    strPtr("08:00"),
			LessonPlanEndTime:      strPtr("09:00"),
			LessonPlanStatus:       lpmodel.LessonPlanScheduled,
		},
		{
			LessonPlanID:          uuid.New(),
			LessonPlanSubjectName: "Ciências",
			LessonPlanStatus:      lpmodel.LessonPlanCancelled,
		},
	}

	got := FromLessonPlans(plans)
	require.Len(t, got, 2)

	assert.Equal(t, SourceLessonPlan, got[0].Source)
	assert.Equal(t, "📐 Matemática", got[0].Title)
	assert.Equal(t, m.TimelineItemAcademic, got[0].Type)
	assert.False(t, got[0].Cancelled)

	assert.Equal(t, "Ciências", got[1].Title)
	assert.Equal(t, m.TimelineItemAcademic, got[1].Type)
	assert.True(t, got[1].Cancelled)
}

// Janela invertida (start > end) não derruba a normalização.
func TestFromItemsInvertedWindowKept(t *testing.T) {
	items := []m.TimelineItemModel{
		{
			TimelineItemID:        uuid.New(),
			TimelineItemTitle:     "Janela invertida",
			TimelineItemStartTime: strPtr("10:00"),
			TimelineItemEndTime:   strPtr("09:00"),
		},
	}

	got := FromItems(items)
	require.Len(t, got, 1)
	assert.Equal(t, "10:00", *got[0].StartTime)
	assert.Equal(t, "09:00", *got[0].EndTime)
}
