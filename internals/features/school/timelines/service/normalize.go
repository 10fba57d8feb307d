// file: internals/features/school/timelines/service/normalize.go
package service

import (
	"log"
	"strings"

	lpmodel "escolaviva_backend/internals/features/school/lesson_plans/model"
	m "escolaviva_backend/internals/features/school/timelines/model"
)

// FromItems normaliza itens de rotina do template para a forma de merge.
// Janela invertida (start > end) vira alerta de qualidade de dado, nunca erro.
func FromItems(items []m.TimelineItemModel) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(items))
	for i := range items {
		it := &items[i]
		if !it.HasValidWindow() {
			log.Printf("[WARN] timeline item %s: start_time > end_time (%s > %s)",
				it.TimelineItemID, deref(it.TimelineItemStartTime), deref(it.TimelineItemEndTime))
		}
		out = append(out, TimelineEntry{
			ID:          it.TimelineItemID,
			Source:      SourceTemplate,
			Title:       it.TimelineItemTitle,
			Type:        it.TimelineItemType,
			StartTime:   it.TimelineItemStartTime,
			EndTime:     it.TimelineItemEndTime,
			Description: it.TimelineItemDescription,
			Topic:       it.TimelineItemTopic,
			Objective:   it.TimelineItemObjective,
			Materials:   it.TimelineItemMaterials,
			Homework:    it.TimelineItemHomework,
			TeacherName: it.TimelineItemTeacherName,
			Attachments: it.TimelineItemAttachments,
			Icon:        it.TimelineItemIcon,
			Color:       it.TimelineItemColor,
		})
	}
	return out
}

// FromLessonPlans normaliza planos de aula do dia para a forma de merge,
// sempre com type=academic. Planos cancelados NÃO são filtrados aqui; seguem
// marcados para a camada de exibição decidir o badge.
func FromLessonPlans(plans []lpmodel.LessonPlanModel) []TimelineEntry {
	out := make([]TimelineEntry, 0, len(plans))
	for i := range plans {
		p := &plans[i]
		out = append(out, TimelineEntry{
			ID:          p.LessonPlanID,
			Source:      SourceLessonPlan,
			Title:       lessonTitle(p),
			Type:        m.TimelineItemAcademic,
			StartTime:   p.LessonPlanStartTime,
			EndTime:     p.LessonPlanEndTime,
			Topic:       p.LessonPlanTopic,
			Objective:   p.LessonPlanObjective,
			Materials:   p.LessonPlanMaterials,
			Homework:    p.LessonPlanHomework,
			TeacherName: p.LessonPlanTeacherName,
			Attachments: p.LessonPlanAttachments,
			Color:       p.LessonPlanSubjectColor,
			Cancelled:   p.LessonPlanStatus == lpmodel.LessonPlanCancelled,
		})
	}
	return out
}

func lessonTitle(p *lpmodel.LessonPlanModel) string {
	if p.LessonPlanSubjectEmoji != nil {
		if e := strings.TrimSpace(*p.LessonPlanSubjectEmoji); e != "" {
			return e + " " + p.LessonPlanSubjectName
		}
	}
	return p.LessonPlanSubjectName
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
