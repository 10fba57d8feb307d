// file: internals/features/school/timelines/dto/daily_timeline_dto.go
package dto

import (
	"github.com/google/uuid"

	model "escolaviva_backend/internals/features/school/timelines/model"
	service "escolaviva_backend/internals/features/school/timelines/service"
)

/* =========================================================
   Visão do responsável (timeline do dia, já derivada)
   ========================================================= */

// TimelineEntryDetail: seções vazias são omitidas por inteiro: sem
// placeholder vazio no cliente.
type TimelineEntryDetail struct {
	Topic       *string      `json:"topic,omitempty"`
	Objective   *string      `json:"objective,omitempty"`
	Materials   []string     `json:"materials,omitempty"`
	Homework    *string      `json:"homework,omitempty"`
	TeacherName *string      `json:"teacher_name,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type TimelineEntryView struct {
	ID     uuid.UUID `json:"id"`
	Source string    `json:"source"` // template | lesson_plan

	Title     string  `json:"title"`
	Type      string  `json:"type"`
	TimeLabel string  `json:"time_label"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`

	Status string `json:"status"` // past | current | future
	// Elapsed pinta o conector até o próximo nó: true quando o trecho já foi
	// alcançado (past ou current).
	Elapsed bool `json:"elapsed"`
	// Interactive: abre detalhe sse há description ou o tipo é academic.
	Interactive bool `json:"interactive"`
	Cancelled   bool `json:"cancelled,omitempty"`

	Icon  string `json:"icon"`
	Color string `json:"color"`

	Detail *TimelineEntryDetail `json:"detail,omitempty"`
}

type DailyTimelineResponse struct {
	Enabled  bool                      `json:"enabled"`
	Date     string                    `json:"date"`
	Template *TimelineTemplateResponse `json:"template,omitempty"`
	Entries  []TimelineEntryView       `json:"entries"`
}

const timePlaceholder = "--:--"

func NewTimelineEntryView(e service.MergedEntry) TimelineEntryView {
	label := timePlaceholder
	if e.StartTime != nil {
		label = *e.StartTime
		if e.EndTime != nil {
			label += " – " + *e.EndTime
		}
	}

	status := string(e.Status)
	elapsed := e.Status == service.StatusPast || e.Status == service.StatusCurrent
	interactive := e.Description != nil || e.Type == model.TimelineItemAcademic

	visual := VisualFor(e.Type, e.Icon, e.Color)

	view := TimelineEntryView{
		ID:          e.ID,
		Source:      string(e.Source),
		Title:       e.Title,
		Type:        string(e.Type),
		TimeLabel:   label,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Status:      status,
		Elapsed:     elapsed,
		Interactive: interactive,
		Cancelled:   e.Cancelled,
		Icon:        visual.Icon,
		Color:       visual.Color,
	}

	if interactive {
		view.Detail = detailFor(e)
	}
	return view
}

func detailFor(e service.MergedEntry) *TimelineEntryDetail {
	d := TimelineEntryDetail{
		Topic:       e.Topic,
		Objective:   e.Objective,
		Materials:   e.Materials,
		Homework:    e.Homework,
		TeacherName: e.TeacherName,
		Attachments: AttachmentsFromJSON(e.Attachments),
	}
	if d.Topic == nil && d.Objective == nil && len(d.Materials) == 0 &&
		d.Homework == nil && d.TeacherName == nil && len(d.Attachments) == 0 {
		return nil
	}
	return &d
}

func NewDailyTimelineResponse(date string, rt *service.ResolvedTimeline, merged []service.MergedEntry) DailyTimelineResponse {
	resp := DailyTimelineResponse{
		Enabled: true,
		Date:    date,
		Entries: make([]TimelineEntryView, 0, len(merged)),
	}
	if rt != nil {
		tpl := FromTemplateModel(rt.Template)
		resp.Template = &tpl
	}
	for _, e := range merged {
		resp.Entries = append(resp.Entries, NewTimelineEntryView(e))
	}
	return resp
}
