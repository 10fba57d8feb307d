// file: internals/features/school/timelines/dto/daily_timeline_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "escolaviva_backend/internals/features/school/timelines/model"
	service "escolaviva_backend/internals/features/school/timelines/service"
)

func sp(s string) *string { return &s }

func mergedEntry(e service.TimelineEntry, st service.Status) service.MergedEntry {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Source == "" {
		e.Source = service.SourceTemplate
	}
	return service.MergedEntry{TimelineEntry: e, Status: st}
}

func TestVisualForDefaultsByType(t *testing.T) {
	tests := []struct {
		typ   model.TimelineItemType
		icon  string
		color string
	}{
		{model.TimelineItemAcademic, "book-open", "#6366F1"},
		{model.TimelineItemFood, "utensils", "#F59E0B"},
		{model.TimelineItemRest, "moon", "#8B5CF6"},
		{model.TimelineItemTransport, "bus", "#10B981"},
		{model.TimelineItemOther, "circle-dot", "#94A3B8"},
	}
	for _, tt := range tests {
		v := VisualFor(tt.typ, nil, nil)
		assert.Equal(t, tt.icon, v.Icon, "type %s", tt.typ)
		assert.Equal(t, tt.color, v.Color, "type %s", tt.typ)
	}
}

func TestVisualForOverrides(t *testing.T) {
	v := VisualFor(model.TimelineItemFood, sp("apple"), nil)
	assert.Equal(t, "apple", v.Icon)
	assert.Equal(t, "#F59E0B", v.Color)

	v = VisualFor(model.TimelineItemFood, nil, sp("#FF0000"))
	assert.Equal(t, "utensils", v.Icon)
	assert.Equal(t, "#FF0000", v.Color)

	// tipo desconhecido cai no visual de other
	v = VisualFor(model.TimelineItemType("banda"), nil, nil)
	assert.Equal(t, "circle-dot", v.Icon)
}

func TestTimeLabel(t *testing.T) {
	e := mergedEntry(service.TimelineEntry{
		Title:     "Matemática",
		Type:      model.TimelineItemAcademic,
		StartTime: sp("08:00"),
		EndTime:   sp("09:00"),
	}, service.StatusFuture)
	assert.Equal(t, "08:00 – 09:00", NewTimelineEntryView(e).TimeLabel)

	e.EndTime = nil
	assert.Equal(t, "08:00", NewTimelineEntryView(e).TimeLabel)

	e.StartTime = nil
	assert.Equal(t, "--:--", NewTimelineEntryView(e).TimeLabel)
}

// Conector pintado (elapsed) acompanha past e current; future fica apagado.
func TestElapsedConnector(t *testing.T) {
	base := service.TimelineEntry{Title: "Entrada", Type: model.TimelineItemOther}

	assert.True(t, NewTimelineEntryView(mergedEntry(base, service.StatusPast)).Elapsed)
	assert.True(t, NewTimelineEntryView(mergedEntry(base, service.StatusCurrent)).Elapsed)
	assert.False(t, NewTimelineEntryView(mergedEntry(base, service.StatusFuture)).Elapsed)
}

// Interativo sse há description ou o tipo é academic.
func TestInteractive(t *testing.T) {
	academic := mergedEntry(service.TimelineEntry{
		Title: "Matemática", Type: model.TimelineItemAcademic,
	}, service.StatusFuture)
	assert.True(t, NewTimelineEntryView(academic).Interactive)

	withDesc := mergedEntry(service.TimelineEntry{
		Title: "Entrada", Type: model.TimelineItemOther, Description: sp("Fila no pátio"),
	}, service.StatusFuture)
	assert.True(t, NewTimelineEntryView(withDesc).Interactive)

	plain := mergedEntry(service.TimelineEntry{
		Title: "Recreio", Type: model.TimelineItemRest,
	}, service.StatusFuture)
	view := NewTimelineEntryView(plain)
	assert.False(t, view.Interactive)
	assert.Nil(t, view.Detail)
}

// Detalhe sem nenhuma seção preenchida é omitido por inteiro.
func TestDetailOmittedWhenEmpty(t *testing.T) {
	bare := mergedEntry(service.TimelineEntry{
		Title: "Matemática", Type: model.TimelineItemAcademic,
	}, service.StatusFuture)
	assert.Nil(t, NewTimelineEntryView(bare).Detail)

	rich := mergedEntry(service.TimelineEntry{
		Title:     "Matemática",
		Type:      model.TimelineItemAcademic,
		Topic:     sp("Frações"),
		Materials: []string{"régua"},
	}, service.StatusFuture)
	detail := NewTimelineEntryView(rich).Detail
	require.NotNil(t, detail)
	assert.Equal(t, "Frações", *detail.Topic)
	assert.Equal(t, []string{"régua"}, detail.Materials)
	assert.Nil(t, detail.Homework)
}

func TestNewDailyTimelineResponse(t *testing.T) {
	rt := &service.ResolvedTimeline{
		Template: model.TimelineTemplateModel{
			TimelineTemplateID:   uuid.New(),
			TimelineTemplateName: "Rotina Manhã",
		},
	}
	merged := []service.MergedEntry{
		mergedEntry(service.TimelineEntry{Title: "Entrada", Type: model.TimelineItemOther, StartTime: sp("07:30")}, service.StatusPast),
		mergedEntry(service.TimelineEntry{Title: "Matemática", Type: model.TimelineItemAcademic, StartTime: sp("08:00")}, service.StatusCurrent),
	}

	resp := NewDailyTimelineResponse("2026-03-10", rt, merged)
	assert.True(t, resp.Enabled)
	assert.Equal(t, "2026-03-10", resp.Date)
	require.NotNil(t, resp.Template)
	assert.Equal(t, "Rotina Manhã", resp.Template.TimelineTemplateName)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "past", resp.Entries[0].Status)
	assert.Equal(t, "current", resp.Entries[1].Status)
}

// Sem timeline resolvida o payload continua bem formado: entries vazio, sem
// template.
func TestNewDailyTimelineResponseNilTimeline(t *testing.T) {
	resp := NewDailyTimelineResponse("2026-03-10", nil, nil)
	assert.True(t, resp.Enabled)
	assert.Nil(t, resp.Template)
	assert.NotNil(t, resp.Entries)
	assert.Empty(t, resp.Entries)
}

func TestCreateItemDefaults(t *testing.T) {
	templateID := uuid.New()
	item, err := CreateTimelineItemRequest{}.ToModel(templateID, 3)
	require.NoError(t, err)
	assert.Equal(t, "Nova atividade", item.TimelineItemTitle)
	assert.Equal(t, model.TimelineItemAcademic, item.TimelineItemType)
	assert.Equal(t, 3, item.TimelineItemOrderIndex)
	assert.Equal(t, templateID, item.TimelineItemTemplateID)
}

func TestCreateItemExplicitValuesWin(t *testing.T) {
	idx := 0
	item, err := CreateTimelineItemRequest{
		TimelineItemTitle:      sp("  Lanche  "),
		TimelineItemType:       sp("food"),
		TimelineItemOrderIndex: &idx,
		TimelineItemStartTime:  sp("09:30"),
	}.ToModel(uuid.New(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Lanche", item.TimelineItemTitle)
	assert.Equal(t, model.TimelineItemFood, item.TimelineItemType)
	assert.Equal(t, 0, item.TimelineItemOrderIndex)
	assert.Equal(t, "09:30", *item.TimelineItemStartTime)
}
