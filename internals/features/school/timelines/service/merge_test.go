// file: internals/features/school/timelines/service/merge_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func entry(title string, start, end *string) TimelineEntry {
	return TimelineEntry{
		ID:        uuid.New(),
		Source:    SourceTemplate,
		Title:     title,
		StartTime: start,
		EndTime:   end,
	}
}

func mins(hhmm string) int {
	v, ok := parseHHMM(hhmm)
	if !ok {
		panic("hhmm inválido no teste: " + hhmm)
	}
	return v
}

func TestMinutesOfDay(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, 9*60+30, MinutesOfDay(at))
	assert.Equal(t, 0, MinutesOfDay(time.Date(2026, 3, 10, 0, 0, 59, 0, time.UTC)))
}

func TestParseHHMM(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"07:05", 425, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"9:00", 0, false},
		{"09-00", 0, false},
		{"ab:cd", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseHHMM(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.in)
		}
	}
}

// Dia de exemplo: Entrada 07:30, Matemática 08:00–09:00, Almoço 11:30.
// Às 09:00: Entrada já passou, Matemática está em curso (o próximo início,
// 11:30, ainda não chegou) e o Almoço ainda vem.
func TestMergeStatusByAdjacency(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Entrada", strPtr("07:30"), nil),
		entry("Almoço", strPtr("11:30"), strPtr("12:30")),
	}
	ext := []TimelineEntry{
		entry("📐 Matemática", strPtr("08:00"), strPtr("09:00")),
	}

	got := Merge(tpl, ext, mins("09:00"))
	require.Len(t, got, 3)

	assert.Equal(t, "Entrada", got[0].Title)
	assert.Equal(t, StatusPast, got[0].Status)

	assert.Equal(t, "📐 Matemática", got[1].Title)
	assert.Equal(t, StatusCurrent, got[1].Status)

	assert.Equal(t, "Almoço", got[2].Title)
	assert.Equal(t, StatusFuture, got[2].Status)
}

// O fim efetivo é o início do próximo item, não o end_time do próprio:
// mesmo depois do end_time, o item segue current até o próximo começar.
func TestMergeEffectiveEndIsNextStart(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Matemática", strPtr("08:00"), strPtr("09:00")),
		entry("Recreio", strPtr("10:00"), nil),
	}

	got := Merge(tpl, nil, mins("09:30"))
	require.Len(t, got, 2)
	assert.Equal(t, StatusCurrent, got[0].Status)
	assert.Equal(t, StatusFuture, got[1].Status)
}

// O último item com horário nunca vira past: o dia não "encerra".
func TestMergeLastItemNeverPast(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Entrada", strPtr("07:30"), nil),
		entry("Saída", strPtr("17:00"), strPtr("17:30")),
	}

	got := Merge(tpl, nil, mins("23:00"))
	require.Len(t, got, 2)
	assert.Equal(t, StatusPast, got[0].Status)
	assert.Equal(t, StatusCurrent, got[1].Status)
}

func TestMergeAllFutureBeforeDayStarts(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Entrada", strPtr("07:30"), nil),
		entry("Almoço", strPtr("11:30"), nil),
	}

	got := Merge(tpl, nil, mins("06:00"))
	for _, e := range got {
		assert.Equal(t, StatusFuture, e.Status)
	}
}

// Itens sem horário ordenam ao final e ficam future, sem contaminar a
// adjacência dos itens com horário.
func TestMergeMissingStartSortsLastAndIsFuture(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Avisos", nil, nil),
		entry("Entrada", strPtr("07:30"), nil),
		entry("Almoço", strPtr("11:30"), nil),
	}

	got := Merge(tpl, nil, mins("12:00"))
	require.Len(t, got, 3)

	assert.Equal(t, "Entrada", got[0].Title)
	assert.Equal(t, StatusPast, got[0].Status)
	assert.Equal(t, "Almoço", got[1].Title)
	// último com horário: current a partir do início
	assert.Equal(t, StatusCurrent, got[1].Status)
	assert.Equal(t, "Avisos", got[2].Title)
	assert.Equal(t, StatusFuture, got[2].Status)
}

// Horário malformado se comporta como sem horário para fins de status.
func TestMergeMalformedStartIsFuture(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Quebrado", strPtr("25:99"), nil),
		entry("Entrada", strPtr("07:30"), nil),
	}

	got := Merge(tpl, nil, mins("12:00"))
	require.Len(t, got, 2)

	for _, e := range got {
		if e.Title == "Quebrado" {
			assert.Equal(t, StatusFuture, e.Status)
		}
	}
}

// Merge conserva todas as entradas: nada é filtrado, nem canceladas.
func TestMergeLengthConservation(t *testing.T) {
	tpl := []TimelineEntry{
		entry("A", strPtr("08:00"), nil),
		entry("B", nil, nil),
	}
	cancelled := entry("C", strPtr("10:00"), nil)
	cancelled.Cancelled = true
	ext := []TimelineEntry{cancelled}

	got := Merge(tpl, ext, mins("09:00"))
	assert.Len(t, got, len(tpl)+len(ext))

	var found bool
	for _, e := range got {
		if e.Title == "C" {
			found = true
			assert.True(t, e.Cancelled)
		}
	}
	assert.True(t, found)
}

// Empate de horário: sort estável preserva a ordem de entrada
// (template antes de externo, porque o template entra primeiro na concat).
func TestMergeStableOnTies(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Rotina 08h", strPtr("08:00"), nil),
	}
	ext := []TimelineEntry{
		entry("Aula 08h", strPtr("08:00"), nil),
	}

	got := Merge(tpl, ext, 0)
	require.Len(t, got, 2)
	assert.Equal(t, "Rotina 08h", got[0].Title)
	assert.Equal(t, "Aula 08h", got[1].Title)
}

// Determinismo: mesmas entradas + mesmo now ⇒ mesma saída.
func TestMergeDeterministic(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Entrada", strPtr("07:30"), nil),
		entry("Avisos", nil, nil),
	}
	ext := []TimelineEntry{
		entry("📐 Matemática", strPtr("08:00"), strPtr("09:00")),
	}

	a := Merge(tpl, ext, mins("09:00"))
	b := Merge(tpl, ext, mins("09:00"))
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, a[i].Status, b[i].Status)
	}
}

// A ordenação é lexicográfica sobre HH:MM de largura fixa: equivale à
// ordem cronológica.
func TestMergeSortIsChronological(t *testing.T) {
	tpl := []TimelineEntry{
		entry("C", strPtr("13:05"), nil),
		entry("A", strPtr("07:30"), nil),
		entry("D", nil, nil),
		entry("B", strPtr("09:15"), nil),
	}

	got := Merge(tpl, nil, 0)
	require.Len(t, got, 4)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "B", got[1].Title)
	assert.Equal(t, "C", got[2].Title)
	assert.Equal(t, "D", got[3].Title)
}

func TestMergeEmptyInputs(t *testing.T) {
	got := Merge(nil, nil, mins("09:00"))
	assert.Empty(t, got)
}

func TestClockFor(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, 9*60+30, ClockFor("2026-03-10", now))
	assert.GreaterOrEqual(t, ClockFor("2026-03-09", now), 24*60)
	assert.Negative(t, ClockFor("2026-03-11", now))
}

// Data passada: o dia inteiro já aconteceu, inclusive o último item e os
// itens sem horário.
func TestMergePastDateIsAllPast(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Entrada", strPtr("07:30"), nil),
		entry("Almoço", strPtr("11:30"), nil),
		entry("Sem horário", nil, nil),
	}
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	got := Merge(tpl, nil, ClockFor("2026-03-09", now))
	require.Len(t, got, 3)
	for _, e := range got {
		assert.Equal(t, StatusPast, e.Status, e.Title)
	}
}

// Data futura: nada começou, nem um item à meia-noite.
func TestMergeFutureDateIsAllFuture(t *testing.T) {
	tpl := []TimelineEntry{
		entry("Acolhida", strPtr("00:00"), nil),
		entry("Entrada", strPtr("07:30"), nil),
	}
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)

	got := Merge(tpl, nil, ClockFor("2026-03-11", now))
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, StatusFuture, e.Status, e.Title)
	}
}
