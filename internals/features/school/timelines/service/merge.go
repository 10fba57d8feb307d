// file: internals/features/school/timelines/service/merge.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "escolaviva_backend/internals/features/school/timelines/model"
)

/* =========================
   Tipos derivados (não persistidos)
========================= */

type Status string

const (
	StatusPast    Status = "past"
	StatusCurrent Status = "current"
	StatusFuture  Status = "future"
)

type EntrySource string

const (
	SourceTemplate   EntrySource = "template"
	SourceLessonPlan EntrySource = "lesson_plan"
)

// TimelineEntry é a forma comum para a qual itens de rotina e planos de aula
// são normalizados antes do merge.
type TimelineEntry struct {
	ID     uuid.UUID
	Source EntrySource

	Title string
	Type  m.TimelineItemType

	// HH:MM, largura fixa com zero à esquerda
	StartTime *string
	EndTime   *string

	Description *string
	Topic       *string
	Objective   *string
	Materials   []string
	Homework    *string
	TeacherName *string
	Attachments datatypes.JSON

	Icon  *string
	Color *string

	// Planos cancelados passam pelo merge; quem exibe decide o badge.
	Cancelled bool
}

type MergedEntry struct {
	TimelineEntry
	Status Status
}

/* =========================
   Relógio
========================= */

// MinutesOfDay converte o relógio de parede em minutos desde meia-noite.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Relógios sentinela para datas que não são hoje.
const (
	clockDayConcluded  = 24 * 60
	clockDayNotStarted = -1
)

// ClockFor devolve o relógio a passar para Merge na data pedida (YYYY-MM-DD):
// o horário real quando a data é hoje, fim de dia para datas passadas e um
// instante antes da meia-noite para datas futuras. A comparação lexicográfica
// funciona porque o formato é largura fixa.
func ClockFor(date string, now time.Time) int {
	today := now.Format("2006-01-02")
	switch {
	case date < today:
		return clockDayConcluded
	case date > today:
		return clockDayNotStarted
	default:
		return MinutesOfDay(now)
	}
}

func parseHHMM(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' ||
		s[3] < '0' || s[3] > '9' || s[4] < '0' || s[4] > '9' {
		return 0, false
	}
	if h > 23 || mm > 59 {
		return 0, false
	}
	return h*60 + mm, true
}

/* =========================
   Merge + status temporal
========================= */

// Merge concatena as duas listas, ordena por start_time (comparação
// lexicográfica sobre HH:MM, válida porque o formato é largura fixa) com os
// itens sem horário ao final, e deriva o status de cada entrada em relação a
// `now` (minutos desde meia-noite).
//
// Função pura: mesmas entradas + mesmo now ⇒ mesma saída. O sort é estável,
// então empates preservam a ordem relativa de entrada.
func Merge(templateItems, externalItems []TimelineEntry, now int) []MergedEntry {
	entries := make([]TimelineEntry, 0, len(templateItems)+len(externalItems))
	entries = append(entries, templateItems...)
	entries = append(entries, externalItems...)

	sort.SliceStable(entries, func(i, j int) bool {
		si, sj := entries[i].StartTime, entries[j].StartTime
		if si == nil {
			return false
		}
		if sj == nil {
			return true
		}
		return *si < *sj
	})

	out := make([]MergedEntry, len(entries))
	for i := range entries {
		out[i] = MergedEntry{TimelineEntry: entries[i], Status: statusAt(entries, i, now)}
	}
	return out
}

// statusAt deriva o status pela adjacência dos horários: o "fim" efetivo de
// um item é o início do próximo, não o próprio end_time. O último item com
// horário permanece `current` a partir do seu início (semântica "fase atual
// do dia": nunca marca o dia como encerrado).
func statusAt(entries []TimelineEntry, i, now int) Status {
	// dia já encerrado (data passada): tudo é passado, inclusive o último item
	if now >= clockDayConcluded {
		return StatusPast
	}

	s := entries[i].StartTime
	if s == nil {
		return StatusFuture
	}
	start, ok := parseHHMM(*s)
	if !ok {
		// horário malformado: tratar como sem horário
		return StatusFuture
	}

	if i+1 < len(entries) && entries[i+1].StartTime != nil {
		if next, ok := parseHHMM(*entries[i+1].StartTime); ok {
			switch {
			case now >= next:
				return StatusPast
			case now >= start:
				return StatusCurrent
			default:
				return StatusFuture
			}
		}
	}

	if now >= start {
		return StatusCurrent
	}
	return StatusFuture
}
