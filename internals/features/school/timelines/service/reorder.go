// file: internals/features/school/timelines/service/reorder.go
package service

import (
	"errors"
	"sort"

	"github.com/google/uuid"

	m "escolaviva_backend/internals/features/school/timelines/model"
)

var (
	ErrReorderItemNotFound = errors.New("item não pertence ao template")
	ErrReorderAtEdge       = errors.New("item já está na extremidade")
)

// SwapAdjacent troca o order_index do item com o do vizinho imediato na
// direção pedida ("up" = menor índice, "down" = maior). Devolve os dois itens
// já com os índices trocados, e somente eles; nenhum outro índice muda.
func SwapAdjacent(items []m.TimelineItemModel, itemID uuid.UUID, direction string) (*m.TimelineItemModel, *m.TimelineItemModel, error) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TimelineItemOrderIndex < items[j].TimelineItemOrderIndex
	})

	pos := -1
	for i := range items {
		if items[i].TimelineItemID == itemID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, nil, ErrReorderItemNotFound
	}

	var other int
	switch direction {
	case "up":
		other = pos - 1
	case "down":
		other = pos + 1
	default:
		return nil, nil, errors.New("direção inválida")
	}
	if other < 0 || other >= len(items) {
		return nil, nil, ErrReorderAtEdge
	}

	a, b := &items[pos], &items[other]
	a.TimelineItemOrderIndex, b.TimelineItemOrderIndex = b.TimelineItemOrderIndex, a.TimelineItemOrderIndex
	return a, b, nil
}
