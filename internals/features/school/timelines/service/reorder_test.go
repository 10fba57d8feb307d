// file: internals/features/school/timelines/service/reorder_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "escolaviva_backend/internals/features/school/timelines/model"
)

func reorderItems() []m.TimelineItemModel {
	return []m.TimelineItemModel{
		{TimelineItemID: uuid.New(), TimelineItemTitle: "A", TimelineItemOrderIndex: 0},
		{TimelineItemID: uuid.New(), TimelineItemTitle: "B", TimelineItemOrderIndex: 1},
		{TimelineItemID: uuid.New(), TimelineItemTitle: "C", TimelineItemOrderIndex: 2},
	}
}

func TestSwapAdjacentUp(t *testing.T) {
	items := reorderItems()
	target := items[1]

	a, b, err := SwapAdjacent(items, target.TimelineItemID, "up")
	require.NoError(t, err)
	assert.Equal(t, target.TimelineItemID, a.TimelineItemID)
	assert.Equal(t, 0, a.TimelineItemOrderIndex)
	assert.Equal(t, "A", b.TimelineItemTitle)
	assert.Equal(t, 1, b.TimelineItemOrderIndex)
	// C não é tocado
	assert.Equal(t, 2, items[2].TimelineItemOrderIndex)
}

func TestSwapAdjacentDown(t *testing.T) {
	items := reorderItems()
	target := items[1]

	a, b, err := SwapAdjacent(items, target.TimelineItemID, "down")
	require.NoError(t, err)
	assert.Equal(t, 2, a.TimelineItemOrderIndex)
	assert.Equal(t, "C", b.TimelineItemTitle)
	assert.Equal(t, 1, b.TimelineItemOrderIndex)
}

func TestSwapAdjacentAtEdges(t *testing.T) {
	items := reorderItems()

	_, _, err := SwapAdjacent(items, items[0].TimelineItemID, "up")
	assert.ErrorIs(t, err, ErrReorderAtEdge)

	_, _, err = SwapAdjacent(items, items[len(items)-1].TimelineItemID, "down")
	assert.ErrorIs(t, err, ErrReorderAtEdge)
}

func TestSwapAdjacentUnknownItem(t *testing.T) {
	_, _, err := SwapAdjacent(reorderItems(), uuid.New(), "up")
	assert.ErrorIs(t, err, ErrReorderItemNotFound)
}

func TestSwapAdjacentInvalidDirection(t *testing.T) {
	items := reorderItems()
	_, _, err := SwapAdjacent(items, items[0].TimelineItemID, "sideways")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrReorderAtEdge)
}

// Índices não contíguos (buracos deixados por deletes) também trocam certo:
// a troca é de valores de índice, não de posições.
func TestSwapAdjacentWithGaps(t *testing.T) {
	items := []m.TimelineItemModel{
		{TimelineItemID: uuid.New(), TimelineItemTitle: "A", TimelineItemOrderIndex: 0},
		{TimelineItemID: uuid.New(), TimelineItemTitle: "B", TimelineItemOrderIndex: 5},
	}

	a, b, err := SwapAdjacent(items, items[1].TimelineItemID, "up")
	require.NoError(t, err)
	assert.Equal(t, 0, a.TimelineItemOrderIndex)
	assert.Equal(t, 5, b.TimelineItemOrderIndex)
}
