// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromOffset(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		offset  int
		limit   int
		page    int
		pages   int
		hasNext bool
		hasPrev bool
	}{
		{"primeira página cheia", 45, 0, 20, 1, 3, true, false},
		{"página do meio", 45, 20, 20, 2, 3, true, true},
		{"última página parcial", 45, 40, 20, 3, 3, false, true},
		{"vazio ainda tem 1 página", 0, 0, 20, 1, 1, false, false},
		{"limit zero usa default", 10, 0, 0, 1, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromOffset(tt.total, tt.offset, tt.limit)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pages, p.TotalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(400))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(404))
	assert.Equal(t, "CONFLICT", statusToErrorCode(409))
	assert.Equal(t, "VALIDATION_ERROR", statusToErrorCode(422))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(500))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
