package postgres

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMerge(t *testing.T) {
	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	day := "2024-06-03"
	hour := ""

	upserts, deletes := splitMerge("jan@example.com", map[string]*string{
		"day":      &day,
		"hour":     &hour,
		"place_id": nil,
	}, now)

	require.Len(t, upserts, 2)
	sort.Slice(upserts, func(i, j int) bool { return upserts[i].Key < upserts[j].Key })
	assert.Equal(t, "day", upserts[0].Key)
	assert.Equal(t, day, upserts[0].Value)
	assert.Equal(t, "hour", upserts[1].Key)
	assert.Empty(t, upserts[1].Value, "empty string is stored, only nil deletes")
	for _, row := range upserts {
		assert.Equal(t, "jan@example.com", row.Account)
		assert.Equal(t, now, row.UpdatedAt)
	}
	assert.Equal(t, []string{"place_id"}, deletes)
}

func TestSplitMerge_Empty(t *testing.T) {
	upserts, deletes := splitMerge("a", nil, time.Now())

	assert.Empty(t, upserts)
	assert.Empty(t, deletes)
}
