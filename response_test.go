package paginator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	meta := NewMeta(1, 10, 25)
	require.NotNil(t, meta.Total)
	require.NotNil(t, meta.TotalPages)
	assert.Equal(t, 25, *meta.Total)
	assert.Equal(t, 3, *meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	last := NewMeta(3, 10, 25)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)

	empty := NewMeta(1, 10, 0)
	assert.Equal(t, 0, *empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)

	exact := NewMeta(2, 10, 20)
	assert.Equal(t, 2, *exact.TotalPages)
	assert.False(t, exact.HasNext)
}

func TestNewMetaWithoutTotal(t *testing.T) {
	meta := NewMetaWithoutTotal(2, 10, true)
	assert.Nil(t, meta.Total)
	assert.Nil(t, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	first := NewMetaWithoutTotal(1, 10, false)
	assert.False(t, first.HasPrev)
}

func TestNewMetaWithCursors(t *testing.T) {
	total := 40
	meta := NewMetaWithCursors(1, 10, &total, true, "next-token", "")
	require.NotNil(t, meta.TotalPages)
	assert.Equal(t, 4, *meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
	assert.Equal(t, "next-token", meta.NextCursor)

	// a prev cursor alone implies has_prev even on page 1
	withPrev := NewMetaWithCursors(1, 10, nil, false, "", "prev-token")
	assert.Nil(t, withPrev.TotalPages)
	assert.True(t, withPrev.HasPrev)
}

func TestMetaJSONOmitsAbsentFields(t *testing.T) {
	raw, err := json.Marshal(NewMetaWithoutTotal(1, 10, true))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "total")
	assert.NotContains(t, decoded, "total_pages")
	assert.NotContains(t, decoded, "next_cursor")
	assert.NotContains(t, decoded, "prev_cursor")

	// a zero total is still a present total
	raw, err = json.Marshal(NewMeta(1, 10, 0))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "total")
	assert.Contains(t, decoded, "total_pages")
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]string{"a", "b"}, NewMeta(1, 10, 2))
	assert.Len(t, resp.Data, 2)

	empty := NewResponse[string](nil, NewMeta(1, 10, 0))
	require.NotNil(t, empty.Data)

	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}
