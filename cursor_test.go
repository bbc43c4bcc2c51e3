package paginator

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const intCursorToken = "eyJmaWVsZCI6ImlkIiwidmFsdWUiOjEyMzQ1LCJkaXJlY3Rpb24iOiJiZWZvcmUifQ=="

func TestCursorEncode(t *testing.T) {
	cursor := NewCursor("id", CursorIntValue(12345), CursorBefore)

	token, err := cursor.Encode()
	require.NoError(t, err)
	assert.Equal(t, intCursorToken, token)
}

func TestCursorRoundTrip(t *testing.T) {
	cursors := []Cursor{
		NewCursor("id", CursorIntValue(12345), CursorBefore),
		NewCursor("name", CursorStringValue("ivan"), CursorAfter),
		NewCursor("score", CursorFloatValue(1234567890.123), CursorAfter),
		NewCursor("score", CursorFloatValue(7), CursorBefore),
		NewCursor("id", CursorUUIDValue(uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")), CursorAfter),
	}

	for _, cursor := range cursors {
		token, err := cursor.Encode()
		require.NoError(t, err)

		decoded, err := DecodeCursor(token)
		require.NoError(t, err)
		assert.Equal(t, cursor, decoded)
	}
}

func TestDecodeCursorErrors(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"invalid base64", "not-valid-base64!!"},
		{"not json", "bm90IGpzb24="},                                                    // base64("not json")
		{"unknown direction", "eyJmaWVsZCI6ImlkIiwidmFsdWUiOjEsImRpcmVjdGlvbiI6InNpZGV3YXlzIn0="}, // direction "sideways"
		{"invalid utf-8", "//79"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeCursor(tc.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCursor), "want ErrInvalidCursor, got %v", err)
		})
	}
}

func TestCursorCompareOperator(t *testing.T) {
	cases := []struct {
		direction CursorDirection
		sort      SortDirection
		want      string
	}{
		{CursorAfter, SortAsc, ">"},
		{CursorAfter, SortDesc, "<"},
		{CursorAfter, "", ">"},
		{CursorBefore, SortAsc, "<"},
		{CursorBefore, SortDesc, ">"},
		{CursorBefore, "", "<"},
	}

	for _, tc := range cases {
		cursor := NewCursor("id", CursorIntValue(1), tc.direction)
		got := cursor.CompareOperator(tc.sort)
		assert.Equal(t, tc.want, got, "%s + %q", tc.direction, tc.sort)
	}
}
