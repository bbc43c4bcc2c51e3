package gormadapter

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	paginator "github.com/rosberry/go-paginator"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestPaginateWithTotalCount(t *testing.T) {
	db, mock := mockDB(t)

	params, err := paginator.NewBuilder().
		Page(1).PerPage(2).
		Filter(paginator.NewFilter("age", paginator.OpGt, paginator.IntValue(18))).
		Build()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE age > \$1`).
		WithArgs(int64(18)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE age > \$1 LIMIT \$2`).
		WithArgs(int64(18), 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}).
			AddRow(1, "ivan", 20).
			AddRow(2, "maria", 30))

	resp, err := Paginate[user](db, params)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "ivan", resp.Data[0].Name)
	require.NotNil(t, resp.Meta.Total)
	assert.Equal(t, 5, *resp.Meta.Total)
	require.NotNil(t, resp.Meta.TotalPages)
	assert.Equal(t, 3, *resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasNext)
	assert.False(t, resp.Meta.HasPrev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateWithoutTotalCountProbes(t *testing.T) {
	db, mock := mockDB(t)

	params, err := paginator.NewBuilder().
		Page(1).PerPage(2).
		DisableTotalCount().
		Build()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}).
			AddRow(1, "ivan", 20).
			AddRow(2, "maria", 30).
			AddRow(3, "pete", 40))

	resp, err := Paginate[user](db, params)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.Nil(t, resp.Meta.Total)
	assert.Nil(t, resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasNext)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateCursorMode(t *testing.T) {
	db, mock := mockDB(t)

	params, err := paginator.NewBuilder().
		PerPage(2).
		Cursor(paginator.NewCursor("id", paginator.CursorIntValue(0), paginator.CursorAfter)).
		DisableTotalCount().
		Build()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id > \$1 LIMIT \$2`).
		WithArgs(int64(0), 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}).
			AddRow(1, "ivan", 20).
			AddRow(2, "maria", 30).
			AddRow(3, "pete", 40))

	resp, err := Paginate[user](db, params)
	require.NoError(t, err)

	assert.Len(t, resp.Data, 2)
	assert.True(t, resp.Meta.HasNext)
	assert.True(t, resp.Meta.HasPrev)
	assert.Nil(t, resp.Meta.Total)

	next, err := paginator.DecodeCursor(resp.Meta.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, "id", next.Field)
	assert.Equal(t, paginator.CursorAfter, next.Direction)
	assert.Equal(t, int64(2), next.Value.Value())

	prev, err := paginator.DecodeCursor(resp.Meta.PrevCursor)
	require.NoError(t, err)
	assert.Equal(t, paginator.CursorBefore, prev.Direction)
	assert.Equal(t, int64(1), prev.Value.Value())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateCursorCountSkipsCursorCondition(t *testing.T) {
	db, mock := mockDB(t)

	params, err := paginator.NewBuilder().
		PerPage(2).
		Filter(paginator.NewFilter("age", paginator.OpGt, paginator.IntValue(18))).
		Cursor(paginator.NewCursor("id", paginator.CursorIntValue(10), paginator.CursorAfter)).
		Build()
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE age > \$1$`).
		WithArgs(int64(18)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE age > \$1 AND id > \$2 LIMIT \$3`).
		WithArgs(int64(18), int64(10), 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age"}))

	resp, err := Paginate[user](db, params)
	require.NoError(t, err)

	assert.Empty(t, resp.Data)
	require.NotNil(t, resp.Meta.Total)
	assert.Equal(t, 7, *resp.Meta.Total)
	assert.False(t, resp.Meta.HasNext)
	assert.Empty(t, resp.Meta.NextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaginateRejectsUnsafeField(t *testing.T) {
	db, _ := mockDB(t)

	params := paginator.DefaultParams()
	params.Filters = []paginator.Filter{
		paginator.NewFilter("id; DROP TABLE users", paginator.OpEq, paginator.IntValue(1)),
	}

	_, err := Paginate[user](db, params)
	assert.ErrorIs(t, err, paginator.ErrUnsafeFieldName)
}

func TestPaginateRejectsInvalidParams(t *testing.T) {
	db, _ := mockDB(t)

	params := paginator.DefaultParams()
	params.PerPage = 0

	_, err := Paginate[user](db, params)
	assert.ErrorIs(t, err, paginator.ErrInvalidPerPage)
}

func TestPaginateCountError(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnError(errors.New("connection reset"))

	_, err := Paginate[user](db, paginator.DefaultParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count query failed")
}
