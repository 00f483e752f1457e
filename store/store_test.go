package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/validators"
)

func newTestDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &database.DB{DB: db}, mock
}

func newTestValidator(db *database.DB) *validators.Validator {
	return validators.New(db)
}

func expectExists(mock sqlmock.Sqlmock, table, column string, arg interface{}, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM ` + table + ` WHERE ` + column + ` = \$1\)`).
		WithArgs(arg).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}
