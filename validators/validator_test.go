package validators

import (
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryan-jm/gamecritic/database"
)

func newTestValidator(t *testing.T) (*Validator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(&database.DB{DB: db}), mock
}

func existsRow(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func TestValidID(t *testing.T) {
	v, _ := newTestValidator(t)

	t.Run("accepts integers and integer-coercible strings", func(t *testing.T) {
		assert.True(t, v.ValidID(1))
		assert.True(t, v.ValidID("1"))
		assert.True(t, v.ValidID(0))
		assert.True(t, v.ValidID("0"))
		assert.True(t, v.ValidID(float64(3)))
	})

	t.Run("rejects everything else", func(t *testing.T) {
		assert.False(t, v.ValidID("abc"))
		assert.False(t, v.ValidID("7dog"))
		assert.False(t, v.ValidID([]interface{}{"1", 2, false}))
		assert.False(t, v.ValidID(map[string]interface{}{"shouldReturn": false}))
		assert.False(t, v.ValidID(math.NaN()))
		assert.False(t, v.ValidID(1.5))
		assert.False(t, v.ValidID(nil))
	})
}

func TestReviewValidator(t *testing.T) {
	t.Run("existing review id returns ok", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM reviews WHERE review_id = \$1\)`).
			WithArgs(2).
			WillReturnRows(existsRow(true))

		result, err := v.Review(2)
		require.NoError(t, err)
		assert.Equal(t, StatusOK, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("coercible string id returns ok", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM reviews WHERE review_id = \$1\)`).
			WithArgs(3).
			WillReturnRows(existsRow(true))

		result, err := v.Review("3")
		require.NoError(t, err)
		assert.Equal(t, StatusOK, result)
	})

	t.Run("absent review id returns not found", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM reviews WHERE review_id = \$1\)`).
			WithArgs(1000).
			WillReturnRows(existsRow(false))

		result, err := v.Review(1000)
		require.NoError(t, err)
		assert.Equal(t, StatusNotFound, result)
	})

	t.Run("negative ids are invalid without touching the database", func(t *testing.T) {
		v, mock := newTestValidator(t)

		for _, input := range []interface{}{-1, "-1"} {
			result, err := v.Review(input)
			require.NoError(t, err)
			assert.Equal(t, StatusInvalid, result)
		}
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("uncoercible input is invalid", func(t *testing.T) {
		v, mock := newTestValidator(t)

		for _, input := range []interface{}{
			[]interface{}{1, "4", false},
			map[string]interface{}{"shouldReturn": false},
			math.NaN(),
			"not-a-number",
		} {
			result, err := v.Review(input)
			require.NoError(t, err)
			assert.Equal(t, StatusInvalid, result)
		}
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentValidator(t *testing.T) {
	t.Run("existing comment id returns ok", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM comments WHERE comment_id = \$1\)`).
			WithArgs(2).
			WillReturnRows(existsRow(true))

		result, err := v.Comment(2)
		require.NoError(t, err)
		assert.Equal(t, StatusOK, result)
	})

	t.Run("absent comment id returns not found", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM comments WHERE comment_id = \$1\)`).
			WithArgs(1000).
			WillReturnRows(existsRow(false))

		result, err := v.Comment(1000)
		require.NoError(t, err)
		assert.Equal(t, StatusNotFound, result)
	})

	t.Run("negative or uncoercible ids are invalid", func(t *testing.T) {
		v, mock := newTestValidator(t)

		for _, input := range []interface{}{-1, "-1", []interface{}{1}, math.NaN()} {
			result, err := v.Comment(input)
			require.NoError(t, err)
			assert.Equal(t, StatusInvalid, result)
		}
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserValidator(t *testing.T) {
	t.Run("existing username returns ok", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE username = \$1\)`).
			WithArgs("bainesface").
			WillReturnRows(existsRow(true))

		result, err := v.User("bainesface")
		require.NoError(t, err)
		assert.Equal(t, StatusOK, result)
	})

	t.Run("unknown username returns not found", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM users WHERE username = \$1\)`).
			WithArgs("test").
			WillReturnRows(existsRow(false))

		result, err := v.User("test")
		require.NoError(t, err)
		assert.Equal(t, StatusNotFound, result)
	})

	t.Run("non-string input is invalid", func(t *testing.T) {
		v, mock := newTestValidator(t)

		for _, input := range []interface{}{1, []interface{}{1, 3, "user please"}, math.NaN(), nil} {
			result, err := v.User(input)
			require.NoError(t, err)
			assert.Equal(t, StatusInvalid, result)
		}
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("numeric-coercible strings are invalid, not usernames", func(t *testing.T) {
		v, mock := newTestValidator(t)

		result, err := v.User("12345")
		require.NoError(t, err)
		assert.Equal(t, StatusInvalid, result)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryValidator(t *testing.T) {
	t.Run("existing slug returns true", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM categories WHERE slug = \$1\)`).
			WithArgs("dexterity").
			WillReturnRows(existsRow(true))

		valid, err := v.Category("dexterity")
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("unknown slug returns false", func(t *testing.T) {
		v, mock := newTestValidator(t)
		mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM categories WHERE slug = \$1\)`).
			WithArgs("testcategory").
			WillReturnRows(existsRow(false))

		valid, err := v.Category("testcategory")
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("empty slug is false without a lookup", func(t *testing.T) {
		v, mock := newTestValidator(t)

		valid, err := v.Category("")
		require.NoError(t, err)
		assert.False(t, valid)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
