package store

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"comment_id", "author", "review_id", "votes", "created_at", "body"}

func TestEditComment(t *testing.T) {
	t.Run("applies the vote delta", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		expectExists(mock, "comments", "comment_id", 2, true)
		mock.ExpectQuery(`UPDATE comments SET votes = votes \+ \$1 WHERE comment_id = \$2`).
			WithArgs(3, 2).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(2, "mallionaire", 2, 16, time.Now(), "My dog loved this game too!"))

		comment, err := s.Edit("2", float64(3), "")
		require.NoError(t, err)
		assert.Equal(t, 16, comment.Votes)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replaces the body in the same update when provided", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		expectExists(mock, "comments", "comment_id", 2, true)
		mock.ExpectQuery(`UPDATE comments SET votes = votes \+ \$1, body = \$2 WHERE comment_id = \$3`).
			WithArgs(0, "Changed my mind", 2).
			WillReturnRows(sqlmock.NewRows(commentColumns).
				AddRow(2, "mallionaire", 2, 13, time.Now(), "Changed my mind"))

		comment, err := s.Edit("2", nil, "Changed my mind")
		require.NoError(t, err)
		assert.Equal(t, "Changed my mind", comment.Body)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non-numeric delta is rejected before any query", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		_, err := s.Edit("2", []interface{}{1, 2}, "")
		requireRequestError(t, err, http.StatusBadRequest, "Invalid inc_votes value")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid and unknown comment ids stay distinct", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		_, err := s.Edit("banana", float64(1), "")
		requireRequestError(t, err, http.StatusBadRequest, "Invalid comment id")

		expectExists(mock, "comments", "comment_id", 999, false)
		_, err = s.Edit("999", float64(1), "")
		requireRequestError(t, err, http.StatusNotFound, "Comment does not exist")
	})
}

func TestRemoveComment(t *testing.T) {
	t.Run("deletes an existing comment", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		expectExists(mock, "comments", "comment_id", 1, true)
		mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Remove("1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a second delete of the same id is a 404", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		expectExists(mock, "comments", "comment_id", 1, true)
		mock.ExpectExec(`DELETE FROM comments`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, s.Remove("1"))

		expectExists(mock, "comments", "comment_id", 1, false)
		err := s.Remove("1")
		requireRequestError(t, err, http.StatusNotFound, "Comment does not exist")
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		db, mock := newTestDB(t)
		s := NewCommentStore(db, newTestValidator(db))

		err := s.Remove("not-an-id")
		requireRequestError(t, err, http.StatusBadRequest, "Invalid comment id")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
