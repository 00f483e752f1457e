package store

import (
	"net/http"

	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/models"
	"github.com/ryan-jm/gamecritic/validators"
)

type CommentStore struct {
	db        *database.DB
	validator *validators.Validator
}

func NewCommentStore(db *database.DB, validator *validators.Validator) *CommentStore {
	return &CommentStore{db: db, validator: validator}
}

// Edit applies a vote delta and optionally replaces the comment body in the
// same update.
func (s *CommentStore) Edit(id interface{}, incVotes interface{}, body string) (*models.Comment, error) {
	delta := 0
	if incVotes != nil {
		var ok bool
		delta, ok = validators.CoerceID(incVotes)
		if !ok {
			return nil, NewRequestError(http.StatusBadRequest, "Invalid inc_votes value")
		}
	}

	valid, err := s.validator.Comment(id)
	if err != nil {
		return nil, err
	}
	switch valid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid comment id")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "Comment does not exist")
	}

	commentID, _ := validators.CoerceID(id)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, author, review_id, votes, created_at, body;`
	args := []interface{}{delta, commentID}

	if body != "" {
		query = `
		UPDATE comments
		SET votes = votes + $1, body = $2
		WHERE comment_id = $3
		RETURNING comment_id, author, review_id, votes, created_at, body;`
		args = []interface{}{delta, body, commentID}
	}

	var cm models.Comment
	err = s.db.QueryRow(query, args...).Scan(
		&cm.CommentID, &cm.Author, &cm.ReviewID, &cm.Votes, &cm.CreatedAt, &cm.Body,
	)
	if err != nil {
		return nil, err
	}

	return &cm, nil
}

// Remove deletes a comment.
func (s *CommentStore) Remove(id interface{}) error {
	valid, err := s.validator.Comment(id)
	if err != nil {
		return err
	}
	switch valid {
	case validators.StatusInvalid:
		return NewRequestError(http.StatusBadRequest, "Invalid comment id")
	case validators.StatusNotFound:
		return NewRequestError(http.StatusNotFound, "Comment does not exist")
	}

	commentID, _ := validators.CoerceID(id)

	_, err = s.db.Exec(`DELETE FROM comments WHERE comment_id = $1;`, commentID)
	return err
}
