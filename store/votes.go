package store

import (
	"net/http"

	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/models"
	"github.com/ryan-jm/gamecritic/validators"
)

type VoteStore struct {
	db        *database.DB
	validator *validators.Validator
}

func NewVoteStore(db *database.DB, validator *validators.Validator) *VoteStore {
	return &VoteStore{db: db, validator: validator}
}

// FetchByUser lists the votes a user has cast, with the titles of the
// reviews they voted on.
func (s *VoteStore) FetchByUser(username string) ([]models.Vote, error) {
	if err := s.checkUser(username); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT votes.vote_id, votes.owner, votes.review_id, votes.created_at, reviews.title
		FROM votes
		JOIN reviews ON reviews.review_id = votes.review_id
		WHERE votes.owner = $1
		ORDER BY votes.created_at;`,
		username,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	votes := make([]models.Vote, 0)
	for rows.Next() {
		var v models.Vote
		err := rows.Scan(&v.VoteID, &v.Owner, &v.ReviewID, &v.CreatedAt, &v.ReviewTitle)
		if err != nil {
			return nil, err
		}
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// Insert records a vote and bumps the review's counter. Both writes happen
// inside one transaction so a failure leaves neither applied.
func (s *VoteStore) Insert(username string, reviewID interface{}) (*models.Vote, error) {
	if err := s.checkUser(username); err != nil {
		return nil, err
	}
	if err := s.checkReview(reviewID); err != nil {
		return nil, err
	}
	id, _ := validators.CoerceID(reviewID)

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE reviews SET votes = votes + 1 WHERE review_id = $1;`, id); err != nil {
		return nil, err
	}

	var v models.Vote
	err = tx.QueryRow(`
		INSERT INTO votes (owner, review_id)
		VALUES ($1, $2)
		RETURNING vote_id, owner, review_id, created_at;`,
		username, id,
	).Scan(&v.VoteID, &v.Owner, &v.ReviewID, &v.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, NewRequestError(http.StatusBadRequest, "Vote already exists")
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &v, nil
}

// Remove deletes a vote and decrements the review's counter in one
// transaction.
func (s *VoteStore) Remove(username string, reviewID interface{}) error {
	if err := s.checkUser(username); err != nil {
		return err
	}
	if err := s.checkReview(reviewID); err != nil {
		return err
	}
	id, _ := validators.CoerceID(reviewID)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM votes WHERE owner = $1 AND review_id = $2;`, username, id)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return NewRequestError(http.StatusNotFound, "Vote does not exist")
	}

	if _, err := tx.Exec(`UPDATE reviews SET votes = votes - 1 WHERE review_id = $1;`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *VoteStore) checkUser(username string) error {
	valid, err := s.validator.User(username)
	if err != nil {
		return err
	}
	switch valid {
	case validators.StatusInvalid:
		return NewRequestError(http.StatusBadRequest, "Invalid username provided")
	case validators.StatusNotFound:
		return NewRequestError(http.StatusNotFound, "User does not exist")
	}
	return nil
}

func (s *VoteStore) checkReview(reviewID interface{}) error {
	valid, err := s.validator.Review(reviewID)
	if err != nil {
		return err
	}
	switch valid {
	case validators.StatusInvalid:
		return NewRequestError(http.StatusBadRequest, "Invalid review id")
	case validators.StatusNotFound:
		return NewRequestError(http.StatusNotFound, "No review found")
	}
	return nil
}
