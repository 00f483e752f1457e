package store

import (
	"net/http"

	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/models"
	"github.com/ryan-jm/gamecritic/validators"
)

type UserStore struct {
	db        *database.DB
	validator *validators.Validator
}

func NewUserStore(db *database.DB, validator *validators.Validator) *UserStore {
	return &UserStore{db: db, validator: validator}
}

func (s *UserStore) FetchAll() ([]models.User, error) {
	rows, err := s.db.Query(`SELECT username, name, avatar_url FROM users;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Name, &u.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *UserStore) FetchSingle(username string) (*models.User, error) {
	valid, err := s.validator.User(username)
	if err != nil {
		return nil, err
	}
	switch valid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid username provided")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "User does not exist")
	}

	var u models.User
	err = s.db.QueryRow(
		`SELECT username, name, avatar_url FROM users WHERE username = $1;`,
		username,
	).Scan(&u.Username, &u.Name, &u.AvatarURL)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
