package store

import (
	"net/http"

	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/models"
)

type CategoryStore struct {
	db *database.DB
}

func NewCategoryStore(db *database.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) FetchAll() ([]models.Category, error) {
	rows, err := s.db.Query(`SELECT slug, description FROM categories;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.Slug, &cat.Description); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

func (s *CategoryStore) Insert(slug, description string) (*models.Category, error) {
	if slug == "" || description == "" {
		return nil, NewRequestError(http.StatusBadRequest, "Missing slug or description")
	}

	var cat models.Category
	err := s.db.QueryRow(
		`INSERT INTO categories (slug, description) VALUES ($1, $2)
		 RETURNING slug, description;`,
		slug, description,
	).Scan(&cat.Slug, &cat.Description)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, NewRequestError(http.StatusBadRequest, "Category already exists")
		}
		return nil, err
	}

	return &cat, nil
}
