package models

type Category struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

func (Category) TableName() string {
	return "categories"
}

func (Category) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS categories (
		slug VARCHAR(255) PRIMARY KEY NOT NULL,
		description TEXT NOT NULL
	);`
}
