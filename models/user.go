package models

type User struct {
	Username  string `json:"username" db:"username"`
	Name      string `json:"name" db:"name"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}

func (User) TableName() string {
	return "users"
}

func (User) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS users (
		username VARCHAR(50) PRIMARY KEY NOT NULL,
		avatar_url VARCHAR(255) NOT NULL,
		name VARCHAR(50) NOT NULL
	);`
}
