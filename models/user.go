package models

// User is a registered reviewer. Users are seeded and read-only through
// this API.
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
		username TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT ''
	);`
}
