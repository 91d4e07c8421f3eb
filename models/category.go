package models

// Category is a fixed classification tag for reviews. Categories are seeded
// reference data and are never mutated through the API.
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
		slug TEXT PRIMARY KEY,
		description TEXT NOT NULL
	);`
}
