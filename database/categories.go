package database

import "github.com/samrobinson3110/nc-games/models"

// GetCategories returns every category. Order is not part of the contract.
func (db *DB) GetCategories() ([]models.Category, error) {
	rows, err := db.Query(`SELECT slug, description FROM categories;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.Slug, &cat.Description); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
