package database

import "github.com/samrobinson3110/nc-games/models"

// GetUsers returns every user.
func (db *DB) GetUsers() ([]models.User, error) {
	rows, err := db.Query(`SELECT username, name, avatar_url FROM users;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.Username, &user.Name, &user.AvatarURL); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
