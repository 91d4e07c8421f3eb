package database

import (
	"fmt"
	"log"
)

// SeedDev resets the tables and loads a small reference dataset for local
// development. Never run this against a real database: it truncates
// everything first.
func (db *DB) SeedDev() error {
	if _, err := db.Exec(`TRUNCATE categories, users, reviews, comments RESTART IDENTITY CASCADE;`); err != nil {
		return fmt.Errorf("failed to reset tables: %w", err)
	}

	categories := [][2]string{
		{"euro game", "Abstact games that involve little luck"},
		{"social deduction", "Players attempt to uncover each other's hidden role"},
		{"dexterity", "Games involving physical skill"},
		{"children's games", "Games suitable for children"},
	}
	for _, cat := range categories {
		if _, err := db.Exec(`INSERT INTO categories (slug, description) VALUES ($1, $2);`, cat[0], cat[1]); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat[0], err)
		}
	}

	users := [][3]string{
		{"mallionaire", "haz", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{"philippaclaire9", "philippa", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{"bainesface", "sarah", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{"dav3rid", "dave", "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}
	for _, user := range users {
		if _, err := db.Exec(`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3);`, user[0], user[1], user[2]); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", user[0], err)
		}
	}

	reviews := []struct {
		title, designer, owner, body, imgURL, category string
		votes                                          int
		createdAt                                      string
	}{
		{"Agricola", "Uwe Rosenberg", "mallionaire", "Farmyard fun!",
			"https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			"euro game", 1, "2021-01-18T10:00:20.514Z"},
		{"Jenga", "Leslie Scott", "philippaclaire9", "Fiddly fun for all the family",
			"https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			"dexterity", 5, "2021-01-18T10:01:41.251Z"},
		{"Ultimate Werewolf", "Akihisa Okui", "bainesface", "We couldn't find the werewolf!",
			"https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
			"social deduction", 5, "2021-01-18T10:01:41.251Z"},
		{"Dolor reprehenderit", "Gamey McGameface", "mallionaire",
			"Consequat velit occaecat voluptate do. Dolor pariatur fugiat sint et proident ex do consequat est.",
			"https://images.pexels.com/photos/278918/pexels-photo-278918.jpeg?auto=compress&cs=tinysrgb&dpr=2&h=650&w=940",
			"social deduction", 7, "2021-01-22T11:35:50.936Z"},
		{"Proident tempor et.", "Seymour Buttz", "mallionaire",
			"Labore occaecat sunt qui commodo anim anim aliqua adipisicing aliquip fugiat.",
			"https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg",
			"social deduction", 5, "2021-01-07T09:06:08.077Z"},
	}
	for _, review := range reviews {
		_, err := db.Exec(`
			INSERT INTO reviews (title, designer, owner, review_body, review_img_url, category, votes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			review.title, review.designer, review.owner, review.body,
			review.imgURL, review.category, review.votes, review.createdAt)
		if err != nil {
			return fmt.Errorf("failed to seed review %q: %w", review.title, err)
		}
	}

	comments := []struct {
		body, author string
		reviewID     int
		votes        int
		createdAt    string
	}{
		{"I loved this game too!", "bainesface", 2, 16, "2017-11-22T12:43:33.389Z"},
		{"My dog loved this game too!", "mallionaire", 3, 13, "2021-01-18T10:09:05.410Z"},
		{"I didn't know dogs could play games", "philippaclaire9", 3, 10, "2021-01-18T10:09:48.110Z"},
		{"EPIC board game!", "bainesface", 2, 16, "2017-11-22T12:36:03.389Z"},
		{"Now this is a story all about how, board games turned my life upside down", "mallionaire", 2, 13, "2021-01-18T10:24:05.410Z"},
		{"Not sure about dogs, but my cat likes to get involved with board games, the boxes are their particular favourite", "philippaclaire9", 3, 10, "2021-03-27T19:49:48.110Z"},
	}
	for _, comment := range comments {
		_, err := db.Exec(`
			INSERT INTO comments (body, author, review_id, votes, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
			comment.body, comment.author, comment.reviewID, comment.votes, comment.createdAt)
		if err != nil {
			return fmt.Errorf("failed to seed comment on review %d: %w", comment.reviewID, err)
		}
	}

	log.Println("Development data seeded")
	return nil
}
