package database

import (
	"fmt"
	"log"
)

// avatarURL builds a generated avatar for seeded users.
func avatarURL(username string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + username
}

// Seed inserts the development dataset. Inserts are idempotent so the seed
// can run on every start without duplicating rows.
func (db *DB) Seed() error {
	categories := []struct{ slug, description string }{
		{"euro game", "Abstact games that involve little luck"},
		{"social deduction", "Players attempt to uncover each other's hidden role"},
		{"dexterity", "Games involving physical skill"},
		{"engine-building", "Games where players construct unique points-generating engines"},
	}

	for _, c := range categories {
		_, err := db.Exec(
			`INSERT INTO categories (slug, description) VALUES ($1, $2)
			 ON CONFLICT (slug) DO NOTHING;`,
			c.slug, c.description,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.slug, err)
		}
	}

	users := []struct{ username, name string }{
		{"mallionaire", "haz"},
		{"philippaclaire9", "philippa"},
		{"bainesface", "sarah"},
		{"dav3rid", "dave"},
	}

	for _, u := range users {
		_, err := db.Exec(
			`INSERT INTO users (username, name, avatar_url) VALUES ($1, $2, $3)
			 ON CONFLICT (username) DO NOTHING;`,
			u.username, u.name, avatarURL(u.username),
		)
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}

	reviews := []struct {
		title, body, designer, category, owner string
	}{
		{"Agricola", "Farmyard fun!", "Uwe Rosenberg", "euro game", "mallionaire"},
		{"Jenga", "Fiddly fun for all the family", "Leslie Scott", "dexterity", "philippaclaire9"},
		{"Ultimate Werewolf", "We couldn't find the werewolf!", "Akihisa Okui", "social deduction", "bainesface"},
		{"One Night Ultimate Werewolf", "We couldn't find the werewolf again!", "Akihisa Okui", "social deduction", "mallionaire"},
	}

	var seeded int
	if err := db.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&seeded); err != nil {
		return fmt.Errorf("failed to count reviews: %w", err)
	}
	if seeded == 0 {
		for _, r := range reviews {
			_, err := db.Exec(
				`INSERT INTO reviews (title, review_body, designer, category, owner)
				 VALUES ($1, $2, $3, $4, $5);`,
				r.title, r.body, r.designer, r.category, r.owner,
			)
			if err != nil {
				return fmt.Errorf("failed to seed review %s: %w", r.title, err)
			}
		}

		comments := []struct {
			author, body string
			reviewID     int
		}{
			{"bainesface", "I loved this game too!", 1},
			{"mallionaire", "My dog loved this game too!", 2},
			{"philippaclaire9", "EPIC board game!", 2},
		}
		for _, cm := range comments {
			_, err := db.Exec(
				`INSERT INTO comments (author, body, review_id) VALUES ($1, $2, $3);`,
				cm.author, cm.body, cm.reviewID,
			)
			if err != nil {
				return fmt.Errorf("failed to seed comment by %s: %w", cm.author, err)
			}
		}
	}

	log.Println("Seed data loaded!")
	return nil
}
