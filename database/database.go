package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/samrobinson3110/nc-games/models"

	_ "github.com/lib/pq"
)

// DB wraps the sql connection pool. It is constructed once in main and
// injected into the handlers; nothing in this package keeps a global handle.
type DB struct {
	*sql.DB
}

// Connect establishes a connection to the PostgreSQL database
func Connect(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// InitializeTables creates all tables if they don't exist
func (db *DB) InitializeTables() error {
	// Order matters: reviews reference categories and users, comments
	// reference reviews and users.
	tables := []interface {
		TableName() string
		CreateTableSQL() string
	}{
		models.Category{},
		models.User{},
		models.Review{},
		models.Comment{},
	}

	for _, table := range tables {
		log.Printf("Creating table: %s", table.TableName())
		if _, err := db.Exec(table.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.TableName(), err)
		}
	}

	return nil
}
