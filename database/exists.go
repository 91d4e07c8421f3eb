package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/samrobinson3110/nc-games/models"
)

// CheckExists confirms that a row with column = value exists in table, and
// fails with a 404 "Resource not found" otherwise. It is the shared
// precondition gate run before writes that reference a parent row.
//
// table and column are trusted identifiers supplied by callers in this
// module, never client input, so interpolating them is safe.
func (db *DB) CheckExists(table, column string, value any) error {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1;`, table, column)

	var one int
	err := db.QueryRow(query, value).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NotFound("Resource not found")
	}
	return err
}
