package state

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/sheets/internal/db"
	"github.com/llehouerou/sheets/internal/position"
)

// SavedPosition is the last settled position of a named sheet.
type SavedPosition struct {
	Name      string
	Position  position.Position
	UpdatedAt time.Time
}

func getPosition(db *sql.DB, name string) (*SavedPosition, error) {
	row := db.QueryRow(`
		SELECT name, position, updated_at FROM sheet_positions WHERE name = ?
	`, name)

	saved, err := scanPosition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved position is valid on first run
	}
	return saved, err
}

func listPositions(db *sql.DB) ([]SavedPosition, error) {
	rows, err := db.Query(`
		SELECT name, position, updated_at FROM sheet_positions ORDER BY updated_at DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedPosition
	for rows.Next() {
		saved, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *saved)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPosition(row scanner) (*SavedPosition, error) {
	var name, text string
	var updatedAt sql.NullInt64
	if err := row.Scan(&name, &text, &updatedAt); err != nil {
		return nil, err
	}
	p, err := position.ParsePosition(text)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", name, err)
	}
	return &SavedPosition{
		Name:      name,
		Position:  p,
		UpdatedAt: dbutil.UnixTime(updatedAt),
	}, nil
}

func savePositions(db *sql.DB, positions []SavedPosition) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		for _, p := range positions {
			_, err := tx.Exec(`
				INSERT INTO sheet_positions (name, position, updated_at)
				VALUES (?, ?, ?)
				ON CONFLICT(name) DO UPDATE SET
					position = excluded.position,
					updated_at = excluded.updated_at
			`, p.Name, p.Position.String(), p.UpdatedAt.Unix())
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func deletePosition(db *sql.DB, name string) error {
	_, err := db.Exec(`DELETE FROM sheet_positions WHERE name = ?`, name)
	return err
}
