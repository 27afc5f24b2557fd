// Package db persists the flattened brick table to SQLite for
// interchange with external catalog tooling. The in-memory Tiling
// remains the source of truth; the store only materialises its table.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/banshee-data/skybricks/internal/brick"
)

type Store struct {
	*sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tilings (
			bricksize         DOUBLE PRIMARY KEY,
			rows              INTEGER NOT NULL,
			brick_count       INTEGER NOT NULL,
			created           TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS bricks (
			brickname         TEXT PRIMARY KEY,
			brickid           INTEGER NOT NULL,
			brickq            INTEGER NOT NULL,
			brickrow          INTEGER NOT NULL,
			brickcol          INTEGER NOT NULL,
			ra                DOUBLE NOT NULL,
			dec               DOUBLE NOT NULL,
			ra1               DOUBLE NOT NULL,
			ra2               DOUBLE NOT NULL,
			dec1              DOUBLE NOT NULL,
			dec2              DOUBLE NOT NULL,
			area              DOUBLE NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_bricks_brickid ON bricks(brickid);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// WriteTiling replaces the stored brick table with the given tiling's
// table in a single transaction.
func (s *Store) WriteTiling(t *brick.Tiling) error {
	tx, err := s.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM bricks"); err != nil {
		return fmt.Errorf("failed to clear brick table: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tilings"); err != nil {
		return fmt.Errorf("failed to clear tiling metadata: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bricks
			(brickname, brickid, brickq, brickrow, brickcol,
			 ra, dec, ra1, ra2, dec1, dec2, area)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rec := range t.Table() {
		_, err := stmt.Exec(
			rec.Name, rec.ID, rec.Q, rec.Row, rec.Col,
			rec.RA, rec.Dec, rec.RA1, rec.RA2, rec.Dec1, rec.Dec2, rec.Area,
		)
		if err != nil {
			return fmt.Errorf("failed to insert brick %s: %w", rec.Name, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO tilings (bricksize, rows, brick_count) VALUES (?, ?, ?)",
		t.Bricksize(), t.Rows(), t.TotalBricks(),
	)
	if err != nil {
		return fmt.Errorf("failed to record tiling metadata: %w", err)
	}

	return tx.Commit()
}

func (s *Store) scanBrick(row *sql.Row) (*brick.Record, error) {
	var rec brick.Record
	err := row.Scan(
		&rec.Name, &rec.ID, &rec.Q, &rec.Row, &rec.Col,
		&rec.RA, &rec.Dec, &rec.RA1, &rec.RA2, &rec.Dec1, &rec.Dec2, &rec.Area,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

const brickColumns = `brickname, brickid, brickq, brickrow, brickcol,
	ra, dec, ra1, ra2, dec1, dec2, area`

// BrickByName returns the stored record for the given brick name, or
// sql.ErrNoRows if absent.
func (s *Store) BrickByName(name string) (*brick.Record, error) {
	return s.scanBrick(s.QueryRow(
		"SELECT "+brickColumns+" FROM bricks WHERE brickname = ?", name))
}

// BrickByID returns the stored record for the given 1-based brick ID.
func (s *Store) BrickByID(id int) (*brick.Record, error) {
	return s.scanBrick(s.QueryRow(
		"SELECT "+brickColumns+" FROM bricks WHERE brickid = ?", id))
}

// Count returns the number of stored bricks.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.QueryRow("SELECT COUNT(*) FROM bricks").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Bricksize returns the brick size of the stored tiling, or
// sql.ErrNoRows if no tiling has been written.
func (s *Store) Bricksize() (float64, error) {
	var size float64
	if err := s.QueryRow("SELECT bricksize FROM tilings").Scan(&size); err != nil {
		return 0, err
	}
	return size, nil
}
