package standards

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// roomStandardsSchema matches the room_standards table shipped with the
// construction standards database.
const roomStandardsSchema = `
CREATE TABLE IF NOT EXISTS room_standards (
	room_type         TEXT PRIMARY KEY,
	min_area_sqm      REAL,
	min_length_m      REAL,
	min_width_m       REAL,
	min_height_m      REAL,
	typical_height_m  REAL,
	wall_finish       TEXT,
	floor_finish      TEXT,
	ceiling_finish    TEXT,
	created_at        TEXT
);`

// Load reads a catalog from the room_standards table of a SQLite standards
// database. The file must already exist and contain at least one row; use
// Seed (or the standards-init tool) to create one.
func Load(path string) (Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open standards db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT room_type, min_area_sqm, min_length_m, min_width_m,
		min_height_m, typical_height_m, wall_finish, floor_finish, ceiling_finish
		FROM room_standards`)
	if err != nil {
		return Catalog{}, fmt.Errorf("query room_standards: %w", err)
	}
	defer rows.Close()

	var stds []Standard
	for rows.Next() {
		var s Standard
		if err := rows.Scan(&s.RoomType, &s.MinAreaSqm, &s.MinSideM, &s.MinWidthM,
			&s.MinHeightM, &s.TypicalHeightM, &s.WallFinish, &s.FloorFinish, &s.CeilingFinish); err != nil {
			return Catalog{}, fmt.Errorf("scan room_standards row: %w", err)
		}
		stds = append(stds, s)
	}
	if err := rows.Err(); err != nil {
		return Catalog{}, fmt.Errorf("read room_standards: %w", err)
	}
	if len(stds) == 0 {
		return Catalog{}, fmt.Errorf("standards db %s has no room_standards rows", path)
	}

	return NewCatalog(stds), nil
}

// Seed creates the room_standards table in a SQLite database at path and
// populates it with the built-in catalog. Existing rows for the same room
// type are replaced.
func Seed(path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open standards db: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(roomStandardsSchema); err != nil {
		return fmt.Errorf("create room_standards table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO room_standards
		(room_type, min_area_sqm, min_length_m, min_width_m, min_height_m,
		 typical_height_m, wall_finish, floor_finish, ceiling_finish, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare seed statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, s := range defaultStandards {
		if _, err := stmt.Exec(s.RoomType, s.MinAreaSqm, s.MinSideM, s.MinWidthM,
			s.MinHeightM, s.TypicalHeightM, s.WallFinish, s.FloorFinish, s.CeilingFinish, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("seed room_standards %s: %w", s.RoomType, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
