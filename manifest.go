package png2vhdl

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Manifest records the checksum of every source image already
// converted, so unchanged images can be skipped on subsequent runs.
type Manifest struct {
	db *sql.DB
}

// OpenManifest opens or creates the manifest database at file.
func OpenManifest(file string) (*Manifest, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (source TEXT PRIMARY KEY NOT NULL, crc TEXT NOT NULL, output TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Manifest{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (m *Manifest) Close() error {
	return m.db.Close()
}

// UpToDate reports whether source was last converted from content with
// the given CRC.
func (m *Manifest) UpToDate(source, crc string) (bool, error) {
	var stored string
	switch err := m.db.QueryRow("SELECT crc FROM conversion WHERE source = ?", source).Scan(&stored); err {
	case sql.ErrNoRows:
		return false, nil
	case nil:
		return stored == crc, nil
	default:
		return false, err
	}
}

// Record stores the CRC and output path for source, replacing any
// previous entry.
func (m *Manifest) Record(source, crc, output string) error {
	_, err := m.db.Exec("INSERT OR REPLACE INTO conversion (source, crc, output) VALUES (?, ?, ?)", source, crc, output)
	return err
}

// Forget removes the entry for source, forcing its next conversion.
func (m *Manifest) Forget(source string) error {
	_, err := m.db.Exec("DELETE FROM conversion WHERE source = ?", source)
	return err
}
