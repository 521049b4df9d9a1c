package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists load-cycle history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the server writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS load_cycles (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp           INTEGER NOT NULL,
			epoch               INTEGER NOT NULL,
			start_year          INTEGER,
			status              TEXT,
			message             TEXT,
			headline_nsa_points INTEGER,
			headline_sa_points  INTEGER,
			core_sa_points      INTEGER,
			headline_yoy        REAL,
			headline_mom        REAL,
			core_yoy            REAL,
			core_mom            REAL,
			last_observed       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cycles_ts ON load_cycles(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCycle(rec *CycleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO load_cycles
		(timestamp, epoch, start_year, status, message,
		 headline_nsa_points, headline_sa_points, core_sa_points,
		 headline_yoy, headline_mom, core_yoy, core_mom, last_observed)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Epoch, rec.StartYear, rec.Status, rec.Message,
		rec.HeadlineNSAPoints, rec.HeadlineSAPoints, rec.CoreSAPoints,
		rec.HeadlineYoY, rec.HeadlineMoM, rec.CoreYoY, rec.CoreMoM, rec.LastObserved,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
