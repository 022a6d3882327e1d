package bootstrap

import (
	"database/sql"
	"path/filepath"

	"github.com/lqh2307/mapproxy/pkg/types"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

// NewStore creates a new Store instance backed by the sqlite database in the
// given directory.
func NewStore(storePath string) (s *Store, err error) {
	dbPath := filepath.Join(storePath, "mpboot.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return
	}

	s = &Store{db: db}

	err = s.initDb()
	if err != nil {
		db.Close()
		s = nil
		return
	}

	return
}

// initDb initializes the database if not already done.
func (s *Store) initDb() (err error) {
	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS SeedRun (
			Id TEXT PRIMARY KEY UNIQUE,
			Pid INTEGER,
			Concurrency INTEGER,
			MainConfig TEXT,
			SeedConfig TEXT,
			LogPath TEXT,
			Timestamp DATETIME
		)
	`)
	return
}

// RecordSeedRun stores the given seed run.
func (s *Store) RecordSeedRun(run types.SeedRun) (err error) {
	_, err = s.db.Exec(
		"INSERT INTO SeedRun (Id, Pid, Concurrency, MainConfig, SeedConfig, LogPath, Timestamp) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.Id, run.Pid, run.Concurrency, run.MainConfig, run.SeedConfig, run.LogPath, run.Timestamp,
	)
	return
}

// GetSeedRuns returns all recorded seed runs, newest first.
func (s *Store) GetSeedRuns() (runs []types.SeedRun, err error) {
	rows, err := s.db.Query("SELECT Id, Pid, Concurrency, MainConfig, SeedConfig, LogPath, Timestamp FROM SeedRun ORDER BY Timestamp DESC")
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var run types.SeedRun
		err = rows.Scan(&run.Id, &run.Pid, &run.Concurrency, &run.MainConfig, &run.SeedConfig, &run.LogPath, &run.Timestamp)
		if err != nil {
			return
		}
		runs = append(runs, run)
	}

	err = rows.Err()
	return
}

// Close closes the store and the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
