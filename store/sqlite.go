package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DB is a SQLite-backed Store. The one logical session record is mapped to
// two tables: a sessions row per name and one session_pages row per page
// position; the Store API preserves the record shape.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite store at path.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite only supports one writer — limit to a single connection to
	// prevent SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			ts INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_pages (
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			image BLOB NOT NULL,
			PRIMARY KEY (session_id, position)
		)`,
	}
	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// Put implements Store. The session row and all page rows are replaced in
// one transaction, so a reader never observes a half-written session.
func (db *DB) Put(ctx context.Context, s *Session) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, ts) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET ts = excluded.ts`,
		s.Name, s.SavedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM session_pages WHERE session_id = ?`, s.Name); err != nil {
		return fmt.Errorf("clear pages: %w", err)
	}
	for i, img := range s.Pages {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO session_pages (session_id, position, image) VALUES (?, ?, ?)`,
			s.Name, i, img)
		if err != nil {
			return fmt.Errorf("insert page %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Get implements Store.
func (db *DB) Get(ctx context.Context, name string) (*Session, error) {
	var ts int64
	err := db.conn.QueryRowContext(ctx,
		`SELECT ts FROM sessions WHERE id = ?`, name).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT image FROM session_pages WHERE session_id = ? ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	s := &Session{Name: name, SavedAt: time.UnixMilli(ts)}
	for rows.Next() {
		var img []byte
		if err := rows.Scan(&img); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		s.Pages = append(s.Pages, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}
	return s, nil
}
