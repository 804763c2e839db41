package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       BLOB NOT NULL,
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	UNIQUE (collection, id)
);`

// SQLiteStore is a Store backed by a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at dbPath and ensures the
// schema exists.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("execute schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// List returns all documents in a collection in insertion order.
func (s *SQLiteStore) List(collection string) ([]Document, error) {
	rows, err := s.db.Query(
		"SELECT id, data FROM documents WHERE collection = ? ORDER BY seq", collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Get returns one document.
func (s *SQLiteStore) Get(collection, id string) (Document, error) {
	doc := Document{ID: id}
	err := s.db.QueryRow(
		"SELECT data FROM documents WHERE collection = ? AND id = ?", collection, id).
		Scan(&doc.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Add inserts a new document.
func (s *SQLiteStore) Add(collection, id string, data []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)", collection, id, data)
	if err != nil {
		var exists bool
		if scanErr := s.db.QueryRow(
			"SELECT 1 FROM documents WHERE collection = ? AND id = ?", collection, id).
			Scan(&exists); scanErr == nil {
			return ErrExists
		}
		return fmt.Errorf("add %s/%s: %w", collection, id, err)
	}
	return nil
}

// Update replaces an existing document.
func (s *SQLiteStore) Update(collection, id string, data []byte) error {
	res, err := s.db.Exec(
		"UPDATE documents SET data = ? WHERE collection = ? AND id = ?", data, collection, id)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document.
func (s *SQLiteStore) Delete(collection, id string) error {
	res, err := s.db.Exec(
		"DELETE FROM documents WHERE collection = ? AND id = ?", collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
