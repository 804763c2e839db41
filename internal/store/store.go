// Package store is the document-store collaborator: JSON documents
// addressed by collection and id. The engine itself never touches
// persistence; callers pick a Store implementation at startup.
package store

import "errors"

// ErrNotFound is returned when a document id does not exist in a
// collection.
var ErrNotFound = errors.New("document not found")

// ErrExists is returned when adding a document id that already exists.
var ErrExists = errors.New("document already exists")

// Document is one stored record.
type Document struct {
	ID   string
	Data []byte
}

// Store is the capability the books service needs from persistence.
// Writes are visible to subsequent reads by the same caller; nothing
// stronger is assumed.
type Store interface {
	// List returns all documents in a collection in a stable order.
	List(collection string) ([]Document, error)
	// Get returns one document.
	Get(collection, id string) (Document, error)
	// Add inserts a new document. Fails with ErrExists on duplicate id.
	Add(collection, id string, data []byte) error
	// Update replaces an existing document. Fails with ErrNotFound.
	Update(collection, id string, data []byte) error
	// Delete removes a document. Fails with ErrNotFound.
	Delete(collection, id string) error
	// Close releases any underlying resources.
	Close() error
}
