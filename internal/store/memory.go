package store

import "sync"

// MemoryStore is an in-memory Store. Safe for concurrent use; callers
// batching parallel writes get per-document atomicity and nothing more.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
	order       map[string][]string // insertion order per collection
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string][]byte),
		order:       make(map[string][]string),
	}
}

// List returns all documents in insertion order.
func (s *MemoryStore) List(collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.order[collection]))
	for _, id := range s.order[collection] {
		data := s.collections[collection][id]
		docs = append(docs, Document{ID: id, Data: append([]byte(nil), data...)})
	}
	return docs, nil
}

// Get returns one document.
func (s *MemoryStore) Get(collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: append([]byte(nil), data...)}, nil
}

// Add inserts a new document.
func (s *MemoryStore) Add(collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string][]byte)
	}
	if _, ok := s.collections[collection][id]; ok {
		return ErrExists
	}
	s.collections[collection][id] = append([]byte(nil), data...)
	s.order[collection] = append(s.order[collection], id)
	return nil
}

// Update replaces an existing document.
func (s *MemoryStore) Update(collection, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}
	s.collections[collection][id] = append([]byte(nil), data...)
	return nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return ErrNotFound
	}
	delete(s.collections[collection], id)
	ids := s.order[collection]
	for i, existing := range ids {
		if existing == id {
			s.order[collection] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
