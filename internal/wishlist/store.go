// Package wishlist keeps the products a visitor has hearted, persisted as a
// JSON array under a single storage slot. The wishlist is a convenience
// feature, not a record of truth: storage failures degrade to an empty list
// and writes are best-effort.
package wishlist

import (
	"encoding/json"

	"yunix/internal/domain"
)

// DefaultKey is the storage slot name carried over from the original
// browser-side wishlist.
const DefaultKey = "yunix-wishlist"

// Storage is the load/save boundary. Implementations: a JSON file slot and a
// SQLite key-value slot (internal/repos). Load reports ok=false when the slot
// has never been written.
type Storage interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

// Store is an ordered, duplicate-free collection of product snapshots.
// Single writer per store; concurrent stores over the same slot resolve
// last-write-wins at the storage layer.
type Store struct {
	storage Storage
	items   []domain.Product
}

// Open loads the wishlist from storage. Missing or corrupt data yields an
// empty wishlist, never an error: a broken slot must not block the page.
func Open(storage Storage) *Store {
	s := &Store{storage: storage}
	data, ok, err := storage.Load()
	if err != nil || !ok {
		return s
	}
	var items []domain.Product
	if err := json.Unmarshal(data, &items); err != nil {
		return s
	}
	s.items = items
	return s
}

// Add inserts the product unless already present. Duplicates are a no-op.
func (s *Store) Add(p domain.Product) {
	if s.Contains(p.ID) {
		return
	}
	s.items = append(s.items, p)
	s.persist()
}

// Remove deletes by id; absent ids are a no-op.
func (s *Store) Remove(id int) {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

// Toggle flips membership and reports the resulting state: true when the
// product was added, false when it was removed. This is the single operation
// behind the heart control, so the caller can render feedback without a
// second lookup.
func (s *Store) Toggle(p domain.Product) bool {
	if s.Contains(p.ID) {
		s.Remove(p.ID)
		return false
	}
	s.Add(p)
	return true
}

func (s *Store) Contains(id int) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the wishlist.
func (s *Store) Clear() {
	s.items = nil
	s.persist()
}

func (s *Store) Count() int { return len(s.items) }

// Items returns the wishlist in insertion order. Callers must not mutate
// the returned slice.
func (s *Store) Items() []domain.Product { return s.items }

// persist writes the whole collection after every mutation. Failures are
// swallowed: the in-memory state stays authoritative for this session.
func (s *Store) persist() {
	items := s.items
	if items == nil {
		items = []domain.Product{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	_ = s.storage.Save(data)
}
