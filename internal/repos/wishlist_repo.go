package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// WishlistRepo hands out SQLite-backed storage slots for wishlist stores.
type WishlistRepo struct{ db *sqlx.DB }

func NewWishlistRepo(db *sqlx.DB) *WishlistRepo { return &WishlistRepo{db: db} }

// Slot returns the storage bound to one slot key. It satisfies
// wishlist.Storage.
func (r *WishlistRepo) Slot(key string) *SlotStorage {
	return &SlotStorage{db: r.db, key: key}
}

type SlotStorage struct {
	db  *sqlx.DB
	key string
}

func (s *SlotStorage) Load() ([]byte, bool, error) {
	var data []byte
	err := s.db.Get(&data, `SELECT items_json FROM wishlist_slots WHERE key=?`, s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *SlotStorage) Save(data []byte) error {
	_, err := s.db.Exec(`
	  INSERT INTO wishlist_slots(key, items_json, updated_at)
	  VALUES(?, ?, ?)
	  ON CONFLICT(key) DO UPDATE SET items_json=excluded.items_json, updated_at=excluded.updated_at
	`, s.key, string(data), time.Now().UTC().Format(time.RFC3339))
	return err
}
