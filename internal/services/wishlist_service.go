package services

import (
	"yunix/internal/repos"
	"yunix/internal/wishlist"
)

// WishlistService opens one wishlist store per visitor session. Stores are
// reloaded from storage on every request; the storage layer is the shared
// state.
type WishlistService struct {
	Repo *repos.WishlistRepo
}

func NewWishlistService(r *repos.WishlistRepo) *WishlistService {
	return &WishlistService{Repo: r}
}

// Open loads the session's wishlist. A fresh or corrupt slot yields an
// empty store.
func (s *WishlistService) Open(sessionID string) *wishlist.Store {
	key := wishlist.DefaultKey + ":" + sessionID
	return wishlist.Open(s.Repo.Slot(key))
}
