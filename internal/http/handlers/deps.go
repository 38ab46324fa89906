package handlers

import (
	"yunix/internal/catalog"
	"yunix/internal/config"
	"yunix/internal/repos"
	"yunix/internal/services"
	"yunix/internal/whatsapp"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler         *HomeHandler
	ShopHandler         *ShopHandler
	ProductHandler      *ProductHandler
	WishlistHandler     *WishlistHandler
	AvailabilityHandler *AvailabilityHandler
	PagesHandler        *PagesHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, cat *catalog.Catalog) *Deps {
	wishRepo := repos.NewWishlistRepo(db)

	catalogSvc := services.NewCatalogService(cat)
	wishSvc := services.NewWishlistService(wishRepo)
	wa := whatsapp.New(cfg.WhatsAppNumber)

	return &Deps{
		HomeHandler:         &HomeHandler{Catalog: catalogSvc, WA: wa},
		ShopHandler:         &ShopHandler{Catalog: catalogSvc},
		ProductHandler:      &ProductHandler{Catalog: catalogSvc, Wish: wishSvc, WA: wa},
		WishlistHandler:     &WishlistHandler{Wish: wishSvc, Catalog: catalogSvc},
		AvailabilityHandler: &AvailabilityHandler{Catalog: catalogSvc},
		PagesHandler:        &PagesHandler{WA: wa},
	}
}
