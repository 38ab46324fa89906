package services

import (
	"yunix/internal/catalog"
	"yunix/internal/domain"
)

type CatalogService struct {
	Catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{Catalog: c}
}

// ShopView is everything the shop page renders for one query: the revealed
// window, the full filtered count and the load-more state.
type ShopView struct {
	Products []domain.Product
	Total    int
	Shown    int
	HasMore  bool
}

// Browse runs the query pipeline and clamps the incremental-reveal window.
// shown <= 0 means the initial page size.
func (s *CatalogService) Browse(q catalog.Query, shown int) ShopView {
	filtered := catalog.Apply(s.Catalog.Products(), q)
	window, hasMore := catalog.Window(filtered, shown)
	return ShopView{
		Products: window,
		Total:    len(filtered),
		Shown:    len(window),
		HasMore:  hasMore,
	}
}

func (s *CatalogService) ListCategories() []domain.Category {
	return s.Catalog.Categories()
}

func (s *CatalogService) Facets() catalog.Facets {
	return s.Catalog.Facets()
}

func (s *CatalogService) GetProduct(id int) (domain.Product, error) {
	return s.Catalog.ByID(id)
}

// Featured returns the first n products in featured order for the home page
// showcase.
func (s *CatalogService) Featured(n int) []domain.Product {
	view := s.Browse(catalog.DefaultQuery(), n)
	return view.Products
}

func (s *CatalogService) CheckAvailability(id int) (domain.Availability, error) {
	return s.Catalog.Availability(id)
}
