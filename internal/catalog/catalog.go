package catalog

import (
	"errors"
	"fmt"

	"yunix/internal/domain"
)

var ErrNotFound = errors.New("product not found")

// Catalog owns the static product set. It is built once at startup and
// read-only afterwards, so it is safe to share across handlers without
// locking.
type Catalog struct {
	products []domain.Product
	byID     map[int]int // id -> index into products
}

// New builds a catalog from the given products, preserving their order.
// Duplicate ids are rejected since the rest of the app keys on them.
func New(products []domain.Product) (*Catalog, error) {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %d", p.ID)
		}
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}, nil
}

// Load returns the built-in boutique collection.
func Load() *Catalog {
	c, err := New(allProducts)
	if err != nil {
		// The built-in data is compiled in; a broken set is a programming error.
		panic(err)
	}
	return c
}

// Products returns the full set in catalog order. Callers must not mutate
// the returned slice.
func (c *Catalog) Products() []domain.Product { return c.products }

func (c *Catalog) Len() int { return len(c.products) }

// ByID looks up a product. Unknown ids return ErrNotFound; the caller
// decides whether that means a 404 page or an empty state.
func (c *Catalog) ByID(id int) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return c.products[i], nil
}

// Categories lists the distinct categories in first-seen catalog order.
func (c *Catalog) Categories() []domain.Category {
	seen := make(map[string]bool)
	var out []domain.Category
	for _, p := range c.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, domain.Category{ID: p.Category, Name: p.CategoryName})
	}
	return out
}

// HasCategory reports whether key names a known category. "all" counts.
func (c *Catalog) HasCategory(key string) bool {
	if key == CategoryAll {
		return true
	}
	for _, p := range c.products {
		if p.Category == key {
			return true
		}
	}
	return false
}

// Availability derives the stock badge for the quick-view endpoint from the
// product's stock fields.
func (c *Catalog) Availability(id int) (domain.Availability, error) {
	p, err := c.ByID(id)
	if err != nil {
		return domain.Availability{}, err
	}
	if !p.InStock {
		return domain.Availability{Status: "OUT_OF_STOCK"}, nil
	}
	status := "IN_STOCK"
	if p.StockCount > 0 && p.StockCount <= 3 {
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: p.StockCount}, nil
}

// FilterOption is one selectable facet value with its product count.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Facets is the filter-sidebar metadata derived from the full catalog.
type Facets struct {
	Categories []FilterOption `json:"categories"`
	Sizes      []FilterOption `json:"sizes"`
	Colors     []FilterOption `json:"colors"`
	PriceMin   int            `json:"priceMin"`
	PriceMax   int            `json:"priceMax"`
}

// Facets derives the available filter options. Values keep first-seen
// catalog order so the sidebar is stable across requests.
func (c *Catalog) Facets() Facets {
	f := Facets{}
	if len(c.products) > 0 {
		f.PriceMin = c.products[0].Price
		f.PriceMax = c.products[0].Price
	}
	catIdx := map[string]int{}
	sizeIdx := map[string]int{}
	colorIdx := map[string]int{}
	for _, p := range c.products {
		if i, ok := catIdx[p.Category]; ok {
			f.Categories[i].Count++
		} else {
			catIdx[p.Category] = len(f.Categories)
			f.Categories = append(f.Categories, FilterOption{Value: p.Category, Label: p.CategoryName, Count: 1})
		}
		for _, s := range p.Sizes {
			if i, ok := sizeIdx[s]; ok {
				f.Sizes[i].Count++
			} else {
				sizeIdx[s] = len(f.Sizes)
				f.Sizes = append(f.Sizes, FilterOption{Value: s, Label: s, Count: 1})
			}
		}
		for _, col := range p.Colors {
			if i, ok := colorIdx[col]; ok {
				f.Colors[i].Count++
			} else {
				colorIdx[col] = len(f.Colors)
				f.Colors = append(f.Colors, FilterOption{Value: col, Label: col, Count: 1})
			}
		}
		if p.Price < f.PriceMin {
			f.PriceMin = p.Price
		}
		if p.Price > f.PriceMax {
			f.PriceMax = p.Price
		}
	}
	return f
}
