package catalog

import (
	"sort"
	"strings"

	"yunix/internal/domain"
)

// Sort keys accepted by Apply. Anything else falls back to SortFeatured.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

// Quick filter names. Each active filter is an independent AND predicate.
const (
	QuickNew         = "new"
	QuickBestsellers = "bestsellers"
	QuickSale        = "sale"
	QuickInStock     = "in-stock"
)

const (
	CategoryAll = "all"

	// Full price range of the collection, in whole naira.
	PriceFloor   = 0
	PriceCeiling = 500000

	// PageSize is the incremental-reveal step for the shop grid.
	PageSize = 12
)

// Query describes one view of the catalog: search text, filters and sort.
// It is a plain value rebuilt by the caller on every interaction; Apply
// never mutates it and never reads ambient state.
type Query struct {
	Search   string
	Category string
	PriceMin int
	PriceMax int
	Sizes    []string
	Colors   []string
	Quick    []string
	Sort     string
}

// DefaultQuery is the atomic "clear all filters" state.
func DefaultQuery() Query {
	return Query{
		Category: CategoryAll,
		PriceMin: PriceFloor,
		PriceMax: PriceCeiling,
		Sort:     SortFeatured,
	}
}

// HasQuick reports whether the named quick filter is active.
func (q Query) HasQuick(name string) bool {
	return contains(q.Quick, name)
}

// HasSize and HasColor report facet selection, used to keep the filter form
// state across requests.
func (q Query) HasSize(v string) bool  { return contains(q.Sizes, v) }
func (q Query) HasColor(v string) bool { return contains(q.Colors, v) }

func contains(vals []string, v string) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}

// ActiveFilterCount counts filters that deviate from the default state,
// for the "Filters (n)" badge.
func (q Query) ActiveFilterCount() int {
	n := 0
	if strings.TrimSpace(q.Search) != "" {
		n++
	}
	if q.Category != CategoryAll {
		n++
	}
	if q.PriceMin > PriceFloor || q.PriceMax < PriceCeiling {
		n++
	}
	n += len(q.Sizes) + len(q.Colors) + len(q.Quick)
	return n
}

// Apply filters and sorts products according to q. Pure: the input slice is
// never reordered or mutated. A malformed query (inverted price range,
// unknown category) narrows to zero matches; an unknown sort key falls back
// to featured order. Apply never fails.
func Apply(products []domain.Product, q Query) []domain.Product {
	out := make([]domain.Product, 0, len(products))

	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if p.Price < q.PriceMin || p.Price > q.PriceMax {
			continue
		}
		// Empty facet selection means unrestricted; otherwise any overlap keeps
		// the product (OR across values).
		if len(q.Sizes) > 0 && !anyOverlap(p.Sizes, q.Sizes) {
			continue
		}
		if len(q.Colors) > 0 && !anyOverlap(p.Colors, q.Colors) {
			continue
		}
		if !matchesQuick(p, q.Quick) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

func matchesSearch(p domain.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func anyOverlap(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

func matchesQuick(p domain.Product, quick []string) bool {
	for _, f := range quick {
		switch f {
		case QuickNew:
			if !p.IsNew {
				return false
			}
		case QuickBestsellers:
			if !p.IsBestseller {
				return false
			}
		case QuickSale:
			if !p.OnSale() {
				return false
			}
		case QuickInStock:
			if !p.InStock {
				return false
			}
		}
		// Unknown quick filter names are ignored rather than rejected.
	}
	return true
}

func sortProducts(ps []domain.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortRating:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Rating > ps[j].Rating })
	case SortNewest:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].IsNew && !ps[j].IsNew })
	case SortPopular:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Reviews > ps[j].Reviews })
	default:
		// Featured: bestsellers first, then new items, otherwise catalog order.
		// This is the only ordering required to be stable with respect to the
		// catalog, so users see a "natural" default.
		sort.SliceStable(ps, func(i, j int) bool {
			a, b := ps[i], ps[j]
			if a.IsBestseller != b.IsBestseller {
				return a.IsBestseller
			}
			if a.IsNew != b.IsNew {
				return a.IsNew
			}
			return false
		})
	}
}

// Window clamps the incremental-reveal count against the filtered set and
// reports whether more products remain. "Load more" grows shown by PageSize;
// it never recomputes the filtered set.
func Window(filtered []domain.Product, shown int) ([]domain.Product, bool) {
	if shown <= 0 {
		shown = PageSize
	}
	if shown >= len(filtered) {
		return filtered, false
	}
	return filtered[:shown], true
}
