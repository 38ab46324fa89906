package catalog_test

import (
	"reflect"
	"testing"

	"yunix/internal/catalog"
	"yunix/internal/domain"
)

func ids(ps []domain.Product) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestApplyNeverGrowsTheSet(t *testing.T) {
	cat := catalog.Load()
	queries := []catalog.Query{
		catalog.DefaultQuery(),
		{Category: "bubu", PriceMin: 0, PriceMax: 500000, Sort: "featured"},
		{Category: "all", PriceMin: 0, PriceMax: 10, Sort: "featured"},
		{Category: "all", PriceMin: 0, PriceMax: 500000, Search: "lace", Sort: "rating"},
	}
	for _, q := range queries {
		got := catalog.Apply(cat.Products(), q)
		if len(got) > cat.Len() {
			t.Fatalf("query %+v grew the set: %d > %d", q, len(got), cat.Len())
		}
	}
}

func TestFeaturedIsDefaultAndStable(t *testing.T) {
	cat := catalog.Load()
	got := catalog.Apply(cat.Products(), catalog.DefaultQuery())

	// Bestsellers (5, 7) first in catalog order, then new items (1, 3, 8),
	// then the rest in catalog order.
	want := []int{5, 7, 1, 3, 8, 2, 4, 6}
	if !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("featured order: want %v, got %v", want, ids(got))
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	cat := catalog.Load()
	q := catalog.Query{Category: "all", PriceMin: 0, PriceMax: 500000, Search: "dress", Sort: catalog.SortRating}
	first := catalog.Apply(cat.Products(), q)
	second := catalog.Apply(cat.Products(), q)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same query produced different results:\n%v\n%v", ids(first), ids(second))
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	cat := catalog.Load()
	before := ids(cat.Products())
	catalog.Apply(cat.Products(), catalog.Query{Category: "all", PriceMax: 500000, Sort: catalog.SortPriceHigh})
	if !reflect.DeepEqual(before, ids(cat.Products())) {
		t.Fatal("Apply reordered the catalog slice")
	}
}

func TestPriceLowOrdering(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Sort = catalog.SortPriceLow
	got := ids(catalog.Apply(cat.Products(), q))

	// Ties (6 and 8 at 35000) keep catalog order.
	want := []int{4, 6, 8, 2, 5, 3, 1, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("price-low order: want %v, got %v", want, got)
	}

	// Spec scenario: 5 (75000) before 1 (185000) before 7 (450000).
	pos := map[int]int{}
	for i, id := range got {
		pos[id] = i
	}
	if !(pos[5] < pos[1] && pos[1] < pos[7]) {
		t.Fatalf("want 5 < 1 < 7 by price, got %v", got)
	}
}

func TestSizeFilterORSemantics(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Sizes: []string{"S", "M"}, Colors: []string{"Red"}},
		{ID: 2, Sizes: []string{"S", "XL"}, Colors: []string{"Red"}},
	}
	q := catalog.DefaultQuery()
	q.Sizes = []string{"M", "L"}
	got := ids(catalog.Apply(products, q))
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("want [1] (non-empty intersection), got %v", got)
	}
}

func TestEmptyFacetSelectionIsUnrestricted(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Sizes = nil
	q.Colors = []string{}
	got := catalog.Apply(cat.Products(), q)
	if len(got) != cat.Len() {
		t.Fatalf("empty facet sets must not exclude anything: got %d of %d", len(got), cat.Len())
	}
}

func TestQuickFiltersANDTogether(t *testing.T) {
	products := []domain.Product{
		{ID: 1, IsNew: true},
		{ID: 2, IsBestseller: true},
		{ID: 3, IsNew: true, IsBestseller: true},
	}
	q := catalog.DefaultQuery()
	q.Quick = []string{catalog.QuickNew, catalog.QuickBestsellers}
	got := ids(catalog.Apply(products, q))
	if !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("want intersection [3], got %v", got)
	}
}

func TestSaleQuickFilterMatchesDiscountedOnly(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Quick = []string{catalog.QuickSale}
	got := catalog.Apply(cat.Products(), q)
	if len(got) == 0 {
		t.Fatal("expected at least one discounted product")
	}
	for _, p := range got {
		if !p.OnSale() {
			t.Fatalf("product %d has no original price", p.ID)
		}
	}
	// And nothing discounted was dropped.
	want := 0
	for _, p := range cat.Products() {
		if p.OnSale() {
			want++
		}
	}
	if len(got) != want {
		t.Fatalf("want %d sale products, got %d", want, len(got))
	}
}

func TestInStockQuickFilter(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Quick = []string{catalog.QuickInStock}
	for _, p := range catalog.Apply(cat.Products(), q) {
		if !p.InStock {
			t.Fatalf("product %d is out of stock", p.ID)
		}
	}
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.PriceMin = 45000
	q.PriceMax = 45000
	got := ids(catalog.Apply(cat.Products(), q))
	if !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("want exactly [2] at the boundary, got %v", got)
	}
}

func TestInvertedPriceRangeYieldsEmpty(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.PriceMin = 100000
	q.PriceMax = 50000
	if got := catalog.Apply(cat.Products(), q); len(got) != 0 {
		t.Fatalf("inverted range must match nothing, got %v", ids(got))
	}
}

func TestEmptySearchMatchesEverything(t *testing.T) {
	cat := catalog.Load()
	base := catalog.Apply(cat.Products(), catalog.DefaultQuery())

	for _, s := range []string{"", "   ", "\t"} {
		q := catalog.DefaultQuery()
		q.Search = s
		got := catalog.Apply(cat.Products(), q)
		if !reflect.DeepEqual(ids(got), ids(base)) {
			t.Fatalf("search %q must behave like no filter", s)
		}
	}
}

func TestSearchCoversNameDescriptionAndTags(t *testing.T) {
	cat := catalog.Load()

	cases := []struct {
		search string
		wantID int
	}{
		{"corset", 2},        // name
		{"businesswoman", 3}, // description
		{"owambe", 1},        // tag
		{"OWAMBE", 1},        // case-insensitive
	}
	for _, tc := range cases {
		q := catalog.DefaultQuery()
		q.Search = tc.search
		got := catalog.Apply(cat.Products(), q)
		found := false
		for _, p := range got {
			if p.ID == tc.wantID {
				found = true
			}
		}
		if !found {
			t.Fatalf("search %q: want product %d in %v", tc.search, tc.wantID, ids(got))
		}
	}
}

func TestUnknownSortFallsBackToFeatured(t *testing.T) {
	cat := catalog.Load()
	featured := catalog.Apply(cat.Products(), catalog.DefaultQuery())

	q := catalog.DefaultQuery()
	q.Sort = "definitely-not-a-sort"
	got := catalog.Apply(cat.Products(), q)
	if !reflect.DeepEqual(ids(got), ids(featured)) {
		t.Fatalf("unknown sort: want featured order %v, got %v", ids(featured), ids(got))
	}
}

func TestUnknownCategoryMatchesNothing(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Category = "no-such-category"
	if got := catalog.Apply(cat.Products(), q); len(got) != 0 {
		t.Fatalf("unknown category must match nothing, got %v", ids(got))
	}
}

func TestNewestPartitionsNewFirst(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Sort = catalog.SortNewest
	got := catalog.Apply(cat.Products(), q)
	seenOld := false
	for _, p := range got {
		if !p.IsNew {
			seenOld = true
		} else if seenOld {
			t.Fatalf("new product %d after a non-new one: %v", p.ID, ids(got))
		}
	}
}

func TestPopularSortsByReviewsDescending(t *testing.T) {
	cat := catalog.Load()
	q := catalog.DefaultQuery()
	q.Sort = catalog.SortPopular
	got := catalog.Apply(cat.Products(), q)
	for i := 1; i < len(got); i++ {
		if got[i-1].Reviews < got[i].Reviews {
			t.Fatalf("reviews not descending at %d: %v", i, ids(got))
		}
	}
}

func TestWindowClampsAndReportsMore(t *testing.T) {
	ps := make([]domain.Product, 30)
	for i := range ps {
		ps[i].ID = i + 1
	}

	w, more := catalog.Window(ps, 0)
	if len(w) != catalog.PageSize || !more {
		t.Fatalf("default window: want %d items and more, got %d/%v", catalog.PageSize, len(w), more)
	}

	w, more = catalog.Window(ps, 24)
	if len(w) != 24 || !more {
		t.Fatalf("grown window: want 24 items and more, got %d/%v", len(w), more)
	}

	w, more = catalog.Window(ps, 100)
	if len(w) != 30 || more {
		t.Fatalf("overgrown window must clamp: got %d/%v", len(w), more)
	}
}

func TestActiveFilterCount(t *testing.T) {
	if n := catalog.DefaultQuery().ActiveFilterCount(); n != 0 {
		t.Fatalf("default query: want 0 active filters, got %d", n)
	}
	q := catalog.DefaultQuery()
	q.Search = "lace"
	q.Category = "corset"
	q.Sizes = []string{"S", "M"}
	q.Quick = []string{catalog.QuickSale}
	if n := q.ActiveFilterCount(); n != 5 {
		t.Fatalf("want 5 active filters, got %d", n)
	}
}
