package validate

import (
	"regexp"
	"strconv"
	"strings"

	"yunix/internal/catalog"
)

var (
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,50}$`)
	reKey   = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)
	reFacet = regexp.MustCompile(`^[A-Za-z0-9 -]{1,30}$`)
)

// Q validates search text: trims, enforces allowed characters and max length.
// Empty text is valid and means "no filter".
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// CategoryKey validates a category key from the URL. Unknown keys pass here;
// the query engine treats them as "no match", not an error.
func CategoryKey(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == catalog.CategoryAll {
		return catalog.CategoryAll, true
	}
	return s, reKey.MatchString(s)
}

// ProductID parses a numeric product id.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// SortKey resolves unknown sort keys to the featured default rather than
// rejecting them.
func SortKey(s string) string {
	switch strings.TrimSpace(s) {
	case catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating,
		catalog.SortNewest, catalog.SortPopular, catalog.SortFeatured:
		return strings.TrimSpace(s)
	}
	return catalog.SortFeatured
}

// QuickFilters keeps only known quick filter names, deduplicated in order.
func QuickFilters(vals []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range vals {
		v = strings.TrimSpace(v)
		switch v {
		case catalog.QuickNew, catalog.QuickBestsellers, catalog.QuickSale, catalog.QuickInStock:
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

// FacetValues keeps well-formed size/color values, deduplicated in order.
func FacetValues(vals []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" || !reFacet.MatchString(v) || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Price parses a price bound, falling back to def when missing or malformed.
// An inverted range is left as-is: the engine resolves it to zero matches.
func Price(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// Shown parses the incremental-reveal count, clamped to one page minimum.
func Shown(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < catalog.PageSize {
		return catalog.PageSize
	}
	return n
}

// Qty clamps an order quantity to [1,50].
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}
