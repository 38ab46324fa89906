package handlers

import (
	"net/url"
	"strconv"

	"yunix/internal/catalog"
	"yunix/internal/log"
	"yunix/internal/services"
	"yunix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ShopHandler struct {
	Catalog *services.CatalogService
}

// Browse renders the shop grid. Every filter lives in the URL, so each
// request rebuilds a fresh query descriptor; changing any filter naturally
// resets the reveal window because only the load-more link carries "show".
func (h *ShopHandler) Browse(c *fiber.Ctx) error {
	q := catalog.DefaultQuery()

	rawQ := c.Query("q")
	if text, ok := validate.Q(rawQ); ok {
		q.Search = text
	} else {
		log.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{
			"Message": "Enter a valid keyword (letters and numbers only)",
		})
	}

	if key, ok := validate.CategoryKey(c.Query("category")); ok {
		// Unknown but well-formed keys stay in the query and simply match
		// nothing.
		q.Category = key
	} else {
		log.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Invalid category"})
	}

	q.PriceMin = validate.Price(c.Query("min"), catalog.PriceFloor)
	q.PriceMax = validate.Price(c.Query("max"), catalog.PriceCeiling)
	q.Sizes = validate.FacetValues(queryAll(c, "size"))
	q.Colors = validate.FacetValues(queryAll(c, "color"))
	q.Quick = validate.QuickFilters(queryAll(c, "quick"))
	q.Sort = validate.SortKey(c.Query("sort"))

	shown := validate.Shown(c.Query("show"))
	view := h.Catalog.Browse(q, shown)

	return render(c, "shop", fiber.Map{
		"Query":       q,
		"Products":    view.Products,
		"Total":       view.Total,
		"Shown":       view.Shown,
		"HasMore":     view.HasMore,
		"ActiveCount": q.ActiveFilterCount(),
		"Facets":      h.Catalog.Facets(),
		"Categories":  h.Catalog.ListCategories(),
		"LoadMoreURL": loadMoreURL(c, view.Shown+catalog.PageSize),
		"SortKeys": []string{
			catalog.SortFeatured, catalog.SortPriceLow, catalog.SortPriceHigh,
			catalog.SortRating, catalog.SortNewest, catalog.SortPopular,
		},
	})
}

// queryAll collects repeated query parameters, e.g. ?size=M&size=L.
func queryAll(c *fiber.Ctx, key string) []string {
	var out []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		out = append(out, string(v))
	}
	return out
}

// loadMoreURL reproduces the current filters with a grown reveal window.
func loadMoreURL(c *fiber.Ctx, show int) string {
	vals := url.Values{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		if string(k) == "show" {
			return
		}
		vals.Add(string(k), string(v))
	})
	vals.Set("show", strconv.Itoa(show))
	return "/shop?" + vals.Encode()
}
