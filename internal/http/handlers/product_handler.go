package handlers

import (
	"yunix/internal/log"
	"yunix/internal/services"
	"yunix/internal/validate"
	"yunix/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Wish    *services.WishlistService
	WA      *whatsapp.Linker
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	p, err := h.Catalog.GetProduct(id)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	// Size/color selection travels in the URL so the order link always
	// reflects the current choice.
	size := pickOption(c.Query("size"), p.Sizes)
	color := pickOption(c.Query("color"), p.Colors)
	qty := validate.Qty(c.Query("qty"))

	store := h.Wish.Open(ensureSID(c))

	return render(c, "product", fiber.Map{
		"P":             p,
		"SelectedSize":  size,
		"SelectedColor": color,
		"Qty":           qty,
		"Wishlisted":    store.Contains(p.ID),
		"OrderURL":      h.WA.OrderLink(p, size, color, qty),
		"EnquiryURL":    h.WA.EnquiryLink(p),
	})
}

// pickOption keeps the selection only when it is one of the product's own
// options.
func pickOption(sel string, options []string) string {
	for _, o := range options {
		if o == sel {
			return sel
		}
	}
	return ""
}
