package handlers

import (
	applog "yunix/internal/log"
	"yunix/internal/services"
	"yunix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type WishlistHandler struct {
	Wish    *services.WishlistService
	Catalog *services.CatalogService
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	store := h.Wish.Open(ensureSID(c))
	return render(c, "wishlist", fiber.Map{
		"Items": store.Items(),
		"Count": store.Count(),
	})
}

// Toggle is the heart control: it adds or removes and reports which way it
// went through the redirect target.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	pid, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	p, err := h.Catalog.GetProduct(pid)
	if err != nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	store := h.Wish.Open(ensureSID(c))
	added := store.Toggle(p)
	if added {
		applog.Audit(c, "wishlist.save", map[string]any{"product": pid})
	} else {
		applog.Audit(c, "wishlist.unsave", map[string]any{"product": pid})
	}

	back := c.Get("Referer")
	if back == "" {
		back = "/wishlist"
	}
	return c.Redirect(back)
}

func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	pid, ok := validate.ProductID(c.FormValue("productId"))
	if !ok {
		return c.Status(400).SendString("missing productId")
	}
	store := h.Wish.Open(ensureSID(c))
	store.Remove(pid)
	applog.Audit(c, "wishlist.remove", map[string]any{"product": pid})
	return c.Redirect("/wishlist")
}

func (h *WishlistHandler) Clear(c *fiber.Ctx) error {
	store := h.Wish.Open(ensureSID(c))
	store.Clear()
	applog.Audit(c, "wishlist.clear", nil)
	return c.Redirect("/wishlist")
}
