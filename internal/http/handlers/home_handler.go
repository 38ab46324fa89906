package handlers

import (
	"yunix/internal/services"
	"yunix/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
)

type HomeHandler struct {
	Catalog *services.CatalogService
	WA      *whatsapp.Linker
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Categories": h.Catalog.ListCategories(),
		"Featured":   h.Catalog.Featured(4),
		"ContactURL": h.WA.ContactLink(),
	})
}
