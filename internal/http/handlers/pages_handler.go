package handlers

import (
	"yunix/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
)

// PagesHandler serves the static marketing pages.
type PagesHandler struct {
	WA *whatsapp.Linker
}

func (h *PagesHandler) Gallery(c *fiber.Ctx) error {
	return render(c, "gallery", fiber.Map{})
}

func (h *PagesHandler) Contact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{
		"ContactURL": h.WA.ContactLink(),
	})
}
