package handlers

import (
	"yunix/internal/log"
	"yunix/internal/services"
	"yunix/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AvailabilityHandler struct {
	Catalog *services.CatalogService
}

// Check backs the quick-view stock badge.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Query("product"))
	if !ok {
		log.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product"})
	}
	a, err := h.Catalog.CheckAvailability(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown product"})
	}
	return c.JSON(a)
}
