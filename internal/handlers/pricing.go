package handlers

import (
	"github.com/gofiber/fiber/v2"

	"printdesk/internal/services/pricing"
	"printdesk/internal/utils/response"
)

type PricingHandler struct {
	pricingService pricing.Service
}

func NewPricingHandler(pricingService pricing.Service) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

// ListRules returns the current price list.
func (h *PricingHandler) ListRules(c *fiber.Ctx) error {
	rules, err := h.pricingService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Pricing rules", rules)
}

// Reload re-reads the pricing table from the database. Admin endpoint,
// used after out-of-band rule changes.
func (h *PricingHandler) Reload(c *fiber.Ctx) error {
	if err := h.pricingService.Reload(c.Context()); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Pricing table reloaded", nil)
}
