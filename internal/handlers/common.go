// Package handlers contains the fiber HTTP handlers for the print-shop
// operation surface.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	domain "printdesk/internal/errors"
	"printdesk/internal/models"
	"printdesk/internal/utils/response"
)

func extractClaims(c *fiber.Ctx) (*models.StudentClaims, error) {
	claims, ok := c.Locals("claims").(*models.StudentClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

// respondError maps domain errors onto HTTP statuses. Anything without
// a domain code is an internal fault and is not echoed to the client.
func respondError(c *fiber.Ctx, err error) error {
	var derr *domain.DomainError
	if !errors.As(err, &derr) {
		return response.ServerError(c, "internal error")
	}

	switch derr.Code {
	case "INVALID_REQUEST", "INVALID_AMOUNT":
		return response.Error(c, fiber.StatusBadRequest, derr.Code, derr.Message)
	case "WALLET_NOT_FOUND", "STUDENT_NOT_FOUND", "RULE_NOT_FOUND":
		return response.NotFound(c, derr.Code, derr.Message)
	case "DUPLICATE_STUDENT":
		return response.Error(c, fiber.StatusConflict, derr.Code, derr.Message)
	case "INSUFFICIENT_FUNDS":
		return response.Error(c, fiber.StatusPaymentRequired, derr.Code, derr.Message)
	case "CONFLICT_RETRYABLE":
		return response.Error(c, fiber.StatusServiceUnavailable, derr.Code, derr.Message)
	default:
		return response.Error(c, fiber.StatusUnprocessableEntity, derr.Code, derr.Message)
	}
}
