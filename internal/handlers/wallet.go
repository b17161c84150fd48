package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/gofiber/fiber/v2"

	"printdesk/internal/services/funding"
	"printdesk/internal/services/wallet"
	"printdesk/internal/utils/pagination"
	"printdesk/internal/utils/response"
	"printdesk/internal/validation"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

type topUpInput struct {
	Amount decimal.Decimal      `json:"amount" validate:"required"`
	Card   *funding.CardDetails `json:"card"`
}

// TopUp credits the caller's wallet. When card details are supplied the
// card is tokenized first; the charge itself belongs to the campus
// payment gateway.
func (h *WalletHandler) TopUp(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input topUpInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	if input.Card != nil {
		if _, err := funding.Tokenize(*input.Card); err != nil {
			return response.BadRequest(c, err.Error())
		}
	}

	entry, err := h.walletService.TopUp(c.Context(), claims.StudentID, input.Amount)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Top up successful", fiber.Map{
		"reference": entry.Reference,
		"amount":    entry.Amount.StringFixed(2),
	})
}

type refundInput struct {
	WalletID uint            `json:"wallet_id" validate:"required"`
	Amount   decimal.Decimal `json:"amount" validate:"required"`
}

// Refund credits a wallet with a Refund ledger entry. Admin endpoint.
func (h *WalletHandler) Refund(c *fiber.Ctx) error {
	var input refundInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	entry, err := h.walletService.Refund(c.Context(), input.WalletID, input.Amount)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Refund applied", fiber.Map{
		"reference": entry.Reference,
		"amount":    entry.Amount.StringFixed(2),
	})
}

// ListTransactionHistory returns the caller's ledger entries in commit
// order.
func (h *WalletHandler) ListTransactionHistory(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := pagination.ParseFromRequest(c)
	entries, err := h.walletService.ListTransactionHistory(c.Context(), claims.StudentID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = int64(len(entries))

	return c.JSON(pagination.Response(p, entries))
}
