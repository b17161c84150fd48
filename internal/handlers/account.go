package handlers

import (
	"github.com/gofiber/fiber/v2"

	"printdesk/internal/services/account"
	"printdesk/internal/utils/response"
	"printdesk/internal/validation"
)

type AccountHandler struct {
	accountService account.Service
}

func NewAccountHandler(accountService account.Service) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

type createAccountInput struct {
	StudentNumber  string `json:"student_number" validate:"required"`
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	CredentialHash string `json:"credential_hash" validate:"required"`
	Department     string `json:"department"`
}

// CreateAccount opens a student account with an empty wallet. Admin
// endpoint; the credential hash arrives from the identity provider.
func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	var input createAccountInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	student, err := h.accountService.CreateAccount(c.Context(), account.CreateAccountInput{
		StudentNumber:  input.StudentNumber,
		FullName:       input.FullName,
		Email:          input.Email,
		CredentialHash: input.CredentialHash,
		Department:     input.Department,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Account created", fiber.Map{
		"student_id":     student.ID,
		"student_number": student.StudentNumber,
		"wallet_id":      student.Wallet.ID,
	})
}

// GetBalance returns the caller's wallet id and current balance.
func (h *AccountHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	balance, err := h.accountService.GetBalance(c.Context(), claims.StudentID)
	if err != nil {
		return respondError(c, err)
	}

	return response.Success(c, "Balance", fiber.Map{
		"wallet_id": balance.WalletID,
		"balance":   balance.Balance.StringFixed(2),
	})
}
