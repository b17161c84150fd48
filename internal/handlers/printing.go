package handlers

import (
	"github.com/gofiber/fiber/v2"

	"printdesk/internal/services/settlement"
	"printdesk/internal/utils/pagination"
	"printdesk/internal/utils/response"
	"printdesk/internal/validation"
)

type PrintingHandler struct {
	settlementService settlement.Service
}

func NewPrintingHandler(settlementService settlement.Service) *PrintingHandler {
	return &PrintingHandler{settlementService: settlementService}
}

type submitPrintInput struct {
	FileName  string `json:"file_name" validate:"required"`
	FileType  string `json:"file_type"`
	Copies    int    `json:"copies" validate:"required,min=1"`
	Pages     int    `json:"pages" validate:"required,min=1"`
	PaperSize string `json:"paper_size" validate:"required"`
	PrintType string `json:"print_type" validate:"required"`
	Duplex    bool   `json:"duplex"`
}

// SubmitPrintRequest prices the job and settles it against the caller's
// wallet.
func (h *PrintingHandler) SubmitPrintRequest(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	var input submitPrintInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if err := validation.Struct(input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	created, err := h.settlementService.SubmitPrintRequest(c.Context(), settlement.SubmitRequest{
		StudentID: claims.StudentID,
		FileName:  input.FileName,
		FileType:  input.FileType,
		Copies:    input.Copies,
		Pages:     input.Pages,
		PaperSize: input.PaperSize,
		PrintType: input.PrintType,
		Duplex:    input.Duplex,
	})
	if err != nil {
		return respondError(c, err)
	}

	return response.Created(c, "Print request accepted", fiber.Map{
		"request_id": created.ID,
		"status":     created.Status,
		"total_cost": created.TotalCost.StringFixed(2),
	})
}

// ListPrintingHistory returns the caller's accepted jobs, newest first.
func (h *PrintingHandler) ListPrintingHistory(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return response.Unauthorized(c)
	}

	p := pagination.ParseFromRequest(c)
	reqs, total, err := h.settlementService.ListPrintingHistory(c.Context(), claims.StudentID, p.Limit, p.Offset)
	if err != nil {
		return respondError(c, err)
	}
	p.Total = total

	return c.JSON(pagination.Response(p, reqs))
}
