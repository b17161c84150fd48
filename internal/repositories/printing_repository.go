package repositories

import (
	"context"

	"printdesk/internal/models"
)

// PrintingRepository serves the printing-history projection and the
// status updates the print queue applies after settlement.
type PrintingRepository interface {
	GetByID(ctx context.Context, id uint) (*models.PrintingRequest, error)
	ListByStudent(ctx context.Context, studentID uint, limit, offset int) ([]models.PrintingRequest, error)
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}
