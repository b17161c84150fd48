package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"printdesk/internal/models"
)

type printingRepository struct {
	db *gorm.DB
}

func NewPrintingRepository(db *gorm.DB) PrintingRepository {
	return &printingRepository{db: db}
}

func (r *printingRepository) GetByID(ctx context.Context, id uint) (*models.PrintingRequest, error) {
	var req models.PrintingRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get printing request: %w", err)
	}
	return &req, nil
}

func (r *printingRepository) ListByStudent(ctx context.Context, studentID uint, limit, offset int) ([]models.PrintingRequest, error) {
	var reqs []models.PrintingRequest
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reqs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list printing requests: %w", err)
	}
	return reqs, nil
}

func (r *printingRepository) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.PrintingRequest{}).
		Where("student_id = ?", studentID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count printing requests: %w", err)
	}
	return total, nil
}

func (r *printingRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == models.RequestStatusCompleted {
		updates["completed_at"] = time.Now()
	}
	res := r.db.WithContext(ctx).
		Model(&models.PrintingRequest{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update request status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
