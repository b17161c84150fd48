package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"printdesk/internal/models"
)

type pricingRepository struct {
	db *gorm.DB
}

func NewPricingRepository(db *gorm.DB) PricingRepository {
	return &pricingRepository{db: db}
}

func (r *pricingRepository) ListAll(ctx context.Context) ([]models.PricingRule, error) {
	var rules []models.PricingRule
	if err := r.db.WithContext(ctx).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}
	return rules, nil
}
