package repositories

import (
	"context"

	"printdesk/internal/models"
)

// PricingRepository loads the read-only pricing rules. Administration
// of the rows happens out of band.
type PricingRepository interface {
	ListAll(ctx context.Context) ([]models.PricingRule, error)
}
