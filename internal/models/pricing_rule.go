package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRule maps a (paper size, print type) pair to its cost per page.
// Rows are maintained by shop administrators out of band; the settlement
// path only ever reads them.
type PricingRule struct {
	ID          uint            `gorm:"primarykey"`
	PaperSize   string          `gorm:"uniqueIndex:idx_pricing_pair;not null"`
	PrintType   string          `gorm:"uniqueIndex:idx_pricing_pair;not null"`
	CostPerPage decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
