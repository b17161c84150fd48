package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Wallet struct {
	ID        uint            `gorm:"primarykey"`
	StudentID uint            `gorm:"uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LastTopUp *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Every wallet starts empty regardless of what the caller set
	w.Balance = decimal.Zero
	return nil
}
