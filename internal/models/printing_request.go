package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Paper sizes accepted by the shop
const (
	PaperSizeA4     = "A4"
	PaperSizeA3     = "A3"
	PaperSizeLetter = "LETTER"
)

// Print types (color modes)
const (
	PrintTypeBlackWhite = "BW"
	PrintTypeColor      = "COLOR"
)

// Request lifecycle statuses. Only the transition into StatusPending is
// part of settlement; the print queue owns the rest.
const (
	RequestStatusPending   = "PENDING"
	RequestStatusPrinting  = "PRINTING"
	RequestStatusCompleted = "COMPLETED"
	RequestStatusFailed    = "FAILED"
)

// PrintingRequest records one accepted print job. It is created by the
// settlement engine only after the wallet debit succeeded, inside the
// same database transaction.
type PrintingRequest struct {
	ID          uint            `gorm:"primarykey"`
	StudentID   uint            `gorm:"index;not null"`
	FileName    string          `gorm:"not null"`
	FileType    string          `gorm:"default:''"`
	Copies      int             `gorm:"not null"`
	Pages       int             `gorm:"not null"`
	PaperSize   string          `gorm:"not null"`
	PrintType   string          `gorm:"not null"`
	Duplex      bool            `gorm:"default:false"`
	Status      string          `gorm:"not null;default:'PENDING'"`
	TotalCost   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RequestedAt time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ValidPaperSize(s string) bool {
	switch s {
	case PaperSizeA4, PaperSizeA3, PaperSizeLetter:
		return true
	}
	return false
}

func ValidPrintType(s string) bool {
	switch s {
	case PrintTypeBlackWhite, PrintTypeColor:
		return true
	}
	return false
}
