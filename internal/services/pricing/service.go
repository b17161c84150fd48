// Package pricing owns the read-only price list: cost per page by
// (paper size, print type) and the total-cost computation used by
// settlement. All money math is decimal with two fractional digits.
package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"printdesk/internal/models"
	"printdesk/internal/repositories"
)

// Service is the injected pricing dependency. The table is loaded once
// at startup and can be hot-reloaded from the database.
type Service interface {
	Cost(paperSize, printType string) (decimal.Decimal, error)
	Quote(paperSize, printType string, pages, copies int) (decimal.Decimal, error)
	Reload(ctx context.Context) error
	List(ctx context.Context) ([]models.PricingRule, error)
}

type service struct {
	repo  repositories.PricingRepository
	table *Table
}

func NewService(repo repositories.PricingRepository, table *Table) Service {
	if repo == nil {
		panic("pricing repository is required")
	}
	if table == nil {
		table = NewTable(nil)
	}
	return &service{repo: repo, table: table}
}

func (s *service) Cost(paperSize, printType string) (decimal.Decimal, error) {
	return s.table.Cost(paperSize, printType)
}

// Quote computes costPerPage x pages x copies. Duplex does not change
// the price: the shop charges per printed page, not per sheet.
func (s *service) Quote(paperSize, printType string, pages, copies int) (decimal.Decimal, error) {
	if pages < 1 || copies < 1 {
		return decimal.Zero, ErrInvalidJob
	}
	costPerPage, err := s.Cost(paperSize, printType)
	if err != nil {
		return decimal.Zero, err
	}
	return TotalCost(costPerPage, pages, copies), nil
}

// TotalCost multiplies a two-decimal cost per page by the page and copy
// counts. Integer multipliers keep the two-decimal scale exact.
func TotalCost(costPerPage decimal.Decimal, pages, copies int) decimal.Decimal {
	return costPerPage.
		Mul(decimal.NewFromInt(int64(pages))).
		Mul(decimal.NewFromInt(int64(copies)))
}

func (s *service) Reload(ctx context.Context) error {
	rules, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload pricing table: %w", err)
	}
	s.table.Replace(rules)
	return nil
}

func (s *service) List(ctx context.Context) ([]models.PricingRule, error) {
	return s.repo.ListAll(ctx)
}
