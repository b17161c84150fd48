package pricing

import (
	"sync"

	"github.com/shopspring/decimal"

	"printdesk/internal/models"
)

type pair struct {
	paperSize string
	printType string
}

// Table is the in-memory pricing lookup. It is read on every settlement,
// so lookups take only an RLock; Replace swaps the whole rule set under
// the write lock for hot reloads.
type Table struct {
	mu    sync.RWMutex
	rules map[pair]decimal.Decimal
}

func NewTable(rules []models.PricingRule) *Table {
	t := &Table{rules: make(map[pair]decimal.Decimal)}
	t.Replace(rules)
	return t
}

// Cost returns the cost per page for the pair, or ErrRuleNotFound.
func (t *Table) Cost(paperSize, printType string) (decimal.Decimal, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cost, ok := t.rules[pair{paperSize: paperSize, printType: printType}]
	if !ok {
		return decimal.Zero, ErrRuleNotFound
	}
	return cost, nil
}

// Replace swaps in a new rule set atomically.
func (t *Table) Replace(rules []models.PricingRule) {
	next := make(map[pair]decimal.Decimal, len(rules))
	for _, r := range rules {
		next[pair{paperSize: r.PaperSize, printType: r.PrintType}] = r.CostPerPage
	}

	t.mu.Lock()
	t.rules = next
	t.mu.Unlock()
}

// Len reports how many rules are loaded.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rules)
}
