package reference

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"printdesk/internal/models"
)

func TestNext_Prefixes(t *testing.T) {
	gen := NewGenerator()

	assert.True(t, strings.HasPrefix(gen.Next(models.TransactionTypeTopup), "TOP-"))
	assert.True(t, strings.HasPrefix(gen.Next(models.TransactionTypePrintPayment), "PAY-"))
	assert.True(t, strings.HasPrefix(gen.Next(models.TransactionTypeRefund), "REF-"))
	assert.True(t, strings.HasPrefix(gen.Next("whatever"), "TXN-"))
}

// 1,000 concurrent calls must produce 1,000 distinct references, even
// within the same clock tick.
func TestNext_UniqueUnderConcurrency(t *testing.T) {
	gen := NewGenerator()

	const n = 1000
	refs := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refs <- gen.Next(models.TransactionTypeTopup)
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]struct{}, n)
	for ref := range refs {
		seen[ref] = struct{}{}
	}
	assert.Len(t, seen, n)
}
