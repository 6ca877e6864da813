package refgen

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumberShape(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{3}$`), OrderNumber())
}

func TestStorefrontOrderNumberShape(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^SMB-[0-9A-Z]+-[0-9A-Z]{3}$`), StorefrontOrderNumber())
}

func TestInvoiceNumberShape(t *testing.T) {
	want := fmt.Sprintf(`^INV-%d-[0-9A-Z]{4}$`, time.Now().Year())
	assert.Regexp(t, regexp.MustCompile(want), InvoiceNumber())
}

func TestOrderNumbersVary(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[OrderNumber()] = true
	}
	// Same-millisecond calls still differ in the random suffix.
	assert.Greater(t, len(seen), 1)
}
