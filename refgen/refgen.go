// Package refgen produces human-facing order and invoice reference numbers.
// References are not checked for uniqueness against the store and are not
// security tokens; the keyspace makes a collision acceptably improbable.
package refgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const alphanum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomSuffix(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphanum[rand.Intn(len(alphanum))])
	}
	return b.String()
}

func timestampBase36() string {
	return strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
}

// OrderNumber builds a reference like ORD-MBXK3F2A-7QZ for admin-created
// orders.
func OrderNumber() string {
	return fmt.Sprintf("ORD-%s-%s", timestampBase36(), randomSuffix(3))
}

// StorefrontOrderNumber is the public self-service variant, e.g.
// SMB-MBXK3F2A-7QZ.
func StorefrontOrderNumber() string {
	return fmt.Sprintf("SMB-%s-%s", timestampBase36(), randomSuffix(3))
}

// InvoiceNumber builds a reference like INV-2026-7QZX using the current
// year instead of a timestamp.
func InvoiceNumber() string {
	return fmt.Sprintf("INV-%d-%s", time.Now().Year(), randomSuffix(4))
}
