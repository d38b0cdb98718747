package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FirstInvoiceNumber is assigned when no invoice exists yet, or when the
// latest stored number cannot be parsed.
const FirstInvoiceNumber = "INV-001"

// NextInvoiceNumber returns the invoice number that follows latest, formatted
// as INV-NNN with the numeric part zero-padded to three digits (unbounded past
// 999). A missing or malformed latest number falls back to FirstInvoiceNumber.
func NextInvoiceNumber(latest string) string {
	if latest == "" {
		return FirstInvoiceNumber
	}

	parts := strings.Split(latest, "-")
	if len(parts) < 2 {
		return FirstInvoiceNumber
	}

	num, err := strconv.Atoi(parts[1])
	if err != nil {
		return FirstInvoiceNumber
	}

	return fmt.Sprintf("INV-%03d", num+1)
}
