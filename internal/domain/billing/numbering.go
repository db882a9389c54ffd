package billing

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// InvoiceNumberPrefix prefixes every generated invoice number
	InvoiceNumberPrefix = "INV-"

	// FallbackInvoiceNumber is used when the existing invoice collection
	// cannot be listed. Creation proceeds instead of blocking, at the risk
	// of a duplicate if two failures race.
	FallbackInvoiceNumber = "INV-001"
)

// NextInvoiceNumber derives the next sequential identifier from the existing
// invoice numbers: strip the prefix, parse the remainder, take the maximum of
// the parseable entries and add one. Unparseable numbers are skipped; an
// empty collection starts at INV-001.
func NextInvoiceNumber(existing []string) string {
	max := 0
	for _, number := range existing {
		numPart := strings.TrimPrefix(number, InvoiceNumberPrefix)
		n, err := strconv.Atoi(numPart)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s%03d", InvoiceNumberPrefix, max+1)
}
